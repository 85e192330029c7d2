package model

import "fmt"

// Phase is the run state of a visualization session.
type Phase string

const (
	// PhaseIdle means no run is in flight.
	PhaseIdle Phase = "idle"
	// PhaseSorting means the engine is recording moves.
	PhaseSorting Phase = "sorting"
	// PhaseReplaying means recorded moves are being applied to the frame.
	PhaseReplaying Phase = "replaying"
	// PhaseValidating means the sorted frame is being checked and marked.
	PhaseValidating Phase = "validating"
)

// Transition validates a phase change. Phases advance strictly
// Idle -> Sorting -> Replaying -> Validating -> Idle; no phase is
// re-entered without passing through Idle first.
func Transition(from, to Phase) error {
	if !isAllowedTransition(from, to) {
		return fmt.Errorf("disallowed phase transition: %s -> %s", from, to)
	}

	return nil
}

func isAllowedTransition(from, to Phase) bool {
	switch from {
	case PhaseIdle:
		return to == PhaseSorting
	case PhaseSorting:
		return to == PhaseReplaying
	case PhaseReplaying:
		return to == PhaseValidating
	case PhaseValidating:
		return to == PhaseIdle
	default:
		return false
	}
}
