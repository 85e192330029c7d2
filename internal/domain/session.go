package domain

import (
	"fmt"

	"github.com/mouse-blink/sortviz/internal/adapter"
	m "github.com/mouse-blink/sortviz/internal/model"
)

// Session is one visualization run from sort to validated frame. The
// sort itself happens synchronously inside NewSession; afterwards the
// session is a tickable scheduler that any timing source can drive:
// a bubbletea tick in the TUI, a bare loop in tests and the plain UI.
type Session struct {
	run       m.Run
	phase     m.Phase
	frame     m.Frame
	player    *Player
	validator *Validator
	applied   int
	last      m.Move
	hasLast   bool
}

// NewSession runs the engine over values and prepares replay and
// validation. The frame is built from the values as they stood before
// the first mutation, so replaying the log reproduces the sorted
// output.
func NewSession(engine Engine, algorithm m.Algorithm, values []int, columns, rows int) (*Session, error) {
	s := &Session{phase: m.PhaseIdle}

	if err := s.advance(m.PhaseSorting); err != nil {
		return nil, err
	}

	run, err := engine.Run(algorithm, values)
	if err != nil {
		return nil, fmt.Errorf("sort run: %w", err)
	}

	s.run = run
	s.frame = adapter.NewFrame(run.Input, columns, rows)
	s.player = NewPlayer(s.frame, run.Log, adapter.NewScaler(run.Input, rows))
	s.validator = NewValidator(run.Input)

	if err := s.advance(m.PhaseReplaying); err != nil {
		return nil, err
	}

	return s, nil
}

// Tick performs one unit of work: apply one move while replaying, or
// one highlight step while validating. It returns false once the
// session is back to Idle with nothing left to do.
func (s *Session) Tick() bool {
	switch s.phase {
	case m.PhaseReplaying:
		if mv, ok := s.player.Tick(); ok {
			s.applied++
			s.last, s.hasLast = mv, true

			return true
		}

		s.hasLast = false
		if err := s.advance(m.PhaseValidating); err != nil {
			return false
		}

		s.validator.Begin(s.frame)

		return true
	case m.PhaseValidating:
		if s.validator.Tick() {
			return true
		}

		if err := s.advance(m.PhaseIdle); err != nil {
			return false
		}

		return false
	default:
		return false
	}
}

// Done reports whether the session has returned to Idle.
func (s *Session) Done() bool {
	return s.phase == m.PhaseIdle
}

// Phase returns the current run phase.
func (s *Session) Phase() m.Phase {
	return s.phase
}

// Frame returns the display state being animated.
func (s *Session) Frame() m.Frame {
	return s.frame
}

// Run returns the engine run backing this session.
func (s *Session) Run() m.Run {
	return s.run
}

// Progress returns how many moves have been applied out of the total
// recorded.
func (s *Session) Progress() (applied, total int) {
	return s.applied, s.player.Total()
}

// Last returns the most recently applied move, if a move was applied
// on the previous tick.
func (s *Session) Last() (m.Move, bool) {
	return s.last, s.hasLast
}

func (s *Session) advance(to m.Phase) error {
	if err := m.Transition(s.phase, to); err != nil {
		return err
	}

	s.phase = to

	return nil
}
