// Package domain implements the sort visualization core: the
// recording sort engine, the move player, the validator, and the
// workflow that sequences them.
package domain

import (
	"fmt"

	"github.com/mouse-blink/sortviz/internal/domain/sorts"
	m "github.com/mouse-blink/sortviz/internal/model"
)

// Engine runs a sorting algorithm to completion over a private copy
// of the input, recording every visual mutation.
type Engine interface {
	Run(algorithm m.Algorithm, input []int) (m.Run, error)
}

type engine struct{}

// NewEngine creates an Engine.
func NewEngine() Engine {
	return &engine{}
}

// Run sorts a copy of input with the selected algorithm. The run is
// synchronous; it returns only once the array is fully sorted and the
// move log is complete. Inputs of length 0 or 1 produce an empty log.
func (e *engine) Run(algorithm m.Algorithm, input []int) (m.Run, error) {
	working := make([]int, len(input))
	copy(working, input)

	rec := sorts.NewRecorder()

	switch algorithm {
	case m.AlgorithmBubble:
		sorts.Bubble(working, rec)
	case m.AlgorithmMerge:
		sorts.Merge(working, rec)
	case m.AlgorithmCounting:
		sorts.Counting(working, rec)
	case m.AlgorithmQuick:
		sorts.Quick(working, rec)
	default:
		return m.Run{}, fmt.Errorf("unknown algorithm %q", algorithm)
	}

	original := make([]int, len(input))
	copy(original, input)

	return m.Run{
		Algorithm: algorithm,
		Input:     original,
		Sorted:    working,
		Log:       rec.Log(),
		Stats:     rec.Stats(),
	}, nil
}
