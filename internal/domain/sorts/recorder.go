// Package sorts provides the recording implementations of the
// supported sorting algorithms. Each algorithm sorts its array in
// place (or through an auxiliary buffer) while appending every
// visually relevant mutation to a Recorder.
package sorts

import (
	m "github.com/mouse-blink/sortviz/internal/model"
)

// Recorder owns the move log and counters for one sort run. A run
// owns its Recorder exclusively; algorithms never share one.
type Recorder struct {
	log   m.Log
	stats m.Stats
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Cmp compares a and b and counts the comparison. It returns a
// negative number, zero, or a positive number as a is less than,
// equal to, or greater than b.
func (r *Recorder) Cmp(a, b int) int {
	r.stats.Comparisons++

	return a - b
}

// Swap exchanges arr[i] and arr[j] and records the move.
func (r *Recorder) Swap(arr []int, i, j int) {
	arr[i], arr[j] = arr[j], arr[i]
	r.log = append(r.log, m.Swap(i, j))
	r.stats.Moves++
	r.stats.ArrayAccesses += 4
}

// PivotSwap exchanges arr[i] and arr[j], recording the move with the
// pivot tag so replay can distinguish pivot placement.
func (r *Recorder) PivotSwap(arr []int, i, j int) {
	arr[i], arr[j] = arr[j], arr[i]
	r.log = append(r.log, m.Pivot(i, j))
	r.stats.Moves++
	r.stats.ArrayAccesses += 4
}

// Set writes v at arr[i] and records the move.
func (r *Recorder) Set(arr []int, i, v int) {
	arr[i] = v
	r.log = append(r.log, m.Set(i, v))
	r.stats.Moves++
	r.stats.ArrayAccesses++
}

// Log returns the recorded moves in emission order.
func (r *Recorder) Log() m.Log {
	return r.log
}

// Stats returns the run counters.
func (r *Recorder) Stats() m.Stats {
	return r.stats
}
