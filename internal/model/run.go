package model

// Run captures the outcome of one sort engine run: the untouched
// input, the fully sorted result, the recorded move log, and the
// counters accumulated along the way.
type Run struct {
	Algorithm Algorithm
	Input     []int
	Sorted    []int
	Log       Log
	Stats     Stats
}
