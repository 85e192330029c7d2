package sorts

// Counting sorts arr ascending with a stable counting sort. Keys must
// be non-negative and bounded; the array source guarantees [0,300],
// so the precondition is not re-checked here.
//
// Placements into the auxiliary output buffer are recorded as set
// moves; the final copy back over arr is not separately recorded,
// matching how the animation presents the algorithm.
func Counting(arr []int, rec *Recorder) {
	if len(arr) <= 1 {
		return
	}

	maxVal := arr[0]
	for _, v := range arr[1:] {
		if v > maxVal {
			maxVal = v
		}
	}

	counts := make([]int, maxVal+1)
	for _, v := range arr {
		counts[v]++
	}

	// Prefix sums: counts[v] becomes the one-past-last output
	// position for value v.
	for v := 1; v <= maxVal; v++ {
		counts[v] += counts[v-1]
	}

	// Scan from the end backward so equal keys keep their relative
	// order (stability).
	out := make([]int, len(arr))

	for i := len(arr) - 1; i >= 0; i-- {
		v := arr[i]
		counts[v]--
		rec.Set(out, counts[v], v)
	}

	copy(arr, out)
}
