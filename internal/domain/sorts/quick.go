package sorts

// Quick sorts arr ascending with quick sort using a Hoare-style
// partition around the first element of each range. Element swaps are
// recorded as swap moves; placing the pivot into its final slot is
// recorded with the distinct pivot tag.
func Quick(arr []int, rec *Recorder) {
	if len(arr) <= 1 {
		return
	}

	quickSortRange(arr, 0, len(arr)-1, rec)
}

func quickSortRange(arr []int, lo, hi int, rec *Recorder) {
	if lo >= hi {
		return
	}

	p := partition(arr, lo, hi, rec)
	quickSortRange(arr, lo, p-1, rec)
	quickSortRange(arr, p+1, hi, rec)
}

// partition rearranges [lo,hi] around the pivot arr[lo] and returns
// the pivot's final index. On return, every element left of the pivot
// is <= it and every element right of it is >= it.
//
// The low cursor advances on <= and the high cursor retreats on >;
// that asymmetry is what guarantees progress on already-sorted and
// reverse-sorted ranges. The low cursor is bounded by hi because the
// pivot is the range minimum in the worst case.
func partition(arr []int, lo, hi int, rec *Recorder) int {
	pivot := arr[lo]
	i, j := lo+1, hi

	for {
		for i <= hi && rec.Cmp(arr[i], pivot) <= 0 {
			i++
		}

		for rec.Cmp(arr[j], pivot) > 0 {
			j--
		}

		if i >= j {
			break
		}

		rec.Swap(arr, i, j)
	}

	rec.PivotSwap(arr, lo, j)

	return j
}
