package sorts

// Merge sorts arr ascending with top-down recursive merge sort.
// Every write back into arr is recorded as a set move, including the
// copy-through of a run's remainder once the other run is exhausted.
func Merge(arr []int, rec *Recorder) {
	if len(arr) <= 1 {
		return
	}

	buf := make([]int, len(arr))
	mergeSortRange(arr, 0, len(arr)-1, buf, rec)
}

func mergeSortRange(arr []int, lo, hi int, buf []int, rec *Recorder) {
	if lo >= hi {
		return
	}

	mid := lo + (hi-lo)/2
	mergeSortRange(arr, lo, mid, buf, rec)
	mergeSortRange(arr, mid+1, hi, buf, rec)
	merge(arr, lo, mid, hi, buf, rec)
}

// merge combines the sorted sub-ranges [lo,mid] and [mid+1,hi].
// Ties favor the left run, which keeps the sort stable.
func merge(arr []int, lo, mid, hi int, buf []int, rec *Recorder) {
	copy(buf[lo:hi+1], arr[lo:hi+1])

	i, j := lo, mid+1

	for k := lo; k <= hi; k++ {
		switch {
		case i > mid:
			rec.Set(arr, k, buf[j])
			j++
		case j > hi:
			rec.Set(arr, k, buf[i])
			i++
		case rec.Cmp(buf[i], buf[j]) <= 0:
			rec.Set(arr, k, buf[i])
			i++
		default:
			rec.Set(arr, k, buf[j])
			j++
		}
	}
}
