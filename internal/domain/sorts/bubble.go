package sorts

// Bubble sorts arr ascending with bubble sort, recording one swap
// move per exchanged adjacent pair. Each outer pass places the
// maximum of the remaining unsorted prefix at its final position.
func Bubble(arr []int, rec *Recorder) {
	for end := len(arr) - 1; end >= 1; end-- {
		for j := 0; j < end; j++ {
			if rec.Cmp(arr[j], arr[j+1]) > 0 {
				rec.Swap(arr, j, j+1)
			}
		}
	}
}
