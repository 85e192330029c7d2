package sorts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/sortviz/internal/model"
)

func TestCounting_SortsBoundedKeys(t *testing.T) {
	arr := []int{2, 2, 0, 1}
	rec := NewRecorder()

	Counting(arr, rec)

	assert.Equal(t, []int{0, 1, 2, 2}, arr)
}

func TestCounting_RecordsOnePlacementPerElement(t *testing.T) {
	arr := []int{300, 0, 150, 150, 7}
	rec := NewRecorder()

	Counting(arr, rec)

	// One set per placement into the output buffer; the final copy
	// back over the array is not recorded.
	require.Len(t, rec.Log(), 5)

	for _, mv := range rec.Log() {
		assert.Equal(t, m.MoveSet, mv.Kind)
	}
}

func TestCounting_StableForEqualKeys(t *testing.T) {
	input := []int{2, 2, 0, 1, 2, 1}
	arr := append([]int(nil), input...)
	rec := NewRecorder()

	Counting(arr, rec)

	// The backward scan emits one placement per element, starting from
	// the last source index: move k places input[n-1-k]. For each
	// value, ascending source order must map to ascending output
	// slots.
	n := len(input)
	lastSlot := make(map[int]int)

	for k := len(rec.Log()) - 1; k >= 0; k-- {
		mv := rec.Log()[k]
		src := n - 1 - k

		require.Equal(t, input[src], mv.B, "move %d must place input[%d]", k, src)

		if prev, ok := lastSlot[mv.B]; ok {
			assert.Less(t, prev, mv.A, "equal keys must keep source order (value %d)", mv.B)
		}

		lastSlot[mv.B] = mv.A
	}
}
