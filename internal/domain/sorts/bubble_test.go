package sorts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/sortviz/internal/model"
)

func TestBubble_RecordsOnlySwaps(t *testing.T) {
	arr := []int{5, 3, 1, 4, 2}
	rec := NewRecorder()

	Bubble(arr, rec)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, arr)
	assert.NotEmpty(t, rec.Log())

	for _, mv := range rec.Log() {
		assert.Equal(t, m.MoveSwap, mv.Kind)
	}
}

func TestBubble_AdjacentSwapsOnly(t *testing.T) {
	arr := []int{9, 8, 7, 1}
	rec := NewRecorder()

	Bubble(arr, rec)

	for _, mv := range rec.Log() {
		assert.Equal(t, mv.A+1, mv.B, "bubble sort only exchanges adjacent pairs")
	}
}

func TestBubble_SortedInputRecordsNothing(t *testing.T) {
	arr := []int{1, 2, 3, 4}
	rec := NewRecorder()

	Bubble(arr, rec)

	assert.Empty(t, rec.Log())
	assert.Equal(t, 6, rec.Stats().Comparisons, "three passes over a shrinking suffix")
}
