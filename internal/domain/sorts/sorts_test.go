package sorts

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/sortviz/internal/model"
)

// replay applies a move log to a copy of the pre-sort array and
// returns the result. It mirrors what the player does to the display
// frame, reduced to values.
func replay(input []int, log m.Log) []int {
	out := append([]int(nil), input...)

	for _, mv := range log {
		switch mv.Kind {
		case m.MoveSwap, m.MovePivot:
			out[mv.A], out[mv.B] = out[mv.B], out[mv.A]
		case m.MoveSet:
			out[mv.A] = mv.B
		}
	}

	return out
}

// lcgValues fills n values with a deterministic linear congruential
// generator so property tests stay reproducible.
func lcgValues(n int) []int {
	values := make([]int, n)
	state := uint32(42)

	for i := range values {
		state = state*1103515245 + 12345
		values[i] = int(state % 301)
	}

	return values
}

type namedSort struct {
	name string
	run  func([]int, *Recorder)
}

func allSorts() []namedSort {
	return []namedSort{
		{"bubble", Bubble},
		{"merge", Merge},
		{"counting", Counting},
		{"quick", Quick},
	}
}

func TestAllSorts_SortAndReplayReproduceReference(t *testing.T) {
	inputs := map[string][]int{
		"empty":      {},
		"single":     {7},
		"pair":       {2, 1},
		"sorted":     {0, 1, 2, 3, 4, 5},
		"reversed":   {5, 4, 3, 2, 1, 0},
		"duplicates": {3, 1, 3, 0, 1, 3, 300, 0},
		"classic":    {5, 3, 1, 4, 2},
		"random":     lcgValues(128),
	}

	for _, s := range allSorts() {
		for name, input := range inputs {
			t.Run(s.name+"/"+name, func(t *testing.T) {
				arr := append([]int(nil), input...)
				rec := NewRecorder()

				s.run(arr, rec)

				reference := append([]int(nil), input...)
				sort.Ints(reference)

				assert.Equal(t, reference, arr, "array must end up sorted")
				assert.Equal(t, reference, replay(input, rec.Log()), "replaying the log must reproduce the sorted array")
				assert.Equal(t, len(rec.Log()), rec.Stats().Moves)
			})
		}
	}
}

func TestAllSorts_DegenerateInputsProduceEmptyLogs(t *testing.T) {
	for _, s := range allSorts() {
		for _, input := range [][]int{{}, {42}} {
			arr := make([]int, len(input))
			copy(arr, input)

			rec := NewRecorder()

			s.run(arr, rec)

			assert.Empty(t, rec.Log(), "%s on %v", s.name, input)
			assert.Equal(t, input, arr)
		}
	}
}

func TestAllSorts_DeterministicLogs(t *testing.T) {
	input := lcgValues(64)

	for _, s := range allSorts() {
		first := append([]int(nil), input...)
		second := append([]int(nil), input...)
		recA := NewRecorder()
		recB := NewRecorder()

		s.run(first, recA)
		s.run(second, recB)

		require.Equal(t, first, second, s.name)
		assert.Equal(t, recA.Log(), recB.Log(), "%s must record identical logs for identical input", s.name)
		assert.Equal(t, recA.Stats(), recB.Stats(), s.name)
	}
}

func TestRecorder_CountsAndRecords(t *testing.T) {
	arr := []int{2, 1, 3}
	rec := NewRecorder()

	assert.Positive(t, rec.Cmp(arr[0], arr[1]))
	rec.Swap(arr, 0, 1)
	rec.Set(arr, 2, 9)
	rec.PivotSwap(arr, 0, 2)

	assert.Equal(t, []int{9, 2, 1}, arr)
	require.Len(t, rec.Log(), 3)
	assert.Equal(t, m.Swap(0, 1), rec.Log()[0])
	assert.Equal(t, m.Set(2, 9), rec.Log()[1])
	assert.Equal(t, m.Pivot(0, 2), rec.Log()[2])

	stats := rec.Stats()
	assert.Equal(t, 1, stats.Comparisons)
	assert.Equal(t, 3, stats.Moves)
	assert.Equal(t, 9, stats.ArrayAccesses)
}
