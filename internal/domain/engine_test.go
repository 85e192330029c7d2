package domain

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/sortviz/internal/model"
)

func TestEngine_RunSortsACopy(t *testing.T) {
	engine := NewEngine()
	input := []int{5, 3, 1, 4, 2}

	run, err := engine.Run(m.AlgorithmBubble, input)
	require.NoError(t, err)

	assert.Equal(t, []int{5, 3, 1, 4, 2}, input, "caller's array must not be touched")
	assert.Equal(t, []int{5, 3, 1, 4, 2}, run.Input)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, run.Sorted)
	assert.Equal(t, m.AlgorithmBubble, run.Algorithm)
	assert.Equal(t, len(run.Log), run.Stats.Moves)
}

func TestEngine_RunAllAlgorithmsAgainstReference(t *testing.T) {
	engine := NewEngine()
	input := []int{13, 1, 300, 0, 13, 7, 256, 42}

	reference := append([]int(nil), input...)
	sort.Ints(reference)

	for _, algorithm := range m.Algorithms() {
		run, err := engine.Run(algorithm, input)
		require.NoError(t, err, algorithm)
		assert.Equal(t, reference, run.Sorted, algorithm)
	}
}

func TestEngine_RunUnknownAlgorithm(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Run(m.Algorithm("Bogo Sort"), []int{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown algorithm")
}

func TestEngine_RunEmptyAndSingle(t *testing.T) {
	engine := NewEngine()

	for _, input := range [][]int{{}, {9}} {
		for _, algorithm := range m.Algorithms() {
			run, err := engine.Run(algorithm, input)
			require.NoError(t, err)
			assert.Empty(t, run.Log)
			assert.Equal(t, input, run.Sorted)
		}
	}
}
