package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input string
		want  Algorithm
	}{
		{"bubble", AlgorithmBubble},
		{"Bubble Sort", AlgorithmBubble},
		{"merge", AlgorithmMerge},
		{"MERGE SORT", AlgorithmMerge},
		{"counting", AlgorithmCounting},
		{"quick", AlgorithmQuick},
		{"  quick sort  ", AlgorithmQuick},
	}

	for _, tc := range tests {
		got, err := ParseAlgorithm(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestParseAlgorithm_Unknown(t *testing.T) {
	_, err := ParseAlgorithm("bogo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown algorithm "bogo"`)
}

func TestAlgorithmInfos_CoversEveryAlgorithm(t *testing.T) {
	infos := AlgorithmInfos()
	require.Len(t, infos, len(Algorithms()))

	for i, algorithm := range Algorithms() {
		assert.Equal(t, algorithm, infos[i].Algorithm)
		assert.NotEmpty(t, infos[i].Records)
	}
}
