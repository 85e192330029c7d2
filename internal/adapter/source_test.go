package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomSource_GeneratesBoundedValues(t *testing.T) {
	source := NewRandomSource(1)

	values := source.Generate(500)
	require.Len(t, values, 500)

	for _, v := range values {
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, MaxValue)
	}
}

func TestRandomSource_SameSeedSameArray(t *testing.T) {
	first := NewRandomSource(42).Generate(64)
	second := NewRandomSource(42).Generate(64)

	assert.Equal(t, first, second)
}

func TestRandomSource_ZeroAndNegativeLength(t *testing.T) {
	source := NewRandomSource(7)

	assert.Empty(t, source.Generate(0))
	assert.Empty(t, source.Generate(-3))
}
