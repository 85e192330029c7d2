// Package adapter provides the collaborators around the visualization
// core: array generation and the display scaling functions.
package adapter

import (
	"math/rand"
	"time"
)

// MaxValue is the upper bound (inclusive) for generated array values.
// Counting sort relies on values staying non-negative and bounded, so
// generation is the one place that enforces the range.
const MaxValue = 300

// Source yields fresh arrays of bounded-range integers.
type Source interface {
	Generate(n int) []int
}

type randomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a Source producing uniform random values in
// [0, MaxValue]. A zero seed means seeding from the current time.
func NewRandomSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &randomSource{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns n random values. n <= 0 yields an empty array.
func (s *randomSource) Generate(n int) []int {
	if n <= 0 {
		return []int{}
	}

	values := make([]int, n)
	for i := range values {
		values[i] = s.rng.Intn(MaxValue + 1)
	}

	return values
}
