package model

// Bar holds the renderable attributes of one display element.
// Height and Color are derived from Value by the scale adapter;
// Width is uniform across a frame.
type Bar struct {
	Value  int
	Width  int
	Height int
	Color  string // hex color understood by lipgloss
}

// Frame is the display state: one Bar per element of the working
// array, index-aligned with it. It is mutated only by replay and
// validation, never by the sort engine.
type Frame []Bar

// Values extracts the bar values in index order.
func (f Frame) Values() []int {
	values := make([]int, len(f))
	for i, bar := range f {
		values[i] = bar.Value
	}

	return values
}

// Validation pairs a display index with its pre-validation color so
// the color can be restored after a transient highlight.
type Validation struct {
	Index int
	Color string
}
