package adapter

import (
	"github.com/lucasb-eyer/go-colorful"

	m "github.com/mouse-blink/sortviz/internal/model"
)

// Color anchors for the value gradient. Blending happens in Luv space
// so perceived brightness changes evenly across the scale.
const (
	coldHex = "#3A86FF"
	hotHex  = "#FB5607"
)

// Scaler derives bar heights and colors from values, linearly over
// the min/max of the array it was built for.
type Scaler struct {
	min       int
	max       int
	maxHeight int
	cold      colorful.Color
	hot       colorful.Color
}

// NewScaler builds a Scaler over the given values with the given
// maximum bar height in rows.
func NewScaler(values []int, maxHeight int) *Scaler {
	if maxHeight < 1 {
		maxHeight = 1
	}

	s := &Scaler{maxHeight: maxHeight}
	s.cold, _ = colorful.Hex(coldHex)
	s.hot, _ = colorful.Hex(hotHex)

	if len(values) == 0 {
		return s
	}

	s.min, s.max = values[0], values[0]

	for _, v := range values[1:] {
		if v < s.min {
			s.min = v
		}

		if v > s.max {
			s.max = v
		}
	}

	return s
}

// Height returns the bar height for v: at least 1 row, scaling
// linearly up to the configured maximum.
func (s *Scaler) Height(v int) int {
	return 1 + int(s.normalize(v)*float64(s.maxHeight-1)+0.5)
}

// Color returns the hex color for v, blended between the cold and hot
// anchors in Luv space by the value's scaled height.
func (s *Scaler) Color(v int) string {
	return s.cold.BlendLuv(s.hot, s.normalize(v)).Clamped().Hex()
}

// Bar builds the full display element for v at the given width.
func (s *Scaler) Bar(v, width int) m.Bar {
	return m.Bar{
		Value:  v,
		Width:  width,
		Height: s.Height(v),
		Color:  s.Color(v),
	}
}

func (s *Scaler) normalize(v int) float64 {
	if s.max == s.min {
		return 1
	}

	return float64(v-s.min) / float64(s.max-s.min)
}

// BarWidth splits the available columns evenly across count bars,
// never going below one column per bar.
func BarWidth(columns, count int) int {
	if count <= 0 {
		return 1
	}

	width := columns / count
	if width < 1 {
		width = 1
	}

	return width
}

// NewFrame builds the initial display state for values, sized to the
// available terminal columns and rows.
func NewFrame(values []int, columns, rows int) m.Frame {
	scaler := NewScaler(values, rows)
	width := BarWidth(columns, len(values))

	frame := make(m.Frame, len(values))
	for i, v := range values {
		frame[i] = scaler.Bar(v, width)
	}

	return frame
}
