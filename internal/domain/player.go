package domain

import (
	"github.com/mouse-blink/sortviz/internal/adapter"
	m "github.com/mouse-blink/sortviz/internal/model"
)

// Player replays a move log against a display frame one move per
// tick. The log is reversed once at construction and drained from the
// end, so moves are applied in their original recording order. The
// player holds no timing source of its own; anything that calls Tick
// at a cadence drives it.
type Player struct {
	frame  m.Frame
	moves  m.Log
	scaler *adapter.Scaler
	total  int
}

// NewPlayer creates a Player over frame for the given log. The scaler
// must be the one the frame was built with so set moves recompute
// height and color consistently.
func NewPlayer(frame m.Frame, log m.Log, scaler *adapter.Scaler) *Player {
	moves := make(m.Log, len(log))
	for i, mv := range log {
		moves[len(log)-1-i] = mv
	}

	return &Player{
		frame:  frame,
		moves:  moves,
		scaler: scaler,
		total:  len(log),
	}
}

// Tick applies the next move to the frame and returns it. The second
// return is false once the log is exhausted.
//
// Swap and pivot moves exchange the two bars wholesale; set moves
// keep the bar in place and recompute its value, height, and color.
func (p *Player) Tick() (m.Move, bool) {
	if len(p.moves) == 0 {
		return m.Move{}, false
	}

	mv := p.moves[len(p.moves)-1]
	p.moves = p.moves[:len(p.moves)-1]

	switch mv.Kind {
	case m.MoveSwap, m.MovePivot:
		p.frame[mv.A], p.frame[mv.B] = p.frame[mv.B], p.frame[mv.A]
	case m.MoveSet:
		bar := &p.frame[mv.A]
		bar.Value = mv.B
		bar.Height = p.scaler.Height(mv.B)
		bar.Color = p.scaler.Color(mv.B)
	}

	return mv, true
}

// Remaining returns how many moves are still to be applied.
func (p *Player) Remaining() int {
	return len(p.moves)
}

// Total returns the size of the original log.
func (p *Player) Total() int {
	return p.total
}

// Frame returns the display state the player mutates.
func (p *Player) Frame() m.Frame {
	return p.frame
}
