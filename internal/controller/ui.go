// Package controller provides the user-facing rendering layer for
// sort visualization: an interactive bubbletea TUI and a plain-text
// fallback for non-terminal output.
package controller

import (
	"time"

	m "github.com/mouse-blink/sortviz/internal/model"
)

// DefaultDelay is the tick interval between replayed moves.
const DefaultDelay = 5 * time.Millisecond

// Ticker is a tickable animation source. The domain session satisfies
// it; tests can substitute anything.
type Ticker interface {
	// Tick performs one unit of work and reports whether more remains.
	Tick() bool
	// Frame returns the display state after the latest tick.
	Frame() m.Frame
	// Phase returns the current run phase.
	Phase() m.Phase
	// Progress returns applied and total move counts.
	Progress() (applied, total int)
	// Last returns the most recently applied move, if any.
	Last() (m.Move, bool)
}

// StartOption is a functional option for the Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration applied at UI start.
type StartConfig struct {
	delay time.Duration
}

// WithDelay sets the interval between animation ticks.
func WithDelay(delay time.Duration) StartOption {
	return func(c *StartConfig) {
		c.delay = delay
	}
}

// UI is the display surface for visualization runs.
// Implementations can use different output methods (plain text, TUI).
type UI interface {
	Start(options ...StartOption) error
	Close()
	// Animate drives ticker to completion, rendering each step, and
	// returns once the run is back to Idle.
	Animate(run m.Run, ticker Ticker) error
	// DisplaySummary shows the final counters for a finished run.
	DisplaySummary(run m.Run) error
	// DisplayAlgorithms lists the supported algorithms.
	DisplayAlgorithms(infos []m.AlgorithmInfo) error
	// DisplayComparison shows counters for several runs side by side.
	DisplayComparison(runs []m.Run) error
}
