package controller

import (
	"bytes"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/sortviz/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	delay  time.Duration
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, delay: DefaultDelay}
}

// Start applies the start options.
func (t *TUI) Start(options ...StartOption) error {
	cfg := StartConfig{delay: DefaultDelay}
	for _, opt := range options {
		opt(&cfg)
	}

	if cfg.delay > 0 {
		t.delay = cfg.delay
	}

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close() {

}

// Animate runs the playback model under a Bubble Tea program, ticking
// the session at the configured delay until it returns to Idle or the
// user quits.
func (t *TUI) Animate(run m.Run, ticker Ticker) error {
	model := newPlaybackModel(run, ticker, t.delay)

	program := tea.NewProgram(model, tea.WithOutput(t.output))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplaySummary prints the final run counters below the animation.
func (t *TUI) DisplaySummary(run m.Run) error {
	var buf bytes.Buffer

	renderComparisonTable(&buf, []m.Run{run})
	_, err := buf.WriteTo(t.output)

	return err
}

// DisplayAlgorithms prints the supported algorithms and their
// properties.
func (t *TUI) DisplayAlgorithms(infos []m.AlgorithmInfo) error {
	var buf bytes.Buffer

	renderAlgorithmsTable(&buf, infos)
	_, err := buf.WriteTo(t.output)

	return err
}

// DisplayComparison prints counters for several runs side by side.
func (t *TUI) DisplayComparison(runs []m.Run) error {
	var buf bytes.Buffer

	renderComparisonTable(&buf, runs)
	_, err := buf.WriteTo(t.output)

	return err
}
