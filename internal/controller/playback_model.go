package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/sortviz/internal/model"
)

type tickMsg time.Time

// Highlight colors for the bars touched by the latest move. Pivot
// placement gets its own color so it reads differently from an
// ordinary swap.
const (
	swapHighlight  = "#FFD166"
	pivotHighlight = "#EF476F"
)

// playbackModel renders a visualization session: the bar chart, the
// current phase, and replay progress. Each tickMsg advances the
// session by exactly one move or one validation step.
type playbackModel struct {
	run         m.Run
	ticker      Ticker
	delay       time.Duration
	width       int
	height      int
	progressBar progress.Model
	done        bool
	quitting    bool
}

func newPlaybackModel(run m.Run, ticker Ticker, delay time.Duration) playbackModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return playbackModel{
		run:         run,
		ticker:      ticker,
		delay:       delay,
		progressBar: prog,
	}
}

func (pm playbackModel) Init() tea.Cmd {
	return pm.tick()
}

func (pm playbackModel) tick() tea.Cmd {
	return tea.Tick(pm.delay, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (pm playbackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm = pm.handleWindowSize(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		}

	case tickMsg:
		return pm.handleTickMsg(msg)
	}

	return pm, nil
}

func (pm playbackModel) handleTickMsg(_ tickMsg) (playbackModel, tea.Cmd) {
	if pm.ticker.Tick() {
		return pm, pm.tick()
	}

	// Log and validation queue both drained; the timer stops here.
	pm.done = true

	return pm, tea.Quit
}

func (pm playbackModel) handleWindowSize(msg tea.WindowSizeMsg) playbackModel {
	pm.width = msg.Width
	pm.height = msg.Height

	pm.progressBar.Width = pm.width - 30
	if pm.progressBar.Width < 20 {
		pm.progressBar.Width = 20
	}

	return pm
}

func (pm playbackModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	title := titleStyle.Render(fmt.Sprintf("▚ sortviz · %s", pm.run.Algorithm))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		pm.renderBars(),
		pm.renderStatus(),
		pm.renderFooter(),
	)
}

func (pm playbackModel) renderBars() string {
	frame := pm.ticker.Frame()
	if len(frame) == 0 {
		return "  (empty array)\n"
	}

	maxHeight := 0
	for _, bar := range frame {
		if bar.Height > maxHeight {
			maxHeight = bar.Height
		}
	}

	highlightA, highlightB, highlightColor := pm.highlight()

	var b strings.Builder

	for row := maxHeight; row >= 1; row-- {
		b.WriteString("  ")

		for i, bar := range frame {
			if bar.Height < row {
				b.WriteString(strings.Repeat(" ", bar.Width))
				continue
			}

			color := bar.Color
			if i == highlightA || i == highlightB {
				color = highlightColor
			}

			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			b.WriteString(style.Render(strings.Repeat("█", bar.Width)))
		}

		b.WriteString("\n")
	}

	return b.String()
}

// highlight returns the indices touched by the latest move and the
// color to mark them with. Set moves already recolor their bar, so
// only swaps and pivot placements are marked.
func (pm playbackModel) highlight() (int, int, string) {
	mv, ok := pm.ticker.Last()
	if !ok {
		return -1, -1, ""
	}

	switch mv.Kind {
	case m.MoveSwap:
		return mv.A, mv.B, swapHighlight
	case m.MovePivot:
		return mv.A, mv.B, pivotHighlight
	default:
		return -1, -1, ""
	}
}

func (pm playbackModel) renderStatus() string {
	applied, total := pm.ticker.Progress()

	percent := 1.0
	if total > 0 {
		percent = float64(applied) / float64(total)
	}

	phaseStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(phaseColor(pm.ticker.Phase())).
		Bold(true).
		Padding(0, 1)

	statusStyle := lipgloss.NewStyle().Padding(1, 0, 0, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	status := fmt.Sprintf("%s  %s  %s / %s moves",
		phaseStyle.Render(string(pm.ticker.Phase())),
		pm.progressBar.ViewAs(percent),
		accentStyle.Render(fmt.Sprintf("%d", applied)),
		accentStyle.Render(fmt.Sprintf("%d", total)),
	)

	return statusStyle.Render(status)
}

func (pm playbackModel) renderFooter() string {
	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Padding(0, 0, 0, 2)

	return footerStyle.Render("Press q to quit")
}

func phaseColor(phase m.Phase) lipgloss.Color {
	switch phase {
	case m.PhaseSorting:
		return lipgloss.Color("3") // Yellow
	case m.PhaseReplaying:
		return lipgloss.Color("6") // Cyan
	case m.PhaseValidating:
		return lipgloss.Color("2") // Green
	default:
		return lipgloss.Color("8") // Gray
	}
}
