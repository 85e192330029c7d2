package controller

import (
	"bytes"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/sortviz/internal/model"
)

// SimpleUI implements UI using cobra Command's output. It drains the
// animation synchronously with no timers, which makes it usable in
// pipes and CI output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// Animate drains the ticker in a plain loop, reporting phase changes
// as they happen.
func (s *SimpleUI) Animate(run m.Run, ticker Ticker) error {
	s.printf("%s: replaying %d moves over %d elements\n", run.Algorithm, len(run.Log), len(run.Input))

	phase := ticker.Phase()

	for ticker.Tick() {
		if p := ticker.Phase(); p != phase {
			phase = p

			if phase == m.PhaseValidating {
				s.printf("replay complete, validating\n")
			}
		}
	}

	applied, total := ticker.Progress()
	s.printf("validation complete (%d/%d moves applied)\n", applied, total)

	return nil
}

// DisplaySummary prints the final run counters as a table.
func (s *SimpleUI) DisplaySummary(run m.Run) error {
	var buf bytes.Buffer

	renderComparisonTable(&buf, []m.Run{run})
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayAlgorithms prints the supported algorithms and their
// properties as a table.
func (s *SimpleUI) DisplayAlgorithms(infos []m.AlgorithmInfo) error {
	var buf bytes.Buffer

	renderAlgorithmsTable(&buf, infos)
	s.printf("\n%s", buf.String())

	return nil
}

func renderAlgorithmsTable(w io.Writer, infos []m.AlgorithmInfo) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Stable", "In-Place", "Records"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	for _, info := range infos {
		table.Append([]string{
			string(info.Algorithm),
			yesNo(info.Stable),
			yesNo(info.InPlace),
			info.Records,
		})
	}

	table.Render()
}

// DisplayComparison prints counters for several runs side by side.
func (s *SimpleUI) DisplayComparison(runs []m.Run) error {
	var buf bytes.Buffer

	renderComparisonTable(&buf, runs)
	s.printf("\n%s", buf.String())

	return nil
}

func renderComparisonTable(w io.Writer, runs []m.Run) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Elements", "Moves", "Comparisons", "Accesses"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, run := range runs {
		table.Append([]string{
			string(run.Algorithm),
			fmt.Sprintf("%d", len(run.Input)),
			fmt.Sprintf("%d", run.Stats.Moves),
			fmt.Sprintf("%d", run.Stats.Comparisons),
			fmt.Sprintf("%d", run.Stats.ArrayAccesses),
		})
	}

	table.Render()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
