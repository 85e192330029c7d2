// Package cmd provides the root command and CLI setup for sortviz.
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mouse-blink/sortviz/internal/adapter"
	"github.com/mouse-blink/sortviz/internal/controller"
	"github.com/mouse-blink/sortviz/internal/domain"
	m "github.com/mouse-blink/sortviz/internal/model"
)

var engine domain.Engine

func init() {
	engine = domain.NewEngine()
}

var countFlag int
var seedFlag int64
var delayFlag int
var simpleFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sortviz [algorithm]",
		Short: "Terminal sorting algorithm visualizer",
		Long: `Sortviz animates classic sorting algorithms as colored bars in the
terminal. The selected algorithm sorts a randomly generated array
while recording every swap and overwrite; the recorded moves are then
replayed at a fixed cadence and the sorted result is validated with a
short confirmation animation.

Algorithms: bubble, merge, counting, quick (or the full names).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algorithm := m.AlgorithmBubble

			if len(args) == 1 {
				parsed, err := m.ParseAlgorithm(args[0])
				if err != nil {
					return err
				}

				algorithm = parsed
			}

			return runVisualize(cmd, algorithm)
		},
	}
	cmd.PersistentFlags().IntVarP(&countFlag, "count", "n", 40, "number of array elements to sort")
	cmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "random seed for array generation (0 = time-based)")
	cmd.PersistentFlags().IntVarP(&delayFlag, "delay", "d", 5, "milliseconds between replayed moves")
	cmd.PersistentFlags().BoolVar(&simpleFlag, "simple", false, "force plain text output instead of the TUI")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// runVisualize wires a workflow for one visualization run and drives
// it to completion.
func runVisualize(cmd *cobra.Command, algorithm m.Algorithm) error {
	ui := newUI(cmd)
	if err := ui.Start(controller.WithDelay(time.Duration(delayFlag) * time.Millisecond)); err != nil {
		return err
	}
	defer ui.Close()

	columns, rows := displaySize()
	workflow := domain.NewWorkflow(adapter.NewRandomSource(seedFlag), engine, ui)

	return workflow.Visualize(domain.VisualizeArgs{
		Algorithm: algorithm,
		Count:     countFlag,
		Columns:   columns,
		Rows:      rows,
	})
}

func newUI(cmd *cobra.Command) controller.UI {
	useTTY := controller.IsTTY(os.Stdout) && !simpleFlag

	return controller.NewUI(cmd, useTTY)
}

// displaySize returns the columns and rows available for the bar
// chart, leaving room for the title, status line, and footer.
func displaySize() (columns, rows int) {
	columns, rows = 80, 24

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		columns, rows = w, h
	}

	columns -= 4

	rows -= 8
	if rows < 4 {
		rows = 4
	}

	return columns, rows
}
