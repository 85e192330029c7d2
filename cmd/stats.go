package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/sortviz/internal/adapter"
	"github.com/mouse-blink/sortviz/internal/domain"
)

// statsCmd represents the stats command.
var statsCmd = newStatsCmd()

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Compare all algorithms on one array",
		Long: `Sort copies of a single generated array with every supported
algorithm and print their move, comparison, and access counters side
by side. No animation is shown.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			workflow := domain.NewWorkflow(adapter.NewRandomSource(seedFlag), engine, newUI(cmd))

			return workflow.Compare(domain.CompareArgs{Count: countFlag})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
