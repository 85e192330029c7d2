package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/sortviz/internal/adapter"
	"github.com/mouse-blink/sortviz/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List supported sorting algorithms",
		Long:  "List the supported sorting algorithms and their properties.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			workflow := domain.NewWorkflow(adapter.NewRandomSource(seedFlag), engine, newUI(cmd))

			return workflow.List()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
