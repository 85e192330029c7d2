package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/sortviz/internal/model"
)

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "Visualize a sorting algorithm",
		Long:  "Visualize a sorting algorithm over a freshly generated random array.",
		Args:  cobra.MaximumNArgs(1),
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

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
