// internal/cli/view.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/zkbench/zkbench-go/internal/tui"
)

// viewCmd implements 'view', an interactive browser over a report file.
var viewCmd = &cobra.Command{
	Use:   "view <report.json>",
	Short: "Browse a report file interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := loadReport(args[0])
		if err != nil {
			return err
		}
		return tui.Run(report, args[0])
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
