// internal/cli/validate.go
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zkbench/zkbench-go/internal/logging"
	"github.com/zkbench/zkbench-go/schema"
)

// validateCmd implements 'validate', which checks a report file against the
// shared interchange schema.
var validateCmd = &cobra.Command{
	Use:   "validate <report.json>",
	Short: "Validate a report file against the shared schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read report %s: %w", path, err)
		}

		if err := schema.ValidateReport(data); err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), color.RedString("FAIL %s", path))
			return err
		}

		logging.LogEvent("validated %s", path)
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("PASS %s", path))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
