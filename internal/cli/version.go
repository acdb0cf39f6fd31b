// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	zkbench "github.com/zkbench/zkbench-go"
)

// versionCmd implements 'version', printing the build stamps and the
// report library version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "zkbench %s (library %s, commit %s, built %s)\n",
			appVersion, zkbench.Version, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
