// internal/cli/summary.go
package cli

import (
	"fmt"
	"os"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/zkbench/zkbench-go/schema"
)

// summaryCmd implements 'summary', which prints the metrics of every
// benchmark in a report file.
var summaryCmd = &cobra.Command{
	Use:   "summary <report.json>",
	Short: "Print a per-benchmark summary of a report file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := loadReport(args[0])
		if err != nil {
			return err
		}

		if GetSettings().Debug {
			pp.Println(report)
		}
		fmt.Fprint(cmd.OutOrStdout(), renderReport(report))
		return nil
	},
}

func loadReport(path string) (*schema.BenchmarkReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}
	report, err := schema.ParseReport(data)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
