// internal/cli/platform.go
package cli

import (
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/zkbench/zkbench-go/platforminfo"
)

// platformCmd implements 'platform', which prints what a report built on
// this machine would stamp into metadata.platform.
var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Show detected platform information",
	Long:  `Detect and print the platform fields (os, arch, cpu_count, cpu_vendor, gpu_vendor) that CreateMetadata would stamp into a report built on this machine.`,
	Run: func(cmd *cobra.Command, args []string) {
		p := platforminfo.Current()

		if GetSettings().Debug {
			pp.Println(p)
			return
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "os:         %s\n", p.OS)
		fmt.Fprintf(out, "arch:       %s\n", p.Arch)
		fmt.Fprintf(out, "cpu_count:  %d\n", p.CPUCount)
		if p.CPUVendor != "" {
			fmt.Fprintf(out, "cpu_vendor: %s\n", p.CPUVendor)
		}
		if p.GPUVendor != "" {
			fmt.Fprintf(out, "gpu_vendor: %s\n", p.GPUVendor)
		}
	},
}

func init() {
	rootCmd.AddCommand(platformCmd)
}
