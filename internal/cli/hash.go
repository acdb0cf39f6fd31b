// internal/cli/hash.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zkbench/zkbench-go/hashing"
)

// hashCmd implements 'hash', which prints the content hash of a file the
// way TestVectors records it.
var hashCmd = &cobra.Command{
	Use:   "hash <file>",
	Short: "Print the SHA-256 content hash of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), hashing.ComputeHash(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)
}
