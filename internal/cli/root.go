// internal/cli/root.go
// Package cli provides the zkbench command tree. The binary is inspection
// tooling for report files produced with the library; it runs no
// benchmarks itself.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zkbench/zkbench-go/internal/config"
	"github.com/zkbench/zkbench-go/internal/logging"
)

var (
	cfgFile  string
	settings *config.Settings

	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "zkbench",
	Short:         "zkbench — inspect and validate cross-implementation benchmark reports",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		settings = cfg

		if settings.NoColor {
			color.NoColor = true
		}
		if err := logging.Init(settings.LogFile); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

// GetSettings returns the configuration resolved for the current invocation.
func GetSettings() *config.Settings {
	if settings == nil {
		return &config.Settings{}
	}
	return settings
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	defer func() { _ = logging.Close() }()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./zkbench.{json,yaml})")
	rootCmd.PersistentFlags().Bool("debug", false, "enable verbose debug output")
	rootCmd.PersistentFlags().String("log-file", "", "append log output to this file")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().Int("indent", 2, "JSON indentation width for report output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("log-file"))
	_ = viper.BindPFlag("noColor", rootCmd.PersistentFlags().Lookup("no-color"))
	_ = viper.BindPFlag("indent", rootCmd.PersistentFlags().Lookup("indent"))
}
