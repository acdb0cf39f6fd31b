// internal/config/config.go
// Package config manages the zkbench CLI settings, layered from defaults,
// an optional config file, and ZKBENCH_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const defaultIndent = 2

// Settings represents the CLI configuration. The library packages take
// explicit parameters; only the command tree reads these.
type Settings struct {
	Debug   bool   `mapstructure:"debug"`
	LogFile string `mapstructure:"logFile"`
	Indent  int    `mapstructure:"indent"`
	NoColor bool   `mapstructure:"noColor"`
}

// IndentWidth returns the JSON indentation width for report output,
// falling back to the default when unset or invalid.
func (s Settings) IndentWidth() int {
	if s.Indent <= 0 {
		return defaultIndent
	}
	return s.Indent
}

// Load reads settings from cfgFile when given, otherwise from an optional
// zkbench config file in the working directory. A missing default file is
// not an error; a named file that cannot be read is.
func Load(cfgFile string) (*Settings, error) {
	// every key needs a registered default so environment-only overrides
	// survive viper.Unmarshal
	viper.SetDefault("debug", false)
	viper.SetDefault("logFile", "")
	viper.SetDefault("indent", defaultIndent)
	viper.SetDefault("noColor", false)
	viper.SetEnvPrefix("ZKBENCH")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		viper.SetConfigName("zkbench")
		viper.AddConfigPath(".")
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var settings Settings
	if err := viper.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &settings, nil
}
