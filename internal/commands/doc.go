// Package commands provides the command-line interface for the cryfa tool.
//
// It implements:
//   - encryption (the default, or the encrypt subcommand)
//   - decryption (-d, or the decrypt subcommand)
//   - the about text
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/cryfa/internal/config"
)

// EnvPrefix is prepended to every flag name to form its environment variable.
const EnvPrefix = "CRYFA"

// preRun returns a PreRunE handler that loads flags and environment into cfg,
// resolves positional args into cfg.Files, and validates the configuration.
func preRun(cfg *config.Config, decrypt *bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		v := viper.New()
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		v.AutomaticEnv()

		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("binding flags: %w", err)
		}

		if err := v.Unmarshal(cfg); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}

		if decrypt != nil {
			cfg.Decrypt = *decrypt
		}

		cfg.Files = args

		return cfg.Validate()
	}
}
