package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/cryfa/internal/config"
	"github.com/idelchi/cryfa/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	decrypt := true

	return &cobra.Command{
		Use:     "decrypt [flags] -k KEYFILE FILE|DIR...",
		Aliases: []string{"dec"},
		Short:   "Decrypt cryfa files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg, &decrypt),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.Run(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}
