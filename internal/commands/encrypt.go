package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/cryfa/internal/config"
	"github.com/idelchi/cryfa/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	decrypt := false

	return &cobra.Command{
		Use:     "encrypt [flags] -k KEYFILE FILE|DIR...",
		Aliases: []string{"enc"},
		Short:   "Encrypt FASTA files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg, &decrypt),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.Run(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}
