package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/cryfa/internal/config"
	"github.com/idelchi/cryfa/internal/logic"
)

// NewRootCommand creates the root command with common configuration.
// Without a subcommand it encrypts, or decrypts when -d is given.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "cryfa [flags] -k KEYFILE FILE|DIR...",
		Short: "A FASTA encryption and decryption tool",
		Long: `Encrypts FASTA files with AES-128-CBC using a key derived from a password.

The password is the first line of the key file. Records without a header, or
with a space in a sequence line, are dropped before encryption.

--help and --about print their text and exit with status 0.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if showAbout(cmd) {
				return nil
			}

			return preRun(cfg, nil)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showAbout(cmd) {
				return About(cmd.OutOrStdout(), version)
			}

			return logic.Run(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	root.Flags().BoolP("decrypt", "d", false, "Decrypt mode")
	root.Flags().BoolP("about", "a", false, "About the program")

	flags := root.PersistentFlags()

	flags.StringP("key", "k", "", "Path to the key file; its first line is the password")
	flags.BoolP("verbose", "v", false, "Print sizes and the derived key and IV to stderr")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")

	flags.BoolP("write", "w", false, "Write output files next to the inputs instead of stdout")
	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers in write mode, defaults to number of CPUs")
	flags.Bool("delete", false, "Delete the original file after successful encryption/decryption")
	flags.Bool("preserve-timestamps", false, "Copy the modification time of inputs to outputs")

	flags.String("encrypt-ext", ".cryfa", "Suffix to append to encrypted files")
	flags.String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")

	flags.StringSliceP("include", "i", nil, "Glob of files to take from directories (repeatable)")
	flags.StringSliceP("exclude", "e", nil, "Glob of files to skip in directories (repeatable)")
	flags.String("include-from", "", "JSONC file with an array of include globs")
	flags.String("exclude-from", "", "JSONC file with an array of exclude globs")

	flags.Bool("stats", false, "Print statistics after processing")
	flags.Bool("dry", false, "Show what would be processed without doing it")

	root.AddCommand(NewEncryptCommand(cfg), NewDecryptCommand(cfg))

	return root
}

func showAbout(cmd *cobra.Command) bool {
	about, err := cmd.Flags().GetBool("about")

	return err == nil && about
}
