// Command cryfa encrypts and decrypts FASTA files with a password-derived AES key.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/cryfa/internal/commands"
	"github.com/idelchi/cryfa/internal/config"
)

// Global variable for CI stamping.
var version = "unknown - unofficial & generated by unknown"

func main() {
	var cfg config.Config

	if err := commands.NewRootCommand(&cfg, version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		os.Exit(1)
	}
}
