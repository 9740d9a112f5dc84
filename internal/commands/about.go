package commands

import (
	"fmt"
	"io"

	"github.com/idelchi/cryfa/internal/encryption"
)

const aboutText = `
cryfa %s (format v%d.%d)
================
A FASTA encryption and decryption tool

Diogo Pratas & Armando J. Pinho
Copyright (C) 2017 University of Aveiro

This is a Free software, under GPLv3. You may redistribute
copies of it under the terms of the GNU - General Public
License v3 <http://www.gnu.org/licenses/gpl.html>. There
is NOT ANY WARRANTY, to the extent permitted by law.

`

// About writes program and license information.
func About(w io.Writer, version string) error {
	if _, err := fmt.Fprintf(w, aboutText, version, encryption.FormatVersion, encryption.FormatRelease); err != nil {
		return fmt.Errorf("writing about: %w", err)
	}

	return nil
}
