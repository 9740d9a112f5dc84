package keys

import (
	"fmt"
	"io"
	"strings"
)

const (
	// KeySize is the AES-128 key length in bytes.
	KeySize = 16
	// IVSize is the AES block size in bytes.
	IVSize = 16
)

// Material holds the derived AES key and initialization vector.
type Material struct {
	Key [KeySize]byte
	IV  [IVSize]byte
}

// Dump writes the IV and key as decimal byte lists, one per line.
// The layout mirrors the verbose output of earlier releases.
func (m Material) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "IV : [%s]\n", decimal(m.IV[:])); err != nil {
		return fmt.Errorf("writing IV: %w", err)
	}

	if _, err := fmt.Fprintf(w, "KEY: [%s]\n", decimal(m.Key[:])); err != nil {
		return fmt.Errorf("writing key: %w", err)
	}

	return nil
}

func decimal(b []byte) string {
	var sb strings.Builder

	for _, v := range b {
		fmt.Fprintf(&sb, "%d ", v)
	}

	return sb.String()
}
