// Package keyfile reads the password from a key file.
package keyfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrKeyFileUnavailable is returned when no key file is set, it cannot be read,
// or its first line is empty.
var ErrKeyFileUnavailable = errors.New("key file unavailable")

// Read returns the first line of the file at path, without its line terminator.
func Read(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: no key file has been set", ErrKeyFileUnavailable)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrKeyFileUnavailable, err)
	}

	line, _, _ := bytes.Cut(data, []byte{'\n'})
	if len(line) == 0 {
		return "", fmt.Errorf("%w: empty password line in %q", ErrKeyFileUnavailable, path)
	}

	return string(line), nil
}
