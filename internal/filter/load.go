package filter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// LoadPatterns reads a JSON array of globs. Comments and trailing commas are allowed.
func LoadPatterns(file string) ([]string, error) {
	data, err := os.ReadFile(filepath.Clean(file))
	if err != nil {
		return nil, fmt.Errorf("reading patterns file %q: %w", file, err)
	}

	var patterns []string
	if err := json.Unmarshal(jsonc.ToJSONInPlace(data), &patterns); err != nil {
		return nil, fmt.Errorf("parsing patterns file %q: %w", file, err)
	}

	return normalizePatterns(patterns), nil
}
