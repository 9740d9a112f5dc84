// Package filter resolves command-line inputs into the list of files to process.
// Explicit files are always taken; directories are walked and filtered by globs.
package filter

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FASTA lists the globs used to discover plaintext inputs when no includes are given.
//
//nolint:gochecknoglobals // read-only defaults
var FASTA = []string{"*.fa", "*.fasta", "*.fna", "*.ffn", "*.faa", "*.frn"}

// Filter selects walked files by glob. Excludes always win.
// A pattern without "/" is matched against the base name, otherwise against
// the slash-separated path.
type Filter struct {
	includes []string
	excludes []string
}

// New validates the patterns and returns a Filter.
func New(includes, excludes []string) (*Filter, error) {
	includes = normalizePatterns(includes)
	excludes = normalizePatterns(excludes)

	for _, p := range append(append([]string{}, includes...), excludes...) {
		if _, err := path.Match(p, ""); err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
	}

	return &Filter{includes: includes, excludes: excludes}, nil
}

// Match reports whether the slash-separated path is selected.
func (f *Filter) Match(name string) bool {
	return matchAny(f.includes, name) && !matchAny(f.excludes, name)
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		target := name
		if !strings.Contains(p, "/") {
			target = path.Base(name)
		}

		if ok, _ := path.Match(p, target); ok {
			return true
		}
	}

	return false
}

// normalizePatterns strips leading "./" and drops blank patterns.
func normalizePatterns(patterns []string) []string {
	out := make([]string, 0, len(patterns))

	for _, p := range patterns {
		p = strings.TrimPrefix(strings.TrimSpace(p), "./")
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}

// Resolve takes positional args (files/directories) and returns the files to process
// together with the number of candidates scanned. Files are added directly
// (bypassing filtering); directories are walked and filtered.
func Resolve(args []string, flt *Filter) (files []string, scanned int, err error) {
	seen := make(map[string]struct{})

	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}

		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return nil, 0, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			scanned++

			add(arg)

			continue
		}

		walked, total, err := walkDir(arg, flt)
		if err != nil {
			return nil, 0, err
		}

		scanned += total

		for _, p := range walked {
			add(p)
		}
	}

	if len(files) == 0 {
		return nil, scanned, fmt.Errorf("no files matched the provided patterns: %v", args)
	}

	return files, scanned, nil
}

// walkDir walks root recursively, returning files that pass the filter.
func walkDir(root string, flt *Filter) (files []string, total int, err error) {
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		total++

		if flt.Match(filepath.ToSlash(p)) {
			files = append(files, p)
		}

		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("walking %q: %w", root, err)
	}

	return files, total, nil
}
