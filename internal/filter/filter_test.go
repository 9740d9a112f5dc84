package filter_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/idelchi/cryfa/internal/filter"
)

func touch(t *testing.T, root string, names ...string) {
	t.Helper()

	for _, name := range names {
		full := filepath.Join(root, name)

		if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(full, []byte(">a\nAC\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	flt, err := filter.New(filter.FASTA, []string{"./tmp/*", "*.skip.fa"})
	if err != nil {
		t.Fatal(err)
	}

	tests := map[string]bool{
		"a.fa":            true,
		"dir/b.fasta":     true,
		"dir/deep/c.fna":  true,
		"notes.txt":       false,
		"tmp/x.fa":        false,
		"dir/y.skip.fa":   false,
		"a.fa.cryfa":      false,
		"dir/tmp/nest.fa": true,
	}

	for name, want := range tests {
		if got := flt.Match(name); got != want {
			t.Errorf("Match(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestNewInvalidPattern(t *testing.T) {
	t.Parallel()

	if _, err := filter.New([]string{"[a-"}, nil); err == nil {
		t.Fatal("expected error for malformed pattern")
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	touch(t, root, "a.fa", "b.txt", "sub/c.fasta", "sub/d.fa.cryfa")

	flt, err := filter.New(filter.FASTA, nil)
	if err != nil {
		t.Fatal(err)
	}

	explicit := filepath.Join(root, "b.txt")

	files, scanned, err := filter.Resolve([]string{root, explicit, filepath.Join(root, "a.fa")}, flt)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(root, "a.fa"),
		filepath.Join(root, "sub", "c.fasta"),
		explicit,
	}

	if !slices.Equal(files, want) {
		t.Errorf("Resolve() = %v, want %v", files, want)
	}

	if scanned != 6 {
		t.Errorf("scanned = %d, want 6", scanned)
	}
}

func TestResolveNoMatches(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	touch(t, root, "notes.txt")

	flt, err := filter.New(filter.FASTA, nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := filter.Resolve([]string{root}, flt); err == nil {
		t.Fatal("expected error when nothing matches")
	}
}

func TestLoadPatterns(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "patterns.jsonc")
	content := `[
		// genomes
		"./*.fa",
		"*.fasta", // proteins
		"",
	]`

	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := filter.LoadPatterns(file)
	if err != nil {
		t.Fatal(err)
	}

	if want := []string{"*.fa", "*.fasta"}; !slices.Equal(got, want) {
		t.Errorf("LoadPatterns() = %v, want %v", got, want)
	}
}
