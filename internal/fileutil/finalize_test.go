package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/idelchi/cryfa/internal/fileutil"
)

func TestCommit(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "in.fa")
	out := filepath.Join(dir, "in.fa.cryfa")

	if err := os.WriteFile(src, []byte("data"), 0o644); err != nil { //nolint:gosec // test fixture
		t.Fatal(err)
	}

	write := func() (err error) {
		tc, err := fileutil.NewTempContext(src, out)
		if err != nil {
			return err
		}

		defer tc.CleanupOnError(&err)

		if _, err = tc.TmpFile.WriteString("payload"); err != nil {
			return err
		}

		return tc.Commit()
	}

	if err := write(); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(out) //nolint:gosec // test path
	if err != nil {
		t.Fatal(err)
	}

	if string(got) != "payload" {
		t.Errorf("output = %q", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 2 {
		t.Errorf("expected no leftover temp files, got %d entries", len(entries))
	}
}

func TestCleanupOnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "in.fa")

	if err := os.WriteFile(src, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	tc, err := fileutil.NewTempContext(src, filepath.Join(dir, "out"))
	if err != nil {
		t.Fatal(err)
	}

	failure := errors.New("boom")
	tc.CleanupOnError(&failure)

	if _, err := os.Stat(tc.TmpName); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temp file still present: %v", err)
	}
}

func TestFinalizeOutput(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "out")
	if err := os.WriteFile(out, []byte("12345"), 0o600); err != nil {
		t.Fatal(err)
	}

	mod := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	size, err := fileutil.FinalizeOutput(out, true, mod)
	if err != nil {
		t.Fatal(err)
	}

	if size != 5 {
		t.Errorf("size = %d, want 5", size)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}

	if !info.ModTime().Equal(mod) {
		t.Errorf("mtime = %v, want %v", info.ModTime(), mod)
	}
}
