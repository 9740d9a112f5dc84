// Package logic wires key derivation, input resolution and the per-file
// pipelines into a single run.
package logic

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/cryfa/internal/config"
	"github.com/idelchi/cryfa/internal/diag"
	"github.com/idelchi/cryfa/internal/encryption"
	"github.com/idelchi/cryfa/internal/fileutil"
	"github.com/idelchi/cryfa/internal/filter"
	"github.com/idelchi/cryfa/internal/keyfile"
	"github.com/idelchi/cryfa/internal/keys"
)

var (
	// ErrSourceFileUnavailable is returned when an input cannot be found or read.
	ErrSourceFileUnavailable = errors.New("source file unavailable")
	// ErrMultipleInputs is returned when several inputs would be written to stdout.
	ErrMultipleInputs = errors.New("multiple inputs require --write")
)

// Run is the main logic of the application. Results go to stdout,
// diagnostics and progress to stderr.
func Run(cfg *config.Config, stdout, stderr io.Writer) error {
	start := time.Now()

	password, err := keyfile.Read(cfg.Key)
	if err != nil {
		return err
	}

	material, err := keys.Derive(password)
	if err != nil {
		return err
	}

	log := diag.New(stderr, cfg.Verbose)
	defer log.Sync() //nolint:errcheck // stderr sync errors are not actionable

	mode := modeOf(cfg)

	if cfg.Verbose {
		log.Debug("mode", zap.Stringer("pipeline", mode))

		if err := material.Dump(stderr); err != nil {
			return fmt.Errorf("dumping key material: %w", err)
		}
	}

	scanned, err := resolveFiles(cfg)
	if err != nil {
		return fmt.Errorf("resolving files: %w", err)
	}

	if cfg.Dry {
		return dryRun(cfg, stdout, stderr, scanned, start)
	}

	proc := encryption.NewProcessor(material, log)

	if !cfg.Write {
		if len(cfg.Files) != 1 {
			return fmt.Errorf("%w: got %d inputs", ErrMultipleInputs, len(cfg.Files))
		}

		return processStream(proc, mode, cfg.Files[0], stdout)
	}

	processed, errored, totalSize, err := processFiles(cfg, proc, mode, stdout, stderr)

	if cfg.Stats {
		printStats(stderr, scanned, processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

func modeOf(cfg *config.Config) encryption.Mode {
	if cfg.Decrypt {
		return encryption.ModeDecrypt
	}

	return encryption.ModeEncrypt
}

// resolveFiles expands directories and applies include/exclude filtering.
// Returns the total number of files scanned before filtering.
func resolveFiles(cfg *config.Config) (int, error) {
	includes := append([]string{}, cfg.Include...)
	excludes := append([]string{}, cfg.Exclude...)

	if cfg.IncludeFrom != "" {
		patterns, err := filter.LoadPatterns(cfg.IncludeFrom)
		if err != nil {
			return 0, fmt.Errorf("loading include patterns: %w", err)
		}

		includes = append(includes, patterns...)
	}

	if cfg.ExcludeFrom != "" {
		patterns, err := filter.LoadPatterns(cfg.ExcludeFrom)
		if err != nil {
			return 0, fmt.Errorf("loading exclude patterns: %w", err)
		}

		excludes = append(excludes, patterns...)
	}

	if len(includes) == 0 {
		if cfg.Decrypt {
			includes = []string{"*" + cfg.Suffixes.Encrypt}
		} else {
			includes = filter.FASTA
		}
	}

	flt, err := filter.New(includes, excludes)
	if err != nil {
		return 0, err
	}

	files, scanned, err := filter.Resolve(cfg.Files, flt)
	if err != nil {
		return scanned, fmt.Errorf("%w: %w", ErrSourceFileUnavailable, err)
	}

	cfg.Files = files

	return scanned, nil
}

// processStream runs one pipeline from a file to w.
func processStream(proc *encryption.Processor, mode encryption.Mode, filename string, w io.Writer) error {
	input, err := os.Open(filepath.Clean(filename))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSourceFileUnavailable, err)
	}
	defer input.Close()

	if err := proc.Process(mode, input, w); err != nil {
		return fmt.Errorf("%s %q: %w", mode, filename, err)
	}

	return nil
}

// processFiles concurrently processes all files into output files.
// Returns the number of successfully processed files and the number of errors.
//
//nolint:cyclop,gocognit // parallel processing pipeline with printer goroutine
func processFiles(
	cfg *config.Config,
	proc *encryption.Processor,
	mode encryption.Mode,
	stdout, stderr io.Writer,
) (processed, errored int, totalSize int64, err error) {
	results := make(chan encryption.Result, len(cfg.Files))

	group := errgroup.Group{}
	group.SetLimit(cfg.Parallel)

	printed := make(chan struct{})

	go func() {
		defer close(printed)

		for res := range results {
			if res.Error != nil {
				errored++

				fmt.Fprintf(stderr, "Error processing %q: %v\n", res.Input, res.Error)

				continue
			}

			processed++

			totalSize += res.OutputSize

			if !cfg.Quiet {
				fmt.Fprintf(stdout, "Processed %q -> %q\n", res.Input, res.Output)
			}

			if cfg.Delete {
				if err := os.Remove(res.Input); err != nil {
					fmt.Fprintf(stderr, "Error deleting %q: %v\n", res.Input, err)
				} else if !cfg.Quiet {
					fmt.Fprintf(stdout, "Deleted %q\n", res.Input)
				}
			}
		}
	}()

	for _, file := range cfg.Files {
		group.Go(func() error {
			outPath := outputPath(file, cfg)

			size, err := processFile(proc, mode, file, outPath, cfg.PreserveTimestamps)
			if err != nil {
				results <- encryption.Result{Input: file, Error: err}

				return err
			}

			results <- encryption.Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(results)

	<-printed

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// processFile runs one pipeline into a temporary file and atomically renames it to outPath.
func processFile(
	proc *encryption.Processor,
	mode encryption.Mode,
	filename, outPath string,
	preserveTimestamps bool,
) (size int64, err error) {
	if filepath.Clean(outPath) == filepath.Clean(filename) {
		return 0, fmt.Errorf("output %q would overwrite its input", outPath)
	}

	input, err := os.Open(filepath.Clean(filename))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSourceFileUnavailable, err)
	}
	defer input.Close()

	tc, err := fileutil.NewTempContext(filename, outPath)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer tc.CleanupOnError(&err)

	if err = proc.Process(mode, input, tc.TmpFile); err != nil {
		return 0, fmt.Errorf("%s: %w", mode, err)
	}

	if err = tc.Commit(); err != nil {
		return 0, err
	}

	size, err = fileutil.FinalizeOutput(outPath, preserveTimestamps, tc.SrcInfo.ModTime())
	if err != nil {
		return 0, fmt.Errorf("finalizing output: %w", err)
	}

	return size, nil
}

// outputPath appends the encrypt suffix, or strips it and appends the decrypt suffix.
func outputPath(filename string, cfg *config.Config) string {
	ext := cfg.Suffixes.Encrypt

	if cfg.Decrypt {
		filename = strings.TrimSuffix(filename, cfg.Suffixes.Encrypt)
		ext = cfg.Suffixes.Decrypt
	}

	return filepath.Join(filepath.Dir(filename), filepath.Base(filename)+ext)
}

// dryRun previews what would be processed without touching any file.
func dryRun(cfg *config.Config, stdout, stderr io.Writer, scanned int, start time.Time) error {
	var totalSize int64

	for _, file := range cfg.Files {
		target := "<stdout>"
		if cfg.Write {
			target = outputPath(file, cfg)
		}

		if !cfg.Quiet {
			fmt.Fprintf(stdout, "Would process %q -> %q\n", file, target)
		}

		if info, err := os.Stat(file); err == nil {
			totalSize += info.Size()
		}
	}

	if cfg.Stats {
		printStats(stderr, scanned, len(cfg.Files), 0, totalSize, time.Since(start))
	}

	return nil
}

func printStats(w io.Writer, scanned, processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Scanned:   %d\n", scanned)
	fmt.Fprintf(w, "  Excluded:  %d\n", max(0, scanned-processed-errored))
	fmt.Fprintf(w, "  Processed: %d\n", processed)
	fmt.Fprintf(w, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(w, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
