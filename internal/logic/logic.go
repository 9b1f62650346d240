// Package logic wires file resolution, the batch processor and reporting together.
package logic

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/apdec/internal/batch"
	"github.com/idelchi/apdec/internal/config"
	"github.com/idelchi/apdec/internal/filter"
)

// Stats summarizes one run.
type Stats struct {
	Scanned   int
	Excluded  int
	Processed int
	Errored   int
	Size      int64
	Duration  time.Duration
}

// Run is the main logic of the application: it decodes (or encodes) every
// resolved file and reports per-file outcomes. The returned error is non-nil
// when any file failed. Per-file results go to stdout, failures and stats to stderr.
func Run(cfg *config.Config, stdout, stderr io.Writer) error {
	start := time.Now()

	scanned, err := resolveFiles(cfg)
	if err != nil {
		return fmt.Errorf("resolving files: %w", err)
	}

	proc, err := batch.NewProcessor(cfg)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	proc.SetOutput(stdout, stderr)

	processed, errored, totalSize, err := proc.ProcessFiles()

	if cfg.Stats {
		printStats(stderr, Stats{
			Scanned:   scanned,
			Excluded:  scanned - len(cfg.Files),
			Processed: processed,
			Errored:   errored,
			Size:      totalSize,
			Duration:  time.Since(start),
		})
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// resolveFiles expands directories and applies include/exclude filtering.
// Returns the total number of files scanned before filtering.
func resolveFiles(cfg *config.Config) (int, error) {
	defaults := batch.DecodablePatterns()
	if cfg.Encode {
		defaults = batch.EncodablePatterns()
	}

	flt, err := filter.Patterns{
		Include:     cfg.Include,
		Exclude:     cfg.Exclude,
		IncludeFrom: cfg.IncludeFrom,
		ExcludeFrom: cfg.ExcludeFrom,
	}.Build(defaults)
	if err != nil {
		return 0, fmt.Errorf("building filter: %w", err)
	}

	files, scanned, err := filter.Resolve(cfg.Files, flt)
	if err != nil {
		return scanned, fmt.Errorf("filtering files: %w", err)
	}

	cfg.Files = files

	return scanned, nil
}

func printStats(w io.Writer, s Stats) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Scanned:   %d\n", s.Scanned)
	fmt.Fprintf(w, "  Excluded:  %d\n", s.Excluded)
	fmt.Fprintf(w, "  Processed: %d\n", s.Processed)
	fmt.Fprintf(w, "  Errors:    %d\n", s.Errored)
	//nolint:gosec // Size is always non-negative (sum of file sizes)
	fmt.Fprintf(w, "  Size:      %s\n", humanize.IBytes(uint64(max(0, s.Size))))
	fmt.Fprintf(w, "  Duration:  %s\n", s.Duration.Round(time.Millisecond))
}
