package output

import (
	"context"
	"fmt"
	"os"

	"github.com/quantmind-br/demobuild/internal/domain"
	"github.com/quantmind-br/demobuild/internal/utils"
)

// Ensure Writer implements domain.Writer
var _ domain.Writer = (*Writer)(nil)

// Writer handles writing build artifacts to the filesystem
type Writer struct {
	dryRun    bool
	collector *Collector
	logger    *utils.Logger
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	DryRun bool
	// Collector, when set, records every artifact written
	Collector *Collector
	Logger    *utils.Logger
}

// NewWriter creates a new artifact writer
func NewWriter(opts WriterOptions) *Writer {
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}

	return &Writer{
		dryRun:    opts.DryRun,
		collector: opts.Collector,
		logger:    opts.Logger.WithComponent("output"),
	}
}

// Write saves content to path, creating parent directories.
// Existing files are overwritten. In dry-run mode nothing touches the disk.
func (w *Writer) Write(ctx context.Context, path string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if w.dryRun {
		w.logger.Info().
			Str("path", path).
			Int("bytes", len(content)).
			Msg("Dry run: skipping write")
		w.record(path, len(content))
		return nil
	}

	if err := utils.EnsureDir(path); err != nil {
		return fmt.Errorf("failed to create output directory for %s: %w", path, err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	w.logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("Wrote artifact")
	w.record(path, len(content))
	return nil
}

// record adds an artifact to the collector, if any
func (w *Writer) record(path string, size int) {
	if w.collector != nil {
		w.collector.Add(path, size)
	}
}
