// Package partials discovers the mustache partials that sit beside a demo
// template.
package partials

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/demobuild/internal/domain"
	"github.com/quantmind-br/demobuild/internal/utils"
)

// Extension marks a template file
const Extension = ".mustache"

// Resolver builds PartialMaps from a directory tree
type Resolver struct {
	workers int
	logger  *utils.Logger
}

// NewResolver creates a resolver reading up to workers files at once
func NewResolver(workers int, logger *utils.Logger) *Resolver {
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Resolver{
		workers: workers,
		logger:  logger.WithComponent("partials"),
	}
}

type partialFile struct {
	key  string
	path string
}

// Resolve returns every .mustache file under baseDir keyed by its path
// relative to baseDir, without the extension and with forward slashes.
// A missing or empty directory yields an empty map.
func (r *Resolver) Resolve(ctx context.Context, baseDir string) (domain.PartialMap, error) {
	baseDir = filepath.Clean(baseDir)
	files, err := discover(baseDir)
	if err != nil {
		return nil, err
	}

	outcomes := utils.ParallelMap(ctx, files, r.workers, func(ctx context.Context, f partialFile) (string, error) {
		data, err := os.ReadFile(f.path)
		if err != nil {
			return "", fmt.Errorf("failed to read partial %s: %w", f.path, err)
		}
		return string(data), nil
	})

	contents, err := utils.Join(outcomes)
	if err != nil {
		return nil, err
	}

	partials := make(domain.PartialMap, len(files))
	for i, f := range files {
		partials[f.key] = contents[i]
	}

	r.logger.Debug().
		Str("dir", baseDir).
		Int("count", len(partials)).
		Msg("Resolved partials")

	return partials, nil
}

func discover(baseDir string) ([]partialFile, error) {
	var files []partialFile

	err := filepath.WalkDir(baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == baseDir && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), Extension) {
			return nil
		}

		files = append(files, partialFile{key: Key(baseDir, path), path: path})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan partials in %s: %w", baseDir, err)
	}

	return files, nil
}

// Key computes the registration key of a partial file under baseDir
func Key(baseDir, path string) string {
	rel, err := filepath.Rel(baseDir, path)
	if err != nil {
		rel = path
	}
	rel = strings.TrimSuffix(rel, Extension)
	return filepath.ToSlash(rel)
}
