// Package demodata resolves the data object a demo template is rendered with.
//
// A demo's data is either absent, an inline object, a path relative to the
// project root, or an http(s) URL fetched exactly once.
package demodata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quantmind-br/demobuild/internal/domain"
	"github.com/quantmind-br/demobuild/internal/utils"
)

// Loader resolves demo data
type Loader struct {
	cwd     string
	fetcher domain.Fetcher
	workers int
	logger  *utils.Logger
}

// LoaderOptions contains options for creating a Loader
type LoaderOptions struct {
	Cwd     string
	Fetcher domain.Fetcher
	Workers int
	Logger  *utils.Logger
}

// NewLoader creates a new data loader
func NewLoader(opts LoaderOptions) *Loader {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}
	return &Loader{
		cwd:     opts.Cwd,
		fetcher: opts.Fetcher,
		workers: opts.Workers,
		logger:  opts.Logger.WithComponent("demodata"),
	}
}

// Load resolves the data of one demo
func (l *Loader) Load(ctx context.Context, demo domain.DemoConfig) (map[string]any, error) {
	switch data := demo.Data.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return data, nil
	case string:
		if utils.LooksLikeURL(data) {
			return l.loadRemote(ctx, data)
		}
		return l.loadLocal(data)
	default:
		return nil, domain.NewManifestError(fmt.Sprintf("demo %q has unsupported data of type %T", demo.Name, data))
	}
}

// LoadAll resolves the data of every demo concurrently, keyed by demo name.
// The first failure aborts the whole set.
func (l *Loader) LoadAll(ctx context.Context, demos []domain.DemoConfig) (map[string]map[string]any, error) {
	outcomes := utils.ParallelMap(ctx, demos, l.workers, func(ctx context.Context, demo domain.DemoConfig) (map[string]any, error) {
		data, err := l.Load(ctx, demo)
		if err != nil {
			l.logger.WithDemo(demo.Name).Debug().Err(err).Msg("Data load failed")
		}
		return data, err
	})

	values, err := utils.Join(outcomes)
	if err != nil {
		return nil, err
	}

	out := make(map[string]map[string]any, len(demos))
	for i, demo := range demos {
		out[demo.Name] = values[i]
	}
	return out, nil
}

func (l *Loader) loadLocal(path string) (map[string]any, error) {
	full := filepath.Join(l.cwd, path)

	content, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.NewDataNotFoundError(path)
		}
		return nil, fmt.Errorf("failed to read demo data %s: %w", path, err)
	}

	data, err := decode(content)
	if err != nil {
		return nil, domain.NewInvalidJSONError(path, err)
	}

	l.logger.Debug().Str("path", path).Msg("Loaded local demo data")
	return data, nil
}

func (l *Loader) loadRemote(ctx context.Context, rawURL string) (map[string]any, error) {
	if _, err := utils.ValidateHTTPURL(rawURL); err != nil {
		return nil, domain.NewInvalidURLError(rawURL, err)
	}
	if l.fetcher == nil {
		return nil, domain.NewUnknownError(rawURL, errors.New("no fetcher configured"))
	}

	resp, err := l.fetcher.Get(ctx, rawURL)
	if err != nil {
		var be *domain.Error
		if errors.As(err, &be) {
			return nil, err
		}
		return nil, domain.NewUnknownError(rawURL, err)
	}

	data, err := decode(resp.Body)
	if err != nil {
		return nil, domain.NewInvalidJSONError(rawURL, err)
	}

	l.logger.WithURL(rawURL).Debug().Msg("Loaded remote demo data")
	return data, nil
}

// decode parses a JSON document that must be an object
func decode(content []byte) (map[string]any, error) {
	var v any
	if err := json.Unmarshal(content, &v); err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %T", v)
	}
	return obj, nil
}
