package app

import (
	"github.com/quantmind-br/demobuild/internal/assets"
	"github.com/quantmind-br/demobuild/internal/config"
	"github.com/quantmind-br/demobuild/internal/domain"
	"github.com/quantmind-br/demobuild/internal/fetcher"
	"github.com/quantmind-br/demobuild/internal/project"
	"github.com/quantmind-br/demobuild/internal/utils"
)

// Dependencies contains the collaborators shared by every build stage
type Dependencies struct {
	Fetcher domain.Fetcher
	Sass    domain.SassBuilder
	JS      domain.JSBuilder
	Names   domain.ModuleNameResolver
	// Writer overrides the per-build artifact writer when set
	Writer domain.Writer
	Logger *utils.Logger
}

// DependencyOptions contains options for creating Dependencies
type DependencyOptions struct {
	Config *config.Config
	Logger *utils.Logger
}

// NewDependencies creates the default collaborators from configuration
func NewDependencies(opts DependencyOptions) (*Dependencies, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
	}

	fetcherClient, err := fetcher.NewClient(fetcher.ClientOptions{
		Timeout:   cfg.Concurrency.Timeout,
		UserAgent: cfg.Fetch.UserAgent,
		ProxyURL:  cfg.Fetch.ProxyURL,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	return &Dependencies{
		Fetcher: fetcherClient,
		Sass:    assets.NewSassCompiler(cfg.Compilers.Sass),
		JS:      assets.NewJSBundler(cfg.Compilers.JS),
		Names:   project.NewModuleNameResolver(),
		Logger:  logger,
	}, nil
}

// Close releases all resources
func (d *Dependencies) Close() error {
	if d.Fetcher != nil {
		return d.Fetcher.Close()
	}
	return nil
}
