package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/quantmind-br/demobuild/internal/assets"
	"github.com/quantmind-br/demobuild/internal/config"
	"github.com/quantmind-br/demobuild/internal/demodata"
	"github.com/quantmind-br/demobuild/internal/domain"
	"github.com/quantmind-br/demobuild/internal/manifest"
	"github.com/quantmind-br/demobuild/internal/output"
	"github.com/quantmind-br/demobuild/internal/partials"
	"github.com/quantmind-br/demobuild/internal/plan"
	"github.com/quantmind-br/demobuild/internal/polyfill"
	"github.com/quantmind-br/demobuild/internal/renderer"
	"github.com/quantmind-br/demobuild/internal/utils"
	"golang.org/x/sync/errgroup"
)

// BuildConfig describes one demo build invocation
type BuildConfig struct {
	domain.CommonOptions
	Cwd   string
	Brand string
	// DemoFilter is a comma-delimited list of demo names
	DemoFilter string
	// DemoNames is the list form of DemoFilter; both are combined
	DemoNames []string
	// DemoConfig must be empty or the supported manifest file name
	DemoConfig string
	// ReportPath, when set, receives a JSON report of the artifacts
	ReportPath string
}

// Filter returns the combined demo name filter
func (c BuildConfig) Filter() []string {
	names := manifest.ParseFilter(c.DemoFilter)
	for _, n := range c.DemoNames {
		names = append(names, manifest.ParseFilter(n)...)
	}
	return names
}

// Progress reports one completed build unit
type Progress struct {
	Unit  domain.BuildUnit
	Done  int
	Total int
}

// Orchestrator runs the demo build pipeline
type Orchestrator struct {
	config     *config.Config
	deps       *Dependencies
	logger     *utils.Logger
	onProgress func(Progress)
}

// OrchestratorOptions contains options for creating an orchestrator
type OrchestratorOptions struct {
	Config *config.Config
	// Deps overrides the default collaborators
	Deps   *Dependencies
	Logger *utils.Logger
	// OnProgress is called after every HTML, Sass or JS unit completes
	OnProgress func(Progress)
}

// NewOrchestrator creates a new orchestrator with the given configuration
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
	}

	deps := opts.Deps
	if deps == nil {
		var err error
		deps, err = NewDependencies(DependencyOptions{Config: cfg, Logger: logger})
		if err != nil {
			return nil, fmt.Errorf("failed to create dependencies: %w", err)
		}
	}

	return &Orchestrator{
		config:     cfg,
		deps:       deps,
		logger:     logger,
		onProgress: opts.OnProgress,
	}, nil
}

// Plan loads the manifest and computes the build plan without building anything
func (o *Orchestrator) Plan(ctx context.Context, cfg BuildConfig) (*domain.DemoManifest, *domain.BuildPlan, error) {
	m, err := manifest.NewLoader().Load(manifest.LoadOptions{
		Cwd:        cfg.Cwd,
		ConfigPath: cfg.DemoConfig,
		Filter:     cfg.Filter(),
	})
	if err != nil {
		return nil, nil, err
	}

	p, err := plan.Build(m.Demos)
	if err != nil {
		return nil, nil, err
	}

	return m, p, nil
}

// BuildDemos builds every selected demo of the project at cfg.Cwd.
//
// The plan is computed before any compilation. HTML pages, Sass units and
// JS units are then built as three concurrent groups; the first failure
// fails the build.
func (o *Orchestrator) BuildDemos(ctx context.Context, cfg BuildConfig) (*domain.BuildReport, error) {
	startTime := time.Now()

	m, p, err := o.Plan(ctx, cfg)
	if err != nil {
		return nil, err
	}

	o.logger.Info().
		Str("cwd", cfg.Cwd).
		Int("demos", len(m.Demos)).
		Int("sass", len(p.SassUnits)).
		Int("js", len(p.JSUnits)).
		Bool("production", cfg.Production).
		Bool("dry_run", cfg.DryRun).
		Msg("Starting demo build")

	moduleName, err := o.deps.Names.ModuleName(ctx, cfg.Cwd)
	if err != nil {
		return nil, err
	}

	polyfillURL, err := polyfill.NewAggregator(o.config.Polyfill.BaseURL, o.logger).URL(cfg.Cwd)
	if err != nil {
		return nil, err
	}

	workers := o.config.Concurrency.Workers
	data, err := demodata.NewLoader(demodata.LoaderOptions{
		Cwd:     cfg.Cwd,
		Fetcher: o.deps.Fetcher,
		Workers: workers,
		Logger:  o.logger,
	}).LoadAll(ctx, m.Demos)
	if err != nil {
		return nil, err
	}

	collector := output.NewCollector(output.CollectorOptions{
		BaseDir:    cfg.Cwd,
		Module:     moduleName,
		Brand:      cfg.Brand,
		Production: cfg.Production,
		DryRun:     cfg.DryRun,
	})
	var writer domain.Writer = output.NewWriter(output.WriterOptions{
		DryRun:    cfg.DryRun,
		Collector: collector,
		Logger:    o.logger,
	})
	if o.deps.Writer != nil {
		writer = o.deps.Writer
	}

	var done atomic.Int32
	total := p.Total()
	report := func(unit domain.BuildUnit) {
		n := int(done.Add(1))
		if o.onProgress != nil {
			o.onProgress(Progress{Unit: unit, Done: n, Total: total})
		}
	}

	// A failure in any of the three groups stops new units in all of them.
	// Running units are never cancelled; their results are discarded.
	halt := utils.NewHalt()

	coordinator := assets.NewCoordinator(assets.CoordinatorOptions{
		Cwd:        cfg.Cwd,
		Brand:      cfg.Brand,
		Production: cfg.Production,
		DryRun:     cfg.DryRun,
		Workers:    workers,
		Sass:       o.deps.Sass,
		JS:         o.deps.JS,
		Writer:     writer,
		OnUnit:     report,
		Halt:       halt,
		Logger:     o.logger,
	})

	pages := &pageBuilder{
		cwd:         cfg.Cwd,
		brand:       cfg.Brand,
		moduleName:  moduleName,
		polyfillURL: polyfillURL,
		data:        data,
		writer:      writer,
		workers:     workers,
		onUnit:      report,
		halt:        halt,
		logger:      o.logger,
	}
	pages.renderer, err = renderer.New(renderer.Options{
		BuildServiceURL: o.config.BuildService.BaseURL,
		Logger:          o.logger,
	})
	if err != nil {
		return nil, err
	}

	var g errgroup.Group
	g.Go(func() error {
		return pages.build(ctx, m.Demos)
	})
	g.Go(func() error {
		return coordinator.Compile(ctx, p.SassUnits)
	})
	g.Go(func() error {
		return coordinator.Compile(ctx, p.JSUnits)
	})
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			o.logger.Warn().Msg("Demo build cancelled")
			return nil, ctx.Err()
		}
		// Report the failure that fired first across all groups
		if first := halt.Err(); first != nil {
			err = first
		}
		o.logger.Error().
			Err(err).
			Str("kind", string(domain.KindOf(err))).
			Msg("Demo build failed")
		return nil, err
	}

	if cfg.ReportPath != "" {
		if err := collector.Flush(cfg.ReportPath); err != nil {
			o.logger.Warn().Err(err).Msg("Failed to write build report")
		}
	}

	o.logger.Info().
		Dur("duration", time.Since(startTime)).
		Int("artifacts", collector.Count()).
		Msg("Demo build completed")

	return collector.Report(), nil
}

// Close releases all resources held by the orchestrator
func (o *Orchestrator) Close() error {
	if o.deps != nil {
		return o.deps.Close()
	}
	return nil
}

// pageBuilder renders the HTML unit of every demo
type pageBuilder struct {
	cwd         string
	brand       string
	moduleName  string
	polyfillURL string
	data        map[string]map[string]any
	renderer    *renderer.Renderer
	writer      domain.Writer
	workers     int
	onUnit      func(domain.BuildUnit)
	halt        *utils.Halt
	logger      *utils.Logger
}

func (b *pageBuilder) build(ctx context.Context, demos []domain.DemoConfig) error {
	partialMaps, err := b.resolvePartials(ctx, demos)
	if err != nil {
		b.halt.Fail(err)
		return err
	}

	outcomes := utils.ParallelMapHalt(ctx, b.halt, demos, b.workers, func(ctx context.Context, demo domain.DemoConfig) (struct{}, error) {
		unit := plan.HTMLUnit(demo)

		tmpl, err := os.ReadFile(filepath.Join(b.cwd, demo.Template))
		if err != nil {
			return struct{}{}, fmt.Errorf("failed to read template of demo %s: %w", demo.Name, err)
		}

		html, err := b.renderer.Render(renderer.Page{
			Demo:        demo,
			ModuleName:  b.moduleName,
			Brand:       b.brand,
			Template:    string(tmpl),
			Data:        b.data[demo.Name],
			Partials:    partialMaps[templateDir(b.cwd, demo)],
			PolyfillURL: b.polyfillURL,
		})
		if err != nil {
			return struct{}{}, err
		}

		if err := b.writer.Write(ctx, filepath.Join(b.cwd, unit.DestPath), []byte(html)); err != nil {
			return struct{}{}, err
		}

		b.logger.WithDemo(demo.Name).Info().Str("dest", unit.DestPath).Msg("Rendered")
		if b.onUnit != nil {
			b.onUnit(unit)
		}
		return struct{}{}, nil
	})

	_, err = utils.Join(outcomes)
	return err
}

// resolvePartials resolves each distinct template directory once
func (b *pageBuilder) resolvePartials(ctx context.Context, demos []domain.DemoConfig) (map[string]domain.PartialMap, error) {
	resolver := partials.NewResolver(b.workers, b.logger)
	maps := make(map[string]domain.PartialMap)

	for _, demo := range demos {
		dir := templateDir(b.cwd, demo)
		if _, ok := maps[dir]; ok {
			continue
		}
		pm, err := resolver.Resolve(ctx, dir)
		if err != nil {
			return nil, err
		}
		maps[dir] = pm
	}

	return maps, nil
}

func templateDir(cwd string, demo domain.DemoConfig) string {
	return filepath.Dir(filepath.Join(cwd, demo.Template))
}
