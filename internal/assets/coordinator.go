// Package assets compiles the deduplicated Sass and JS units of a build plan
// through the external compiler collaborators.
package assets

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/quantmind-br/demobuild/internal/domain"
	"github.com/quantmind-br/demobuild/internal/plan"
	"github.com/quantmind-br/demobuild/internal/project"
	"github.com/quantmind-br/demobuild/internal/utils"
)

// Coordinator drives the Sass and JS collaborators over plan units
type Coordinator struct {
	cwd        string
	brand      string
	production bool
	dryRun     bool
	workers    int
	sass       domain.SassBuilder
	js         domain.JSBuilder
	writer     domain.Writer
	onUnit     func(domain.BuildUnit)
	halt       *utils.Halt
	logger     *utils.Logger
}

// CoordinatorOptions contains options for creating a Coordinator
type CoordinatorOptions struct {
	Cwd        string
	Brand      string
	Production bool
	// DryRun checks sources but invokes no compiler
	DryRun  bool
	Workers int
	Sass    domain.SassBuilder
	JS      domain.JSBuilder
	Writer  domain.Writer
	// OnUnit is called after each unit completes successfully
	OnUnit func(domain.BuildUnit)
	// Halt, when set, is shared with other fan-outs of the same build so a
	// failure anywhere stops new units here. Each Compile gets its own
	// otherwise.
	Halt   *utils.Halt
	Logger *utils.Logger
}

// NewCoordinator creates a new coordinator
func NewCoordinator(opts CoordinatorOptions) *Coordinator {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}

	return &Coordinator{
		cwd:        opts.Cwd,
		brand:      opts.Brand,
		production: opts.Production,
		dryRun:     opts.DryRun,
		workers:    opts.Workers,
		sass:       opts.Sass,
		js:         opts.JS,
		writer:     opts.Writer,
		onUnit:     opts.OnUnit,
		halt:       opts.Halt,
		logger:     opts.Logger.WithComponent("assets"),
	}
}

// Build compiles every Sass and JS unit of p concurrently.
// The first failing unit fails the build; units already running finish
// but their results are discarded.
func (c *Coordinator) Build(ctx context.Context, p *domain.BuildPlan) error {
	units := make([]domain.BuildUnit, 0, p.CompileCount())
	units = append(units, p.SassUnits...)
	units = append(units, p.JSUnits...)
	return c.Compile(ctx, units)
}

// Compile compiles units concurrently with fail-fast semantics
func (c *Coordinator) Compile(ctx context.Context, units []domain.BuildUnit) error {
	halt := c.halt
	if halt == nil {
		halt = utils.NewHalt()
	}
	outcomes := utils.ParallelMapHalt(ctx, halt, units, c.workers, c.compileUnit)
	_, err := utils.Join(outcomes)
	return err
}

func (c *Coordinator) compileUnit(ctx context.Context, unit domain.BuildUnit) (struct{}, error) {
	source := filepath.Join(c.cwd, unit.SourcePath)
	logger := c.logger.WithDemo(unit.Demo)

	var err error
	switch unit.Kind {
	case domain.UnitSass:
		err = c.compileSass(ctx, unit, source)
	case domain.UnitJS:
		err = c.compileJS(ctx, unit, source)
	default:
		err = fmt.Errorf("unit %s is not compilable: kind %s", unit.SourcePath, unit.Kind)
	}
	if err != nil {
		logger.Debug().Err(err).Str("source", unit.SourcePath).Msg("Compilation failed")
		return struct{}{}, err
	}

	logger.Info().
		Str("kind", string(unit.Kind)).
		Str("source", unit.SourcePath).
		Str("dest", unit.DestPath).
		Msg("Compiled")

	if c.onUnit != nil {
		c.onUnit(unit)
	}
	return struct{}{}, nil
}

func (c *Coordinator) compileSass(ctx context.Context, unit domain.BuildUnit, source string) error {
	if !utils.FileExists(source) {
		return domain.NewSassNotFoundError(unit.SourcePath)
	}
	if c.dryRun {
		return c.write(ctx, unit, "")
	}
	if c.sass == nil {
		return fmt.Errorf("no sass builder configured")
	}

	css, err := c.sass.BuildSass(ctx, domain.SassConfig{
		Sass:             unit.SourcePath,
		SassIncludePaths: project.SassIncludePaths,
		Sourcemaps:       true,
		BuildCSS:         plan.StylesheetName(unit.SourcePath),
		BuildFolder:      project.DemoOutputDir,
		Cwd:              c.cwd,
		Brand:            c.brand,
		Production:       c.production,
	})
	if err != nil {
		return err
	}

	return c.write(ctx, unit, css)
}

func (c *Coordinator) compileJS(ctx context.Context, unit domain.BuildUnit, source string) error {
	if !utils.FileExists(source) {
		return domain.NewJsNotFoundError(unit.SourcePath)
	}
	if c.dryRun {
		return c.write(ctx, unit, "")
	}
	if c.js == nil {
		return fmt.Errorf("no js builder configured")
	}

	bundle, err := c.js.BuildJS(ctx, domain.JSConfig{
		JS:          unit.SourcePath,
		BuildFolder: project.DemoOutputDir,
		BuildJS:     plan.ScriptName(unit.SourcePath),
		Cwd:         c.cwd,
		Production:  c.production,
	})
	if err != nil {
		return err
	}

	return c.write(ctx, unit, bundle)
}

func (c *Coordinator) write(ctx context.Context, unit domain.BuildUnit, content string) error {
	if c.writer == nil {
		return nil
	}
	return c.writer.Write(ctx, filepath.Join(c.cwd, unit.DestPath), []byte(content))
}
