package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/quantmind-br/demobuild/internal/app"
	"github.com/quantmind-br/demobuild/internal/config"
	"github.com/quantmind-br/demobuild/internal/domain"
	"github.com/quantmind-br/demobuild/internal/utils"
	"github.com/quantmind-br/demobuild/pkg/version"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var (
	cfgFile string
	verbose bool
	log     *utils.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "demobuild [project-dir]",
	Short: "Build component demos",
	Long: `demobuild builds the demos declared in a component's origami.json.

Each demo is rendered from its mustache template and data into an HTML page
under demos/local, next to the CSS and JS compiled from its Sass and script
entry points. Shared Sass and JS sources are compiled once per build.`,
	Version:       version.Short(),
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          run,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.demobuild/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("log-format", "pretty", "Log format (pretty, json)")
	rootCmd.PersistentFlags().String("demo-filter", "", "Comma-separated demo names to build")
	rootCmd.PersistentFlags().StringSlice("demo", nil, "Demo name to build (repeatable)")
	rootCmd.PersistentFlags().String("demo-config", "", "Demo manifest file (only origami.json is supported)")

	// Build flags
	rootCmd.Flags().String("brand", "", "Brand to build for")
	rootCmd.Flags().Bool("production", false, "Minify output")
	rootCmd.Flags().Bool("dry-run", false, "Plan, load data and render without writing files or compiling")
	rootCmd.Flags().String("report", "", "Write a JSON report of the built artifacts to this file")
	rootCmd.Flags().Bool("no-progress", false, "Disable the progress bar")
	rootCmd.Flags().IntP("concurrency", "j", config.DefaultWorkers, "Number of concurrent workers")
	rootCmd.Flags().Duration("timeout", config.DefaultTimeout, "Remote demo data request timeout")

	// Bind flags to viper
	_ = viper.BindPFlag("concurrency.workers", rootCmd.Flags().Lookup("concurrency"))
	_ = viper.BindPFlag("concurrency.timeout", rootCmd.Flags().Lookup("timeout"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	planCmd.Flags().StringP("format", "f", "yaml", "Output format (json, yaml)")

	// Add subcommands
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(utils.ExpandPath(cfgFile))
	}
}

// setup loads configuration and the logger shared by every command
func setup() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log = utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})
	return cfg, nil
}

// projectDir returns the project directory argument, defaulting to "."
func projectDir(args []string) string {
	if len(args) > 0 {
		return utils.ExpandPath(args[0])
	}
	return "."
}

// buildConfig reads the demo selection flags shared by build and plan
func buildConfig(cmd *cobra.Command, args []string) app.BuildConfig {
	demoFilter, _ := cmd.Flags().GetString("demo-filter")
	demoNames, _ := cmd.Flags().GetStringSlice("demo")
	demoConfig, _ := cmd.Flags().GetString("demo-config")

	return app.BuildConfig{
		CommonOptions: domain.CommonOptions{Verbose: verbose},
		Cwd:           projectDir(args),
		DemoFilter:    demoFilter,
		DemoNames:     demoNames,
		DemoConfig:    demoConfig,
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case <-sigCh:
			log.Info().Msg("Shutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
	}()

	buildCfg := buildConfig(cmd, args)
	buildCfg.Brand, _ = cmd.Flags().GetString("brand")
	buildCfg.Production, _ = cmd.Flags().GetBool("production")
	buildCfg.DryRun, _ = cmd.Flags().GetBool("dry-run")
	reportPath, _ := cmd.Flags().GetString("report")
	buildCfg.ReportPath = utils.ExpandPath(reportPath)
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	var onProgress func(app.Progress)
	if !noProgress && !verbose {
		bar := newLazyBar()
		defer bar.finish()
		onProgress = bar.add
	}

	orchestrator, err := app.NewOrchestrator(app.OrchestratorOptions{
		Config:     cfg,
		Logger:     log,
		OnProgress: onProgress,
	})
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}
	defer orchestrator.Close()

	start := time.Now()
	report, err := orchestrator.BuildDemos(ctx, buildCfg)
	if err != nil {
		return err
	}

	verb := "Built"
	if report.DryRun {
		verb = "Planned"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d artifacts for %s in %s\n",
		verb, report.TotalArtifacts, report.Module, time.Since(start).Round(time.Millisecond))
	return nil
}

// lazyBar creates its progress bar once the total is known
type lazyBar struct {
	once sync.Once
	bar  *progressbar.ProgressBar
}

func newLazyBar() *lazyBar {
	return &lazyBar{}
}

func (b *lazyBar) add(p app.Progress) {
	b.once.Do(func() {
		b.bar = utils.NewProgressBar(p.Total, utils.DescBuilding)
	})
	_ = b.bar.Add(1)
}

func (b *lazyBar) finish() {
	if b.bar != nil {
		_ = b.bar.Finish()
	}
}

var planCmd = &cobra.Command{
	Use:   "plan [project-dir]",
	Short: "Print the deduplicated build plan",
	Long: `Loads and validates the demo manifest, then prints every HTML page, Sass
unit and JS unit the build would produce. Nothing is compiled or written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")

		orchestrator, err := app.NewOrchestrator(app.OrchestratorOptions{Config: cfg, Logger: log})
		if err != nil {
			return fmt.Errorf("failed to create orchestrator: %w", err)
		}
		defer orchestrator.Close()

		_, p, err := orchestrator.Plan(cmd.Context(), buildConfig(cmd, args))
		if err != nil {
			return err
		}

		return writePlan(cmd.OutOrStdout(), p, format)
	},
}

// writePlan encodes p as json or yaml
func writePlan(w io.Writer, p *domain.BuildPlan, format string) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(p)
	default:
		return fmt.Errorf("unsupported format %q (use json or yaml)", format)
	}
}

var doctorCmd = &cobra.Command{
	Use:   "doctor [project-dir]",
	Short: "Check the project and system dependencies",
	Long:  "Verifies the demo manifest, the compiler binaries and the installed dependencies.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		// Config problems are reported, not fatal
		cfg, err := config.Load()
		switch {
		case err != nil:
			fmt.Fprintf(out, "  Config file: WARN (%v)\n", err)
			cfg = config.Default()
		case viper.ConfigFileUsed() != "":
			fmt.Fprintf(out, "  Config file: OK (%s)\n", viper.ConfigFileUsed())
		default:
			fmt.Fprintf(out, "  Config file: none (defaults; create %s to override)\n", config.ConfigFilePath())
		}

		dir := projectDir(args)
		abs, _ := filepath.Abs(dir)
		fmt.Fprintf(out, "Checking %s...\n", abs)

		checks := app.Diagnose(dir, cfg)
		for _, c := range checks {
			fmt.Fprintf(out, "  %s: %s (%s)\n", c.Name, strings.ToUpper(string(c.Status)), c.Detail)
		}

		fmt.Fprintln(out)
		if !app.Healthy(checks) {
			return errors.New("some checks failed, please resolve the issues above")
		}
		fmt.Fprintln(out, "All critical checks passed!")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}

// printError reports err; unclassified failures also get their stack
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if domain.IsConcise(err) {
		return
	}

	var be *domain.Error
	if errors.As(err, &be) && be.Stack() != nil {
		fmt.Fprintf(w, "\n%s", be.Stack())
	}
}
