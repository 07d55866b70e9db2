package assets

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/quantmind-br/demobuild/internal/domain"
)

// Ensure SassCompiler implements domain.SassBuilder
var _ domain.SassBuilder = (*SassCompiler)(nil)

// SassCompiler compiles Sass with the sass command line tool
type SassCompiler struct {
	command string
}

// NewSassCompiler creates a compiler running command
func NewSassCompiler(command string) *SassCompiler {
	if command == "" {
		command = "sass"
	}
	return &SassCompiler{command: command}
}

// Command returns the executable the compiler runs
func (c *SassCompiler) Command() string {
	return c.command
}

// BuildSass compiles cfg.Sass and returns the CSS
func (c *SassCompiler) BuildSass(ctx context.Context, cfg domain.SassConfig) (string, error) {
	cmd := exec.CommandContext(ctx, c.command, sassArgs(cfg)...)
	cmd.Dir = cfg.Cwd
	cmd.Stdin = strings.NewReader(sassEntry(cfg))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("sass compilation of %s cancelled: %w", cfg.Sass, ctx.Err())
		}
		return "", fmt.Errorf("sass compilation of %s failed: %w\nOutput: %s", cfg.Sass, err, stderr.String())
	}

	return stdout.String(), nil
}

func sassArgs(cfg domain.SassConfig) []string {
	args := []string{"--stdin", "--no-error-css"}

	for _, p := range cfg.SassIncludePaths {
		args = append(args, "--load-path="+filepath.Join(cfg.Cwd, p))
	}
	args = append(args, "--load-path="+cfg.Cwd)

	if cfg.Sourcemaps {
		args = append(args, "--embed-source-map", "--embed-sources")
	} else {
		args = append(args, "--no-source-map")
	}

	if cfg.Production {
		args = append(args, "--style=compressed")
	}

	return args
}

// sassEntry is the stdin document: an optional brand prelude then the source import
func sassEntry(cfg domain.SassConfig) string {
	var b strings.Builder
	if cfg.Brand != "" {
		fmt.Fprintf(&b, "$o-brand: %s;\n", strconv.Quote(cfg.Brand))
	}
	fmt.Fprintf(&b, "@import %s;\n", strconv.Quote(filepath.ToSlash(filepath.Join(cfg.Cwd, cfg.Sass))))
	return b.String()
}
