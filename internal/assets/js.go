package assets

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/quantmind-br/demobuild/internal/domain"
)

// Ensure JSBundler implements domain.JSBuilder
var _ domain.JSBuilder = (*JSBundler)(nil)

// JSBundler bundles scripts with the esbuild command line tool
type JSBundler struct {
	command string
}

// NewJSBundler creates a bundler running command
func NewJSBundler(command string) *JSBundler {
	if command == "" {
		command = "esbuild"
	}
	return &JSBundler{command: command}
}

// Command returns the executable the bundler runs
func (b *JSBundler) Command() string {
	return b.command
}

// BuildJS bundles cfg.JS and returns the bundle
func (b *JSBundler) BuildJS(ctx context.Context, cfg domain.JSConfig) (string, error) {
	cmd := exec.CommandContext(ctx, b.command, jsArgs(cfg)...)
	cmd.Dir = cfg.Cwd

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("js bundling of %s cancelled: %w", cfg.JS, ctx.Err())
		}
		return "", fmt.Errorf("js bundling of %s failed: %w\nOutput: %s", cfg.JS, err, stderr.String())
	}

	return stdout.String(), nil
}

func jsArgs(cfg domain.JSConfig) []string {
	args := []string{
		filepath.Join(cfg.Cwd, cfg.JS),
		"--bundle",
		"--sourcemap=inline",
		"--log-level=warning",
	}
	if cfg.Production {
		args = append(args, "--minify")
	}
	return args
}
