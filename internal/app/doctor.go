package app

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/quantmind-br/demobuild/internal/config"
	"github.com/quantmind-br/demobuild/internal/manifest"
	"github.com/quantmind-br/demobuild/internal/plan"
	"github.com/quantmind-br/demobuild/internal/polyfill"
	"github.com/quantmind-br/demobuild/internal/project"
)

// CheckStatus is the outcome of a doctor check
type CheckStatus string

const (
	CheckOK   CheckStatus = "ok"
	CheckWarn CheckStatus = "warn"
	CheckFail CheckStatus = "fail"
)

// Check is one environment or project diagnostic
type Check struct {
	Name   string      `json:"name" yaml:"name"`
	Status CheckStatus `json:"status" yaml:"status"`
	Detail string      `json:"detail" yaml:"detail"`
}

// lookPath is swapped in tests
var lookPath = exec.LookPath

// Diagnose checks that the project at cwd can be built with cfg
func Diagnose(cwd string, cfg *config.Config) []Check {
	if cfg == nil {
		cfg = config.Default()
	}

	checks := []Check{checkManifest(cwd)}
	checks = append(checks,
		checkBinary("sass compiler", cfg.Compilers.Sass),
		checkBinary("js bundler", cfg.Compilers.JS),
		checkDependencies(cwd),
	)
	return checks
}

// Healthy reports whether no check failed
func Healthy(checks []Check) bool {
	for _, c := range checks {
		if c.Status == CheckFail {
			return false
		}
	}
	return true
}

func checkManifest(cwd string) Check {
	check := Check{Name: "manifest"}

	m, err := manifest.NewLoader().Load(manifest.LoadOptions{Cwd: cwd})
	if err != nil {
		check.Status = CheckFail
		check.Detail = err.Error()
		return check
	}

	p, err := plan.Build(m.Demos)
	if err != nil {
		check.Status = CheckFail
		check.Detail = err.Error()
		return check
	}

	check.Status = CheckOK
	check.Detail = fmt.Sprintf("%d demos, %d compilations", len(m.Demos), p.CompileCount())
	return check
}

func checkBinary(name, command string) Check {
	path, err := lookPath(command)
	if err != nil {
		return Check{Name: name, Status: CheckWarn, Detail: fmt.Sprintf("%s not found on PATH", command)}
	}
	return Check{Name: name, Status: CheckOK, Detail: path}
}

func checkDependencies(cwd string) Check {
	check := Check{Name: "dependencies"}

	if _, err := os.Stat(filepath.Join(cwd, project.DependencyDir)); errors.Is(err, os.ErrNotExist) {
		check.Status = CheckWarn
		check.Detail = "no bower_components directory; dependency polyfills are not aggregated"
		return check
	}

	features, err := polyfill.NewAggregator("", nil).Features(cwd)
	if err != nil {
		check.Status = CheckFail
		check.Detail = err.Error()
		return check
	}

	check.Status = CheckOK
	check.Detail = fmt.Sprintf("%d required browser features", features.Len())
	return check
}
