// Package project holds the on-disk conventions of a component project and
// the module-name resolver used for page titles.
package project

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/demobuild/internal/domain"
)

// Project layout conventions
const (
	// ManifestFile is the only supported demo manifest
	ManifestFile = "origami.json"

	// DependencyDir holds installed dependencies
	DependencyDir = "bower_components"

	// DependencyManifestGlob matches the manifests of installed dependencies
	DependencyManifestGlob = DependencyDir + "/*/" + ManifestFile

	// DemoOutputDir receives every built demo artifact
	DemoOutputDir = "demos/local"
)

// SassIncludePaths are the load paths handed to the Sass compiler
var SassIncludePaths = []string{"demos/src", "demos/src/scss"}

// Ensure ModuleNameResolver implements domain.ModuleNameResolver
var _ domain.ModuleNameResolver = (*ModuleNameResolver)(nil)

// ModuleNameResolver reads the component name from the project's package files
type ModuleNameResolver struct{}

// NewModuleNameResolver creates a new resolver
func NewModuleNameResolver() *ModuleNameResolver {
	return &ModuleNameResolver{}
}

// ModuleName returns the name declared in bower.json, then package.json,
// falling back to the base name of cwd.
func (r *ModuleNameResolver) ModuleName(ctx context.Context, cwd string) (string, error) {
	for _, file := range []string{"bower.json", "package.json"} {
		name, err := readName(filepath.Join(cwd, file))
		if err != nil {
			return "", err
		}
		if name != "" {
			return name, nil
		}
	}

	abs, err := filepath.Abs(cwd)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project directory: %w", err)
	}
	return filepath.Base(abs), nil
}

// readName returns the "name" field of a JSON package file, or "" if the file is absent
func readName(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var pkg struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return "", domain.NewParseError(path, err)
	}

	// Scoped npm names keep only the package part
	name := strings.TrimSpace(pkg.Name)
	if i := strings.LastIndex(name, "/"); strings.HasPrefix(name, "@") && i > 0 {
		name = name[i+1:]
	}
	return name, nil
}
