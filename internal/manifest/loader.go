package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/demobuild/internal/domain"
	"github.com/quantmind-br/demobuild/internal/project"
)

// builtinDefaults is the bottom layer of every demo
func builtinDefaults() map[string]any {
	return map[string]any{
		"documentClasses": "",
		"description":     "",
	}
}

// LoadOptions selects the project and demos to load
type LoadOptions struct {
	Cwd string
	// ConfigPath must be empty or equal to project.ManifestFile
	ConfigPath string
	// Filter keeps only the named demos when non-empty
	Filter []string
}

// Loader loads and validates demo manifests
type Loader struct{}

// NewLoader creates a new manifest loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the project manifest and returns its merged, validated and filtered demos
func (l *Loader) Load(opts LoadOptions) (*domain.DemoManifest, error) {
	if opts.ConfigPath != "" && opts.ConfigPath != project.ManifestFile {
		return nil, domain.NewConfigError(opts.ConfigPath, project.ManifestFile)
	}

	path := filepath.Join(opts.Cwd, project.ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewManifestError(fmt.Sprintf("manifest not found: %s", path))
		}
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	m, err := l.LoadFromBytes(data, path)
	if err != nil {
		return nil, err
	}

	m.Demos, err = ApplyFilter(m.Demos, opts.Filter)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// LoadFromBytes parses a manifest; file names the source in error messages
func (l *Loader) LoadFromBytes(data []byte, file string) (*domain.DemoManifest, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, domain.NewParseError(file, err)
	}

	entries, ok := raw["demos"].([]any)
	if !ok || len(entries) == 0 {
		return nil, ErrNoDemos
	}

	defaults := map[string]any{}
	if d, ok := raw["demosDefaults"].(map[string]any); ok {
		defaults = d
	}
	layered := Merge(builtinDefaults(), defaults)

	demos := make([]domain.DemoConfig, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for i, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			return nil, errInvalidDemo(i, "entry is not an object")
		}

		demo, err := decodeDemo(Merge(layered, obj))
		if err != nil {
			return nil, errInvalidDemo(i, err.Error())
		}

		if demo.Name == "" {
			return nil, errMissingName(i)
		}
		if strings.TrimSpace(demo.Template) == "" {
			return nil, errMissingTemplate(demo.Name)
		}
		if _, dup := seen[demo.Name]; dup {
			return nil, errDuplicateName(demo.Name)
		}
		seen[demo.Name] = struct{}{}

		demos = append(demos, demo)
	}

	return &domain.DemoManifest{Demos: demos, Defaults: defaults}, nil
}

// decodeDemo converts a merged demo object into a DemoConfig
func decodeDemo(obj map[string]any) (domain.DemoConfig, error) {
	var demo domain.DemoConfig

	data, err := json.Marshal(obj)
	if err != nil {
		return demo, err
	}
	if err := json.Unmarshal(data, &demo); err != nil {
		return demo, err
	}

	switch demo.Data.(type) {
	case nil, string, map[string]any:
	default:
		return demo, fmt.Errorf("data must be a path, URL or object")
	}

	return demo, nil
}

// ParseFilter splits a comma-delimited demo filter
func ParseFilter(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// ApplyFilter keeps the demos named in filter, preserving manifest order
func ApplyFilter(demos []domain.DemoConfig, filter []string) ([]domain.DemoConfig, error) {
	if len(filter) == 0 {
		return demos, nil
	}

	wanted := make(map[string]struct{}, len(filter))
	for _, name := range filter {
		wanted[name] = struct{}{}
	}

	var kept []domain.DemoConfig
	for _, demo := range demos {
		if _, ok := wanted[demo.Name]; ok {
			kept = append(kept, demo)
		}
	}

	if len(kept) == 0 {
		return nil, ErrNoFilterMatch
	}
	return kept, nil
}
