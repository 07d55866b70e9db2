package domain

import "time"

// DemoConfig is a single demo declaration after defaults have been merged
type DemoConfig struct {
	Name            string   `json:"name" yaml:"name"`
	Template        string   `json:"template" yaml:"template"`
	Sass            string   `json:"sass,omitempty" yaml:"sass,omitempty"`
	JS              string   `json:"js,omitempty" yaml:"js,omitempty"`
	Data            any      `json:"data,omitempty" yaml:"data,omitempty"` // nil, string or map[string]any
	Dependencies    []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	DocumentClasses string   `json:"documentClasses" yaml:"documentClasses"`
	Description     string   `json:"description" yaml:"description"`
	Hidden          bool     `json:"hidden,omitempty" yaml:"hidden,omitempty"`
}

// DemoManifest is the ordered demo list of a project manifest
type DemoManifest struct {
	Demos    []DemoConfig   `json:"demos"`
	Defaults map[string]any `json:"demosDefaults,omitempty"`
}

// UnitKind is the kind of artifact a BuildUnit produces
type UnitKind string

// Build unit kinds
const (
	UnitSass UnitKind = "sass"
	UnitJS   UnitKind = "js"
	UnitHTML UnitKind = "html"
)

// BuildUnit is a single source that requires exactly one compilation
type BuildUnit struct {
	Kind       UnitKind `json:"kind" yaml:"kind"`
	SourcePath string   `json:"sourcePath" yaml:"sourcePath"`
	DestPath   string   `json:"destPath" yaml:"destPath"`
	// Demo is the name of the demo that supplies the unit's build parameters
	Demo string `json:"demo" yaml:"demo"`
}

// BuildPlan is the deduplicated set of units for one invocation.
// It is computed in full before any compilation starts.
type BuildPlan struct {
	HTMLUnits []BuildUnit `json:"htmlUnits" yaml:"htmlUnits"`
	SassUnits []BuildUnit `json:"sassUnits" yaml:"sassUnits"`
	JSUnits   []BuildUnit `json:"jsUnits" yaml:"jsUnits"`
}

// CompileCount returns the number of external compiler invocations the plan requires
func (p BuildPlan) CompileCount() int {
	return len(p.SassUnits) + len(p.JSUnits)
}

// Total returns the number of units in the plan
func (p BuildPlan) Total() int {
	return len(p.HTMLUnits) + p.CompileCount()
}

// PartialMap maps a partial registration key to its raw template text
type PartialMap map[string]string

// RenderContext is the per-demo template context
type RenderContext map[string]any

// Artifact is a file produced by a build
type Artifact struct {
	Path string   `json:"path"`
	Kind UnitKind `json:"kind"`
	Size int      `json:"size"`
}

// BuildReport summarises the artifacts of one invocation
type BuildReport struct {
	GeneratedAt    time.Time  `json:"generatedAt"`
	Module         string     `json:"module,omitempty"`
	Brand          string     `json:"brand,omitempty"`
	Production     bool       `json:"production"`
	DryRun         bool       `json:"dryRun"`
	TotalArtifacts int        `json:"totalArtifacts"`
	Artifacts      []Artifact `json:"artifacts"`
}
