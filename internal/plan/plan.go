// Package plan turns validated demo configs into a deduplicated BuildPlan.
//
// The plan is computed in full before any compilation starts. Each distinct
// Sass or JS source path appears once, so a shared asset is compiled exactly
// once no matter how many demos reference it.
package plan

import (
	"fmt"
	"path/filepath"

	"github.com/quantmind-br/demobuild/internal/domain"
	"github.com/quantmind-br/demobuild/internal/project"
	"github.com/quantmind-br/demobuild/internal/utils"
)

// Build returns the BuildPlan for demos.
//
// HTML units are never deduplicated. Sass and JS units are keyed by the exact
// declared source path; the first demo declaring a path supplies its build
// parameters. Two units that would write the same destination file fail with
// a ManifestError.
func Build(demos []domain.DemoConfig) (*domain.BuildPlan, error) {
	p := &domain.BuildPlan{
		HTMLUnits: make([]domain.BuildUnit, 0, len(demos)),
	}

	sassSeen := make(map[string]struct{})
	jsSeen := make(map[string]struct{})
	dests := make(map[string]string)

	claim := func(unit domain.BuildUnit) error {
		if owner, ok := dests[unit.DestPath]; ok {
			return domain.NewManifestError(fmt.Sprintf(
				"%s and %s both write %s", owner, unit.SourcePath, unit.DestPath))
		}
		dests[unit.DestPath] = unit.SourcePath
		return nil
	}

	for _, demo := range demos {
		html := HTMLUnit(demo)
		if err := claim(html); err != nil {
			return nil, err
		}
		p.HTMLUnits = append(p.HTMLUnits, html)

		if demo.Sass != "" {
			if _, ok := sassSeen[demo.Sass]; !ok {
				sassSeen[demo.Sass] = struct{}{}
				unit := SassUnit(demo)
				if err := claim(unit); err != nil {
					return nil, err
				}
				p.SassUnits = append(p.SassUnits, unit)
			}
		}

		if demo.JS != "" {
			if _, ok := jsSeen[demo.JS]; !ok {
				jsSeen[demo.JS] = struct{}{}
				unit := JSUnit(demo)
				if err := claim(unit); err != nil {
					return nil, err
				}
				p.JSUnits = append(p.JSUnits, unit)
			}
		}
	}

	return p, nil
}

// HTMLUnit returns the page unit of a demo
func HTMLUnit(demo domain.DemoConfig) domain.BuildUnit {
	return domain.BuildUnit{
		Kind:       domain.UnitHTML,
		SourcePath: demo.Template,
		DestPath:   filepath.Join(project.DemoOutputDir, demo.Name+".html"),
		Demo:       demo.Name,
	}
}

// SassUnit returns the stylesheet unit of a demo
func SassUnit(demo domain.DemoConfig) domain.BuildUnit {
	return domain.BuildUnit{
		Kind:       domain.UnitSass,
		SourcePath: demo.Sass,
		DestPath:   filepath.Join(project.DemoOutputDir, StylesheetName(demo.Sass)),
		Demo:       demo.Name,
	}
}

// JSUnit returns the script unit of a demo
func JSUnit(demo domain.DemoConfig) domain.BuildUnit {
	return domain.BuildUnit{
		Kind:       domain.UnitJS,
		SourcePath: demo.JS,
		DestPath:   filepath.Join(project.DemoOutputDir, ScriptName(demo.JS)),
		Demo:       demo.Name,
	}
}

// StylesheetName is the output file name for a Sass source
func StylesheetName(sass string) string {
	return utils.ReplaceExt(sass, ".scss", ".css")
}

// ScriptName is the output file name for a JS source
func ScriptName(js string) string {
	return filepath.Base(js)
}
