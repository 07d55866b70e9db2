package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/quantmind-br/demobuild/internal/domain"
	"github.com/quantmind-br/demobuild/internal/utils"
)

// Collector records the artifacts of a build and writes them as a JSON report
type Collector struct {
	mu         sync.RWMutex
	artifacts  []domain.Artifact
	baseDir    string
	module     string
	brand      string
	production bool
	dryRun     bool
}

// CollectorOptions contains options for creating a Collector
type CollectorOptions struct {
	// BaseDir makes recorded paths relative
	BaseDir    string
	Module     string
	Brand      string
	Production bool
	DryRun     bool
}

// NewCollector creates an empty collector
func NewCollector(opts CollectorOptions) *Collector {
	return &Collector{
		artifacts:  make([]domain.Artifact, 0),
		baseDir:    opts.BaseDir,
		module:     opts.Module,
		brand:      opts.Brand,
		production: opts.Production,
		dryRun:     opts.DryRun,
	}
}

// Add records an artifact of size bytes at path
func (c *Collector) Add(path string, size int) {
	relPath := path
	if c.baseDir != "" {
		if rel, err := filepath.Rel(c.baseDir, path); err == nil && !strings.HasPrefix(rel, "..") {
			relPath = rel
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.artifacts = append(c.artifacts, domain.Artifact{
		Path: filepath.ToSlash(relPath),
		Kind: kindOf(path),
		Size: size,
	})
}

// Count returns the number of recorded artifacts
func (c *Collector) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.artifacts)
}

// Report returns the recorded artifacts sorted by path
func (c *Collector) Report() *domain.BuildReport {
	c.mu.RLock()
	defer c.mu.RUnlock()

	artifacts := make([]domain.Artifact, len(c.artifacts))
	copy(artifacts, c.artifacts)
	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].Path < artifacts[j].Path
	})

	return &domain.BuildReport{
		GeneratedAt:    time.Now(),
		Module:         c.module,
		Brand:          c.brand,
		Production:     c.production,
		DryRun:         c.dryRun,
		TotalArtifacts: len(artifacts),
		Artifacts:      artifacts,
	}
}

// Flush writes the report to path as indented JSON
func (c *Collector) Flush(path string) error {
	data, err := json.MarshalIndent(c.Report(), "", "  ")
	if err != nil {
		return err
	}

	if err := utils.EnsureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func kindOf(path string) domain.UnitKind {
	switch filepath.Ext(path) {
	case ".css":
		return domain.UnitSass
	case ".html":
		return domain.UnitHTML
	default:
		return domain.UnitJS
	}
}
