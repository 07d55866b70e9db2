package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/quantmind-br/demobuild/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Report(t *testing.T) {
	dir := t.TempDir()
	c := NewCollector(CollectorOptions{BaseDir: dir, Module: "o-table", Brand: "core", Production: true})

	c.Add(filepath.Join(dir, "demos", "local", "demo.js"), 30)
	c.Add(filepath.Join(dir, "demos", "local", "basic.html"), 100)
	c.Add(filepath.Join(dir, "demos", "local", "demo.css"), 20)

	report := c.Report()
	assert.Equal(t, "o-table", report.Module)
	assert.Equal(t, "core", report.Brand)
	assert.True(t, report.Production)
	assert.Equal(t, 3, report.TotalArtifacts)
	assert.Equal(t, []domain.Artifact{
		{Path: "demos/local/basic.html", Kind: domain.UnitHTML, Size: 100},
		{Path: "demos/local/demo.css", Kind: domain.UnitSass, Size: 20},
		{Path: "demos/local/demo.js", Kind: domain.UnitJS, Size: 30},
	}, report.Artifacts)
}

func TestCollector_Add_OutsideBaseDir(t *testing.T) {
	c := NewCollector(CollectorOptions{BaseDir: "/project"})
	c.Add("/elsewhere/file.html", 1)
	assert.Equal(t, "/elsewhere/file.html", c.Report().Artifacts[0].Path)
}

func TestCollector_Flush(t *testing.T) {
	dir := t.TempDir()
	c := NewCollector(CollectorOptions{BaseDir: dir})
	c.Add(filepath.Join(dir, "demos", "local", "a.html"), 5)

	reportPath := filepath.Join(dir, "reports", "build.json")
	require.NoError(t, c.Flush(reportPath))

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	var report domain.BuildReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, 1, report.TotalArtifacts)
	assert.Equal(t, "demos/local/a.html", report.Artifacts[0].Path)
}

func TestCollector_ConcurrentAccess(t *testing.T) {
	c := NewCollector(CollectorOptions{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add("demo.html", 1)
			_ = c.Count()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, c.Count())
}
