package assets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/quantmind-br/demobuild/internal/domain"
	"github.com/quantmind-br/demobuild/internal/mocks"
	"github.com/quantmind-br/demobuild/internal/plan"
	"github.com/quantmind-br/demobuild/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type memWriter struct {
	mu    sync.Mutex
	files map[string]string
}

func newMemWriter() *memWriter {
	return &memWriter{files: map[string]string{}}
}

func (w *memWriter) Write(ctx context.Context, path string, content []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = string(content)
	return nil
}

func touch(t *testing.T, dir string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(dir, p)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte("// source"), 0644))
	}
}

func TestCoordinator_Build_SharedSourcesCompiledOnce(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "demos/src/demo.scss", "demos/src/demo.js")

	demos := []domain.DemoConfig{
		{Name: "a", Template: "a.mustache", Sass: "demos/src/demo.scss", JS: "demos/src/demo.js"},
		{Name: "b", Template: "b.mustache", Sass: "demos/src/demo.scss", JS: "demos/src/demo.js"},
		{Name: "c", Template: "c.mustache", Sass: "demos/src/demo.scss", JS: "demos/src/demo.js"},
	}
	p, err := plan.Build(demos)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)

	sass := mocks.NewMockSassBuilder(ctrl)
	sass.EXPECT().BuildSass(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, cfg domain.SassConfig) (string, error) {
			assert.Equal(t, "demos/src/demo.scss", cfg.Sass)
			assert.Equal(t, "demo.css", cfg.BuildCSS)
			assert.Equal(t, "demos/local", cfg.BuildFolder)
			assert.True(t, cfg.Sourcemaps)
			assert.Equal(t, "internal", cfg.Brand)
			assert.Equal(t, []string{"demos/src", "demos/src/scss"}, cfg.SassIncludePaths)
			return ".demo{}", nil
		}).Times(1)

	js := mocks.NewMockJSBuilder(ctrl)
	js.EXPECT().BuildJS(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, cfg domain.JSConfig) (string, error) {
			assert.Equal(t, "demos/src/demo.js", cfg.JS)
			assert.Equal(t, "demo.js", cfg.BuildJS)
			return "console.log(1)", nil
		}).Times(1)

	writer := newMemWriter()
	var mu sync.Mutex
	var completed []domain.UnitKind

	c := NewCoordinator(CoordinatorOptions{
		Cwd:     dir,
		Brand:   "internal",
		Workers: 4,
		Sass:    sass,
		JS:      js,
		Writer:  writer,
		OnUnit: func(u domain.BuildUnit) {
			mu.Lock()
			defer mu.Unlock()
			completed = append(completed, u.Kind)
		},
	})

	require.NoError(t, c.Build(context.Background(), p))

	assert.Equal(t, ".demo{}", writer.files[filepath.Join(dir, "demos/local/demo.css")])
	assert.Equal(t, "console.log(1)", writer.files[filepath.Join(dir, "demos/local/demo.js")])
	assert.ElementsMatch(t, []domain.UnitKind{domain.UnitSass, domain.UnitJS}, completed)
}

func TestCoordinator_Build_MissingSass(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()

	// No expectations: any compiler call fails the test
	c := NewCoordinator(CoordinatorOptions{
		Cwd:    dir,
		Sass:   mocks.NewMockSassBuilder(ctrl),
		JS:     mocks.NewMockJSBuilder(ctrl),
		Writer: newMemWriter(),
	})
	err := c.Build(context.Background(), &domain.BuildPlan{
		SassUnits: []domain.BuildUnit{{Kind: domain.UnitSass, SourcePath: "demos/src/nope.scss", DestPath: "demos/local/nope.css"}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSassNotFound)
	assert.Contains(t, err.Error(), "demos/src/nope.scss")
	assert.True(t, domain.IsConcise(err))
}

func TestCoordinator_Build_MissingJS(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := NewCoordinator(CoordinatorOptions{
		Cwd:    t.TempDir(),
		Sass:   mocks.NewMockSassBuilder(ctrl),
		JS:     mocks.NewMockJSBuilder(ctrl),
		Writer: newMemWriter(),
	})
	err := c.Build(context.Background(), &domain.BuildPlan{
		JSUnits: []domain.BuildUnit{{Kind: domain.UnitJS, SourcePath: "demos/src/nope.js", DestPath: "demos/local/nope.js"}},
	})

	assert.ErrorIs(t, err, domain.ErrJsNotFound)
}

func TestCoordinator_Build_CompilerFailure(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "demos/src/demo.scss")

	boom := errors.New("sass: undefined variable")
	ctrl := gomock.NewController(t)
	sass := mocks.NewMockSassBuilder(ctrl)
	sass.EXPECT().BuildSass(gomock.Any(), gomock.Any()).Return("", boom)

	writer := newMemWriter()
	c := NewCoordinator(CoordinatorOptions{Cwd: dir, Sass: sass, Writer: writer})
	err := c.Build(context.Background(), &domain.BuildPlan{
		SassUnits: []domain.BuildUnit{{Kind: domain.UnitSass, SourcePath: "demos/src/demo.scss", DestPath: "demos/local/demo.css"}},
	})

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, writer.files)
}

func TestCoordinator_Build_DryRun(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "demos/src/demo.scss", "demos/src/demo.js")

	ctrl := gomock.NewController(t)
	writer := newMemWriter()

	c := NewCoordinator(CoordinatorOptions{
		Cwd:    dir,
		DryRun: true,
		Sass:   mocks.NewMockSassBuilder(ctrl),
		JS:     mocks.NewMockJSBuilder(ctrl),
		Writer: writer,
	})
	err := c.Build(context.Background(), &domain.BuildPlan{
		SassUnits: []domain.BuildUnit{{Kind: domain.UnitSass, SourcePath: "demos/src/demo.scss", DestPath: "demos/local/demo.css"}},
		JSUnits:   []domain.BuildUnit{{Kind: domain.UnitJS, SourcePath: "demos/src/demo.js", DestPath: "demos/local/demo.js"}},
	})

	require.NoError(t, err)
	assert.Len(t, writer.files, 2)
}

func TestCoordinator_Compile_RejectsHTMLUnits(t *testing.T) {
	c := NewCoordinator(CoordinatorOptions{Cwd: t.TempDir()})
	err := c.Compile(context.Background(), []domain.BuildUnit{{Kind: domain.UnitHTML, SourcePath: "a.mustache"}})
	assert.Error(t, err)
}

func TestCoordinator_Build_EmptyPlan(t *testing.T) {
	c := NewCoordinator(CoordinatorOptions{Cwd: t.TempDir()})
	assert.NoError(t, c.Build(context.Background(), &domain.BuildPlan{}))
}

func TestCoordinator_Compile_SharedHaltStopsNewUnits(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.scss", "b.scss")

	ctrl := gomock.NewController(t)
	halt := utils.NewHalt()
	boom := errors.New("js failed elsewhere")
	halt.Fail(boom)

	// The halt already fired, so no compiler may be called
	c := NewCoordinator(CoordinatorOptions{
		Cwd:    dir,
		Sass:   mocks.NewMockSassBuilder(ctrl),
		Writer: newMemWriter(),
		Halt:   halt,
	})
	err := c.Compile(context.Background(), []domain.BuildUnit{
		{Kind: domain.UnitSass, SourcePath: "a.scss", DestPath: "a.css"},
		{Kind: domain.UnitSass, SourcePath: "b.scss", DestPath: "b.css"},
	})

	assert.ErrorIs(t, err, boom)
}
