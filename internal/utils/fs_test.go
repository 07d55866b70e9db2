package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "demos", "local", "basic.html")

	require.NoError(t, EnsureDir(target))

	info, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "main.scss")
	require.NoError(t, os.WriteFile(file, []byte("a{}"), 0644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(tmpDir, "missing.scss")))
	assert.False(t, FileExists(tmpDir), "directories are not files")
}

func TestReplaceExt(t *testing.T) {
	tests := []struct {
		path, from, to, expected string
	}{
		{"demos/src/main.scss", ".scss", ".css", "main.css"},
		{"demos/src/demo.js", ".js", ".js", "demo.js"},
		{"demos/src/plain.css", ".scss", ".css", "plain.css"},
		{"main.scss", ".scss", ".css", "main.css"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReplaceExt(tt.path, tt.from, tt.to))
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".demobuild"), ExpandPath("~/.demobuild"))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
}
