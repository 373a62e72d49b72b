package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/echoquill"
	"github.com/fwojciec/echoquill/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	t.Run("writes exact story bytes", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		exporter := fs.NewExporter(dir)

		path, err := exporter.Export(echoquill.NewArtifact("Hello\nWorld"))

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "story.txt"), path)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("Hello\nWorld"), content)
	})

	t.Run("creates missing directories", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "exports")
		exporter := fs.NewExporter(dir)

		path, err := exporter.Export(echoquill.NewArtifact("story"))

		require.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("overwrites previous export", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		exporter := fs.NewExporter(dir)

		_, err := exporter.Export(echoquill.NewArtifact("a much longer first story"))
		require.NoError(t, err)
		path, err := exporter.Export(echoquill.NewArtifact("short"))
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "short", string(content))
	})

	t.Run("empty story produces empty file", func(t *testing.T) {
		t.Parallel()

		exporter := fs.NewExporter(t.TempDir())

		path, err := exporter.Export(echoquill.NewArtifact(""))

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Empty(t, content)
	})

	t.Run("name cannot escape directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		exporter := fs.NewExporter(dir)

		path, err := exporter.Export(echoquill.Artifact{Name: "../escape.txt", Content: []byte("x")})

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "escape.txt"), path)
	})

	t.Run("directory error names the directory", func(t *testing.T) {
		t.Parallel()

		blocker := filepath.Join(t.TempDir(), "not-a-dir")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
		exporter := fs.NewExporter(filepath.Join(blocker, "exports"))

		_, err := exporter.Export(echoquill.NewArtifact("story"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "create export dir")
		assert.Contains(t, err.Error(), blocker)
	})

	t.Run("write error names the file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "story.txt"), 0o755))
		exporter := fs.NewExporter(dir)

		_, err := exporter.Export(echoquill.NewArtifact("story"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "export "+filepath.Join(dir, "story.txt"))
	})
}

func TestDefaultStateDir_UsesXDG(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/xdg-state")

	assert.Equal(t, "/tmp/xdg-state/echoquill", fs.DefaultStateDir())
}

func TestDefaultExportDir_UsesXDG(t *testing.T) {
	t.Setenv("XDG_DOWNLOAD_DIR", "/tmp/xdg-downloads")

	assert.Equal(t, "/tmp/xdg-downloads", fs.DefaultExportDir())
}

func TestDefaultExportDir_PrefersDownloads(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(home, "Downloads"), 0o755))
	t.Setenv("XDG_DOWNLOAD_DIR", "")
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, "Downloads"), fs.DefaultExportDir())
}

func TestDefaultExportDir_FallsBackToWorkingDir(t *testing.T) {
	t.Setenv("XDG_DOWNLOAD_DIR", "")
	t.Setenv("HOME", t.TempDir())

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, fs.DefaultExportDir())
}
