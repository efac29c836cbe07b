package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvelders/baedeker/internal/core/config"
)

func TestWriteConfig_roundtrips_through_load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := config.DefaultConfig()
	cfg.ContentDir = filepath.Join(dir, "content")
	cfg.Guide.City = "Lausanne"
	cfg.TUI.Theme = "gruvbox"

	require.NoError(t, writeConfig(&cfg, path))

	loaded, err := config.Load(path, dir)
	require.NoError(t, err)
	assert.Equal(t, "Lausanne", loaded.Guide.City)
	assert.Equal(t, "gruvbox", loaded.TUI.Theme)
}

func TestWriteStarterContent(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, writeStarterContent(dir))

	assert.FileExists(t, filepath.Join(dir, "sights", "old-town.md"))
	assert.FileExists(t, filepath.Join(dir, "sights", "lakefront.md"))
	assert.FileExists(t, filepath.Join(dir, "food", "fondue.md"))
}
