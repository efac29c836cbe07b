package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_missing_file_uses_defaults(t *testing.T) {
	dataDir := t.TempDir()

	cfg, err := Load(filepath.Join(dataDir, "nope.yml"), dataDir)
	require.NoError(t, err)

	assert.Equal(t, "Geneva", cfg.Guide.City)
	assert.Equal(t, "alpine", cfg.TUI.Theme)
	assert.Equal(t, 200, cfg.TUI.DialogHideMS)
	assert.Equal(t, filepath.Join(dataDir, "content"), cfg.ContentDir)
	assert.Equal(t, dataDir, cfg.DataDir)
}

func TestLoad_file_overrides_defaults(t *testing.T) {
	dataDir := t.TempDir()
	path := filepath.Join(dataDir, "baedeker.yml")
	body := `
content_dir: /tmp/guides
guide:
  city: Lausanne
tui:
  theme: gruvbox
  dialog_hide_ms: 120
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path, dataDir)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/guides", cfg.ContentDir)
	assert.Equal(t, "Lausanne", cfg.Guide.City)
	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.Equal(t, 120*time.Millisecond, cfg.DialogHideDelay())
}

func TestLoad_partial_file_keeps_defaults(t *testing.T) {
	dataDir := t.TempDir()
	path := filepath.Join(dataDir, "baedeker.yml")
	require.NoError(t, os.WriteFile(path, []byte("guide:\n  city: Zurich\n"), 0o644))

	cfg, err := Load(path, dataDir)
	require.NoError(t, err)

	assert.Equal(t, "Zurich", cfg.Guide.City)
	assert.Equal(t, "alpine", cfg.TUI.Theme)
	assert.Equal(t, 200, cfg.TUI.DialogHideMS)
}

func TestLoad_invalid_yaml(t *testing.T) {
	dataDir := t.TempDir()
	path := filepath.Join(dataDir, "baedeker.yml")
	require.NoError(t, os.WriteFile(path, []byte("tui: [not a map"), 0o644))

	_, err := Load(path, dataDir)
	assert.ErrorContains(t, err, "parse config file")
}

func TestValidate_rejects_unknown_theme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ContentDir = "/tmp/guides"
	cfg.TUI.Theme = "solarized-disco"

	err := cfg.Validate()
	assert.ErrorContains(t, err, "not a built-in theme")
}

func TestValidate_rejects_negative_hide_delay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ContentDir = "/tmp/guides"
	cfg.TUI.DialogHideMS = -5

	err := cfg.Validate()
	assert.ErrorContains(t, err, "dialog_hide_ms")
}

func TestValidateDeep_content_dir_is_file(t *testing.T) {
	dataDir := t.TempDir()
	file := filepath.Join(dataDir, "content")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	cfg := DefaultConfig()
	cfg.DataDir = dataDir
	cfg.ContentDir = file

	err := cfg.ValidateDeep("")
	assert.ErrorContains(t, err, "content_dir")
}

func TestWarnings_missing_content_dir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ContentDir = filepath.Join(t.TempDir(), "missing")

	warnings := cfg.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "Content", warnings[0].Category)
}

func TestWarnings_empty_content_dir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ContentDir = t.TempDir()

	warnings := cfg.Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "empty")
}
