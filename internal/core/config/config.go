// Package config handles configuration loading and validation for baedeker.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mvelders/baedeker/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	ContentDir string      `yaml:"content_dir"`
	Guide      GuideConfig `yaml:"guide"`
	TUI        TUIConfig   `yaml:"tui"`
	DataDir    string      `yaml:"-"` // set by caller, not from config file
}

// GuideConfig holds guide content settings.
type GuideConfig struct {
	City string `yaml:"city"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme        string `yaml:"theme"`
	DialogHideMS int    `yaml:"dialog_hide_ms"` // delay before a closed dialog leaves the screen
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Guide: GuideConfig{
			City: "Geneva",
		},
		TUI: TUIConfig{
			Theme:        styles.DefaultTheme,
			DialogHideMS: 200,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Guide.City == "" {
		c.Guide.City = defaults.Guide.City
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.DialogHideMS == 0 {
		c.TUI.DialogHideMS = defaults.TUI.DialogHideMS
	}
	if c.ContentDir == "" && c.DataDir != "" {
		c.ContentDir = filepath.Join(c.DataDir, "content")
	}
}

// DialogHideDelay returns the dialog hide delay as a duration.
func (c *Config) DialogHideDelay() time.Duration {
	return time.Duration(c.TUI.DialogHideMS) * time.Millisecond
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.ContentDir == "" {
		return fmt.Errorf("content_dir cannot be empty")
	}

	if c.Guide.City == "" {
		return fmt.Errorf("guide.city cannot be empty")
	}

	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		return fmt.Errorf("tui.theme %q is not a built-in theme (have: %v)", c.TUI.Theme, styles.ThemeNames())
	}

	if c.TUI.DialogHideMS < 0 {
		return fmt.Errorf("tui.dialog_hide_ms cannot be negative")
	}

	return nil
}
