// Package config loads and validates the alnview configuration via viper.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete alnview configuration
type Config struct {
	TUI     TUIConfig     `mapstructure:"tui"`
	Render  RenderConfig  `mapstructure:"render"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// DebounceMs is the quiescence delay for coalescing resize events,
	// in milliseconds (default: 150)
	DebounceMs int `mapstructure:"debounce_ms"`
	// NoticeMs is how long the transient "copied" notice stays visible,
	// in milliseconds (default: 1000)
	NoticeMs int `mapstructure:"notice_ms"`
	// PaletteFile is an optional YAML file overriding residue colors
	PaletteFile string `mapstructure:"palette_file"`
}

// RenderConfig controls non-interactive rendering
type RenderConfig struct {
	// DefaultWidth is the container width used by `alnview render` when
	// no --width flag is given: terminal columns for ANSI output, pixels
	// for HTML output (default: 80)
	DefaultWidth int `mapstructure:"default_width"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Level is the minimum level written to the log file
	// Options: "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
	// Dir is where alnview.log is written; empty disables file logging
	Dir string `mapstructure:"dir"`
}

// SetDefaults registers all default values with viper. Call before reading
// the config file so defaults apply even without one.
func SetDefaults() {
	viper.SetDefault("tui.debounce_ms", 150)
	viper.SetDefault("tui.notice_ms", 1000)
	viper.SetDefault("tui.palette_file", "")
	viper.SetDefault("render.default_width", 80)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.dir", "")
}

// Load unmarshals the current viper state into a validated Config.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigDir returns the directory holding the user's config file.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "alnview")
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
