// Package config parses hyprhelp.toml user configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
)

// hexColorRe matches a 6-digit hex color string like "#89b4fa".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level hyprhelp.toml configuration.
type Config struct {
	Hyprland HyprlandConfig `toml:"hyprland"`
	Theme    ThemeConfig    `toml:"theme"`
	Log      LogConfig      `toml:"log"`
}

// HyprlandConfig points hyprhelp at the compositor configuration.
type HyprlandConfig struct {
	// ConfigPath overrides the conventional hyprland.conf location.
	ConfigPath string `toml:"config_path"`
}

// LogConfig controls structured logging. An empty level disables it.
type LogConfig struct {
	Level string `toml:"level"`
}

// ThemeConfig is the overlay color palette.
type ThemeConfig struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Accent     string `toml:"accent"`
	Urgent     string `toml:"urgent"`
	Overlay    string `toml:"overlay"`
	Warning    string `toml:"warning"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme: ThemeConfig{
			Background: "#1e1e2e",
			Foreground: "#cdd6f4",
			Accent:     "#89b4fa",
			Urgent:     "#f38ba8",
			Overlay:    "#313244",
			Warning:    "#fab387",
		},
	}
}

// DefaultPath returns the conventional hyprhelp.toml location.
func DefaultPath() (string, error) {
	cfgDir := os.Getenv("XDG_CONFIG_HOME")
	if cfgDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not determine home directory: %w", err)
		}

		cfgDir = filepath.Join(home, ".config")
	}

	return filepath.Join(cfgDir, "hyprhelp", "hyprhelp.toml"), nil
}

// Load reads hyprhelp.toml from path. A missing file yields the default
// configuration; a present but broken file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for issues that would cause
// confusing runtime failures. It returns all found issues joined.
func (c *Config) Validate() error {
	var errs []error

	colors := map[string]string{
		"theme.background": c.Theme.Background,
		"theme.foreground": c.Theme.Foreground,
		"theme.accent":     c.Theme.Accent,
		"theme.urgent":     c.Theme.Urgent,
		"theme.overlay":    c.Theme.Overlay,
		"theme.warning":    c.Theme.Warning,
	}
	for name, value := range colors {
		if value != "" && !hexColorRe.MatchString(value) {
			errs = append(errs, fmt.Errorf("%s must be a hex color like #89b4fa, got %q", name, value))
		}
	}

	return errors.Join(errs...)
}
