package hypr

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigPath returns the conventional hyprland.conf location,
// honoring XDG_CONFIG_HOME.
func DefaultConfigPath() (string, error) {
	cfgDir := os.Getenv("XDG_CONFIG_HOME")
	if cfgDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not determine home directory: %w", err)
		}

		cfgDir = filepath.Join(home, ".config")
	}

	return filepath.Join(cfgDir, "hypr", "hyprland.conf"), nil
}

// ReadConfig reads the configuration file. Callers decide what a failure
// means: at startup it degrades to the default table, on reload it keeps
// the previous key map.
func ReadConfig(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading hyprland config: %w", err)
	}

	return string(data), nil
}
