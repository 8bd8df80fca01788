package main

import (
	"path/filepath"
	"testing"

	"github.com/chatter/hyprhelp/internal/config"
	"github.com/chatter/hyprhelp/internal/lockfile"
)

func TestResolveHyprConf_FlagWins(t *testing.T) {
	cfg := config.Default()
	cfg.Hyprland.ConfigPath = "/from/toml/hyprland.conf"

	got, err := resolveHyprConf("/from/flag/hyprland.conf", cfg)
	if err != nil {
		t.Fatalf("resolveHyprConf: %v", err)
	}
	if got != "/from/flag/hyprland.conf" {
		t.Errorf("got %q, want the --config flag value", got)
	}
}

func TestResolveHyprConf_TomlOverDefault(t *testing.T) {
	cfg := config.Default()
	cfg.Hyprland.ConfigPath = "/from/toml/hyprland.conf"

	got, err := resolveHyprConf("", cfg)
	if err != nil {
		t.Fatalf("resolveHyprConf: %v", err)
	}
	if got != "/from/toml/hyprland.conf" {
		t.Errorf("got %q, want the hyprhelp.toml value", got)
	}
}

func TestResolveHyprConf_FallsBackToConvention(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	got, err := resolveHyprConf("", config.Default())
	if err != nil {
		t.Fatalf("resolveHyprConf: %v", err)
	}
	if filepath.Base(got) != "hyprland.conf" {
		t.Errorf("got %q, want the conventional hyprland.conf location", got)
	}
}

func TestRootCmd_Flags(t *testing.T) {
	root := rootCmd()

	for _, name := range []string{"config", "log-level"} {
		if root.Flags().Lookup(name) == nil {
			t.Errorf("missing --%s flag", name)
		}
	}
	if root.Version == "" {
		t.Error("root command should carry a version")
	}
}

func TestSecondInstanceExitsQuietly(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	held, err := lockfile.Acquire(lockfile.DefaultPath())
	if err != nil {
		t.Fatalf("first Acquire: %v", err)
	}
	defer held.Release()

	_, err = lockfile.Acquire(lockfile.DefaultPath())
	if err != lockfile.ErrAlreadyRunning {
		t.Errorf("second Acquire = %v, want ErrAlreadyRunning", err)
	}
}
