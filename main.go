// Package main is the entry point for the hyprhelp overlay.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/chatter/hyprhelp/internal/app"
	"github.com/chatter/hyprhelp/internal/config"
	"github.com/chatter/hyprhelp/internal/hypr"
	"github.com/chatter/hyprhelp/internal/lockfile"
	"github.com/chatter/hyprhelp/internal/logger"
)

// version is set from build info or falls back to "dev"
var version = "dev"

func init() {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "hyprhelp",
		Short:   "Keybinding cheatsheet overlay for Hyprland",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			confOverride, _ := cmd.Flags().GetString("config")
			levelOverride, _ := cmd.Flags().GetString("log-level")
			return run(confOverride, levelOverride)
		},
	}

	root.Flags().String("config", "", "path to hyprland.conf (overrides hyprhelp.toml)")
	root.Flags().String("log-level", "", "log level: debug, info, warn, error")
	root.SilenceUsage = true

	return root
}

func run(confOverride, levelOverride string) error {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	// One overlay per session; a second invocation exits quietly so a
	// repeated keybind press doesn't stack windows.
	lock, err := lockfile.Acquire(lockfile.DefaultPath())
	if err != nil {
		if errors.Is(err, lockfile.ErrAlreadyRunning) {
			return nil
		}
		return err
	}
	defer lock.Release()

	level := cfg.Log.Level
	if levelOverride != "" {
		level = levelOverride
	}
	log, err := logger.New(level)
	if err != nil {
		return err
	}
	defer log.Close()

	hyprConf, err := resolveHyprConf(confOverride, cfg)
	if err != nil {
		return err
	}
	log.Info("using hyprland config", "path", hyprConf)

	model := app.New(cfg, hyprConf, version, log)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // hover needs motion events, not just clicks
	)

	if _, err := p.Run(); err != nil {
		log.Error("program failed", "error", err)
		return fmt.Errorf("run overlay: %w", err)
	}
	return nil
}

// resolveHyprConf picks the hyprland.conf to display: the --config flag
// wins, then hyprhelp.toml, then the conventional location.
func resolveHyprConf(override string, cfg config.Config) (string, error) {
	if override != "" {
		return override, nil
	}
	if cfg.Hyprland.ConfigPath != "" {
		return cfg.Hyprland.ConfigPath, nil
	}
	return hypr.DefaultConfigPath()
}
