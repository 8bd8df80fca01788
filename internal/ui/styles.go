package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/chatter/hyprhelp/internal/config"
)

// Theme is the resolved overlay color palette.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Urgent     lipgloss.Color
	Overlay    lipgloss.Color
	Warning    lipgloss.Color
}

// NewTheme builds a theme from the user configuration.
func NewTheme(c config.ThemeConfig) Theme {
	return Theme{
		Background: lipgloss.Color(c.Background),
		Foreground: lipgloss.Color(c.Foreground),
		Accent:     lipgloss.Color(c.Accent),
		Urgent:     lipgloss.Color(c.Urgent),
		Overlay:    lipgloss.Color(c.Overlay),
		Warning:    lipgloss.Color(c.Warning),
	}
}

// Styles holds the prebuilt lipgloss styles for the overlay.
type Styles struct {
	// Header
	AppTitle lipgloss.Style

	// Info panel above the grid
	InfoTitle lipgloss.Style
	InfoDesc  lipgloss.Style
	Hint      lipgloss.Style

	// Tiles by interaction state
	TileIdle    lipgloss.Style
	TileHovered lipgloss.Style
	TileLocked  lipgloss.Style

	// Status bar
	StatusBar lipgloss.Style
}

// NewStyles derives the overlay styles from a theme. Tile styles differ
// only in color so the grid geometry stays identical across states.
func NewStyles(t Theme) Styles {
	tile := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Align(lipgloss.Center).
		Bold(true)

	return Styles{
		AppTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		InfoTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Warning),
		InfoDesc: lipgloss.NewStyle().
			Foreground(t.Foreground),
		Hint: lipgloss.NewStyle().
			Foreground(t.Overlay),
		TileIdle: tile.
			BorderForeground(t.Overlay).
			Foreground(t.Foreground),
		TileHovered: tile.
			BorderForeground(t.Warning).
			Foreground(t.Warning),
		TileLocked: tile.
			BorderForeground(t.Accent).
			Foreground(t.Accent),
		StatusBar: lipgloss.NewStyle().
			Foreground(t.Overlay),
	}
}
