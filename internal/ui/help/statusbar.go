package help

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar renders a minimal status line: prioritized key hints on the
// left, the focused display and version right-aligned.
type StatusBar struct {
	width    int
	version  string
	monitor  string
	bindings []HelpBinding

	// Styles
	keyStyle  lipgloss.Style
	descStyle lipgloss.Style
	sepStyle  lipgloss.Style
}

// NewStatusBar creates a new status bar that displays the given version string.
func NewStatusBar(version string) *StatusBar {
	return &StatusBar{
		version:   version,
		keyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#999999")),
		descStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#777777")),
		sepStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")),
	}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// SetMonitor sets the focused display name shown next to the version.
func (s *StatusBar) SetMonitor(name string) {
	s.monitor = name
}

// SetBindings sets the key hints. Hints render sorted by Order; when the
// width runs out, unpinned hints are dropped lowest-priority first and an
// ellipsis marks the truncation. Pinned hints always render.
func (s *StatusBar) SetBindings(bindings []HelpBinding) {
	s.bindings = bindings
}

// View renders the status bar. The version is always present; key hints
// fill whatever width remains.
func (s *StatusBar) View() string {
	if s.width <= 0 {
		return ""
	}

	right := s.version
	if s.monitor != "" {
		right = s.descStyle.Render(s.monitor) + s.sepStyle.Render(" • ") + s.version
	}
	rightWidth := lipgloss.Width(right)

	const minGap = 1
	left := s.renderHints(s.width - rightWidth - minGap)
	leftWidth := lipgloss.Width(left)

	// Hints that still don't fit next to the version are dropped whole.
	if leftWidth+minGap+rightWidth > s.width {
		left = ""
		leftWidth = 0
	}

	padding := s.width - leftWidth - rightWidth
	if padding < 0 {
		padding = 0
	}

	return left + strings.Repeat(" ", padding) + right
}

// renderHints renders as many key hints as fit in budget cells.
func (s *StatusBar) renderHints(budget int) string {
	var enabled []HelpBinding
	for _, hb := range s.bindings {
		if hb.Binding.Enabled() {
			enabled = append(enabled, hb)
		}
	}
	if len(enabled) == 0 || budget <= 0 {
		return ""
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Order < enabled[j].Order
	})

	sep := s.sepStyle.Render(" • ")
	sepWidth := lipgloss.Width(sep)

	fragment := func(hb HelpBinding) string {
		h := hb.Binding.Help()

		return s.keyStyle.Render(h.Key) + " " + s.descStyle.Render(h.Desc)
	}

	var chosen []HelpBinding
	used := 0

	// Pinned hints are unconditional.
	for _, hb := range enabled {
		if !hb.Pinned {
			continue
		}
		if len(chosen) > 0 {
			used += sepWidth
		}
		used += lipgloss.Width(fragment(hb))
		chosen = append(chosen, hb)
	}

	omitted := false
	for _, hb := range enabled {
		if hb.Pinned {
			continue
		}

		need := lipgloss.Width(fragment(hb))
		if len(chosen) > 0 {
			need += sepWidth
		}
		if used+need > budget {
			omitted = true
			continue
		}

		used += need
		chosen = append(chosen, hb)
	}

	sort.SliceStable(chosen, func(i, j int) bool {
		return chosen[i].Order < chosen[j].Order
	})

	parts := make([]string, 0, len(chosen))
	for _, hb := range chosen {
		parts = append(parts, fragment(hb))
	}
	line := strings.Join(parts, sep)

	if omitted && len(chosen) > 0 {
		ellipsis := sep + s.sepStyle.Render("…")
		if used+lipgloss.Width(ellipsis) <= budget {
			line += ellipsis
		}
	}

	return line
}
