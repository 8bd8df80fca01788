package help

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// Two categories side by side need a readable column each.
	minColumnWidth = 16
	columnGap      = 3
)

// FloatingHelp is the modal listing the overlay's keybindings. The
// overlay has exactly two categories, so the modal renders them as two
// side-by-side columns and stacks them only when the modal is narrow.
type FloatingHelp struct {
	width    int
	height   int
	bindings []HelpBinding

	frame       lipgloss.Style
	titleStyle  lipgloss.Style
	headerStyle lipgloss.Style
	keyStyle    lipgloss.Style
	descStyle   lipgloss.Style
	footerStyle lipgloss.Style
}

// NewFloatingHelp creates a new floating help modal.
func NewFloatingHelp() *FloatingHelp {
	return &FloatingHelp{
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2),
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")),
		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")),
		keyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")),
		descStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		footerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

// SetSize sets the available size for the modal.
func (f *FloatingHelp) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// SetBindings sets the keybindings to display.
func (f *FloatingHelp) SetBindings(bindings []HelpBinding) {
	f.bindings = bindings
}

// View renders the modal: title row, binding columns, footer row, all
// clamped to the size set by SetSize.
func (f *FloatingHelp) View() string {
	if f.width <= 0 || f.height <= 0 {
		return ""
	}

	innerWidth := f.width - f.frame.GetHorizontalFrameSize()
	innerHeight := f.height - f.frame.GetVerticalFrameSize()

	if innerWidth < 20 || innerHeight < 5 {
		return f.frame.Width(max(innerWidth, 10)).Render("…")
	}

	body := f.renderBody(innerWidth, innerHeight-2) // title and footer rows

	upper := lipgloss.Place(
		innerWidth, innerHeight-1,
		lipgloss.Left, lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, f.titleStyle.Render("Keys"), body),
	)
	footer := lipgloss.PlaceHorizontal(innerWidth, lipgloss.Right, f.footerStyle.Render("? to close"))

	return f.frame.Render(lipgloss.JoinVertical(lipgloss.Left, upper, footer))
}

// renderBody lays the two categories out side by side when the width
// allows, otherwise stacked.
func (f *FloatingHelp) renderBody(width, maxLines int) string {
	interaction := f.columnFor(CategoryInteraction)
	actions := f.columnFor(CategoryActions)

	if len(interaction) == 0 && len(actions) == 0 {
		return "No keybindings available"
	}

	if len(interaction) > 0 && len(actions) > 0 && width >= 2*minColumnWidth+columnGap {
		colWidth := (width - columnGap) / 2
		left := f.renderColumn(CategoryInteraction, interaction, colWidth, maxLines)
		right := f.renderColumn(CategoryActions, actions, colWidth, maxLines)

		return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", columnGap), right)
	}

	// Single category, or too narrow for two columns.
	var lines []string
	for _, cat := range []Category{CategoryInteraction, CategoryActions} {
		col := f.columnFor(cat)
		if len(col) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, strings.Split(f.renderColumn(cat, col, width, maxLines), "\n")...)
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	return strings.Join(lines, "\n")
}

// columnFor collects a category's enabled bindings in Order.
func (f *FloatingHelp) columnFor(cat Category) []HelpBinding {
	var col []HelpBinding
	for _, hb := range f.bindings {
		if hb.Category == cat && hb.Binding.Enabled() {
			col = append(col, hb)
		}
	}

	sort.SliceStable(col, func(i, j int) bool {
		return col[i].Order < col[j].Order
	})

	return col
}

// renderColumn renders one category header plus its key/desc rows,
// clamped to the column width and line count.
func (f *FloatingHelp) renderColumn(cat Category, col []HelpBinding, width, maxLines int) string {
	keyWidth := 0
	for _, hb := range col {
		if w := lipgloss.Width(hb.Binding.Help().Key); w > keyWidth {
			keyWidth = w
		}
	}

	lines := []string{f.headerStyle.Render(string(cat))}
	for _, hb := range col {
		h := hb.Binding.Help()
		lines = append(lines, "  "+f.keyStyle.Width(keyWidth+2).Render(h.Key)+f.descStyle.Render(h.Desc))
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(lines, "\n"))
}
