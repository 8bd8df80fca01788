package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chatter/hyprhelp/internal/keymap"
	"github.com/chatter/hyprhelp/internal/tiles"
	"github.com/chatter/hyprhelp/internal/ui"
)

const (
	// Tile cell footprint including the rounded border.
	tileWidth  = 7
	tileHeight = 3

	// Inner label width (tileWidth minus border columns).
	tileLabelWidth = 5

	// Extra symbols beyond the fixed layout flow into appended rows.
	extraPerRow = 12
)

// Grid lays out key tiles in fixed rows and maps screen coordinates
// back to symbols. Geometry is identical across tile states so a
// hover or lock never shifts neighboring tiles.
type Grid struct {
	rows    [][]string
	indents []int // left padding per row, in cells
	width   int   // widest row, in cells

	// Screen position of the top-left tile corner.
	offsetX int
	offsetY int
}

// NewGrid builds the grid for a key map: the fixed layout rows first,
// then any extra symbols chunked into appended rows.
func NewGrid(km keymap.KeyMap) *Grid {
	rows := make([][]string, 0, len(keymap.Rows)+1)
	for _, row := range keymap.Rows {
		rows = append(rows, row)
	}

	extra := km.Extra()
	for len(extra) > 0 {
		n := min(extraPerRow, len(extra))
		rows = append(rows, extra[:n])
		extra = extra[n:]
	}

	g := &Grid{rows: rows}

	for _, row := range rows {
		if w := len(row) * tileWidth; w > g.width {
			g.width = w
		}
	}
	g.indents = make([]int, len(rows))
	for i, row := range rows {
		g.indents[i] = (g.width - len(row)*tileWidth) / 2
	}

	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return len(g.rows) * tileHeight }

// SetOffset records where the grid is placed on screen. Hit uses it to
// translate absolute mouse coordinates.
func (g *Grid) SetOffset(x, y int) {
	g.offsetX = x
	g.offsetY = y
}

// Hit returns the symbol under the given screen coordinates, or false
// when the position falls outside every tile.
func (g *Grid) Hit(x, y int) (string, bool) {
	localY := y - g.offsetY
	if localY < 0 {
		return "", false
	}
	row := localY / tileHeight
	if row >= len(g.rows) {
		return "", false
	}

	localX := x - g.offsetX - g.indents[row]
	if localX < 0 {
		return "", false
	}
	col := localX / tileWidth
	if col >= len(g.rows[row]) {
		return "", false
	}

	return g.rows[row][col], true
}

// Render draws every tile styled by its interaction state.
func (g *Grid) Render(sel *tiles.Selection, st ui.Styles) string {
	out := make([]string, 0, len(g.rows))

	for i, row := range g.rows {
		cells := make([]string, 0, len(row))
		for _, sym := range row {
			cells = append(cells, g.renderTile(sym, sel, st))
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		if g.indents[i] > 0 {
			pad := strings.Repeat(" ", g.indents[i])
			line = padLines(line, pad)
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

func (g *Grid) renderTile(sym string, sel *tiles.Selection, st ui.Styles) string {
	style := st.TileIdle
	switch sel.StateOf(sym) {
	case tiles.Hovered:
		style = st.TileHovered
	case tiles.Locked:
		style = st.TileLocked
	}

	label := sym
	if len(label) > tileLabelWidth {
		label = label[:tileLabelWidth]
	}

	return style.Width(tileLabelWidth).Render(label)
}

// padLines prefixes every line of a block, keeping the block rectangular.
func padLines(block, pad string) string {
	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
