package hypr

// LineKind classifies one raw config line.
type LineKind int

const (
	// LineOther is a comment, blank, or otherwise unrecognized line.
	LineOther LineKind = iota
	// LineAssign is a variable assignment ($name = value).
	LineAssign
	// LineBind is a bind statement (bind[flags] = mods, key, dispatcher, args).
	LineBind
)

// Line is a classified config line. Name/Value are set for LineAssign,
// Bind for LineBind; LineOther carries nothing.
type Line struct {
	Kind  LineKind
	Name  string
	Value string
	Bind  Candidate
}

// Candidate is one keybind record extracted from a bind statement.
// Mods holds the modifier field as written; ResolveMods rewrites
// variable references before the record reaches the merger.
type Candidate struct {
	Key   string // normalized key symbol
	Mods  string // modifier token(s), possibly a $variable reference
	Title string // bracketed part of the line-end annotation
	Desc  string // annotation text after the closing bracket
}
