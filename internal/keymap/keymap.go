// Package keymap builds the ordered key map shown by the overlay:
// compile-time defaults merged with keybind records parsed from the
// Hyprland config.
package keymap

import (
	"github.com/chatter/hyprhelp/internal/hypr"
)

// Source records where a keybind's content came from.
type Source int

const (
	// SourceDefault marks an entry served entirely by the default table.
	SourceDefault Source = iota
	// SourceParsed marks an entry a config bind line contributed to.
	SourceParsed
)

// Keybind is one display entry. Immutable once the map is built.
type Keybind struct {
	Sym    string // canonical key symbol
	Mod    string // human-readable modifier, possibly empty
	Title  string
	Desc   string
	Source Source
}

// KeyMap is an ordered mapping from key symbol to Keybind. Known symbols
// follow the fixed layout; extra symbols from the config are appended in
// first-seen order.
type KeyMap struct {
	order   []string
	entries map[string]Keybind
}

// Len returns the number of entries.
func (k KeyMap) Len() int { return len(k.order) }

// Symbols returns the symbols in display order.
func (k KeyMap) Symbols() []string {
	syms := make([]string, len(k.order))
	copy(syms, k.order)

	return syms
}

// Lookup returns the entry for a symbol.
func (k KeyMap) Lookup(sym string) (Keybind, bool) {
	kb, ok := k.entries[sym]

	return kb, ok
}

// Entries returns all entries in display order.
func (k KeyMap) Entries() []Keybind {
	entries := make([]Keybind, 0, len(k.order))
	for _, sym := range k.order {
		entries = append(entries, k.entries[sym])
	}

	return entries
}

// Extra returns the symbols admitted beyond the fixed layout, in
// first-seen order.
func (k KeyMap) Extra() []string {
	layout := len(Symbols())
	if len(k.order) <= layout {
		return nil
	}

	extra := make([]string, len(k.order)-layout)
	copy(extra, k.order[layout:])

	return extra
}

// Defaults returns the key map built from the default table alone,
// equivalent to merging an empty candidate list.
func Defaults() KeyMap {
	return Merge(nil)
}

// FromConfig runs the full pipeline over raw config text: classify
// lines, extract candidates, resolve modifier aliases, merge with the
// default table. Total over strings; garbage in means defaults out.
func FromConfig(text string) KeyMap {
	lines := hypr.Lines(text)
	cands := hypr.Resolve(hypr.Candidates(lines), hypr.Aliases(lines))

	return Merge(cands)
}

// Merge combines resolved candidate records with the default table.
// Candidates overwrite per field and only with non-empty values, so an
// empty candidate title never blanks a default title. Later candidates
// for the same symbol win over earlier ones.
func Merge(cands []hypr.Candidate) KeyMap {
	entries := make(map[string]Keybind)
	order := make([]string, 0, len(Rows)*12)

	for _, sym := range Symbols() {
		kb := Keybind{Sym: sym, Source: SourceDefault}
		if d, ok := defaultTable[sym]; ok {
			kb.Mod = DefaultModifier
			kb.Title = d.title
			kb.Desc = d.desc
		}

		entries[sym] = kb
		order = append(order, sym)
	}

	for _, c := range cands {
		kb, known := entries[c.Key]
		if !known {
			kb = Keybind{Sym: c.Key}
			order = append(order, c.Key)
		}

		if c.Mods != "" {
			kb.Mod = c.Mods
		}
		if c.Title != "" {
			kb.Title = c.Title
		}
		if c.Desc != "" {
			kb.Desc = c.Desc
		}
		kb.Source = SourceParsed

		entries[c.Key] = kb
	}

	return KeyMap{order: order, entries: entries}
}
