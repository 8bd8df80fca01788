package hypr

import "strings"

// modifierTokens is the closed set of modifier names an assignment must
// resolve to before it is treated as a modifier alias.
var modifierTokens = map[string]bool{
	"SUPER":   true,
	"ALT":     true,
	"CTRL":    true,
	"CONTROL": true,
	"SHIFT":   true,
	"META":    true,
	"WIN":     true,
}

// Aliases collects modifier aliases from classified lines. Only
// assignments whose value is a recognized modifier token count; the last
// assignment of a given name wins.
func Aliases(lines []Line) map[string]string {
	aliases := make(map[string]string)

	for _, ln := range lines {
		if ln.Kind != LineAssign {
			continue
		}
		if modifierTokens[strings.ToUpper(ln.Value)] {
			aliases[ln.Name] = ln.Value
		}
	}

	return aliases
}

// ResolveMods rewrites variable references in a modifier field. Each
// whitespace-separated token starting with "$" is substituted when an
// alias exists; everything else, including unresolved references and
// literal modifier names, passes through unchanged.
func ResolveMods(mods string, aliases map[string]string) string {
	if mods == "" || len(aliases) == 0 {
		return mods
	}

	tokens := strings.Fields(mods)
	for i, tok := range tokens {
		if value, ok := aliases[tok]; ok {
			tokens[i] = value
		}
	}

	return strings.Join(tokens, " ")
}

// Resolve applies modifier aliases to every candidate record.
func Resolve(cands []Candidate, aliases map[string]string) []Candidate {
	resolved := make([]Candidate, len(cands))
	for i, c := range cands {
		c.Mods = ResolveMods(c.Mods, aliases)
		resolved[i] = c
	}

	return resolved
}
