// Package hypr extracts keybind records from Hyprland configuration text
// and queries the running compositor via hyprctl.
//
// The scanner is deliberately tolerant: it recognizes exactly two line
// shapes (variable assignments and bind statements) and classifies
// everything else as inert. Malformed lines never produce errors, only
// the absence of a record.
package hypr

import (
	"regexp"
	"strings"
)

// bindRe matches the head of a bind statement: the bind directive with
// optional flag letters (binde, bindm, bindl, ...) up to the "=".
var bindRe = regexp.MustCompile(`^\s*bind[a-z]*\s*=\s*(.*)$`)

// assignRe matches a variable assignment like "$mainMod = SUPER".
var assignRe = regexp.MustCompile(`^\s*(\$\w+)\s*=\s*(.*)$`)

// Lines classifies raw config text line by line. It is total: every
// input line maps to exactly one Line, unparseable content to LineOther.
func Lines(text string) []Line {
	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))

	for _, l := range raw {
		lines = append(lines, classify(l))
	}

	return lines
}

// Extract returns the candidate keybind records found in raw config text.
func Extract(text string) []Candidate {
	return Candidates(Lines(text))
}

// Candidates collects the bind records from classified lines.
func Candidates(lines []Line) []Candidate {
	var cands []Candidate

	for _, ln := range lines {
		if ln.Kind == LineBind {
			cands = append(cands, ln.Bind)
		}
	}

	return cands
}

func classify(line string) Line {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Line{Kind: LineOther}
	}

	if m := bindRe.FindStringSubmatch(line); m != nil {
		if cand, ok := parseBind(m[1]); ok {
			return Line{Kind: LineBind, Bind: cand}
		}

		return Line{Kind: LineOther}
	}

	if m := assignRe.FindStringSubmatch(line); m != nil {
		// Assignments may carry a trailing comment; only the first
		// token of the value is meaningful.
		value, _, _ := strings.Cut(m[2], "#")
		fields := strings.Fields(value)
		if len(fields) != 1 {
			return Line{Kind: LineOther}
		}

		return Line{Kind: LineAssign, Name: m[1], Value: fields[0]}
	}

	return Line{Kind: LineOther}
}

// parseBind parses everything after "bind... =". The annotation zone is
// the text after the first "#"; before it, comma-separated fields where
// the second field is the physical key.
func parseBind(rest string) (Candidate, bool) {
	stmt, annotation, _ := strings.Cut(rest, "#")

	fields := strings.Split(stmt, ",")
	if len(fields) < 2 {
		return Candidate{}, false
	}

	mods := strings.TrimSpace(fields[0])
	key := strings.TrimSpace(fields[1])
	if key == "" {
		return Candidate{}, false
	}

	var dispatcher, arg string
	if len(fields) > 2 {
		dispatcher = strings.TrimSpace(fields[2])
	}
	if len(fields) > 3 {
		arg = strings.TrimSpace(fields[3])
	}

	title, desc := parseAnnotation(annotation)

	return Candidate{
		Key:   NormalizeKey(key, dispatcher, arg),
		Mods:  mods,
		Title: title,
		Desc:  desc,
	}, true
}

// parseAnnotation splits a "[Title] Description" annotation. Without
// brackets the annotation is inert. An unclosed bracket yields no title
// and the raw trimmed text as description.
func parseAnnotation(s string) (title, desc string) {
	s = strings.TrimSpace(s)
	if s == "" || !strings.HasPrefix(s, "[") {
		return "", ""
	}

	end := strings.Index(s, "]")
	if end < 0 {
		return "", s
	}

	return strings.TrimSpace(s[1:end]), strings.TrimSpace(s[end+1:])
}

// directionalDispatchers are dispatchers whose first argument names a
// direction; for these the argument, not the literal key field,
// determines the displayed arrow symbol.
var directionalDispatchers = map[string]bool{
	"movefocus":  true,
	"movewindow": true,
	"swapwindow": true,
}

var arrowByArg = map[string]string{
	"l": "Left",
	"r": "Right",
	"u": "Up",
	"d": "Down",
}

var arrowByKey = map[string]string{
	"left":  "Left",
	"right": "Right",
	"up":    "Up",
	"down":  "Down",
}

// fnKeyRe matches function keys F1..F35 in any case.
var fnKeyRe = regexp.MustCompile(`^[fF]([1-9][0-9]?)$`)

// NormalizeKey maps a bind's key field to the canonical symbol space used
// by the default table: single letters and digits upper-case, function
// keys "F<n>", direction keys "Left"/"Right"/"Up"/"Down". A direction key
// bound to a directional dispatcher takes its symbol from the dispatch
// argument instead of the key field.
func NormalizeKey(key, dispatcher, arg string) string {
	lower := strings.ToLower(key)

	if arrowByKey[lower] != "" && directionalDispatchers[strings.ToLower(dispatcher)] {
		if arrow := arrowByArg[strings.ToLower(arg)]; arrow != "" {
			return arrow
		}
	}

	if arrow := arrowByKey[lower]; arrow != "" {
		return arrow
	}

	if len(key) == 1 {
		return strings.ToUpper(key)
	}

	if m := fnKeyRe.FindStringSubmatch(key); m != nil {
		return "F" + m[1]
	}

	// Unknown multi-character symbols (Print, XF86AudioMute, ...) keep
	// their spelling; the merger admits them as extra entries.
	return key
}
