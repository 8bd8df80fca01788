package hypr

import (
	"strings"
	"testing"
)

func TestAliases_ModifierValuesOnly(t *testing.T) {
	lines := Lines(strings.Join([]string{
		"$mainMod = SUPER",
		"$terminal = kitty",
		"$browser = firefox",
	}, "\n"))

	aliases := Aliases(lines)
	if len(aliases) != 1 {
		t.Fatalf("expected 1 alias, got %d: %v", len(aliases), aliases)
	}
	if aliases["$mainMod"] != "SUPER" {
		t.Errorf("expected $mainMod -> SUPER, got %q", aliases["$mainMod"])
	}
}

func TestAliases_LastAssignmentWins(t *testing.T) {
	lines := Lines(strings.Join([]string{
		"$mainMod = SUPER",
		"bind = $mainMod, Q, exec, kitty",
		"$mainMod = ALT",
	}, "\n"))

	if got := Aliases(lines)["$mainMod"]; got != "ALT" {
		t.Errorf("expected last assignment ALT to win, got %q", got)
	}
}

func TestAliases_CaseInsensitiveValueMatch(t *testing.T) {
	lines := Lines("$mod = super")

	if got := Aliases(lines)["$mod"]; got != "super" {
		t.Errorf("expected lowercase super accepted and kept as written, got %q", got)
	}
}

func TestResolveMods(t *testing.T) {
	aliases := map[string]string{"$mainMod": "SUPER"}

	tests := []struct {
		mods string
		want string
	}{
		{"$mainMod", "SUPER"},
		{"$mainMod SHIFT", "SUPER SHIFT"},
		{"SUPER", "SUPER"},           // literal modifier passes through
		{"$otherMod", "$otherMod"},   // unresolved reference left as found
		{"", ""},                     // empty modifier stays empty
		{"CTRL $mainMod", "CTRL SUPER"},
	}

	for _, tt := range tests {
		if got := ResolveMods(tt.mods, aliases); got != tt.want {
			t.Errorf("ResolveMods(%q) = %q, want %q", tt.mods, got, tt.want)
		}
	}
}

func TestResolve_RewritesCandidates(t *testing.T) {
	text := strings.Join([]string{
		"$mainMod = SUPER",
		"bind = $mainMod, Q, exec, kitty # [Terminal] Launch the terminal",
		"bind = $mainMod SHIFT, Q, exec, kitty --fullscreen",
		"bind = ALT, Tab, cyclenext,",
	}, "\n")

	lines := Lines(text)
	cands := Resolve(Candidates(lines), Aliases(lines))

	if len(cands) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(cands))
	}
	if cands[0].Mods != "SUPER" {
		t.Errorf("expected SUPER, got %q", cands[0].Mods)
	}
	if cands[1].Mods != "SUPER SHIFT" {
		t.Errorf("expected SUPER SHIFT, got %q", cands[1].Mods)
	}
	if cands[2].Mods != "ALT" {
		t.Errorf("expected ALT untouched, got %q", cands[2].Mods)
	}
}

func TestResolve_NoAssignmentLeavesReferences(t *testing.T) {
	lines := Lines("bind = $mainMod, Q, exec, kitty")
	cands := Resolve(Candidates(lines), Aliases(lines))

	if cands[0].Mods != "$mainMod" {
		t.Errorf("expected $mainMod left as literal text, got %q", cands[0].Mods)
	}
}
