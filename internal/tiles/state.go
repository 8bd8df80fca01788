// Package tiles owns the hover/lock interaction state for the key grid.
// Transitions are pure functions over (state, event); no display surface
// is involved, which keeps the state machine unit-testable.
package tiles

// State is the visual state of one tile.
type State int

const (
	// Idle means the tile is neither hovered nor locked.
	Idle State = iota
	// Hovered means the pointer rests on the tile and nothing is locked.
	Hovered
	// Locked means the tile's description is pinned.
	Locked
)

// Selection tracks per-tile state plus the single locked symbol.
// Invariant: at most one symbol is Locked, and locked is empty exactly
// when no symbol is Locked.
type Selection struct {
	states  map[string]State
	hovered string
	locked  string
}

// New creates a selection over the given symbols, all Idle, no lock.
// Events for symbols outside the set are ignored.
func New(symbols []string) *Selection {
	states := make(map[string]State, len(symbols))
	for _, sym := range symbols {
		states[sym] = Idle
	}

	return &Selection{states: states}
}

// PointerEnter hovers a tile. While a lock is held, hover is suppressed
// entirely; only the locked tile's description is authoritative.
func (s *Selection) PointerEnter(sym string) {
	if !s.known(sym) || s.locked != "" {
		return
	}

	if s.hovered != "" && s.hovered != sym {
		s.states[s.hovered] = Idle
	}

	s.hovered = sym
	s.states[sym] = Hovered
}

// PointerLeave reverts a hovered tile to Idle.
func (s *Selection) PointerLeave(sym string) {
	if !s.known(sym) || s.locked != "" {
		return
	}

	if s.hovered == sym {
		s.states[sym] = Idle
		s.hovered = ""
	}
}

// Click locks a tile. Re-clicking the locked tile is a no-op, and clicks
// on other tiles while a lock is held are ignored; the lock never moves
// silently. Unlocking is background-click only.
func (s *Selection) Click(sym string) {
	if !s.known(sym) || s.locked != "" {
		return
	}

	if s.hovered != "" && s.hovered != sym {
		s.states[s.hovered] = Idle
	}
	s.hovered = ""

	s.locked = sym
	s.states[sym] = Locked
}

// ClickBackground clears the lock, if any.
func (s *Selection) ClickBackground() {
	if s.locked == "" {
		return
	}

	s.states[s.locked] = Idle
	s.locked = ""
}

// Reset returns every tile to Idle with no lock. Used on reload, which
// semantically starts a new session.
func (s *Selection) Reset() {
	for sym := range s.states {
		s.states[sym] = Idle
	}
	s.hovered = ""
	s.locked = ""
}

// StateOf returns a tile's current state. Unknown symbols are Idle.
func (s *Selection) StateOf(sym string) State {
	return s.states[sym]
}

// Locked returns the locked symbol, if any.
func (s *Selection) Locked() (string, bool) {
	return s.locked, s.locked != ""
}

// Active returns the symbol whose description should be shown: the
// locked symbol if set, else the hovered symbol, else none.
func (s *Selection) Active() (string, bool) {
	if s.locked != "" {
		return s.locked, true
	}
	if s.hovered != "" {
		return s.hovered, true
	}

	return "", false
}

func (s *Selection) known(sym string) bool {
	_, ok := s.states[sym]

	return ok
}
