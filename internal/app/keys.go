package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chatter/hyprhelp/internal/ui/help"
)

// Action is a function that executes a keybinding's behavior
type Action func(m *Model) (Model, tea.Cmd)

// ActionBinding combines a display binding with its action for dispatch.
type ActionBinding struct {
	help.HelpBinding        // embedded for display (Binding, Category, Order)
	Action           Action // nil = display-only (no action)
}

// dispatchKey iterates through bindings and executes the first matching action.
// Returns nil, nil if no binding matches.
func dispatchKey(m *Model, msg tea.KeyMsg, bindings []ActionBinding) (*Model, tea.Cmd) {
	for _, ab := range bindings {
		if key.Matches(msg, ab.Binding) && ab.Action != nil {
			newModel, cmd := ab.Action(m)
			return &newModel, cmd
		}
	}
	return nil, nil
}

// ToHelpBindings extracts display-only bindings from action bindings.
func ToHelpBindings(abs []ActionBinding) []help.HelpBinding {
	result := make([]help.HelpBinding, len(abs))
	for i, ab := range abs {
		result[i] = ab.HelpBinding
	}
	return result
}

// KeyMap defines the key bindings for the overlay
type KeyMap struct {
	Reload key.Binding
	Back   key.Binding
	Quit   key.Binding
	Help   key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload config"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("⎋", "unlock"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
