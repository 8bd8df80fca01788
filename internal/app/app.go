package app

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chatter/hyprhelp/internal/config"
	"github.com/chatter/hyprhelp/internal/hypr"
	"github.com/chatter/hyprhelp/internal/keymap"
	"github.com/chatter/hyprhelp/internal/logger"
	"github.com/chatter/hyprhelp/internal/tiles"
	"github.com/chatter/hyprhelp/internal/ui"
	"github.com/chatter/hyprhelp/internal/ui/help"
)

// headerHeight is the fixed number of lines above the grid; Hit testing
// depends on it staying constant.
const headerHeight = 6

// Model is the main application model
type Model struct {
	// Core state
	version    string
	configPath string // hyprland.conf being displayed
	keys       KeyMap
	log        *logger.Logger

	// Keybinding data
	keyMap keymap.KeyMap

	// Interaction state
	sel       *tiles.Selection
	grid      *Grid
	lastHover string

	// Compositor integration
	watcher *hypr.Watcher
	monitor string

	// Presentation
	styles       ui.Styles
	statusBar    *help.StatusBar
	floatingHelp *help.FloatingHelp
	showHelp     bool

	// Window size
	width  int
	height int

	// Error state
	lastError string
}

// New creates the overlay model. The key map starts from the built-in
// defaults; Init schedules the first config read.
func New(cfg config.Config, configPath, version string, log *logger.Logger) Model {
	km := keymap.Defaults()

	m := Model{
		version:      version,
		configPath:   configPath,
		keys:         DefaultKeyMap(),
		log:          log,
		keyMap:       km,
		sel:          tiles.New(km.Symbols()),
		grid:         NewGrid(km),
		styles:       ui.NewStyles(ui.NewTheme(cfg.Theme)),
		statusBar:    help.NewStatusBar("hyprhelp " + version),
		floatingHelp: help.NewFloatingHelp(),
	}

	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadKeymap(),
		m.queryMonitor(),
		m.startWatcher(),
	)
}

// loadKeymap reads hyprland.conf and rebuilds the key map from it.
func (m Model) loadKeymap() tea.Cmd {
	path := m.configPath
	return func() tea.Msg {
		text, err := hypr.ReadConfig(path)
		if err != nil {
			return keymapLoadedMsg{err: err}
		}
		return keymapLoadedMsg{keyMap: keymap.FromConfig(text)}
	}
}

// queryMonitor asks the compositor which monitor is focused.
func (m Model) queryMonitor() tea.Cmd {
	return func() tea.Msg {
		name, err := hypr.FocusedMonitor()
		return monitorMsg{name: name, err: err}
	}
}

// startWatcher starts the config file watcher
func (m Model) startWatcher() tea.Cmd {
	path := m.configPath
	log := m.log
	return func() tea.Msg {
		watcher, err := hypr.NewWatcher(path, log)
		if err != nil {
			// Don't fail if watcher can't start, just disable auto-reload
			return watcherStartedMsg{watcher: nil, err: err}
		}
		return watcherStartedMsg{watcher: watcher, err: nil}
	}
}

// waitForChange waits for config file changes
func (m Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}

	return func() tea.Msg {
		<-m.watcher.Events()               // Block until valid event
		time.Sleep(100 * time.Millisecond) // Debounce
		return hypr.WatcherMsg{}
	}
}

// Message types
type keymapLoadedMsg struct {
	keyMap keymap.KeyMap
	err    error
}

type monitorMsg struct {
	name string
	err  error
}

type watcherStartedMsg struct {
	watcher *hypr.Watcher
	err     error
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// When help modal is open, only handle ? and esc
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			// Absorb all other keys
			return m, nil
		}

		if newModel, cmd := dispatchKey(&m, msg, m.globalBindings()); newModel != nil {
			m = *newModel
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case keymapLoadedMsg:
		m.applyKeymap(msg)

	case monitorMsg:
		if msg.err != nil {
			m.log.Warn("focused monitor query failed", "error", msg.err)
			break
		}
		m.monitor = msg.name

	case watcherStartedMsg:
		m.watcher = msg.watcher
		if msg.err != nil {
			m.log.Warn("config watcher unavailable", "error", msg.err)
		}
		if msg.watcher != nil {
			cmds = append(cmds, m.waitForChange())
		}

	case hypr.WatcherMsg:
		// Reload on config changes and keep listening
		m.log.Info("config changed, reloading", "path", m.configPath)
		cmds = append(cmds, m.loadKeymap(), m.waitForChange())
	}

	return m, tea.Batch(cmds...)
}

// applyKeymap installs a reload result. A reload is all or nothing: on
// success the key map and interaction state are rebuilt together, on a
// failed read both stay exactly as they were.
func (m *Model) applyKeymap(msg keymapLoadedMsg) {
	if msg.err != nil {
		m.log.Warn("config read failed, keeping previous keybinds", "error", msg.err)
		m.lastError = msg.err.Error()
		return
	}

	m.lastError = ""
	m.keyMap = msg.keyMap
	m.sel = tiles.New(m.keyMap.Symbols())
	m.grid = NewGrid(m.keyMap)
	m.lastHover = ""
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionMotion:
		sym, ok := m.grid.Hit(msg.X, msg.Y)
		if ok && sym != m.lastHover {
			if m.lastHover != "" {
				m.sel.PointerLeave(m.lastHover)
			}
			m.sel.PointerEnter(sym)
			m.lastHover = sym
		} else if !ok && m.lastHover != "" {
			m.sel.PointerLeave(m.lastHover)
			m.lastHover = ""
		}

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if sym, ok := m.grid.Hit(msg.X, msg.Y); ok {
			m.sel.Click(sym)
		} else {
			m.sel.ClickBackground()
		}
	}
}

// Action methods for keybindings

func (m *Model) actionQuit() (Model, tea.Cmd) {
	if m.watcher != nil {
		m.watcher.Close()
	}
	return *m, tea.Quit
}

func (m *Model) actionReload() (Model, tea.Cmd) {
	return *m, m.loadKeymap()
}

func (m *Model) actionBack() (Model, tea.Cmd) {
	// Esc clears a lock first; with nothing locked it dismisses the overlay.
	if _, locked := m.sel.Locked(); locked {
		m.sel.ClickBackground()
		return *m, nil
	}
	return m.actionQuit()
}

func (m *Model) actionToggleHelp() (Model, tea.Cmd) {
	m.showHelp = !m.showHelp
	return *m, nil
}

// globalBindings returns the overlay keybindings with their actions.
func (m *Model) globalBindings() []ActionBinding {
	return []ActionBinding{
		{
			HelpBinding: help.HelpBinding{
				Binding:  m.keys.Reload,
				Category: help.CategoryActions,
				Order:    10,
			},
			Action: (*Model).actionReload,
		},
		{
			HelpBinding: help.HelpBinding{
				Binding:  m.keys.Back,
				Category: help.CategoryInteraction,
				Order:    20,
			},
			Action: (*Model).actionBack,
		},
		// Quit - highest order (always visible)
		{
			HelpBinding: help.HelpBinding{
				Binding:  m.keys.Quit,
				Category: help.CategoryActions,
				Order:    100,
			},
			Action: (*Model).actionQuit,
		},
		// Help toggle - pinned, always visible
		{
			HelpBinding: help.HelpBinding{
				Binding:  m.keys.Help,
				Category: help.CategoryActions,
				Order:    99,
				Pinned:   true,
			},
			Action: (*Model).actionToggleHelp,
		},
	}
}

// View renders the overlay
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()

	offsetX := (m.width - m.grid.Width()) / 2
	if offsetX < 0 {
		offsetX = 0
	}
	m.grid.SetOffset(offsetX, headerHeight)

	gridBlock := m.grid.Render(m.sel, m.styles)
	if offsetX > 0 {
		gridBlock = padLines(gridBlock, strings.Repeat(" ", offsetX))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, gridBlock)

	// Pad content so the status bar sits on the last line
	contentHeight := lipgloss.Height(content)
	if gap := m.height - 1 - contentHeight; gap > 0 {
		content += strings.Repeat("\n", gap)
	}

	base := lipgloss.JoinVertical(lipgloss.Left, content, m.renderStatusBar())

	if m.showHelp {
		return m.renderWithOverlay(base)
	}

	return base
}

// renderHeader produces the fixed-height block above the grid: the app
// title plus either the active keybind's description or a usage hint.
func (m Model) renderHeader() string {
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
	}

	title := center(m.styles.AppTitle.Render("Hyprland Keybinds"))

	var infoTitle, infoDesc string
	if sym, ok := m.sel.Active(); ok {
		if kb, found := m.keyMap.Lookup(sym); found {
			label := comboLabel(kb)
			if _, locked := m.sel.Locked(); locked {
				label = "LOCKED: " + label
			}
			if kb.Title != "" {
				label += ": " + kb.Title
			}
			infoTitle = center(m.styles.InfoTitle.Render(label))
			if kb.Desc != "" {
				infoDesc = center(m.styles.InfoDesc.Render(kb.Desc))
			}
		}
	}
	if infoTitle == "" {
		infoTitle = center(m.styles.Hint.Render("Hover a key to preview | Click to lock"))
	}

	// Exactly headerHeight lines
	lines := []string{"", title, "", infoTitle, infoDesc, ""}
	return strings.Join(lines, "\n")
}

// comboLabel formats a keybind as "SUPER + SHIFT + Q". Entries without a
// modifier show the bare symbol.
func comboLabel(kb keymap.Keybind) string {
	parts := strings.Fields(kb.Mod)
	parts = append(parts, kb.Sym)
	return strings.Join(parts, " + ")
}

func (m Model) renderWithOverlay(base string) string {
	// Calculate modal size (centered, ~80% of screen)
	modalWidth := m.width * 80 / 100
	modalHeight := m.height * 70 / 100

	if modalWidth < 40 {
		modalWidth = min(40, m.width-4)
	}
	if modalHeight < 10 {
		modalHeight = min(10, m.height-4)
	}

	m.floatingHelp.SetSize(modalWidth, modalHeight)
	m.floatingHelp.SetBindings(ToHelpBindings(m.globalBindings()))
	modal := m.floatingHelp.View()

	// Center the modal on the base content
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("0")),
	)
}

func (m Model) renderStatusBar() string {
	m.statusBar.SetWidth(m.width)
	m.statusBar.SetMonitor(m.monitor)
	m.statusBar.SetBindings(ToHelpBindings(m.globalBindings()))
	return m.styles.StatusBar.Render(m.statusBar.View())
}
