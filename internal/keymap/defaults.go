package keymap

// DefaultModifier is the modifier shown for default table entries.
const DefaultModifier = "SUPER"

type defaultEntry struct {
	title string
	desc  string
}

// defaultTable is the compile-time fallback: symbol -> title/description.
// Symbols in the fixed layout without an entry here render blank until
// the parsed config fills them in.
var defaultTable = map[string]defaultEntry{
	"Q": {"Workspace 1", "Switch to workspace 1"},
	"W": {"Workspace 2", "Switch to workspace 2"},
	"E": {"Workspace 3", "Switch to workspace 3"},
	"R": {"Reload", "Reload Hyprland configuration"},
	"T": {"Workspace 4", "Switch to workspace 4"},
	"Y": {"Workspace 5", "Switch to workspace 5"},
	"U": {"Focus Last", "Focus the previously active window"},
	"I": {"Split Ratio", "Adjust the split ratio of windows"},
	"O": {"Editor", "Launch code editor (VS Code)"},
	"P": {"Pseudo", "Toggle pseudo-tiling mode"},
	"A": {"Browser", "Launch web browser (Firefox)"},
	"S": {"Files", "Open file manager"},
	"D": {"Discord", "Launch Discord"},
	"F": {"Fullscreen", "Toggle fullscreen mode"},
	"G": {"Spotify", "Launch music player"},
	"H": {"Help", "Show this keybind helper"},
	"J": {"Orientation", "Toggle split orientation"},
	"K": {"Notepad", "Launch text editor"},
	"L": {"Lock Screen", "Lock the session"},
	"Z": {"Terminal", "Launch terminal emulator"},
	"X": {"Kill", "Close the active window"},
	"C": {"Launcher", "Open application launcher (Rofi)"},
	"V": {"Float", "Toggle floating mode"},
	"B": {"Waybar", "Toggle status bar visibility"},
	"N": {"Notifications", "Open notification center"},
	"M": {"Mute", "Toggle system audio mute"},
}
