package keymap

// Rows is the fixed logical keyboard layout. Output ordering of the key
// map and the rendered grid both follow it: numeric row, QWERTY rows,
// function-key row, arrow keys.
var Rows = [][]string{
	{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"},
	{"Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P"},
	{"A", "S", "D", "F", "G", "H", "J", "K", "L"},
	{"Z", "X", "C", "V", "B", "N", "M"},
	{"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12"},
	{"Left", "Down", "Up", "Right"},
}

// Symbols returns the layout's symbols flattened in display order.
func Symbols() []string {
	var syms []string
	for _, row := range Rows {
		syms = append(syms, row...)
	}

	return syms
}
