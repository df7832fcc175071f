package tui

// Key bindings.
const (
	keyQuit   = "q"
	keyCtrlC  = "ctrl+c"
	keyEnter  = "enter"
	keyEsc    = "esc"
	keySlash  = "/"
	keyLeft   = "left"
	keyRight  = "right"
	keyH      = "h"
	keyL      = "l"
	keyHome   = "home"
	keyEnd    = "end"
	keyG      = "g"
	keyShiftG = "G"
)

// helpText is shown under the table.
const helpText = "[/] Filter  [←→/hl] Page  [1-9] Jump  [↑↓/jk] Select  [Enter] Details  [q] Quit"
