package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how a table is presented.
type OutputMode int

const (
	// OutputModePlain renders uncoloured, fixed-width text.
	OutputModePlain OutputMode = iota
	// OutputModeStyled renders a Lip Gloss table once and exits.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea table.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// ModeOptions are the user choices that influence mode detection.
type ModeOptions struct {
	// Plain forces plain text output.
	Plain bool
	// NoColor disables styling.
	NoColor bool
	// NoInteractive prints once instead of running the TUI.
	NoInteractive bool
}

// DetectOutputMode picks the output mode. Non-terminals always get plain output.
func DetectOutputMode(isTerminal bool, opts ModeOptions) OutputMode {
	switch {
	case opts.Plain, !isTerminal:
		return OutputModePlain
	case opts.NoInteractive && opts.NoColor:
		return OutputModePlain
	case opts.NoInteractive:
		return OutputModeStyled
	default:
		return OutputModeInteractive
	}
}

// defaultTerminalWidth is used when the terminal size cannot be read.
const defaultTerminalWidth = 100

// StdoutIsTerminal reports whether stdout is attached to a terminal.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the width of stdout, or a default when it is not a terminal.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultTerminalWidth
	}
	return w
}
