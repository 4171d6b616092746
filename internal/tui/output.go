package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are written.
type OutputMode int

const (
	// OutputModePlain writes unstyled text.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss-styled text without taking over the terminal.
	OutputModeStyled
	// OutputModeInteractive runs a full-screen bubbletea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "plain"
	}
}

// defaultTerminalWidth is used when stdout is not a terminal.
const defaultTerminalWidth = 80

// DetectOutputMode picks the output mode for the current process. forcePlain
// wins over everything; forceInteractive wins over terminal detection.
// NO_COLOR and TERM=dumb downgrade to plain output.
func DetectOutputMode(forcePlain, noColor, forceInteractive bool) OutputMode {
	return detectOutputMode(forcePlain, noColor, forceInteractive,
		isTerminal(os.Stdout), isTerminal(os.Stdin), os.LookupEnv)
}

func detectOutputMode(
	forcePlain, noColor, forceInteractive bool,
	stdoutTTY, stdinTTY bool,
	lookupEnv func(string) (string, bool),
) OutputMode {
	if forcePlain {
		return OutputModePlain
	}
	if forceInteractive {
		return OutputModeInteractive
	}
	if !stdoutTTY {
		return OutputModePlain
	}
	if _, set := lookupEnv("NO_COLOR"); set || noColor {
		return OutputModePlain
	}
	if termName, _ := lookupEnv("TERM"); termName == "dumb" {
		return OutputModePlain
	}
	if stdinTTY {
		return OutputModeInteractive
	}
	return OutputModeStyled
}

// TerminalWidth returns the width of stdout, or 80 when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
