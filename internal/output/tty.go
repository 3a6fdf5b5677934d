package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY returns true if stdout is connected to a terminal. When false,
// output is being piped or redirected.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsStdinTTY returns true if stdin is connected to a terminal.
func IsStdinTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
