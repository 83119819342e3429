package inject

import (
	"os"

	"golang.org/x/term"
)

// IsTTY checks if the given file descriptor is a terminal.
func IsTTY(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// IsOutputTerminal checks if stdout is a TTY, indicating output is being
// displayed to a user rather than piped into the host pipeline. Used by the
// show command to decide whether to add interactive decoration.
func IsOutputTerminal() bool {
	return IsTTY(os.Stdout.Fd())
}
