// Where: cli/internal/infra/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Centralize user interaction to keep command handlers focused on orchestration.
package interaction

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrNonInteractive is returned when input is needed but prompting is disabled.
var ErrNonInteractive = errors.New("input required but running in non-interactive mode")

// SelectOption represents a single option in a selection menu.
type SelectOption struct {
	Label string // Display text
	Value string // Return value
}

// Prompter defines the interface for interactive user input and selection.
type Prompter interface {
	SelectValue(title string, options []SelectOption) (string, error)
	Confirm(title string) (bool, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// CanPrompt reports whether both stdin and stdout are attached to a terminal.
func CanPrompt() bool {
	return IsTerminal(os.Stdin) && IsTerminal(os.Stdout)
}
