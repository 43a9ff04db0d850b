// Where: cli/internal/infra/ui/ui.go
// What: UserInterface adapter over Console.
// Why: Give commands and usecases a small output surface that tests can capture.
package ui

import "io"

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers used by commands/usecases.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Error(msg string)
	Block(emoji, title string, rows []KeyValue)
}

// NewUI returns a UserInterface writing to out.
func NewUI(out io.Writer, emoji bool) UserInterface {
	return consoleUI{console: NewWithEmoji(out, emoji)}
}

type consoleUI struct {
	console *Console
}

func (u consoleUI) Info(msg string)    { u.console.Info(msg) }
func (u consoleUI) Warn(msg string)    { u.console.Warn(msg) }
func (u consoleUI) Success(msg string) { u.console.Success(msg) }
func (u consoleUI) Error(msg string)   { u.console.Error(msg) }

func (u consoleUI) Block(emoji, title string, rows []KeyValue) {
	u.console.BlockStart(emoji, title)
	for _, kv := range rows {
		u.console.Item(kv.Key, kv.Value)
	}
	u.console.BlockEnd()
}
