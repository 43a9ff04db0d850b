// Where: cli/internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Keep failure lines and follow-up hints consistent across commands.
package command

import (
	"fmt"
	"io"
)

// exitWithError prints an error message to the output writer and returns
// exit code 1 for CLI error handling.
func exitWithError(out io.Writer, err error) int {
	legacyUI(out).Info(fmt.Sprintf("✗ %v", err))
	return 1
}

// exitWithSuggestion prints a message followed by next steps.
func exitWithSuggestion(out io.Writer, message string, suggestions []string) int {
	ui := legacyUI(out)
	ui.Info(fmt.Sprintf("✗ %s", message))
	if len(suggestions) > 0 {
		ui.Info("Next steps:")
		for _, s := range suggestions {
			ui.Info(fmt.Sprintf("  - %s", s))
		}
	}
	return 1
}

// exitWithSuggestionAndAvailable is exitWithSuggestion plus a list of valid choices.
func exitWithSuggestionAndAvailable(out io.Writer, message string, suggestions, available []string) int {
	exitWithSuggestion(out, message, suggestions)
	if len(available) > 0 {
		ui := legacyUI(out)
		ui.Info("Available:")
		for _, a := range available {
			ui.Info(fmt.Sprintf("  - %s", a))
		}
	}
	return 1
}
