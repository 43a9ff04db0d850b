// Where: cli/internal/command/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface usage and emoji detection.
package command

import (
	"io"
	"os"
	"strings"

	"github.com/poruru/appbuild/cli/internal/infra/interaction"
	"github.com/poruru/appbuild/cli/internal/infra/ui"
)

// legacyUI writes plain lines without emoji prefixes.
func legacyUI(out io.Writer) ui.UserInterface {
	return ui.NewUI(out, false)
}

func resolveEmojiEnabled(out io.Writer, cli CLI) bool {
	if cli.NoEmoji {
		return false
	}
	if strings.TrimSpace(os.Getenv("NO_EMOJI")) != "" {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if term == "dumb" {
		return false
	}
	if file, ok := out.(*os.File); ok {
		return interaction.IsTerminal(file)
	}
	return false
}
