// Where: cli/internal/command/whoami.go
// What: Whoami command adapter.
// Why: Show which session the build commands will act as.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/poruru/appbuild/cli/internal/domain/buildctx"
	"github.com/poruru/appbuild/cli/internal/infra/ui"
)

var errSessionNotConfigured = errors.New("session provider is not configured")

func runWhoami(ctx context.Context, cli CLI, deps Dependencies, out io.Writer) int {
	provider := deps.Contexts.Session
	if provider == nil {
		return exitWithError(out, errSessionNotConfigured)
	}
	user, err := provider.CurrentUser(ctx)
	if err != nil {
		return exitWithBuildError(out, fmt.Errorf("%w: %w", buildctx.ErrSession, err), "", "")
	}
	if user == nil {
		return exitWithError(out, errors.New("no user in session"))
	}

	rows := []ui.KeyValue{
		{Key: "Username", Value: user.Username},
	}
	if user.ID != "" {
		rows = append(rows, ui.KeyValue{Key: "ID", Value: user.ID})
	}
	if user.PrimaryAccount != "" {
		rows = append(rows, ui.KeyValue{Key: "Primary account", Value: user.PrimaryAccount})
	}
	ui.NewUI(out, resolveEmojiEnabled(out, cli)).Block("👤", "Logged in", rows)
	return 0
}
