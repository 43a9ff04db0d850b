// Where: cli/cmd/appbuild/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/poruru/appbuild/cli/internal/command"
	"github.com/poruru/appbuild/cli/internal/domain/buildctx"
	"github.com/poruru/appbuild/cli/internal/infra/config"
	"github.com/poruru/appbuild/cli/internal/infra/dispatch"
	"github.com/poruru/appbuild/cli/internal/infra/interaction"
	"github.com/poruru/appbuild/cli/internal/infra/projectfile"
	"github.com/poruru/appbuild/cli/internal/infra/session"
	"github.com/poruru/appbuild/cli/internal/meta"
)

var (
	getwd              = os.Getwd
	ensureGlobalConfig = config.EnsureGlobalConfig
	loadGlobalConfig   = config.LoadOrDefault
	newSessionProvider = session.NewProvider
)

// buildDependencies constructs all runtime dependencies required by the CLI.
// The global config selects the session backend and the dispatch sink. The
// session backend is built on the first user lookup, so commands that never
// need a user are unaffected by a broken session config.
func buildDependencies(logger *slog.Logger, level *slog.LevelVar) (command.Dependencies, error) {
	if err := ensureGlobalConfig(); err != nil {
		logger.Warn("global config unavailable", "error", err)
	}
	global, err := loadGlobalConfig()
	if err != nil {
		return command.Dependencies{}, err
	}

	provider := session.NewLazy(newSessionProvider, global.Session, config.SessionPath())
	projects := projectfile.Loader{}

	return command.Dependencies{
		Out:       os.Stdout,
		ErrOut:    os.Stderr,
		Getwd:     getwd,
		Prompter:  interaction.HuhPrompter{},
		CanPrompt: interaction.CanPrompt,
		Contexts: buildctx.Builder{
			Session:  provider,
			Projects: projects,
			Accounts: projectfile.AccountResolver{
				Projects:     projects,
				Session:      provider,
				GlobalConfig: loadGlobalConfig,
			},
			Native: projectfile.NativeDetector{},
			Logger: logger,
		},
		NewSink: func(ctx context.Context, projectDir string) (dispatch.Sink, error) {
			return dispatch.NewSink(ctx, global.Dispatch, projectDir)
		},
		RecordProject:  recordProject,
		EnsureProfiles: projectfile.EnsureProfiles,
		Logger:         logger,
		LogLevel:       level,
	}, nil
}

// recordProject pushes dir onto the global recent project list.
func recordProject(dir string) error {
	cfg, err := loadGlobalConfig()
	if err != nil {
		return err
	}
	cfg.TouchRecentProject(dir)
	return config.SaveGlobalConfig(config.GlobalConfigPath(), cfg)
}

// logLevel derives the initial level from the environment; --verbose raises it later.
func logLevel() slog.Level {
	if isTruthy(os.Getenv(meta.EnvDebug)) {
		return slog.LevelDebug
	}
	if isTruthy(os.Getenv(meta.EnvQuiet)) {
		return slog.LevelError
	}
	return slog.LevelWarn
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
