// Where: cli/cmd/appbuild/main.go
// What: CLI entrypoint.
// Why: Execute appbuild commands with configured dependencies.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/poruru/appbuild/cli/internal/command"
	"github.com/poruru/appbuild/cli/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	level := new(slog.LevelVar)
	level.Set(logLevel())
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	slog.Debug("build", "version", version.GetVersion())
	slog.Debug("appbuild is running", "pid", os.Getpid(), "args", os.Args)

	deps, err := buildDependencies(logger, level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	code := command.RunContext(ctx, os.Args[1:], deps)
	stop()
	os.Exit(code)
}
