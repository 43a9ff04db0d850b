// Where: cli/internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/poruru/appbuild/cli/internal/domain/buildctx"
	"github.com/poruru/appbuild/cli/internal/domain/platform"
	"github.com/poruru/appbuild/cli/internal/infra/dispatch"
	"github.com/poruru/appbuild/cli/internal/infra/interaction"
	"github.com/poruru/appbuild/cli/internal/meta"
	"github.com/poruru/appbuild/cli/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// Commands only reach the session backend, project files, and dispatch sink
// through these fields.
type Dependencies struct {
	Out       io.Writer
	ErrOut    io.Writer
	Getwd     func() (string, error)
	Prompter  interaction.Prompter
	CanPrompt func() bool
	Contexts  buildctx.Builder
	NewSink   func(ctx context.Context, projectDir string) (dispatch.Sink, error)
	// RecordProject remembers a project directory after a successful build.
	RecordProject  func(dir string) error
	EnsureProfiles func(dir, name string, platforms []platform.Platform) ([]platform.Platform, error)
	Now            func() time.Time
	Logger         *slog.Logger
	LogLevel       *slog.LevelVar
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	ProjectDir string       `short:"C" name:"project-dir" help:"Project directory (default: current directory)"`
	EnvFile    string       `name:"env-file" help:"Path to .env file"`
	Verbose    bool         `short:"v" help:"Verbose output"`
	NoEmoji    bool         `name:"no-emoji" help:"Disable emoji output"`
	Build      BuildCmd     `cmd:"" help:"Dispatch native builds for the project"`
	Configure  ConfigureCmd `cmd:"" help:"Create build profiles for the project"`
	Whoami     WhoamiCmd    `cmd:"" help:"Show the logged-in user"`
	Version    VersionCmd   `cmd:"" help:"Show version information"`
}

type (
	// BuildCmd defines the build command flags.
	BuildCmd struct {
		Platform                 string `short:"p" help:"Platform to build (android/ios/all)"`
		Profile                  string `default:"${default_profile}" help:"Build profile name from build.json"`
		NonInteractive           bool   `name:"non-interactive" help:"Never prompt for input"`
		SkipCredentialsCheck     bool   `name:"skip-credentials-check" help:"Do not validate signing credentials"`
		SkipProjectConfiguration bool   `name:"skip-project-configuration" help:"Do not create missing build profiles"`
		Wait                     bool   `negatable:"" default:"true" help:"Wait for the build to finish"`
		ProjectID                string `name:"project-id" help:"Remote project id"`
	}

	// ConfigureCmd defines the configure command flags.
	ConfigureCmd struct {
		Platform       string `short:"p" help:"Platform to configure (android/ios/all)"`
		Profile        string `default:"${default_profile}" help:"Build profile name to create"`
		NonInteractive bool   `name:"non-interactive" help:"Never prompt for input"`
	}

	WhoamiCmd struct{}

	VersionCmd struct{}
)

// Run parses args and dispatches to the requested command using a
// background context. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	return RunContext(context.Background(), args, deps)
}

// RunContext is Run with a caller-provided context for cancellation.
func RunContext(ctx context.Context, args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	ui := legacyUI(out)

	if len(args) == 0 {
		return runNoArgs(out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(cliName()),
		kong.Description("Resolve and dispatch native app builds."),
		kong.Writers(out, deps.ErrOut),
		kong.Vars{"default_profile": meta.DefaultProfile},
	)
	if err != nil {
		return exitWithError(out, err)
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(args, err, deps, out)
	}

	// Load environment file if provided or if .env exists in the project directory
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			ui.Warn(fmt.Sprintf("Warning: failed to load env file %s: %v", cli.EnvFile, err))
		}
	} else if dir, err := resolveProjectDir(cli, deps); err == nil {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				ui.Warn(fmt.Sprintf("Warning: failed to load .env: %v", err))
			}
		}
	}

	if cli.Verbose && deps.LogLevel != nil {
		deps.LogLevel.Set(slog.LevelDebug)
	}

	if exitCode, handled := dispatchCommand(ctx, kctx.Command(), cli, deps, out); handled {
		return exitCode
	}

	ui.Warn("unknown command")
	return 1
}

type commandHandler func(context.Context, CLI, Dependencies, io.Writer) int

func dispatchCommand(ctx context.Context, command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	handlers := map[string]commandHandler{
		"build":     runBuild,
		"configure": runConfigure,
		"whoami":    runWhoami,
		"version":   func(_ context.Context, cli CLI, _ Dependencies, out io.Writer) int { return runVersion(cli, out) },
	}

	if handler, ok := handlers[command]; ok {
		return handler(ctx, cli, deps, out), true
	}
	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, out io.Writer) int {
	legacyUI(out).Info(version.GetVersion())
	return 0
}

// resolveProjectDir returns the absolute project directory from --project-dir
// or the working directory.
func resolveProjectDir(cli CLI, deps Dependencies) (string, error) {
	dir := strings.TrimSpace(cli.ProjectDir)
	if dir == "" {
		getwd := deps.Getwd
		if getwd == nil {
			getwd = os.Getwd
		}
		wd, err := getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve project directory: %w", err)
	}
	return abs, nil
}

// runNoArgs handles the case when the CLI is invoked without arguments.
func runNoArgs(out io.Writer) int {
	ui := legacyUI(out)
	cmd := cliName()
	ui.Info("Usage:")
	ui.Info(fmt.Sprintf("  %s build -p <android|ios|all> [--profile <name>] [flags]", cmd))
	ui.Info(fmt.Sprintf("  %s configure -p <android|ios|all>", cmd))
	ui.Info("")
	ui.Info(fmt.Sprintf("Try: %s build --help", cmd))
	return 0
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(_ []string, err error, _ Dependencies, out io.Writer) int {
	msg := err.Error()
	if strings.Contains(msg, "expected string value") {
		ui := legacyUI(out)
		cmd := cliName()
		switch {
		case strings.Contains(msg, "--platform"):
			ui.Warn("`-p/--platform` expects a value. Use android/ios/all or omit the flag for interactive input.")
			ui.Info(fmt.Sprintf("Example: %s build -p android", cmd))
			ui.Info(fmt.Sprintf("Interactive: %s build", cmd))
			return 1
		case strings.Contains(msg, "--profile"):
			ui.Warn("`--profile` expects a value. Provide a profile name from build.json.")
			ui.Info(fmt.Sprintf("Example: %s build --profile preview", cmd))
			return 1
		case strings.Contains(msg, "--project-dir"):
			ui.Warn("`-C/--project-dir` expects a value. Provide a directory path.")
			ui.Info(fmt.Sprintf("Example: %s -C ./apps/mobile build", cmd))
			return 1
		case strings.Contains(msg, "--env-file"):
			ui.Warn("`--env-file` expects a value. Provide a file path.")
			ui.Info(fmt.Sprintf("Example: %s --env-file .env.prod build", cmd))
			return 1
		}
	}
	return exitWithError(out, err)
}
