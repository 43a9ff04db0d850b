// Where: cli/internal/command/build.go
// What: Build command adapter.
// Why: Translate flags into a build workflow run and render what was dispatched.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/poruru/appbuild/cli/internal/domain/buildctx"
	"github.com/poruru/appbuild/cli/internal/domain/profile"
	"github.com/poruru/appbuild/cli/internal/domain/tracking"
	"github.com/poruru/appbuild/cli/internal/infra/config"
	"github.com/poruru/appbuild/cli/internal/infra/dispatch"
	"github.com/poruru/appbuild/cli/internal/infra/projectfile"
	"github.com/poruru/appbuild/cli/internal/infra/ui"
	"github.com/poruru/appbuild/cli/internal/meta"
	"github.com/poruru/appbuild/cli/internal/usecase/build"
)

// runBuild executes the 'build' command.
func runBuild(ctx context.Context, cli CLI, deps Dependencies, out io.Writer) int {
	flags := cli.Build
	projectDir, err := resolveProjectDir(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}
	selector, err := resolvePlatform(flags.Platform, deps, flags.NonInteractive)
	if err != nil {
		return exitWithError(out, err)
	}

	sink, err := newSink(ctx, deps, projectDir)
	if err != nil {
		return exitWithError(out, err)
	}
	workflow := build.NewWorkflow(deps.Contexts, sink)
	if deps.Now != nil {
		workflow.Now = deps.Now
	}
	if deps.EnsureProfiles != nil {
		workflow.EnsureProfiles = deps.EnsureProfiles
	}
	workflow.Logger = deps.Logger

	wait := flags.Wait
	result, err := workflow.Run(ctx, buildctx.CommandInput{
		RequestedPlatform:        selector,
		Profile:                  flags.Profile,
		ProjectDir:               projectDir,
		ProjectID:                flags.ProjectID,
		TrackingContext:          tracking.New("build"),
		NonInteractive:           flags.NonInteractive,
		SkipCredentialsCheck:     flags.SkipCredentialsCheck,
		SkipProjectConfiguration: flags.SkipProjectConfiguration,
		WaitForBuildEnd:          &wait,
	})
	if err != nil {
		return exitWithBuildError(out, err, projectDir, flags.Profile)
	}

	emoji := resolveEmojiEnabled(out, cli)
	console := ui.NewUI(out, emoji)
	for _, p := range result.Configured {
		console.Info(fmt.Sprintf("Created %q %s profile in %s", flags.Profile, p.DisplayName(), meta.BuildConfigFile))
	}
	if err := ui.RenderSummary(out, buildSummary(result, emoji)); err != nil {
		return exitWithError(out, err)
	}

	if deps.RecordProject != nil {
		if err := deps.RecordProject(projectDir); err != nil {
			console.Warn(fmt.Sprintf("Warning: failed to record project: %v", err))
		}
	}
	return 0
}

func newSink(ctx context.Context, deps Dependencies, projectDir string) (dispatch.Sink, error) {
	if deps.NewSink == nil {
		return dispatch.DirSink{Dir: dispatch.DefaultDir(projectDir)}, nil
	}
	return deps.NewSink(ctx, projectDir)
}

func exitWithBuildError(out io.Writer, err error, projectDir, profileName string) int {
	cmd := cliName()
	var missing *buildctx.MissingProfileError
	switch {
	case errors.As(err, &missing):
		var available []string
		if cfg, loadErr := projectfile.LoadBuildConfig(projectDir); loadErr == nil {
			available = cfg.ProfileNames(missing.Platform)
		}
		return exitWithSuggestionAndAvailable(out, err.Error(), []string{
			fmt.Sprintf("%s configure -p %s --profile %s", cmd, missing.Platform, profileName),
			fmt.Sprintf("%s build --profile <name>", cmd),
		}, available)
	case errors.Is(err, projectfile.ErrBuildConfigNotFound):
		return exitWithSuggestion(out, err.Error(), []string{fmt.Sprintf("%s configure", cmd)})
	case errors.Is(err, buildctx.ErrSession):
		return exitWithSuggestion(out, err.Error(), []string{
			fmt.Sprintf("export %s=<token>", meta.EnvToken),
			fmt.Sprintf("or write a session to %s", config.SessionPath()),
		})
	}
	return exitWithError(out, err)
}

func buildSummary(result build.Result, emoji bool) ui.Summary {
	cmdCtx := result.CommandContext
	summary := ui.Summary{
		Account:    cmdCtx.AccountName(),
		Project:    cmdCtx.ProjectName(),
		Profile:    cmdCtx.Profile(),
		TrackingID: cmdCtx.TrackingContext().TrackingID(),
		Wait:       cmdCtx.WaitForBuildEnd(),
		Emoji:      emoji,
	}
	if user := cmdCtx.User(); user != nil {
		summary.User = user.Username
	}
	for _, b := range result.Builds {
		summary.Builds = append(summary.Builds, ui.SummaryBuild{
			Platform:  b.Context.Platform().DisplayName(),
			RequestID: b.Request.ID,
			Location:  b.Location,
			Details:   profileDetails(b.Context.BuildProfile()),
		})
	}
	return summary
}

func profileDetails(bp profile.BuildProfile) map[string]any {
	details := map[string]any{}
	put := func(key string, value string) {
		if strings.TrimSpace(value) != "" {
			details[key] = value
		}
	}
	switch typed := bp.(type) {
	case *profile.Android:
		put("workflow", string(typed.Workflow))
		put("build type", typed.BuildType)
		put("distribution", string(typed.Distribution))
		put("credentials", string(typed.CredentialsSource))
	case *profile.IOS:
		put("workflow", string(typed.Workflow))
		put("configuration", typed.BuildConfiguration)
		put("scheme", typed.Scheme)
		put("distribution", string(typed.Distribution))
		if typed.Simulator {
			details["simulator"] = "yes"
		}
	}
	return details
}
