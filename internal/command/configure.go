// Where: cli/internal/command/configure.go
// What: Configure command adapter.
// Why: Create missing build profiles and report native project layout.
package command

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/poruru/appbuild/cli/internal/domain/buildctx"
	"github.com/poruru/appbuild/cli/internal/domain/platform"
	"github.com/poruru/appbuild/cli/internal/infra/projectfile"
	"github.com/poruru/appbuild/cli/internal/infra/ui"
)

// runConfigure executes the 'configure' command.
func runConfigure(ctx context.Context, cli CLI, deps Dependencies, out io.Writer) int {
	flags := cli.Configure
	projectDir, err := resolveProjectDir(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}
	selector, err := resolvePlatform(flags.Platform, deps, flags.NonInteractive)
	if err != nil {
		return exitWithError(out, err)
	}

	cfgCtx, err := deps.Contexts.BuildConfigureContext(ctx, buildctx.ConfigureInput{
		RequestedPlatform: selector,
		ProjectDir:        projectDir,
	})
	if err != nil {
		return exitWithError(out, err)
	}
	platforms := cfgCtx.PlatformsToConfigure()

	console := ui.NewUI(out, resolveEmojiEnabled(out, cli))
	if canPrompt(deps, flags.NonInteractive) {
		ok, err := deps.Prompter.Confirm(fmt.Sprintf(
			"Configure %s for %s?", joinDisplayNames(platforms), cfgCtx.Descriptor.Slug,
		))
		if err != nil {
			return exitWithError(out, err)
		}
		if !ok {
			console.Info("Configuration cancelled.")
			return 1
		}
	}

	ensure := deps.EnsureProfiles
	if ensure == nil {
		ensure = projectfile.EnsureProfiles
	}
	added, err := ensure(projectDir, flags.Profile, platforms)
	if err != nil {
		return exitWithError(out, err)
	}

	rows := []ui.KeyValue{
		{Key: "Project", Value: cfgCtx.Descriptor.Slug},
		{Key: "Build config", Value: projectfile.BuildConfigPath(projectDir)},
	}
	if cfgCtx.ShouldConfigureAndroid {
		rows = append(rows, ui.KeyValue{Key: "Android native project", Value: presence(cfgCtx.HasAndroidNativeProject)})
	}
	if cfgCtx.ShouldConfigureIOS {
		rows = append(rows, ui.KeyValue{Key: "iOS native project", Value: presence(cfgCtx.HasIOSNativeProject)})
	}
	created := "none"
	if len(added) > 0 {
		created = fmt.Sprintf("%s (%s)", flags.Profile, joinDisplayNames(added))
	}
	rows = append(rows, ui.KeyValue{Key: "Profiles created", Value: created})
	console.Block("📱", "Configure project", rows)
	console.Success("Project configured")
	return 0
}

func presence(found bool) string {
	if found {
		return "found"
	}
	return "not found (managed workflow)"
}

func joinDisplayNames(platforms []platform.Platform) string {
	names := make([]string, 0, len(platforms))
	for _, p := range platforms {
		names = append(names, p.DisplayName())
	}
	return strings.Join(names, ", ")
}
