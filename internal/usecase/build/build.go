// Where: cli/internal/usecase/build/build.go
// What: Build workflow orchestration.
// Why: Resolve contexts for each requested platform and hand them off, without CLI concerns.
package build

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/poruru/appbuild/cli/internal/domain/buildctx"
	"github.com/poruru/appbuild/cli/internal/domain/platform"
	"github.com/poruru/appbuild/cli/internal/infra/dispatch"
	"github.com/poruru/appbuild/cli/internal/infra/projectfile"
)

var (
	errContextBuilderNotConfigured = errors.New("context builder is not configured")
	errSinkNotConfigured           = errors.New("dispatch sink is not configured")
)

// ContextBuilder composes the command-level context.
type ContextBuilder interface {
	BuildCommandContext(ctx context.Context, in buildctx.CommandInput) (*buildctx.CommandContext, error)
}

// Workflow runs the build flow with injected collaborators.
type Workflow struct {
	Contexts        ContextBuilder
	LoadBuildConfig func(dir string) (projectfile.BuildConfig, error)
	EnsureProfiles  func(dir, name string, platforms []platform.Platform) ([]platform.Platform, error)
	Sink            dispatch.Sink
	Now             func() time.Time
	Logger          *slog.Logger
}

// Result reports every dispatched platform build.
type Result struct {
	CommandContext *buildctx.CommandContext
	Configured     []platform.Platform
	Builds         []Dispatched
}

// Dispatched pairs a build context with the request written for it.
type Dispatched struct {
	Context  *buildctx.BuildContext
	Request  dispatch.Request
	Location string
}

// NewWorkflow returns a Workflow wired to the on-disk build config.
func NewWorkflow(contexts ContextBuilder, sink dispatch.Sink) Workflow {
	return Workflow{
		Contexts:        contexts,
		LoadBuildConfig: projectfile.LoadBuildConfig,
		EnsureProfiles:  projectfile.EnsureProfiles,
		Sink:            sink,
		Now:             time.Now,
	}
}

// Run resolves the command context, derives one build context per requested
// platform, and dispatches a request for each. Nothing is dispatched unless
// every platform has a profile.
func (w Workflow) Run(ctx context.Context, in buildctx.CommandInput) (Result, error) {
	if w.Contexts == nil {
		return Result{}, errContextBuilderNotConfigured
	}
	if w.Sink == nil {
		return Result{}, errSinkNotConfigured
	}
	log := w.logger()

	cmdCtx, err := w.Contexts.BuildCommandContext(ctx, in)
	if err != nil {
		return Result{}, err
	}
	platforms := cmdCtx.RequestedPlatform().Platforms()

	cfg, configured, err := w.loadConfig(cmdCtx, platforms)
	if err != nil {
		return Result{}, err
	}

	buildCtxs, err := buildctx.NewBuildContexts(platforms, cfg.ProfileTable(cmdCtx.Profile()), cmdCtx)
	if err != nil {
		return Result{}, err
	}

	result := Result{CommandContext: cmdCtx, Configured: configured}
	for _, buildCtx := range buildCtxs {
		req := dispatch.NewRequest(buildCtx, w.now())
		location, err := w.Sink.Dispatch(ctx, req)
		if err != nil {
			return Result{}, fmt.Errorf("dispatch %s build: %w", buildCtx.Platform().DisplayName(), err)
		}
		log.Debug("dispatched build request",
			"platform", buildCtx.Platform(),
			"request_id", req.ID,
			"location", location,
		)
		result.Builds = append(result.Builds, Dispatched{Context: buildCtx, Request: req, Location: location})
	}
	return result, nil
}

// loadConfig reads build.json. When it is missing and project configuration
// is not skipped, default profiles are written first.
func (w Workflow) loadConfig(
	cmdCtx *buildctx.CommandContext,
	platforms []platform.Platform,
) (projectfile.BuildConfig, []platform.Platform, error) {
	load := w.LoadBuildConfig
	if load == nil {
		load = projectfile.LoadBuildConfig
	}
	cfg, err := load(cmdCtx.ProjectDir())
	if err == nil {
		return cfg, nil, nil
	}
	if !errors.Is(err, projectfile.ErrBuildConfigNotFound) {
		return projectfile.BuildConfig{}, nil, err
	}
	if cmdCtx.SkipProjectConfiguration() || w.EnsureProfiles == nil {
		return projectfile.BuildConfig{}, nil, fmt.Errorf("%w (run `appbuild configure` first)", err)
	}

	configured, err := w.EnsureProfiles(cmdCtx.ProjectDir(), cmdCtx.Profile(), platforms)
	if err != nil {
		return projectfile.BuildConfig{}, nil, err
	}
	cfg, err = load(cmdCtx.ProjectDir())
	if err != nil {
		return projectfile.BuildConfig{}, nil, err
	}
	return cfg, configured, nil
}

func (w Workflow) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

func (w Workflow) logger() *slog.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return slog.Default()
}
