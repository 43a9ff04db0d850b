// Where: cli/internal/domain/buildctx/command_context.go
// What: Command-level context composition.
// Why: Gather every invocation-scoped value a build step needs before any platform work starts.
package buildctx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poruru/appbuild/cli/internal/domain/platform"
	"github.com/poruru/appbuild/cli/internal/domain/project"
	"github.com/poruru/appbuild/cli/internal/domain/session"
	"github.com/poruru/appbuild/cli/internal/domain/tracking"
	"golang.org/x/sync/errgroup"
)

// SessionProvider returns the user behind the current session.
type SessionProvider interface {
	CurrentUser(ctx context.Context) (*session.User, error)
}

// ProjectLoader loads the project descriptor rooted at dir.
type ProjectLoader interface {
	LoadProject(ctx context.Context, dir string) (*project.Descriptor, error)
}

// AccountResolver resolves the account that owns the project rooted at dir.
type AccountResolver interface {
	ResolveAccountName(ctx context.Context, dir string) (string, error)
}

// Builder composes command and configure contexts from its collaborators.
type Builder struct {
	Session  SessionProvider
	Projects ProjectLoader
	Accounts AccountResolver
	Native   NativeProjectDetector
	Logger   *slog.Logger
}

// CommandInput carries the invocation parameters of a build command.
// WaitForBuildEnd has no default and must be set.
type CommandInput struct {
	RequestedPlatform        platform.Selector
	Profile                  string
	ProjectDir               string
	ProjectID                string
	TrackingContext          tracking.Context
	NonInteractive           bool
	SkipCredentialsCheck     bool
	SkipProjectConfiguration bool
	WaitForBuildEnd          *bool
}

func (in CommandInput) validate() error {
	if !in.RequestedPlatform.Valid() {
		return fmt.Errorf("%w: unknown platform %q", ErrInvalidInput, in.RequestedPlatform)
	}
	if strings.TrimSpace(in.Profile) == "" {
		return fmt.Errorf("%w: profile name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.ProjectDir) == "" {
		return fmt.Errorf("%w: project directory is required", ErrInvalidInput)
	}
	if in.WaitForBuildEnd == nil {
		return ErrWaitForBuildEndRequired
	}
	return nil
}

// CommandContext is the platform-independent state of one build invocation.
type CommandContext struct {
	requestedPlatform        platform.Selector
	profile                  string
	projectDir               string
	projectID                string
	user                     *session.User
	accountName              string
	projectName              string
	descriptor               *project.Descriptor
	trackingCtx              tracking.Context
	nonInteractive           bool
	skipCredentialsCheck     bool
	skipProjectConfiguration bool
	waitForBuildEnd          bool
}

// Accessors for the values captured at construction. User and Descriptor
// are shared with the collaborators that produced them; treat them as read-only.

// RequestedPlatform is the platform selector the command was invoked with.
func (c *CommandContext) RequestedPlatform() platform.Selector { return c.requestedPlatform }

// Profile is the build profile name to look up for every platform.
func (c *CommandContext) Profile() string { return c.profile }

// ProjectDir is the project root all lookups were made against.
func (c *CommandContext) ProjectDir() string { return c.projectDir }

// ProjectID is the remote project id, or "" when not given.
func (c *CommandContext) ProjectID() string { return c.projectID }

// User is the session user.
func (c *CommandContext) User() *session.User { return c.user }

// AccountName is the account that owns the project.
func (c *CommandContext) AccountName() string { return c.accountName }

// ProjectName is the descriptor slug.
func (c *CommandContext) ProjectName() string { return c.projectName }

// Descriptor is the loaded project descriptor.
func (c *CommandContext) Descriptor() *project.Descriptor { return c.descriptor }

// NonInteractive reports whether prompting is disabled.
func (c *CommandContext) NonInteractive() bool { return c.nonInteractive }

// SkipCredentialsCheck reports whether signing credential validation is skipped.
func (c *CommandContext) SkipCredentialsCheck() bool { return c.skipCredentialsCheck }

// SkipProjectConfiguration reports whether missing build profiles may be created.
func (c *CommandContext) SkipProjectConfiguration() bool { return c.skipProjectConfiguration }

// WaitForBuildEnd reports whether the caller waits for builds to finish.
func (c *CommandContext) WaitForBuildEnd() bool { return c.waitForBuildEnd }

// TrackingContext returns a copy of the command-level tracking data.
func (c *CommandContext) TrackingContext() tracking.Context { return c.trackingCtx.Clone() }

// BuildCommandContext runs the session, project, and account lookups
// concurrently and composes their results. The first failing lookup cancels
// the others; no context is returned unless all three succeed.
func (b Builder) BuildCommandContext(ctx context.Context, in CommandInput) (*CommandContext, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if b.Session == nil || b.Projects == nil || b.Accounts == nil {
		return nil, errors.New("context builder is missing a collaborator")
	}
	log := b.logger()

	var (
		user        *session.User
		descriptor  *project.Descriptor
		accountName string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := b.Session.CurrentUser(gctx)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSession, err)
		}
		if u == nil {
			return fmt.Errorf("%w: no user for current session", ErrSession)
		}
		user = u
		return nil
	})
	g.Go(func() error {
		d, err := b.Projects.LoadProject(gctx, in.ProjectDir)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrProjectConfig, err)
		}
		if d == nil || strings.TrimSpace(d.Slug) == "" {
			return fmt.Errorf("%w: project in %s has no slug", ErrProjectConfig, in.ProjectDir)
		}
		descriptor = d
		return nil
	})
	g.Go(func() error {
		name, err := b.Accounts.ResolveAccountName(gctx, in.ProjectDir)
		if errors.Is(err, ErrSession) {
			return err
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrAccountResolution, err)
		}
		accountName = name
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Debug("command context lookup failed", "project_dir", in.ProjectDir, "error", err)
		return nil, err
	}

	cmdCtx := &CommandContext{
		requestedPlatform:        in.RequestedPlatform,
		profile:                  in.Profile,
		projectDir:               in.ProjectDir,
		projectID:                in.ProjectID,
		user:                     user,
		accountName:              accountName,
		projectName:              descriptor.Slug,
		descriptor:               descriptor,
		trackingCtx:              in.TrackingContext.Clone(),
		nonInteractive:           in.NonInteractive,
		skipCredentialsCheck:     in.SkipCredentialsCheck,
		skipProjectConfiguration: in.SkipProjectConfiguration,
		waitForBuildEnd:          *in.WaitForBuildEnd,
	}
	log.Debug("resolved command context",
		"account", cmdCtx.accountName,
		"project", cmdCtx.projectName,
		"platform", cmdCtx.requestedPlatform,
		"profile", cmdCtx.profile,
	)
	return cmdCtx, nil
}

func (b Builder) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}
