// Where: cli/internal/domain/buildctx/configure_context.go
// What: Context for the project configuration flow.
// Why: Decide which native projects to configure without resolving a build profile.
package buildctx

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/poruru/appbuild/cli/internal/domain/platform"
	"github.com/poruru/appbuild/cli/internal/domain/project"
	"github.com/poruru/appbuild/cli/internal/domain/session"
	"golang.org/x/sync/errgroup"
)

// NativeProjectDetector reports whether dir contains a native project for p.
type NativeProjectDetector interface {
	HasNativeProject(dir string, p platform.Platform) bool
}

// ConfigureInput carries the parameters of a configure command.
type ConfigureInput struct {
	RequestedPlatform platform.Selector
	ProjectDir        string
}

// ConfigureContext describes what the configure flow should touch.
type ConfigureContext struct {
	User                    *session.User
	ProjectDir              string
	Descriptor              *project.Descriptor
	RequestedPlatform       platform.Selector
	ShouldConfigureAndroid  bool
	ShouldConfigureIOS      bool
	HasAndroidNativeProject bool
	HasIOSNativeProject     bool
}

// PlatformsToConfigure lists the platforms selected for configuration.
func (c ConfigureContext) PlatformsToConfigure() []platform.Platform {
	var out []platform.Platform
	if c.ShouldConfigureAndroid {
		out = append(out, platform.Android)
	}
	if c.ShouldConfigureIOS {
		out = append(out, platform.IOS)
	}
	return out
}

// BuildConfigureContext loads the user and descriptor concurrently and
// inspects the project directory for native projects.
func (b Builder) BuildConfigureContext(ctx context.Context, in ConfigureInput) (*ConfigureContext, error) {
	if !in.RequestedPlatform.Valid() {
		return nil, fmt.Errorf("%w: unknown platform %q", ErrInvalidInput, in.RequestedPlatform)
	}
	if strings.TrimSpace(in.ProjectDir) == "" {
		return nil, fmt.Errorf("%w: project directory is required", ErrInvalidInput)
	}
	if b.Session == nil || b.Projects == nil || b.Native == nil {
		return nil, errors.New("configure builder is missing a collaborator")
	}

	var (
		user       *session.User
		descriptor *project.Descriptor
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
		if d == nil {
			return fmt.Errorf("%w: no project descriptor in %s", ErrProjectConfig, in.ProjectDir)
		}
		descriptor = d
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ConfigureContext{
		User:                    user,
		ProjectDir:              in.ProjectDir,
		Descriptor:              descriptor,
		RequestedPlatform:       in.RequestedPlatform,
		ShouldConfigureAndroid:  in.RequestedPlatform.Includes(platform.Android),
		ShouldConfigureIOS:      in.RequestedPlatform.Includes(platform.IOS),
		HasAndroidNativeProject: b.Native.HasNativeProject(in.ProjectDir, platform.Android),
		HasIOSNativeProject:     b.Native.HasNativeProject(in.ProjectDir, platform.IOS),
	}, nil
}
