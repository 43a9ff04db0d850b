// Where: cli/internal/domain/buildctx/build_context.go
// What: Platform-specific build context derivation.
// Why: Bind a command context to the profile selected for one platform.
package buildctx

import (
	"github.com/poruru/appbuild/cli/internal/domain/platform"
	"github.com/poruru/appbuild/cli/internal/domain/profile"
	"github.com/poruru/appbuild/cli/internal/domain/tracking"
)

// BuildContext is the state of one platform build within a command invocation.
type BuildContext struct {
	commandCtx  *CommandContext
	trackingCtx tracking.Context
	platform    platform.Platform
	profile     profile.BuildProfile
}

// CommandContext returns the shared command context this build derives from.
func (b *BuildContext) CommandContext() *CommandContext { return b.commandCtx }

// TrackingContext returns a copy of the platform-scoped tracking data.
func (b *BuildContext) TrackingContext() tracking.Context { return b.trackingCtx.Clone() }

// Platform is the platform this context builds for.
func (b *BuildContext) Platform() platform.Platform { return b.platform }

// BuildProfile returns the resolved profile; its variant always matches Platform.
func (b *BuildContext) BuildProfile() profile.BuildProfile { return b.profile }

// AndroidProfile returns the profile when this is an Android build.
func (b *BuildContext) AndroidProfile() (*profile.Android, bool) {
	p, ok := b.profile.(*profile.Android)
	return p, ok
}

// IOSProfile returns the profile when this is an iOS build.
func (b *BuildContext) IOSProfile() (*profile.IOS, bool) {
	p, ok := b.profile.(*profile.IOS)
	return p, ok
}

// NewBuildContext selects table[p] and binds it to commandCtx. It fails with
// a *MissingProfileError when the table has no entry for p, and with a
// *ProfileMismatchError when the entry's variant belongs to another platform.
func NewBuildContext(
	p platform.Platform,
	table profile.Table,
	commandCtx *CommandContext,
) (*BuildContext, error) {
	if commandCtx == nil {
		return nil, ErrNilCommandContext
	}
	bp, ok := table.Lookup(p)
	if !ok {
		return nil, &MissingProfileError{Platform: p}
	}
	if actual := bp.Platform(); actual != p {
		return nil, &ProfileMismatchError{Platform: p, Actual: actual}
	}
	return &BuildContext{
		commandCtx:  commandCtx,
		trackingCtx: commandCtx.trackingCtx.With(tracking.KeyPlatform, p),
		platform:    p,
		profile:     bp,
	}, nil
}

// NewBuildContexts derives one context per platform, in order, stopping at the first failure.
func NewBuildContexts(
	platforms []platform.Platform,
	table profile.Table,
	commandCtx *CommandContext,
) ([]*BuildContext, error) {
	out := make([]*BuildContext, 0, len(platforms))
	for _, p := range platforms {
		buildCtx, err := NewBuildContext(p, table, commandCtx)
		if err != nil {
			return nil, err
		}
		out = append(out, buildCtx)
	}
	return out, nil
}
