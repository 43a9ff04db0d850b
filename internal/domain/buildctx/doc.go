// Package buildctx resolves the execution context for a build command.
//
// Resolution happens in two stages. A Builder first composes a
// CommandContext from invocation parameters and three collaborator lookups
// (current user, project descriptor, account name), which run concurrently.
// NewBuildContext then derives one BuildContext per target platform by
// selecting that platform's profile from a profile.Table.
//
// Both context types are immutable once built. A single CommandContext is
// shared by every BuildContext derived from it; each BuildContext carries its
// own copy of the tracking data with the platform merged in.
//
// Example usage:
//
//	cmdCtx, err := builder.BuildCommandContext(ctx, buildctx.CommandInput{
//	    RequestedPlatform: platform.SelectAll,
//	    Profile:           "release",
//	    ProjectDir:        dir,
//	    TrackingContext:   tracking.New("build"),
//	    WaitForBuildEnd:   &wait,
//	})
//	if err != nil {
//	    return err
//	}
//	buildCtxs, err := buildctx.NewBuildContexts(cmdCtx.RequestedPlatform().Platforms(), table, cmdCtx)
package buildctx
