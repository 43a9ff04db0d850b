// Where: cli/internal/domain/buildctx/errors.go
// What: Error taxonomy for context resolution.
// Why: Let callers match failure categories with errors.Is while keeping causes intact.
package buildctx

import (
	"errors"
	"fmt"

	"github.com/poruru/appbuild/cli/internal/domain/platform"
)

var (
	ErrInvalidInput            = errors.New("invalid build command input")
	ErrWaitForBuildEndRequired = fmt.Errorf("%w: wait-for-build-end must be specified", ErrInvalidInput)
	ErrSession                 = errors.New("session unavailable")
	ErrProjectConfig           = errors.New("project configuration unavailable")
	ErrAccountResolution       = errors.New("account name unresolved")
	ErrMissingBuildProfile     = errors.New("build profile does not exist")
	ErrProfilePlatformMismatch = errors.New("build profile does not match platform")
	ErrNilCommandContext       = errors.New("command context is required")
)

// MissingProfileError reports that the profile table has no entry for Platform.
type MissingProfileError struct {
	Platform platform.Platform
}

func (e *MissingProfileError) Error() string {
	return fmt.Sprintf("%s build profile does not exist", e.Platform.DisplayName())
}

func (e *MissingProfileError) Is(target error) bool {
	return target == ErrMissingBuildProfile
}

// ProfileMismatchError reports a table entry whose variant belongs to another platform.
type ProfileMismatchError struct {
	Platform platform.Platform
	Actual   platform.Platform
}

func (e *ProfileMismatchError) Error() string {
	return fmt.Sprintf(
		"%s build profile has %s shape",
		e.Platform.DisplayName(),
		e.Actual.DisplayName(),
	)
}

func (e *ProfileMismatchError) Is(target error) bool {
	return target == ErrProfilePlatformMismatch
}
