// Where: cli/internal/infra/projectfile/errors.go
// What: Errors returned by project file loaders.
// Why: Let commands give targeted hints for missing or invalid project files.
package projectfile

import "errors"

var (
	ErrProjectNotFound     = errors.New("no project descriptor found")
	ErrMissingSlug         = errors.New("project descriptor has no slug")
	ErrBuildConfigNotFound = errors.New("build config not found")
	ErrInvalidBuildConfig  = errors.New("invalid build config")
	ErrAccountUnresolved   = errors.New("could not determine the project account")
)
