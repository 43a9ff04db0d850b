// Where: cli/internal/infra/dispatch/request.go
// What: Build request records derived from build contexts.
// Why: Hand each resolved platform build to downstream orchestration as a self-contained document.
package dispatch

import (
	"time"

	"github.com/google/uuid"
	"github.com/poruru/appbuild/cli/internal/domain/buildctx"
	"github.com/poruru/appbuild/cli/internal/domain/platform"
	"github.com/poruru/appbuild/cli/internal/domain/profile"
	"github.com/poruru/appbuild/cli/internal/domain/tracking"
)

// Request is the serialized form of one platform build.
type Request struct {
	ID          string               `json:"id"`
	CreatedAt   time.Time            `json:"createdAt"`
	Platform    platform.Platform    `json:"platform"`
	ProfileName string               `json:"profileName"`
	Profile     profile.BuildProfile `json:"profile"`
	Project     RequestProject       `json:"project"`
	Account     string               `json:"account"`
	UserID      string               `json:"userId,omitempty"`
	Username    string               `json:"username"`
	Tracking    tracking.Context     `json:"tracking"`
	Options     RequestOptions       `json:"options"`
}

type RequestProject struct {
	Dir  string `json:"dir"`
	ID   string `json:"id,omitempty"`
	Slug string `json:"slug"`
	Name string `json:"name,omitempty"`
}

type RequestOptions struct {
	NonInteractive           bool `json:"nonInteractive"`
	SkipCredentialsCheck     bool `json:"skipCredentialsCheck"`
	SkipProjectConfiguration bool `json:"skipProjectConfiguration"`
	WaitForBuildEnd          bool `json:"waitForBuildEnd"`
}

// NewRequest captures buildCtx as a request with a fresh id.
func NewRequest(buildCtx *buildctx.BuildContext, createdAt time.Time) Request {
	cmdCtx := buildCtx.CommandContext()
	req := Request{
		ID:          uuid.NewString(),
		CreatedAt:   createdAt.UTC(),
		Platform:    buildCtx.Platform(),
		ProfileName: cmdCtx.Profile(),
		Profile:     buildCtx.BuildProfile(),
		Project: RequestProject{
			Dir:  cmdCtx.ProjectDir(),
			ID:   cmdCtx.ProjectID(),
			Slug: cmdCtx.ProjectName(),
		},
		Account:  cmdCtx.AccountName(),
		Tracking: buildCtx.TrackingContext(),
		Options: RequestOptions{
			NonInteractive:           cmdCtx.NonInteractive(),
			SkipCredentialsCheck:     cmdCtx.SkipCredentialsCheck(),
			SkipProjectConfiguration: cmdCtx.SkipProjectConfiguration(),
			WaitForBuildEnd:          cmdCtx.WaitForBuildEnd(),
		},
	}
	if desc := cmdCtx.Descriptor(); desc != nil {
		req.Project.Name = desc.Name
	}
	if user := cmdCtx.User(); user != nil {
		req.UserID = user.ID
		req.Username = user.Username
	}
	return req
}
