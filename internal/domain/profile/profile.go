// Where: cli/internal/domain/profile/profile.go
// What: Platform-specific build profile shapes and the platform-indexed profile table.
// Why: Model the platform -> profile mapping as a closed tagged variant.
package profile

import "github.com/poruru/appbuild/cli/internal/domain/platform"

// BuildProfile is implemented only by *Android and *IOS.
type BuildProfile interface {
	Platform() platform.Platform
	isBuildProfile()
}

// Workflow distinguishes projects with committed native directories from managed ones.
type Workflow string

const (
	WorkflowGeneric Workflow = "generic"
	WorkflowManaged Workflow = "managed"
)

// Distribution describes where the resulting artifact is intended to go.
type Distribution string

const (
	DistributionStore    Distribution = "store"
	DistributionInternal Distribution = "internal"
)

// CredentialsSource selects where signing credentials come from.
type CredentialsSource string

const (
	CredentialsLocal  CredentialsSource = "local"
	CredentialsRemote CredentialsSource = "remote"
	CredentialsAuto   CredentialsSource = "auto"
)

// Android is the Android build profile shape.
type Android struct {
	Workflow           Workflow          `json:"workflow,omitempty"`
	BuildType          string            `json:"buildType,omitempty"`
	GradleCommand      string            `json:"gradleCommand,omitempty"`
	ArtifactPath       string            `json:"artifactPath,omitempty"`
	ReleaseChannel     string            `json:"releaseChannel,omitempty"`
	Distribution       Distribution      `json:"distribution,omitempty"`
	CredentialsSource  CredentialsSource `json:"credentialsSource,omitempty"`
	WithoutCredentials bool              `json:"withoutCredentials,omitempty"`
	Image              string            `json:"image,omitempty"`
	Env                map[string]string `json:"env,omitempty"`
}

func (*Android) Platform() platform.Platform { return platform.Android }
func (*Android) isBuildProfile()             {}

// IOS is the iOS build profile shape.
type IOS struct {
	Workflow           Workflow          `json:"workflow,omitempty"`
	BuildConfiguration string            `json:"buildConfiguration,omitempty"`
	Scheme             string            `json:"scheme,omitempty"`
	ArtifactPath       string            `json:"artifactPath,omitempty"`
	ReleaseChannel     string            `json:"releaseChannel,omitempty"`
	Distribution       Distribution      `json:"distribution,omitempty"`
	CredentialsSource  CredentialsSource `json:"credentialsSource,omitempty"`
	Simulator          bool              `json:"simulator,omitempty"`
	Image              string            `json:"image,omitempty"`
	Env                map[string]string `json:"env,omitempty"`
}

func (*IOS) Platform() platform.Platform { return platform.IOS }
func (*IOS) isBuildProfile()             {}

// Table maps each platform to the profile selected for it. Entries may be missing.
type Table map[platform.Platform]BuildProfile

// Lookup returns the profile stored for p.
func (t Table) Lookup(p platform.Platform) (BuildProfile, bool) {
	if t == nil {
		return nil, false
	}
	bp, ok := t[p]
	if !ok || bp == nil {
		return nil, false
	}
	return bp, true
}

// Default returns the profile written by the configure flow for a platform
// that has no profile yet.
func Default(p platform.Platform) BuildProfile {
	switch p {
	case platform.Android:
		return &Android{
			Workflow:          WorkflowGeneric,
			BuildType:         "app-bundle",
			Distribution:      DistributionStore,
			CredentialsSource: CredentialsAuto,
		}
	case platform.IOS:
		return &IOS{
			Workflow:           WorkflowGeneric,
			BuildConfiguration: "Release",
			Distribution:       DistributionStore,
			CredentialsSource:  CredentialsAuto,
		}
	default:
		return nil
	}
}
