// Where: cli/internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep branding, file names, and env var names in one place.
package meta

const (
	// Project Identity
	AppName   = "appbuild"
	Slug      = "appbuild"
	EnvPrefix = "APPBUILD"

	// Environment variables
	EnvToken     = EnvPrefix + "_TOKEN"
	EnvConfigDir = EnvPrefix + "_CONFIG_DIR"
	EnvDebug     = EnvPrefix + "_DEBUG"
	EnvQuiet     = EnvPrefix + "_QUIET"

	// Directory Layout
	HomeDir     = ".appbuild"
	RequestsDir = "requests"

	// Project files
	BuildConfigFile  = "build.json"
	GlobalConfigFile = "config.yaml"
	SessionFile      = "session.yaml"
	DefaultProfile   = "release"
	AndroidNativeDir = "android"
	IOSNativeDir     = "ios"
)

// DescriptorFiles lists the project descriptor candidates in lookup order.
var DescriptorFiles = []string{"app.json", "app.yaml", "app.yml"}
