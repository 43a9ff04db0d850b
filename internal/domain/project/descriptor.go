// Where: cli/internal/domain/project/descriptor.go
// What: Parsed project descriptor (app.json / app.yaml).
// Why: Give context builders a typed view of the project identity.
package project

// Descriptor is the subset of the project descriptor the CLI relies on.
type Descriptor struct {
	Name    string   `json:"name"`
	Slug    string   `json:"slug"`
	Owner   string   `json:"owner,omitempty"`
	Version string   `json:"version,omitempty"`
	Android *Android `json:"android,omitempty"`
	IOS     *IOS     `json:"ios,omitempty"`
}

type Android struct {
	Package string `json:"package,omitempty"`
}

type IOS struct {
	BundleIdentifier string `json:"bundleIdentifier,omitempty"`
}
