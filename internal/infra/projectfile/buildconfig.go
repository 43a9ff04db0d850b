// Where: cli/internal/infra/projectfile/buildconfig.go
// What: build.json loading, schema validation, and profile table construction.
// Why: Turn the per-platform profile maps into the table the build context expects.
package projectfile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/poruru/appbuild/cli/internal/domain/platform"
	"github.com/poruru/appbuild/cli/internal/domain/profile"
	"github.com/poruru/appbuild/cli/internal/infra/fileops"
	"github.com/poruru/appbuild/cli/internal/meta"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

const schemaURL = "build.schema.json"

//go:embed schema/build.schema.json
var buildSchema []byte

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// BuildConfig is the decoded build.json.
type BuildConfig struct {
	Builds Builds `json:"builds"`
}

// Builds holds named profiles per platform.
type Builds struct {
	Android map[string]*profile.Android `json:"android,omitempty"`
	IOS     map[string]*profile.IOS     `json:"ios,omitempty"`
}

// BuildConfigPath returns the build config location for a project root.
func BuildConfigPath(dir string) string {
	return filepath.Join(dir, meta.BuildConfigFile)
}

// LoadBuildConfig reads and validates build.json in dir.
func LoadBuildConfig(dir string) (BuildConfig, error) {
	path := BuildConfigPath(dir)
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return BuildConfig{}, fmt.Errorf("%w: %s", ErrBuildConfigNotFound, path)
		}
		return BuildConfig{}, fmt.Errorf("read build config: %w", err)
	}
	return ParseBuildConfig(payload)
}

// ParseBuildConfig validates payload against the build config schema and decodes it.
func ParseBuildConfig(payload []byte) (BuildConfig, error) {
	jsonData, err := yaml.YAMLToJSON(payload)
	if err != nil {
		return BuildConfig{}, fmt.Errorf("%w: %w", ErrInvalidBuildConfig, err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return BuildConfig{}, fmt.Errorf("%w: %w", ErrInvalidBuildConfig, err)
	}
	sch, err := loadSchema()
	if err != nil {
		return BuildConfig{}, err
	}
	if err := sch.Validate(document); err != nil {
		return BuildConfig{}, fmt.Errorf("%w: %w", ErrInvalidBuildConfig, err)
	}

	var cfg BuildConfig
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return BuildConfig{}, fmt.Errorf("%w: %w", ErrInvalidBuildConfig, err)
	}
	return cfg, nil
}

// WriteBuildConfig writes cfg to dir as indented JSON.
func WriteBuildConfig(dir string, cfg BuildConfig) error {
	payload, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode build config: %w", err)
	}
	payload = append(payload, '\n')
	if err := fileops.WriteFileAtomic(BuildConfigPath(dir), payload, 0o644); err != nil {
		return fmt.Errorf("write build config: %w", err)
	}
	return nil
}

// ProfileTable selects the profile called name for each platform. Platforms
// without such a profile are left out of the table.
func (c BuildConfig) ProfileTable(name string) profile.Table {
	table := profile.Table{}
	if p, ok := c.Builds.Android[name]; ok && p != nil {
		table[platform.Android] = p
	}
	if p, ok := c.Builds.IOS[name]; ok && p != nil {
		table[platform.IOS] = p
	}
	return table
}

// ProfileNames lists the profile names defined for p, sorted.
func (c BuildConfig) ProfileNames(p platform.Platform) []string {
	var names []string
	switch p {
	case platform.Android:
		for name := range c.Builds.Android {
			names = append(names, name)
		}
	case platform.IOS:
		for name := range c.Builds.IOS {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// HasProfile reports whether a profile called name exists for p.
func (c BuildConfig) HasProfile(p platform.Platform, name string) bool {
	_, ok := c.ProfileTable(name).Lookup(p)
	return ok
}

// SetProfile stores bp under name for its platform.
func (c *BuildConfig) SetProfile(name string, bp profile.BuildProfile) {
	switch typed := bp.(type) {
	case *profile.Android:
		if c.Builds.Android == nil {
			c.Builds.Android = map[string]*profile.Android{}
		}
		c.Builds.Android[name] = typed
	case *profile.IOS:
		if c.Builds.IOS == nil {
			c.Builds.IOS = map[string]*profile.IOS{}
		}
		c.Builds.IOS[name] = typed
	}
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(buildSchema)); err != nil {
			schemaErr = fmt.Errorf("load build config schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// EnsureProfiles makes sure every platform in platforms has a profile called
// name, creating build.json when absent. Existing profiles are left
// untouched. It returns the platforms that received a default profile.
func EnsureProfiles(dir, name string, platforms []platform.Platform) ([]platform.Platform, error) {
	cfg, err := LoadBuildConfig(dir)
	if err != nil && !errors.Is(err, ErrBuildConfigNotFound) {
		return nil, err
	}

	var added []platform.Platform
	for _, p := range platforms {
		if cfg.HasProfile(p, name) {
			continue
		}
		bp := profile.Default(p)
		if bp == nil {
			return nil, fmt.Errorf("no default profile for platform %q", p)
		}
		cfg.SetProfile(name, bp)
		added = append(added, p)
	}
	if len(added) == 0 {
		return nil, nil
	}
	if err := WriteBuildConfig(dir, cfg); err != nil {
		return nil, err
	}
	return added, nil
}
