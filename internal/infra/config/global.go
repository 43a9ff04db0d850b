// Where: cli/internal/infra/config/global.go
// What: Global config load/save.
// Why: Manage <config_dir>/config.yaml consistently.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/poruru/appbuild/cli/internal/infra/fileops"
	"gopkg.in/yaml.v3"
)

const maxRecentProjects = 10

// GlobalConfig represents the user-level config.yaml.
type GlobalConfig struct {
	Version        int            `yaml:"version"`
	DefaultAccount string         `yaml:"default_account,omitempty"`
	Session        SessionConfig  `yaml:"session,omitempty"`
	Dispatch       DispatchConfig `yaml:"dispatch,omitempty"`
	RecentProjects []string       `yaml:"recent_projects,omitempty"`
}

// SessionConfig selects where the current session is resolved.
type SessionConfig struct {
	Backend  string `yaml:"backend,omitempty"`
	Table    string `yaml:"table,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
	Region   string `yaml:"region,omitempty"`
}

// DispatchConfig selects where build requests are handed off.
type DispatchConfig struct {
	Backend  string `yaml:"backend,omitempty"`
	Dir      string `yaml:"dir,omitempty"`
	Bucket   string `yaml:"bucket,omitempty"`
	Prefix   string `yaml:"prefix,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
	Region   string `yaml:"region,omitempty"`
}

const (
	SessionBackendFile     = "file"
	SessionBackendDynamoDB = "dynamodb"
	DispatchBackendDir     = "dir"
	DispatchBackendS3      = "s3"
)

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Version:        1,
		Session:        SessionConfig{Backend: SessionBackendFile},
		Dispatch:       DispatchConfig{Backend: DispatchBackendDir},
		RecentProjects: []string{},
	}
}

// EnsureGlobalConfig creates the global config file if it doesn't exist.
func EnsureGlobalConfig() error {
	path := GlobalConfigPath()
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return SaveGlobalConfig(path, DefaultGlobalConfig())
		}
		return fmt.Errorf("stat global config: %w", err)
	}
	return nil
}

// LoadGlobalConfig reads and parses the global configuration file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, fmt.Errorf("read global config: %w", err)
	}

	cfg := DefaultGlobalConfig()
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, fmt.Errorf("decode global config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads the global config, falling back to defaults when the file is absent.
func LoadOrDefault() (GlobalConfig, error) {
	cfg, err := LoadGlobalConfig(GlobalConfigPath())
	if errors.Is(err, os.ErrNotExist) {
		return DefaultGlobalConfig(), nil
	}
	return cfg, err
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode global config: %w", err)
	}

	if err := fileops.WriteFileAtomic(path, payload, 0o600); err != nil {
		return fmt.Errorf("write global config: %w", err)
	}
	return nil
}

// TouchRecentProject moves dir to the front of the recent project list.
func (c *GlobalConfig) TouchRecentProject(dir string) {
	recent := slices.DeleteFunc(slices.Clone(c.RecentProjects), func(p string) bool { return p == dir })
	recent = append([]string{dir}, recent...)
	if len(recent) > maxRecentProjects {
		recent = recent[:maxRecentProjects]
	}
	c.RecentProjects = recent
}
