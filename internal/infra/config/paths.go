// Where: cli/internal/infra/config/paths.go
// What: User-level config directory resolution.
// Why: Keep config and session files under the platform's XDG config home.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/poruru/appbuild/cli/internal/meta"
)

// Dir returns the user config directory.
//
//	Override: $APPBUILD_CONFIG_DIR
//	Linux:    $XDG_CONFIG_HOME/appbuild
//	macOS:    ~/Library/Application Support/appbuild
func Dir() string {
	if override := strings.TrimSpace(os.Getenv(meta.EnvConfigDir)); override != "" {
		return override
	}
	return filepath.Join(xdg.ConfigHome, meta.AppName)
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	return filepath.Join(Dir(), meta.GlobalConfigFile)
}

// SessionPath returns the path to the stored session file.
func SessionPath() string {
	return filepath.Join(Dir(), meta.SessionFile)
}
