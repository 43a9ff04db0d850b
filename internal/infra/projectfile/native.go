// Where: cli/internal/infra/projectfile/native.go
// What: Native project directory detection.
// Why: Tell the configure flow whether android/ and ios/ are committed.
package projectfile

import (
	"os"
	"path/filepath"

	"github.com/poruru/appbuild/cli/internal/domain/platform"
	"github.com/poruru/appbuild/cli/internal/meta"
)

// NativeDetector checks the project root for native platform directories.
type NativeDetector struct{}

func (NativeDetector) HasNativeProject(dir string, p platform.Platform) bool {
	var name string
	switch p {
	case platform.Android:
		name = meta.AndroidNativeDir
	case platform.IOS:
		name = meta.IOSNativeDir
	default:
		return false
	}
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && info.IsDir()
}
