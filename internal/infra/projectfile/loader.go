// Where: cli/internal/infra/projectfile/loader.go
// What: Project descriptor loader for app.json / app.yaml.
// Why: Resolve project identity (slug, owner) from the project root.
package projectfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru/appbuild/cli/internal/domain/project"
	"github.com/poruru/appbuild/cli/internal/meta"
	"sigs.k8s.io/yaml"
)

// Loader reads project descriptors from disk.
type Loader struct{}

// LoadProject reads the first descriptor found in dir. JSON and YAML are both accepted.
func (Loader) LoadProject(ctx context.Context, dir string) (*project.Descriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := DescriptorPath(dir)
	if err != nil {
		return nil, err
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project descriptor: %w", err)
	}

	var desc project.Descriptor
	if err := yaml.Unmarshal(payload, &desc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	if strings.TrimSpace(desc.Slug) == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingSlug, path)
	}
	return &desc, nil
}

// DescriptorPath returns the descriptor file used for dir.
func DescriptorPath(dir string) (string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s does not exist", ErrProjectNotFound, dir)
		}
		return "", fmt.Errorf("stat project dir: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrProjectNotFound, dir)
	}
	for _, name := range meta.DescriptorFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w in %s (looked for %s)", ErrProjectNotFound, dir, strings.Join(meta.DescriptorFiles, ", "))
}
