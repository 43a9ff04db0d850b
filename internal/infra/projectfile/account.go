// Where: cli/internal/infra/projectfile/account.go
// What: Account name resolution for a project.
// Why: Prefer the descriptor owner, then configured defaults, then the session user.
package projectfile

import (
	"context"
	"fmt"
	"strings"

	"github.com/poruru/appbuild/cli/internal/domain/buildctx"
	"github.com/poruru/appbuild/cli/internal/domain/project"
	"github.com/poruru/appbuild/cli/internal/domain/session"
	"github.com/poruru/appbuild/cli/internal/infra/config"
)

type descriptorLoader interface {
	LoadProject(ctx context.Context, dir string) (*project.Descriptor, error)
}

type userLookup interface {
	CurrentUser(ctx context.Context) (*session.User, error)
}

// AccountResolver resolves the account that owns a project.
type AccountResolver struct {
	Projects     descriptorLoader
	Session      userLookup
	GlobalConfig func() (config.GlobalConfig, error)
}

// ResolveAccountName returns, in order: the descriptor owner, the configured
// default account, the session user's primary account, or its username.
// Session failures keep the buildctx.ErrSession category.
func (r AccountResolver) ResolveAccountName(ctx context.Context, dir string) (string, error) {
	if r.Projects == nil {
		return "", fmt.Errorf("account resolver has no project loader")
	}
	desc, err := r.Projects.LoadProject(ctx, dir)
	if err != nil {
		return "", err
	}
	if owner := strings.TrimSpace(desc.Owner); owner != "" {
		return owner, nil
	}

	if r.GlobalConfig != nil {
		cfg, err := r.GlobalConfig()
		if err != nil {
			return "", err
		}
		if account := strings.TrimSpace(cfg.DefaultAccount); account != "" {
			return account, nil
		}
	}

	if r.Session != nil {
		user, err := r.Session.CurrentUser(ctx)
		if err != nil {
			return "", fmt.Errorf("%w: %w", buildctx.ErrSession, err)
		}
		if user != nil {
			if account := strings.TrimSpace(user.PrimaryAccount); account != "" {
				return account, nil
			}
			if name := strings.TrimSpace(user.Username); name != "" {
				return name, nil
			}
		}
	}
	return "", fmt.Errorf("%w: set \"owner\" in the project descriptor", ErrAccountUnresolved)
}
