// Where: cli/internal/infra/session/file.go
// What: Session provider backed by the local session file.
// Why: Resolve the logged-in user without network access.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	domain "github.com/poruru/appbuild/cli/internal/domain/session"
	"gopkg.in/yaml.v3"
)

var (
	ErrNotLoggedIn    = errors.New("not logged in")
	ErrSessionExpired = errors.New("session expired")
)

// StoredSession is the on-disk session.yaml layout.
type StoredSession struct {
	Token     string       `yaml:"token,omitempty"`
	User      *domain.User `yaml:"user,omitempty"`
	ExpiresAt *time.Time   `yaml:"expires_at,omitempty"`
}

// ReadSessionFile loads the session file. A missing file yields ErrNotLoggedIn.
func ReadSessionFile(path string) (StoredSession, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return StoredSession{}, ErrNotLoggedIn
		}
		return StoredSession{}, fmt.Errorf("read session file: %w", err)
	}
	var stored StoredSession
	if err := yaml.Unmarshal(payload, &stored); err != nil {
		return StoredSession{}, fmt.Errorf("decode session file: %w", err)
	}
	return stored, nil
}

// FileProvider reads the current user from the session file.
type FileProvider struct {
	Path string
	Now  func() time.Time
}

func (p FileProvider) CurrentUser(ctx context.Context) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stored, err := ReadSessionFile(p.Path)
	if err != nil {
		return nil, err
	}
	if stored.User == nil || strings.TrimSpace(stored.User.Username) == "" {
		return nil, ErrNotLoggedIn
	}
	if stored.ExpiresAt != nil && !stored.ExpiresAt.After(now(p.Now)) {
		return nil, ErrSessionExpired
	}
	return stored.User, nil
}

func now(fn func() time.Time) time.Time {
	if fn != nil {
		return fn()
	}
	return time.Now()
}
