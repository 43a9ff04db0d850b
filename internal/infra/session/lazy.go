// Where: cli/internal/infra/session/lazy.go
// What: Deferred, memoized session provider.
// Why: Build the backend only when a command needs a user, and look the user up once per run.
package session

import (
	"context"
	"sync"

	domain "github.com/poruru/appbuild/cli/internal/domain/session"
	"github.com/poruru/appbuild/cli/internal/infra/config"
)

// Lazy builds its provider on first use and remembers the first settled answer.
// Concurrent callers share a single lookup. Failures caused by the caller's
// context are not remembered.
type Lazy struct {
	New func(ctx context.Context) (Provider, error)

	mu   sync.Mutex
	done bool
	user *domain.User
	err  error
}

// NewLazy defers NewProvider(ctx, cfg, sessionPath) until the first lookup.
func NewLazy(newProvider func(context.Context, config.SessionConfig, string) (Provider, error), cfg config.SessionConfig, sessionPath string) *Lazy {
	return &Lazy{New: func(ctx context.Context) (Provider, error) {
		return newProvider(ctx, cfg, sessionPath)
	}}
}

// CurrentUser returns the remembered user or error, resolving them on first use.
func (p *Lazy) CurrentUser(ctx context.Context) (*domain.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done {
		return p.user, p.err
	}

	user, err := p.lookup(ctx)
	if err != nil && ctx.Err() != nil {
		return nil, err
	}
	p.done, p.user, p.err = true, user, err
	return user, err
}

func (p *Lazy) lookup(ctx context.Context) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	provider, err := p.New(ctx)
	if err != nil {
		return nil, err
	}
	return provider.CurrentUser(ctx)
}
