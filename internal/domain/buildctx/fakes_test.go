// Where: cli/internal/domain/buildctx/fakes_test.go
// What: Hand-written collaborators for context builder tests.
// Why: Exercise the builders without a session backend or project files.
package buildctx

import (
	"context"
	"fmt"

	"github.com/poruru/appbuild/cli/internal/domain/platform"
	"github.com/poruru/appbuild/cli/internal/domain/project"
	"github.com/poruru/appbuild/cli/internal/domain/session"
)

type fakeSession struct {
	user *session.User
	err  error
	fn   func(ctx context.Context) (*session.User, error)
}

func (f fakeSession) CurrentUser(ctx context.Context) (*session.User, error) {
	if f.fn != nil {
		return f.fn(ctx)
	}
	return f.user, f.err
}

// fakeProjects serves descriptors keyed by project directory.
type fakeProjects struct {
	byDir map[string]*project.Descriptor
	fn    func(ctx context.Context, dir string) (*project.Descriptor, error)
}

func (f fakeProjects) LoadProject(ctx context.Context, dir string) (*project.Descriptor, error) {
	if f.fn != nil {
		return f.fn(ctx, dir)
	}
	d, ok := f.byDir[dir]
	if !ok {
		return nil, fmt.Errorf("no project in %s", dir)
	}
	return d, nil
}

// fakeAccounts resolves the owner of the descriptor stored for dir.
type fakeAccounts struct {
	projects fakeProjects
	err      error
	fn       func(ctx context.Context, dir string) (string, error)
}

func (f fakeAccounts) ResolveAccountName(ctx context.Context, dir string) (string, error) {
	if f.fn != nil {
		return f.fn(ctx, dir)
	}
	if f.err != nil {
		return "", f.err
	}
	d, err := f.projects.LoadProject(ctx, dir)
	if err != nil {
		return "", err
	}
	return d.Owner, nil
}

type fakeNative map[platform.Platform]bool

func (f fakeNative) HasNativeProject(_ string, p platform.Platform) bool {
	return f[p]
}

func newTestBuilder() Builder {
	projects := fakeProjects{byDir: map[string]*project.Descriptor{
		"/work/alpha": {Name: "Alpha", Slug: "alpha", Owner: "team-a"},
		"/work/beta":  {Name: "Beta", Slug: "beta", Owner: "team-b"},
	}}
	return Builder{
		Session:  fakeSession{user: &session.User{ID: "u-1", Username: "jane"}},
		Projects: projects,
		Accounts: fakeAccounts{projects: projects},
		Native:   fakeNative{platform.Android: true},
	}
}

func boolPtr(v bool) *bool { return &v }
