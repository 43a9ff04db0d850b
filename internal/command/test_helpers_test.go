package command

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/poruru/appbuild/cli/internal/domain/buildctx"
	"github.com/poruru/appbuild/cli/internal/domain/platform"
	"github.com/poruru/appbuild/cli/internal/domain/project"
	"github.com/poruru/appbuild/cli/internal/domain/session"
	"github.com/poruru/appbuild/cli/internal/infra/dispatch"
	"github.com/poruru/appbuild/cli/internal/infra/interaction"
	"github.com/poruru/appbuild/cli/internal/infra/projectfile"
	"github.com/poruru/appbuild/cli/internal/meta"
)

var errNoQueuedSelection = errors.New("no queued selection")

type fakeSession struct {
	user *session.User
	err  error
}

func (f fakeSession) CurrentUser(context.Context) (*session.User, error) {
	return f.user, f.err
}

type fakeProjects struct{}

func (fakeProjects) LoadProject(context.Context, string) (*project.Descriptor, error) {
	return &project.Descriptor{Name: "Demo", Slug: "demo", Owner: "team-a"}, nil
}

type fakeAccounts struct{}

func (fakeAccounts) ResolveAccountName(context.Context, string) (string, error) {
	return "team-a", nil
}

type fakeNative map[platform.Platform]bool

func (f fakeNative) HasNativeProject(_ string, p platform.Platform) bool { return f[p] }

type recordingSink struct {
	requests []dispatch.Request
}

func (s *recordingSink) Dispatch(_ context.Context, req dispatch.Request) (string, error) {
	s.requests = append(s.requests, req)
	return "mem://" + req.ID, nil
}

type fakePrompter struct {
	selectValues []string
	confirm      bool
	titles       []string
}

func (p *fakePrompter) SelectValue(title string, options []interaction.SelectOption) (string, error) {
	p.titles = append(p.titles, title)
	return popQueuedSelection(&p.selectValues, errNoQueuedSelection)
}

func (p *fakePrompter) Confirm(title string) (bool, error) {
	p.titles = append(p.titles, title)
	return p.confirm, nil
}

type testEnv struct {
	dir  string
	out  *bytes.Buffer
	sink *recordingSink
	deps Dependencies
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("CLI_CMD", "")
	env := &testEnv{
		dir:  t.TempDir(),
		out:  &bytes.Buffer{},
		sink: &recordingSink{},
	}
	env.deps = Dependencies{
		Out:       env.out,
		ErrOut:    env.out,
		CanPrompt: func() bool { return false },
		Contexts: buildctx.Builder{
			Session:  fakeSession{user: &session.User{ID: "u-1", Username: "jane", PrimaryAccount: "jane"}},
			Projects: fakeProjects{},
			Accounts: fakeAccounts{},
			Native:   fakeNative{platform.Android: true},
		},
		NewSink: func(context.Context, string) (dispatch.Sink, error) { return env.sink, nil },
	}
	return env
}

func (e *testEnv) writeBuildConfig(t *testing.T, payload string) {
	t.Helper()
	if err := os.WriteFile(projectfile.BuildConfigPath(e.dir), []byte(payload), 0o644); err != nil {
		t.Fatalf("write build config: %v", err)
	}
}

func writeDescriptor(t *testing.T, dir, payload string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, meta.DescriptorFiles[0]), []byte(payload), 0o644); err != nil {
		t.Fatalf("write descriptor: %v", err)
	}
}

func popQueuedSelection(selectValues *[]string, emptyErr error) (string, error) {
	if len(*selectValues) == 0 {
		return "", emptyErr
	}
	value := (*selectValues)[0]
	*selectValues = (*selectValues)[1:]
	return value, nil
}
