// Where: cli/internal/infra/projectfile/loader_test.go
// What: Tests for descriptor loading, native detection, and account resolution.
// Why: Ensure project identity is read from the right files with the right fallbacks.
package projectfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/poruru/appbuild/cli/internal/domain/buildctx"
	"github.com/poruru/appbuild/cli/internal/domain/platform"
	"github.com/poruru/appbuild/cli/internal/domain/session"
	"github.com/poruru/appbuild/cli/internal/infra/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadProjectJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.json"), `{
  "name": "Demo",
  "slug": "demo-app",
  "owner": "acme",
  "android": {"package": "com.acme.demo"},
  "ios": {"bundleIdentifier": "com.acme.demo"}
}`)

	desc, err := Loader{}.LoadProject(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "demo-app", desc.Slug)
	assert.Equal(t, "acme", desc.Owner)
	require.NotNil(t, desc.Android)
	assert.Equal(t, "com.acme.demo", desc.Android.Package)
	require.NotNil(t, desc.IOS)
	assert.Equal(t, "com.acme.demo", desc.IOS.BundleIdentifier)
}

func TestLoadProjectYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.yaml"), "name: Demo\nslug: demo-yaml\n")

	desc, err := Loader{}.LoadProject(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "demo-yaml", desc.Slug)
	assert.Empty(t, desc.Owner)
}

func TestLoadProjectPrefersJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.json"), `{"slug": "from-json"}`)
	writeFile(t, filepath.Join(dir, "app.yaml"), "slug: from-yaml\n")

	desc, err := Loader{}.LoadProject(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "from-json", desc.Slug)
}

func TestLoadProjectErrors(t *testing.T) {
	empty := t.TempDir()
	_, err := Loader{}.LoadProject(context.Background(), empty)
	assert.ErrorIs(t, err, ErrProjectNotFound)

	_, err = Loader{}.LoadProject(context.Background(), filepath.Join(empty, "missing"))
	assert.ErrorIs(t, err, ErrProjectNotFound)

	noSlug := t.TempDir()
	writeFile(t, filepath.Join(noSlug, "app.json"), `{"name": "Demo"}`)
	_, err = Loader{}.LoadProject(context.Background(), noSlug)
	assert.ErrorIs(t, err, ErrMissingSlug)

	broken := t.TempDir()
	writeFile(t, filepath.Join(broken, "app.json"), `{"slug": `)
	_, err = Loader{}.LoadProject(context.Background(), broken)
	assert.Error(t, err)
}

func TestLoadProjectHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Loader{}.LoadProject(ctx, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNativeDetector(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "android"), 0o755))
	writeFile(t, filepath.Join(dir, "ios"), "not a directory")

	detector := NativeDetector{}
	assert.True(t, detector.HasNativeProject(dir, platform.Android))
	assert.False(t, detector.HasNativeProject(dir, platform.IOS))
	assert.False(t, detector.HasNativeProject(dir, platform.Platform("web")))
}

type stubUser struct {
	user *session.User
	err  error
}

func (s stubUser) CurrentUser(context.Context) (*session.User, error) { return s.user, s.err }

func TestResolveAccountNameOrder(t *testing.T) {
	owned := t.TempDir()
	writeFile(t, filepath.Join(owned, "app.json"), `{"slug": "a", "owner": "acme"}`)
	unowned := t.TempDir()
	writeFile(t, filepath.Join(unowned, "app.json"), `{"slug": "b"}`)

	withDefault := func() (config.GlobalConfig, error) {
		cfg := config.DefaultGlobalConfig()
		cfg.DefaultAccount = "configured"
		return cfg, nil
	}
	noDefault := func() (config.GlobalConfig, error) { return config.DefaultGlobalConfig(), nil }

	tests := []struct {
		name     string
		dir      string
		resolver AccountResolver
		want     string
	}{
		{"owner", owned, AccountResolver{Projects: Loader{}, GlobalConfig: withDefault}, "acme"},
		{"default account", unowned, AccountResolver{Projects: Loader{}, GlobalConfig: withDefault}, "configured"},
		{
			"primary account",
			unowned,
			AccountResolver{
				Projects:     Loader{},
				GlobalConfig: noDefault,
				Session:      stubUser{user: &session.User{Username: "jane", PrimaryAccount: "jane-org"}},
			},
			"jane-org",
		},
		{
			"username",
			unowned,
			AccountResolver{Projects: Loader{}, Session: stubUser{user: &session.User{Username: "jane"}}},
			"jane",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.resolver.ResolveAccountName(context.Background(), tc.dir)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveAccountNameErrors(t *testing.T) {
	unowned := t.TempDir()
	writeFile(t, filepath.Join(unowned, "app.json"), `{"slug": "b"}`)

	_, err := AccountResolver{Projects: Loader{}}.ResolveAccountName(context.Background(), unowned)
	assert.ErrorIs(t, err, ErrAccountUnresolved)

	errExpired := errors.New("expired")
	_, err = AccountResolver{Projects: Loader{}, Session: stubUser{err: errExpired}}.
		ResolveAccountName(context.Background(), unowned)
	assert.ErrorIs(t, err, errExpired)
	assert.ErrorIs(t, err, buildctx.ErrSession)

	_, err = AccountResolver{Projects: Loader{}}.ResolveAccountName(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrProjectNotFound)

	_, err = AccountResolver{}.ResolveAccountName(context.Background(), unowned)
	assert.Error(t, err)
}

func TestBuildCommandContextReportsLoggedOutUserAsSessionFailure(t *testing.T) {
	unowned := t.TempDir()
	writeFile(t, filepath.Join(unowned, "app.json"), `{"name": "Demo", "slug": "demo"}`)

	errLoggedOut := errors.New("not logged in")
	loggedOut := stubUser{err: errLoggedOut}
	builder := buildctx.Builder{
		Session:  loggedOut,
		Projects: Loader{},
		Accounts: AccountResolver{
			Projects:     Loader{},
			Session:      loggedOut,
			GlobalConfig: func() (config.GlobalConfig, error) { return config.DefaultGlobalConfig(), nil },
		},
		Native: NativeDetector{},
	}
	wait := true
	in := buildctx.CommandInput{
		RequestedPlatform: platform.SelectAll,
		Profile:           "production",
		ProjectDir:        unowned,
		WaitForBuildEnd:   &wait,
	}

	// Either lookup may fail first; the category must not depend on which.
	for range 200 {
		cmdCtx, err := builder.BuildCommandContext(context.Background(), in)
		require.ErrorIs(t, err, buildctx.ErrSession)
		require.ErrorIs(t, err, errLoggedOut)
		require.NotErrorIs(t, err, buildctx.ErrAccountResolution)
		require.Nil(t, cmdCtx)
	}
}
