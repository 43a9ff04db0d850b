// Where: cli/internal/command/app_test.go
// What: Tests for CLI run behavior.
// Why: Ensure command routing remains stable.
package command

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poruru/appbuild/cli/internal/version"
)

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	exitCode := Run([]string{"version"}, Dependencies{Out: &out})
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if got := strings.TrimSpace(out.String()); got != version.GetVersion() {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestRunUnknownFlagFails(t *testing.T) {
	var out bytes.Buffer
	exitCode := Run([]string{"build", "--bogus"}, Dependencies{Out: &out, ErrOut: &out})
	if exitCode == 0 {
		t.Fatalf("expected non-zero exit code for unknown flag")
	}
	if !strings.Contains(out.String(), "✗") {
		t.Fatalf("expected error line, got %q", out.String())
	}
}

func TestRunPlatformFlagWithoutValue(t *testing.T) {
	var out bytes.Buffer
	exitCode := Run([]string{"build", "--platform"}, Dependencies{Out: &out, ErrOut: &out})
	if exitCode != 1 {
		t.Fatalf("expected exit code 1, got %d", exitCode)
	}
	if !strings.Contains(out.String(), "`-p/--platform` expects a value") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRunVerboseRaisesLogLevel(t *testing.T) {
	var out bytes.Buffer
	level := new(slog.LevelVar)
	exitCode := Run([]string{"-v", "version"}, Dependencies{Out: &out, LogLevel: level})
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if level.Level() != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", level.Level())
	}
}

func TestResolveProjectDirPrefersFlag(t *testing.T) {
	dir := t.TempDir()
	got, err := resolveProjectDir(CLI{ProjectDir: dir}, Dependencies{
		Getwd: func() (string, error) { return "/elsewhere", nil },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != dir {
		t.Fatalf("project dir = %q, want %q", got, dir)
	}

	got, err = resolveProjectDir(CLI{}, Dependencies{
		Getwd: func() (string, error) { return "/elsewhere", nil },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/elsewhere" {
		t.Fatalf("project dir = %q, want /elsewhere", got)
	}
}

func TestRunLoadsEnvFile(t *testing.T) {
	env := newTestEnv(t)
	t.Cleanup(func() { _ = os.Unsetenv("APPBUILD_TEST_MARKER") })
	envFile := filepath.Join(env.dir, "custom.env")
	if err := os.WriteFile(envFile, []byte("APPBUILD_TEST_MARKER=loaded\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	exitCode := Run([]string{"--env-file", envFile, "version"}, env.deps)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if got := os.Getenv("APPBUILD_TEST_MARKER"); got != "loaded" {
		t.Fatalf("expected env file to be loaded, got %q", got)
	}
}
