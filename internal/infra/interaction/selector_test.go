package interaction

import (
	"errors"
	"os"
	"testing"

	"github.com/charmbracelet/huh"
)

func TestHuhPrompterSelectValueUsesRunner(t *testing.T) {
	orig := runSelectPrompt
	t.Cleanup(func() { runSelectPrompt = orig })

	var gotTitle string
	var gotOptions int
	runSelectPrompt = func(title string, options []huh.Option[string], selected *string) error {
		gotTitle = title
		gotOptions = len(options)
		*selected = options[1].Value
		return nil
	}

	got, err := (HuhPrompter{}).SelectValue("Select platform", []SelectOption{
		{Label: "Android", Value: "android"},
		{Label: "iOS", Value: "ios"},
	})
	if err != nil {
		t.Fatalf("SelectValue() error = %v", err)
	}
	if got != "ios" {
		t.Fatalf("SelectValue() = %q, want %q", got, "ios")
	}
	if gotTitle != "Select platform" || gotOptions != 2 {
		t.Fatalf("title = %q, options = %d", gotTitle, gotOptions)
	}
}

func TestHuhPrompterSelectValueEmptyOptions(t *testing.T) {
	orig := runSelectPrompt
	t.Cleanup(func() { runSelectPrompt = orig })
	runSelectPrompt = func(string, []huh.Option[string], *string) error {
		t.Fatal("runner must not be called without options")
		return nil
	}

	got, err := (HuhPrompter{}).SelectValue("Select platform", nil)
	if err != nil || got != "" {
		t.Fatalf("SelectValue() = %q, %v", got, err)
	}
}

func TestHuhPrompterSelectValueWrapsError(t *testing.T) {
	orig := runSelectPrompt
	t.Cleanup(func() { runSelectPrompt = orig })
	runSelectPrompt = func(string, []huh.Option[string], *string) error {
		return errors.New("tty unavailable")
	}

	_, err := (HuhPrompter{}).SelectValue("Select platform", []SelectOption{{Label: "a", Value: "a"}})
	if err == nil || err.Error() != "prompt select value: tty unavailable" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHuhPrompterConfirm(t *testing.T) {
	orig := runConfirmPrompt
	t.Cleanup(func() { runConfirmPrompt = orig })
	runConfirmPrompt = func(title string, confirmed *bool) error {
		*confirmed = title == "Write build.json?"
		return nil
	}

	ok, err := (HuhPrompter{}).Confirm("Write build.json?")
	if err != nil || !ok {
		t.Fatalf("Confirm() = %v, %v", ok, err)
	}

	runConfirmPrompt = func(string, *bool) error { return errors.New("aborted") }
	if _, err := (HuhPrompter{}).Confirm("x"); err == nil {
		t.Fatal("expected error")
	}
}

func TestCanPromptUsesIsTerminal(t *testing.T) {
	orig := IsTerminal
	t.Cleanup(func() { IsTerminal = orig })

	IsTerminal = func(file *os.File) bool { return file == os.Stdin }
	if CanPrompt() {
		t.Fatal("expected CanPrompt false when stdout is not a terminal")
	}
	IsTerminal = func(*os.File) bool { return true }
	if !CanPrompt() {
		t.Fatal("expected CanPrompt true")
	}
	if orig(nil) {
		t.Fatal("nil file must not be a terminal")
	}
}
