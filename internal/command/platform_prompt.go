// Where: cli/internal/command/platform_prompt.go
// What: Platform selection from flags or an interactive prompt.
// Why: Share selector resolution between build and configure.
package command

import (
	"fmt"
	"strings"

	"github.com/poruru/appbuild/cli/internal/domain/platform"
	"github.com/poruru/appbuild/cli/internal/infra/interaction"
)

func canPrompt(deps Dependencies, nonInteractive bool) bool {
	if nonInteractive || deps.Prompter == nil {
		return false
	}
	check := deps.CanPrompt
	if check == nil {
		check = interaction.CanPrompt
	}
	return check()
}

// resolvePlatform parses the -p flag, prompting when it is empty and a
// terminal is available.
func resolvePlatform(value string, deps Dependencies, nonInteractive bool) (platform.Selector, error) {
	if strings.TrimSpace(value) != "" {
		return platform.ParseSelector(value)
	}
	if !canPrompt(deps, nonInteractive) {
		return "", fmt.Errorf("%w: -p/--platform is required", interaction.ErrNonInteractive)
	}
	options := []interaction.SelectOption{
		{Label: "All", Value: string(platform.SelectAll)},
		{Label: platform.Android.DisplayName(), Value: string(platform.SelectAndroid)},
		{Label: platform.IOS.DisplayName(), Value: string(platform.SelectIOS)},
	}
	selected, err := deps.Prompter.SelectValue("Select platform", options)
	if err != nil {
		return "", err
	}
	return platform.ParseSelector(selected)
}
