// Where: cli/internal/domain/platform/platform.go
// What: Target platforms and the build command's platform selector.
// Why: Give the build flow a closed set of platforms to key profiles and contexts by.
package platform

import (
	"fmt"
	"strings"
)

// Platform is a single concrete build target.
type Platform string

const (
	Android Platform = "android"
	IOS     Platform = "ios"
)

// All returns every concrete platform in canonical order.
func All() []Platform {
	return []Platform{Android, IOS}
}

// Valid reports whether p is one of the known platforms.
func (p Platform) Valid() bool {
	return p == Android || p == IOS
}

// DisplayName returns the human-readable platform name used in messages.
func (p Platform) DisplayName() string {
	switch p {
	case Android:
		return "Android"
	case IOS:
		return "iOS"
	default:
		return string(p)
	}
}

func (p Platform) String() string {
	return string(p)
}

// Parse converts user input into a Platform. Matching is case-insensitive.
func Parse(value string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(value)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown platform %q (expected android or ios)", value)
	}
	return p, nil
}

// Selector is the platform choice requested on the command line.
type Selector string

const (
	SelectAndroid Selector = "android"
	SelectIOS     Selector = "ios"
	SelectAll     Selector = "all"
)

// SelectorValues lists accepted selector spellings for flag help and prompts.
var SelectorValues = []string{string(SelectAndroid), string(SelectIOS), string(SelectAll)}

// ParseSelector converts user input into a Selector.
func ParseSelector(value string) (Selector, error) {
	s := Selector(strings.ToLower(strings.TrimSpace(value)))
	if !s.Valid() {
		return "", fmt.Errorf("unknown platform %q (expected android, ios, or all)", value)
	}
	return s, nil
}

// Valid reports whether s is a known selector.
func (s Selector) Valid() bool {
	return s == SelectAndroid || s == SelectIOS || s == SelectAll
}

// Platforms expands the selector into concrete platforms.
func (s Selector) Platforms() []Platform {
	switch s {
	case SelectAndroid:
		return []Platform{Android}
	case SelectIOS:
		return []Platform{IOS}
	case SelectAll:
		return All()
	default:
		return nil
	}
}

// Includes reports whether the selector targets p.
func (s Selector) Includes(p Platform) bool {
	for _, candidate := range s.Platforms() {
		if candidate == p {
			return true
		}
	}
	return false
}
