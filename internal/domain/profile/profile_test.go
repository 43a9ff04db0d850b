// Where: cli/internal/domain/profile/profile_test.go
// What: Tests for profile variants and table lookup.
// Why: Ensure variant tags and missing entries behave as expected.
package profile

import (
	"testing"

	"github.com/poruru/appbuild/cli/internal/domain/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantTags(t *testing.T) {
	assert.Equal(t, platform.Android, (&Android{}).Platform())
	assert.Equal(t, platform.IOS, (&IOS{}).Platform())
}

func TestTableLookup(t *testing.T) {
	table := Table{platform.Android: &Android{BuildType: "apk"}, platform.IOS: nil}

	bp, ok := table.Lookup(platform.Android)
	require.True(t, ok)
	assert.Equal(t, "apk", bp.(*Android).BuildType)

	_, ok = table.Lookup(platform.IOS)
	assert.False(t, ok, "nil entries count as missing")

	var empty Table
	_, ok = empty.Lookup(platform.Android)
	assert.False(t, ok)
}

func TestDefaultMatchesPlatform(t *testing.T) {
	for _, p := range platform.All() {
		bp := Default(p)
		require.NotNil(t, bp)
		assert.Equal(t, p, bp.Platform())
	}
	assert.Nil(t, Default(platform.Platform("web")))
}
