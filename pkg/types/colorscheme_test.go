// pkg/types/colorscheme_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test that compiled colorschemes are isolated from caller maps

package types_test

import (
	"testing"

	"github.com/arthur-debert/tint/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestCompiledColorscheme(t *testing.T) {
	colors := map[string]string{"fg": "#fff", "bg": "#000"}
	scheme := types.NewCompiledColorscheme("dark", colors)

	colors["bg"] = "changed"
	v, ok := scheme.Get("bg")
	assert.True(t, ok)
	assert.Equal(t, "#000", v, "constructor copies its input")

	out := scheme.Colors()
	out["fg"] = "changed"
	v, _ = scheme.Get("fg")
	assert.Equal(t, "#fff", v, "Colors returns a copy")

	_, ok = scheme.Get("cursor")
	assert.False(t, ok)

	assert.Equal(t, "dark", scheme.Name())
	assert.Equal(t, 2, scheme.Len())
	assert.Equal(t, []string{"bg", "fg"}, scheme.Keys())
}
