// pkg/core/inspect_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: In-memory FS
// PURPOSE: Test colorscheme listing and lookup without rendering

package core_test

import (
	"testing"

	"github.com/arthur-debert/tint/pkg/core"
	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListColorschemes(t *testing.T) {
	ws := testutil.NewWorkspace(t, testutil.BasicConfig, nil)

	summaries, err := core.ListColorschemes(optionsFor(ws))
	require.NoError(t, err)

	require.Len(t, summaries, 2)
	assert.Equal(t, "default", summaries[0].Name)
	assert.Empty(t, summaries[0].Inherit)
	assert.Equal(t, 2, summaries[0].Colors)

	assert.Equal(t, "dark", summaries[1].Name)
	assert.Equal(t, []string{"default"}, summaries[1].Inherit)
	assert.Equal(t, 3, summaries[1].Colors)
}

func TestShowColorscheme(t *testing.T) {
	ws := testutil.NewWorkspace(t, testutil.BasicConfig, nil)

	scheme, err := core.ShowColorscheme(optionsFor(ws), "dark")
	require.NoError(t, err)
	assert.Equal(t, "dark", scheme.Name())
	assert.Equal(t, []string{"accent", "bg", "foreground"}, scheme.Keys())

	_, err = core.ShowColorscheme(optionsFor(ws), "light")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownColorscheme))
}

func TestInspect_Errors(t *testing.T) {
	ws := testutil.NewWorkspace(t, "[colorschemes.dark]\nbg = \"#000\"", nil)

	_, err := core.ListColorschemes(optionsFor(ws))
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoDefaultColorscheme))

	_, err = core.ShowColorscheme(core.GenerateOptions{FileSystem: ws.FS}, "default")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
