// cmd/tint/root_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: OS filesystem (t.TempDir), environment variables
// PURPOSE: Test the command line surface end to end

package tint_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/tint/cmd/tint"
	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliEnv struct {
	config    string
	templates string
	output    string
}

func setupCLI(t *testing.T, config string, templates map[string]string) cliEnv {
	t.Helper()

	root := t.TempDir()
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "xdg-config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "xdg-data"))
	t.Setenv("TINT_CONFIG", "")
	t.Setenv("TINT_TEMPLATES", "")
	t.Setenv("TINT_OUTPUT", "")
	t.Setenv("NO_COLOR", "1")

	env := cliEnv{
		config:    filepath.Join(root, "config.toml"),
		templates: filepath.Join(root, "templates"),
		output:    filepath.Join(root, "output"),
	}

	require.NoError(t, os.WriteFile(env.config, []byte(config), 0644))
	require.NoError(t, os.Mkdir(env.templates, 0755))
	for name, content := range templates {
		require.NoError(t, os.WriteFile(filepath.Join(env.templates, name), []byte(content), 0644))
	}

	return env
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := tint.NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	env := setupCLI(t, testutil.BasicConfig, map[string]string{"colors.conf": "background: {bg}"})

	out, err := run(t, "render", "-c", env.config, "-t", env.templates, "-o", env.output)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(env.output, "colors.conf"))
	require.NoError(t, err)
	assert.Equal(t, "background: #000000", string(content))

	assert.Contains(t, out, "colors.conf")
	assert.Contains(t, out, "1 template rendered")
}

func TestRender_Environment(t *testing.T) {
	env := setupCLI(t, testutil.BasicConfig, map[string]string{"a": "{fg}"})
	t.Setenv("TINT_CONFIG", env.config)
	t.Setenv("TINT_TEMPLATES", env.templates)
	t.Setenv("TINT_OUTPUT", env.output)

	_, err := run(t, "render")
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(env.output, "a"))
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", string(content))
}

func TestRender_DryRun(t *testing.T) {
	env := setupCLI(t, testutil.BasicConfig, map[string]string{"a": "{bg}"})

	out, err := run(t, "render", "--dry-run", "-c", env.config, "-t", env.templates, "-o", env.output)
	require.NoError(t, err)
	assert.Contains(t, out, "would write")

	_, statErr := os.Stat(env.output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRender_Errors(t *testing.T) {
	env := setupCLI(t, "[colorschemes.dark]\nbg = \"#000\"", map[string]string{"a": "{bg}"})

	_, err := run(t, "render", "-c", env.config, "-t", env.templates, "-o", env.output)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoDefaultColorscheme))

	_, err = run(t, "render", "-c", filepath.Join(env.templates, "missing.toml"), "-t", env.templates, "-o", env.output)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigIO))
}

func TestSchemes(t *testing.T) {
	env := setupCLI(t, testutil.BasicConfig, nil)

	out, err := run(t, "schemes", "-c", env.config)
	require.NoError(t, err)
	assert.Equal(t, "default (2 colors)\ndark (3 colors) inherits default\n", out)
}

func TestShow(t *testing.T) {
	env := setupCLI(t, testutil.BasicConfig, nil)

	out, err := run(t, "show", "dark", "-c", env.config, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "foreground #ffffff")

	out, err = run(t, "show", "dark", "-c", env.config, "--format", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "[colorschemes.dark]")

	out, err = run(t, "show", "dark", "-c", env.config)
	require.NoError(t, err)
	assert.Contains(t, out, "foreground #ffffff", "auto format on a buffer is plain text")

	_, err = run(t, "show", "light", "-c", env.config)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownColorscheme))

	_, err = run(t, "show", "dark", "-c", env.config, "--format", "json")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	setupCLI(t, testutil.BasicConfig, nil)

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tint dev")
}

func TestCompletion(t *testing.T) {
	setupCLI(t, testutil.BasicConfig, nil)

	out, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "tint")

	_, err = run(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestNoCommand(t *testing.T) {
	setupCLI(t, testutil.BasicConfig, nil)

	_, err := run(t)
	assert.Error(t, err)
}
