package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/tint/pkg/types"
)

// Workspace is a ready-to-run layout of config file, templates directory and
// output root
type Workspace struct {
	FS           types.FS
	Root         string
	ConfigPath   string
	TemplatesDir string
	OutputDir    string
}

// NewWorkspace lays out config and templates under /work on an in-memory
// filesystem. The output directory is not created.
func NewWorkspace(t *testing.T, config string, templates map[string]string) *Workspace {
	t.Helper()
	return NewWorkspaceOn(t, NewTestFS(), "/work", config, templates)
}

// NewWorkspaceOn lays out a workspace under root on fsys
func NewWorkspaceOn(t *testing.T, fsys types.FS, root, config string, templates map[string]string) *Workspace {
	t.Helper()

	ws := &Workspace{
		FS:           fsys,
		Root:         root,
		ConfigPath:   filepath.Join(root, "config.toml"),
		TemplatesDir: filepath.Join(root, "templates"),
		OutputDir:    filepath.Join(root, "output"),
	}

	WriteFile(t, fsys, ws.ConfigPath, config)
	MkdirAll(t, fsys, ws.TemplatesDir)
	for name, content := range templates {
		WriteFile(t, fsys, filepath.Join(ws.TemplatesDir, name), content)
	}

	return ws
}

// Output returns the content of a file in the output directory
func (w *Workspace) Output(t *testing.T, name string) string {
	t.Helper()
	return ReadFile(t, w.FS, filepath.Join(w.OutputDir, name))
}

// BasicConfig is a small configuration with inheritance and a rename
const BasicConfig = `
[colorschemes.default]
bg = "#000000"
fg = "#ffffff"

[colorschemes.dark]
accent = "#ff0000"

[colorschemes.dark.settings]
inherit = ["default"]
rename = { fg = "foreground" }
`
