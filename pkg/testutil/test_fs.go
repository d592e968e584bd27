package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/tint/pkg/filesystem"
	"github.com/arthur-debert/tint/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// WriteFile writes content to path, creating missing parent directories
func WriteFile(t *testing.T, fsys types.FS, path, content string) {
	t.Helper()
	MkdirAll(t, fsys, filepath.Dir(path))
	require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
}

// MkdirAll creates path and any missing parents one level at a time
func MkdirAll(t *testing.T, fsys types.FS, path string) {
	t.Helper()
	path = filepath.Clean(path)
	if path == "/" || path == "." {
		return
	}
	if _, err := fsys.Stat(path); err == nil {
		return
	}
	MkdirAll(t, fsys, filepath.Dir(path))
	require.NoError(t, fsys.Mkdir(path, 0755))
}

// ReadFile returns the content of path as a string
func ReadFile(t *testing.T, fsys types.FS, path string) string {
	t.Helper()
	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
