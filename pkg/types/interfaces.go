package types

import (
	"io/fs"
)

// FS is the filesystem interface required for tint operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)

	// Mkdir creates a single directory level; the parent must exist.
	Mkdir(name string, perm fs.FileMode) error
}
