package testutil

import (
	"io/fs"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockFS is a testify mock of types.FS
type MockFS struct {
	mock.Mock
}

func (m *MockFS) Stat(name string) (fs.FileInfo, error) {
	args := m.Called(name)
	if info := args.Get(0); info != nil {
		return info.(fs.FileInfo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFS) ReadFile(name string) ([]byte, error) {
	args := m.Called(name)
	if data := args.Get(0); data != nil {
		return data.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	args := m.Called(name, data, perm)
	return args.Error(0)
}

func (m *MockFS) ReadDir(name string) ([]fs.DirEntry, error) {
	args := m.Called(name)
	if entries := args.Get(0); entries != nil {
		return entries.([]fs.DirEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFS) Mkdir(name string, perm fs.FileMode) error {
	args := m.Called(name, perm)
	return args.Error(0)
}

// FakeFileInfo is a minimal fs.FileInfo for MockFS.Stat results
type FakeFileInfo struct {
	FileName string
	Dir      bool
}

func (f FakeFileInfo) Name() string { return f.FileName }
func (f FakeFileInfo) Size() int64  { return 0 }
func (f FakeFileInfo) Mode() fs.FileMode {
	if f.Dir {
		return fs.ModeDir | 0755
	}
	return 0644
}
func (f FakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f FakeFileInfo) IsDir() bool        { return f.Dir }
func (f FakeFileInfo) Sys() interface{}   { return nil }
