package fs

import (
	"os"
	"path/filepath"
	"time"
)

type MockFileInfo struct {
	NameValue  string
	IsDirValue bool
}

func (m MockFileInfo) IsDir() bool        { return m.IsDirValue }
func (m MockFileInfo) ModTime() time.Time { return time.Time{} }
func (m MockFileInfo) Mode() os.FileMode  { return 0o644 }
func (m MockFileInfo) Name() string       { return m.NameValue }
func (m MockFileInfo) Size() int64        { return 0 }
func (m MockFileInfo) Sys() interface{}   { return nil }

// MockFS serves Files from memory. Paths missing from Files are reported as
// not existing unless Err or Info is set.
type MockFS struct {
	Files map[string]string
	Info  *MockFileInfo
	Dir   string
	Err   error
}

func (m MockFS) ReadFile(name string) ([]byte, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if data, ok := m.Files[name]; ok {
		return []byte(data), nil
	}

	return nil, os.ErrNotExist
}

func (m MockFS) Stat(name string) (os.FileInfo, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Info != nil {
		return *m.Info, nil
	}
	if _, ok := m.Files[name]; ok {
		return MockFileInfo{NameValue: filepath.Base(name)}, nil
	}

	return nil, os.ErrNotExist
}

func (m MockFS) Getwd() (string, error) { return m.Dir, m.Err }
