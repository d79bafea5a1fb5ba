package config

import (
	"github.com/spf13/afero"
)

const configFileMode = 0o644

type aferoFileSystem struct {
	fs afero.Fs
}

// NewOSFileSystem returns a [FileSystem] backed by the operating system.
func NewOSFileSystem() FileSystem {
	return NewFileSystem(afero.NewOsFs())
}

// NewFileSystem adapts any afero file system, e.g. afero.NewMemMapFs in tests.
func NewFileSystem(fs afero.Fs) FileSystem {
	return &aferoFileSystem{fs: fs}
}

func (a *aferoFileSystem) Exists(path string) (bool, error) {
	return afero.Exists(a.fs, path)
}

func (a *aferoFileSystem) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(a.fs, path)
}

func (a *aferoFileSystem) WriteFile(path string, data []byte) error {
	return afero.WriteFile(a.fs, path, data, configFileMode)
}
