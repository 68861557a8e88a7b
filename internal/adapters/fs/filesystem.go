// Package fs provides file system adapters for reading templates, writing pages and walking
// bundle output directories.
package fs

import (
	"github.com/spf13/afero"
	"go.trai.ch/stitch/internal/core/ports"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem on top of an afero.Fs.
type FileSystem struct {
	fs afero.Fs
}

// New creates a FileSystem backed by fsys.
func New(fsys afero.Fs) *FileSystem {
	return &FileSystem{fs: fsys}
}

// NewOS creates a FileSystem backed by the operating system.
func NewOS() *FileSystem {
	return New(afero.NewOsFs())
}

// ReadFile reads the whole file at path.
func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(f.fs, path)
}

// MkdirAll creates path and any missing parents.
func (f *FileSystem) MkdirAll(path string) error {
	return f.fs.MkdirAll(path, dirPerm)
}

// WriteFile writes data to path, truncating an existing file.
func (f *FileSystem) WriteFile(path string, data []byte) error {
	return afero.WriteFile(f.fs, path, data, filePerm)
}

// Exists reports whether path exists.
func (f *FileSystem) Exists(path string) (bool, error) {
	return afero.Exists(f.fs, path)
}
