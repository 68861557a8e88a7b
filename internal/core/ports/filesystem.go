package ports

// FileSystem defines the file operations a render needs.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// ReadFile reads the whole file at path.
	ReadFile(path string) ([]byte, error)
	// MkdirAll creates path and any missing parents. It succeeds if path already exists.
	MkdirAll(path string) error
	// WriteFile writes data to path, replacing any existing file.
	WriteFile(path string, data []byte) error
	// Exists reports whether path exists.
	Exists(path string) (bool, error)
}
