package config

//go:generate mockgen -source=interfaces.go -destination=../mock/filesystem_mock.go -package=mock

// FileSystem is the file access the configuration store needs.
type FileSystem interface {
	// Exists reports whether path exists.
	Exists(path string) (bool, error)
	// ReadFile returns the whole contents of path.
	ReadFile(path string) ([]byte, error)
	// WriteFile creates or truncates path and writes data into it.
	WriteFile(path string, data []byte) error
}
