package config

import "errors"

var (
	// ErrConfigWrite indicates that the default configuration file could not
	// be created. The server cannot start without it.
	ErrConfigWrite = errors.New("cannot write default configuration file")
	// ErrInvalidLogLevel is returned for a log level outside
	// trace|debug|info|warn|error.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// ExitError is returned by [ResolveArgs] when the command line cannot be
// used. The caller prints Message and terminates with Code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}
