package ports

import "io"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string)
	Warn(msg string)
	Error(err error)
	// SetOutput redirects log output. A nil writer restores stderr.
	SetOutput(w io.Writer)
	// SetJSON switches between JSON and pretty output.
	SetJSON(enable bool)
	// SetLevel sets the minimum level: debug, info, warn or error.
	SetLevel(level string) error
}
