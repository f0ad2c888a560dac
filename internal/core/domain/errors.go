package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidExpression is returned when an expression cannot be parsed as a
	// single-variable real expression.
	ErrInvalidExpression = zerr.New("invalid mathematical expression")

	// ErrComputation is returned when recomputing the sample set fails.
	ErrComputation = zerr.New("error computing function values")

	// ErrEmptyExpression is returned when a plot is requested without an expression.
	ErrEmptyExpression = zerr.New("please enter a function to plot")

	// ErrInvalidWindow is returned when a view window violates x_max > x_min or y_max > y_min.
	ErrInvalidWindow = zerr.New("invalid view window")

	// ErrConfigNotFound is returned when the config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid config value")

	// ErrWatcherFailed is returned when the config file watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to watch config file")
)
