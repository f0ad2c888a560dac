package domain

// ConfigFileName is the config file looked up in the working directory.
const ConfigFileName = "curve.yaml"

// LogConfig controls the logger.
type LogConfig struct {
	Level string
	JSON  bool
	// File receives log output while the TUI owns the terminal.
	File string
}

// Config is the startup configuration.
type Config struct {
	Expression string
	Color      string
	Settings   Settings
	Log        LogConfig
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Color:    DefaultColorName(),
		Settings: DefaultSettings(),
		Log:      LogConfig{Level: "info"},
	}
}
