package config

import "strings"

// LoggingConfig holds settings for the structured logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn or error
	Level string `yaml:"level"`

	// File receives the log; empty means standard error
	File string `yaml:"file"`

	// Development switches to human-readable console output
	Development bool `yaml:"development"`
}

// NewLoggingConfig creates a LoggingConfig with default values.
func NewLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level: "info",
	}
}

func (c *LoggingConfig) validate() error {
	c.Level = strings.ToLower(c.Level)
	switch c.Level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return invalid("logging.level", "unknown level %q", c.Level)
}
