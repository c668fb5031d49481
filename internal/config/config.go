// Package config provides the configuration of a chessduel session.
//
// Values come from three layers, later ones winning: the defaults returned by
// NewConfig, an optional YAML file read by Load, and command-line flags applied
// through ConfigBuilder.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	chesserrors "github.com/lgbarn/chessduel/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Search  *SearchConfig  `yaml:"search"`
	Game    *GameConfig    `yaml:"game"`
	Logging *LoggingConfig `yaml:"logging"`
	UI      *UIConfig      `yaml:"ui"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:  NewSearchConfig(),
		Game:    NewGameConfig(),
		Logging: NewLoggingConfig(),
		UI:      NewUIConfig(),
	}
}

// Load reads a YAML configuration file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, chesserrors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, chesserrors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
// Sections and keys missing from the document keep their default values.
func Parse(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, chesserrors.Wrap(chesserrors.ErrInvalidConfig, err.Error())
	}
	cfg.fillMissing()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fillMissing restores default sections removed by an explicit null in the file.
func (c *Config) fillMissing() {
	if c.Search == nil {
		c.Search = NewSearchConfig()
	}
	if c.Game == nil {
		c.Game = NewGameConfig()
	}
	if c.Logging == nil {
		c.Logging = NewLoggingConfig()
	}
	if c.UI == nil {
		c.UI = NewUIConfig()
	}
}

// Validate checks every section, returning the first problem found wrapped
// around ErrInvalidConfig.
func (c *Config) Validate() error {
	c.fillMissing()
	for _, v := range []interface{ validate() error }{c.Search, c.Game, c.Logging, c.UI} {
		if err := v.validate(); err != nil {
			return err
		}
	}
	return nil
}

// invalid builds an ErrInvalidConfig error for the named key.
func invalid(key string, format string, args ...interface{}) error {
	return chesserrors.Wrapf(chesserrors.ErrInvalidConfig, key+": "+format, args...)
}
