package config

import "time"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// FromConfig starts a builder from an existing configuration, e.g. one read by Load.
func FromConfig(cfg *Config) *ConfigBuilder {
	cfg.fillMissing()
	return &ConfigBuilder{cfg: cfg}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithTimeBudget sets the search time budget.
func (b *ConfigBuilder) WithTimeBudget(budget time.Duration) *ConfigBuilder {
	b.cfg.Search.TimeBudget = budget
	return b
}

// WithHumanColour sets the colour the human plays.
func (b *ConfigBuilder) WithHumanColour(choice ColourChoice) *ConfigBuilder {
	b.cfg.Game.HumanColour = choice
	return b
}

// WithPromotion sets the human promotion policy.
func (b *ConfigBuilder) WithPromotion(policy PromotionPolicy) *ConfigBuilder {
	b.cfg.Game.Promotion = policy
	return b
}

// WithComputerOpponent enables or disables the computer player.
func (b *ConfigBuilder) WithComputerOpponent(enabled bool) *ConfigBuilder {
	b.cfg.Game.ComputerOpponent = enabled
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Logging.Level = level
	return b
}

// WithLogFile sets the log file.
func (b *ConfigBuilder) WithLogFile(path string) *ConfigBuilder {
	b.cfg.Logging.File = path
	return b
}

// WithDevelopmentLogging enables human-readable logs.
func (b *ConfigBuilder) WithDevelopmentLogging(enabled bool) *ConfigBuilder {
	b.cfg.Logging.Development = enabled
	return b
}

// WithUIMode sets the front end.
func (b *ConfigBuilder) WithUIMode(mode UIMode) *ConfigBuilder {
	b.cfg.UI.Mode = mode
	return b
}

// WithSVGPath sets the default SVG output file.
func (b *ConfigBuilder) WithSVGPath(path string) *ConfigBuilder {
	b.cfg.UI.SVGPath = path
	return b
}

// WithUnicode enables chess glyphs in text output.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.UI.Unicode = enabled
	return b
}
