package config

import "time"

// SearchConfig holds settings for the computer player's search.
type SearchConfig struct {
	// Depth is the number of plies searched per computer move
	Depth int `yaml:"depth"`

	// TimeBudget caps the wall-clock time of one computer move
	TimeBudget time.Duration `yaml:"time_budget"`
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:      4,
		TimeBudget: 3000 * time.Millisecond,
	}
}

// MaxDepth bounds the configurable search depth.
const MaxDepth = 8

func (c *SearchConfig) validate() error {
	if c.Depth < 1 || c.Depth > MaxDepth {
		return invalid("search.depth", "%d not in [1, %d]", c.Depth, MaxDepth)
	}
	if c.TimeBudget <= 0 {
		return invalid("search.time_budget", "%s must be positive", c.TimeBudget)
	}
	return nil
}
