package config

// UIMode selects the front end.
type UIMode string

const (
	// ModeREPL reads coordinate moves line by line.
	ModeREPL UIMode = "repl"

	// ModeTUI draws the board in the terminal and takes mouse clicks.
	ModeTUI UIMode = "tui"
)

// UIConfig holds settings for the presentation layer.
type UIConfig struct {
	Mode UIMode `yaml:"mode"`

	// SVGPath is the default file for the svg command
	SVGPath string `yaml:"svg_path"`

	// Unicode draws pieces as chess glyphs instead of letters
	Unicode bool `yaml:"unicode"`
}

// NewUIConfig creates a UIConfig with default values.
func NewUIConfig() *UIConfig {
	return &UIConfig{
		Mode:    ModeREPL,
		SVGPath: "board.svg",
	}
}

func (c *UIConfig) validate() error {
	switch c.Mode {
	case ModeREPL, ModeTUI:
		return nil
	}
	return invalid("ui.mode", "%q is not repl or tui", c.Mode)
}
