package config

import "strings"

// ColourChoice selects which colour the human plays.
type ColourChoice string

const (
	PlayWhite  ColourChoice = "white"
	PlayBlack  ColourChoice = "black"
	PlayRandom ColourChoice = "random"
)

// PromotionPolicy selects how a human pawn reaching the last rank is promoted.
type PromotionPolicy string

const (
	// PromoteAuto always promotes to a queen.
	PromoteAuto PromotionPolicy = "auto"

	// PromoteChoose queens the pawn and waits for the human to confirm or
	// pick another piece. Computer pawns always become queens.
	PromoteChoose PromotionPolicy = "choose"
)

// GameConfig holds settings for a game session.
type GameConfig struct {
	// HumanColour is the colour the human plays
	HumanColour ColourChoice `yaml:"human_colour"`

	// Promotion is the human's promotion policy
	Promotion PromotionPolicy `yaml:"promotion"`

	// ComputerOpponent makes the computer play the other colour.
	// When false both colours are moved by hand.
	ComputerOpponent bool `yaml:"computer_opponent"`
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		HumanColour:      PlayWhite,
		Promotion:        PromoteAuto,
		ComputerOpponent: true,
	}
}

func (c *GameConfig) validate() error {
	c.HumanColour = ColourChoice(strings.ToLower(string(c.HumanColour)))
	switch c.HumanColour {
	case PlayWhite, PlayBlack, PlayRandom:
	default:
		return invalid("game.human_colour", "%q is not white, black or random", c.HumanColour)
	}

	c.Promotion = PromotionPolicy(strings.ToLower(string(c.Promotion)))
	switch c.Promotion {
	case PromoteAuto, PromoteChoose:
	default:
		return invalid("game.promotion", "%q is not auto or choose", c.Promotion)
	}
	return nil
}
