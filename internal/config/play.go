package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/lookahead-chess/internal/chess"
	"github.com/lgbarn/lookahead-chess/internal/errors"
)

// PlayConfig holds settings for a game session.
type PlayConfig struct {
	// HumanPlays is false for engine self-play.
	HumanPlays  bool
	HumanColour chess.Colour

	// MaxPlies ends the game as unfinished after this many plies (0 = no limit).
	MaxPlies int

	// StartFEN is the starting position ("" = standard position).
	StartFEN string

	// Moves are played from the start position before the session begins.
	Moves []string
}

// NewPlayConfig creates a PlayConfig with default values: the human plays
// White against the engine.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{
		HumanPlays:  true,
		HumanColour: chess.White,
	}
}

// SetHuman sets the human side from "white", "black" or "none".
func (p *PlayConfig) SetHuman(side string) error {
	switch strings.ToLower(side) {
	case "white", "w":
		p.HumanPlays, p.HumanColour = true, chess.White
	case "black", "b":
		p.HumanPlays, p.HumanColour = true, chess.Black
	case "none", "":
		p.HumanPlays = false
	default:
		return fmt.Errorf("unknown side %q: %w", side, errors.ErrInvalidConfig)
	}
	return nil
}

// Validate checks that the play configuration is valid.
func (p *PlayConfig) Validate() error {
	if p.MaxPlies < 0 {
		return fmt.Errorf("ply limit (%d) must not be negative: %w", p.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}
