package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/lookahead-chess/internal/errors"
)

// OutputFormat represents the game record format.
type OutputFormat int

const (
	PGN  OutputFormat = iota // Portable Game Notation
	JSON                     // JSON game record
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case PGN:
		return "pgn"
	case JSON:
		return "json"
	}
	return "unknown"
}

// ParseOutputFormat converts a format name to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "pgn":
		return PGN, nil
	case "json":
		return JSON, nil
	}
	return 0, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to the game record.
type OutputConfig struct {
	// Format specifies the record format (PGN or JSON)
	Format OutputFormat

	// Event and Site fill the corresponding PGN tags
	Event string
	Site  string

	// MaxLineLength wraps PGN movetext
	MaxLineLength uint

	// OutputEvaluation includes engine evaluations in the record
	OutputEvaluation bool

	// AddFENComments adds the position after each move to JSON output
	AddFENComments bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        PGN,
		Event:         "Casual game",
		Site:          "?",
		MaxLineLength: 80,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format != PGN && o.Format != JSON {
		return fmt.Errorf("output format %d out of range: %w", o.Format, errors.ErrInvalidConfig)
	}
	return nil
}
