package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/lookahead-chess/internal/errors"
)

// Policy selects how the engine chooses its move.
type Policy int

const (
	Random  Policy = iota // Uniformly random legal move
	Greedy                // Best static evaluation one ply ahead
	Minimax               // Two-ply minimax over parallel root moves
)

var policyNames = []string{"random", "greedy", "minimax"}

// String returns the flag spelling of the policy.
func (p Policy) String() string {
	if int(p) >= 0 && int(p) < len(policyNames) {
		return policyNames[p]
	}
	return "unknown"
}

// ParsePolicy converts a policy name to a Policy.
func ParsePolicy(s string) (Policy, error) {
	for i, name := range policyNames {
		if strings.EqualFold(s, name) {
			return Policy(i), nil
		}
	}
	return 0, fmt.Errorf("unknown policy %q: %w", s, errors.ErrInvalidConfig)
}

// SearchConfig holds settings for move selection.
type SearchConfig struct {
	Policy Policy

	// Workers bounds the minimax fan-out; 0 means one per root move.
	Workers int

	// Seed for tie-breaks and the random policy. 0 picks a time-based seed.
	Seed int64
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{Policy: Minimax}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Policy < Random || s.Policy > Minimax {
		return fmt.Errorf("policy %d out of range: %w", s.Policy, errors.ErrInvalidConfig)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers (%d) must not be negative: %w", s.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
