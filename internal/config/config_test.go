package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lgbarn/lookahead-chess/internal/chess"
	chesserrors "github.com/lgbarn/lookahead-chess/internal/errors"
)

// TestConfig_Defaults verifies NewConfig has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil {
		t.Error("output and log streams should default to stdout and stderr")
	}
	if cfg.Search.Policy != Minimax {
		t.Errorf("Search.Policy = %v, want %v", cfg.Search.Policy, Minimax)
	}
	if cfg.Search.Workers != 0 {
		t.Errorf("Search.Workers = %d, want 0", cfg.Search.Workers)
	}
	if cfg.Output.Format != PGN {
		t.Errorf("Output.Format = %v, want %v", cfg.Output.Format, PGN)
	}
	if !cfg.Play.HumanPlays || cfg.Play.HumanColour != chess.White {
		t.Error("human should play White by default")
	}
	if cfg.Play.MaxPlies != 0 {
		t.Errorf("Play.MaxPlies = %d, want 0", cfg.Play.MaxPlies)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"random", Random, false},
		{"greedy", Greedy, false},
		{"MiniMax", Minimax, false},
		{"alphabeta", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, chesserrors.ErrInvalidConfig) {
					t.Errorf("error %v should wrap ErrInvalidConfig", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParsePolicy(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got.String() != policyNames[tt.want] {
				t.Errorf("String() = %q", got.String())
			}
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	for _, f := range []OutputFormat{PGN, JSON} {
		got, err := ParseOutputFormat(f.String())
		if err != nil || got != f {
			t.Errorf("ParseOutputFormat(%q) = %v, %v", f.String(), got, err)
		}
	}
	if _, err := ParseOutputFormat("epd"); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("ParseOutputFormat(epd) error = %v, want ErrInvalidConfig", err)
	}
}

func TestPlayConfig_SetHuman(t *testing.T) {
	tests := []struct {
		side       string
		wantPlays  bool
		wantColour chess.Colour
		wantErr    bool
	}{
		{"white", true, chess.White, false},
		{"b", true, chess.Black, false},
		{"none", false, chess.White, false},
		{"purple", true, chess.White, true},
	}

	for _, tt := range tests {
		t.Run(tt.side, func(t *testing.T) {
			p := NewPlayConfig()
			err := p.SetHuman(tt.side)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetHuman(%q) error = %v, wantErr %v", tt.side, err, tt.wantErr)
			}
			if p.HumanPlays != tt.wantPlays {
				t.Errorf("HumanPlays = %v, want %v", p.HumanPlays, tt.wantPlays)
			}
			if p.HumanPlays && p.HumanColour != tt.wantColour {
				t.Errorf("HumanColour = %v, want %v", p.HumanColour, tt.wantColour)
			}
		})
	}
}

// TestConfig_Validate verifies configuration validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"explicit workers", func(c *Config) { c.Search.Workers = 4 }, false},
		{"negative workers", func(c *Config) { c.Search.Workers = -1 }, true},
		{"policy out of range", func(c *Config) { c.Search.Policy = Policy(9) }, true},
		{"format out of range", func(c *Config) { c.Output.Format = OutputFormat(7) }, true},
		{"negative ply limit", func(c *Config) { c.Play.MaxPlies = -3 }, true},
		{"ply limit", func(c *Config) { c.Play.MaxPlies = 200 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("error %v should wrap ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	log := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithPolicy(Greedy).
		WithWorkers(3).
		WithSeed(42).
		WithOutputFormat(JSON).
		WithEvaluations(true).
		WithSelfPlay().
		WithMaxPlies(80).
		WithStartFEN("8/8/8/8/8/8/8/K6k w - - 0 1").
		WithOutput(out).
		WithLog(log).
		WithVerbosity(2).
		Build()

	if cfg.Search.Policy != Greedy || cfg.Search.Workers != 3 || cfg.Search.Seed != 42 {
		t.Errorf("Search = %+v", *cfg.Search)
	}
	if cfg.Output.Format != JSON || !cfg.Output.OutputEvaluation {
		t.Errorf("Output = %+v", *cfg.Output)
	}
	if cfg.Play.HumanPlays {
		t.Error("WithSelfPlay should clear HumanPlays")
	}
	if cfg.Play.MaxPlies != 80 || cfg.Play.StartFEN == "" {
		t.Errorf("Play = %+v", *cfg.Play)
	}
	if cfg.OutputFile != out || cfg.LogFile != log {
		t.Error("builder did not set output streams")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
}
