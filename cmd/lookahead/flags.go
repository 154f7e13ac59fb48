// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/lookahead-chess/internal/config"
	"github.com/lgbarn/lookahead-chess/internal/errors"
)

var (
	// Search options
	policyName = flag.String("policy", "minimax", "Move selection: random, greedy, minimax")
	workers    = flag.Int("workers", 0, "Minimax workers (0 = one per root move)")
	seed       = flag.Int64("seed", 0, "Random seed for tie-breaks (0 = time based)")

	// Game options
	humanSide = flag.String("human", "white", "Side played by the human: white, black, none")
	maxPlies  = flag.Int("plies", 0, "Stop the game after N plies (0 = no limit)")
	startFEN  = flag.String("fen", "", "Start from this FEN position")
	moveList  = flag.String("moves", "", "Moves to play before the game starts (e.g. \"e4 e5 Nf3\")")

	// Perft
	perftDepth  = flag.Int("perft", 0, "Count leaf nodes to depth N and exit")
	verifyPerft = flag.Bool("verify", false, "Cross-check -perft against reference move generators")

	// Output options
	outputFile   = flag.String("o", "", "Output file for the game record (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	outputFormat = flag.String("format", "pgn", "Record format: pgn, json")
	lineLength   = flag.Int("w", 80, "Maximum PGN line length")
	evaluations  = flag.Bool("evals", false, "Record engine evaluations with each move")
	fenComments  = flag.Bool("fencomments", false, "Add the position after each move to JSON output")
	eventName    = flag.String("event", "Casual game", "Event tag of the game record")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0 quiet, 1 moves and results, 2 search diagnostics")
	logFile   = flag.String("l", "", "Write diagnostics to file")
	appendLog = flag.String("L", "", "Append diagnostics to file")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applySearchFlags(cfg); err != nil {
		return err
	}
	if err := applyPlayFlags(cfg); err != nil {
		return err
	}
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return cfg.Validate()
}

// applySearchFlags configures move selection.
func applySearchFlags(cfg *config.Config) error {
	policy, err := config.ParsePolicy(*policyName)
	if err != nil {
		return err
	}
	cfg.Search.Policy = policy
	cfg.Search.Workers = *workers
	cfg.Search.Seed = *seed
	return nil
}

// applyPlayFlags configures the game session.
func applyPlayFlags(cfg *config.Config) error {
	if err := cfg.Play.SetHuman(*humanSide); err != nil {
		return err
	}
	cfg.Play.MaxPlies = *maxPlies
	cfg.Play.StartFEN = strings.TrimSpace(*startFEN)
	cfg.Play.Moves = splitMoves(*moveList)
	return nil
}

// applyOutputFlags configures the game record.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	if *lineLength < 0 {
		return fmt.Errorf("line length (%d) must not be negative: %w", *lineLength, errors.ErrInvalidConfig)
	}
	cfg.Output.Format = format
	cfg.Output.MaxLineLength = uint(*lineLength)
	cfg.Output.OutputEvaluation = *evaluations
	cfg.Output.AddFENComments = *fenComments
	cfg.Output.Event = *eventName
	cfg.OutputFilename = *outputFile
	return nil
}

// splitMoves splits a move list on whitespace and commas, dropping move
// numbers such as "1." or "12..." whether or not they are attached.
func splitMoves(list string) []string {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ','
	})
	moves := make([]string, 0, len(fields))
	for _, f := range fields {
		if i := strings.LastIndexByte(f, '.'); i >= 0 {
			f = f[i+1:]
		}
		if f == "" {
			continue
		}
		moves = append(moves, f)
	}
	return moves
}
