package main

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/lgbarn/lookahead-chess/internal/chess"
	"github.com/lgbarn/lookahead-chess/internal/config"
	"github.com/lgbarn/lookahead-chess/internal/engine"
	"github.com/lgbarn/lookahead-chess/internal/perft"
	"github.com/lgbarn/lookahead-chess/internal/session"
)

// startBoard sets up the configured start position and plays the
// configured moves on it.
func startBoard(cfg *config.Config) (*chess.Board, error) {
	board := chess.NewInitialBoard()
	if cfg.Play.StartFEN != "" {
		var err error
		if board, err = engine.NewBoardFromFEN(cfg.Play.StartFEN); err != nil {
			return nil, err
		}
	}
	if err := session.Replay(board, cfg.Play.Moves); err != nil {
		return nil, err
	}
	board.ResetHistory()
	return board, nil
}

// runPerft prints the divided node count of the start position, or with
// verify the comparison against the reference generators.
func runPerft(cfg *config.Config, depth int, verify bool) error {
	board, err := startBoard(cfg)
	if err != nil {
		return err
	}

	if verify {
		report, err := perft.Verify(board, depth)
		if err != nil {
			return err
		}
		report.Write(cfg.OutputFile)
		if !report.OK() {
			return fmt.Errorf("perft %d: %d root move(s) disagree", depth, len(report.Mismatches))
		}
		return nil
	}

	start := time.Now()
	divide := perft.Divide(board, depth)
	elapsed := time.Since(start)

	total := writeDivide(cfg.OutputFile, divide)
	fmt.Fprintf(cfg.OutputFile, "\nNodes searched: %d\n", total)

	if cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "perft %d: %v, nodes/s: %.0f\n",
			depth, elapsed, float64(total)/elapsed.Seconds())
	}
	return nil
}

// writeDivide prints one "move: count" line per root move in move order and
// returns the total.
func writeDivide(w io.Writer, divide map[string]uint64) uint64 {
	moves := make([]string, 0, len(divide))
	for m := range divide {
		moves = append(moves, m)
	}
	sort.Strings(moves)

	var total uint64
	for _, m := range moves {
		fmt.Fprintf(w, "%s: %d\n", m, divide[m])
		total += divide[m]
	}
	return total
}
