// Package perft counts move-generation leaf nodes and compares the counts
// with independent move generators.
package perft

import (
	"github.com/lgbarn/lookahead-chess/internal/chess"
	"github.com/lgbarn/lookahead-chess/internal/engine"
)

// Count returns the number of legal move sequences of length depth from
// board. The board is restored before returning.
func Count(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := engine.ValidMoves(board, board.ToMove, nil)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		engine.WithMove(board, m, func() {
			nodes += Count(board, depth-1)
		})
	}
	return nodes
}

// Divide returns the Count below each root move, keyed by the move in UCI
// form.
func Divide(board *chess.Board, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range engine.ValidMoves(board, board.ToMove, nil) {
		engine.WithMove(board, m, func() {
			result[m.UCI()] = Count(board, depth-1)
		})
	}
	return result
}
