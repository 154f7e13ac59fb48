// Package eval scores chess positions with per-square piece values.
package eval

import (
	"sync/atomic"

	"github.com/lgbarn/lookahead-chess/internal/chess"
	"github.com/lgbarn/lookahead-chess/internal/engine"
)

const (
	// CheckBonus is added when the side to move is in check.
	CheckBonus = 2.0

	// StalematePenalty pulls a stalemated score toward zero.
	StalematePenalty = 5.0
)

// Evaluator computes static evaluations and counts how many it has made.
// It is safe for concurrent use on distinct boards.
type Evaluator struct {
	nodes atomic.Int64
}

// New creates an Evaluator with a zero node count.
func New() *Evaluator {
	return &Evaluator{}
}

// Evaluate returns the static score of the position. The material sum is
// always White minus Black; perspective only decides the sign of the
// check bonus and the direction of the stalemate penalty.
func (e *Evaluator) Evaluate(board *chess.Board, perspective chess.Colour) float64 {
	e.nodes.Add(1)

	score := Material(board)

	correction := 0.0
	if engine.InCheck(board, board.ToMove) {
		correction += CheckBonus
	}

	if perspective == chess.White {
		score += correction
		if board.StaleMate && score > 0 {
			score -= StalematePenalty
		}
	} else {
		score -= correction
		if board.StaleMate && score < 0 {
			score += StalematePenalty
		}
	}
	return score
}

// Score implements engine.Scorer.
func (e *Evaluator) Score(board *chess.Board, perspective chess.Colour) float64 {
	return e.Evaluate(board, perspective)
}

// Material sums the piece-square values of the board: White pieces add
// their table value, Black pieces subtract the value at the mirrored square.
func Material(board *chess.Board) float64 {
	var score float64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if !chess.IsOccupied(piece) {
				continue
			}
			table := pieceTable(chess.ExtractPiece(piece))
			if table == nil {
				continue
			}
			if chess.ExtractColour(piece) == chess.White {
				score += table[row][col]
			} else {
				m := chess.Sq(row, col).Mirror()
				score -= table[m.Row][m.Col]
			}
		}
	}
	return score
}

// Nodes returns the number of evaluations made so far.
func (e *Evaluator) Nodes() int64 {
	return e.nodes.Load()
}

// ResetNodes sets the evaluation count back to zero.
func (e *Evaluator) ResetNodes() {
	e.nodes.Store(0)
}

var _ engine.Scorer = (*Evaluator)(nil)
