package engine

import "github.com/lgbarn/lookahead-chess/internal/chess"

// Scorer evaluates a position from the given colour's point of view.
type Scorer interface {
	Score(board *chess.Board, perspective chess.Colour) float64
}

// ValidMoves returns the legal moves of the side to move.
//
// Each pseudo-legal candidate is applied, and discarded if it leaves the
// mover's king attacked. Surviving moves are flagged IsCheck when they
// attack the opposing king and, when scorer is non-nil, carry the score of
// the resulting position from perspective. An empty result sets the
// board's CheckMate or StaleMate flag. Castling moves are appended last.
//
// The board is restored before returning; en-passant target and castling
// rights are snapshotted and put back explicitly.
func ValidMoves(board *chess.Board, perspective chess.Colour, scorer Scorer) []*chess.Move {
	savedEP := board.EnPassant
	savedRights := board.Castling
	defer func() {
		board.EnPassant = savedEP
		board.Castling = savedRights
	}()

	board.CheckMate = false
	board.StaleMate = false

	candidates := PseudoLegalMoves(board)
	moves := candidates[:0]
	for _, m := range candidates {
		if isLegal(board, m, perspective, scorer) {
			moves = append(moves, m)
		}
	}

	terminal := len(moves) == 0

	for _, m := range castleMoves(board) {
		annotate(board, m, perspective, scorer)
		moves = append(moves, m)
	}

	// Flags go last: the undo inside annotate clears them.
	if terminal {
		if InCheck(board, board.ToMove) {
			board.CheckMate = true
		} else {
			board.StaleMate = true
		}
	}
	return moves
}

// isLegal applies m, reports whether the mover's king is safe, and records
// the annotations of a legal move.
func isLegal(board *chess.Board, m *chess.Move, perspective chess.Colour, scorer Scorer) bool {
	legal := false
	mover := m.Colour()
	WithMove(board, m, func() {
		withSideFlipped(board, func() {
			if InCheck(board, mover) {
				return
			}
			legal = true
			if scorer != nil {
				m.Evaluation = scorer.Score(board, perspective)
			}
			m.IsCheck = InCheck(board, mover.Opposite())
		})
	})
	return legal
}

// annotate attaches evaluation and check flag to a move already known to
// be legal.
func annotate(board *chess.Board, m *chess.Move, perspective chess.Colour, scorer Scorer) {
	mover := m.Colour()
	WithMove(board, m, func() {
		withSideFlipped(board, func() {
			if scorer != nil {
				m.Evaluation = scorer.Score(board, perspective)
			}
			m.IsCheck = InCheck(board, mover.Opposite())
		})
	})
}

// HasLegalMoves returns true if the side to move has at least one legal move.
// Unlike ValidMoves it leaves the board's terminal flags untouched.
func HasLegalMoves(board *chess.Board) bool {
	for _, m := range PseudoLegalMoves(board) {
		if isLegal(board, m, board.ToMove, nil) {
			return true
		}
	}
	return false
}
