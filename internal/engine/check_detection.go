package engine

import "github.com/lgbarn/lookahead-chess/internal/chess"

// InCheck returns true if the given colour's king is attacked.
func InCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.KingSquare(colour)
	if !king.OnBoard() {
		king = findKing(board, colour)
		if !king.OnBoard() {
			return false // No king found
		}
	}
	return attackedBy(board, king, colour.Opposite())
}

// SquareUnderAttack reports whether the opponent of the side to move
// attacks sq.
func SquareUnderAttack(board *chess.Board, sq chess.Square) bool {
	return attackedBy(board, sq, board.ToMove.Opposite())
}

// attackedBy reports whether any pseudo-legal move of byColour lands on sq.
// A pawn push onto an empty square counts; a pawn's diagonal onto an empty
// square does not.
func attackedBy(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	saved := board.ToMove
	board.ToMove = byColour
	defer func() { board.ToMove = saved }()

	for _, m := range PseudoLegalMoves(board) {
		if m.To == sq {
			return true
		}
	}
	return false
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) chess.Square {
	king := chess.MakeColouredPiece(colour, chess.King)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if board.Squares[row][col] == king {
				return chess.Sq(row, col)
			}
		}
	}
	return chess.NoSquare
}
