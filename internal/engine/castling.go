package engine

import "github.com/lgbarn/lookahead-chess/internal/chess"

// castleRookSquares returns the rook's origin and destination for a castling move.
func castleRookSquares(move *chess.Move) (from, to chess.Square) {
	row := move.To.Row
	if move.IsKingside() {
		return chess.Sq(row, move.To.Col+1), chess.Sq(row, move.To.Col-1)
	}
	return chess.Sq(row, move.To.Col-2), chess.Sq(row, move.To.Col+1)
}

// moveCastlingRook relocates the rook of a castling move.
func moveCastlingRook(board *chess.Board, move *chess.Move) {
	from, to := castleRookSquares(move)
	board.Set(to, board.Get(from))
	board.Set(from, chess.Empty)
}

// unmoveCastlingRook puts the rook of a castling move back in its corner.
func unmoveCastlingRook(board *chess.Board, move *chess.Move) {
	from, to := castleRookSquares(move)
	board.Set(from, board.Get(to))
	board.Set(to, chess.Empty)
}

// updateCastlingRights removes castling rights when a king or rook moves
// or a rook is captured on its original square.
func updateCastlingRights(board *chess.Board, move *chess.Move) {
	colour := chess.ExtractColour(move.PieceMoved)
	switch chess.ExtractPiece(move.PieceMoved) {
	case chess.King:
		board.Castling.RevokeKingside(colour)
		board.Castling.RevokeQueenside(colour)
	case chess.Rook:
		updateCastlingRightsForRook(board, colour, move.From)
	}

	if chess.ExtractPiece(move.PieceCaptured) == chess.Rook {
		updateCastlingRightsForRook(board, chess.ExtractColour(move.PieceCaptured), move.To)
	}
}

// updateCastlingRightsForRook revokes the right tied to a rook leaving sq.
func updateCastlingRightsForRook(board *chess.Board, colour chess.Colour, sq chess.Square) {
	if sq.Row != chess.HomeRow(colour) {
		return
	}
	switch sq.Col {
	case 0:
		board.Castling.RevokeQueenside(colour)
	case chess.BoardSize - 1:
		board.Castling.RevokeKingside(colour)
	}
}

// castleMoves returns the castling moves available to the side to move.
// The king may not castle out of, through, or into an attacked square.
func castleMoves(board *chess.Board) []*chess.Move {
	colour := board.ToMove
	king := board.KingSquare(colour)
	if !king.OnBoard() || SquareUnderAttack(board, king) {
		return nil
	}

	var moves []*chess.Move
	if board.Castling.Kingside(colour) {
		if m := kingsideCastle(board, king); m != nil {
			moves = append(moves, m)
		}
	}
	if board.Castling.Queenside(colour) {
		if m := queensideCastle(board, king); m != nil {
			moves = append(moves, m)
		}
	}
	return moves
}

// kingsideCastle returns the king-side castle if both squares between king
// and rook are empty and unattacked.
func kingsideCastle(board *chess.Board, king chess.Square) *chess.Move {
	for step := 1; step <= 2; step++ {
		sq := king.Offset(0, step)
		if board.Get(sq) != chess.Empty || SquareUnderAttack(board, sq) {
			return nil
		}
	}
	return chess.NewMove(king, king.Offset(0, 2), board)
}

// queensideCastle returns the queen-side castle if the three squares between
// king and rook are empty and the two the king crosses are unattacked.
func queensideCastle(board *chess.Board, king chess.Square) *chess.Move {
	for step := 1; step <= 3; step++ {
		if board.Get(king.Offset(0, -step)) != chess.Empty {
			return nil
		}
	}
	for step := 1; step <= 2; step++ {
		if SquareUnderAttack(board, king.Offset(0, -step)) {
			return nil
		}
	}
	return chess.NewMove(king, king.Offset(0, -2), board)
}
