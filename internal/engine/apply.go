// Package engine provides chess move generation, validation and board
// manipulation.
package engine

import (
	"github.com/lgbarn/lookahead-chess/internal/chess"
)

// ApplyMove applies a move to the board and updates the board state.
// The move must have been generated for this board.
func ApplyMove(board *chess.Board, move *chess.Move) {
	colour := chess.ExtractColour(move.PieceMoved)

	board.Set(move.From, chess.Empty)
	board.Set(move.To, move.PieceMoved)

	if move.IsEnPassant {
		board.Set(move.CapturedSquare(), chess.Empty)
	}

	if move.IsPromotion {
		board.Set(move.To, chess.MakeColouredPiece(colour, chess.Queen))
	}

	if move.IsCastle {
		moveCastlingRook(board, move)
	}

	if chess.ExtractPiece(move.PieceMoved) == chess.King {
		board.SetKingSquare(colour, move.To)
	}

	// Set en passant square if double pawn push
	board.EnPassant = chess.NoSquare
	if chess.ExtractPiece(move.PieceMoved) == chess.Pawn && abs(move.From.Row-move.To.Row) == 2 {
		board.EnPassant = chess.Sq((move.From.Row+move.To.Row)/2, move.From.Col)
	}
	board.EnPassantLog = append(board.EnPassantLog, board.EnPassant)

	updateCastlingRights(board, move)
	board.CastlingLog = append(board.CastlingLog, board.Castling)

	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = board.ToMove.Opposite()
	board.MoveLog = append(board.MoveLog, move)
}

// UndoMove takes back the most recently applied move. It does nothing if
// no move has been applied.
func UndoMove(board *chess.Board) {
	n := len(board.MoveLog)
	if n == 0 {
		return
	}
	move := board.MoveLog[n-1]
	board.MoveLog = board.MoveLog[:n-1]

	board.Set(move.From, move.PieceMoved)
	board.Set(move.To, move.PieceCaptured)
	board.ToMove = board.ToMove.Opposite()

	colour := chess.ExtractColour(move.PieceMoved)
	if chess.ExtractPiece(move.PieceMoved) == chess.King {
		board.SetKingSquare(colour, move.From)
	}

	if move.IsEnPassant {
		board.Set(move.To, chess.Empty)
		board.Set(move.CapturedSquare(), move.PieceCaptured)
	}

	board.CastlingLog = board.CastlingLog[:len(board.CastlingLog)-1]
	board.Castling = board.CastlingLog[len(board.CastlingLog)-1]

	board.EnPassantLog = board.EnPassantLog[:len(board.EnPassantLog)-1]
	board.EnPassant = board.EnPassantLog[len(board.EnPassantLog)-1]

	if move.IsCastle {
		unmoveCastlingRook(board, move)
	}

	if colour == chess.Black {
		board.MoveNumber--
	}

	board.CheckMate = false
	board.StaleMate = false
}

// WithMove applies move, runs fn, and undoes the move on every exit path
// of fn, including panics.
func WithMove(board *chess.Board, move *chess.Move, fn func()) {
	ApplyMove(board, move)
	defer UndoMove(board)
	fn()
}

// withSideFlipped runs fn with the side to move switched, restoring it
// afterwards.
func withSideFlipped(board *chess.Board, fn func()) {
	board.ToMove = board.ToMove.Opposite()
	defer func() { board.ToMove = board.ToMove.Opposite() }()
	fn()
}
