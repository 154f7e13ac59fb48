package engine

import "github.com/lgbarn/lookahead-chess/internal/chess"

var (
	knightOffsets  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	orthogonalDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// PseudoLegalMoves returns every move of the side to move that obeys piece
// geometry, ignoring whether the mover's king is left attacked. Castling is
// not included.
func PseudoLegalMoves(board *chess.Board) []*chess.Move {
	moves := make([]*chess.Move, 0, 48)
	colour := board.ToMove

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if !chess.BelongsTo(piece, colour) {
				continue
			}
			from := chess.Sq(row, col)

			switch chess.ExtractPiece(piece) {
			case chess.Pawn:
				moves = pawnMoves(board, from, colour, moves)
			case chess.Knight:
				moves = stepMoves(board, from, colour, knightOffsets, moves)
			case chess.Bishop:
				moves = rayMoves(board, from, colour, diagonalDirs, moves)
			case chess.Rook:
				moves = rayMoves(board, from, colour, orthogonalDirs, moves)
			case chess.Queen:
				moves = rayMoves(board, from, colour, diagonalDirs, moves)
				moves = rayMoves(board, from, colour, orthogonalDirs, moves)
			case chess.King:
				moves = stepMoves(board, from, colour, kingOffsets, moves)
			}
		}
	}
	return moves
}

// pawnMoves appends the pushes and captures of the pawn on from.
func pawnMoves(board *chess.Board, from chess.Square, colour chess.Colour, moves []*chess.Move) []*chess.Move {
	dir := chess.ColourOffset(colour)

	one := from.Offset(dir, 0)
	if board.Get(one) == chess.Empty {
		moves = append(moves, chess.NewMove(from, one, board))

		two := from.Offset(2*dir, 0)
		if from.Row == chess.PawnStartRow(colour) && board.Get(two) == chess.Empty {
			moves = append(moves, chess.NewMove(from, two, board))
		}
	}

	for dc := -1; dc <= 1; dc += 2 {
		to := from.Offset(dir, dc)
		target := board.Get(to)
		if chess.BelongsTo(target, colour.Opposite()) || (target == chess.Empty && to == board.EnPassant) {
			moves = append(moves, chess.NewMove(from, to, board))
		}
	}
	return moves
}

// stepMoves appends single-step moves for knights and kings.
func stepMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int, moves []*chess.Move) []*chess.Move {
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		target := board.Get(to)
		if target == chess.Off || chess.BelongsTo(target, colour) {
			continue
		}
		moves = append(moves, chess.NewMove(from, to, board))
	}
	return moves
}

// rayMoves appends sliding moves along each direction until blocked.
// The blocking square is included when it holds an enemy piece.
func rayMoves(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int, moves []*chess.Move) []*chess.Move {
	for _, dir := range dirs {
		for step := 1; step < chess.BoardSize; step++ {
			to := from.Offset(dir[0]*step, dir[1]*step)
			target := board.Get(to)
			if target == chess.Off || chess.BelongsTo(target, colour) {
				break
			}
			moves = append(moves, chess.NewMove(from, to, board))
			if target != chess.Empty {
				break
			}
		}
	}
	return moves
}
