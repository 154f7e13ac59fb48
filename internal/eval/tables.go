package eval

import "github.com/lgbarn/lookahead-chess/internal/chess"

// Piece-square values, authored from White's side: row 0 is rank 8.
// Black pieces read the table at the mirrored square.
var (
	pawnTable = [8][8]float64{
		{9, 9, 9, 9, 9, 9, 9, 9},
		{4, 4, 4, 4, 4, 4, 4, 4},
		{3.5, 3, 3, 3, 3, 3, 3, 2.5},
		{1.5, 1.7, 1.8, 2, 2, 1.8, 1.7, 1.5},
		{1.1, 1.2, 1.3, 1.4, 1.4, 1.3, 1.2, 1.1},
		{1, 1.2, 1.3, 1.3, 1.3, 1.3, 1.2, 1},
		{1, 1, 1, 1, 1, 1, 1, 1},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}
	knightTable = [8][8]float64{
		{2, 2.8, 3.1, 3.1, 3.1, 3.1, 2.8, 2},
		{2.3, 2.8, 3.4, 3.4, 3.4, 3.4, 2.8, 2.3},
		{2.3, 2.8, 3.4, 3.4, 3.4, 3.4, 2.8, 2.3},
		{2.3, 2.8, 3.1, 3.1, 3.1, 3.1, 2.8, 2.3},
		{2.3, 2.8, 3.1, 3.1, 3.1, 3.1, 2.8, 2.3},
		{2.3, 2.8, 3.1, 3.1, 3.1, 3.1, 2.8, 2.3},
		{2.3, 2.8, 3.1, 3.1, 3.1, 3.1, 2.8, 2.3},
		{2.3, 2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.3},
	}
	bishopTable = [8][8]float64{
		{3.5, 3.5, 3.5, 3.5, 3.5, 3.5, 3.5, 3.5},
		{3.5, 4.5, 4.5, 4.5, 4.5, 4.5, 4.5, 3.5},
		{3.5, 4.5, 4.5, 4.5, 4.5, 4.5, 4.5, 3.5},
		{3.5, 4.5, 4.5, 4.5, 4.5, 4.5, 4.5, 3.5},
		{3.5, 4.5, 4.5, 4.5, 4.5, 4.5, 4.5, 3.5},
		{3.5, 4.5, 4.5, 4.5, 4.5, 4.5, 4.5, 3.5},
		{3.5, 4.5, 4.5, 4.5, 4.5, 4.5, 4.5, 3.5},
		{3.5, 3.5, 3.5, 3.5, 3.5, 3.5, 3.5, 3.5},
	}
	rookTable = [8][8]float64{
		{5.5, 5.5, 5.5, 5.5, 5.5, 5.5, 5.5, 5.5},
		{5.5, 5.5, 5.5, 5.5, 5.5, 5.5, 5.5, 5.5},
		{5, 5, 5, 5, 5, 5, 5, 5},
		{5, 5, 5, 5, 5, 5, 5, 5},
		{5, 5, 5, 5, 5, 5, 5, 5},
		{5, 5, 5, 5, 5, 5, 5, 5},
		{5, 5, 5, 5, 5, 5, 5, 5},
		{5, 5, 5, 5, 5, 5, 5, 5},
	}
	queenTable = [8][8]float64{
		{7.5, 8, 8, 8, 8, 8, 8, 7.5},
		{7.5, 8, 8, 8, 8, 8, 8, 7.5},
		{7.5, 8, 9, 9, 9, 9, 8, 7.5},
		{7.5, 8, 9, 9.2, 9.2, 9, 8, 7.5},
		{7.5, 8, 9, 9.2, 9.2, 9, 8, 7.5},
		{7.5, 8, 8, 8, 8, 8, 8, 7.5},
		{7.5, 8, 8, 8, 8, 8, 8, 7.5},
		{7.5, 8, 8, 8, 8, 8, 8, 7.5},
	}
	kingTable = [8][8]float64{
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1.2, 1.2, 1, 1, 1, 1.2, 1},
	}
)

// pieceTable returns the value table of a piece kind, or nil.
func pieceTable(kind chess.Piece) *[8][8]float64 {
	switch kind {
	case chess.Pawn:
		return &pawnTable
	case chess.Knight:
		return &knightTable
	case chess.Bishop:
		return &bishopTable
	case chess.Rook:
		return &rookTable
	case chess.Queen:
		return &queenTable
	case chess.King:
		return &kingTable
	}
	return nil
}
