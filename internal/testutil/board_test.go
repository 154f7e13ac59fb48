package testutil

import (
	"testing"

	"github.com/lgbarn/lookahead-chess/internal/chess"
)

func TestBoardFromDiagram(t *testing.T) {
	b := MustBoard(t, `
		....k...
		........
		........
		........
		........
		........
		P.......
		....K..R
	`, chess.Black)

	tests := []struct {
		sq   chess.Square
		want chess.Piece
	}{
		{chess.Sq(0, 4), chess.B(chess.King)},
		{chess.Sq(7, 4), chess.W(chess.King)},
		{chess.Sq(7, 7), chess.W(chess.Rook)},
		{chess.Sq(6, 0), chess.W(chess.Pawn)},
		{chess.Sq(3, 3), chess.Empty},
	}
	for _, tt := range tests {
		if got := b.Get(tt.sq); got != tt.want {
			t.Errorf("Get(%v) = %v; want %v", tt.sq, got, tt.want)
		}
	}

	AssertEqual(t, b.KingSquare(chess.White), chess.Sq(7, 4))
	AssertEqual(t, b.KingSquare(chess.Black), chess.Sq(0, 4))
	AssertEqual(t, b.ToMove, chess.Black)
	AssertEqual(t, len(b.CastlingLog), 1)
}

func TestBoardFromDiagram_Errors(t *testing.T) {
	tests := []struct {
		name    string
		diagram string
	}{
		{"too few rows", "....k...\n....K..."},
		{"short row", "....k...\n........\n........\n........\n........\n........\n........\n....K.."},
		{"unknown piece", "....k...\n........\n........\n...x....\n........\n........\n........\n....K..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BoardFromDiagram(tt.diagram, chess.White)
			AssertError(t, err)
		})
	}
}

func TestWithCastling(t *testing.T) {
	b := WithCastling(chess.NewBoard(), chess.CastleRights{WhiteKingside: true})
	AssertEqual(t, b.CastlingLog, []chess.CastleRights{{WhiteKingside: true}})
}
