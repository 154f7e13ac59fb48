package testutil

import (
	"fmt"
	"strings"
	"testing"
	"unicode"

	"github.com/lgbarn/lookahead-chess/internal/chess"
)

// BoardFromDiagram builds a board from eight lines of eight characters,
// rank 8 first. Upper case letters are White pieces, lower case Black,
// and '.' an empty square. Castling rights and en-passant target start
// empty; the history is seeded from them.
func BoardFromDiagram(diagram string, toMove chess.Colour) (*chess.Board, error) {
	var rows []string
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != chess.BoardSize {
		return nil, fmt.Errorf("diagram has %d rows, want %d", len(rows), chess.BoardSize)
	}

	b := chess.NewBoard()
	b.ToMove = toMove
	for row, line := range rows {
		if len(line) != chess.BoardSize {
			return nil, fmt.Errorf("row %d has %d squares, want %d", row, len(line), chess.BoardSize)
		}
		for col := 0; col < chess.BoardSize; col++ {
			c := line[col]
			if c == '.' {
				continue
			}
			piece := chess.PieceFromLetter(byte(unicode.ToUpper(rune(c))))
			if piece == chess.Empty {
				return nil, fmt.Errorf("row %d col %d: unknown piece %q", row, col, c)
			}
			colour := chess.White
			if unicode.IsLower(rune(c)) {
				colour = chess.Black
			}
			sq := chess.Sq(row, col)
			b.Set(sq, chess.MakeColouredPiece(colour, piece))
			if piece == chess.King {
				b.SetKingSquare(colour, sq)
			}
		}
	}
	b.ResetHistory()
	return b, nil
}

// MustBoard builds a board from a diagram and calls t.Fatal on error.
func MustBoard(t *testing.T, diagram string, toMove chess.Colour) *chess.Board {
	t.Helper()
	b, err := BoardFromDiagram(diagram, toMove)
	if err != nil {
		t.Fatalf("invalid diagram: %v", err)
	}
	return b
}

// WithCastling sets castling rights on a fixture board and reseeds its history.
func WithCastling(b *chess.Board, rights chess.CastleRights) *chess.Board {
	b.Castling = rights
	b.ResetHistory()
	return b
}

// WithEnPassant sets the en-passant target on a fixture board and reseeds
// its history.
func WithEnPassant(b *chess.Board, sq chess.Square) *chess.Board {
	b.EnPassant = sq
	b.ResetHistory()
	return b
}
