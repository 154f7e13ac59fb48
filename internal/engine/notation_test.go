package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/lookahead-chess/internal/chess"
	chesserrors "github.com/lgbarn/lookahead-chess/internal/errors"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		text     string
		wantFrom chess.Square
		wantTo   chess.Square
	}{
		{"pawn push", InitialFEN, "e4", chess.Sq(6, 4), chess.Sq(4, 4)},
		{"knight", InitialFEN, "Nf3", chess.Sq(7, 6), chess.Sq(5, 5)},
		{"single pawn step", InitialFEN, "a3", chess.Sq(6, 0), chess.Sq(5, 0)},
		{"black pawn", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "c5", chess.Sq(1, 2), chess.Sq(3, 2)},
		{"pawn capture", "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2", "exd5", chess.Sq(4, 4), chess.Sq(3, 3)},
		{"check mark", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "Ra8+", chess.Sq(7, 0), chess.Sq(0, 0)},
		{"mate mark", "6k1/5ppp/8/8/8/8/8/3RK3 w - - 0 1", "Rd8#", chess.Sq(7, 3), chess.Sq(0, 3)},
		{"promotion suffix", "7k/P7/8/8/8/8/8/K7 w - - 0 1", "a8=Q", chess.Sq(1, 0), chess.Sq(0, 0)},
		{"promotion bare", "7k/P7/8/8/8/8/8/K7 w - - 0 1", "a8", chess.Sq(1, 0), chess.Sq(0, 0)},
		{"file disambiguation", "k7/8/8/8/8/8/8/1N2KN2 w - - 0 1", "Nbd2", chess.Sq(7, 1), chess.Sq(6, 3)},
		{"other knight", "k7/8/8/8/8/8/8/1N2KN2 w - - 0 1", "Nfd2", chess.Sq(7, 5), chess.Sq(6, 3)},
		{"rank disambiguation", "7k/8/8/8/R7/8/8/R3K3 w - - 0 1", "R1a2", chess.Sq(7, 0), chess.Sq(6, 0)},
		{"surplus file on only knight", InitialFEN, "Ngf3", chess.Sq(7, 6), chess.Sq(5, 5)},
		{"wrong file on only knight", InitialFEN, "Nbf3", chess.Sq(7, 6), chess.Sq(5, 5)},
		{"surplus square on only pawn", InitialFEN, "e2e4", chess.Sq(6, 4), chess.Sq(4, 4)},
		{"kingside castle", castlingFEN, "O-O", chess.Sq(7, 4), chess.Sq(7, 6)},
		{"queenside castle", castlingFEN, "O-O-O", chess.Sq(7, 4), chess.Sq(7, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			m, err := ParseMove(board, tt.text)
			if err != nil {
				t.Fatalf("ParseMove(%q) error: %v", tt.text, err)
			}
			if m.From != tt.wantFrom || m.To != tt.wantTo {
				t.Errorf("ParseMove(%q) = %v->%v; want %v->%v", tt.text, m.From, m.To, tt.wantFrom, tt.wantTo)
			}
		})
	}
}

func TestParseMove_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		text    string
		wantErr error
	}{
		{"empty", InitialFEN, "", chesserrors.ErrInvalidNotation},
		{"bad square", InitialFEN, "z9", chesserrors.ErrInvalidNotation},
		{"bad disambiguation", InitialFEN, "Nzf3", chesserrors.ErrInvalidNotation},
		{"under-promotion", "7k/P7/8/8/8/8/8/K7 w - - 0 1", "a8=N", chesserrors.ErrInvalidNotation},
		{"pawn too far", InitialFEN, "e5", chesserrors.ErrIllegalMove},
		{"blocked queen", InitialFEN, "Qh5", chesserrors.ErrIllegalMove},
		{"wrong disambiguation", "k7/8/8/8/8/8/8/1N2KN2 w - - 0 1", "Ncd2", chesserrors.ErrIllegalMove},
		{"ambiguous knights", "k7/8/8/8/8/8/8/1N2KN2 w - - 0 1", "Nd2", chesserrors.ErrAmbiguousMove},
		{"ambiguous same rank", "k7/8/8/8/8/8/8/1N2KN2 w - - 0 1", "N1d2", chesserrors.ErrAmbiguousMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			m, err := ParseMove(board, tt.text)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseMove(%q) = %v, %v; want error %v", tt.text, m, err, tt.wantErr)
			}
		})
	}
}

// Castling text always names the rank-1 king move, even for Black.
func TestParseMove_CastlingFixedRank(t *testing.T) {
	board := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")

	m, err := ParseMove(board, "O-O")
	if err != nil {
		t.Fatalf("ParseMove(O-O) error: %v", err)
	}
	if m.From != chess.Sq(7, 4) || m.To != chess.Sq(7, 6) {
		t.Errorf("ParseMove(O-O) = %v->%v; want e1->g1", m.From, m.To)
	}
	if m.Colour() != chess.White {
		t.Errorf("ParseMove(O-O).Colour() = %v; want White", m.Colour())
	}
	for _, legal := range ValidMoves(board, board.ToMove, nil) {
		if legal.Equal(m) {
			t.Errorf("fixed-rank castle %s is in Black's legal list", m)
		}
	}
}
