package chess

import "testing"

func TestNewMoveFlags(t *testing.T) {
	b := NewBoard()
	b.Set(Sq(1, 0), W(Pawn))   // a7
	b.Set(Sq(3, 4), W(Pawn))   // e5
	b.Set(Sq(3, 3), B(Pawn))   // d5
	b.Set(Sq(7, 4), W(King))   // e1
	b.Set(Sq(7, 7), W(Rook))   // h1
	b.Set(Sq(0, 4), B(King))   // e8
	b.Set(Sq(4, 2), W(Knight)) // c4
	b.Set(Sq(2, 3), B(Bishop)) // d6

	tests := []struct {
		name          string
		from, to      Square
		wantPromotion bool
		wantEP        bool
		wantCastle    bool
		wantCaptured  Piece
	}{
		{"promotion push", Sq(1, 0), Sq(0, 0), true, false, false, Empty},
		{"en passant", Sq(3, 4), Sq(2, 3), false, false, false, B(Bishop)},
		{"en passant onto empty", Sq(3, 4), Sq(2, 5), false, true, false, B(Pawn)},
		{"castle", Sq(7, 4), Sq(7, 6), false, false, true, Empty},
		{"king step", Sq(7, 4), Sq(7, 5), false, false, false, Empty},
		{"knight capture", Sq(4, 2), Sq(2, 3), false, false, false, B(Bishop)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMove(tt.from, tt.to, b)
			if m.IsPromotion != tt.wantPromotion {
				t.Errorf("IsPromotion = %v; want %v", m.IsPromotion, tt.wantPromotion)
			}
			if m.IsEnPassant != tt.wantEP {
				t.Errorf("IsEnPassant = %v; want %v", m.IsEnPassant, tt.wantEP)
			}
			if m.IsCastle != tt.wantCastle {
				t.Errorf("IsCastle = %v; want %v", m.IsCastle, tt.wantCastle)
			}
			if m.PieceCaptured != tt.wantCaptured {
				t.Errorf("PieceCaptured = %v; want %v", m.PieceCaptured, tt.wantCaptured)
			}
		})
	}
}

func TestMoveIDAndNotation(t *testing.T) {
	b := NewInitialBoard()
	m := NewMove(Sq(6, 4), Sq(4, 4), b)

	if got := m.ID(); got != 6444 {
		t.Errorf("ID() = %d; want 6444", got)
	}
	if got := m.String(); got != "e2e4" {
		t.Errorf("String() = %q; want e2e4", got)
	}
	if !m.Equal(NewMove(Sq(6, 4), Sq(4, 4), b)) {
		t.Error("Equal() = false for identical squares")
	}
	if m.Equal(NewMove(Sq(6, 4), Sq(5, 4), b)) {
		t.Error("Equal() = true for different target")
	}
	if m.Colour() != White || m.Kind() != Pawn {
		t.Errorf("Colour/Kind = %v/%v; want White/Pawn", m.Colour(), m.Kind())
	}
}

func TestMoveUCIPromotion(t *testing.T) {
	b := NewBoard()
	b.Set(Sq(6, 7), B(Pawn))
	m := NewMove(Sq(6, 7), Sq(7, 7), b)

	if !m.IsPromotion {
		t.Fatal("IsPromotion = false; want true")
	}
	if got := m.UCI(); got != "h2h1q" {
		t.Errorf("UCI() = %q; want h2h1q", got)
	}
}
