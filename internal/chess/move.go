package chess

// Move describes a single ply. The squares, pieces and kind flags are fixed
// at construction; Evaluation and IsCheck are annotations attached later by
// the legality filter.
type Move struct {
	From Square
	To   Square

	// The piece being moved.
	PieceMoved Piece

	// The piece captured (Empty if no capture). For en passant this is the
	// passed pawn, which does not stand on To.
	PieceCaptured Piece

	IsEnPassant bool
	IsCastle    bool
	IsPromotion bool

	// Static evaluation of the position after this move, if requested.
	Evaluation float64

	// Whether this move attacks the opposing king.
	IsCheck bool
}

// NewMove creates the move from one square to another on the given board.
// The moved and captured pieces are looked up on the board and the kind
// flags are derived from them.
func NewMove(from, to Square, b *Board) *Move {
	m := &Move{
		From:          from,
		To:            to,
		PieceMoved:    b.Get(from),
		PieceCaptured: b.Get(to),
	}

	kind := ExtractPiece(m.PieceMoved)
	colour := ExtractColour(m.PieceMoved)

	m.IsPromotion = kind == Pawn && to.Row == PromotionRow(colour)

	if kind == Pawn && abs(from.Row-to.Row) == 1 && abs(from.Col-to.Col) == 1 && m.PieceCaptured == Empty {
		m.IsEnPassant = true
		m.PieceCaptured = MakeColouredPiece(colour.Opposite(), Pawn)
	}

	m.IsCastle = kind == King && abs(from.Col-to.Col) == 2
	return m
}

// ID returns the integer key encoding the start and end squares. It is
// unique among the moves of a single position.
func (m *Move) ID() int {
	return m.From.Row*1000 + m.From.Col*100 + m.To.Row*10 + m.To.Col
}

// Equal reports whether two moves share the same ID.
func (m *Move) Equal(other *Move) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.ID() == other.ID()
}

// Colour returns the colour of the side making the move.
func (m *Move) Colour() Colour {
	return ExtractColour(m.PieceMoved)
}

// Kind returns the type of the moved piece.
func (m *Move) Kind() Piece {
	return ExtractPiece(m.PieceMoved)
}

// IsCapture returns true if this move is a capture.
func (m *Move) IsCapture() bool {
	return m.PieceCaptured != Empty
}

// IsKingside reports whether a castling move goes toward the h-file.
func (m *Move) IsKingside() bool {
	return m.IsCastle && m.To.Col > m.From.Col
}

// CapturedSquare returns the square the captured piece stands on.
func (m *Move) CapturedSquare() Square {
	if m.IsEnPassant {
		return Sq(m.From.Row, m.To.Col)
	}
	return m.To
}

// String returns the move as start and end squares, e.g. "e2e4".
func (m *Move) String() string {
	return m.From.String() + m.To.String()
}

// UCI returns the move in UCI long algebraic form. Promotions are always
// to a queen.
func (m *Move) UCI() string {
	if m.IsPromotion {
		return m.String() + "q"
	}
	return m.String()
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
