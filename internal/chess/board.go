package chess

import "strings"

// CastleRights holds the four independent castling eligibility flags.
type CastleRights struct {
	WhiteKingside  bool
	BlackKingside  bool
	WhiteQueenside bool
	BlackQueenside bool
}

// AllCastleRights is the rights set of the standard starting position.
var AllCastleRights = CastleRights{true, true, true, true}

// Kingside reports the king-side right of the given colour.
func (c CastleRights) Kingside(colour Colour) bool {
	if colour == White {
		return c.WhiteKingside
	}
	return c.BlackKingside
}

// Queenside reports the queen-side right of the given colour.
func (c CastleRights) Queenside(colour Colour) bool {
	if colour == White {
		return c.WhiteQueenside
	}
	return c.BlackQueenside
}

// RevokeKingside clears the king-side right of the given colour.
func (c *CastleRights) RevokeKingside(colour Colour) {
	if colour == White {
		c.WhiteKingside = false
	} else {
		c.BlackKingside = false
	}
}

// RevokeQueenside clears the queen-side right of the given colour.
func (c *CastleRights) RevokeQueenside(colour Colour) {
	if colour == White {
		c.WhiteQueenside = false
	} else {
		c.BlackQueenside = false
	}
}

// String returns the FEN castling field ("KQkq", "-").
func (c CastleRights) String() string {
	var sb strings.Builder
	if c.WhiteKingside {
		sb.WriteByte('K')
	}
	if c.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if c.BlackKingside {
		sb.WriteByte('k')
	}
	if c.BlackQueenside {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// Board represents a chess position together with the history needed to
// undo moves. A single Board is mutated in place by apply/undo for the
// whole game, including speculative exploration during search.
type Board struct {
	// Squares is indexed [row][col]; row 0 is rank 8.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// The current move number, incremented after each Black move.
	MoveNumber uint

	// Keep track of where the two kings are for check detection.
	WKing Square
	BKing Square

	// Current castling rights and one snapshot per ply. CastlingLog always
	// holds len(MoveLog)+1 entries; its last entry is the current rights.
	Castling    CastleRights
	CastlingLog []CastleRights

	// Square on which an en-passant capture can land, or NoSquare.
	// EnPassantLog mirrors CastlingLog.
	EnPassant    Square
	EnPassantLog []Square

	// Applied moves, used as the undo stack.
	MoveLog []*Move

	// Terminal flags set by the legality filter; cleared on undo.
	CheckMate bool
	StaleMate bool
}

// NewBoard creates a new empty board with White to move and no rights.
func NewBoard() *Board {
	b := &Board{
		ToMove:     White,
		MoveNumber: 1,
		WKing:      NoSquare,
		BKing:      NoSquare,
		EnPassant:  NoSquare,
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b.Squares[row][col] = Empty
		}
	}
	b.ResetHistory()
	return b
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b.Squares[row][col] = Empty
		}
	}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = B(backRank[col])
		b.Squares[1][col] = B(Pawn)
		b.Squares[6][col] = W(Pawn)
		b.Squares[7][col] = W(backRank[col])
	}

	b.WKing = Sq(7, 4)
	b.BKing = Sq(0, 4)
	b.ToMove = White
	b.MoveNumber = 1
	b.Castling = AllCastleRights
	b.EnPassant = NoSquare
	b.MoveLog = nil
	b.CheckMate = false
	b.StaleMate = false
	b.ResetHistory()
}

// ResetHistory discards the move log and reseeds the rights and
// en-passant stacks with the current values.
func (b *Board) ResetHistory() {
	b.MoveLog = nil
	b.CastlingLog = []CastleRights{b.Castling}
	b.EnPassantLog = []Square{b.EnPassant}
}

// Get returns the piece on the given square, or Off for squares outside the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.OnBoard() {
		return Off
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece on the given square. Squares outside the board are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.OnBoard() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// At returns the piece at the given row and column.
func (b *Board) At(row, col int) Piece {
	return b.Get(Sq(row, col))
}

// KingSquare returns the cached king location of the given colour.
func (b *Board) KingSquare(colour Colour) Square {
	if colour == White {
		return b.WKing
	}
	return b.BKing
}

// SetKingSquare updates the cached king location of the given colour.
func (b *Board) SetKingSquare(colour Colour, sq Square) {
	if colour == White {
		b.WKing = sq
	} else {
		b.BKing = sq
	}
}

// HasEnPassant reports whether an en-passant capture is available.
func (b *Board) HasEnPassant() bool {
	return b.EnPassant.OnBoard()
}

// Ply returns the number of moves applied since the history was reset.
func (b *Board) Ply() int {
	return len(b.MoveLog)
}

// LastMove returns the most recently applied move, or nil.
func (b *Board) LastMove() *Move {
	if len(b.MoveLog) == 0 {
		return nil
	}
	return b.MoveLog[len(b.MoveLog)-1]
}

// Clone creates a deep copy of the board, including its history stacks.
// Moves in the log are shared; they are not mutated by apply or undo.
func (b *Board) Clone() *Board {
	c := *b
	c.CastlingLog = append([]CastleRights(nil), b.CastlingLog...)
	c.EnPassantLog = append([]Square(nil), b.EnPassantLog...)
	if b.MoveLog != nil {
		c.MoveLog = append([]*Move(nil), b.MoveLog...)
	}
	return &c
}

// String renders the board as eight lines of piece codes, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		sb.WriteByte(byte(ToRank(row)))
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteString(PieceCode(b.Squares[row][col]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(" ")
	for col := 0; col < BoardSize; col++ {
		sb.WriteString("  ")
		sb.WriteByte(byte(ToCol(col)))
	}
	sb.WriteByte('\n')
	return sb.String()
}
