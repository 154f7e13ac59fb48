// Package chess provides core chess types: squares, pieces, the board state
// and the move value exchanged between the engine and its callers.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Prefix returns the single letter used in piece codes ("w" or "b").
func (c Colour) Prefix() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Piece represents a chess piece type, or a coloured piece when combined
// with a colour through MakeColouredPiece.
type Piece int

const (
	Off   Piece = iota // Not a square on the board
	Empty              // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Off", "Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', ' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter converts an uppercase SAN letter to a piece type.
// It returns Empty for anything that is not a piece letter.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'P':
		return Pawn
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	default:
		return Empty
	}
}

// Rank represents a chess rank character - '1' to '8'.
type Rank byte

// Col represents a chess file character - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
// The result is meaningless for Empty and Off.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// IsOccupied reports whether the square value holds a piece.
func IsOccupied(p Piece) bool {
	return p != Empty && p != Off
}

// BelongsTo reports whether p is a piece of the given colour.
func BelongsTo(p Piece, colour Colour) bool {
	return IsOccupied(p) && ExtractColour(p) == colour
}

// PieceCode returns the two-letter code of a square value ("wK", "bP", "--").
func PieceCode(p Piece) string {
	if !IsOccupied(p) {
		return "--"
	}
	return string([]byte{ExtractColour(p).Prefix(), ExtractPiece(p).Letter()})
}

// ColourOffset returns the row step of a pawn of the given colour.
// Row 0 is rank 8, so White pawns move toward lower rows.
func ColourOffset(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// HomeRow returns the back-rank row of the given colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// PawnStartRow returns the row from which pawns of the given colour may
// advance two squares.
func PawnStartRow(colour Colour) int {
	if colour == White {
		return BoardSize - 2
	}
	return 1
}

// PromotionRow returns the row on which pawns of the given colour promote.
func PromotionRow(colour Colour) int {
	return HomeRow(colour.Opposite())
}
