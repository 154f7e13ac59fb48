package chess

// Square is a board coordinate. Row 0 is rank 8 (Black's back rank) and
// row 7 is rank 1; column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// NoSquare marks the absence of a square, e.g. no en-passant target.
var NoSquare = Square{Row: -1, Col: -1}

// Sq builds a square from row and column indices.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// OnBoard reports whether the square lies within the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square dr rows and dc columns away.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// Mirror returns the square rotated 180 degrees (row 7-r, col 7-c).
func (s Square) Mirror() Square {
	return Square{Row: BoardSize - 1 - s.Row, Col: BoardSize - 1 - s.Col}
}

// File returns the file character of the square.
func (s Square) File() Col {
	return ToCol(s.Col)
}

// Rank returns the rank character of the square.
func (s Square) Rank() Rank {
	return ToRank(s.Row)
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{byte(s.File()), byte(s.Rank())})
}

// RankConvert converts a rank character to a row index, or -1.
func RankConvert(rank Rank) int {
	if rank >= FirstRank && rank <= LastRank {
		return int(LastRank - rank)
	}
	return -1
}

// ColConvert converts a file character to a column index, or -1.
func ColConvert(col Col) int {
	if col >= FirstCol && col <= LastCol {
		return int(col - ColBase)
	}
	return -1
}

// ToRank converts a row index back to a rank character.
func ToRank(row int) Rank {
	return Rank(LastRank - row)
}

// ToCol converts a column index back to a file character.
func ToCol(col int) Col {
	return Col(col + ColBase)
}

// IsFile reports whether c is a file character 'a'-'h'.
func IsFile(c byte) bool {
	return c >= FirstCol && c <= LastCol
}

// IsRank reports whether c is a rank character '1'-'8'.
func IsRank(c byte) bool {
	return c >= FirstRank && c <= LastRank
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 || !IsFile(s[0]) || !IsRank(s[1]) {
		return NoSquare, false
	}
	return Square{Row: RankConvert(Rank(s[1])), Col: ColConvert(Col(s[0]))}, true
}
