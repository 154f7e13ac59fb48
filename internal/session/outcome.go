package session

import "github.com/lgbarn/lookahead-chess/internal/chess"

// Outcome is the state of a game after its latest move.
type Outcome int

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	ThreefoldRepetition
	PlyLimit
)

var outcomeNames = map[Outcome]string{
	Ongoing:              "ongoing",
	Checkmate:            "checkmate",
	Stalemate:            "stalemate",
	InsufficientMaterial: "insufficient material",
	ThreefoldRepetition:  "threefold repetition",
	PlyLimit:             "ply limit reached",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// IsOver returns true if no further moves may be played.
func (o Outcome) IsOver() bool {
	return o != Ongoing
}

// Result returns the PGN result string for the outcome. toMove is the side
// to move in the final position; it is the loser of a checkmate.
func (o Outcome) Result(toMove chess.Colour) string {
	switch o {
	case Checkmate:
		if toMove == chess.White {
			return chess.BlackWins
		}
		return chess.WhiteWins
	case Stalemate, InsufficientMaterial, ThreefoldRepetition:
		return chess.Draw
	}
	return chess.Unfinished
}
