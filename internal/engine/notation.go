package engine

import (
	"strings"

	"github.com/lgbarn/lookahead-chess/internal/chess"
	"github.com/lgbarn/lookahead-chess/internal/errors"
)

// Castling text is mapped to the fixed rank-1 king move whichever side is
// to move; callers check the result against the legal move list.
var (
	kingsideCastleMove  = [2]chess.Square{chess.Sq(7, 4), chess.Sq(7, 6)}
	queensideCastleMove = [2]chess.Square{chess.Sq(7, 4), chess.Sq(7, 2)}
)

// ParseMove resolves short algebraic text such as "Nf3", "exd5" or "O-O"
// to a move of the side to move.
//
// Capture, check and mate decorations and a queen promotion suffix are
// ignored. Candidates are matched by destination square and piece. A
// source file or rank in the text only narrows the choice when more than
// one candidate remains, so a surplus or wrong disambiguation is ignored.
func ParseMove(board *chess.Board, text string) (*chess.Move, error) {
	text = strings.TrimSpace(text)
	switch text {
	case "O-O", "0-0":
		return chess.NewMove(kingsideCastleMove[0], kingsideCastleMove[1], board), nil
	case "O-O-O", "0-0-0":
		return chess.NewMove(queensideCastleMove[0], queensideCastleMove[1], board), nil
	}

	san := stripDecorations(text)
	if len(san) < 2 {
		return nil, notationError(text, "square", san)
	}

	to, ok := chess.ParseSquare(san[len(san)-2:])
	if !ok {
		return nil, notationError(text, "destination square", san[len(san)-2:])
	}

	prefix := san[:len(san)-2]
	kind := chess.Pawn
	if prefix != "" {
		if p := chess.PieceFromLetter(prefix[0]); p != chess.Empty {
			kind = p
			prefix = prefix[1:]
		}
	}
	for i := 0; i < len(prefix); i++ {
		if !chess.IsFile(prefix[i]) && !chess.IsRank(prefix[i]) {
			return nil, notationError(text, "piece, file or rank", string(prefix[i]))
		}
	}

	var matches []*chess.Move
	for _, m := range ValidMoves(board, board.ToMove, nil) {
		if m.To == to && m.Kind() == kind {
			matches = append(matches, m)
		}
	}
	if len(matches) > 1 {
		matches = filterBySource(matches, prefix)
	}

	switch len(matches) {
	case 0:
		return nil, errors.Wrapf(errors.ErrIllegalMove, "%q", text)
	case 1:
		return matches[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrAmbiguousMove, "%q matches %d moves", text, len(matches))
	}
}

// stripDecorations removes capture, check and mate marks and a queen
// promotion suffix.
func stripDecorations(text string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 'x', '+', '#', '!', '?':
			return -1
		}
		return r
	}, strings.Replace(text, "=Q", "", 1))
}

func filterBySource(moves []*chess.Move, disambiguation string) []*chess.Move {
	var kept []*chess.Move
	for _, m := range moves {
		if matchesSource(m, disambiguation) {
			kept = append(kept, m)
		}
	}
	return kept
}

// matchesSource reports whether every file or rank character in
// disambiguation agrees with the move's source square.
func matchesSource(m *chess.Move, disambiguation string) bool {
	for i := 0; i < len(disambiguation); i++ {
		c := disambiguation[i]
		if chess.IsFile(c) && chess.ColConvert(chess.Col(c)) != m.From.Col {
			return false
		}
		if chess.IsRank(c) && chess.RankConvert(chess.Rank(c)) != m.From.Row {
			return false
		}
	}
	return true
}

func notationError(input, expected, got string) error {
	return &errors.ParseError{Err: errors.ErrInvalidNotation, Input: input, Expected: expected, Got: got}
}
