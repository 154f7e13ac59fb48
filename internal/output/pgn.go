// Package output writes game records as PGN or JSON.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/lookahead-chess/internal/chess"
	"github.com/lgbarn/lookahead-chess/internal/config"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WritePGN writes a game in PGN format. Moves the reference rules reject
// are written in coordinate form behind a comment instead of failing.
func WritePGN(w io.Writer, game *chess.Game, cfg *config.Config) {
	outputTags(game, w)

	// Blank line between tags and moves
	fmt.Fprintln(w)

	outputMoves(game, cfg, w)

	// Blank line between games
	fmt.Fprintln(w)
}

// outputTags writes the seven tag roster in order, then the other tags
// sorted by name.
func outputTags(game *chess.Game, w io.Writer) {
	for _, tag := range chess.SevenTagRoster {
		value := game.GetTag(tag)
		if tag == chess.ResultTag {
			value = game.Result()
		}
		if value == "" {
			value = "?"
		}
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(value))
	}

	extra := make([]string, 0, len(game.Tags))
	for tag := range game.Tags {
		if !chess.IsSevenTagRosterTag(tag) {
			extra = append(extra, tag)
		}
	}
	sort.Strings(extra)
	for _, tag := range extra {
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(game.Tags[tag]))
	}
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	// Fast path: if no escaping needed, return original string
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// outputMoves writes the movetext and the result.
func outputMoves(game *chess.Game, cfg *config.Config, w io.Writer) {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))

	start, err := startBoard(game)
	if err != nil {
		ow.Write(fmt.Sprintf("{%v}", err))
		ow.Write(game.Result())
		ow.NewLine()
		return
	}

	san, rejected := SANMoves(game)
	moveNum := start.MoveNumber
	isWhite := start.ToMove == chess.White

	for i, move := range game.Moves {
		if isWhite {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			// Black to move at start
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}

		if i == rejected {
			ow.Write("{not accepted by reference rules}")
		}
		ow.Write(san[i])

		if cfg.Output.OutputEvaluation {
			ow.Write(fmt.Sprintf("{%.2f}", move.Evaluation))
		}

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}

	ow.Write(game.Result())
	ow.NewLine()
}

// SANMoves renders the record in standard algebraic notation by replaying
// it through notnil/chess. If the reference rules reject a move, it and
// every later move are rendered in coordinate form and rejected is its
// index; otherwise rejected is -1.
func SANMoves(game *chess.Game) (san []string, rejected int) {
	san = make([]string, len(game.Moves))
	rejected = -1

	ref, err := referenceGame(game)
	if err != nil {
		rejected = 0
	}
	for i, m := range game.Moves {
		if rejected < 0 {
			if err := ref.MoveStr(m.UCI()); err != nil {
				rejected = i
			}
		}
		san[i] = m.UCI()
	}

	moves := ref.Moves()
	positions := ref.Positions()
	for i, mv := range moves {
		if rejected >= 0 && i >= rejected {
			break
		}
		san[i] = notnil.AlgebraicNotation{}.Encode(positions[i], mv)
	}
	return san, rejected
}

// referenceGame creates a notnil game at the record's start position that
// accepts UCI move text.
func referenceGame(game *chess.Game) (*notnil.Game, error) {
	opts := []func(*notnil.Game){notnil.UseNotation(notnil.UCINotation{})}
	if fen := game.FEN(); fen != "" {
		fenOpt, err := notnil.FEN(fen)
		if err != nil {
			return notnil.NewGame(opts...), err
		}
		opts = append(opts, fenOpt)
	}
	return notnil.NewGame(opts...), nil
}
