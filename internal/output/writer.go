package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/lgbarn/lookahead-chess/internal/chess"
	"github.com/lgbarn/lookahead-chess/internal/config"
)

// GameWriter writes finished game records in one output format.
type GameWriter interface {
	WriteGame(game *chess.Game) error

	// Flush pushes buffered output to the underlying writer.
	Flush() error

	// Close flushes. It does not close the underlying writer.
	Close() error
}

// NewGameWriter returns the writer for the configured output format. JSON
// records are written one object per game.
func NewGameWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.Output.Format == config.JSON {
		return NewJSONWriterSingle(w, cfg)
	}
	return NewPGNWriter(w, cfg)
}

// PGNWriter writes records as PGN, separated by blank lines.
type PGNWriter struct {
	buf   *bufio.Writer
	cfg   *config.Config
	games int
}

// NewPGNWriter creates a buffered PGN writer.
func NewPGNWriter(w io.Writer, cfg *config.Config) *PGNWriter {
	return &PGNWriter{buf: bufio.NewWriter(w), cfg: cfg}
}

// WriteGame writes one record.
func (pw *PGNWriter) WriteGame(game *chess.Game) error {
	if pw.games > 0 {
		if err := pw.buf.WriteByte('\n'); err != nil {
			return err
		}
	}
	WritePGN(pw.buf, game, pw.cfg)
	pw.games++
	return nil
}

// Flush writes buffered PGN text.
func (pw *PGNWriter) Flush() error {
	return pw.buf.Flush()
}

// Close flushes the writer.
func (pw *PGNWriter) Close() error {
	return pw.Flush()
}

// JSONWriter writes records as JSON. In batch mode the records are held
// until Flush and written as one JSONOutput document; in single mode each
// record is written as its own object.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	single bool
	games  []*chess.Game
}

// NewJSONWriter creates a batch JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// NewJSONWriterSingle creates a JSON writer that writes each record as
// soon as it is given.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg, single: true}
}

// WriteGame writes or queues one record.
func (jw *JSONWriter) WriteGame(game *chess.Game) error {
	if jw.single {
		return WriteJSON(jw.w, game, jw.cfg)
	}
	jw.games = append(jw.games, game)
	return nil
}

// Flush writes the queued records, if any.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}

	doc := &JSONOutput{Games: make([]*JSONGame, 0, len(jw.games))}
	for _, game := range jw.games {
		jg, err := GameToJSON(game, jw.cfg)
		if err != nil {
			return err
		}
		doc.Games = append(doc.Games, jg)
	}
	jw.games = nil

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Close flushes the writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
