// Package session runs a game between a human, the engine, or both.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/lookahead-chess/internal/chess"
	"github.com/lgbarn/lookahead-chess/internal/config"
	"github.com/lgbarn/lookahead-chess/internal/engine"
	"github.com/lgbarn/lookahead-chess/internal/errors"
	"github.com/lgbarn/lookahead-chess/internal/eval"
	"github.com/lgbarn/lookahead-chess/internal/hashing"
	"github.com/lgbarn/lookahead-chess/internal/search"
)

// Game is a game in progress. Board always holds the current position and
// Record the moves played so far.
type Game struct {
	ID     string
	Board  *chess.Board
	Record *chess.Game

	cfg       *config.Config
	evaluator *eval.Evaluator
	searcher  *search.Searcher
	reps      *hashing.RepetitionDetector
	outcome   Outcome
}

// New starts a game from cfg.Play.StartFEN (or the standard position) and
// plays cfg.Play.Moves.
func New(cfg *config.Config) (*Game, error) {
	board := chess.NewInitialBoard()
	if cfg.Play.StartFEN != "" {
		var err error
		board, err = engine.NewBoardFromFEN(cfg.Play.StartFEN)
		if err != nil {
			return nil, err
		}
	}

	ev := eval.New()
	g := &Game{
		ID:        uuid.NewString(),
		Board:     board,
		cfg:       cfg,
		evaluator: ev,
		searcher:  search.New(cfg, ev),
		reps:      hashing.NewRepetitionDetector(),
	}
	g.Record = g.newRecord()
	g.reps.Record(board)
	g.updateOutcome()

	for _, text := range cfg.Play.Moves {
		if _, err := g.PlayNotation(text); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Game) newRecord() *chess.Game {
	rec := chess.NewGame(g.ID)
	rec.SetTag(chess.EventTag, g.cfg.Output.Event)
	rec.SetTag(chess.SiteTag, g.cfg.Output.Site)
	rec.SetTag(chess.DateTag, time.Now().Format("2006.01.02"))
	rec.SetTag(chess.RoundTag, "-")
	rec.SetTag(chess.WhiteTag, g.playerName(chess.White))
	rec.SetTag(chess.BlackTag, g.playerName(chess.Black))
	rec.SetTag(chess.ResultTag, chess.Unfinished)
	rec.SetTag(chess.GameIDTag, g.ID)
	if g.cfg.Play.StartFEN != "" {
		rec.SetTag(chess.SetupTag, "1")
		rec.SetTag(chess.FENTag, engine.BoardToFEN(g.Board))
	}
	return rec
}

func (g *Game) playerName(colour chess.Colour) string {
	if g.cfg.Play.HumanPlays && g.cfg.Play.HumanColour == colour {
		return "Human"
	}
	return fmt.Sprintf("lookahead (%s)", g.cfg.Search.Policy)
}

// Outcome returns the state reached by the latest move.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Result returns the PGN result of the game so far.
func (g *Game) Result() string {
	return g.outcome.Result(g.Board.ToMove)
}

// IsHumanTurn returns true if the human plays the side to move.
func (g *Game) IsHumanTurn() bool {
	return g.cfg.Play.HumanPlays && g.cfg.Play.HumanColour == g.Board.ToMove
}

// LegalMoves returns the legal moves of the side to move.
func (g *Game) LegalMoves() []*chess.Move {
	return engine.ValidMoves(g.Board, g.Board.ToMove, nil)
}

// Evaluator returns the evaluator shared by the game's searches.
func (g *Game) Evaluator() *eval.Evaluator {
	return g.evaluator
}

// Searcher returns the engine's move selector.
func (g *Game) Searcher() *search.Searcher {
	return g.searcher
}

// PlayNotation plays a move given in short algebraic notation.
func (g *Game) PlayNotation(text string) (*chess.Move, error) {
	if g.outcome.IsOver() {
		return nil, g.gameError(errors.ErrGameOver, text)
	}
	m, err := Resolve(g.Board, text)
	if err != nil {
		return nil, g.gameError(err, text)
	}
	g.commit(m)
	return m, nil
}

// PlayEngine lets the engine choose and play a move for the side to move.
func (g *Game) PlayEngine(ctx context.Context) (*chess.Move, error) {
	if g.outcome.IsOver() {
		return nil, g.gameError(errors.ErrGameOver, "")
	}
	m, err := g.searcher.Choose(ctx, g.Board)
	if err != nil {
		return nil, g.gameError(err, "")
	}
	if g.cfg.Output.OutputEvaluation {
		m.Evaluation = g.searcher.LastStats().Score
	}
	g.commit(m)
	return m, nil
}

func (g *Game) commit(m *chess.Move) {
	engine.ApplyMove(g.Board, m)
	g.Record.AppendMove(m)
	count := g.reps.Record(g.Board)
	g.updateOutcome()
	if g.cfg.Verbosity > 1 {
		fmt.Fprintf(g.cfg.LogFile, "ply %d: position seen %d times, %d unique, most repeated %d\n",
			g.Board.Ply(), count, g.reps.UniqueCount(), g.reps.MaxCount())
	}
}

func (g *Game) gameError(err error, text string) error {
	return &errors.GameError{Err: err, GameID: g.ID, PlyNum: len(g.Record.Moves) + 1, MoveText: text}
}

// Undo takes back the last ply. It returns false if there is nothing to
// take back.
func (g *Game) Undo() bool {
	if len(g.Record.Moves) == 0 {
		return false
	}
	g.reps.Forget(g.Board)
	engine.UndoMove(g.Board)
	g.Record.TruncateMoves(len(g.Record.Moves) - 1)
	g.updateOutcome()
	return true
}

// Takeback undoes plies until it is the human's turn again, at most two.
// It returns the number of plies taken back.
func (g *Game) Takeback() int {
	n := 0
	for n < 2 && g.Undo() {
		n++
		if g.IsHumanTurn() {
			break
		}
	}
	return n
}

// updateOutcome recomputes the outcome of the current position.
func (g *Game) updateOutcome() {
	switch {
	case engine.IsCheckmate(g.Board):
		g.outcome = Checkmate
	case engine.IsStalemate(g.Board):
		g.outcome = Stalemate
	case engine.HasInsufficientMaterial(g.Board):
		g.outcome = InsufficientMaterial
	case g.reps.Count(g.Board) >= 3:
		g.outcome = ThreefoldRepetition
	case g.cfg.Play.MaxPlies > 0 && g.Board.Ply() >= g.cfg.Play.MaxPlies:
		g.outcome = PlyLimit
	default:
		g.outcome = Ongoing
	}
	g.Record.SetTag(chess.ResultTag, g.Result())
}

// Finish writes the closing tags of the record.
func (g *Game) Finish() *chess.Game {
	g.Record.SetTag(chess.ResultTag, g.Result())
	g.Record.SetTag(chess.PlyCountTag, fmt.Sprint(len(g.Record.Moves)))
	if g.outcome.IsOver() {
		g.Record.SetTag(chess.TerminationTag, g.outcome.String())
	}
	return g.Record
}
