package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/lookahead-chess/internal/chess"
	"github.com/lgbarn/lookahead-chess/internal/config"
	"github.com/lgbarn/lookahead-chess/internal/engine"
	"github.com/lgbarn/lookahead-chess/internal/output"
	"github.com/lgbarn/lookahead-chess/internal/session"
)

// player drives a game from a line-oriented console. Prompts and boards go
// to out; engine moves and results go to the log.
type player struct {
	game *session.Game
	cfg  *config.Config
	in   *bufio.Scanner
	out  io.Writer
}

// runGame plays a game until it ends or the human quits, then writes the
// record. The record is written even if the game stops on an error.
func runGame(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	g, err := session.New(cfg)
	if err != nil {
		return err
	}

	p := &player{
		game: g,
		cfg:  cfg,
		in:   bufio.NewScanner(in),
		out:  out,
	}
	playErr := p.play(ctx)

	if err := writeRecord(cfg, g); err != nil {
		return err
	}
	return playErr
}

// play alternates human and engine turns until the game is over.
func (p *player) play(ctx context.Context) error {
	if p.game.IsHumanTurn() {
		fmt.Fprint(p.out, p.game.Board)
	}

	for !p.game.Outcome().IsOver() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !p.game.IsHumanTurn() {
			m, err := p.game.PlayEngine(ctx)
			if err != nil {
				return err
			}
			p.announce(m)
			if p.game.IsHumanTurn() {
				fmt.Fprint(p.out, p.game.Board)
			}
			continue
		}

		done, err := p.humanTurn()
		if err != nil || done {
			return err
		}
	}

	if p.cfg.Verbosity > 0 {
		fmt.Fprintf(p.cfg.LogFile, "Game over: %s %s\n", p.game.Outcome(), p.game.Result())
	}
	return nil
}

// humanTurn reads one console line and acts on it. It returns done when
// the human quits or the input ends.
func (p *player) humanTurn() (done bool, err error) {
	fmt.Fprintf(p.out, "%s to move> ", p.game.Board.ToMove)
	if !p.in.Scan() {
		return true, p.in.Err()
	}

	line := strings.TrimSpace(p.in.Text())
	switch strings.ToLower(line) {
	case "":
	case "quit", "exit":
		return true, nil
	case "undo":
		if p.game.Takeback() == 0 {
			fmt.Fprintln(p.out, "Nothing to undo")
			break
		}
		fmt.Fprint(p.out, p.game.Board)
	case "board":
		fmt.Fprint(p.out, p.game.Board)
	case "fen":
		fmt.Fprintln(p.out, engine.BoardToFEN(p.game.Board))
	case "moves":
		fmt.Fprintln(p.out, strings.Join(legalMoveList(p.game.LegalMoves()), " "))
	default:
		if _, err := p.game.PlayNotation(line); err != nil {
			fmt.Fprintf(p.out, "%v\n", err)
		}
	}
	return false, nil
}

// announce logs an engine move in standard algebraic notation.
func (p *player) announce(m *chess.Move) {
	if p.cfg.Verbosity == 0 {
		return
	}
	text := m.String()
	if san, _ := output.SANMoves(p.game.Record); len(san) > 0 {
		text = san[len(san)-1]
	}
	fmt.Fprintf(p.cfg.LogFile, "%s plays %s\n", m.Colour(), text)
}

// legalMoveList returns the coordinate text of moves, sorted.
func legalMoveList(moves []*chess.Move) []string {
	list := make([]string, len(moves))
	for i, m := range moves {
		list[i] = m.String()
	}
	sort.Strings(list)
	return list
}

// writeRecord writes the finished game to the configured output.
func writeRecord(cfg *config.Config, g *session.Game) error {
	w := output.NewGameWriter(cfg.OutputFile, cfg)
	if err := w.WriteGame(g.Finish()); err != nil {
		return err
	}
	return w.Close()
}
