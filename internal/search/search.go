// Package search selects moves with fixed-depth look-ahead.
package search

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/lgbarn/lookahead-chess/internal/chess"
	"github.com/lgbarn/lookahead-chess/internal/config"
	"github.com/lgbarn/lookahead-chess/internal/engine"
	"github.com/lgbarn/lookahead-chess/internal/errors"
	"github.com/lgbarn/lookahead-chess/internal/eval"
)

// Stats describes the most recent search.
type Stats struct {
	Policy  config.Policy
	Moves   int           // root moves considered
	Workers int           // goroutines that scored root moves
	Nodes   int64         // static evaluations made
	Elapsed time.Duration // wall time of the search
	Score   float64       // value of the chosen move (0 for random)
}

// NodesPerSecond returns the evaluation throughput of the search.
func (s Stats) NodesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Nodes) / s.Elapsed.Seconds()
}

// Searcher chooses moves for the side to move. A Searcher is not safe for
// concurrent use; the minimax policy manages its own goroutines.
type Searcher struct {
	policy  config.Policy
	workers int
	eval    *eval.Evaluator
	rng     *rand.Rand

	// value scores one root move for the minimax policy.
	value func(board *chess.Board, move *chess.Move) float64

	logFile   io.Writer
	verbosity int

	last        Stats
	poolWorkers int
}

// New creates a Searcher from the search section of cfg.
func New(cfg *config.Config, ev *eval.Evaluator) *Searcher {
	seed := cfg.Search.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if ev == nil {
		ev = eval.New()
	}
	s := &Searcher{
		policy:    cfg.Search.Policy,
		workers:   cfg.Search.Workers,
		eval:      ev,
		rng:       rand.New(rand.NewSource(seed)),
		logFile:   cfg.LogFile,
		verbosity: cfg.Verbosity,
	}
	s.value = func(board *chess.Board, move *chess.Move) float64 {
		return MinimaxValue(board, move, s.eval)
	}
	return s
}

// Policy returns the configured policy.
func (s *Searcher) Policy() config.Policy {
	return s.policy
}

// LastStats returns the statistics of the most recent Choose.
func (s *Searcher) LastStats() Stats {
	return s.last
}

// Play chooses a move for the side to move and applies it.
func (s *Searcher) Play(ctx context.Context, board *chess.Board) (*chess.Move, error) {
	move, err := s.Choose(ctx, board)
	if err != nil {
		return nil, err
	}
	engine.ApplyMove(board, move)
	return move, nil
}

// Choose selects a move for the side to move without applying it. The
// board is left as it was found. ErrNoLegalMoves is returned in a
// terminal position.
func (s *Searcher) Choose(ctx context.Context, board *chess.Board) (*chess.Move, error) {
	moves := engine.ValidMoves(board, board.ToMove, nil)
	if len(moves) == 0 {
		return nil, errors.Wrapf(errors.ErrNoLegalMoves, "%s to move", board.ToMove)
	}

	start := time.Now()
	startNodes := s.eval.Nodes()

	var (
		move  *chess.Move
		score float64
		err   error
	)
	switch s.policy {
	case config.Random:
		move = s.randomMove(moves)
	case config.Greedy:
		move, score = s.greedyMove(board, moves)
	case config.Minimax:
		move, score, err = s.minimaxMove(ctx, board, moves)
	default:
		err = fmt.Errorf("policy %v: %w", s.policy, errors.ErrInvalidConfig)
	}
	if err != nil {
		return nil, err
	}

	workers := 1
	if s.policy == config.Minimax {
		workers = s.poolWorkers
	}
	s.last = Stats{
		Policy:  s.policy,
		Moves:   len(moves),
		Workers: workers,
		Nodes:   s.eval.Nodes() - startNodes,
		Elapsed: time.Since(start),
		Score:   score,
	}
	if s.verbosity > 1 {
		fmt.Fprintf(s.logFile, "%s: %s score %.2f, %d moves, workers: %d, nodes: %d, nodes/s: %.2f\n",
			s.policy, move, score, s.last.Moves, s.last.Workers, s.last.Nodes, s.last.NodesPerSecond())
	}
	return move, nil
}

func (s *Searcher) randomMove(moves []*chess.Move) *chess.Move {
	return moves[s.rng.Intn(len(moves))]
}

// greedyMove scores every root move one ply ahead from White's point of
// view, maximising for White and minimising for Black.
func (s *Searcher) greedyMove(board *chess.Board, moves []*chess.Move) (*chess.Move, float64) {
	scores := make([]float64, len(moves))
	for i, m := range moves {
		engine.WithMove(board, m, func() {
			// Only run for its mate and stalemate flags.
			engine.ValidMoves(board, board.ToMove, nil)
			scores[i] = s.eval.Evaluate(board, chess.White)
		})
	}

	if board.ToMove == chess.White {
		return s.pick(moves, scores, func(a, b float64) bool { return a > b })
	}
	return s.pick(moves, scores, func(a, b float64) bool { return a < b })
}

// pick returns a uniformly random move among those whose score no other
// score beats.
func (s *Searcher) pick(moves []*chess.Move, scores []float64, better func(a, b float64) bool) (*chess.Move, float64) {
	best := scores[0]
	for _, sc := range scores[1:] {
		if better(sc, best) {
			best = sc
		}
	}
	var ties []int
	for i, sc := range scores {
		if sc == best {
			ties = append(ties, i)
		}
	}
	return moves[ties[s.rng.Intn(len(ties))]], best
}
