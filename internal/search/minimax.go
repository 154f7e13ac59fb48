package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/lookahead-chess/internal/chess"
	"github.com/lgbarn/lookahead-chess/internal/engine"
	"github.com/lgbarn/lookahead-chess/internal/worker"
)

// Bounds of the two-ply search value.
const (
	lowestValue  = -1000.0
	highestValue = 1000.0
)

// MinimaxValue returns the two-ply value of playing move on board.
//
// Every reply of the opponent is scored by the lowest evaluation among the
// mover's answers to it, or by the static evaluation when there are none.
// The value is the highest such reply score, or lowestValue when the
// opponent has no reply. Evaluations are taken from the mover's side. The
// board is restored before returning.
func MinimaxValue(board *chess.Board, move *chess.Move, scorer engine.Scorer) float64 {
	value := lowestValue
	engine.WithMove(board, move, func() {
		replies := engine.ValidMoves(board, board.ToMove.Opposite(), scorer)
		for _, reply := range replies {
			engine.WithMove(board, reply, func() {
				counters := engine.ValidMoves(board, board.ToMove, scorer)
				score := highestValue
				if len(counters) == 0 {
					score = scorer.Score(board, board.ToMove)
				}
				for _, c := range counters {
					score = min(score, c.Evaluation)
				}
				value = max(value, score)
			})
		}
	})
	return value
}

// minimaxMove evaluates every root move in parallel and picks the lowest
// value. Each worker owns a clone of the board, so the caller's board is
// never touched.
func (s *Searcher) minimaxMove(ctx context.Context, board *chess.Board, moves []*chess.Move) (*chess.Move, float64, error) {
	scores, err := s.minimaxScores(ctx, board, moves)
	if err != nil {
		return nil, 0, err
	}
	move, score := s.pick(moves, scores, func(a, b float64) bool { return a < b })
	return move, score, nil
}

// minimaxScores fans the root moves out to a worker pool and collects the
// values in root-move order. The first worker failure or a cancelled ctx
// fails the whole call.
func (s *Searcher) minimaxScores(ctx context.Context, board *chess.Board, moves []*chess.Move) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	numWorkers := s.workers
	if numWorkers == 0 || numWorkers > len(moves) {
		numWorkers = len(moves)
	}

	pool := worker.NewPool(numWorkers, len(moves), func(item worker.WorkItem) worker.Result {
		return worker.Result{Score: s.value(item.Board, item.Move)}
	})
	pool.Start()
	s.poolWorkers = pool.NumWorkers()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer pool.Close()
		for i, m := range moves {
			if err := gctx.Err(); err != nil {
				pool.Stop()
				return err
			}
			pool.Submit(worker.WorkItem{Board: board.Clone(), Move: m, Index: i})
		}
		return nil
	})

	scores := make([]float64, len(moves))
	g.Go(func() error {
		var firstErr error
		for res := range pool.Results() {
			if res.Err != nil {
				if firstErr == nil {
					firstErr = res.Err
					pool.Stop()
				}
				continue
			}
			scores[res.Index] = res.Score
		}
		return firstErr
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}
