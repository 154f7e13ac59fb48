package session

import (
	"github.com/lgbarn/lookahead-chess/internal/chess"
	"github.com/lgbarn/lookahead-chess/internal/engine"
	"github.com/lgbarn/lookahead-chess/internal/errors"
)

// Resolve turns move text into one of the legal moves of the side to move.
// Text that names a move outside the legal list, such as castling for the
// wrong side, fails with ErrIllegalMove.
func Resolve(board *chess.Board, text string) (*chess.Move, error) {
	parsed, err := engine.ParseMove(board, text)
	if err != nil {
		return nil, err
	}
	for _, m := range engine.ValidMoves(board, board.ToMove, nil) {
		if m.Equal(parsed) {
			return m, nil
		}
	}
	return nil, errors.Wrapf(errors.ErrIllegalMove, "%q", text)
}

// Replay applies a sequence of moves in short algebraic notation. On
// failure the board keeps the moves applied before the bad one and the
// error is a *errors.GameError carrying its 1-based ply.
func Replay(board *chess.Board, moves []string) error {
	for i, text := range moves {
		m, err := Resolve(board, text)
		if err != nil {
			return &errors.GameError{Err: err, PlyNum: i + 1, MoveText: text}
		}
		engine.ApplyMove(board, m)
	}
	return nil
}
