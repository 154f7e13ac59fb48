package perft

import (
	"github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/lookahead-chess/internal/engine"
)

// Reference counts leaf nodes with dragontoothmg. The FEN is checked with
// this engine's parser first because dragontoothmg does not report errors.
func Reference(fen string, depth int) (uint64, error) {
	if _, err := engine.NewBoardFromFEN(fen); err != nil {
		return 0, err
	}
	board := dragontoothmg.ParseFen(fen)
	return referenceCount(&board, depth), nil
}

// ReferenceDivide is Divide computed with dragontoothmg.
func ReferenceDivide(fen string, depth int) (map[string]uint64, error) {
	if _, err := engine.NewBoardFromFEN(fen); err != nil {
		return nil, err
	}
	result := make(map[string]uint64)
	if depth <= 0 {
		return result, nil
	}
	board := dragontoothmg.ParseFen(fen)
	for _, m := range board.GenerateLegalMoves() {
		unapply := board.Apply(m)
		result[m.String()] = referenceCount(&board, depth-1)
		unapply()
	}
	return result, nil
}

func referenceCount(board *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := board.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := board.Apply(m)
		nodes += referenceCount(board, depth-1)
		unapply()
	}
	return nodes
}

// SecondOpinion counts leaf nodes with GooseEngineMG.
func SecondOpinion(fen string, depth int) (uint64, error) {
	board, err := goosemg.ParseFEN(fen)
	if err != nil {
		return 0, err
	}
	return goosemg.Perft(board, depth), nil
}

// SecondOpinionDivide is Divide computed with GooseEngineMG.
func SecondOpinionDivide(fen string, depth int) (map[string]uint64, error) {
	board, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	result := make(map[string]uint64)
	for m, n := range goosemg.PerftDivide(board, depth) {
		result[m.String()] = n
	}
	return result, nil
}
