package eval

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/lookahead-chess/internal/chess"
	"github.com/lgbarn/lookahead-chess/internal/engine"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func mustFEN(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

// flipped returns the board rotated 180 degrees with colours swapped.
func flipped(b *chess.Board) *chess.Board {
	f := chess.NewBoard()
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := b.Squares[row][col]
			if !chess.IsOccupied(p) {
				continue
			}
			sq := chess.Sq(row, col).Mirror()
			colour := chess.ExtractColour(p).Opposite()
			f.Set(sq, chess.MakeColouredPiece(colour, chess.ExtractPiece(p)))
			if chess.ExtractPiece(p) == chess.King {
				f.SetKingSquare(colour, sq)
			}
		}
	}
	f.ToMove = b.ToMove.Opposite()
	return f
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantWhite float64
		wantBlack float64
	}{
		{"initial position", engine.InitialFEN, 0, 0},
		{"after 1.e4", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", 0.4, 0.4},
		{"side to move in check", "R3k3/8/8/8/8/8/8/4K3 b - - 0 1", 7.5, 3.5},
		{"rook up", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			e := New()
			if diff := cmp.Diff(tt.wantWhite, e.Evaluate(board, chess.White), approx); diff != "" {
				t.Errorf("Evaluate(White) mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantBlack, e.Evaluate(board, chess.Black), approx); diff != "" {
				t.Errorf("Evaluate(Black) mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvaluate_StalematePenalty(t *testing.T) {
	board := mustFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	engine.ValidMoves(board, board.ToMove, nil)
	if !board.StaleMate {
		t.Fatal("StaleMate = false; want true")
	}

	e := New()
	if diff := cmp.Diff(3.0, e.Evaluate(board, chess.White), approx); diff != "" {
		t.Errorf("Evaluate(White) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(8.0, e.Evaluate(board, chess.Black), approx); diff != "" {
		t.Errorf("Evaluate(Black) mismatch (-want +got):\n%s", diff)
	}
}

func TestMaterial_Symmetry(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"4k3/8/8/8/8/8/8/R3K3 w - - 0 1",
	}

	for _, fen := range fens {
		board := mustFEN(t, fen)
		got := Material(flipped(board))
		want := -Material(board)
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("%s: flipped material mismatch (-want +got):\n%s", fen, diff)
		}
	}
}

func TestEvaluate_PerspectiveInverse(t *testing.T) {
	e := New()
	board := chess.NewInitialBoard()
	white := e.Evaluate(board, chess.White)
	black := e.Evaluate(board, chess.Black)
	if diff := cmp.Diff(-white, black, approx); diff != "" {
		t.Errorf("perspectives are not inverse (-want +got):\n%s", diff)
	}
}

func TestNodes(t *testing.T) {
	e := New()
	board := chess.NewInitialBoard()
	for i := 0; i < 3; i++ {
		e.Evaluate(board, chess.White)
	}
	if got := e.Nodes(); got != 3 {
		t.Errorf("Nodes() = %d; want 3", got)
	}

	e.ResetNodes()
	if got := e.Nodes(); got != 0 {
		t.Errorf("Nodes() after reset = %d; want 0", got)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := board.Clone()
			for j := 0; j < 100; j++ {
				e.Score(b, chess.Black)
			}
		}()
	}
	wg.Wait()
	if got := e.Nodes(); got != 800 {
		t.Errorf("Nodes() after concurrent use = %d; want 800", got)
	}
}
