package perft

import (
	"fmt"
	"io"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/lookahead-chess/internal/chess"
	"github.com/lgbarn/lookahead-chess/internal/engine"
)

// Mismatch is a root move whose count differs between generators. A count
// of zero means the generator does not produce the move.
type Mismatch struct {
	Move          string
	Ours          uint64
	Reference     uint64
	SecondOpinion uint64
}

// Report compares this engine's perft counts with both reference
// generators.
type Report struct {
	FEN           string
	Depth         int
	Ours          uint64
	Reference     uint64
	SecondOpinion uint64
	Mismatches    []Mismatch
}

// OK returns true if all three generators agree.
func (r *Report) OK() bool {
	return r.Ours == r.Reference && r.Ours == r.SecondOpinion && len(r.Mismatches) == 0
}

// Write prints the report, one line per mismatching root move.
func (r *Report) Write(w io.Writer) {
	fmt.Fprintf(w, "perft %d %s\n", r.Depth, r.FEN)
	fmt.Fprintf(w, "  lookahead:    %d\n", r.Ours)
	fmt.Fprintf(w, "  dragontooth:  %d\n", r.Reference)
	fmt.Fprintf(w, "  goosemg:      %d\n", r.SecondOpinion)
	for _, m := range r.Mismatches {
		fmt.Fprintf(w, "  %-6s %d / %d / %d\n", m.Move, m.Ours, m.Reference, m.SecondOpinion)
	}
}

// Verify divides the position to depth with this engine and both reference
// generators and reports every root move where they disagree. The three
// counts run concurrently; the board is only read by this engine's count.
func Verify(board *chess.Board, depth int) (*Report, error) {
	fen := engine.BoardToFEN(board)

	var ours, ref, second map[string]uint64
	var g errgroup.Group
	g.Go(func() error {
		ours = Divide(board, depth)
		return nil
	})
	g.Go(func() (err error) {
		ref, err = ReferenceDivide(fen, depth)
		return err
	})
	g.Go(func() (err error) {
		second, err = SecondOpinionDivide(fen, depth)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r := &Report{
		FEN:           fen,
		Depth:         depth,
		Ours:          sum(ours),
		Reference:     sum(ref),
		SecondOpinion: sum(second),
	}

	moves := make(map[string]bool)
	for _, m := range []map[string]uint64{ours, ref, second} {
		for move := range m {
			moves[move] = true
		}
	}
	for move := range moves {
		if ours[move] != ref[move] || ours[move] != second[move] {
			r.Mismatches = append(r.Mismatches, Mismatch{
				Move:          move,
				Ours:          ours[move],
				Reference:     ref[move],
				SecondOpinion: second[move],
			})
		}
	}
	sort.Slice(r.Mismatches, func(i, j int) bool {
		return r.Mismatches[i].Move < r.Mismatches[j].Move
	})
	return r, nil
}

func sum(counts map[string]uint64) uint64 {
	var total uint64
	for _, n := range counts {
		total += n
	}
	return total
}
