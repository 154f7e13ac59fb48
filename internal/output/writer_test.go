package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/lookahead-chess/internal/chess"
	"github.com/lgbarn/lookahead-chess/internal/config"
	"github.com/lgbarn/lookahead-chess/internal/engine"
)

// recordGame plays moves from fen ("" for the standard position) and
// returns the record with the seven tag roster filled in.
func recordGame(t *testing.T, fen string, moves ...string) *chess.Game {
	t.Helper()
	game := chess.NewGame("test-game")
	game.SetTag(chess.EventTag, "Test")
	game.SetTag(chess.WhiteTag, "Fischer")
	game.SetTag(chess.BlackTag, "Spassky")
	if fen != "" {
		game.SetTag(chess.SetupTag, "1")
		game.SetTag(chess.FENTag, fen)
	}

	board, err := engine.NewBoardForGame(game)
	if err != nil {
		t.Fatalf("NewBoardForGame: %v", err)
	}
	for _, text := range moves {
		m, err := engine.ParseMove(board, text)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", text, err)
		}
		engine.ApplyMove(board, m)
		game.AppendMove(m)
	}
	return game
}

func testConfig() *config.Config {
	return config.NewConfigBuilder().WithOutput(&bytes.Buffer{}).Build()
}

func TestWritePGN(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		moves    []string
		result   string
		wantText string
	}{
		{
			name:     "opening",
			moves:    []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6"},
			wantText: "1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 *",
		},
		{
			name:     "scholar's mate",
			moves:    []string{"e4", "e5", "Bc4", "Nc6", "Qh5", "Nf6", "Qxf7#"},
			result:   chess.WhiteWins,
			wantText: "1. e4 e5 2. Bc4 Nc6 3. Qh5 Nf6 4. Qxf7# 1-0",
		},
		{
			name:     "castling",
			fen:      "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves:    []string{"O-O", "Rb8"},
			wantText: "1. O-O Rb8 *",
		},
		{
			name:     "black starts",
			fen:      "4k3/8/8/8/8/8/8/R3K3 b Q - 0 5",
			moves:    []string{"Kd7", "Ra7+"},
			wantText: "5... Kd7 6. Ra7+ *",
		},
		{
			name:     "rejected by reference rules",
			fen:      "4k3/8/8/8/8/8/4p3/4K2R w K - 0 1",
			moves:    []string{"O-O"},
			wantText: "1. {not accepted by reference rules} e1g1 *",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := recordGame(t, tt.fen, tt.moves...)
			if tt.result != "" {
				game.SetTag(chess.ResultTag, tt.result)
			}

			var buf bytes.Buffer
			WritePGN(&buf, game, testConfig())
			out := buf.String()

			if !strings.Contains(out, tt.wantText) {
				t.Errorf("movetext missing %q in:\n%s", tt.wantText, out)
			}
			if !strings.HasPrefix(out, `[Event "Test"]`) {
				t.Errorf("PGN should start with the Event tag:\n%s", out)
			}
			if tt.fen != "" && !strings.Contains(out, `[FEN "`+tt.fen+`"]`) {
				t.Errorf("missing FEN tag:\n%s", out)
			}
		})
	}
}

func TestWritePGN_TagOrder(t *testing.T) {
	game := recordGame(t, "", "e4")
	game.SetTag(chess.GameIDTag, "abc")
	game.SetTag("Annotator", `lookahead "v1"`)

	var buf bytes.Buffer
	WritePGN(&buf, game, testConfig())
	lines := strings.Split(buf.String(), "\n")

	want := []string{
		`[Event "Test"]`,
		`[Site "?"]`,
		`[Date "?"]`,
		`[Round "?"]`,
		`[White "Fischer"]`,
		`[Black "Spassky"]`,
		`[Result "*"]`,
		`[Annotator "lookahead \"v1\""]`,
		`[GameId "abc"]`,
		``,
		`1. e4 *`,
	}
	if diff := cmp.Diff(want, lines[:len(want)]); diff != "" {
		t.Errorf("PGN header mismatch (-want +got):\n%s", diff)
	}
}

func TestWritePGN_Evaluations(t *testing.T) {
	game := recordGame(t, "", "e4")
	game.Moves[0].Evaluation = 0.4

	cfg := testConfig()
	cfg.Output.OutputEvaluation = true

	var buf bytes.Buffer
	WritePGN(&buf, game, cfg)
	if !strings.Contains(buf.String(), "1. e4 {0.40} *") {
		t.Errorf("missing evaluation comment:\n%s", buf.String())
	}
}

func TestOutputWriter_Wraps(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 10)
	for _, s := range []string{"1.", "e4", "e5", "2.", "Nf3"} {
		ow.Write(s)
	}
	ow.NewLine()

	if got, want := buf.String(), "1. e4 e5\n2. Nf3\n"; got != want {
		t.Errorf("wrapped output = %q, want %q", got, want)
	}
}

func TestSANMoves(t *testing.T) {
	game := recordGame(t, "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1", "c4", "dxc3")
	san, rejected := SANMoves(game)
	if rejected != -1 {
		t.Errorf("rejected = %d, want -1", rejected)
	}
	if diff := cmp.Diff([]string{"c4", "dxc3"}, san); diff != "" {
		t.Errorf("SANMoves() mismatch (-want +got):\n%s", diff)
	}
}

// TestJSONWriter_WriteGame verifies JSON writer outputs valid JSON
func TestJSONWriter_WriteGame(t *testing.T) {
	game := recordGame(t, "", "e4", "d5", "exd5")

	var buf bytes.Buffer
	writer := NewJSONWriterSingle(&buf, testConfig())
	if err := writer.WriteGame(game); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}

	var got JSONGame
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	if got.ID != "test-game" || got.PlyCount != 3 || got.Result != chess.Unfinished {
		t.Errorf("game fields = %q, %d, %q", got.ID, got.PlyCount, got.Result)
	}
	if got.Tags[chess.SiteTag] != "?" {
		t.Errorf("missing roster tags should read \"?\", got %q", got.Tags[chess.SiteTag])
	}
	wantFinal := "rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2"
	if got.FinalFEN != wantFinal {
		t.Errorf("FinalFEN = %q, want %q", got.FinalFEN, wantFinal)
	}

	wantMoves := []JSONMove{
		{MoveNumber: 1, Color: "white", SAN: "e4", UCI: "e2e4", From: "e2", To: "e4", Piece: "pawn"},
		{Color: "black", SAN: "d5", UCI: "d7d5", From: "d7", To: "d5", Piece: "pawn"},
		{MoveNumber: 2, Color: "white", SAN: "exd5", UCI: "e4d5", From: "e4", To: "d5", Piece: "pawn", Captured: "pawn"},
	}
	if diff := cmp.Diff(wantMoves, got.Moves); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}
}

func TestGameToJSON_Annotations(t *testing.T) {
	game := recordGame(t, "", "e4")
	game.Moves[0].Evaluation = 0.4

	cfg := testConfig()
	cfg.Output.OutputEvaluation = true
	cfg.Output.AddFENComments = true

	jg, err := GameToJSON(game, cfg)
	if err != nil {
		t.Fatal(err)
	}
	m := jg.Moves[0]
	if m.Evaluation == nil || *m.Evaluation != 0.4 {
		t.Errorf("Evaluation = %v, want 0.4", m.Evaluation)
	}
	if m.FEN != "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1" {
		t.Errorf("FEN = %q", m.FEN)
	}
}

func TestGameToJSON_BadFEN(t *testing.T) {
	game := chess.NewGame("bad")
	game.SetTag(chess.FENTag, "nonsense")
	if _, err := GameToJSON(game, testConfig()); err == nil {
		t.Error("GameToJSON should fail on an unreadable FEN tag")
	}
}

func TestNewGameWriter(t *testing.T) {
	cfg := testConfig()
	if _, ok := NewGameWriter(&bytes.Buffer{}, cfg).(*PGNWriter); !ok {
		t.Error("PGN format should give a PGNWriter")
	}
	cfg.Output.Format = config.JSON
	if _, ok := NewGameWriter(&bytes.Buffer{}, cfg).(*JSONWriter); !ok {
		t.Error("JSON format should give a JSONWriter")
	}
}

// TestJSONWriter_Close verifies batched games are written on Close
func TestJSONWriter_Close(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf, testConfig())

	for _, first := range []string{"e4", "d4"} {
		if err := writer.WriteGame(recordGame(t, "", first)); err != nil {
			t.Fatal(err)
		}
	}
	if buf.Len() != 0 {
		t.Error("batch writer should not write before Close")
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out.Games) != 2 {
		t.Fatalf("got %d games, want 2", len(out.Games))
	}
	if out.Games[1].Moves[0].SAN != "d4" {
		t.Errorf("second game first move = %q", out.Games[1].Moves[0].SAN)
	}
}

func TestPGNWriter_FlushClose(t *testing.T) {
	var buf bytes.Buffer
	var writer GameWriter = NewPGNWriter(&buf, testConfig())

	if err := writer.WriteGame(recordGame(t, "", "e4")); err != nil {
		t.Fatal(err)
	}
	if err := writer.Flush(); err != nil {
		t.Errorf("Flush() = %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if !strings.Contains(buf.String(), "1. e4 *") {
		t.Errorf("output missing movetext:\n%s", buf.String())
	}
}
