package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/lookahead-chess/internal/chess"
	"github.com/lgbarn/lookahead-chess/internal/config"
	"github.com/lgbarn/lookahead-chess/internal/engine"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID         string            `json:"id,omitempty"`
	Tags       map[string]string `json:"tags"`
	Moves      []JSONMove        `json:"moves,omitempty"`
	Result     string            `json:"result"`
	PlyCount   int               `json:"plyCount"`
	InitialFEN string            `json:"initialFEN,omitempty"`
	FinalFEN   string            `json:"finalFEN"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int      `json:"moveNumber,omitempty"`
	Color      string   `json:"color"` // "white" or "black"
	SAN        string   `json:"san"`
	UCI        string   `json:"uci"`
	From       string   `json:"from"`
	To         string   `json:"to"`
	Piece      string   `json:"piece"`
	Captured   string   `json:"captured,omitempty"`
	Promotion  string   `json:"promotion,omitempty"`
	Castle     bool     `json:"castle,omitempty"`
	Check      bool     `json:"check,omitempty"`
	Evaluation *float64 `json:"evaluation,omitempty"`
	FEN        string   `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// WriteJSON writes a single game in JSON format.
func WriteJSON(w io.Writer, game *chess.Game, cfg *config.Config) error {
	jg, err := GameToJSON(game, cfg)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jg)
}

// GameToJSON converts a game record to JSON format by replaying it from
// its start position.
func GameToJSON(game *chess.Game, cfg *config.Config) (*JSONGame, error) {
	board, err := startBoard(game)
	if err != nil {
		return nil, err
	}

	jg := &JSONGame{
		ID:         game.ID,
		Tags:       copyTags(game.Tags),
		Result:     game.Result(),
		PlyCount:   game.PlyCount(),
		InitialFEN: game.FEN(),
	}

	san, _ := SANMoves(game)
	jg.Moves = make([]JSONMove, 0, len(game.Moves))
	for i, move := range game.Moves {
		jm := convertMove(move, board.MoveNumber, san[i])
		if cfg.Output.OutputEvaluation {
			ev := move.Evaluation
			jm.Evaluation = &ev
		}

		engine.ApplyMove(board, move)
		if cfg.Output.AddFENComments {
			jm.FEN = engine.BoardToFEN(board)
		}
		jg.Moves = append(jg.Moves, jm)
	}
	jg.FinalFEN = engine.BoardToFEN(board)

	return jg, nil
}

// startBoard returns the position the record starts from.
func startBoard(game *chess.Game) (*chess.Board, error) {
	return engine.NewBoardForGame(game)
}

// copyTags copies game tags and ensures seven tag roster has values.
func copyTags(tags map[string]string) map[string]string {
	result := make(map[string]string, len(tags)+len(chess.SevenTagRoster))
	for k, v := range tags {
		result[k] = v
	}
	for _, tag := range chess.SevenTagRoster {
		if _, ok := result[tag]; !ok {
			result[tag] = "?"
		}
	}
	return result
}

// convertMove converts a single move to JSON format. moveNum is the full
// move number of the position the move is played from.
func convertMove(move *chess.Move, moveNum uint, san string) JSONMove {
	colour := move.Colour()
	jm := JSONMove{
		Color:  strings.ToLower(colour.String()),
		SAN:    san,
		UCI:    move.UCI(),
		From:   move.From.String(),
		To:     move.To.String(),
		Piece:  pieceTypeName(move.Kind()),
		Castle: move.IsCastle,
		Check:  move.IsCheck,
	}

	if colour == chess.White {
		jm.MoveNumber = int(moveNum)
	}
	if move.IsCapture() {
		jm.Captured = pieceTypeName(chess.ExtractPiece(move.PieceCaptured))
	}
	if move.IsPromotion {
		jm.Promotion = pieceTypeName(chess.Queen)
	}
	return jm
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(p chess.Piece) string {
	switch p {
	case chess.Pawn, chess.Knight, chess.Bishop, chess.Rook, chess.Queen, chess.King:
		return strings.ToLower(p.String())
	default:
		return ""
	}
}
