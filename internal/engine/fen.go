package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/lookahead-chess/internal/chess"
	"github.com/lgbarn/lookahead-chess/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	return chess.PieceFromLetter(byte(unicode.ToUpper(rune(c))))
}

// ColouredPieceToFENLetter returns the FEN letter for a coloured piece.
func ColouredPieceToFENLetter(colouredPiece chess.Piece) byte {
	letter := chess.ExtractPiece(colouredPiece).Letter()
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a FEN string. Missing trailing
// fields take their usual defaults. The board's history starts empty.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Expected: "piece placement", Got: "empty string"}
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}
	parseMoveNumber(board, parts)

	board.ResetHistory()
	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	row, col := 0, 0
	kings := map[chess.Colour]int{}

	for i := 0; i < len(positions); i++ {
		c := positions[i]
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return fenError(positions, i+1, "8 squares in rank", strconv.Itoa(col))
			}
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			piece := ConvertFENCharToPiece(c)
			if piece == chess.Empty {
				return fenError(positions, i+1, "piece letter", string(c))
			}
			if col >= chess.BoardSize || row >= chess.BoardSize {
				return fenError(positions, i+1, "square on board", "overflow")
			}

			colour := chess.White
			if unicode.IsLower(rune(c)) {
				colour = chess.Black
			}
			sq := chess.Sq(row, col)
			board.Set(sq, chess.MakeColouredPiece(colour, piece))
			if piece == chess.King {
				board.SetKingSquare(colour, sq)
				kings[colour]++
			}
			col++
		}
		if col > chess.BoardSize {
			return fenError(positions, i+1, "8 squares in rank", strconv.Itoa(col))
		}
	}

	if row != chess.BoardSize-1 || col != chess.BoardSize {
		return fenError(positions, 0, "8 ranks", strconv.Itoa(row+1))
	}
	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return fenError(positions, 0, "one king per side",
			fmt.Sprintf("%d white, %d black", kings[chess.White], kings[chess.Black]))
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fenError(parts[1], 0, "w or b", parts[1])
	}
	return nil
}

// parseCastlingRights parses the castling availability field. A right
// whose king or rook is not on its original square is dropped.
func parseCastlingRights(board *chess.Board, parts []string) error {
	board.Castling = chess.CastleRights{}
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for i, c := range parts[2] {
		switch c {
		case 'K':
			board.Castling.WhiteKingside = true
		case 'Q':
			board.Castling.WhiteQueenside = true
		case 'k':
			board.Castling.BlackKingside = true
		case 'q':
			board.Castling.BlackQueenside = true
		default:
			return fenError(parts[2], i+1, "castling letter", string(c))
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		home := chess.HomeRow(colour)
		if board.Get(chess.Sq(home, 4)) != chess.MakeColouredPiece(colour, chess.King) {
			board.Castling.RevokeKingside(colour)
			board.Castling.RevokeQueenside(colour)
			continue
		}
		rook := chess.MakeColouredPiece(colour, chess.Rook)
		if board.Get(chess.Sq(home, chess.BoardSize-1)) != rook {
			board.Castling.RevokeKingside(colour)
		}
		if board.Get(chess.Sq(home, 0)) != rook {
			board.Castling.RevokeQueenside(colour)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string) error {
	board.EnPassant = chess.NoSquare
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(parts[3])
	if !ok {
		return fenError(parts[3], 0, "en-passant square", parts[3])
	}
	board.EnPassant = sq
	return nil
}

// parseMoveNumber parses the fullmove number field. The halfmove clock
// is not tracked.
func parseMoveNumber(board *chess.Board, parts []string) {
	if len(parts) >= 6 {
		if n, err := strconv.ParseUint(parts[5], 10, 32); err == nil && n > 0 {
			board.MoveNumber = uint(n)
		}
	}
}

func fenError(input string, pos int, expected, got string) error {
	return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: input, Pos: pos, Expected: expected, Got: got}
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	sb.WriteByte(board.ToMove.Prefix())
	sb.WriteByte(' ')
	sb.WriteString(board.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(board.EnPassant.String())
	fmt.Fprintf(&sb, " 0 %d", board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if !chess.IsOccupied(piece) {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// NewBoardForGame creates a board for a game, using its FEN tag if present.
func NewBoardForGame(game *chess.Game) (*chess.Board, error) {
	if fen := game.FEN(); fen != "" {
		return NewBoardFromFEN(fen)
	}
	return chess.NewInitialBoard(), nil
}
