package hashing

import (
	"math/rand"

	"github.com/lgbarn/lookahead-chess/internal/chess"
)

// Keys are drawn from a fixed seed so hashes are stable across runs.
var (
	zobristPiece     [64][64]uint64 // coloured piece code, square index
	zobristCastle    [16]uint64
	zobristEnPassant [8]uint64
	zobristSide      uint64 // Black to move
)

func init() {
	rnd := rand.New(rand.NewSource(0x10CA4EAD))
	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// GenerateZobristHash returns the Zobrist key of the position: piece
// placement, side to move, castling rights and en-passant file.
func GenerateZobristHash(board *chess.Board) uint64 {
	var key uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if chess.IsOccupied(piece) {
				key ^= zobristPiece[piece][row*chess.BoardSize+col]
			}
		}
	}
	if board.ToMove == chess.Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[castleIndex(board.Castling)]
	if board.EnPassant.OnBoard() {
		key ^= zobristEnPassant[board.EnPassant.Col]
	}
	return key
}

func castleIndex(c chess.CastleRights) int {
	idx := 0
	if c.WhiteKingside {
		idx |= 1
	}
	if c.WhiteQueenside {
		idx |= 2
	}
	if c.BlackKingside {
		idx |= 4
	}
	if c.BlackQueenside {
		idx |= 8
	}
	return idx
}

// WeakHash is a cheap order-sensitive checksum of the piece placement,
// used as a second check on Zobrist matches.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			hash = hash*31 + uint32(board.Squares[row][col])
		}
	}
	return hash
}
