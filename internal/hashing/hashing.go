// Package hashing provides position hashing and repetition detection.
package hashing

import (
	"github.com/lgbarn/lookahead-chess/internal/chess"
)

// RepetitionDetector counts how often each position has occurred in a game.
type RepetitionDetector struct {
	// hashTable maps a Zobrist key to the positions seen under it
	hashTable map[uint64][]PositionSignature
	// maxCount is the highest occurrence count recorded so far
	maxCount int
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash guards against Zobrist collisions
	WeakHash uint32
	// Count is the number of times the position occurred
	Count int
}

// NewRepetitionDetector creates an empty detector.
func NewRepetitionDetector() *RepetitionDetector {
	return &RepetitionDetector{
		hashTable: make(map[uint64][]PositionSignature),
	}
}

// Record adds one occurrence of the board's position and returns how many
// times it has now occurred.
func (d *RepetitionDetector) Record(board *chess.Board) int {
	if board == nil {
		return 0
	}

	hash := GenerateZobristHash(board)
	weak := WeakHash(board)

	sigs := d.hashTable[hash]
	for i := range sigs {
		if sigs[i].WeakHash == weak {
			sigs[i].Count++
			d.maxCount = max(d.maxCount, sigs[i].Count)
			return sigs[i].Count
		}
	}

	d.hashTable[hash] = append(sigs, PositionSignature{Hash: hash, WeakHash: weak, Count: 1})
	d.maxCount = max(d.maxCount, 1)
	return 1
}

// Forget removes one occurrence of the board's position, reversing Record
// when a move is taken back.
func (d *RepetitionDetector) Forget(board *chess.Board) {
	hash := GenerateZobristHash(board)
	weak := WeakHash(board)

	sigs := d.hashTable[hash]
	for i := range sigs {
		if sigs[i].WeakHash != weak {
			continue
		}
		sigs[i].Count--
		if sigs[i].Count == 0 {
			sigs = append(sigs[:i], sigs[i+1:]...)
		}
		break
	}
	if len(sigs) == 0 {
		delete(d.hashTable, hash)
	} else {
		d.hashTable[hash] = sigs
	}
	d.recomputeMax()
}

// Count returns how many times the board's position has been recorded.
func (d *RepetitionDetector) Count(board *chess.Board) int {
	weak := WeakHash(board)
	for _, sig := range d.hashTable[GenerateZobristHash(board)] {
		if sig.WeakHash == weak {
			return sig.Count
		}
	}
	return 0
}

// MaxCount returns the highest occurrence count of any recorded position.
func (d *RepetitionDetector) MaxCount() int {
	return d.maxCount
}

// UniqueCount returns the number of distinct positions recorded.
func (d *RepetitionDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

func (d *RepetitionDetector) recomputeMax() {
	d.maxCount = 0
	for _, sigs := range d.hashTable {
		for _, sig := range sigs {
			d.maxCount = max(d.maxCount, sig.Count)
		}
	}
}
