// Package hashing provides position hashing and duplicate detection for
// self-play games.
package hashing

import (
	"github.com/lgbarn/flipchess-go/internal/chess"
)

// DuplicateDetector tracks finished games to spot exact repeats.
type DuplicateDetector struct {
	// hashTable stores signatures by final position hash
	hashTable map[uint64][]GameSignature
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// Plies is the number of half-moves in the game
	Plies int
	// MoveHash is a hash of the move sequence
	MoveHash uint64
}

// NewGameSignature builds the signature of a game ending in final after
// the given moves.
func NewGameSignature(final *chess.Position, moves []string) GameSignature {
	return GameSignature{
		Hash:     Hash(final),
		Plies:    len(moves),
		MoveHash: HashMoves(moves),
	}
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector() *DuplicateDetector {
	return &DuplicateDetector{
		hashTable: make(map[uint64][]GameSignature),
	}
}

// CheckAndAdd checks if a game is a duplicate and adds it to the hash table.
// Returns true if the game is a duplicate.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if existing == sig {
			return true
		}
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return false
}

// HashMoves creates a hash from the move texts. Move boundaries are mixed
// in so that "e2e4","e7e5" and "e2e4e7","e5" differ.
func HashMoves(moves []string) uint64 {
	var hash uint64
	multiplier := uint64(31)

	for _, move := range moves {
		for _, c := range move {
			hash = hash*multiplier + uint64(c)
		}
		hash = hash*multiplier + ' '
	}
	return hash
}
