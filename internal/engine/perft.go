package engine

import "github.com/lgbarn/flipchess-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := AllMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, next := range moves {
		nodes += Perft(next.Flip(), depth-1)
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by its long
// algebraic text.
func Divide(pos *chess.Position, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts
	}
	for _, next := range AllMoves(pos) {
		text := MoveString(pos, next)
		counts[text] = Perft(next.Flip(), depth-1)
	}
	return counts
}
