// Package reference runs independent move generators (dragontoothmg and
// goosemg) as oracles for the engine's move generation.
package reference

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/flipchess-go/internal/chess"
	"github.com/lgbarn/flipchess-go/internal/engine"
)

// Mismatch is a root move whose subtree count differs between the engine
// and the reference generator. A count of zero on one side means that side
// did not generate the move at all.
type Mismatch struct {
	Move      string
	Engine    uint64
	Reference uint64
}

// String returns the mismatch in divide-output form.
func (m Mismatch) String() string {
	return fmt.Sprintf("%s: engine %d, reference %d", m.Move, m.Engine, m.Reference)
}

// board parses a FEN with the engine first, so malformed input is rejected
// with a proper error before it reaches dragontoothmg.
func board(fen string) (dragontoothmg.Board, error) {
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return dragontoothmg.Board{}, err
	}
	return dragontoothmg.ParseFen(engine.PositionToFEN(pos)), nil
}

// Perft counts leaf nodes to depth with the reference generator.
func Perft(fen string, depth int) (uint64, error) {
	b, err := board(fen)
	if err != nil {
		return 0, err
	}
	return perft(&b, depth), nil
}

func perft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += perft(b, depth-1)
		unapply()
	}
	return nodes
}

// Divide returns the reference perft count below each root move.
func Divide(fen string, depth int) (map[string]uint64, error) {
	b, err := board(fen)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts, nil
	}
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		counts[m.String()] = perft(&b, depth-1)
		unapply()
	}
	return counts, nil
}

// Moves returns the sorted long algebraic text of every legal move.
func Moves(fen string) ([]string, error) {
	b, err := board(fen)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, m := range b.GenerateLegalMoves() {
		out = append(out, m.String())
	}
	slices.Sort(out)
	return out, nil
}

// Compare runs divide on pos with both generators and returns the root
// moves whose counts disagree, sorted by move text. An empty result means
// the engine matches the reference to the given depth.
func Compare(pos *chess.Position, depth int) ([]Mismatch, error) {
	want, err := Divide(engine.PositionToFEN(pos), depth)
	if err != nil {
		return nil, err
	}
	got := engine.Divide(pos, depth)

	moves := maps.Keys(want)
	for move := range got {
		if _, ok := want[move]; !ok {
			moves = append(moves, move)
		}
	}
	slices.Sort(moves)

	var mismatches []Mismatch
	for _, move := range moves {
		if got[move] != want[move] {
			mismatches = append(mismatches, Mismatch{Move: move, Engine: got[move], Reference: want[move]})
		}
	}
	return mismatches, nil
}

// SortedKeys returns the keys of a divide result in move order.
func SortedKeys(counts map[string]uint64) []string {
	keys := maps.Keys(counts)
	slices.Sort(keys)
	return keys
}
