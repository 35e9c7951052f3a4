package eval

import (
	"fmt"

	"github.com/lgbarn/flipchess-go/internal/chess"
	"github.com/lgbarn/flipchess-go/internal/errors"
)

// Mode selects which pieces a learned model was trained on.
type Mode int

const (
	// FullPiece uses both kings plus the own queen, rooks and bishops.
	FullPiece Mode = iota
	// Endgame uses both kings plus the own rooks.
	Endgame
)

// String returns the string representation of a mode.
func (m Mode) String() string {
	switch m {
	case FullPiece:
		return "full"
	case Endgame:
		return "endgame"
	}
	return "unknown"
}

// FeatureCount returns the length of the vector ExtractFeatures produces.
func (m Mode) FeatureCount() int {
	if m == Endgame {
		return 8
	}
	return 14
}

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "full", "all", "all-pieces":
		return FullPiece, nil
	case "endgame", "rooks", "rooks-only":
		return Endgame, nil
	}
	return 0, fmt.Errorf("unknown evaluator mode %q: %w", s, errors.ErrInvalidConfig)
}

// coord is a 1-based (column, row) pair; (0,0) marks an absent piece.
type coord [2]float32

// ExtractFeatures encodes the coordinates of the pieces a model understands.
//
// Squares are visited column by column and, within a column, row by row.
// Each piece contributes its 1-based (col+1, row+1) pair. The layout is own
// king, opponent king, then for FullPiece the own queen, two own rooks and
// two own bishops, or for Endgame two own rooks. Unused slots are (0,0).
func ExtractFeatures(pos *chess.Position, mode Mode) ([]float32, error) {
	var ownKing, oppKing, queens, rooks, bishops []coord
	for col := 0; col < chess.BoardSize; col++ {
		for row := 0; row < chess.BoardSize; row++ {
			c := coord{float32(col + 1), float32(row + 1)}
			switch pos.Squares[row][col] {
			case chess.Own(chess.King):
				ownKing = append(ownKing, c)
			case chess.Opp(chess.King):
				oppKing = append(oppKing, c)
			case chess.Own(chess.Queen):
				queens = append(queens, c)
			case chess.Own(chess.Rook):
				rooks = append(rooks, c)
			case chess.Own(chess.Bishop):
				bishops = append(bishops, c)
			}
		}
	}

	if mode == Endgame {
		queens, bishops = nil, nil
	}
	if len(ownKing) != 1 || len(oppKing) != 1 || len(queens) > 1 || len(rooks) > 2 || len(bishops) > 2 {
		return nil, &errors.InvalidPositionError{
			Mode:     mode.String(),
			OwnKings: len(ownKing),
			OppKings: len(oppKing),
			Queens:   len(queens),
			Rooks:    len(rooks),
			Bishops:  len(bishops),
		}
	}

	slots := []coord{ownKing[0], oppKing[0]}
	if mode == FullPiece {
		slots = append(slots, pad(queens, 1)...)
	}
	slots = append(slots, pad(rooks, 2)...)
	if mode == FullPiece {
		slots = append(slots, pad(bishops, 2)...)
	}

	features := make([]float32, 0, mode.FeatureCount())
	for _, c := range slots {
		features = append(features, c[0], c[1])
	}
	return features, nil
}

// pad extends coords to n entries with the (0,0) sentinel.
func pad(coords []coord, n int) []coord {
	for len(coords) < n {
		coords = append(coords, coord{})
	}
	return coords
}
