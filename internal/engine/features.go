package engine

import "github.com/lgbarn/flipchess-go/internal/chess"

// FeatureVectorLen is the length of ToFeatureVector's result: 64 grid codes,
// six castling flags, the material score and the king-safety bit.
const FeatureVectorLen = chess.BoardSize*chess.BoardSize + 6 + 2

// ToFeatureVector flattens a position into numbers for external learners.
// The grid is written row-major, followed by the castling flags in
// CastlingRights.Flags order, the material score and 1 when the own king is
// safe.
func ToFeatureVector(pos *chess.Position) []float64 {
	v := make([]float64, 0, FeatureVectorLen)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			v = append(v, float64(pos.Squares[row][col]))
		}
	}
	for _, flag := range pos.Castling.Flags() {
		v = append(v, boolFeature(flag))
	}
	v = append(v, float64(pos.MaterialScore()))
	v = append(v, boolFeature(IsOwnKingSafe(pos)))
	return v
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
