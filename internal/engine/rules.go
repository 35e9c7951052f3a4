package engine

import "github.com/lgbarn/flipchess-go/internal/chess"

// HasInsufficientMaterial returns true if neither side can force mate.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same colour bishops)
func HasInsufficientMaterial(pos *chess.Position) bool {
	var ownPieces, oppPieces []chess.Kind
	var ownBishopOnLight, oppBishopOnLight bool

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := pos.Squares[row][col]
			kind := piece.Kind()
			if kind == chess.NoKind || kind == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if kind == chess.Pawn || kind == chess.Rook || kind == chess.Queen {
				return false
			}

			if piece.IsOwn() {
				ownPieces = append(ownPieces, kind)
				if kind == chess.Bishop {
					ownBishopOnLight = isLightSquare(col, row)
				}
			} else {
				oppPieces = append(oppPieces, kind)
				if kind == chess.Bishop {
					oppBishopOnLight = isLightSquare(col, row)
				}
			}
		}
	}

	switch {
	case len(ownPieces) == 0 && len(oppPieces) == 0:
		return true
	case len(ownPieces) == 0 && len(oppPieces) == 1:
		return oppPieces[0] == chess.Bishop || oppPieces[0] == chess.Knight
	case len(oppPieces) == 0 && len(ownPieces) == 1:
		return ownPieces[0] == chess.Bishop || ownPieces[0] == chess.Knight
	case len(ownPieces) == 1 && len(oppPieces) == 1:
		return ownPieces[0] == chess.Bishop && oppPieces[0] == chess.Bishop &&
			ownBishopOnLight == oppBishopOnLight
	}
	return false
}

// isLightSquare reports the square colour in the current orientation. Both
// bishops are compared in the same orientation, so the answer to "same
// colour?" does not depend on which side is own.
func isLightSquare(col, row int) bool {
	return (col+row)%2 == 0
}
