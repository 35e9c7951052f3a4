package engine

import "github.com/lgbarn/flipchess-go/internal/chess"

// pawnMoves generates pushes, double pushes, captures, en-passant captures
// and promotions for the own pawn on from.
func pawnMoves(pos *chess.Position, from chess.Square) []*chess.Position {
	var moves []*chess.Position

	// Forward moves
	one := from.Offset(0, -1)
	if one.Valid() && pos.Get(one) == chess.Empty {
		moves = appendPawnMove(moves, moveAndCopy(pos, from, one), one)

		if from.Row == chess.OwnPawnRow {
			two := from.Offset(0, -2)
			if pos.Get(two) == chess.Empty {
				next := moveAndCopy(pos, from, two)
				next.EnPassant = one
				moves = append(moves, next)
			}
		}
	}

	// Captures, including en passant
	for _, dc := range [2]int{1, -1} {
		to := from.Offset(dc, -1)
		if !to.Valid() {
			continue
		}
		enPassant := to == pos.EnPassant
		if !pos.Get(to).IsOpp() && !enPassant {
			continue
		}
		next := moveAndCopy(pos, from, to)
		if enPassant {
			// The captured pawn sits beside the mover, not on the target.
			next.Set(chess.Sq(to.Col, from.Row), chess.Empty)
		}
		moves = appendPawnMove(moves, next, to)
	}

	return moves
}

// appendPawnMove appends next, expanding an arrival on the promotion row into
// one successor per promotion kind.
func appendPawnMove(moves []*chess.Position, next *chess.Position, to chess.Square) []*chess.Position {
	if to.Row != chess.PromotionRow {
		return append(moves, next)
	}
	for _, kind := range chess.PromotionKinds {
		promoted := next.Clone()
		promoted.Set(to, chess.Own(kind))
		moves = append(moves, promoted)
	}
	return moves
}
