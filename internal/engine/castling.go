package engine

import "github.com/lgbarn/flipchess-go/internal/chess"

// castleRule describes one castling direction on the own back row.
type castleRule struct {
	rookCol int
	kingTo  int
	rookTo  int   // also the square the king passes through
	between []int // columns that must be empty
	moved   func(chess.CastlingRights) bool
}

var castleRules = [2]castleRule{
	{
		rookCol: chess.WestRookCol,
		kingTo:  2,
		rookTo:  3,
		between: []int{1, 2, 3},
		moved:   func(c chess.CastlingRights) bool { return c.OwnWestRookMoved },
	},
	{
		rookCol: chess.EastRookCol,
		kingTo:  6,
		rookTo:  5,
		between: []int{5, 6},
		moved:   func(c chess.CastlingRights) bool { return c.OwnEastRookMoved },
	},
}

// castleMoves returns the castling candidates for the king on from.
// The destination square is checked by the general post-move filter.
func castleMoves(pos *chess.Position, from chess.Square) []*chess.Position {
	home := chess.Sq(chess.KingHomeCol, chess.OwnBackRow)
	if pos.Castling.OwnKingMoved || from != home || !IsOwnKingSafe(pos) {
		return nil
	}

	var moves []*chess.Position
	for _, rule := range castleRules {
		if next := tryCastle(pos, from, rule); next != nil {
			moves = append(moves, next)
		}
	}
	return moves
}

// tryCastle applies one castling rule if every gate passes, or returns nil.
func tryCastle(pos *chess.Position, from chess.Square, rule castleRule) *chess.Position {
	rookFrom := chess.Sq(rule.rookCol, chess.OwnBackRow)
	if rule.moved(pos.Castling) || pos.Get(rookFrom) != chess.Own(chess.Rook) {
		return nil
	}
	for _, col := range rule.between {
		if pos.Get(chess.Sq(col, chess.OwnBackRow)) != chess.Empty {
			return nil
		}
	}

	transit := chess.Sq(rule.rookTo, chess.OwnBackRow)
	next := moveAndCopy(pos, from, transit)
	if !IsOwnKingSafe(next) {
		return nil
	}

	movePiece(next, transit, chess.Sq(rule.kingTo, chess.OwnBackRow))
	movePiece(next, rookFrom, transit)
	return next
}
