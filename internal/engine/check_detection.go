package engine

import "github.com/lgbarn/flipchess-go/internal/chess"

// knightOffsets are the eight knight jumps as (column, row) deltas.
var knightOffsets = [8][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {-1, 2}, {1, -2}, {-1, -2}}

// kingOffsets are the eight neighbouring squares as (column, row) deltas.
var kingOffsets = [8][2]int{{1, -1}, {1, 0}, {1, 1}, {0, -1}, {0, 1}, {-1, -1}, {-1, 0}, {-1, 1}}

// IsOwnKingSafe returns true if the side to move's king is not attacked.
// The king is located through the cached OwnKing square.
func IsOwnKingSafe(pos *chess.Position) bool {
	return !IsSquareAttacked(pos, pos.OwnKing)
}

// IsSquareAttacked returns true if an opponent piece attacks sq. Adjacency
// to the opponent king counts as an attack.
func IsSquareAttacked(pos *chess.Position, sq chess.Square) bool {
	// Knights
	for _, off := range knightOffsets {
		s := sq.Offset(off[0], off[1])
		if s.Valid() && pos.Get(s) == chess.Opp(chess.Knight) {
			return true
		}
	}

	// Opponent pawns move toward higher rows, so they attack from row-1.
	for _, dc := range [2]int{-1, 1} {
		s := sq.Offset(dc, -1)
		if s.Valid() && pos.Get(s) == chess.Opp(chess.Pawn) {
			return true
		}
	}

	// Straight lines: rook or queen
	for _, dir := range chess.Straight {
		if lineAttacked(pos, sq, dir, chess.Opp(chess.Rook), chess.Opp(chess.Queen)) {
			return true
		}
	}

	// Diagonals: bishop or queen
	for _, dir := range chess.Diagonal {
		if lineAttacked(pos, sq, dir, chess.Opp(chess.Bishop), chess.Opp(chess.Queen)) {
			return true
		}
	}

	// Opponent king adjacency
	opp := pos.OppKing
	dc, dr := opp.Col-sq.Col, opp.Row-sq.Row
	return opp.Valid() && dc >= -1 && dc <= 1 && dr >= -1 && dr <= 1 && (dc != 0 || dr != 0)
}

// lineAttacked walks outward both ways from sq along dir and reports whether
// the first occupied square in either direction holds one of the attackers.
func lineAttacked(pos *chess.Position, sq chess.Square, dir chess.Direction, attackers ...chess.Piece) bool {
	line, index := LineSquares(sq, dir)
	for _, ray := range rays(line, index) {
		for _, s := range ray {
			piece := pos.Get(s)
			if piece == chess.Empty {
				continue
			}
			for _, a := range attackers {
				if piece == a {
					return true
				}
			}
			break // Blocked
		}
	}
	return false
}
