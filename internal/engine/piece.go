package engine

import "github.com/lgbarn/flipchess-go/internal/chess"

// MovesFrom returns every legal successor produced by moving the own piece
// on from. Each successor is an independent copy in the mover's
// orientation; empty and opponent squares yield nothing.
func MovesFrom(pos *chess.Position, from chess.Square) []*chess.Position {
	piece := pos.Get(from)
	if !piece.IsOwn() {
		return nil
	}

	var candidates []*chess.Position
	switch piece.Kind() {
	case chess.Pawn:
		candidates = pawnMoves(pos, from)
	case chess.Knight:
		candidates = stepMoves(pos, from, knightOffsets[:])
	case chess.Bishop:
		candidates = slidingMoves(pos, from, chess.Diagonal[:])
	case chess.Rook:
		candidates = slidingMoves(pos, from, chess.Straight[:])
	case chess.Queen:
		candidates = slidingMoves(pos, from, chess.Straight[:])
		candidates = append(candidates, slidingMoves(pos, from, chess.Diagonal[:])...)
	case chess.King:
		candidates = stepMoves(pos, from, kingOffsets[:])
		candidates = append(candidates, castleMoves(pos, from)...)
	default:
		panic("engine: no move rule for " + piece.Kind().String())
	}

	legal := candidates[:0]
	for _, next := range candidates {
		next.RefreshKings()
		if IsOwnKingSafe(next) {
			legal = append(legal, next)
		}
	}
	return legal
}

// stepMoves handles the single-step pieces (knight and king).
func stepMoves(pos *chess.Position, from chess.Square, offsets [][2]int) []*chess.Position {
	var moves []*chess.Position
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !to.Valid() || pos.Get(to).IsOwn() {
			continue
		}
		moves = append(moves, moveAndCopy(pos, from, to))
	}
	return moves
}

// slidingMoves walks each line outward from from until it meets a piece.
// An opponent piece may be captured; an own piece blocks.
func slidingMoves(pos *chess.Position, from chess.Square, dirs []chess.Direction) []*chess.Position {
	var moves []*chess.Position
	for _, dir := range dirs {
		line, index := LineSquares(from, dir)
		for _, ray := range rays(line, index) {
			for _, to := range ray {
				target := pos.Get(to)
				if target.IsOwn() {
					break
				}
				moves = append(moves, moveAndCopy(pos, from, to))
				if target.IsOpp() {
					break
				}
			}
		}
	}
	return moves
}

// moveAndCopy returns a copy of pos with the piece on from moved to to.
func moveAndCopy(pos *chess.Position, from, to chess.Square) *chess.Position {
	next := pos.Copy()
	movePiece(next, from, to)
	return next
}

// movePiece relocates a piece in place, keeping the king cache and the
// castling flags up to date.
func movePiece(p *chess.Position, from, to chess.Square) {
	piece := p.Get(from)
	captured := p.Get(to)

	switch piece.Kind() {
	case chess.King:
		p.Castling.OwnKingMoved = true
		p.OwnKing = to
	case chess.Rook:
		switch from {
		case chess.Sq(chess.WestRookCol, chess.OwnBackRow):
			p.Castling.OwnWestRookMoved = true
		case chess.Sq(chess.EastRookCol, chess.OwnBackRow):
			p.Castling.OwnEastRookMoved = true
		}
	}

	// A rook taken on its home corner can no longer castle.
	if captured == chess.Opp(chess.Rook) {
		switch to {
		case chess.Sq(chess.WestRookCol, 0):
			p.Castling.OppWestRookMoved = true
		case chess.Sq(chess.EastRookCol, 0):
			p.Castling.OppEastRookMoved = true
		}
	}

	p.Set(from, chess.Empty)
	p.Set(to, piece)
}
