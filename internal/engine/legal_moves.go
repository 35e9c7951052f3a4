package engine

import "github.com/lgbarn/flipchess-go/internal/chess"

// AllMoves returns every legal successor of pos, scanning own pieces in
// row-major order. Successors stay in the mover's orientation.
func AllMoves(pos *chess.Position) []*chess.Position {
	var moves []*chess.Position
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if !pos.Squares[row][col].IsOwn() {
				continue
			}
			moves = append(moves, MovesFrom(pos, chess.Sq(col, row))...)
		}
	}
	return moves
}

// LegalMoves returns the legal successors for the piece on sq.
func LegalMoves(pos *chess.Position, sq chess.Square) []*chess.Position {
	return MovesFrom(pos, sq)
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(pos *chess.Position) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if !pos.Squares[row][col].IsOwn() {
				continue
			}
			if len(MovesFrom(pos, chess.Sq(col, row))) > 0 {
				return true
			}
		}
	}
	return false
}
