package engine

import "github.com/lgbarn/flipchess-go/internal/chess"

// GameStatus describes whether the side to move can continue.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

// IsInCheck returns true if the side to move is in check.
func IsInCheck(pos *chess.Position) bool {
	return !IsOwnKingSafe(pos)
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	return IsInCheck(pos) && !HasLegalMoves(pos)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	return !IsInCheck(pos) && !HasLegalMoves(pos)
}

// Status classifies the position for the side to move.
func Status(pos *chess.Position) GameStatus {
	if HasLegalMoves(pos) {
		return Ongoing
	}
	if IsInCheck(pos) {
		return Checkmate
	}
	return Stalemate
}
