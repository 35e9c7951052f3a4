package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/flipchess-go/internal/chess"
	"github.com/lgbarn/flipchess-go/internal/errors"
)

// SquareName returns the algebraic name of a grid square, honouring the
// real colour of the side pos is oriented for.
func SquareName(pos *chess.Position, sq chess.Square) string {
	rank := chess.BoardSize - sq.Row
	if pos.ToMove == chess.Black {
		rank = sq.Row + 1
	}
	return fmt.Sprintf("%c%d", 'a'+sq.Col, rank)
}

// whiteSquareName names a square of a White-oriented grid.
func whiteSquareName(sq chess.Square) string {
	return fmt.Sprintf("%c%d", 'a'+sq.Col, chess.BoardSize-sq.Row)
}

// MoveString recovers the long algebraic text ("e2e4", "e1g1", "e7e8q") of
// the move leading from parent to child, where child is one of parent's
// successors in the same orientation.
func MoveString(parent, child *chess.Position) string {
	from, to := chess.NoSquare, chess.NoSquare
	if parent.OwnKing != child.OwnKing {
		// King moves, including castling where the rook also leaves a square.
		from, to = parent.OwnKing, child.OwnKing
	} else {
		for row := 0; row < chess.BoardSize; row++ {
			for col := 0; col < chess.BoardSize; col++ {
				before, after := parent.Squares[row][col], child.Squares[row][col]
				if before == after {
					continue
				}
				switch {
				case before.IsOwn() && after == chess.Empty:
					from = chess.Sq(col, row)
				case after.IsOwn():
					to = chess.Sq(col, row)
				}
			}
		}
	}
	if from == chess.NoSquare || to == chess.NoSquare {
		return "0000"
	}

	text := SquareName(parent, from) + SquareName(parent, to)
	if parent.Get(from) == chess.Own(chess.Pawn) && child.Get(to) != chess.Own(chess.Pawn) {
		text += string(child.Get(to).Kind().Letter())
	}
	return text
}

// MoveStrings returns the long algebraic text of every legal move of pos in
// generation order.
func MoveStrings(pos *chess.Position) []string {
	moves := AllMoves(pos)
	out := make([]string, len(moves))
	for i, next := range moves {
		out[i] = MoveString(pos, next)
	}
	return out
}

// FindMove returns the legal successor of pos matching the long algebraic
// text. A promotion must name its piece.
func FindMove(pos *chess.Position, text string) (*chess.Position, error) {
	want := strings.ToLower(strings.TrimSpace(text))
	for _, next := range AllMoves(pos) {
		if MoveString(pos, next) == want {
			return next, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", text, errors.ErrIllegalMove)
}
