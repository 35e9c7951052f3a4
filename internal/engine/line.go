package engine

import "github.com/lgbarn/flipchess-go/internal/chess"

// LineSquares returns every square on the edge-to-edge line through sq in
// direction dir, together with the index of sq within that line.
//
// Vertical lines run from row 0 to row 7 and horizontal lines from column 0
// to column 7. DiagonalDown lines start at the top-left end and DiagonalUp
// lines start at the bottom-left end, so the column always increases along
// a diagonal.
func LineSquares(sq chess.Square, dir chess.Direction) ([]chess.Square, int) {
	var (
		start  chess.Square
		dc, dr int
		index  int
	)

	switch dir {
	case chess.Vertical:
		start, dc, dr, index = chess.Sq(sq.Col, 0), 0, 1, sq.Row
	case chess.Horizontal:
		start, dc, dr, index = chess.Sq(0, sq.Row), 1, 0, sq.Col
	case chess.DiagonalDown:
		m := min(sq.Col, sq.Row)
		start, dc, dr, index = chess.Sq(sq.Col-m, sq.Row-m), 1, 1, m
	case chess.DiagonalUp:
		m := min(sq.Col, chess.LastIndex-sq.Row)
		start, dc, dr, index = chess.Sq(sq.Col-m, sq.Row+m), 1, -1, m
	default:
		panic("engine: unknown direction " + dir.String())
	}

	line := make([]chess.Square, 0, chess.BoardSize)
	for s := start; s.Valid(); s = s.Offset(dc, dr) {
		line = append(line, s)
	}
	return line, index
}

// Line returns the pieces on the line through sq in direction dir and the
// index of sq within it.
func Line(pos *chess.Position, sq chess.Square, dir chess.Direction) ([]chess.Piece, int) {
	squares, index := LineSquares(sq, dir)
	pieces := make([]chess.Piece, len(squares))
	for i, s := range squares {
		pieces[i] = pos.Get(s)
	}
	return pieces, index
}

// rays splits a line at index into the two outward walks, each ordered
// from the square nearest the origin outward.
func rays(line []chess.Square, index int) [2][]chess.Square {
	backward := make([]chess.Square, 0, index)
	for i := index - 1; i >= 0; i-- {
		backward = append(backward, line[i])
	}
	return [2][]chess.Square{backward, line[index+1:]}
}
