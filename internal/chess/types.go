// Package chess provides core chess types and the canonical Position value.
package chess

import "fmt"

// Colour represents the real colour of a side.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind is the type of a piece, independent of side.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the lowercase letter used for the kind in long algebraic
// notation and FEN.
func (k Kind) Letter() byte {
	letters := []byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Code returns the magnitude stored on the grid for this kind.
func (k Kind) Code() int8 {
	switch k {
	case Pawn:
		return 1
	case Knight:
		return 2
	case Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 8
	case King:
		return 9
	}
	return 0
}

// PromotionKinds lists the kinds a pawn may promote to, in generation order.
var PromotionKinds = [4]Kind{Knight, Bishop, Rook, Queen}

// Piece is a signed piece code. Positive codes belong to the side to move,
// negative codes to the opponent and zero is an empty square.
type Piece int8

// Empty is the code of an unoccupied square.
const Empty Piece = 0

// Own returns the own-side piece of the given kind.
func Own(k Kind) Piece {
	return Piece(k.Code())
}

// Opp returns the opponent piece of the given kind.
func Opp(k Kind) Piece {
	return Piece(-k.Code())
}

// Kind decodes the magnitude of the code. Unknown magnitudes are a
// programming error.
func (p Piece) Kind() Kind {
	m := p
	if m < 0 {
		m = -m
	}
	switch m {
	case 0:
		return NoKind
	case 1:
		return Pawn
	case 2:
		return Knight
	case 3:
		return Bishop
	case 5:
		return Rook
	case 8:
		return Queen
	case 9:
		return King
	}
	panic(fmt.Sprintf("chess: invalid piece code %d", int8(p)))
}

// IsOwn reports whether the piece belongs to the side to move.
func (p Piece) IsOwn() bool { return p > 0 }

// IsOpp reports whether the piece belongs to the opponent.
func (p Piece) IsOpp() bool { return p < 0 }

// Constants for board dimensions.
const (
	BoardSize = 8
	LastIndex = BoardSize - 1

	// OwnBackRow is the row holding the own side's pieces at the start.
	OwnBackRow = LastIndex
	// OwnPawnRow is the row own pawns start on.
	OwnPawnRow = LastIndex - 1
	// PromotionRow is the row own pawns promote on.
	PromotionRow = 0

	KingHomeCol = 4
	WestRookCol = 0
	EastRookCol = LastIndex
)

// Square is a grid coordinate in canonical orientation. Row 0 is the
// opponent's back rank, column 0 is the a-file.
type Square struct {
	Col int
	Row int
}

// NoSquare marks an absent square, such as no en-passant target.
var NoSquare = Square{Col: -1, Row: -1}

// Sq builds a square from column and row.
func Sq(col, row int) Square {
	return Square{Col: col, Row: row}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Col >= 0 && s.Col < BoardSize && s.Row >= 0 && s.Row < BoardSize
}

// Offset returns the square displaced by dc columns and dr rows.
func (s Square) Offset(dc, dr int) Square {
	return Square{Col: s.Col + dc, Row: s.Row + dr}
}

// Mirror reflects the square across the middle of the board (rows only).
func (s Square) Mirror() Square {
	if s == NoSquare {
		return s
	}
	return Square{Col: s.Col, Row: LastIndex - s.Row}
}

// String returns the grid coordinate as "(col,row)".
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Col, s.Row)
}

// Direction selects one of the four lines through a square.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
	// DiagonalDown runs with column and row increasing together.
	DiagonalDown
	// DiagonalUp runs with column increasing while row decreases.
	DiagonalUp
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case DiagonalDown:
		return "diagonal-down"
	case DiagonalUp:
		return "diagonal-up"
	}
	return "unknown"
}

// Straight and Diagonal group the directions used by sliding pieces.
var (
	Straight = [2]Direction{Vertical, Horizontal}
	Diagonal = [2]Direction{DiagonalDown, DiagonalUp}
)
