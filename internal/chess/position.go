package chess

import (
	"fmt"
	"strings"
)

// CastlingRights records which kings and corner rooks have moved.
// Flags only ever go from false to true; Flip swaps the own and opponent
// halves without changing any value.
type CastlingRights struct {
	OwnKingMoved     bool
	OppKingMoved     bool
	OwnWestRookMoved bool // a-file rook
	OwnEastRookMoved bool // h-file rook
	OppWestRookMoved bool
	OppEastRookMoved bool
}

// Swapped returns the rights as seen by the other side.
func (c CastlingRights) Swapped() CastlingRights {
	return CastlingRights{
		OwnKingMoved:     c.OppKingMoved,
		OppKingMoved:     c.OwnKingMoved,
		OwnWestRookMoved: c.OppWestRookMoved,
		OwnEastRookMoved: c.OppEastRookMoved,
		OppWestRookMoved: c.OwnWestRookMoved,
		OppEastRookMoved: c.OwnEastRookMoved,
	}
}

// Flags returns the six flags in feature-vector order: own king,
// opponent king, own west rook, own east rook, opponent west rook,
// opponent east rook.
func (c CastlingRights) Flags() [6]bool {
	return [6]bool{
		c.OwnKingMoved, c.OppKingMoved,
		c.OwnWestRookMoved, c.OwnEastRookMoved,
		c.OppWestRookMoved, c.OppEastRookMoved,
	}
}

// Position is a board in canonical orientation: the side to move owns the
// positive codes and its pawns advance toward row 0.
//
// Position is a value type. Squares is an array, so assigning or copying a
// Position never shares the grid with the original.
type Position struct {
	// Squares is indexed [row][col].
	Squares [BoardSize][BoardSize]Piece

	// Cached king squares, kept in sync by move application and Flip.
	OwnKing Square
	OppKing Square

	// EnPassant is the square a pawn skipped on the previous move, or NoSquare.
	EnPassant Square

	Castling CastlingRights

	// ToMove is the real colour of the own side.
	ToMove Colour
}

// NewEmptyPosition returns a position with no pieces. Callers must place both
// kings and call RefreshKings before using it with the engine.
func NewEmptyPosition(toMove Colour) *Position {
	return &Position{
		OwnKing:   NoSquare,
		OppKing:   NoSquare,
		EnPassant: NoSquare,
		ToMove:    toMove,
	}
}

// NewInitialPosition returns the standard starting layout with White to move.
func NewInitialPosition() *Position {
	p := NewEmptyPosition(White)
	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		p.Squares[0][col] = Opp(backRank[col])
		p.Squares[1][col] = Opp(Pawn)
		p.Squares[OwnPawnRow][col] = Own(Pawn)
		p.Squares[OwnBackRow][col] = Own(backRank[col])
	}
	p.OwnKing = Sq(KingHomeCol, OwnBackRow)
	p.OppKing = Sq(KingHomeCol, 0)
	return p
}

// Get returns the piece on the square. The square must be valid.
func (p *Position) Get(s Square) Piece {
	return p.Squares[s.Row][s.Col]
}

// Set places a piece on the square. The square must be valid.
func (p *Position) Set(s Square, piece Piece) {
	p.Squares[s.Row][s.Col] = piece
}

// Clone returns an exact, independent copy.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// Copy returns an independent copy with the en-passant target cleared.
// Successors are built from copies, so a target survives exactly one reply.
func (p *Position) Copy() *Position {
	c := *p
	c.EnPassant = NoSquare
	return &c
}

// Flip converts the position in place to the other side's canonical view
// and returns it.
func (p *Position) Flip() *Position {
	for r := 0; r < BoardSize/2; r++ {
		top, bottom := p.Squares[r], p.Squares[LastIndex-r]
		for c := 0; c < BoardSize; c++ {
			top[c], bottom[c] = -top[c], -bottom[c]
		}
		p.Squares[r], p.Squares[LastIndex-r] = bottom, top
	}
	p.OwnKing, p.OppKing = p.OppKing.Mirror(), p.OwnKing.Mirror()
	p.Castling = p.Castling.Swapped()
	p.EnPassant = p.EnPassant.Mirror()
	p.ToMove = p.ToMove.Opposite()
	return p
}

// Flipped returns a flipped clone, leaving the receiver untouched.
func (p *Position) Flipped() *Position {
	return p.Clone().Flip()
}

// Equal reports whether two positions agree on grid, king caches, castling
// flags, en-passant target and colour.
func (p *Position) Equal(o *Position) bool {
	return *p == *o
}

// RefreshKings rescans the grid for both kings. Anything other than exactly
// one king per side is a broken invariant and panics.
func (p *Position) RefreshKings() {
	own, opp := 0, 0
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			switch p.Squares[r][c] {
			case Own(King):
				own++
				p.OwnKing = Sq(c, r)
			case Opp(King):
				opp++
				p.OppKing = Sq(c, r)
			}
		}
	}
	if own != 1 || opp != 1 {
		panic(fmt.Sprintf("chess: expected one king per side, found %d own and %d opponent\n%s", own, opp, p))
	}
}

// CountKings returns how many own and opponent kings are on the grid.
func (p *Position) CountKings() (own, opp int) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			switch p.Squares[r][c] {
			case Own(King):
				own++
			case Opp(King):
				opp++
			}
		}
	}
	return own, opp
}

// MaterialScore returns the sum of every signed code on the grid.
func (p *Position) MaterialScore() int {
	total := 0
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			total += int(p.Squares[r][c])
		}
	}
	return total
}

// String renders the grid as rows of signed codes.
func (p *Position) String() string {
	var sb strings.Builder
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if c > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "%2d", p.Squares[r][c])
		}
		if r < LastIndex {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
