package chess

import (
	"testing"
)

func TestNewInitialPosition(t *testing.T) {
	p := NewInitialPosition()

	t.Run("initial state", func(t *testing.T) {
		if p.ToMove != White {
			t.Errorf("ToMove = %v; want White", p.ToMove)
		}
		if p.EnPassant != NoSquare {
			t.Errorf("EnPassant = %v; want NoSquare", p.EnPassant)
		}
		if p.Castling != (CastlingRights{}) {
			t.Errorf("Castling = %+v; want no flags set", p.Castling)
		}
		if p.OwnKing != Sq(4, 7) {
			t.Errorf("OwnKing = %v; want (4,7)", p.OwnKing)
		}
		if p.OppKing != Sq(4, 0) {
			t.Errorf("OppKing = %v; want (4,0)", p.OppKing)
		}
	})

	tests := []struct {
		name  string
		sq    Square
		piece Piece
	}{
		{"own west rook", Sq(0, 7), 5},
		{"own knight", Sq(1, 7), 2},
		{"own bishop", Sq(2, 7), 3},
		{"own queen", Sq(3, 7), 8},
		{"own king", Sq(4, 7), 9},
		{"own pawn", Sq(4, 6), 1},
		{"opponent king", Sq(4, 0), -9},
		{"opponent queen", Sq(3, 0), -8},
		{"opponent pawn", Sq(0, 1), -1},
		{"empty centre", Sq(4, 4), Empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Get(tt.sq); got != tt.piece {
				t.Errorf("Get(%v) = %d; want %d", tt.sq, got, tt.piece)
			}
		})
	}

	if got := p.MaterialScore(); got != 0 {
		t.Errorf("MaterialScore() = %d; want 0", got)
	}
}

func TestPieceKind(t *testing.T) {
	tests := []struct {
		piece Piece
		want  Kind
	}{
		{0, NoKind},
		{1, Pawn},
		{-2, Knight},
		{3, Bishop},
		{-5, Rook},
		{8, Queen},
		{-9, King},
	}
	for _, tt := range tests {
		if got := tt.piece.Kind(); got != tt.want {
			t.Errorf("Piece(%d).Kind() = %v; want %v", tt.piece, got, tt.want)
		}
		if tt.want != NoKind && Own(tt.want).Kind() != tt.want {
			t.Errorf("Own(%v).Kind() round trip failed", tt.want)
		}
	}
}

func TestPieceKindPanicsOnUnknownCode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Piece(4).Kind() did not panic")
		}
	}()
	_ = Piece(4).Kind()
}

func TestFlip(t *testing.T) {
	p := NewInitialPosition()
	p.Set(Sq(4, 6), Empty)
	p.Set(Sq(4, 4), Own(Pawn))
	p.EnPassant = Sq(4, 5)
	p.Castling.OwnEastRookMoved = true

	f := p.Flipped()

	if f.ToMove != Black {
		t.Errorf("ToMove = %v; want Black", f.ToMove)
	}
	if got := f.Get(Sq(4, 3)); got != Opp(Pawn) {
		t.Errorf("advanced pawn after flip = %d; want %d", got, Opp(Pawn))
	}
	if got := f.Get(Sq(4, 7)); got != Own(King) {
		t.Errorf("Get(4,7) after flip = %d; want own king", got)
	}
	if f.OwnKing != Sq(4, 7) || f.OppKing != Sq(4, 0) {
		t.Errorf("king caches after flip = %v, %v", f.OwnKing, f.OppKing)
	}
	if f.EnPassant != Sq(4, 2) {
		t.Errorf("EnPassant after flip = %v; want (4,2)", f.EnPassant)
	}
	if !f.Castling.OppEastRookMoved || f.Castling.OwnEastRookMoved {
		t.Errorf("Castling after flip = %+v; want opponent east rook moved only", f.Castling)
	}
	if !p.Equal(f.Flipped()) {
		t.Errorf("flipping twice changed the position:\n%s\nvs\n%s", p, f.Flipped())
	}
}

func TestCopyIsolation(t *testing.T) {
	p := NewInitialPosition()
	p.EnPassant = Sq(3, 2)

	c := p.Copy()
	if c.EnPassant != NoSquare {
		t.Errorf("Copy().EnPassant = %v; want NoSquare", c.EnPassant)
	}
	c.Set(Sq(0, 0), Empty)
	if p.Get(Sq(0, 0)) != Opp(Rook) {
		t.Error("mutating a copy changed the original grid")
	}

	cl := p.Clone()
	if !cl.Equal(p) {
		t.Error("Clone() is not equal to the original")
	}
}

func TestRefreshKings(t *testing.T) {
	p := NewEmptyPosition(White)
	p.Set(Sq(2, 5), Own(King))
	p.Set(Sq(6, 1), Opp(King))
	p.RefreshKings()
	if p.OwnKing != Sq(2, 5) || p.OppKing != Sq(6, 1) {
		t.Errorf("RefreshKings() = %v, %v", p.OwnKing, p.OppKing)
	}

	p.Set(Sq(6, 1), Empty)
	defer func() {
		if recover() == nil {
			t.Error("RefreshKings() with a missing king did not panic")
		}
	}()
	p.RefreshKings()
}

func TestSquareMirror(t *testing.T) {
	if got := Sq(3, 1).Mirror(); got != Sq(3, 6) {
		t.Errorf("Mirror() = %v; want (3,6)", got)
	}
	if got := NoSquare.Mirror(); got != NoSquare {
		t.Errorf("NoSquare.Mirror() = %v; want NoSquare", got)
	}
	if Sq(8, 0).Valid() || Sq(0, -1).Valid() || !Sq(7, 7).Valid() {
		t.Error("Valid() returned the wrong answer at the board edge")
	}
}
