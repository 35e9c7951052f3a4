package engine

import (
	"testing"

	"github.com/lgbarn/flipchess-go/internal/chess"
	"github.com/lgbarn/flipchess-go/internal/errors"
	"github.com/lgbarn/flipchess-go/internal/testutil"
)

func TestNewPositionFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Position) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(p *chess.Position) bool {
				return p.Equal(chess.NewInitialPosition())
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(p *chess.Position) bool {
				// Black's view: the white pawn sits on row 3, the target on row 2.
				return p.ToMove == chess.Black &&
					p.Get(chess.Sq(4, 3)) == chess.Opp(chess.Pawn) &&
					p.EnPassant == chess.Sq(4, 2) &&
					p.OwnKing == chess.Sq(4, 7) &&
					p.Get(chess.Sq(3, 7)) == chess.Own(chess.Queen)
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(p *chess.Position) bool {
				return p.Castling.OwnKingMoved && p.Castling.OppKingMoved
			},
		},
		{
			name: "partial castling rights",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1",
			checkFn: func(p *chess.Position) bool {
				c := p.Castling
				return !c.OwnKingMoved && !c.OwnEastRookMoved && c.OwnWestRookMoved &&
					!c.OppKingMoved && c.OppEastRookMoved && !c.OppWestRookMoved
			},
		},
		{
			name: "missing optional fields",
			fen:  "4k3/8/8/8/8/8/8/4K3",
			checkFn: func(p *chess.Position) bool {
				return p.ToMove == chess.White && p.EnPassant == chess.NoSquare
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos, err := NewPositionFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewPositionFromFEN() error = %v", err)
			}
			if !tt.checkFn(pos) {
				t.Errorf("NewPositionFromFEN() position check failed:\n%s", pos)
			}
		})
	}
}

func TestNewPositionFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty string", ""},
		{"too few ranks", "4k3/8/8/8/8/8/4K3 w - - 0 1"},
		{"short rank", "4k3/8/8/8/8/8/8/4K2 w - - 0 1"},
		{"long rank", "4k3/8/8/8/8/8/8/4K4 w - - 0 1"},
		{"bad piece", "4k3/8/8/8/8/8/8/4X3 w - - 0 1"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"bad castling", "4k3/8/8/8/8/8/8/4K3 w X - 0 1"},
		{"bad en passant", "4k3/8/8/8/8/8/8/4K3 w - e9 0 1"},
		{"en passant without pawn", "4k3/8/8/8/8/8/8/4K3 b - e3 0 1"},
		{"no white king", "4k3/8/8/8/8/8/8/8 w - - 0 1"},
		{"two black kings", "k3k3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"pawn on back rank", "4k2P/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"side not to move in check", "4k3/8/8/8/8/8/8/4R1K1 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewPositionFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
		})
	}
}

func TestPositionToFEN_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			pos := mustFEN(t, fen)
			testutil.AssertEqual(t, PositionToFEN(pos), fen)
		})
	}
}

func TestMustPositionFromFEN_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustPositionFromFEN() did not panic")
		}
	}()
	MustPositionFromFEN("not a fen")
}
