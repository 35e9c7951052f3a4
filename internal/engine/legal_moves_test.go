package engine

import (
	"slices"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/lgbarn/flipchess-go/internal/chess"
	"github.com/lgbarn/flipchess-go/internal/testutil"
)

func mustFEN(t *testing.T, fen string) *chess.Position {
	t.Helper()
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) error: %v", fen, err)
	}
	return pos
}

func TestAllMoves_InitialPosition(t *testing.T) {
	pos := chess.NewInitialPosition()
	moves := AllMoves(pos)

	testutil.AssertEqual(t, len(moves), 20)
	for _, next := range moves {
		testutil.AssertEqual(t, next.ToMove, chess.White, "successor stays in the mover's view")
	}
	// The parent is never modified.
	testutil.AssertPositionEqual(t, pos, chess.NewInitialPosition())
}

func TestMovesFrom_EmptyAndOpponentSquares(t *testing.T) {
	pos := chess.NewInitialPosition()

	testutil.AssertEqual(t, len(MovesFrom(pos, chess.Sq(4, 4))), 0, "empty square")
	testutil.AssertEqual(t, len(MovesFrom(pos, chess.Sq(4, 1))), 0, "opponent pawn")
	testutil.AssertEqual(t, len(MovesFrom(pos, chess.Sq(1, 7))), 2, "knight b1")
	testutil.AssertEqual(t, len(LegalMoves(pos, chess.Sq(4, 6))), 2, "pawn e2")
}

func TestMovesFrom_PinnedPiece(t *testing.T) {
	// The e2 knight is pinned by the e8 rook.
	pos := mustFEN(t, "4r2k/8/8/8/8/8/4N3/4K3 w - - 0 1")
	testutil.AssertEqual(t, len(MovesFrom(pos, chess.Sq(4, 6))), 0)
}

func TestCastlingGates(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantShort bool
		wantLong  bool
		shortText string
		longText  string
	}{
		{"both available", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", true, true, "e1g1", "e1c1"},
		{"east rook moved", "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1", false, true, "e1g1", "e1c1"},
		{"west rook moved", "r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1", true, false, "e1g1", "e1c1"},
		{"king moved", "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1", false, false, "e1g1", "e1c1"},
		{"f1 occupied", "r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1", false, true, "e1g1", "e1c1"},
		{"g1 occupied", "r3k2r/8/8/8/8/8/8/R3K1NR w KQkq - 0 1", false, true, "e1g1", "e1c1"},
		{"b1 occupied", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", true, false, "e1g1", "e1c1"},
		{"in check", "r3k2r/8/8/8/4r3/8/8/R3K2R w KQkq - 0 1", false, false, "e1g1", "e1c1"},
		{"f1 attacked", "r3k2r/8/8/8/5r2/8/8/R3K2R w KQkq - 0 1", false, true, "e1g1", "e1c1"},
		{"d1 attacked", "r3k2r/8/8/8/3r4/8/8/R3K2R w KQkq - 0 1", true, false, "e1g1", "e1c1"},
		{"g1 attacked", "r3k2r/8/8/8/6r1/8/8/R3K2R w KQkq - 0 1", false, true, "e1g1", "e1c1"},
		{"c1 attacked", "r3k2r/8/8/8/2r5/8/8/R3K2R w KQkq - 0 1", true, false, "e1g1", "e1c1"},
		{"b1 attacked only", "r3k2r/8/8/8/1r6/8/8/R3K2R w KQkq - 0 1", true, true, "e1g1", "e1c1"},
		{"west rook missing", "r3k2r/8/8/8/8/8/8/4K2R w KQkq - 0 1", true, false, "e1g1", "e1c1"},
		{"black both", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", true, true, "e8g8", "e8c8"},
		{"black f8 attacked", "r3k2r/8/8/5R2/8/8/8/R3K2R b KQkq - 0 1", false, true, "e8g8", "e8c8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := mustFEN(t, tt.fen)
			moves := MoveStrings(pos)
			if got := slices.Contains(moves, tt.shortText); got != tt.wantShort {
				t.Errorf("%s generated = %v, want %v", tt.shortText, got, tt.wantShort)
			}
			if got := slices.Contains(moves, tt.longText); got != tt.wantLong {
				t.Errorf("%s generated = %v, want %v", tt.longText, got, tt.wantLong)
			}
		})
	}
}

func TestCastling_Relocation(t *testing.T) {
	pos := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	short, err := FindMove(pos, "e1g1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, short.Get(chess.Sq(6, 7)), chess.Own(chess.King))
	testutil.AssertEqual(t, short.Get(chess.Sq(5, 7)), chess.Own(chess.Rook))
	testutil.AssertEqual(t, short.Get(chess.Sq(7, 7)), chess.Empty)
	testutil.AssertEqual(t, short.Get(chess.Sq(4, 7)), chess.Empty)
	testutil.AssertEqual(t, short.OwnKing, chess.Sq(6, 7))
	testutil.AssertTrue(t, short.Castling.OwnKingMoved)
	testutil.AssertTrue(t, short.Castling.OwnEastRookMoved)

	long, err := FindMove(pos, "e1c1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, long.Get(chess.Sq(2, 7)), chess.Own(chess.King))
	testutil.AssertEqual(t, long.Get(chess.Sq(3, 7)), chess.Own(chess.Rook))
	testutil.AssertEqual(t, long.Get(chess.Sq(0, 7)), chess.Empty)
	testutil.AssertTrue(t, long.Castling.OwnWestRookMoved)
}

func TestCastling_FlagsAreMonotonic(t *testing.T) {
	pos := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	// Rook out and back: the right is gone for good.
	out, err := FindMove(pos, "h1h2")
	testutil.AssertNoError(t, err)
	reply, err := FindMove(out.Flip(), "a8b8")
	testutil.AssertNoError(t, err)
	back, err := FindMove(reply.Flip(), "h2h1")
	testutil.AssertNoError(t, err)

	testutil.AssertTrue(t, back.Castling.OwnEastRookMoved)
	testutil.AssertTrue(t, back.Castling.OppWestRookMoved)
	testutil.AssertFalse(t, slices.Contains(MoveStrings(back), "e1g1"))
}

func TestCastling_CapturedCornerRook(t *testing.T) {
	pos := mustFEN(t, "r3k2r/8/8/8/8/8/6B1/R3K2R w KQkq - 0 1")

	next, err := FindMove(pos, "g2a8")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, next.Castling.OppWestRookMoved)
	testutil.AssertFalse(t, next.Castling.OppEastRookMoved)
	testutil.AssertEqual(t, PositionToFEN(next.Flip()), "B3k2r/8/8/8/8/8/8/R3K2R b KQk - 0 1")
}

func TestEnPassantWindow(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/3p4/8/4P3/4K3 w - - 0 1")

	push, err := FindMove(pos, "e2e4")
	testutil.AssertNoError(t, err)
	black := push.Flip()
	testutil.AssertEqual(t, PositionToFEN(black), "4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1")

	// Taken immediately.
	capture, err := FindMove(black, "d4e3")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, PositionToFEN(capture.Flip()), "4k3/8/8/8/8/4p3/8/4K3 w - - 0 1")

	// Any other reply closes the window.
	wait, err := FindMove(black, "e8d8")
	testutil.AssertNoError(t, err)
	again, err := FindMove(wait.Flip(), "e1d1")
	testutil.AssertNoError(t, err)
	later := again.Flip()
	testutil.AssertEqual(t, later.EnPassant, chess.NoSquare)
	testutil.AssertFalse(t, slices.Contains(MoveStrings(later), "d4e3"))
}

func TestPromotion(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want []string
	}{
		{
			name: "push",
			fen:  "8/4P3/8/8/8/8/k7/4K3 w - - 0 1",
			want: []string{"e7e8n", "e7e8b", "e7e8r", "e7e8q"},
		},
		{
			name: "push and capture",
			fen:  "3r4/4P3/8/8/8/8/k7/4K3 w - - 0 1",
			want: []string{"e7e8n", "e7e8b", "e7e8r", "e7e8q", "e7d8n", "e7d8b", "e7d8r", "e7d8q"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := mustFEN(t, tt.fen)
			moves := MovesFrom(pos, chess.Sq(4, 1))
			var got []string
			for _, next := range moves {
				got = append(got, MoveString(pos, next))
			}
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestPromotion_OnlyPromotedSquareDiffers(t *testing.T) {
	pos := mustFEN(t, "8/4P3/8/8/8/8/k7/4K3 w - - 0 1")
	moves := MovesFrom(pos, chess.Sq(4, 1))
	testutil.AssertEqual(t, len(moves), 4)

	for i, next := range moves {
		testutil.AssertEqual(t, next.Get(chess.Sq(4, 0)), chess.Own(chess.PromotionKinds[i]))
		for j, other := range moves {
			if i == j {
				continue
			}
			a, b := *next, *other
			a.Squares[0][4], b.Squares[0][4] = 0, 0
			testutil.AssertTrue(t, a == b, "successors %d and %d differ elsewhere", i, j)
		}
	}
}

// Random playouts: no successor may leave the mover's king attacked, king
// caches must match the grid, and flipping twice is the identity.
func TestAllMoves_Soundness(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for game := 0; game < 20; game++ {
		pos := chess.NewInitialPosition()
		for ply := 0; ply < 120; ply++ {
			moves := AllMoves(pos)
			if len(moves) == 0 {
				break
			}
			for _, next := range moves {
				if !IsOwnKingSafe(next) {
					t.Fatalf("successor leaves king attacked:\n%s", next)
				}
				cached := *next
				next.RefreshKings()
				if cached != *next {
					t.Fatalf("stale king cache after move:\n%s", next)
				}
				testutil.AssertPositionEqual(t, next.Flipped().Flip(), next)
			}
			pos = moves[rng.Intn(len(moves))].Flip()
		}
	}
}

func TestHasLegalMoves(t *testing.T) {
	testutil.AssertTrue(t, HasLegalMoves(chess.NewInitialPosition()))
	testutil.AssertFalse(t, HasLegalMoves(mustFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")))
}
