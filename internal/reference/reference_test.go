package reference

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/lgbarn/flipchess-go/internal/chess"
	"github.com/lgbarn/flipchess-go/internal/engine"
	"github.com/lgbarn/flipchess-go/internal/errors"
	"github.com/lgbarn/flipchess-go/internal/testutil"
)

var fens = []string{
	engine.InitialFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
}

func TestPerft_Initial(t *testing.T) {
	for depth, want := range []uint64{1, 20, 400, 8902} {
		got, err := Perft(engine.InitialFEN, depth)
		testutil.AssertNoError(t, err)
		if got != want {
			t.Errorf("Perft(%d) = %d, want %d", depth, got, want)
		}
	}
}

func TestGoosePerft_AgreesWithDragontooth(t *testing.T) {
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			want, err := Perft(fen, 2)
			testutil.AssertNoError(t, err)
			got, err := GoosePerft(fen, 2)
			testutil.AssertNoError(t, err)
			if got != want {
				t.Errorf("GoosePerft(2) = %d, want %d", got, want)
			}
		})
	}
}

func TestCompare_EngineMatchesReference(t *testing.T) {
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			pos, err := engine.NewPositionFromFEN(fen)
			testutil.AssertNoError(t, err)

			mismatches, err := Compare(pos, 2)
			testutil.AssertNoError(t, err)
			for _, m := range mismatches {
				t.Errorf("divide mismatch %s", m)
			}
		})
	}
}

// Positions reached by random play are compared move for move.
func TestMoves_RandomPlayouts(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for game := 0; game < 10; game++ {
		pos := chess.NewInitialPosition()
		for ply := 0; ply < 80; ply++ {
			fen := engine.PositionToFEN(pos)
			want, err := Moves(fen)
			testutil.AssertNoError(t, err)

			got := engine.MoveStrings(pos)
			sorted := SortedKeys(toSet(got))
			if len(sorted) != len(got) {
				t.Fatalf("%s: engine generated duplicate moves %v", fen, got)
			}
			testutil.AssertEqual(t, sorted, want, fen)

			moves := engine.AllMoves(pos)
			if len(moves) == 0 {
				break
			}
			pos = moves[rng.Intn(len(moves))].Flip()
		}
	}
}

func TestReference_InvalidFEN(t *testing.T) {
	_, err := Perft("not a fen", 1)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
	_, err = Moves("")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
}

func TestMismatch_String(t *testing.T) {
	m := Mismatch{Move: "e2e4", Engine: 19, Reference: 20}
	testutil.AssertEqual(t, m.String(), "e2e4: engine 19, reference 20")
}

func toSet(moves []string) map[string]uint64 {
	set := make(map[string]uint64, len(moves))
	for _, m := range moves {
		set[m] = 1
	}
	return set
}
