package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/flipchess-go/internal/chess"
)

// Grid is a board written as signed piece codes, row 0 first.
type Grid [chess.BoardSize][chess.BoardSize]int8

// PositionFromGrid builds a position for the given colour from a grid of
// codes. Castling flags are all set, so no castle is generated unless the
// caller clears them.
func PositionFromGrid(t testing.TB, grid Grid, toMove chess.Colour) *chess.Position {
	t.Helper()
	pos := chess.NewEmptyPosition(toMove)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			pos.Squares[row][col] = chess.Piece(grid[row][col])
		}
	}
	if own, opp := pos.CountKings(); own != 1 || opp != 1 {
		t.Fatalf("grid has %d own and %d opponent kings, want one each", own, opp)
		return nil
	}
	pos.RefreshKings()
	pos.Castling = chess.CastlingRights{
		OwnKingMoved: true, OppKingMoved: true,
		OwnWestRookMoved: true, OwnEastRookMoved: true,
		OppWestRookMoved: true, OppEastRookMoved: true,
	}
	return pos
}

// AssertPositionEqual compares two positions field by field and reports a
// readable diff.
func AssertPositionEqual(t testing.TB, got, want *chess.Position, msgAndArgs ...interface{}) {
	t.Helper()
	if got == nil || want == nil {
		if got != want {
			t.Errorf("%sposition mismatch: got %v, want %v", prefix(msgAndArgs...), got, want)
		}
		return
	}
	if diff := cmp.Diff(*want, *got); diff != "" {
		t.Errorf("%sposition mismatch (-want +got):\n%s", prefix(msgAndArgs...), diff)
	}
}
