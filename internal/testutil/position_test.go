package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/flipchess-go/internal/chess"
)

func TestPositionFromGrid(t *testing.T) {
	var grid Grid
	grid[0][4] = -9
	grid[7][4] = 9
	grid[6][0] = 1

	pos := PositionFromGrid(t, grid, chess.Black)

	AssertEqual(t, pos.OwnKing, chess.Sq(4, 7))
	AssertEqual(t, pos.OppKing, chess.Sq(4, 0))
	AssertEqual(t, pos.Get(chess.Sq(0, 6)), chess.Own(chess.Pawn))
	AssertEqual(t, pos.ToMove, chess.Black)
	AssertTrue(t, pos.Castling.OwnKingMoved, "castling disabled by default")
}

func TestPositionFromGrid_KingCount(t *testing.T) {
	var grid Grid
	grid[7][4] = 9

	r := &recorder{TB: t}
	PositionFromGrid(r, grid, chess.White)
	if len(r.failures) != 1 || !strings.Contains(r.failures[0], "0 opponent kings") {
		t.Errorf("failures = %q; want a missing king report", r.failures)
	}
}
