package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN},
		{"ErrIllegalMove", ErrIllegalMove},
		{"ErrInvalidPosition", ErrInvalidPosition},
		{"ErrInvalidConfig", ErrInvalidConfig},
		{"ErrModel", ErrModel},
		{"ErrGameAborted", ErrGameAborted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.sentinel)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", tt.sentinel)
			}
		})
	}
}

// TestInvalidPositionError_Error verifies the message names each violated count
func TestInvalidPositionError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *InvalidPositionError
		contains []string
	}{
		{
			name:     "two queens",
			err:      &InvalidPositionError{Mode: "full", OwnKings: 1, OppKings: 1, Queens: 2},
			contains: []string{"invalid position", "full", "at most 1 queen", "got 2"},
		},
		{
			name:     "missing king",
			err:      &InvalidPositionError{OwnKings: 1, OppKings: 0},
			contains: []string{"1 king per side", "0 opponent"},
		},
		{
			name:     "too many rooks and bishops",
			err:      &InvalidPositionError{OwnKings: 1, OppKings: 1, Rooks: 3, Bishops: 4},
			contains: []string{"at most 2 rooks", "at most 2 bishops"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("InvalidPositionError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestInvalidPositionError_Is verifies errors.Is and errors.As through wrapping
func TestInvalidPositionError_Is(t *testing.T) {
	err := Wrap(&InvalidPositionError{OwnKings: 1, OppKings: 1, Queens: 2}, "evaluating leaf")

	if !errors.Is(err, ErrInvalidPosition) {
		t.Error("errors.Is(err, ErrInvalidPosition) = false, want true")
	}

	var ipe *InvalidPositionError
	if !errors.As(err, &ipe) {
		t.Fatal("errors.As() could not extract InvalidPositionError")
	}
	if ipe.Queens != 2 {
		t.Errorf("Queens = %d, want 2", ipe.Queens)
	}
}

// TestGameError_Error verifies the error message format
func TestGameError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GameError
		contains []string
	}{
		{
			name: "full context",
			err: &GameError{
				Err:      ErrIllegalMove,
				GameID:   "6f1c",
				Ply:      12,
				MoveText: "e7e8q",
			},
			contains: []string{"game 6f1c", "ply 12", "e7e8q", "illegal move"},
		},
		{
			name:     "minimal context",
			err:      &GameError{Err: ErrGameAborted},
			contains: []string{"game aborted"},
		},
		{
			name:     "no underlying error",
			err:      &GameError{GameID: "abc"},
			contains: []string{"game abc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("GameError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestGameError_As verifies that errors.As works with GameError
func TestGameError_As(t *testing.T) {
	gameErr := &GameError{
		Err:      ErrInvalidPosition,
		GameID:   "g1",
		Ply:      24,
		MoveText: "e1c1",
	}

	wrapped := fmt.Errorf("self-play failed: %w", gameErr)

	var extracted *GameError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract GameError")
	}
	if extracted.Ply != 24 {
		t.Errorf("extracted.Ply = %d, want 24", extracted.Ply)
	}
	if !errors.Is(wrapped, ErrInvalidPosition) {
		t.Error("errors.Is(wrapped, ErrInvalidPosition) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "move %d in game %s", 15, "x")

	if !Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "move 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
