// Package errors provides sentinel errors and error types for the flipchess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed or unplayable FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not among the legal successors.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidPosition indicates a position that violates an evaluator's
	// piece-count preconditions.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrModel indicates a failure inside a learned evaluation model.
	ErrModel = errors.New("model failure")

	// ErrGameAborted indicates a game stopped because a player failed.
	ErrGameAborted = errors.New("game aborted")
)

// InvalidPositionError reports the piece counts that made a position
// unusable for an evaluator. It unwraps to ErrInvalidPosition.
type InvalidPositionError struct {
	Mode     string // Evaluator mode that rejected the position
	OwnKings int
	OppKings int
	Queens   int
	Rooks    int
	Bishops  int
}

// Error returns a message naming the offending counts.
func (e *InvalidPositionError) Error() string {
	var parts []string
	if e.OwnKings != 1 || e.OppKings != 1 {
		parts = append(parts, fmt.Sprintf("expected 1 king per side, got %d own and %d opponent", e.OwnKings, e.OppKings))
	}
	if e.Queens > 1 {
		parts = append(parts, fmt.Sprintf("expected at most 1 queen, got %d", e.Queens))
	}
	if e.Rooks > 2 {
		parts = append(parts, fmt.Sprintf("expected at most 2 rooks, got %d", e.Rooks))
	}
	if e.Bishops > 2 {
		parts = append(parts, fmt.Sprintf("expected at most 2 bishops, got %d", e.Bishops))
	}

	msg := ErrInvalidPosition.Error()
	if e.Mode != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Mode)
	}
	if len(parts) == 0 {
		return msg
	}
	return msg + ": " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is(err, ErrInvalidPosition) match.
func (e *InvalidPositionError) Unwrap() error {
	return ErrInvalidPosition
}

// GameError wraps errors with game context, including the game ID,
// ply number and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameID   string // Game identifier (if known)
	Ply      int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "game error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
// It saves callers from importing both this package and the standard one.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
