// Package eval provides leaf evaluators for the search: a material count,
// feature extraction for learned models, and model-backed evaluators.
//
// Every evaluator scores a position from the point of view of its own
// (positive) side: larger is better for the side the position is oriented
// for.
package eval

import "github.com/lgbarn/flipchess-go/internal/chess"

// Evaluator scores a position for its own side.
type Evaluator interface {
	Evaluate(pos *chess.Position) (float64, error)
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(pos *chess.Position) (float64, error)

// Evaluate calls f(pos).
func (f EvaluatorFunc) Evaluate(pos *chess.Position) (float64, error) {
	return f(pos)
}

// MaterialEvaluator scores a position by the sum of its signed piece codes.
type MaterialEvaluator struct{}

// Evaluate returns the material balance. It never fails.
func (MaterialEvaluator) Evaluate(pos *chess.Position) (float64, error) {
	return float64(pos.MaterialScore()), nil
}
