package eval

import (
	"fmt"

	"github.com/lgbarn/flipchess-go/internal/chess"
	"github.com/lgbarn/flipchess-go/internal/errors"
)

// Model maps a feature vector to a score.
type Model interface {
	Predict(features []float32) (float32, error)
}

// ModelEvaluator extracts features in Mode and scores them with Model.
// Extraction and prediction failures are returned to the caller unchanged
// in kind; no default score is ever substituted.
type ModelEvaluator struct {
	Mode  Mode
	Model Model
}

// NewModelEvaluator creates an evaluator for the given mode and model.
func NewModelEvaluator(mode Mode, model Model) *ModelEvaluator {
	return &ModelEvaluator{Mode: mode, Model: model}
}

// Evaluate extracts features and runs the model.
func (e *ModelEvaluator) Evaluate(pos *chess.Position) (float64, error) {
	features, err := ExtractFeatures(pos, e.Mode)
	if err != nil {
		return 0, err
	}
	score, err := e.Model.Predict(features)
	if err != nil {
		return 0, err
	}
	return float64(score), nil
}

// LinearModel is a weighted sum of the features plus a bias.
type LinearModel struct {
	Weights []float32
	Bias    float32
}

// Predict returns the dot product of weights and features plus the bias.
func (m LinearModel) Predict(features []float32) (float32, error) {
	if len(features) != len(m.Weights) {
		return 0, fmt.Errorf("linear model expects %d features, got %d: %w", len(m.Weights), len(features), errors.ErrModel)
	}
	sum := m.Bias
	for i, f := range features {
		sum += m.Weights[i] * f
	}
	return sum, nil
}
