package config

import (
	"fmt"

	"github.com/lgbarn/flipchess-go/internal/errors"
	"github.com/lgbarn/flipchess-go/internal/eval"
)

// MaterialMode selects the built-in material evaluator.
const MaterialMode = "material"

// EvalConfig holds settings for the leaf evaluator.
type EvalConfig struct {
	// Mode is material, full or endgame; the last two run a learned model
	Mode string

	// ModelPath locates the ONNX model for the learned modes
	ModelPath string

	// LibraryPath locates the onnxruntime shared library
	LibraryPath string

	// InputName and OutputName override the model's tensor names
	InputName  string
	OutputName string
}

// NewEvalConfig creates an EvalConfig with default values.
func NewEvalConfig() *EvalConfig {
	return &EvalConfig{
		Mode:       MaterialMode,
		InputName:  eval.DefaultInputName,
		OutputName: eval.DefaultOutputName,
	}
}

// UsesModel reports whether the configured mode needs a learned model.
func (e *EvalConfig) UsesModel() bool {
	return e.Mode != MaterialMode
}

// Validate checks that the evaluator configuration is valid.
func (e *EvalConfig) Validate() error {
	if !e.UsesModel() {
		return nil
	}
	if _, err := eval.ParseMode(e.Mode); err != nil {
		return err
	}
	if e.ModelPath == "" {
		return fmt.Errorf("evaluator mode %q needs a model path: %w", e.Mode, errors.ErrInvalidConfig)
	}
	return nil
}

// ONNXOptions returns the feature mode and model options for a learned
// evaluator.
func (e *EvalConfig) ONNXOptions() (eval.Mode, eval.ONNXOptions, error) {
	if err := e.Validate(); err != nil {
		return 0, eval.ONNXOptions{}, err
	}
	if !e.UsesModel() {
		return 0, eval.ONNXOptions{}, fmt.Errorf("evaluator mode %q has no model: %w", e.Mode, errors.ErrInvalidConfig)
	}
	mode, _ := eval.ParseMode(e.Mode)
	return mode, eval.ONNXOptions{
		ModelPath:   e.ModelPath,
		LibraryPath: e.LibraryPath,
		InputName:   e.InputName,
		OutputName:  e.OutputName,
		Features:    mode.FeatureCount(),
	}, nil
}
