package eval

import (
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/lgbarn/flipchess-go/internal/errors"
)

// Default tensor names used when ONNXOptions leaves them empty.
const (
	DefaultInputName  = "input"
	DefaultOutputName = "output"
)

// ONNXOptions configures an ONNXModel.
type ONNXOptions struct {
	ModelPath   string
	LibraryPath string // onnxruntime shared library; empty uses the loader's default
	InputName   string
	OutputName  string
	Features    int // width of the [1, n] input tensor
}

// ONNXModel runs a model exported to ONNX with a [1, n] float input and a
// [1, 1] float output. The tensors are reused between calls, so Predict is
// serialised by a mutex.
type ONNXModel struct {
	mu       sync.Mutex
	session  *ort.AdvancedSession
	input    *ort.Tensor[float32]
	output   *ort.Tensor[float32]
	features int
}

// runtimeMu guards the process-wide onnxruntime environment.
var runtimeMu sync.Mutex

func initRuntime(libPath string) error {
	runtimeMu.Lock()
	defer runtimeMu.Unlock()

	if ort.IsInitialized() {
		return nil
	}
	if libPath != "" {
		abs, err := resolvePath(libPath)
		if err != nil {
			return fmt.Errorf("onnxruntime library: %v: %w", err, errors.ErrModel)
		}
		ort.SetSharedLibraryPath(abs)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return fmt.Errorf("initializing onnxruntime: %v: %w", err, errors.ErrModel)
	}
	return nil
}

// NewONNXModel loads the model and allocates its input and output tensors.
func NewONNXModel(opts ONNXOptions) (*ONNXModel, error) {
	if opts.Features <= 0 {
		return nil, fmt.Errorf("onnx model needs a positive feature count, got %d: %w", opts.Features, errors.ErrModel)
	}
	modelPath, err := resolvePath(opts.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("onnx model: %v: %w", err, errors.ErrModel)
	}
	if err := initRuntime(opts.LibraryPath); err != nil {
		return nil, err
	}

	inputName, outputName := opts.InputName, opts.OutputName
	if inputName == "" {
		inputName = DefaultInputName
	}
	if outputName == "" {
		outputName = DefaultOutputName
	}

	input, err := ort.NewTensor(ort.NewShape(1, int64(opts.Features)), make([]float32, opts.Features))
	if err != nil {
		return nil, fmt.Errorf("allocating input tensor: %v: %w", err, errors.ErrModel)
	}
	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, 1))
	if err != nil {
		input.Destroy()
		return nil, fmt.Errorf("allocating output tensor: %v: %w", err, errors.ErrModel)
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{inputName}, []string{outputName},
		[]ort.Value{input}, []ort.Value{output}, nil)
	if err != nil {
		input.Destroy()
		output.Destroy()
		return nil, fmt.Errorf("creating session for %s: %v: %w", modelPath, err, errors.ErrModel)
	}

	return &ONNXModel{
		session:  session,
		input:    input,
		output:   output,
		features: opts.Features,
	}, nil
}

// Predict copies the features into the input tensor and runs the session.
func (m *ONNXModel) Predict(features []float32) (float32, error) {
	if len(features) != m.features {
		return 0, fmt.Errorf("onnx model expects %d features, got %d: %w", m.features, len(features), errors.ErrModel)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	copy(m.input.GetData(), features)
	if err := m.session.Run(); err != nil {
		return 0, fmt.Errorf("running onnx session: %v: %w", err, errors.ErrModel)
	}
	return m.output.GetData()[0], nil
}

// Close releases the session and its tensors.
func (m *ONNXModel) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var first error
	for _, destroy := range []func() error{m.session.Destroy, m.input.Destroy, m.output.Destroy} {
		if err := destroy(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
