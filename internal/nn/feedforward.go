package nn

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"san-ffnn/internal/activation"
	"san-ffnn/internal/matrix"
)

var ErrLengthMismatch = errors.New("vector length mismatch")

// FeedForward is an input→hidden→output network trained by online
// backpropagation. It owns its weight matrices exclusively; Train mutates
// them in place, so a FeedForward must not be used from several goroutines
// without external locking.
type FeedForward struct {
	cfg  Config
	kind activation.Kind
	wih  matrix.Matrix // HiddenSize x InputSize
	who  matrix.Matrix // OutputSize x HiddenSize

	activate   func(float64) float64
	derivative func(float64) float64
}

func NewFeedForward(cfg Config) (*FeedForward, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	src := rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)

	nn := &FeedForward{
		cfg:  cfg,
		kind: cfg.ActivationKind(),
		wih:  matrix.NewMatrix(cfg.HiddenSize, cfg.InputSize),
		who:  matrix.NewMatrix(cfg.OutputSize, cfg.HiddenSize),
	}
	nn.activate = nn.kind.Func()
	nn.derivative = nn.kind.Derivative()

	nn.wih.Randomize(src)
	nn.who.Randomize(src)
	return nn, nil
}

func (nn *FeedForward) Config() Config              { return nn.cfg }
func (nn *FeedForward) Activation() activation.Kind { return nn.kind }

func (nn *FeedForward) WeightsInputHidden() matrix.Matrix  { return nn.wih.Copy() }
func (nn *FeedForward) WeightsHiddenOutput() matrix.Matrix { return nn.who.Copy() }

func (nn *FeedForward) checkLength(what string, values []float64, want int) error {
	if len(values) != want {
		return errors.Wrapf(ErrLengthMismatch, "%s has %d values, network expects %d", what, len(values), want)
	}
	return nil
}

// forward returns the hidden and output activations as column matrices.
func (nn *FeedForward) forward(input matrix.Matrix) (hidden, output matrix.Matrix, err error) {
	hiddenIn, err := matrix.Product(nn.wih, input)
	if err != nil {
		return matrix.Matrix{}, matrix.Matrix{}, err
	}
	hidden = matrix.Map(hiddenIn, nn.activate)

	outputIn, err := matrix.Product(nn.who, hidden)
	if err != nil {
		return matrix.Matrix{}, matrix.Matrix{}, err
	}
	output = matrix.Map(outputIn, nn.activate)
	return hidden, output, nil
}

// Query runs a forward pass. It does not modify the weights.
func (nn *FeedForward) Query(inputs []float64) ([]float64, error) {
	if err := nn.checkLength("input", inputs, nn.cfg.InputSize); err != nil {
		return nil, err
	}
	_, output, err := nn.forward(matrix.FromSlice(inputs))
	if err != nil {
		return nil, err
	}
	return output.ToSlice(), nil
}

// Train performs one stochastic gradient step on a single example and
// adds the resulting deltas to both weight matrices.
func (nn *FeedForward) Train(inputs, targets []float64) error {
	if err := nn.checkLength("input", inputs, nn.cfg.InputSize); err != nil {
		return err
	}
	if err := nn.checkLength("target", targets, nn.cfg.OutputSize); err != nil {
		return err
	}

	input := matrix.FromSlice(inputs)
	hidden, output, err := nn.forward(input)
	if err != nil {
		return err
	}

	outputErr, err := matrix.SubtractMatrices(matrix.FromSlice(targets), output)
	if err != nil {
		return err
	}
	hiddenErr, err := matrix.Product(nn.who.Transpose(), outputErr)
	if err != nil {
		return err
	}

	outputGrad, err := nn.gradient(output, outputErr)
	if err != nil {
		return err
	}
	hiddenGrad, err := nn.gradient(hidden, hiddenErr)
	if err != nil {
		return err
	}

	deltaWho, err := matrix.Product(outputGrad, hidden.Transpose())
	if err != nil {
		return err
	}
	deltaWih, err := matrix.Product(hiddenGrad, input.Transpose())
	if err != nil {
		return err
	}

	if err := nn.who.Add(deltaWho); err != nil {
		return err
	}
	return nn.wih.Add(deltaWih)
}

// gradient is derivative(activated) ⊙ layerErr scaled by the learning rate.
func (nn *FeedForward) gradient(activated, layerErr matrix.Matrix) (matrix.Matrix, error) {
	grad := matrix.Map(activated, nn.derivative)
	if err := grad.Hadamard(layerErr); err != nil {
		return matrix.Matrix{}, err
	}
	grad.Scale(nn.cfg.LearningRate)
	return grad, nil
}

// Loss returns the mean squared error of the current weights on one example.
func (nn *FeedForward) Loss(inputs, targets []float64) (float64, error) {
	if err := nn.checkLength("target", targets, nn.cfg.OutputSize); err != nil {
		return 0, err
	}
	output, err := nn.Query(inputs)
	if err != nil {
		return 0, err
	}
	floats.Sub(output, targets)
	return floats.Dot(output, output) / float64(len(output)), nil
}
