package nn

import (
	"github.com/pkg/errors"

	"san-ffnn/internal/activation"
)

var ErrInvalidConfig = errors.New("invalid network config")

// Config holds the fixed topology and training hyperparameters of a
// FeedForward network.
type Config struct {
	InputSize    int
	HiddenSize   int
	OutputSize   int
	Activation   string
	LearningRate float64
	// Seed for weight initialization; 0 draws a fresh seed.
	Seed uint64
}

// DefaultConfig returns a tanh network with learning rate 0.1.
func DefaultConfig(inputs, hidden, outputs int) Config {
	return Config{
		InputSize:    inputs,
		HiddenSize:   hidden,
		OutputSize:   outputs,
		Activation:   "tanh",
		LearningRate: 0.1,
	}
}

func (c Config) Validate() error {
	if c.InputSize <= 0 || c.HiddenSize <= 0 || c.OutputSize <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "layer sizes must be positive, got %d-%d-%d",
			c.InputSize, c.HiddenSize, c.OutputSize)
	}
	if !(c.LearningRate > 0) {
		return errors.Wrapf(ErrInvalidConfig, "learning rate must be positive, got %v", c.LearningRate)
	}
	return nil
}

// ActivationKind resolves the configured activation; an unset name means tanh.
func (c Config) ActivationKind() activation.Kind {
	if c.Activation == "" {
		return activation.Tanh
	}
	return activation.Parse(c.Activation)
}
