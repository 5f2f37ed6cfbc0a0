package trainer

import (
	"log"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"san-ffnn/internal/nn"
	"san-ffnn/internal/parser"
)

// Network is the part of nn.FeedForward the trainer drives.
type Network interface {
	Train(inputs, targets []float64) error
	Query(inputs []float64) ([]float64, error)
	Loss(inputs, targets []float64) (float64, error)
}

type Config struct {
	Epochs      int
	ReportEvery int // epochs between log lines; 0 disables
	Shuffle     bool
	Seed        uint64
}

// Trainer runs online gradient descent, one Train call per sample.
type Trainer struct {
	net Network
	cfg Config
	rng *rand.Rand
	l   *log.Logger
}

func New(net Network, cfg Config) *Trainer {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Trainer{
		net: net,
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed, seed+1)),
	}
}

func (t *Trainer) SetLogger(l *log.Logger) {
	t.l = l
}

// Run trains for cfg.Epochs passes over samples and returns the mean loss
// after the last one. The samples slice is reordered in place when
// shuffling is enabled.
func (t *Trainer) Run(samples []parser.Sample) (float64, error) {
	if len(samples) == 0 {
		return 0, errors.New("no samples to train on")
	}
	for epoch := 1; epoch <= t.cfg.Epochs; epoch++ {
		if t.cfg.Shuffle {
			t.rng.Shuffle(len(samples), func(i, j int) {
				samples[i], samples[j] = samples[j], samples[i]
			})
		}
		for i, s := range samples {
			if err := t.net.Train(s.Input, s.Target); err != nil {
				return 0, errors.Wrapf(err, "epoch %d sample %d", epoch, i)
			}
		}
		if t.l != nil && t.cfg.ReportEvery > 0 && epoch%t.cfg.ReportEvery == 0 {
			loss, err := MeanLoss(t.net, samples)
			if err != nil {
				return 0, err
			}
			t.l.Printf("epoch=%d loss=%.6f", epoch, loss)
		}
	}
	return MeanLoss(t.net, samples)
}

func MeanLoss(net Network, samples []parser.Sample) (float64, error) {
	if len(samples) == 0 {
		return 0, nil
	}
	losses := make([]float64, len(samples))
	for i, s := range samples {
		loss, err := net.Loss(s.Input, s.Target)
		if err != nil {
			return 0, errors.Wrapf(err, "sample %d", i)
		}
		losses[i] = loss
	}
	return floats.Sum(losses) / float64(len(losses)), nil
}

// Accuracy returns the fraction of samples whose outputs all fall on the
// same side of threshold as their targets.
func Accuracy(net Network, samples []parser.Sample, threshold float64) (float64, error) {
	if len(samples) == 0 {
		return 0, nil
	}
	correct := 0
	for i, s := range samples {
		out, err := net.Query(s.Input)
		if err != nil {
			return 0, errors.Wrapf(err, "sample %d", i)
		}
		if len(s.Target) != len(out) {
			return 0, errors.Wrapf(nn.ErrLengthMismatch, "sample %d target has %d values, network outputs %d", i, len(s.Target), len(out))
		}
		ok := true
		for j := range out {
			if (out[j] > threshold) != (s.Target[j] > threshold) {
				ok = false
				break
			}
		}
		if ok {
			correct++
		}
	}
	return float64(correct) / float64(len(samples)), nil
}
