package activation

import "math"

type Kind int

const (
	Sigmoid Kind = iota
	Tanh
)

// Parse maps an activation name to its Kind. "tanh" selects Tanh; every
// other name falls back to Sigmoid.
func Parse(name string) Kind {
	if name == "tanh" {
		return Tanh
	}
	return Sigmoid
}

func (k Kind) String() string {
	if k == Tanh {
		return "tanh"
	}
	return "sigmoid"
}

func (k Kind) Func() func(float64) float64 {
	if k == Tanh {
		return math.Tanh
	}
	return SigmoidFunc
}

// Derivative returns the derivative expressed in terms of the activated
// value y = Func()(x), not the pre-activation input x.
func (k Kind) Derivative() func(float64) float64 {
	if k == Tanh {
		return TanhDerivative
	}
	return SigmoidDerivative
}

// Range returns the open interval the activation maps into.
func (k Kind) Range() (lo, hi float64) {
	if k == Tanh {
		return -1, 1
	}
	return 0, 1
}

func SigmoidFunc(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

func SigmoidDerivative(y float64) float64 { return y * (1 - y) }

func TanhDerivative(y float64) float64 { return 1 - y*y }
