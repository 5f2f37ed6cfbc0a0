package activation

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"tanh", Tanh},
		{"sigmoid", Sigmoid},
		{"relu", Sigmoid},
		{"", Sigmoid},
		{"TANH", Sigmoid},
	}
	for _, tt := range tests {
		if got := Parse(tt.name); got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDerivativeOfActivated(t *testing.T) {
	xs := []float64{-4, -1.5, -0.3, 0, 0.2, 1, 3.7}
	for _, x := range xs {
		y := Tanh.Func()(x)
		want := 1 - math.Tanh(x)*math.Tanh(x)
		if got := Tanh.Derivative()(y); math.Abs(got-want) > 1e-12 {
			t.Errorf("tanh'(%v) = %v, want %v", x, got, want)
		}

		s := Sigmoid.Func()(x)
		want = s * (1 - s)
		if got := Sigmoid.Derivative()(s); math.Abs(got-want) > 1e-12 {
			t.Errorf("sigmoid'(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestSigmoidMatchesNumericalDerivative(t *testing.T) {
	const h = 1e-6
	for _, x := range []float64{-2, -0.5, 0, 0.5, 2} {
		numeric := (SigmoidFunc(x+h) - SigmoidFunc(x-h)) / (2 * h)
		if got := SigmoidDerivative(SigmoidFunc(x)); math.Abs(got-numeric) > 1e-6 {
			t.Errorf("x=%v: expected %v, got %v", x, numeric, got)
		}
	}
}

func TestRange(t *testing.T) {
	for _, k := range []Kind{Sigmoid, Tanh} {
		lo, hi := k.Range()
		for _, x := range []float64{-10, -1, 0, 1, 10} {
			if y := k.Func()(x); y <= lo || y >= hi {
				t.Errorf("%v(%v) = %v outside (%v, %v)", k, x, y, lo, hi)
			}
		}
	}
}
