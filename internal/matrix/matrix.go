package matrix

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrShapeMismatch     = errors.New("matrix shape mismatch")
	ErrIncompatibleShape = errors.New("incompatible matrix shape")
)

// Bound of the symmetric interval used by Randomize.
const InitRange = 1.0

// Matrix is a dense rows×cols grid. Methods without a Matrix result mutate
// the receiver; the package level functions always build a new Matrix.
// A Matrix is not safe for concurrent mutation.
type Matrix struct {
	rows   int
	cols   int
	values [][]float64
}

func NewMatrix(rows, cols int) Matrix {
	m := Matrix{
		rows:   rows,
		cols:   cols,
		values: make([][]float64, rows),
	}

	for i := 0; i < rows; i++ {
		m.values[i] = make([]float64, cols)
	}

	return m
}

// FromSlice builds an N×1 column matrix.
func FromSlice(values []float64) Matrix {
	m := NewMatrix(len(values), 1)
	for i, v := range values {
		m.values[i][0] = v
	}
	return m
}

// FromRows copies a rectangular [][]float64 into a new Matrix.
func FromRows(rows [][]float64) (Matrix, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m := NewMatrix(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return Matrix{}, errors.Wrapf(ErrShapeMismatch, "row %d has %d values, want %d", i, len(row), cols)
		}
		copy(m.values[i], row)
	}
	return m, nil
}

func (m *Matrix) Rows() int                        { return m.rows }
func (m *Matrix) Cols() int                        { return m.cols }
func (m *Matrix) GetValue(i, j int) float64        { return m.values[i][j] }
func (m *Matrix) SetValue(i, j int, value float64) { m.values[i][j] = value }
func (m *Matrix) GetValuePtr(i, j int) *float64    { return &m.values[i][j] }

// Randomize fills every entry with an independent sample from
// [-InitRange, InitRange) drawn from src.
func (m *Matrix) Randomize(src rand.Source) {
	dist := distuv.Uniform{Min: -InitRange, Max: InitRange, Src: src}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			m.values[i][j] = dist.Rand()
		}
	}
}

// ToSlice flattens the matrix in row-major order.
func (m *Matrix) ToSlice() []float64 {
	out := make([]float64, 0, m.rows*m.cols)
	for i := 0; i < m.rows; i++ {
		out = append(out, m.values[i]...)
	}
	return out
}

func (m *Matrix) Transpose() Matrix {
	result := NewMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			result.values[j][i] = m.values[i][j]
		}
	}
	return result
}

func (m *Matrix) Copy() Matrix {
	result := NewMatrix(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		copy(result.values[i], m.values[i])
	}
	return result
}

func (m *Matrix) sameShape(op string, other Matrix) error {
	if m.rows != other.rows || m.cols != other.cols {
		return errors.Wrapf(ErrShapeMismatch, "%s: %dx%d and %dx%d", op, m.rows, m.cols, other.rows, other.cols)
	}
	return nil
}

func (m *Matrix) Add(other Matrix) error {
	if err := m.sameShape("add", other); err != nil {
		return err
	}
	for i := range m.values {
		floats.Add(m.values[i], other.values[i])
	}
	return nil
}

func (m *Matrix) Subtract(other Matrix) error {
	if err := m.sameShape("subtract", other); err != nil {
		return err
	}
	for i := range m.values {
		floats.Sub(m.values[i], other.values[i])
	}
	return nil
}

// Hadamard multiplies the receiver element-wise by other.
func (m *Matrix) Hadamard(other Matrix) error {
	if err := m.sameShape("hadamard", other); err != nil {
		return err
	}
	for i := range m.values {
		floats.Mul(m.values[i], other.values[i])
	}
	return nil
}

func (m *Matrix) AddScalar(value float64) {
	for i := range m.values {
		floats.AddConst(value, m.values[i])
	}
}

func (m *Matrix) SubtractScalar(value float64) {
	for i := range m.values {
		floats.AddConst(-value, m.values[i])
	}
}

// Scale multiplies every entry by value.
func (m *Matrix) Scale(value float64) {
	for i := range m.values {
		floats.Scale(value, m.values[i])
	}
}

func Map(m Matrix, fn func(float64) float64) Matrix {
	result := NewMatrix(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			result.values[i][j] = fn(m.values[i][j])
		}
	}
	return result
}

// Product is the matrix product a·b. Every entry sums over all a.cols
// terms of the shared dimension.
func Product(a, b Matrix) (Matrix, error) {
	if a.cols != b.rows {
		return Matrix{}, errors.Wrapf(ErrIncompatibleShape, "product: %dx%d by %dx%d", a.rows, a.cols, b.rows, b.cols)
	}

	result := NewMatrix(a.rows, b.cols)
	column := make([]float64, b.rows)
	for j := 0; j < b.cols; j++ {
		for k := 0; k < b.rows; k++ {
			column[k] = b.values[k][j]
		}
		for i := 0; i < a.rows; i++ {
			result.values[i][j] = floats.Dot(a.values[i], column)
		}
	}
	return result, nil
}

func SubtractMatrices(a, b Matrix) (Matrix, error) {
	result := a.Copy()
	if err := result.Subtract(b); err != nil {
		return Matrix{}, err
	}
	return result, nil
}

// Equal reports whether a and b have the same shape and identical entries.
func Equal(a, b Matrix) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := range a.values {
		if !floats.Equal(a.values[i], b.values[i]) {
			return false
		}
	}
	return true
}
