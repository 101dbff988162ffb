package linalg

import (
	"fmt"

	"github.com/notargets/FESpace/dim"
	"gonum.org/v1/gonum/mat"
)

// Matrix is an R×C matrix stored row major in a fixed array. As with Vector,
// the tag fields keep matrices of different shapes from converting into each
// other.
type Matrix[T Scalar, R, C dim.Name] struct {
	_    [0]R
	_    [0]C
	data [dim.Max * dim.Max]T
}

// Dims returns the row and column counts R and C
func (m Matrix[T, R, C]) Dims() (r, c int) {
	return m.Rows(), m.Cols()
}

// Rows is the row dimension R
func (m Matrix[T, R, C]) Rows() int {
	var r R
	return r.Value()
}

// Cols is the column dimension C
func (m Matrix[T, R, C]) Cols() int {
	var c C
	return c.Value()
}

// At returns entry (i,j); indices outside R×C panic
func (m Matrix[T, R, C]) At(i, j int) T {
	m.checkIndex(i, j)
	return m.data[i*dim.Max+j]
}

// Set assigns entry (i,j); indices outside R×C panic
func (m *Matrix[T, R, C]) Set(i, j int, val T) {
	m.checkIndex(i, j)
	m.data[i*dim.Max+j] = val
}

func (m Matrix[T, R, C]) checkIndex(i, j int) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		panic(fmt.Sprintf("linalg: index (%d,%d) out of range for %dx%d matrix",
			i, j, m.Rows(), m.Cols()))
	}
}

// Column returns column j as a vector of dimension R
func (m Matrix[T, R, C]) Column(j int) (v Vector[T, R]) {
	for i := 0; i < m.Rows(); i++ {
		v.data[i] = m.At(i, j)
	}
	return
}

// SetColumn overwrites column j with v
func (m *Matrix[T, R, C]) SetColumn(j int, v Vector[T, R]) {
	for i := 0; i < m.Rows(); i++ {
		m.Set(i, j, v.data[i])
	}
}

// Row returns row i as a vector of dimension C
func (m Matrix[T, R, C]) Row(i int) (v Vector[T, C]) {
	for j := 0; j < m.Cols(); j++ {
		v.data[j] = m.At(i, j)
	}
	return
}

// Transpose returns the C×R transpose of m
func (m Matrix[T, R, C]) Transpose() (t Matrix[T, C, R]) {
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			t.data[j*dim.Max+i] = m.data[i*dim.Max+j]
		}
	}
	return
}

// MulVec returns m·v
func (m Matrix[T, R, C]) MulVec(v Vector[T, C]) (r Vector[T, R]) {
	for i := 0; i < m.Rows(); i++ {
		var sum T
		for j := 0; j < m.Cols(); j++ {
			sum += m.data[i*dim.Max+j] * v.data[j]
		}
		r.data[i] = sum
	}
	return
}

// Mul returns a·b. The inner dimension K must agree at compile time.
func Mul[T Scalar, R, K, C dim.Name](a Matrix[T, R, K], b Matrix[T, K, C]) (r Matrix[T, R, C]) {
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var sum T
			for k := 0; k < inner; k++ {
				sum += a.data[i*dim.Max+k] * b.data[k*dim.Max+j]
			}
			r.data[i*dim.Max+j] = sum
		}
	}
	return
}

// Det is the determinant of a square matrix
func Det[T Scalar, D dim.Name](m Matrix[T, D, D]) T {
	a := func(i, j int) T { return m.data[i*dim.Max+j] }
	switch m.Rows() {
	case 1:
		return a(0, 0)
	case 2:
		return a(0, 0)*a(1, 1) - a(0, 1)*a(1, 0)
	case 3:
		return a(0, 0)*(a(1, 1)*a(2, 2)-a(1, 2)*a(2, 1)) -
			a(0, 1)*(a(1, 0)*a(2, 2)-a(1, 2)*a(2, 0)) +
			a(0, 2)*(a(1, 0)*a(2, 1)-a(1, 1)*a(2, 0))
	default:
		return T(mat.Det(m.ToDense()))
	}
}

// ToDense copies m into a gonum matrix
func (m Matrix[T, R, C]) ToDense() *mat.Dense {
	rows, cols := m.Dims()
	d := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d.Set(i, j, float64(m.data[i*dim.Max+j]))
		}
	}
	return d
}

// MatrixFromDense converts a gonum matrix, checking its shape against R×C
func MatrixFromDense[T Scalar, R, C dim.Name](d mat.Matrix) (m Matrix[T, R, C], err error) {
	rows, cols := d.Dims()
	if rows != m.Rows() || cols != m.Cols() {
		err = fmt.Errorf("matrix is %dx%d, expected %dx%d", rows, cols, m.Rows(), m.Cols())
		return
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.data[i*dim.Max+j] = T(d.At(i, j))
		}
	}
	return
}
