package linalg

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/FESpace/dim"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Scalar is the element type of all coordinate storage
type Scalar interface {
	~float32 | ~float64
}

// Vector is a coordinate vector whose length is the dimension tag D.
// Storage is a fixed array, so vectors are plain values and never escape to
// the heap on their own. The zero size tag field makes vectors of different
// dimensions distinct underlying types, so converting between them does not
// compile. Entries past D are always zero.
type Vector[T Scalar, D dim.Name] struct {
	_    [0]D
	data [dim.Max]T
}

// Zeros returns the zero vector of dimension D
func Zeros[T Scalar, D dim.Name]() Vector[T, D] {
	return Vector[T, D]{}
}

// Vector1 returns the one dimensional vector (x)
func Vector1[T Scalar](x T) (v Vector[T, dim.U1]) {
	v.data[0] = x
	return
}

// Vector2 returns the planar vector (x, y)
func Vector2[T Scalar](x, y T) (v Vector[T, dim.U2]) {
	v.data[0], v.data[1] = x, y
	return
}

// Vector3 returns the spatial vector (x, y, z)
func Vector3[T Scalar](x, y, z T) (v Vector[T, dim.U3]) {
	v.data[0], v.data[1], v.data[2] = x, y, z
	return
}

// Vector4 returns the four component vector (x, y, z, w)
func Vector4[T Scalar](x, y, z, w T) (v Vector[T, dim.U4]) {
	v.data[0], v.data[1], v.data[2], v.data[3] = x, y, z, w
	return
}

// VectorFromSlice converts runtime data (mesh tables, gonum vectors) into a
// dimension tagged vector.
func VectorFromSlice[T Scalar, D dim.Name](s []T) (v Vector[T, D], err error) {
	if len(s) != v.Len() {
		err = fmt.Errorf("slice length %d does not match vector dimension %d", len(s), v.Len())
		return
	}
	copy(v.data[:], s)
	return
}

// Len is the dimension D
func (v Vector[T, D]) Len() int {
	var d D
	return d.Value()
}

// At returns component i; i outside [0, D) panics
func (v Vector[T, D]) At(i int) T {
	v.checkIndex(i)
	return v.data[i]
}

// Set assigns component i; i outside [0, D) panics
func (v *Vector[T, D]) Set(i int, val T) {
	v.checkIndex(i)
	v.data[i] = val
}

func (v Vector[T, D]) checkIndex(i int) {
	if i < 0 || i >= v.Len() {
		panic(fmt.Sprintf("linalg: index %d out of range for vector of dimension %d", i, v.Len()))
	}
}

// Add returns v + w
func (v Vector[T, D]) Add(w Vector[T, D]) (r Vector[T, D]) {
	for i := 0; i < v.Len(); i++ {
		r.data[i] = v.data[i] + w.data[i]
	}
	return
}

// Sub returns v - w
func (v Vector[T, D]) Sub(w Vector[T, D]) (r Vector[T, D]) {
	for i := 0; i < v.Len(); i++ {
		r.data[i] = v.data[i] - w.data[i]
	}
	return
}

// Scale returns a*v
func (v Vector[T, D]) Scale(a T) (r Vector[T, D]) {
	for i := 0; i < v.Len(); i++ {
		r.data[i] = a * v.data[i]
	}
	return
}

// Dot returns the inner product v·w
func (v Vector[T, D]) Dot(w Vector[T, D]) (sum T) {
	for i := 0; i < v.Len(); i++ {
		sum += v.data[i] * w.data[i]
	}
	return
}

// Norm is the Euclidean magnitude of v
func (v Vector[T, D]) Norm() T {
	return T(math.Sqrt(float64(v.Dot(v))))
}

// Lerp returns (1-t)*v + t*w
func (v Vector[T, D]) Lerp(w Vector[T, D], t T) Vector[T, D] {
	return v.Scale(1 - t).Add(w.Scale(t))
}

// Slice returns a copy of the components
func (v Vector[T, D]) Slice() []T {
	s := make([]T, v.Len())
	copy(s, v.data[:v.Len()])
	return s
}

func (v Vector[T, D]) float64s() []float64 {
	s := make([]float64, v.Len())
	for i := range s {
		s[i] = float64(v.data[i])
	}
	return s
}

// ToVecDense copies v into a gonum vector for use with mat based operators
func (v Vector[T, D]) ToVecDense() *mat.VecDense {
	return mat.NewVecDense(v.Len(), v.float64s())
}

// ApproxEqual compares componentwise with absolute tolerance tol
func (v Vector[T, D]) ApproxEqual(w Vector[T, D], tol float64) bool {
	return floats.EqualApprox(v.float64s(), w.float64s(), tol)
}

// String formats v as "(x, y, ...)"
func (v Vector[T, D]) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%g", float64(v.data[i])))
	}
	sb.WriteString(")")
	return sb.String()
}
