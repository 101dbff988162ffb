package element

import (
	"github.com/notargets/FESpace/dim"
	"github.com/notargets/FESpace/linalg"
)

// Tri3Element is a linear triangle in the plane on the reference triangle
// (0,0), (1,0), (0,1)
type Tri3Element[T linalg.Scalar] struct {
	nodes linalg.Matrix[T, dim.U2, dim.U3]
}

func NewTri3Element[T linalg.Scalar](a, b, c linalg.Vector[T, dim.U2]) (e Tri3Element[T]) {
	e.nodes.SetColumn(0, a)
	e.nodes.SetColumn(1, b)
	e.nodes.SetColumn(2, c)
	return
}

func (Tri3Element[T]) ReferenceDim() dim.U2 { return dim.U2{} }
func (Tri3Element[T]) NodalDim() dim.U3     { return dim.U3{} }
func (Tri3Element[T]) GeometryDim() dim.U2  { return dim.U2{} }

func (Tri3Element[T]) GetProperties() ElementProperties {
	return properties[dim.U2, dim.U2, dim.U3]("Linear Triangle", "Tri3", Tri, 3)
}

func (e Tri3Element[T]) Vertex(i int) linalg.Vector[T, dim.U2] { return e.nodes.Column(i) }

func (Tri3Element[T]) storage() linalg.FiniteElementAllocator[T, dim.U2, dim.U2, dim.U3] {
	return linalg.FiniteElementAllocator[T, dim.U2, dim.U2, dim.U3]{}
}

func (e Tri3Element[T]) EvaluateBasis(xi linalg.Vector[T, dim.U2]) linalg.Matrix[T, dim.U1, dim.U3] {
	N := e.storage().BasisRow()
	r, s := xi.At(0), xi.At(1)
	N.Set(0, 0, 1-r-s)
	N.Set(0, 1, r)
	N.Set(0, 2, s)
	return N
}

func (e Tri3Element[T]) GradientsOfBasis(linalg.Vector[T, dim.U2]) linalg.Matrix[T, dim.U2, dim.U3] {
	G := e.storage().BasisGradients()
	G.SetColumn(0, linalg.Vector2[T](-1, -1))
	G.SetColumn(1, linalg.Vector2[T](1, 0))
	G.SetColumn(2, linalg.Vector2[T](0, 1))
	return G
}

func (e Tri3Element[T]) MapReferenceCoords(xi linalg.Vector[T, dim.U2]) linalg.Vector[T, dim.U2] {
	return mapNodal(e.storage(), e.nodes, e.EvaluateBasis(xi))
}

func (e Tri3Element[T]) ReferenceJacobian(xi linalg.Vector[T, dim.U2]) linalg.Matrix[T, dim.U2, dim.U2] {
	return jacobianNodal(e.storage(), e.nodes, e.GradientsOfBasis(xi))
}

type Tri3Connectivity[T linalg.Scalar] struct {
	vertices linalg.Indices[dim.U3]
}

func NewTri3Connectivity[T linalg.Scalar](a, b, c int) Tri3Connectivity[T] {
	return Tri3Connectivity[T]{vertices: linalg.NewIndices3(a, b, c)}
}

func (Tri3Connectivity[T]) NodalDim() dim.U3 { return dim.U3{} }

func (c Tri3Connectivity[T]) Vertices() linalg.Indices[dim.U3] { return c.vertices }

func (Tri3Connectivity[T]) Element(nodes linalg.Matrix[T, dim.U2, dim.U3]) Tri3Element[T] {
	return Tri3Element[T]{nodes: nodes}
}

func (Tri3Connectivity[T]) LocalFacets() [][]int {
	return [][]int{{0, 1}, {1, 2}, {2, 0}}
}
