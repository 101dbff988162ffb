package element

import (
	"github.com/notargets/FESpace/dim"
	"github.com/notargets/FESpace/linalg"
)

// Quad4Element is a bilinear quadrilateral in the plane on the reference
// square [0,1]^2. Nodes are numbered counter clockwise from (0,0).
type Quad4Element[T linalg.Scalar] struct {
	nodes linalg.Matrix[T, dim.U2, dim.U4]
}

func NewQuad4Element[T linalg.Scalar](a, b, c, d linalg.Vector[T, dim.U2]) (e Quad4Element[T]) {
	e.nodes.SetColumn(0, a)
	e.nodes.SetColumn(1, b)
	e.nodes.SetColumn(2, c)
	e.nodes.SetColumn(3, d)
	return
}

func (Quad4Element[T]) ReferenceDim() dim.U2 { return dim.U2{} }
func (Quad4Element[T]) NodalDim() dim.U4     { return dim.U4{} }
func (Quad4Element[T]) GeometryDim() dim.U2  { return dim.U2{} }

func (Quad4Element[T]) GetProperties() ElementProperties {
	return properties[dim.U2, dim.U2, dim.U4]("Bilinear Quadrilateral", "Quad4", Rectangle, 4)
}

func (e Quad4Element[T]) Vertex(i int) linalg.Vector[T, dim.U2] { return e.nodes.Column(i) }

func (Quad4Element[T]) storage() linalg.FiniteElementAllocator[T, dim.U2, dim.U2, dim.U4] {
	return linalg.FiniteElementAllocator[T, dim.U2, dim.U2, dim.U4]{}
}

func (e Quad4Element[T]) EvaluateBasis(xi linalg.Vector[T, dim.U2]) linalg.Matrix[T, dim.U1, dim.U4] {
	N := e.storage().BasisRow()
	r, s := xi.At(0), xi.At(1)
	N.Set(0, 0, (1-r)*(1-s))
	N.Set(0, 1, r*(1-s))
	N.Set(0, 2, r*s)
	N.Set(0, 3, (1-r)*s)
	return N
}

func (e Quad4Element[T]) GradientsOfBasis(xi linalg.Vector[T, dim.U2]) linalg.Matrix[T, dim.U2, dim.U4] {
	G := e.storage().BasisGradients()
	r, s := xi.At(0), xi.At(1)
	G.SetColumn(0, linalg.Vector2(-(1 - s), -(1 - r)))
	G.SetColumn(1, linalg.Vector2(1-s, -r))
	G.SetColumn(2, linalg.Vector2(s, r))
	G.SetColumn(3, linalg.Vector2(-s, 1-r))
	return G
}

func (e Quad4Element[T]) MapReferenceCoords(xi linalg.Vector[T, dim.U2]) linalg.Vector[T, dim.U2] {
	return mapNodal(e.storage(), e.nodes, e.EvaluateBasis(xi))
}

func (e Quad4Element[T]) ReferenceJacobian(xi linalg.Vector[T, dim.U2]) linalg.Matrix[T, dim.U2, dim.U2] {
	return jacobianNodal(e.storage(), e.nodes, e.GradientsOfBasis(xi))
}

type Quad4Connectivity[T linalg.Scalar] struct {
	vertices linalg.Indices[dim.U4]
}

func NewQuad4Connectivity[T linalg.Scalar](a, b, c, d int) Quad4Connectivity[T] {
	return Quad4Connectivity[T]{vertices: linalg.NewIndices4(a, b, c, d)}
}

func (Quad4Connectivity[T]) NodalDim() dim.U4 { return dim.U4{} }

func (c Quad4Connectivity[T]) Vertices() linalg.Indices[dim.U4] { return c.vertices }

func (Quad4Connectivity[T]) Element(nodes linalg.Matrix[T, dim.U2, dim.U4]) Quad4Element[T] {
	return Quad4Element[T]{nodes: nodes}
}

func (Quad4Connectivity[T]) LocalFacets() [][]int {
	return [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
}
