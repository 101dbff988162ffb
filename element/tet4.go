package element

import (
	"github.com/notargets/FESpace/dim"
	"github.com/notargets/FESpace/linalg"
)

// Tet4Element is a linear tetrahedron on the reference tetrahedron with
// vertices (0,0,0), (1,0,0), (0,1,0), (0,0,1)
type Tet4Element[T linalg.Scalar] struct {
	nodes linalg.Matrix[T, dim.U3, dim.U4]
}

func NewTet4Element[T linalg.Scalar](a, b, c, d linalg.Vector[T, dim.U3]) (e Tet4Element[T]) {
	e.nodes.SetColumn(0, a)
	e.nodes.SetColumn(1, b)
	e.nodes.SetColumn(2, c)
	e.nodes.SetColumn(3, d)
	return
}

func (Tet4Element[T]) ReferenceDim() dim.U3 { return dim.U3{} }
func (Tet4Element[T]) NodalDim() dim.U4     { return dim.U4{} }
func (Tet4Element[T]) GeometryDim() dim.U3  { return dim.U3{} }

func (Tet4Element[T]) GetProperties() ElementProperties {
	return properties[dim.U3, dim.U3, dim.U4]("Linear Tetrahedron", "Tet4", Tet, 4)
}

func (e Tet4Element[T]) Vertex(i int) linalg.Vector[T, dim.U3] { return e.nodes.Column(i) }

func (Tet4Element[T]) storage() linalg.FiniteElementAllocator[T, dim.U3, dim.U3, dim.U4] {
	return linalg.FiniteElementAllocator[T, dim.U3, dim.U3, dim.U4]{}
}

func (e Tet4Element[T]) EvaluateBasis(xi linalg.Vector[T, dim.U3]) linalg.Matrix[T, dim.U1, dim.U4] {
	N := e.storage().BasisRow()
	r, s, t := xi.At(0), xi.At(1), xi.At(2)
	N.Set(0, 0, 1-r-s-t)
	N.Set(0, 1, r)
	N.Set(0, 2, s)
	N.Set(0, 3, t)
	return N
}

func (e Tet4Element[T]) GradientsOfBasis(linalg.Vector[T, dim.U3]) linalg.Matrix[T, dim.U3, dim.U4] {
	G := e.storage().BasisGradients()
	G.SetColumn(0, linalg.Vector3[T](-1, -1, -1))
	G.SetColumn(1, linalg.Vector3[T](1, 0, 0))
	G.SetColumn(2, linalg.Vector3[T](0, 1, 0))
	G.SetColumn(3, linalg.Vector3[T](0, 0, 1))
	return G
}

func (e Tet4Element[T]) MapReferenceCoords(xi linalg.Vector[T, dim.U3]) linalg.Vector[T, dim.U3] {
	return mapNodal(e.storage(), e.nodes, e.EvaluateBasis(xi))
}

func (e Tet4Element[T]) ReferenceJacobian(xi linalg.Vector[T, dim.U3]) linalg.Matrix[T, dim.U3, dim.U3] {
	return jacobianNodal(e.storage(), e.nodes, e.GradientsOfBasis(xi))
}

type Tet4Connectivity[T linalg.Scalar] struct {
	vertices linalg.Indices[dim.U4]
}

func NewTet4Connectivity[T linalg.Scalar](a, b, c, d int) Tet4Connectivity[T] {
	return Tet4Connectivity[T]{vertices: linalg.NewIndices4(a, b, c, d)}
}

func (Tet4Connectivity[T]) NodalDim() dim.U4 { return dim.U4{} }

func (c Tet4Connectivity[T]) Vertices() linalg.Indices[dim.U4] { return c.vertices }

func (Tet4Connectivity[T]) Element(nodes linalg.Matrix[T, dim.U3, dim.U4]) Tet4Element[T] {
	return Tet4Element[T]{nodes: nodes}
}

func (Tet4Connectivity[T]) LocalFacets() [][]int {
	return [][]int{
		{0, 1, 2}, // Face 0
		{0, 1, 3}, // Face 1
		{1, 2, 3}, // Face 2
		{0, 2, 3}, // Face 3
	}
}
