package element

import (
	"github.com/notargets/FESpace/dim"
	"github.com/notargets/FESpace/geometry"
	"github.com/notargets/FESpace/linalg"
)

// Edge2dElement is a straight two node edge in the plane. The reference
// domain is ξ ∈ [0,1] with ξ=0 at From and ξ=1 at To. A zero length segment
// is valid and maps every ξ to the same point.
type Edge2dElement[T linalg.Scalar] struct {
	segment geometry.LineSegment2d[T]
}

func NewEdge2dElement[T linalg.Scalar](segment geometry.LineSegment2d[T]) Edge2dElement[T] {
	return Edge2dElement[T]{segment: segment}
}

func (Edge2dElement[T]) ReferenceDim() dim.U1 { return dim.U1{} }
func (Edge2dElement[T]) NodalDim() dim.U2     { return dim.U2{} }
func (Edge2dElement[T]) GeometryDim() dim.U2  { return dim.U2{} }

func (Edge2dElement[T]) GetProperties() ElementProperties {
	return properties[dim.U2, dim.U1, dim.U2]("Linear Edge in 2D", "Edge2d", Line, 2)
}

func (e Edge2dElement[T]) Segment() geometry.LineSegment2d[T] { return e.segment }

func (Edge2dElement[T]) storage() linalg.FiniteElementAllocator[T, dim.U2, dim.U1, dim.U2] {
	return linalg.FiniteElementAllocator[T, dim.U2, dim.U1, dim.U2]{}
}

// nodes places From and To in the columns of a nodal coordinate matrix
func (e Edge2dElement[T]) nodes() linalg.Matrix[T, dim.U2, dim.U2] {
	X := e.storage().NodalCoords()
	X.SetColumn(0, e.segment.From())
	X.SetColumn(1, e.segment.To())
	return X
}

func (e Edge2dElement[T]) EvaluateBasis(xi linalg.Vector[T, dim.U1]) linalg.Matrix[T, dim.U1, dim.U2] {
	N := e.storage().BasisRow()
	t := xi.At(0)
	N.Set(0, 0, 1-t)
	N.Set(0, 1, t)
	return N
}

func (e Edge2dElement[T]) GradientsOfBasis(linalg.Vector[T, dim.U1]) linalg.Matrix[T, dim.U1, dim.U2] {
	G := e.storage().BasisGradients()
	G.Set(0, 0, -1)
	G.Set(0, 1, 1)
	return G
}

// MapReferenceCoords agrees with Segment().PointAt(ξ)
func (e Edge2dElement[T]) MapReferenceCoords(xi linalg.Vector[T, dim.U1]) linalg.Vector[T, dim.U2] {
	return mapNodal(e.storage(), e.nodes(), e.EvaluateBasis(xi))
}

// ReferenceJacobian is the single column To - From
func (e Edge2dElement[T]) ReferenceJacobian(xi linalg.Vector[T, dim.U1]) linalg.Matrix[T, dim.U2, dim.U1] {
	return jacobianNodal(e.storage(), e.nodes(), e.GradientsOfBasis(xi))
}

// Edge2dConnectivity names the two nodes of an Edge2dElement
type Edge2dConnectivity[T linalg.Scalar] struct {
	vertices linalg.Indices[dim.U2]
}

func NewEdge2dConnectivity[T linalg.Scalar](from, to int) Edge2dConnectivity[T] {
	return Edge2dConnectivity[T]{vertices: linalg.NewIndices2(from, to)}
}

func (Edge2dConnectivity[T]) NodalDim() dim.U2 { return dim.U2{} }

func (c Edge2dConnectivity[T]) Vertices() linalg.Indices[dim.U2] { return c.vertices }

func (Edge2dConnectivity[T]) Element(nodes linalg.Matrix[T, dim.U2, dim.U2]) Edge2dElement[T] {
	return NewEdge2dElement(geometry.NewLineSegment2d(nodes.Column(0), nodes.Column(1)))
}

func (Edge2dConnectivity[T]) LocalFacets() [][]int {
	return [][]int{{0}, {1}}
}
