package mesh

import (
	"fmt"

	"github.com/notargets/FESpace/dim"
	"github.com/notargets/FESpace/element"
	"github.com/notargets/FESpace/geometry"
	"github.com/notargets/FESpace/linalg"
)

func NewEdge2dMesh[T linalg.Scalar](nodes []linalg.Vector[T, dim.U2], conn []element.Edge2dConnectivity[T]) (
	*Mesh[T, dim.U2, dim.U1, dim.U2, element.Edge2dElement[T], element.Edge2dConnectivity[T]], error) {
	return NewMesh[T, dim.U2, dim.U1, dim.U2, element.Edge2dElement[T], element.Edge2dConnectivity[T]](nodes, conn)
}

func NewTri3Mesh[T linalg.Scalar](nodes []linalg.Vector[T, dim.U2], conn []element.Tri3Connectivity[T]) (
	*Mesh[T, dim.U2, dim.U2, dim.U3, element.Tri3Element[T], element.Tri3Connectivity[T]], error) {
	return NewMesh[T, dim.U2, dim.U2, dim.U3, element.Tri3Element[T], element.Tri3Connectivity[T]](nodes, conn)
}

func NewQuad4Mesh[T linalg.Scalar](nodes []linalg.Vector[T, dim.U2], conn []element.Quad4Connectivity[T]) (
	*Mesh[T, dim.U2, dim.U2, dim.U4, element.Quad4Element[T], element.Quad4Connectivity[T]], error) {
	return NewMesh[T, dim.U2, dim.U2, dim.U4, element.Quad4Element[T], element.Quad4Connectivity[T]](nodes, conn)
}

func NewTet4Mesh[T linalg.Scalar](nodes []linalg.Vector[T, dim.U3], conn []element.Tet4Connectivity[T]) (
	*Mesh[T, dim.U3, dim.U3, dim.U4, element.Tet4Element[T], element.Tet4Connectivity[T]], error) {
	return NewMesh[T, dim.U3, dim.U3, dim.U4, element.Tet4Element[T], element.Tet4Connectivity[T]](nodes, conn)
}

// unitSquareNodes places (n+1)×(n+1) nodes on [0,1]^2, node (i,j) at index
// j*(n+1)+i
func unitSquareNodes[T linalg.Scalar](n int) []linalg.Vector[T, dim.U2] {
	nodes := make([]linalg.Vector[T, dim.U2], 0, (n+1)*(n+1))
	for j := 0; j <= n; j++ {
		for i := 0; i <= n; i++ {
			nodes = append(nodes, linalg.Vector2(T(i)/T(n), T(j)/T(n)))
		}
	}
	return nodes
}

// UnitSquareTri3 meshes [0,1]^2 with n×n cells, each split into two counter
// clockwise triangles along its diagonal
func UnitSquareTri3[T linalg.Scalar](n int) (
	*Mesh[T, dim.U2, dim.U2, dim.U3, element.Tri3Element[T], element.Tri3Connectivity[T]], error) {
	if n < 1 {
		return nil, fmt.Errorf("invalid cell count: n=%d", n)
	}
	conn := make([]element.Tri3Connectivity[T], 0, 2*n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			a := j*(n+1) + i
			b, c, d := a+1, a+n+2, a+n+1
			conn = append(conn,
				element.NewTri3Connectivity[T](a, b, c),
				element.NewTri3Connectivity[T](a, c, d))
		}
	}
	return NewTri3Mesh(unitSquareNodes[T](n), conn)
}

// UnitSquareQuad4 meshes [0,1]^2 with n×n counter clockwise quadrilaterals
func UnitSquareQuad4[T linalg.Scalar](n int) (
	*Mesh[T, dim.U2, dim.U2, dim.U4, element.Quad4Element[T], element.Quad4Connectivity[T]], error) {
	if n < 1 {
		return nil, fmt.Errorf("invalid cell count: n=%d", n)
	}
	conn := make([]element.Quad4Connectivity[T], 0, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			a := j*(n+1) + i
			conn = append(conn, element.NewQuad4Connectivity[T](a, a+1, a+n+2, a+n+1))
		}
	}
	return NewQuad4Mesh(unitSquareNodes[T](n), conn)
}

// BoundaryMesh2d extracts the boundary of a planar mesh as an edge mesh over
// the same node table. Edges keep the local orientation of their owning
// element, so a counter clockwise volume mesh yields a counter clockwise
// boundary.
func BoundaryMesh2d[T linalg.Scalar, RD, ND dim.Name,
	E element.FiniteElement[T, dim.U2, RD, ND], C element.ElementConnectivity[T, dim.U2, RD, ND, E]](
	m *Mesh[T, dim.U2, RD, ND, E, C]) (
	*Mesh[T, dim.U2, dim.U1, dim.U2, element.Edge2dElement[T], element.Edge2dConnectivity[T]], error) {
	fc, err := m.FacetConnector()
	if err != nil {
		return nil, err
	}
	for f, fv := range fc.Facets {
		if len(fv) != 2 {
			return nil, fmt.Errorf("local facet %d has %d vertices, expected an edge", f, len(fv))
		}
	}
	refs := fc.BoundaryFacets()
	conn := make([]element.Edge2dConnectivity[T], 0, len(refs))
	for _, r := range refs {
		v := fc.FacetVertices(r.Elem, r.Facet)
		conn = append(conn, element.NewEdge2dConnectivity[T](v[0], v[1]))
	}
	return NewEdge2dMesh(m.nodes, conn)
}

// BoundaryEdges2d returns the boundary of a planar mesh as line segments
func BoundaryEdges2d[T linalg.Scalar, RD, ND dim.Name,
	E element.FiniteElement[T, dim.U2, RD, ND], C element.ElementConnectivity[T, dim.U2, RD, ND, E]](
	m *Mesh[T, dim.U2, RD, ND, E, C]) ([]geometry.LineSegment2d[T], error) {
	bm, err := BoundaryMesh2d(m)
	if err != nil {
		return nil, err
	}
	segments := make([]geometry.LineSegment2d[T], bm.NumElements())
	for k := range segments {
		segments[k] = bm.Element(k).Segment()
	}
	return segments, nil
}
