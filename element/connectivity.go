package element

import (
	"github.com/notargets/FESpace/dim"
	"github.com/notargets/FESpace/linalg"
)

// ElementConnectivity joins an element kind E to the ND node indices that
// define one instance of it. The node table itself belongs to the mesh.
type ElementConnectivity[T linalg.Scalar, GD, RD, ND dim.Name, E FiniteElement[T, GD, RD, ND]] interface {
	NodalDim() ND

	// Vertices returns exactly ND indices into the mesh node table
	Vertices() linalg.Indices[ND]

	// Element builds the element from the coordinates of its nodes, one node
	// per column in the order returned by Vertices
	Element(nodes linalg.Matrix[T, GD, ND]) E

	// LocalFacets lists each facet of the element as local vertex numbers
	LocalFacets() [][]int
}
