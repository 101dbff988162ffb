package element

import (
	"github.com/notargets/FESpace/dim"
	"github.com/notargets/FESpace/linalg"
)

// GeometricFiniteElementSpace is a family of elements of kind E over a
// geometry of dimension GD. The connectivity type C is bound to the same
// nodal dimension ND as the space, so a space whose connectivity disagrees
// with its elements does not compile.
type GeometricFiniteElementSpace[T linalg.Scalar, GD, RD, ND dim.Name,
	E FiniteElement[T, GD, RD, ND], C ElementConnectivity[T, GD, RD, ND, E]] interface {
	GeometryDim() GD
	ReferenceDim() RD
	NodalDim() ND

	NumNodes() int
	Node(i int) linalg.Vector[T, GD]

	NumElements() int
	Connectivity(i int) C
	Element(i int) E
}
