package element

import (
	"github.com/notargets/FESpace/dim"
	"github.com/notargets/FESpace/linalg"
)

// ReferenceFiniteElement is a shape function basis on a reference domain of
// dimension RD with ND basis functions (nodes). It does not know how it is
// embedded in physical space.
//
// All reference domains in this package are [0,1] based: the unit interval,
// the unit right triangle, the unit square and the unit right tetrahedron.
//
// The dimension methods return zero size tags. They exist so that a type
// satisfies the interface for exactly one (RD, ND) pair.
type ReferenceFiniteElement[T linalg.Scalar, RD, ND dim.Name] interface {
	ReferenceDim() RD
	NodalDim() ND

	GetProperties() ElementProperties

	// EvaluateBasis returns the value of every basis function at xi as a row
	EvaluateBasis(xi linalg.Vector[T, RD]) linalg.Matrix[T, dim.U1, ND]

	// GradientsOfBasis returns ∂N_j/∂ξ_i at xi; column j is the gradient of
	// basis function j
	GradientsOfBasis(xi linalg.Vector[T, RD]) linalg.Matrix[T, RD, ND]
}
