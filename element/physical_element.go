package element

import (
	"github.com/notargets/FESpace/dim"
	"github.com/notargets/FESpace/linalg"
)

// FiniteElement is a reference element embedded in a geometry of dimension GD
type FiniteElement[T linalg.Scalar, GD, RD, ND dim.Name] interface {
	ReferenceFiniteElement[T, RD, ND]

	GeometryDim() GD

	// MapReferenceCoords maps a point of the reference domain to physical
	// space. Points outside the reference domain are extrapolated.
	MapReferenceCoords(xi linalg.Vector[T, RD]) linalg.Vector[T, GD]

	// ReferenceJacobian returns ∂x/∂ξ at xi, GD rows by RD columns
	ReferenceJacobian(xi linalg.Vector[T, RD]) linalg.Matrix[T, GD, RD]
}

// SolidElement is a finite element whose reference dimension equals its
// geometry dimension
type SolidElement[T linalg.Scalar, D, ND dim.Name] interface {
	FiniteElement[T, D, D, ND]
}

// mapNodal evaluates x(ξ) = Σ_j N_j(ξ) x_j with node positions as columns of X
func mapNodal[T linalg.Scalar, GD, RD, ND dim.Name](alloc linalg.FiniteElementAllocator[T, GD, RD, ND],
	X linalg.Matrix[T, GD, ND], N linalg.Matrix[T, dim.U1, ND]) linalg.Vector[T, GD] {
	x := alloc.GeometryCoords()
	for j := 0; j < N.Cols(); j++ {
		x = x.Add(X.Column(j).Scale(N.At(0, j)))
	}
	return x
}

// jacobianNodal evaluates ∂x/∂ξ = X · Gᵀ where G holds basis gradients as columns
func jacobianNodal[T linalg.Scalar, GD, RD, ND dim.Name](alloc linalg.FiniteElementAllocator[T, GD, RD, ND],
	X linalg.Matrix[T, GD, ND], G linalg.Matrix[T, RD, ND]) linalg.Matrix[T, GD, RD] {
	J := alloc.Jacobian()
	for i := 0; i < J.Rows(); i++ {
		for k := 0; k < J.Cols(); k++ {
			var sum T
			for j := 0; j < X.Cols(); j++ {
				sum += X.At(i, j) * G.At(k, j)
			}
			J.Set(i, k, sum)
		}
	}
	return J
}
