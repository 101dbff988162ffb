package linalg

import "github.com/notargets/FESpace/dim"

// ReferenceFiniteElementAllocator provides the storage a reference element
// with reference dimension RD and nodal dimension ND needs. It is a zero size
// value; the only thing it carries is the dimension combination, and a
// combination outside dim.Name cannot be instantiated.
type ReferenceFiniteElementAllocator[T Scalar, RD, ND dim.Name] struct{}

// ReferenceCoords is a point in the reference domain
func (ReferenceFiniteElementAllocator[T, RD, ND]) ReferenceCoords() Vector[T, RD] {
	return Vector[T, RD]{}
}

// BasisRow holds one value per basis function
func (ReferenceFiniteElementAllocator[T, RD, ND]) BasisRow() Matrix[T, dim.U1, ND] {
	return Matrix[T, dim.U1, ND]{}
}

// BasisGradients holds the reference gradient of each basis function as a column
func (ReferenceFiniteElementAllocator[T, RD, ND]) BasisGradients() Matrix[T, RD, ND] {
	return Matrix[T, RD, ND]{}
}

// FiniteElementAllocator extends the reference storage with the shapes that
// depend on the geometry dimension GD.
type FiniteElementAllocator[T Scalar, GD, RD, ND dim.Name] struct {
	ReferenceFiniteElementAllocator[T, RD, ND]
}

func (FiniteElementAllocator[T, GD, RD, ND]) GeometryCoords() Vector[T, GD] {
	return Vector[T, GD]{}
}

func (FiniteElementAllocator[T, GD, RD, ND]) NodalVector() Vector[T, ND] {
	return Vector[T, ND]{}
}

// Jacobian is ∂x/∂ξ, GD rows by RD columns
func (FiniteElementAllocator[T, GD, RD, ND]) Jacobian() Matrix[T, GD, RD] {
	return Matrix[T, GD, RD]{}
}

// NodalCoords holds one node position per column
func (FiniteElementAllocator[T, GD, RD, ND]) NodalCoords() Matrix[T, GD, ND] {
	return Matrix[T, GD, ND]{}
}
