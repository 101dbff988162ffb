package element

import "github.com/notargets/FESpace/dim"

// Compile time checks that each element satisfies its contracts for exactly
// the dimensions it declares.

var _ FiniteElement[float64, dim.U2, dim.U1, dim.U2] = Edge2dElement[float64]{}
var _ FiniteElement[float32, dim.U2, dim.U1, dim.U2] = Edge2dElement[float32]{}
var _ SolidElement[float64, dim.U2, dim.U3] = Tri3Element[float64]{}
var _ SolidElement[float64, dim.U2, dim.U4] = Quad4Element[float64]{}
var _ SolidElement[float64, dim.U3, dim.U4] = Tet4Element[float64]{}

var _ ElementConnectivity[float64, dim.U2, dim.U1, dim.U2, Edge2dElement[float64]] = Edge2dConnectivity[float64]{}
var _ ElementConnectivity[float64, dim.U2, dim.U2, dim.U3, Tri3Element[float64]] = Tri3Connectivity[float64]{}
var _ ElementConnectivity[float64, dim.U2, dim.U2, dim.U4, Quad4Element[float64]] = Quad4Connectivity[float64]{}
var _ ElementConnectivity[float64, dim.U3, dim.U3, dim.U4, Tet4Element[float64]] = Tet4Connectivity[float64]{}
