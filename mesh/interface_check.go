package mesh

import (
	"github.com/notargets/FESpace/dim"
	"github.com/notargets/FESpace/element"
)

var _ element.GeometricFiniteElementSpace[float64, dim.U2, dim.U1, dim.U2,
	element.Edge2dElement[float64], element.Edge2dConnectivity[float64]] = (*Mesh[float64, dim.U2, dim.U1, dim.U2,
	element.Edge2dElement[float64], element.Edge2dConnectivity[float64]])(nil)

var _ element.GeometricFiniteElementSpace[float64, dim.U2, dim.U2, dim.U3,
	element.Tri3Element[float64], element.Tri3Connectivity[float64]] = (*Mesh[float64, dim.U2, dim.U2, dim.U3,
	element.Tri3Element[float64], element.Tri3Connectivity[float64]])(nil)

var _ element.GeometricFiniteElementSpace[float64, dim.U3, dim.U3, dim.U4,
	element.Tet4Element[float64], element.Tet4Connectivity[float64]] = (*Mesh[float64, dim.U3, dim.U3, dim.U4,
	element.Tet4Element[float64], element.Tet4Connectivity[float64]])(nil)
