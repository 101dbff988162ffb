package element

import "github.com/notargets/FESpace/dim"

type ElementGeometry uint8

const (
	Line ElementGeometry = iota
	Tri
	Rectangle
	Tet
)

func (g ElementGeometry) String() string {
	switch g {
	case Line:
		return "Line"
	case Tri:
		return "Tri"
	case Rectangle:
		return "Rectangle"
	case Tet:
		return "Tet"
	default:
		return "Unknown"
	}
}

// ElementProperties contains metadata describing an element type
type ElementProperties struct {
	Name         string          // Full descriptive name (e.g., "Linear Edge in 2D")
	ShortName    string          // Abbreviated name (e.g., "Edge2d")
	Type         ElementGeometry // Element shape
	GeometryDim  int             // Dimension of the physical space
	ReferenceDim int             // Dimension of the reference domain
	NodalDim     int             // Number of nodes / basis functions
	NFacets      int             // Number of facets of the reference domain
}

func properties[GD, RD, ND dim.Name](name, short string, g ElementGeometry, nFacets int) ElementProperties {
	return ElementProperties{
		Name:         name,
		ShortName:    short,
		Type:         g,
		GeometryDim:  dim.Of[GD](),
		ReferenceDim: dim.Of[RD](),
		NodalDim:     dim.Of[ND](),
		NFacets:      nFacets,
	}
}
