package dim

// Max is the largest dimension any tag below can name. Fixed-size storage in
// package linalg is backed by arrays of this capacity.
const Max = 4

// Dimension tags. They carry no data; the type itself is the dimension.
type (
	U1 struct{} // 1D: lines, edges, reference intervals
	U2 struct{} // 2D: triangles, quadrilaterals, planar geometry
	U3 struct{} // 3D: tetrahedra, spatial geometry
	U4 struct{} // nodal count of quadrilaterals and tetrahedra
)

func (U1) Value() int { return 1 }
func (U2) Value() int { return 2 }
func (U3) Value() int { return 3 }
func (U4) Value() int { return 4 }

// Name is satisfied only by the tags above. A type parameter constrained by
// Name is a dimension known at build time; there is no way to instantiate it
// with a runtime size.
type Name interface {
	U1 | U2 | U3 | U4
	Value() int
}

// Of returns the numeric value of the dimension tag D.
func Of[D Name]() int {
	var d D
	return d.Value()
}
