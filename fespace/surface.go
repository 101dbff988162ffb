package fespace

import (
	"github.com/notargets/FESpace/dim"
	"github.com/notargets/FESpace/element"
	"github.com/notargets/FESpace/geometry"
	"github.com/notargets/FESpace/linalg"
)

// Anchor records where one edge of a material surface sits relative to a
// planar volume space
type Anchor[T linalg.Scalar] struct {
	Edge        int                      // Edge index on the surface polygon
	Start       linalg.Vector[T, dim.U2] // Edge element mapped at ξ=0
	Midpoint    linalg.Vector[T, dim.U2] // Edge element mapped at ξ=0.5
	Magnitude   T                        // |Start| measured from the origin
	Length      T                        // Edge length, zero for a degenerate edge
	NearestNode int                      // Volume node closest to Midpoint, -1 if none
}

// SurfaceAnchors embeds every edge of a material surface polygon as an
// Edge2dElement and locates it against a planar volume space of any nodal
// dimension. The volume space's reference dimension is fixed to 2, so the
// same source serves triangle and quadrilateral spaces alike.
func SurfaceAnchors[T linalg.Scalar, ND dim.Name,
	E element.FiniteElement[T, dim.U2, dim.U2, ND],
	C element.ElementConnectivity[T, dim.U2, dim.U2, ND, E],
	S element.GeometricFiniteElementSpace[T, dim.U2, dim.U2, ND, E, C]](
	volume S, surface geometry.Polygon[T]) []Anchor[T] {
	anchors := make([]Anchor[T], surface.NumEdges())
	for i := range anchors {
		segment := surface.GetEdge(i)
		edge := element.NewEdge2dElement(segment)

		eta := linalg.Vector1[T](0)
		start := edge.MapReferenceCoords(eta)
		mid := edge.MapReferenceCoords(linalg.Vector1[T](0.5))

		anchors[i] = Anchor[T]{
			Edge:        i,
			Start:       start,
			Midpoint:    mid,
			Magnitude:   start.Norm(),
			Length:      segment.Length(),
			NearestNode: NearestNode[T, dim.U2, dim.U2, ND, E, C](volume, mid),
		}
	}
	return anchors
}
