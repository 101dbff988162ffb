package geometry

import (
	"fmt"

	"github.com/notargets/FESpace/dim"
	"github.com/notargets/FESpace/linalg"
)

type Orientation uint8

const (
	Degenerate Orientation = iota
	CounterClockwise
	Clockwise
)

func (o Orientation) String() string {
	switch o {
	case CounterClockwise:
		return "CounterClockwise"
	case Clockwise:
		return "Clockwise"
	default:
		return "Degenerate"
	}
}

// Polygon is a closed loop of vertices in the plane. Edge i runs from vertex
// i to vertex (i+1) mod NumVertices.
type Polygon[T linalg.Scalar] struct {
	vertices []linalg.Vector[T, dim.U2]
}

// NewPolygon copies the vertices; later changes to the caller's slice are not
// seen by the polygon.
func NewPolygon[T linalg.Scalar](vertices ...linalg.Vector[T, dim.U2]) Polygon[T] {
	v := make([]linalg.Vector[T, dim.U2], len(vertices))
	copy(v, vertices)
	return Polygon[T]{vertices: v}
}

func (p Polygon[T]) NumVertices() int { return len(p.vertices) }

func (p Polygon[T]) Vertex(i int) linalg.Vector[T, dim.U2] { return p.vertices[i] }

func (p Polygon[T]) Vertices() []linalg.Vector[T, dim.U2] {
	v := make([]linalg.Vector[T, dim.U2], len(p.vertices))
	copy(v, p.vertices)
	return v
}

func (p Polygon[T]) NumEdges() int {
	if len(p.vertices) < 2 {
		return 0
	}
	return len(p.vertices)
}

// GetEdge returns a copy of edge i. An index outside [0, NumEdges) is a
// programming error and panics.
func (p Polygon[T]) GetEdge(i int) LineSegment2d[T] {
	n := p.NumEdges()
	if i < 0 || i >= n {
		panic(fmt.Sprintf("geometry: edge index %d out of range for polygon with %d edges", i, n))
	}
	return NewLineSegment2d(p.vertices[i], p.vertices[(i+1)%n])
}

func (p Polygon[T]) Edges() []LineSegment2d[T] {
	edges := make([]LineSegment2d[T], p.NumEdges())
	for i := range edges {
		edges[i] = p.GetEdge(i)
	}
	return edges
}

// SignedArea is positive for counter clockwise vertex order (shoelace formula)
func (p Polygon[T]) SignedArea() T {
	var area T
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		a, b := p.vertices[i], p.vertices[(i+1)%n]
		area += a.At(0)*b.At(1) - b.At(0)*a.At(1)
	}
	return area / 2
}

func (p Polygon[T]) Orientation() Orientation {
	switch area := p.SignedArea(); {
	case area > 0:
		return CounterClockwise
	case area < 0:
		return Clockwise
	default:
		return Degenerate
	}
}

func (p Polygon[T]) Perimeter() (sum T) {
	for i := 0; i < p.NumEdges(); i++ {
		sum += p.GetEdge(i).Length()
	}
	return
}
