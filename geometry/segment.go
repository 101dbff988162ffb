package geometry

import (
	"github.com/notargets/FESpace/dim"
	"github.com/notargets/FESpace/linalg"
)

// LineSegment2d is a straight segment between two points in the plane
type LineSegment2d[T linalg.Scalar] struct {
	from, to linalg.Vector[T, dim.U2]
}

func NewLineSegment2d[T linalg.Scalar](from, to linalg.Vector[T, dim.U2]) LineSegment2d[T] {
	return LineSegment2d[T]{from: from, to: to}
}

func (s LineSegment2d[T]) From() linalg.Vector[T, dim.U2] { return s.from }
func (s LineSegment2d[T]) To() linalg.Vector[T, dim.U2]   { return s.to }

// Direction is To - From; it is the zero vector for a degenerate segment
func (s LineSegment2d[T]) Direction() linalg.Vector[T, dim.U2] {
	return s.to.Sub(s.from)
}

func (s LineSegment2d[T]) Length() T {
	return s.Direction().Norm()
}

func (s LineSegment2d[T]) Midpoint() linalg.Vector[T, dim.U2] {
	return s.PointAt(0.5)
}

// PointAt returns From + t*(To - From); t in [0,1] stays on the segment
func (s LineSegment2d[T]) PointAt(t T) linalg.Vector[T, dim.U2] {
	return s.from.Lerp(s.to, t)
}

func (s LineSegment2d[T]) Reversed() LineSegment2d[T] {
	return LineSegment2d[T]{from: s.to, to: s.from}
}
