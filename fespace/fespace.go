// Package fespace holds algorithms written once against
// element.GeometricFiniteElementSpace. Each function lists every bound it
// relies on: the scalar, the three dimension tags, the element kind, the
// connectivity kind and the space. Callers instantiating a concrete space name
// the first six explicitly; the space itself is inferred from the argument.
package fespace

import (
	"fmt"
	"sync"

	"github.com/notargets/FESpace/dim"
	"github.com/notargets/FESpace/element"
	"github.com/notargets/FESpace/linalg"
	"gonum.org/v1/gonum/floats"
)

// MapReferencePoints maps each reference point through element elem
func MapReferencePoints[T linalg.Scalar, GD, RD, ND dim.Name,
	E element.FiniteElement[T, GD, RD, ND], C element.ElementConnectivity[T, GD, RD, ND, E],
	S element.GeometricFiniteElementSpace[T, GD, RD, ND, E, C]](
	space S, elem int, xis []linalg.Vector[T, RD]) []linalg.Vector[T, GD] {
	e := space.Element(elem)
	out := make([]linalg.Vector[T, GD], len(xis))
	for i, xi := range xis {
		out[i] = e.MapReferenceCoords(xi)
	}
	return out
}

// MapAll maps the same reference point through every element. Elements are
// split into nPart contiguous partitions, each mapped in its own goroutine.
// Elements share nothing, so no ordering between partitions is needed.
func MapAll[T linalg.Scalar, GD, RD, ND dim.Name,
	E element.FiniteElement[T, GD, RD, ND], C element.ElementConnectivity[T, GD, RD, ND, E],
	S element.GeometricFiniteElementSpace[T, GD, RD, ND, E, C]](
	space S, xi linalg.Vector[T, RD], nPart int) []linalg.Vector[T, GD] {
	K := space.NumElements()
	out := make([]linalg.Vector[T, GD], K)
	if K == 0 {
		return out
	}
	nPart = max(1, min(nPart, K))

	var wg sync.WaitGroup
	for _, r := range partitionRanges(K, nPart) {
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for k := lo; k < hi; k++ {
				out[k] = space.Element(k).MapReferenceCoords(xi)
			}
		}(r[0], r[1])
	}
	wg.Wait()
	return out
}

// partitionRanges splits [0,K) into nPart nearly equal [lo,hi) ranges
func partitionRanges(K, nPart int) [][2]int {
	ranges := make([][2]int, nPart)
	base, extra := K/nPart, K%nPart
	lo := 0
	for p := 0; p < nPart; p++ {
		size := base
		if p < extra {
			size++
		}
		ranges[p] = [2]int{lo, lo + size}
		lo += size
	}
	return ranges
}

// NodalBounds returns the axis aligned bounding box of the node table
func NodalBounds[T linalg.Scalar, GD, RD, ND dim.Name,
	E element.FiniteElement[T, GD, RD, ND], C element.ElementConnectivity[T, GD, RD, ND, E],
	S element.GeometricFiniteElementSpace[T, GD, RD, ND, E, C]](
	space S) (lo, hi linalg.Vector[T, GD], err error) {
	var alloc linalg.FiniteElementAllocator[T, GD, RD, ND]
	lo, hi = alloc.GeometryCoords(), alloc.GeometryCoords()
	n := space.NumNodes()
	if n == 0 {
		err = fmt.Errorf("space has no nodes")
		return
	}
	coord := make([]float64, n)
	for d := 0; d < lo.Len(); d++ {
		for i := 0; i < n; i++ {
			coord[i] = float64(space.Node(i).At(d))
		}
		lo.Set(d, T(floats.Min(coord)))
		hi.Set(d, T(floats.Max(coord)))
	}
	return
}

// ElementCentroids returns the average node position of every element
func ElementCentroids[T linalg.Scalar, GD, RD, ND dim.Name,
	E element.FiniteElement[T, GD, RD, ND], C element.ElementConnectivity[T, GD, RD, ND, E],
	S element.GeometricFiniteElementSpace[T, GD, RD, ND, E, C]](
	space S) []linalg.Vector[T, GD] {
	var alloc linalg.FiniteElementAllocator[T, GD, RD, ND]
	centroids := make([]linalg.Vector[T, GD], space.NumElements())
	for k := range centroids {
		v := space.Connectivity(k).Vertices()
		sum := alloc.GeometryCoords()
		for j := 0; j < v.Len(); j++ {
			sum = sum.Add(space.Node(v.At(j)))
		}
		centroids[k] = sum.Scale(1 / T(v.Len()))
	}
	return centroids
}

// ElementJacobians evaluates the reference Jacobian of every element at xi
func ElementJacobians[T linalg.Scalar, GD, RD, ND dim.Name,
	E element.FiniteElement[T, GD, RD, ND], C element.ElementConnectivity[T, GD, RD, ND, E],
	S element.GeometricFiniteElementSpace[T, GD, RD, ND, E, C]](
	space S, xi linalg.Vector[T, RD]) []linalg.Matrix[T, GD, RD] {
	J := make([]linalg.Matrix[T, GD, RD], space.NumElements())
	for k := range J {
		J[k] = space.Element(k).ReferenceJacobian(xi)
	}
	return J
}

// NearestNode returns the index of the node closest to x, or -1 for a space
// without nodes
func NearestNode[T linalg.Scalar, GD, RD, ND dim.Name,
	E element.FiniteElement[T, GD, RD, ND], C element.ElementConnectivity[T, GD, RD, ND, E],
	S element.GeometricFiniteElementSpace[T, GD, RD, ND, E, C]](
	space S, x linalg.Vector[T, GD]) int {
	best, bestDist := -1, T(0)
	for i := 0; i < space.NumNodes(); i++ {
		d := space.Node(i).Sub(x).Norm()
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
