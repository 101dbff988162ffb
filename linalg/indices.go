package linalg

import (
	"fmt"

	"github.com/notargets/FESpace/dim"
)

// Indices is a tuple of exactly D node indices into a shared node table
type Indices[D dim.Name] struct {
	_   [0]D
	idx [dim.Max]int
}

// NewIndices1 returns the single index (a)
func NewIndices1(a int) (ix Indices[dim.U1]) {
	ix.idx[0] = a
	return
}

// NewIndices2 returns the index pair (a, b)
func NewIndices2(a, b int) (ix Indices[dim.U2]) {
	ix.idx[0], ix.idx[1] = a, b
	return
}

// NewIndices3 returns the index triple (a, b, c)
func NewIndices3(a, b, c int) (ix Indices[dim.U3]) {
	ix.idx[0], ix.idx[1], ix.idx[2] = a, b, c
	return
}

// NewIndices4 returns the four indices (a, b, c, d)
func NewIndices4(a, b, c, d int) (ix Indices[dim.U4]) {
	ix.idx[0], ix.idx[1], ix.idx[2], ix.idx[3] = a, b, c, d
	return
}

// IndicesFromSlice converts a runtime index list such as a row of an
// element-to-vertex table
func IndicesFromSlice[D dim.Name](s []int) (ix Indices[D], err error) {
	if len(s) != ix.Len() {
		err = fmt.Errorf("index list length %d does not match nodal dimension %d", len(s), ix.Len())
		return
	}
	copy(ix.idx[:], s)
	return
}

// Len is the nodal dimension D
func (ix Indices[D]) Len() int {
	var d D
	return d.Value()
}

// At returns index i; i outside [0, D) panics
func (ix Indices[D]) At(i int) int {
	if i < 0 || i >= ix.Len() {
		panic(fmt.Sprintf("linalg: index %d out of range for %d node indices", i, ix.Len()))
	}
	return ix.idx[i]
}

// Slice returns a copy of the indices
func (ix Indices[D]) Slice() []int {
	s := make([]int, ix.Len())
	copy(s, ix.idx[:ix.Len()])
	return s
}
