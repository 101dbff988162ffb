package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	triFacets = [][]int{{0, 1}, {1, 2}, {2, 0}}
	tetFacets = [][]int{
		{0, 1, 2}, // Face 0
		{0, 1, 3}, // Face 1
		{1, 2, 3}, // Face 2
		{0, 2, 3}, // Face 3
	}
)

// Two triangles splitting the unit square along the diagonal 0-2
func TestFacetConnector_TwoTriangles(t *testing.T) {
	EToV := [][]int{{0, 1, 2}, {0, 2, 3}}
	fc, err := NewFacetConnector(EToV, triFacets)
	require.NoError(t, err)
	require.NoError(t, fc.Verify())

	// Facet 2 of element 0 is edge 2-0, facet 0 of element 1 is edge 0-2
	assert.Equal(t, 1, fc.EToE[0][2])
	assert.Equal(t, 0, fc.EToF[0][2])
	assert.Equal(t, 0, fc.EToE[1][0])
	assert.Equal(t, 2, fc.EToF[1][0])

	assert.Equal(t, 1, fc.NumInteriorFacets())
	boundary := fc.BoundaryFacets()
	assert.Equal(t, []FacetRef{{0, 0}, {0, 1}, {1, 1}, {1, 2}}, boundary)
	assert.Equal(t, []int{2, 3}, fc.FacetVertices(1, 1))
}

// Two tetrahedra sharing face 1-2-3
func TestFacetConnector_TwoTets(t *testing.T) {
	EToV := [][]int{{0, 1, 2, 3}, {4, 1, 2, 3}}
	fc, err := NewFacetConnector(EToV, tetFacets)
	require.NoError(t, err)
	require.NoError(t, fc.Verify())

	assert.Equal(t, 1, fc.EToE[0][2])
	assert.Equal(t, 2, fc.EToF[0][2])
	assert.Equal(t, 1, fc.NumInteriorFacets())
	assert.Len(t, fc.BoundaryFacets(), 6)
}

func TestFacetConnector_Errors(t *testing.T) {
	_, err := NewFacetConnector(nil, triFacets)
	assert.Error(t, err)

	_, err = NewFacetConnector([][]int{{0, 1}}, triFacets)
	assert.Error(t, err)

	// Three triangles sharing edge 0-1
	_, err = NewFacetConnector([][]int{{0, 1, 2}, {1, 0, 3}, {0, 1, 4}}, triFacets)
	assert.Error(t, err)
}

func TestFacetConnector_VerifyDetectsCorruption(t *testing.T) {
	fc, err := NewFacetConnector([][]int{{0, 1, 2}, {0, 2, 3}}, triFacets)
	require.NoError(t, err)
	fc.EToF[0][2] = 1
	assert.Error(t, fc.Verify())
}

func TestFacetConnector_CollapsedElementPairsWithItself(t *testing.T) {
	// Vertex 0 repeated: local facets 1 and 2 both span global 0-1
	fc, err := NewFacetConnector([][]int{{0, 0, 1}}, triFacets)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, fc.EToE[0])
	assert.Equal(t, []int{0, 2, 1}, fc.EToF[0])
	assert.Equal(t, []FacetRef{{Elem: 0, Facet: 0}}, fc.BoundaryFacets())
	assert.NoError(t, fc.Verify())
}
