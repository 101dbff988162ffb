package utils

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// FacetConnector holds element-to-element adjacency across facets (edges in
// 2D, faces in 3D) for a mesh with a single element kind
type FacetConnector struct {
	K       int // Total elements
	NFacets int // Facets per element

	// Input topology
	EToV   [][]int // Element → global vertex indices
	Facets [][]int // Local vertex numbers of each facet

	// Adjacency. A boundary facet connects to itself, EToE[k][f] == k and
	// EToF[k][f] == f.
	EToE [][]int // Element k, facet f connects to element EToE[k][f]
	EToF [][]int // Element k, facet f connects to facet EToF[k][f] of neighbor
}

// FacetRef names facet Facet of element Elem
type FacetRef struct {
	Elem  int
	Facet int
}

// NewFacetConnector builds adjacency from an element-to-vertex table and the
// local facet definition shared by all elements
func NewFacetConnector(EToV [][]int, facets [][]int) (*FacetConnector, error) {
	if len(EToV) == 0 || len(facets) == 0 {
		return nil, fmt.Errorf("invalid dimensions: K=%d, NFacets=%d", len(EToV), len(facets))
	}
	for k, verts := range EToV {
		for f, fv := range facets {
			for _, lv := range fv {
				if lv < 0 || lv >= len(verts) {
					return nil, fmt.Errorf("facet %d references local vertex %d, element %d has %d vertices",
						f, lv, k, len(verts))
				}
			}
		}
	}

	fc := &FacetConnector{
		K:       len(EToV),
		NFacets: len(facets),
		EToV:    EToV,
		Facets:  facets,
	}

	if err := fc.buildConnectivity(); err != nil {
		return nil, err
	}
	if err := fc.Verify(); err != nil {
		return nil, fmt.Errorf("facet connectivity is inconsistent: %v", err)
	}
	return fc, nil
}

// facetKey builds a canonical signature from the sorted global vertices
func (fc *FacetConnector) facetKey(k, f int) string {
	v := make([]int, len(fc.Facets[f]))
	for i, lv := range fc.Facets[f] {
		v[i] = fc.EToV[k][lv]
	}
	sort.Ints(v)
	parts := make([]string, len(v))
	for i, gv := range v {
		parts[i] = strconv.Itoa(gv)
	}
	return strings.Join(parts, "-")
}

func (fc *FacetConnector) buildConnectivity() error {
	// Initialize with self-connections
	fc.EToE = make([][]int, fc.K)
	fc.EToF = make([][]int, fc.K)
	for k := 0; k < fc.K; k++ {
		fc.EToE[k] = make([]int, fc.NFacets)
		fc.EToF[k] = make([]int, fc.NFacets)
		for f := 0; f < fc.NFacets; f++ {
			fc.EToE[k][f] = k
			fc.EToF[k][f] = f
		}
	}

	facetMap := make(map[string]FacetRef)
	matched := make(map[string]bool)
	for k := 0; k < fc.K; k++ {
		for f := 0; f < fc.NFacets; f++ {
			key := fc.facetKey(k, f)
			existing, found := facetMap[key]
			if !found {
				facetMap[key] = FacetRef{Elem: k, Facet: f}
				continue
			}
			if matched[key] {
				return fmt.Errorf("facet %s is shared by more than two elements (element %d)", key, k)
			}
			fc.EToE[k][f] = existing.Elem
			fc.EToF[k][f] = existing.Facet
			fc.EToE[existing.Elem][existing.Facet] = k
			fc.EToF[existing.Elem][existing.Facet] = f
			matched[key] = true
		}
	}
	return nil
}

// BoundaryFacets lists the facets that belong to exactly one element, in
// element then facet order
func (fc *FacetConnector) BoundaryFacets() []FacetRef {
	var refs []FacetRef
	for k := 0; k < fc.K; k++ {
		for f := 0; f < fc.NFacets; f++ {
			if fc.EToE[k][f] == k && fc.EToF[k][f] == f {
				refs = append(refs, FacetRef{Elem: k, Facet: f})
			}
		}
	}
	return refs
}

// NumInteriorFacets counts each shared facet once
func (fc *FacetConnector) NumInteriorFacets() int {
	return (fc.K*fc.NFacets - len(fc.BoundaryFacets())) / 2
}

// FacetVertices returns the global vertices of facet f of element k in local
// facet order
func (fc *FacetConnector) FacetVertices(k, f int) []int {
	v := make([]int, len(fc.Facets[f]))
	for i, lv := range fc.Facets[f] {
		v[i] = fc.EToV[k][lv]
	}
	return v
}

// Verify checks that adjacency is symmetric
func (fc *FacetConnector) Verify() error {
	for k := 0; k < fc.K; k++ {
		for f := 0; f < fc.NFacets; f++ {
			nk, nf := fc.EToE[k][f], fc.EToF[k][f]
			if nk < 0 || nk >= fc.K || nf < 0 || nf >= fc.NFacets {
				return fmt.Errorf("invalid neighbor (%d,%d) for element %d facet %d", nk, nf, k, f)
			}
			if fc.EToE[nk][nf] != k || fc.EToF[nk][nf] != f {
				return fmt.Errorf("asymmetric connection: (%d,%d) -> (%d,%d) -> (%d,%d)",
					k, f, nk, nf, fc.EToE[nk][nf], fc.EToF[nk][nf])
			}
		}
	}
	return nil
}
