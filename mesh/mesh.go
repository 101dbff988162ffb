package mesh

import (
	"fmt"
	"strings"

	"github.com/notargets/FESpace/dim"
	"github.com/notargets/FESpace/element"
	"github.com/notargets/FESpace/linalg"
	"github.com/notargets/FESpace/utils"
	"gonum.org/v1/gonum/mat"
)

// Mesh owns a node table and the connectivity records of a single element
// kind. It satisfies element.GeometricFiniteElementSpace.
//
// A Mesh is never mutated after construction.
type Mesh[T linalg.Scalar, GD, RD, ND dim.Name,
	E element.FiniteElement[T, GD, RD, ND], C element.ElementConnectivity[T, GD, RD, ND, E]] struct {
	nodes        []linalg.Vector[T, GD]
	connectivity []C
}

// NewMesh copies the node table and connectivity list. Every node index used
// by a connectivity must address the node table.
func NewMesh[T linalg.Scalar, GD, RD, ND dim.Name,
	E element.FiniteElement[T, GD, RD, ND], C element.ElementConnectivity[T, GD, RD, ND, E]](
	nodes []linalg.Vector[T, GD], connectivity []C) (*Mesh[T, GD, RD, ND, E, C], error) {
	for k, c := range connectivity {
		v := c.Vertices()
		for i := 0; i < v.Len(); i++ {
			if n := v.At(i); n < 0 || n >= len(nodes) {
				return nil, fmt.Errorf("element %d references node %d, mesh has %d nodes", k, n, len(nodes))
			}
		}
	}
	m := &Mesh[T, GD, RD, ND, E, C]{
		nodes:        make([]linalg.Vector[T, GD], len(nodes)),
		connectivity: make([]C, len(connectivity)),
	}
	copy(m.nodes, nodes)
	copy(m.connectivity, connectivity)
	return m, nil
}

// NewMeshFromDense imports a gonum node table with one node per row and GD
// columns
func NewMeshFromDense[T linalg.Scalar, GD, RD, ND dim.Name,
	E element.FiniteElement[T, GD, RD, ND], C element.ElementConnectivity[T, GD, RD, ND, E]](
	nodes mat.Matrix, connectivity []C) (*Mesh[T, GD, RD, ND, E, C], error) {
	rows, cols := nodes.Dims()
	if gd := dim.Of[GD](); cols != gd {
		return nil, fmt.Errorf("node table has %d columns, geometry dimension is %d", cols, gd)
	}
	table := make([]linalg.Vector[T, GD], rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			table[i].Set(j, T(nodes.At(i, j)))
		}
	}
	return NewMesh[T, GD, RD, ND, E, C](table, connectivity)
}

func (m *Mesh[T, GD, RD, ND, E, C]) GeometryDim() (d GD)  { return }
func (m *Mesh[T, GD, RD, ND, E, C]) ReferenceDim() (d RD) { return }
func (m *Mesh[T, GD, RD, ND, E, C]) NodalDim() (d ND)     { return }

func (m *Mesh[T, GD, RD, ND, E, C]) NumNodes() int                   { return len(m.nodes) }
func (m *Mesh[T, GD, RD, ND, E, C]) Node(i int) linalg.Vector[T, GD] { return m.nodes[i] }
func (m *Mesh[T, GD, RD, ND, E, C]) NumElements() int                { return len(m.connectivity) }
func (m *Mesh[T, GD, RD, ND, E, C]) Connectivity(i int) C            { return m.connectivity[i] }

// ElementNodes gathers the node coordinates of element i, one node per column
func (m *Mesh[T, GD, RD, ND, E, C]) ElementNodes(i int) linalg.Matrix[T, GD, ND] {
	X := linalg.FiniteElementAllocator[T, GD, RD, ND]{}.NodalCoords()
	v := m.connectivity[i].Vertices()
	for j := 0; j < v.Len(); j++ {
		X.SetColumn(j, m.nodes[v.At(j)])
	}
	return X
}

// Element instantiates element i. An index outside [0, NumElements) panics.
func (m *Mesh[T, GD, RD, ND, E, C]) Element(i int) E {
	return m.connectivity[i].Element(m.ElementNodes(i))
}

// NodeTable exports the nodes as a [NumNodes × GD] gonum matrix. It is nil
// for a mesh without nodes.
func (m *Mesh[T, GD, RD, ND, E, C]) NodeTable() *mat.Dense {
	if len(m.nodes) == 0 {
		return nil
	}
	gd := dim.Of[GD]()
	table := mat.NewDense(len(m.nodes), gd, nil)
	for i, n := range m.nodes {
		for j := 0; j < gd; j++ {
			table.Set(i, j, float64(n.At(j)))
		}
	}
	return table
}

// EToV returns the element-to-vertex table
func (m *Mesh[T, GD, RD, ND, E, C]) EToV() [][]int {
	EToV := make([][]int, len(m.connectivity))
	for k, c := range m.connectivity {
		EToV[k] = c.Vertices().Slice()
	}
	return EToV
}

// FacetConnector builds element adjacency across facets
func (m *Mesh[T, GD, RD, ND, E, C]) FacetConnector() (*utils.FacetConnector, error) {
	if len(m.connectivity) == 0 {
		return nil, fmt.Errorf("mesh has no elements")
	}
	fc, err := utils.NewFacetConnector(m.EToV(), m.connectivity[0].LocalFacets())
	if err != nil {
		return nil, fmt.Errorf("failed to build facet connectivity: %v", err)
	}
	return fc, nil
}

// BoundaryFacets lists the facets owned by exactly one element
func (m *Mesh[T, GD, RD, ND, E, C]) BoundaryFacets() ([]utils.FacetRef, error) {
	fc, err := m.FacetConnector()
	if err != nil {
		return nil, err
	}
	return fc.BoundaryFacets(), nil
}

// String returns a summary of the mesh
func (m *Mesh[T, GD, RD, ND, E, C]) String() string {
	var sb strings.Builder
	name := "empty"
	if len(m.connectivity) > 0 {
		name = m.Element(0).GetProperties().Name
	}
	sb.WriteString(fmt.Sprintf("Mesh of %s\n", name))
	sb.WriteString(fmt.Sprintf("  Dimensions: geometry=%d, reference=%d, nodal=%d\n",
		dim.Of[GD](), dim.Of[RD](), dim.Of[ND]()))
	sb.WriteString(fmt.Sprintf("  Nodes: %d\n", len(m.nodes)))
	sb.WriteString(fmt.Sprintf("  Elements: %d\n", len(m.connectivity)))
	return sb.String()
}
