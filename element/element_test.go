package element

import (
	"math"
	"testing"

	"github.com/notargets/FESpace/dim"
	"github.com/notargets/FESpace/geometry"
	"github.com/notargets/FESpace/linalg"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-12

func TestEdge2dEndpoints(t *testing.T) {
	P, Q := linalg.Vector2(1.0, 2.0), linalg.Vector2(-3.0, 5.0)
	e := NewEdge2dElement(geometry.NewLineSegment2d(P, Q))

	assert.True(t, e.MapReferenceCoords(linalg.Vector1(0.0)).ApproxEqual(P, tol))
	assert.True(t, e.MapReferenceCoords(linalg.Vector1(1.0)).ApproxEqual(Q, tol))

	props := e.GetProperties()
	assert.Equal(t, "Edge2d", props.ShortName)
	assert.Equal(t, Line, props.Type)
	assert.Equal(t, 2, props.GeometryDim)
	assert.Equal(t, 1, props.ReferenceDim)
	assert.Equal(t, 2, props.NodalDim)
}

func TestEdge2dAffine(t *testing.T) {
	e := NewEdge2dElement(geometry.NewLineSegment2d(linalg.Vector2(0.5, -1.0), linalg.Vector2(2.0, 3.0)))
	refs := []float64{0, 0.25, 0.5, 1, -0.5, 1.5}
	lambdas := []float64{0, 0.1, 0.5, 0.9, 1}
	for _, t0 := range refs {
		for _, t1 := range refs {
			m0 := e.MapReferenceCoords(linalg.Vector1(t0))
			m1 := e.MapReferenceCoords(linalg.Vector1(t1))
			for _, l := range lambdas {
				lhs := e.MapReferenceCoords(linalg.Vector1(l*t0 + (1-l)*t1))
				rhs := m0.Scale(l).Add(m1.Scale(1 - l))
				assert.True(t, lhs.ApproxEqual(rhs, tol), "t0=%v t1=%v lambda=%v", t0, t1, l)
			}
		}
	}
}

func TestEdge2dDegenerate(t *testing.T) {
	P := linalg.Vector2(3.0, 4.0)
	e := NewEdge2dElement(geometry.NewLineSegment2d(P, P))
	for _, xi := range []float64{-1, 0, 0.3, 0.5, 1, 2} {
		x := e.MapReferenceCoords(linalg.Vector1(xi))
		assert.True(t, x.ApproxEqual(P, tol))
		assert.InDelta(t, 5.0, x.Norm(), tol)
	}
	J := e.ReferenceJacobian(linalg.Vector1(0.5))
	assert.Equal(t, 0.0, J.At(0, 0))
	assert.Equal(t, 0.0, J.At(1, 0))
}

func TestEdge2dFromUnitSquare(t *testing.T) {
	square := geometry.NewPolygon(
		linalg.Vector2(0.0, 0.0),
		linalg.Vector2(1.0, 0.0),
		linalg.Vector2(1.0, 1.0),
		linalg.Vector2(0.0, 1.0),
	)
	e := NewEdge2dElement(square.GetEdge(0))
	x := e.MapReferenceCoords(linalg.Vector1(0.5))
	assert.InDeltaSlice(t, []float64{0.5, 0}, x.Slice(), tol)
}

func TestEdge2dJacobian(t *testing.T) {
	e := NewEdge2dElement(geometry.NewLineSegment2d(linalg.Vector2(1.0, 1.0), linalg.Vector2(4.0, 5.0)))
	J := e.ReferenceJacobian(linalg.Vector1(0.2))
	assert.Equal(t, linalg.Vector2(3.0, 4.0), J.Column(0))
	assert.InDelta(t, e.Segment().Length(), J.Column(0).Norm(), tol)
}

// checkBasis verifies partition of unity, the Kronecker property at the
// reference vertices and that the Jacobian agrees with a finite difference of
// the reference map
func checkBasis[T linalg.Scalar, GD, RD, ND dim.Name, E FiniteElement[T, GD, RD, ND]](
	t *testing.T, e E, refVerts []linalg.Vector[T, RD], xi linalg.Vector[T, RD]) {
	t.Helper()
	var nd ND
	assert.Equal(t, nd.Value(), len(refVerts))

	N := e.EvaluateBasis(xi)
	var sum float64
	for j := 0; j < nd.Value(); j++ {
		sum += float64(N.At(0, j))
	}
	assert.InDelta(t, 1.0, sum, 1e-6)

	G := e.GradientsOfBasis(xi)
	var rd RD
	for i := 0; i < rd.Value(); i++ {
		var gsum float64
		for j := 0; j < nd.Value(); j++ {
			gsum += float64(G.At(i, j))
		}
		assert.InDelta(t, 0.0, gsum, 1e-6)
	}

	for k, v := range refVerts {
		Nk := e.EvaluateBasis(v)
		for j := 0; j < nd.Value(); j++ {
			want := 0.0
			if j == k {
				want = 1
			}
			assert.InDelta(t, want, float64(Nk.At(0, j)), 1e-6)
		}
	}

	const h = 1e-6
	J := e.ReferenceJacobian(xi)
	for i := 0; i < rd.Value(); i++ {
		xp, xm := xi, xi
		xp.Set(i, xi.At(i)+h)
		xm.Set(i, xi.At(i)-h)
		d := e.MapReferenceCoords(xp).Sub(e.MapReferenceCoords(xm)).Scale(1 / (2 * h))
		for r := 0; r < d.Len(); r++ {
			assert.InDelta(t, float64(d.At(r)), float64(J.At(r, i)), 1e-6)
		}
	}
}

func TestTri3(t *testing.T) {
	e := NewTri3Element(linalg.Vector2(1.0, 1.0), linalg.Vector2(3.0, 1.0), linalg.Vector2(1.0, 2.0))
	refs := []linalg.Vector[float64, dim.U2]{
		linalg.Vector2(0.0, 0.0), linalg.Vector2(1.0, 0.0), linalg.Vector2(0.0, 1.0),
	}
	checkBasis[float64, dim.U2, dim.U2, dim.U3](t, e, refs, linalg.Vector2(0.2, 0.3))

	for i, r := range refs {
		assert.True(t, e.MapReferenceCoords(r).ApproxEqual(e.Vertex(i), tol))
	}
	J := e.ReferenceJacobian(linalg.Vector2(0.1, 0.1))
	assert.InDelta(t, 2.0, linalg.Det(J), tol)
}

func TestQuad4(t *testing.T) {
	e := NewQuad4Element(
		linalg.Vector2(0.0, 0.0), linalg.Vector2(2.0, 0.0),
		linalg.Vector2(2.5, 1.0), linalg.Vector2(0.0, 1.0))
	refs := []linalg.Vector[float64, dim.U2]{
		linalg.Vector2(0.0, 0.0), linalg.Vector2(1.0, 0.0),
		linalg.Vector2(1.0, 1.0), linalg.Vector2(0.0, 1.0),
	}
	checkBasis[float64, dim.U2, dim.U2, dim.U4](t, e, refs, linalg.Vector2(0.3, 0.6))

	for i, r := range refs {
		assert.True(t, e.MapReferenceCoords(r).ApproxEqual(e.Vertex(i), tol))
	}
	assert.Equal(t, "Quad4", e.GetProperties().ShortName)
}

func TestTet4(t *testing.T) {
	e := NewTet4Element(
		linalg.Vector3(0.0, 0.0, 0.0), linalg.Vector3(1.0, 0.0, 0.0),
		linalg.Vector3(0.0, 2.0, 0.0), linalg.Vector3(0.0, 0.0, 3.0))
	refs := []linalg.Vector[float64, dim.U3]{
		linalg.Vector3(0.0, 0.0, 0.0), linalg.Vector3(1.0, 0.0, 0.0),
		linalg.Vector3(0.0, 1.0, 0.0), linalg.Vector3(0.0, 0.0, 1.0),
	}
	checkBasis[float64, dim.U3, dim.U3, dim.U4](t, e, refs, linalg.Vector3(0.1, 0.2, 0.3))
	J := e.ReferenceJacobian(linalg.Vector3(0.25, 0.25, 0.25))
	assert.InDelta(t, 6.0, linalg.Det(J), tol)
	// Reference volume 1/6 scales by |J|
	assert.InDelta(t, 1.0, math.Abs(float64(linalg.Det(J)))/6, tol)
}

func TestConnectivityBuildsElement(t *testing.T) {
	c := NewEdge2dConnectivity[float64](4, 7)
	assert.Equal(t, []int{4, 7}, c.Vertices().Slice())
	assert.Equal(t, c.NodalDim().Value(), c.Vertices().Len())

	var nodes linalg.Matrix[float64, dim.U2, dim.U2]
	nodes.SetColumn(0, linalg.Vector2(0.0, 1.0))
	nodes.SetColumn(1, linalg.Vector2(2.0, 1.0))
	e := c.Element(nodes)
	assert.Equal(t, linalg.Vector2(1.0, 1.0), e.MapReferenceCoords(linalg.Vector1(0.5)))
	assert.Len(t, c.LocalFacets(), 2)

	tc := NewTri3Connectivity[float64](0, 1, 2)
	assert.Equal(t, tc.NodalDim().Value(), tc.Vertices().Len())
	assert.Len(t, tc.LocalFacets(), tc.Element(linalg.Matrix[float64, dim.U2, dim.U3]{}).GetProperties().NFacets)

	qc := NewQuad4Connectivity[float64](0, 1, 2, 3)
	assert.Equal(t, qc.NodalDim().Value(), qc.Vertices().Len())
	tet := NewTet4Connectivity[float64](0, 1, 2, 3)
	assert.Len(t, tet.LocalFacets(), 4)
}

func TestFloat32Edge(t *testing.T) {
	e := NewEdge2dElement(geometry.NewLineSegment2d(linalg.Vector2[float32](0, 0), linalg.Vector2[float32](2, 0)))
	x := e.MapReferenceCoords(linalg.Vector1[float32](0.25))
	assert.InDelta(t, 0.5, float64(x.At(0)), 1e-6)
}

func TestGeometryString(t *testing.T) {
	assert.Equal(t, "Tet", Tet.String())
	assert.Equal(t, "Unknown", ElementGeometry(99).String())
}

func TestEdge2dAgreesWithSegment(t *testing.T) {
	s := geometry.NewLineSegment2d(linalg.Vector2(0.5, -1.0), linalg.Vector2(2.0, 3.0))
	e := NewEdge2dElement(s)
	for _, xi := range []float64{-0.5, 0, 0.25, 0.5, 1, 1.5} {
		assert.True(t, e.MapReferenceCoords(linalg.Vector1(xi)).ApproxEqual(s.PointAt(xi), tol), "xi=%v", xi)
		assert.True(t, e.ReferenceJacobian(linalg.Vector1(xi)).Column(0).ApproxEqual(s.Direction(), tol))
	}
}

func TestNodalMappingMatchesMatrixProduct(t *testing.T) {
	e := NewQuad4Element(linalg.Vector2(0.0, 0.0), linalg.Vector2(2.0, 0.5),
		linalg.Vector2(2.5, 2.0), linalg.Vector2(-0.5, 1.5))
	X := e.nodes
	for _, xi := range []linalg.Vector[float64, dim.U2]{
		linalg.Vector2(0.0, 0.0), linalg.Vector2(0.3, 0.7), linalg.Vector2(1.0, 0.5),
	} {
		N := e.EvaluateBasis(xi)
		assert.True(t, e.MapReferenceCoords(xi).ApproxEqual(X.MulVec(N.Row(0)), tol))

		want := linalg.Mul(X, e.GradientsOfBasis(xi).Transpose())
		got := e.ReferenceJacobian(xi)
		for j := 0; j < 2; j++ {
			assert.True(t, got.Column(j).ApproxEqual(want.Column(j), tol))
		}
	}
}
