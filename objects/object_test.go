package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenray/raytrace/internal/prim"
)

func assertVectorNear(t *testing.T, want, got prim.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-6)
	assert.InDelta(t, want.Y, got.Y, 1e-6)
	assert.InDelta(t, want.Z, got.Z, 1e-6)
}

func assertPointNear(t *testing.T, want, got prim.Point3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-6)
	assert.InDelta(t, want.Y, got.Y, 1e-6)
	assert.InDelta(t, want.Z, got.Z, 1e-6)
}

func TestSphereIntersectFromOutsideHitsNearFace(t *testing.T) {
	sphere, err := NewSphere(1, nil)
	require.NoError(t, err)

	ray := prim.NewRay3(prim.P3(3, 0, 0), prim.V3(-1, 0, 0))
	hit, err := sphere.Intersect(ray)
	require.NoError(t, err)
	require.NotNil(t, hit)

	assertPointNear(t, prim.P3(1, 0, 0), hit.Point)
	assertVectorNear(t, prim.V3(1, 0, 0), hit.Normal)
}

func TestSphereIntersectMissReturnsNilHit(t *testing.T) {
	sphere, err := NewSphere(1, nil)
	require.NoError(t, err)

	ray := prim.NewRay3(prim.P3(3, 5, 0), prim.V3(-1, 0, 0))
	hit, err := sphere.Intersect(ray)
	require.NoError(t, err)
	assert.Nil(t, hit)
}

func TestNewSphereRejectsNonPositiveRadius(t *testing.T) {
	_, err := NewSphere(0, nil)
	assert.Error(t, err)
}

func TestSquareCenteredBehindOriginHitAlongZ(t *testing.T) {
	square, err := NewSquare(10, nil)
	require.NoError(t, err)
	square.MoveTo(prim.P3(0, 0, -1))

	ray := prim.NewRay3(prim.Origin3, prim.V3(0, 0, -1))
	hit, err := square.Intersect(ray)
	require.NoError(t, err)
	require.NotNil(t, hit)

	assertPointNear(t, prim.P3(0, 0, -1), hit.Point)
	assertVectorNear(t, prim.V3(0, 0, 1), hit.Normal)
	assert.InDelta(t, 1, hit.T, 1e-6)
}

func TestPlaneLineIntersection(t *testing.T) {
	plane, err := prim.NewPlaneFromCoefficients(2, 3, 4, 1)
	require.NoError(t, err)
	ray := prim.NewRay3(prim.P3(0, 3, 5), prim.V3(-1, 1, 4))

	res := prim.IntersectLinePlane(ray.AsLine(), plane)
	require.Equal(t, prim.KindPoint, res.Kind)
	assertPointNear(t, prim.P3(30.0/17, 3-30.0/17, 5-120.0/17), res.Point)
}

func TestCuboidIntersectEntersNearestFace(t *testing.T) {
	cuboid, err := NewCuboid(1, 1, 1, nil)
	require.NoError(t, err)

	ray := prim.NewRay3(prim.P3(5, 0, 0), prim.V3(-1, 0, 0))
	hit, err := cuboid.Intersect(ray)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assertPointNear(t, prim.P3(1, 0, 0), hit.Point)
	assertVectorNear(t, prim.V3(1, 0, 0), hit.Normal)
}

func TestCylinderIntersectClippedToZRange(t *testing.T) {
	cyl, err := NewCylinder(0, 2, nil)
	require.NoError(t, err)

	ray := prim.NewRay3(prim.P3(5, 0, 1), prim.V3(-1, 0, 0))
	hit, err := cyl.Intersect(ray)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assertPointNear(t, prim.P3(1, 0, 1), hit.Point)

	above, err := cyl.Intersect(prim.NewRay3(prim.P3(5, 0, 3), prim.V3(-1, 0, 0)))
	require.NoError(t, err)
	assert.Nil(t, above)
}

func TestEllipsoidIntersectUnitSphereEquivalence(t *testing.T) {
	ell := NewEllipsoid(nil)
	ray := prim.NewRay3(prim.P3(3, 0, 0), prim.V3(-1, 0, 0))
	hit, err := ell.Intersect(ray)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assertPointNear(t, prim.P3(1, 0, 0), hit.Point)
}

func TestTorusIntersectOuterEquator(t *testing.T) {
	tor, err := NewTorus(2, 0.5, nil)
	require.NoError(t, err)

	ray := prim.NewRay3(prim.P3(5, 0, 0), prim.V3(-1, 0, 0))
	hit, err := tor.Intersect(ray)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assertPointNear(t, prim.P3(2.5, 0, 0), hit.Point)
}

func TestNewTorusRejectsMinorNotLessThanMajor(t *testing.T) {
	_, err := NewTorus(1, 1, nil)
	assert.Error(t, err)
}

func TestTriangleIntersectInsideBounds(t *testing.T) {
	tri, err := NewTriangle(prim.P3(-1, -1, 0), prim.P3(1, -1, 0), prim.P3(0, 1, 0), nil)
	require.NoError(t, err)

	ray := prim.NewRay3(prim.P3(0, 0, 5), prim.V3(0, 0, -1))
	hit, err := tri.Intersect(ray)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assertPointNear(t, prim.P3(0, 0, 0), hit.Point)
}

func TestTriangleIntersectOutsideBoundsMisses(t *testing.T) {
	tri, err := NewTriangle(prim.P3(-1, -1, 0), prim.P3(1, -1, 0), prim.P3(0, 1, 0), nil)
	require.NoError(t, err)

	ray := prim.NewRay3(prim.P3(5, 5, 5), prim.V3(0, 0, -1))
	hit, err := tri.Intersect(ray)
	require.NoError(t, err)
	assert.Nil(t, hit)
}

func TestNewTriangleRejectsCollinearVertices(t *testing.T) {
	_, err := NewTriangle(prim.P3(0, 0, 0), prim.P3(1, 0, 0), prim.P3(2, 0, 0), nil)
	assert.Error(t, err)
}

func TestMeshIntersectPicksNearestTriangle(t *testing.T) {
	verts := []prim.Point3{
		{X: -1, Y: -1, Z: 0}, {X: 1, Y: -1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: -1, Y: -1, Z: -5}, {X: 1, Y: -1, Z: -5}, {X: 0, Y: 1, Z: -5},
	}
	mesh, err := NewMesh(verts, nil)
	require.NoError(t, err)

	ray := prim.NewRay3(prim.P3(0, 0, 5), prim.V3(0, 0, -1))
	hit, err := mesh.Intersect(ray)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assertPointNear(t, prim.P3(0, 0, 0), hit.Point)
}

// twoSpheres builds the pair the worked Boolean-overlap scenarios use: a
// radius-2 sphere at (-1,0,0) ("left", operand A) and a radius-2 sphere
// at (1,0,0) ("right", operand B), both spanning the origin.
func twoSpheres(t *testing.T) (a, b *Sphere) {
	t.Helper()
	a, err := NewSphere(2, nil)
	require.NoError(t, err)
	a.MoveTo(prim.P3(-1, 0, 0))
	b, err = NewSphere(2, nil)
	require.NoError(t, err)
	b.MoveTo(prim.P3(1, 0, 0))
	return a, b
}

func TestOverlapExclusiveEnteringRightSolid(t *testing.T) {
	a, b := twoSpheres(t)
	xor := NewOverlap(OverlapExclusive, a, b, nil)

	ray := prim.NewRay3(prim.Origin3, prim.V3(1, 0, 0))
	hit, err := xor.Intersect(ray)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assertPointNear(t, prim.P3(1, 0, 0), hit.Point)
}

func TestOverlapExclusiveLeavingLeftSolid(t *testing.T) {
	a, b := twoSpheres(t)
	xor := NewOverlap(OverlapExclusive, a, b, nil)

	ray := prim.NewRay3(prim.Origin3, prim.V3(-1, 0, 0))
	hit, err := xor.Intersect(ray)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assertPointNear(t, prim.P3(-1, 0, 0), hit.Point)
}

func TestOverlapSubtractiveNearestExitPastCoveredEntry(t *testing.T) {
	a, b := twoSpheres(t)
	sub := NewOverlap(OverlapSubtractive, a, b, nil)

	ray := prim.NewRay3(prim.P3(4, 0, 0), prim.V3(-1, 0, 0))
	hit, err := sub.Intersect(ray)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assertPointNear(t, prim.P3(-3, 0, 0), hit.Point)
	assertVectorNear(t, prim.V3(-1, 0, 0), hit.Normal)
}

func TestOverlapInclusiveRequiresBothSolids(t *testing.T) {
	a, b := twoSpheres(t)
	and := NewOverlap(OverlapInclusive, a, b, nil)

	ray := prim.NewRay3(prim.P3(5, 0, 0), prim.V3(-1, 0, 0))
	hit, err := and.Intersect(ray)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assertPointNear(t, prim.P3(1, 0, 0), hit.Point)
}

func TestOverlapAdditiveReportsNearestOfEither(t *testing.T) {
	a, b := twoSpheres(t)
	or := NewOverlap(OverlapAdditive, a, b, nil)

	ray := prim.NewRay3(prim.P3(5, 0, 0), prim.V3(-1, 0, 0))
	hit, err := or.Intersect(ray)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assertPointNear(t, prim.P3(3, 0, 0), hit.Point)
}

func TestOverlapWorldBoundsUnionsOperands(t *testing.T) {
	a, b := twoSpheres(t)
	ov := NewOverlap(OverlapAdditive, a, b, nil)
	bounds := ov.WorldBounds()
	assertPointNear(t, prim.P3(-3, -2, -2), bounds.Min)
	assertPointNear(t, prim.P3(3, 2, 2), bounds.Max)
}
