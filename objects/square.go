package objects

import (
	"fmt"

	"github.com/lumenray/raytrace/internal/prim"
	"github.com/lumenray/raytrace/mediums"
	"github.com/lumenray/raytrace/rterr"
)

// Square is a finite patch of the object-space z=0 plane, centered at
// the origin with side length Edge: intersect the infinite plane first,
// then clip to the uv-bounds test the spec prescribes for square/ring.
type Square struct {
	base
	Edge prim.Scalar
}

func NewSquare(edge prim.Scalar, m *mediums.Medium) (*Square, error) {
	if edge <= 0 {
		return nil, fmt.Errorf("%w: square edge must be positive, got %v", rterr.ErrDomainError, edge)
	}
	return &Square{base: newBase(KindSquare, m), Edge: edge}, nil
}

func (s *Square) WorldBounds() AABB {
	half := s.Edge / 2
	local := boxFromHalfExtents(prim.Origin3, half, half, 0)
	return transformAABB(s.Transform, local)
}

func (s *Square) Intersect(ray prim.Ray3) (*Hit, error) {
	local := s.ReverseRay(ray)
	res := prim.IntersectLinePlane(local.AsLine(), localPlaneXY)
	if res.Kind != prim.KindPoint {
		return nil, nil
	}
	half := s.Edge / 2
	if res.Point.X < -half || res.Point.X > half || res.Point.Y < -half || res.Point.Y > half {
		return nil, nil
	}
	t, ok := local.AsLine().SolveFor(res.Point)
	if !ok || t <= selfHitEpsilon {
		return nil, nil
	}
	worldPoint := s.ForwardTransform(res.Point)
	worldNormal := s.ForwardNormal(localPlaneXY.Normal())
	return &Hit{Object: s, T: t, Point: worldPoint, Normal: worldNormal}, nil
}

func (s *Square) Normal(worldPoint prim.Point3) (prim.Vector3, error) {
	_ = worldPoint
	return s.ForwardNormal(localPlaneXY.Normal()), nil
}

func (s *Square) Map(worldPoint prim.Point3) (u, v prim.Scalar) {
	local := s.ReverseTransform(worldPoint)
	half := s.Edge / 2
	return (local.X + half) / s.Edge, (local.Y + half) / s.Edge
}
