package objects

import (
	"fmt"
	"math"

	"github.com/lumenray/raytrace/internal/prim"
	"github.com/lumenray/raytrace/mediums"
	"github.com/lumenray/raytrace/rterr"
)

// Ring is an annulus cut from the object-space z=0 plane: the plane
// intersection clipped to InnerRadius <= r <= OuterRadius, the
// plane/ring closed form the spec groups with square.
type Ring struct {
	base
	InnerRadius, OuterRadius prim.Scalar
}

func NewRing(innerRadius, outerRadius prim.Scalar, m *mediums.Medium) (*Ring, error) {
	if innerRadius < 0 || outerRadius <= innerRadius {
		return nil, errDomainRing(innerRadius, outerRadius)
	}
	return &Ring{base: newBase(KindRing, m), InnerRadius: innerRadius, OuterRadius: outerRadius}, nil
}

func errDomainRing(inner, outer prim.Scalar) error {
	return fmt.Errorf("%w: ring requires 0 <= inner < outer, got inner=%v outer=%v", rterr.ErrDomainError, inner, outer)
}

func (r *Ring) WorldBounds() AABB {
	local := boxFromHalfExtents(prim.Origin3, r.OuterRadius, r.OuterRadius, 0)
	return transformAABB(r.Transform, local)
}

func (r *Ring) Intersect(ray prim.Ray3) (*Hit, error) {
	local := r.ReverseRay(ray)
	res := prim.IntersectLinePlane(local.AsLine(), localPlaneXY)
	if res.Kind != prim.KindPoint {
		return nil, nil
	}
	radius := math.Hypot(res.Point.X, res.Point.Y)
	if radius < r.InnerRadius || radius > r.OuterRadius {
		return nil, nil
	}
	t, ok := local.AsLine().SolveFor(res.Point)
	if !ok || t <= selfHitEpsilon {
		return nil, nil
	}
	worldPoint := r.ForwardTransform(res.Point)
	worldNormal := r.ForwardNormal(localPlaneXY.Normal())
	return &Hit{Object: r, T: t, Point: worldPoint, Normal: worldNormal}, nil
}

func (r *Ring) Normal(worldPoint prim.Point3) (prim.Vector3, error) {
	_ = worldPoint
	return r.ForwardNormal(localPlaneXY.Normal()), nil
}

func (r *Ring) Map(worldPoint prim.Point3) (u, v prim.Scalar) {
	local := r.ReverseTransform(worldPoint)
	radius := math.Hypot(local.X, local.Y)
	angle := math.Atan2(local.Y, local.X)
	span := r.OuterRadius - r.InnerRadius
	if span == 0 {
		return 0, (angle + math.Pi) / (2 * math.Pi)
	}
	return (radius - r.InnerRadius) / span, (angle + math.Pi) / (2 * math.Pi)
}
