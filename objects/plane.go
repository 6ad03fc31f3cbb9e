package objects

import (
	"fmt"

	"github.com/lumenray/raytrace/internal/prim"
	"github.com/lumenray/raytrace/mediums"
	"github.com/lumenray/raytrace/rterr"
)

// Plane is the infinite plane z=0 in object space, normal +Z, placed
// and oriented by the inherited Transform. Its closed form is the
// single line/plane intersection from §4.4: t = -(n.origin + d) /
// (n.direction).
type Plane struct {
	base
}

func NewPlane(m *mediums.Medium) *Plane {
	return &Plane{base: newBase(KindPlane, m)}
}

var localPlaneXY, _ = prim.NewPlaneFromCoefficients(0, 0, 1, 0)

func (p *Plane) WorldBounds() AABB { return InfiniteAABB() }

func (p *Plane) Intersect(ray prim.Ray3) (*Hit, error) {
	local := p.ReverseRay(ray)
	res := prim.IntersectLinePlane(local.AsLine(), localPlaneXY)
	if res.Kind != prim.KindPoint {
		return nil, nil
	}
	t, ok := local.AsLine().SolveFor(res.Point)
	if !ok || t <= selfHitEpsilon {
		return nil, nil
	}
	worldPoint := p.ForwardTransform(res.Point)
	worldNormal := p.ForwardNormal(localPlaneXY.Normal())
	return &Hit{Object: p, T: t, Point: worldPoint, Normal: worldNormal}, nil
}

func (p *Plane) Normal(worldPoint prim.Point3) (prim.Vector3, error) {
	_ = worldPoint
	return p.ForwardNormal(localPlaneXY.Normal()), nil
}

func (p *Plane) Map(worldPoint prim.Point3) (u, v prim.Scalar) {
	local := p.ReverseTransform(worldPoint)
	return planarUV(local.X, local.Y)
}

// errDegenerate wraps a geometry-degenerate condition for surfaces that
// detect it outside the prim intersection algebra (e.g. a zero edge
// vector on a triangle or square).
func errDegenerate(format string, args ...any) error {
	return fmt.Errorf("%w: %s", rterr.ErrGeometryDegenerate, fmt.Sprintf(format, args...))
}
