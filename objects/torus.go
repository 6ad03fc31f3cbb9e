package objects

import (
	"fmt"
	"math"

	"github.com/lumenray/raytrace/internal/prim"
	"github.com/lumenray/raytrace/mediums"
	"github.com/lumenray/raytrace/rterr"
)

// Torus is centered at the object-space origin with its tube axis along
// z: major radius R in the xy-plane, tube (minor) radius r. Its closed
// form is the quartic from §4.5, derived by substituting the
// parametric ray into the implicit surface
// (x^2+y^2+z^2+R^2-r^2)^2 - 4R^2(x^2+y^2) = 0.
type Torus struct {
	base
	MajorRadius, MinorRadius prim.Scalar
}

func NewTorus(majorRadius, minorRadius prim.Scalar, m *mediums.Medium) (*Torus, error) {
	if majorRadius <= 0 || minorRadius <= 0 || minorRadius >= majorRadius {
		return nil, fmt.Errorf("%w: torus requires 0 < minorRadius < majorRadius, got R=%v r=%v", rterr.ErrDomainError, majorRadius, minorRadius)
	}
	return &Torus{base: newBase(KindTorus, m), MajorRadius: majorRadius, MinorRadius: minorRadius}, nil
}

func (tor *Torus) WorldBounds() AABB {
	outer := tor.MajorRadius + tor.MinorRadius
	local := boxFromHalfExtents(prim.Origin3, outer, outer, tor.MinorRadius)
	return transformAABB(tor.Transform, local)
}

func (tor *Torus) Intersect(ray prim.Ray3) (*Hit, error) {
	local := tor.ReverseRay(ray)
	e, d := local.Origin, local.Direction
	R2, r2 := tor.MajorRadius*tor.MajorRadius, tor.MinorRadius*tor.MinorRadius

	sumDSqrd := d.Dot(d)
	eDotD := e.ToVector3().Dot(d)
	sumESqrd := e.ToVector3().Dot(e.ToVector3())

	A := sumDSqrd
	B := 2 * eDotD
	C := sumESqrd + R2 - r2
	P := d.X*d.X + d.Y*d.Y
	Q := 2 * (e.X*d.X + e.Y*d.Y)
	Sxy := e.X*e.X + e.Y*e.Y

	a4 := A * A
	a3 := 2 * A * B
	a2 := B*B + 2*A*C - 4*R2*P
	a1 := 2*B*C - 4*R2*Q
	a0 := C*C - 4*R2*Sxy

	r0, r1, r2r, r3 := prim.SolveQuartic(a4, a3, a2, a1, a0)

	bestT, found := prim.Scalar(0), false
	for _, t := range [4]prim.Scalar{r0, r1, r2r, r3} {
		if math.IsNaN(t) || t <= selfHitEpsilon {
			continue
		}
		if !found || t < bestT {
			bestT, found = t, true
		}
	}
	if !found {
		return nil, nil
	}

	objectPoint := local.Solve(bestT)
	normalObj, err := tor.gradient(objectPoint).Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: torus normal undefined at degenerate point", rterr.ErrGeometryDegenerate)
	}
	worldPoint := tor.ForwardTransform(objectPoint)
	worldNormal := tor.ForwardNormal(normalObj)
	return &Hit{Object: tor, T: bestT, Point: worldPoint, Normal: worldNormal}, nil
}

func (tor *Torus) gradient(p prim.Point3) prim.Vector3 {
	R2 := tor.MajorRadius * tor.MajorRadius
	r2 := tor.MinorRadius * tor.MinorRadius
	s := p.X*p.X + p.Y*p.Y + p.Z*p.Z + R2 - r2
	return prim.V3(p.X*(s-2*R2), p.Y*(s-2*R2), p.Z*s)
}

func (tor *Torus) Normal(worldPoint prim.Point3) (prim.Vector3, error) {
	local := tor.ReverseTransform(worldPoint)
	n, err := tor.gradient(local).Normalize()
	if err != nil {
		return prim.Vector3{}, fmt.Errorf("%w: torus normal undefined at degenerate point", rterr.ErrGeometryDegenerate)
	}
	return tor.ForwardNormal(n), nil
}

// containsPoint implements solidContainer for the Boolean composer's
// inside/outside seeding: a point lies inside the solid torus when its
// distance to the main ring is within the tube radius.
func (tor *Torus) containsPoint(p prim.Point3) bool {
	local := tor.ReverseTransform(p)
	ringDist := math.Hypot(local.X, local.Y) - tor.MajorRadius
	return ringDist*ringDist+local.Z*local.Z <= tor.MinorRadius*tor.MinorRadius+selfHitEpsilon
}

// Map uses the torus's two natural angles: u around the main ring, v
// around the tube cross-section.
func (tor *Torus) Map(worldPoint prim.Point3) (u, v prim.Scalar) {
	local := tor.ReverseTransform(worldPoint)
	u = (math.Atan2(local.Y, local.X) + math.Pi) / (2 * math.Pi)
	ringRadius := math.Hypot(local.X, local.Y)
	tubeX := ringRadius - tor.MajorRadius
	v = (math.Atan2(local.Z, tubeX) + math.Pi) / (2 * math.Pi)
	return u, v
}
