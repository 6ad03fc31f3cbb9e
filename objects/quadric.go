package objects

import (
	"fmt"
	"math"

	"github.com/lumenray/raytrace/internal/prim"
	"github.com/lumenray/raytrace/mediums"
	"github.com/lumenray/raytrace/rterr"
)

// QuadricKind selects which canonical second-order surface a Quadric
// evaluates. Cylinder and cone already cover their "elliptical" variants:
// an elliptical cylinder or cone is the circular canonical form with a
// non-uniform x/y scale applied through the inherited Transform, so no
// separate closed form is needed for them.
type QuadricKind int

const (
	QuadricCylinder QuadricKind = iota
	QuadricCone
	QuadricEllipsoid
	QuadricParaboloid
	QuadricHyperboloid
)

// Quadric is the shared closed form for cylinder, cone, ellipsoid,
// paraboloid, and hyperboloid surfaces: substitute the object-space ray
// into the canonical quadric equation, solve the resulting quadratic
// (linear for the paraboloid's z term), and clip to an axial range
// where the surface is open along z.
type Quadric struct {
	base
	kindTag QuadricKind
	ZMin    prim.Scalar
	ZMax    prim.Scalar
}

func newQuadric(kind Kind, qk QuadricKind, zMin, zMax prim.Scalar, m *mediums.Medium) *Quadric {
	return &Quadric{base: newBase(kind, m), kindTag: qk, ZMin: zMin, ZMax: zMax}
}

var unbounded = math.Inf(1)

// NewCylinder builds a unit-radius circular cylinder along object-space
// z, clipped to [zMin, zMax]. An elliptical cylinder is this surface
// with SetScale(sx, sy, 1) applied afterward.
func NewCylinder(zMin, zMax prim.Scalar, m *mediums.Medium) (*Quadric, error) {
	if zMax <= zMin {
		return nil, errDomainAxis("cylinder", zMin, zMax)
	}
	return newQuadric(KindCylinder, QuadricCylinder, zMin, zMax, m), nil
}

// NewCone builds a unit-slope circular cone with apex at the object-space
// origin opening toward +z, clipped to [zMin, zMax] (zMin should
// ordinarily be > 0 to exclude the apex's singular normal). An
// elliptical cone is this surface with a non-uniform x/y scale applied.
func NewCone(zMin, zMax prim.Scalar, m *mediums.Medium) (*Quadric, error) {
	if zMax <= zMin {
		return nil, errDomainAxis("cone", zMin, zMax)
	}
	return newQuadric(KindCone, QuadricCone, zMin, zMax, m), nil
}

// NewEllipsoid builds the unit sphere's quadric form x^2+y^2+z^2=1 as a
// distinct surface type from Sphere, so Boolean overlaps and Map can
// tell them apart even though the canonical equation coincides.
func NewEllipsoid(m *mediums.Medium) *Quadric {
	return newQuadric(KindEllipsoid, QuadricEllipsoid, -unbounded, unbounded, m)
}

// NewParaboloid builds z = x^2+y^2, clipped to [0, zMax].
func NewParaboloid(zMax prim.Scalar, m *mediums.Medium) (*Quadric, error) {
	if zMax <= 0 {
		return nil, errDomainAxis("paraboloid", 0, zMax)
	}
	return newQuadric(KindParaboloid, QuadricParaboloid, 0, zMax, m), nil
}

// NewHyperboloid builds the one-sheet hyperboloid x^2+y^2-z^2=1, clipped
// to [zMin, zMax].
func NewHyperboloid(zMin, zMax prim.Scalar, m *mediums.Medium) (*Quadric, error) {
	if zMax <= zMin {
		return nil, errDomainAxis("hyperboloid", zMin, zMax)
	}
	return newQuadric(KindHyperboloid, QuadricHyperboloid, zMin, zMax, m), nil
}

func errDomainAxis(name string, zMin, zMax prim.Scalar) error {
	return fmt.Errorf("%w: %s requires zMax > zMin, got zMin=%v zMax=%v", rterr.ErrDomainError, name, zMin, zMax)
}

// coefficients returns the a,b,c of the quadratic a*t^2+b*t+c=0 (or the
// linear case with a==0) for substituting local into this surface's
// canonical implicit equation.
func (q *Quadric) coefficients(o, d prim.Vector3) (a, b, c prim.Scalar) {
	switch q.kindTag {
	case QuadricCylinder:
		a = d.X*d.X + d.Y*d.Y
		b = 2 * (o.X*d.X + o.Y*d.Y)
		c = o.X*o.X + o.Y*o.Y - 1
	case QuadricCone:
		a = d.X*d.X + d.Y*d.Y - d.Z*d.Z
		b = 2 * (o.X*d.X + o.Y*d.Y - o.Z*d.Z)
		c = o.X*o.X + o.Y*o.Y - o.Z*o.Z
	case QuadricEllipsoid:
		a = d.X*d.X + d.Y*d.Y + d.Z*d.Z
		b = 2 * (o.X*d.X + o.Y*d.Y + o.Z*d.Z)
		c = o.X*o.X + o.Y*o.Y + o.Z*o.Z - 1
	case QuadricParaboloid:
		a = d.X*d.X + d.Y*d.Y
		b = 2*(o.X*d.X+o.Y*d.Y) - d.Z
		c = o.X*o.X + o.Y*o.Y - o.Z
	case QuadricHyperboloid:
		a = d.X*d.X + d.Y*d.Y - d.Z*d.Z
		b = 2 * (o.X*d.X + o.Y*d.Y - o.Z*d.Z)
		c = o.X*o.X + o.Y*o.Y - o.Z*o.Z - 1
	}
	return a, b, c
}

func (q *Quadric) gradient(p prim.Vector3) prim.Vector3 {
	switch q.kindTag {
	case QuadricCylinder:
		return prim.V3(p.X, p.Y, 0)
	case QuadricCone:
		return prim.V3(p.X, p.Y, -p.Z)
	case QuadricEllipsoid:
		return prim.V3(p.X, p.Y, p.Z)
	case QuadricParaboloid:
		return prim.V3(p.X, p.Y, -0.5)
	case QuadricHyperboloid:
		return prim.V3(p.X, p.Y, -p.Z)
	default:
		return prim.V3(0, 0, 1)
	}
}

func (q *Quadric) WorldBounds() AABB {
	if math.IsInf(q.ZMin, -1) || math.IsInf(q.ZMax, 1) {
		return InfiniteAABB()
	}
	// Radial extent over the clip range: 1 for the cylinder, |z| for the
	// cone, sqrt(1+z^2) for the hyperboloid and sqrt(z) for the
	// paraboloid, each taken at least 1 to stay conservative.
	zAbs := math.Max(math.Abs(q.ZMin), math.Abs(q.ZMax))
	radius := prim.Scalar(1)
	switch q.kindTag {
	case QuadricParaboloid:
		radius = math.Max(1, math.Sqrt(math.Abs(q.ZMax)))
	case QuadricCone:
		radius = math.Max(1, zAbs)
	case QuadricHyperboloid:
		radius = math.Sqrt(1 + zAbs*zAbs)
	}
	local := AABB{
		Min: prim.P3(-radius, -radius, q.ZMin),
		Max: prim.P3(radius, radius, q.ZMax),
	}
	return transformAABB(q.Transform, local)
}

func (q *Quadric) roots(a, b, c prim.Scalar) []prim.Scalar {
	if prim.NearlyZero(a) {
		if prim.NearlyZero(b) {
			return nil
		}
		return []prim.Scalar{-c / b}
	}
	r0, r1 := prim.SolveQuadratic(a, b, c)
	if math.IsNaN(r0) {
		return nil
	}
	return []prim.Scalar{r0, r1}
}

func (q *Quadric) Intersect(ray prim.Ray3) (*Hit, error) {
	local := q.ReverseRay(ray)
	o, d := local.Origin.ToVector3(), local.Direction
	a, b, c := q.coefficients(o, d)
	roots := q.roots(a, b, c)

	bestT, found := prim.Scalar(0), false
	for _, t := range roots {
		if t <= selfHitEpsilon {
			continue
		}
		z := local.Solve(t).Z
		if z < q.ZMin || z > q.ZMax {
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
	normalObj, err := q.gradient(objectPoint.ToVector3()).Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: quadric normal undefined at axis", rterr.ErrGeometryDegenerate)
	}
	worldPoint := q.ForwardTransform(objectPoint)
	worldNormal := q.ForwardNormal(normalObj)
	return &Hit{Object: q, T: bestT, Point: worldPoint, Normal: worldNormal}, nil
}

func (q *Quadric) Normal(worldPoint prim.Point3) (prim.Vector3, error) {
	local := q.ReverseTransform(worldPoint)
	n, err := q.gradient(local.ToVector3()).Normalize()
	if err != nil {
		return prim.Vector3{}, fmt.Errorf("%w: quadric normal undefined at axis", rterr.ErrGeometryDegenerate)
	}
	return q.ForwardNormal(n), nil
}

// containsPoint implements solidContainer for the Boolean composer's
// inside/outside seeding; it evaluates the same canonical implicit
// equation Intersect solves for, with z-range clipping for the kinds
// that are bounded along the axis.
func (q *Quadric) containsPoint(p prim.Point3) bool {
	local := q.ReverseTransform(p)
	if local.Z < q.ZMin-selfHitEpsilon || local.Z > q.ZMax+selfHitEpsilon {
		return false
	}
	x, y, z := local.X, local.Y, local.Z
	switch q.kindTag {
	case QuadricCylinder:
		return x*x+y*y <= 1+selfHitEpsilon
	case QuadricCone:
		return x*x+y*y <= z*z+selfHitEpsilon
	case QuadricEllipsoid:
		return x*x+y*y+z*z <= 1+selfHitEpsilon
	case QuadricParaboloid:
		return x*x+y*y <= z+selfHitEpsilon
	case QuadricHyperboloid:
		return x*x+y*y-z*z <= 1+selfHitEpsilon
	}
	return false
}

func (q *Quadric) Map(worldPoint prim.Point3) (u, v prim.Scalar) {
	local := q.ReverseTransform(worldPoint)
	angle := math.Atan2(local.Y, local.X)
	u = (angle + math.Pi) / (2 * math.Pi)
	if math.IsInf(q.ZMin, -1) || math.IsInf(q.ZMax, 1) {
		_, v = math.Modf(local.Z)
		return u, v
	}
	span := q.ZMax - q.ZMin
	if span == 0 {
		return u, 0
	}
	return u, (local.Z - q.ZMin) / span
}
