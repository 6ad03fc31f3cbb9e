// Package objects implements the polymorphic surface abstraction: a
// world-space placement plus a closed-form intersection, normal,
// reflection/refraction, and texture-coordinate mapping, for each
// concrete primitive and for Boolean composites over them.
package objects

import (
	"github.com/lumenray/raytrace/internal/prim"
	"github.com/lumenray/raytrace/mediums"
)

// Kind tags the concrete surface a Object value carries, used by the
// Boolean composer and by tests. It is a closed sum type, not an
// open-ended registry: adding a surface means adding a Kind constant.
type Kind int

const (
	KindSphere Kind = iota
	KindPlane
	KindSquare
	KindRing
	KindCuboid
	KindCylinder
	KindCone
	KindEllipsoid
	KindParaboloid
	KindHyperboloid
	KindEllipticalCone
	KindEllipticalCylinder
	KindTorus
	KindTriangle
	KindMesh
	KindOverlapInclusive
	KindOverlapAdditive
	KindOverlapSubtractive
	KindOverlapExclusive
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	case KindSquare:
		return "square"
	case KindRing:
		return "ring"
	case KindCuboid:
		return "cuboid"
	case KindCylinder:
		return "cylinder"
	case KindCone:
		return "cone"
	case KindEllipsoid:
		return "ellipsoid"
	case KindParaboloid:
		return "paraboloid"
	case KindHyperboloid:
		return "hyperboloid"
	case KindEllipticalCone:
		return "elliptical_cone"
	case KindEllipticalCylinder:
		return "elliptical_cylinder"
	case KindTorus:
		return "torus"
	case KindTriangle:
		return "triangle"
	case KindMesh:
		return "mesh"
	case KindOverlapInclusive:
		return "overlap_inclusive"
	case KindOverlapAdditive:
		return "overlap_additive"
	case KindOverlapSubtractive:
		return "overlap_subtractive"
	case KindOverlapExclusive:
		return "overlap_exclusive"
	default:
		return "unknown"
	}
}

// Hit is produced by Object.Intersect: the object that was hit, the
// ray parameter, the world-space point, and the outward normal there.
type Hit struct {
	Object Object
	T      prim.Scalar
	Point  prim.Point3
	Normal prim.Vector3
}

// Object is the trait-style surface abstraction every concrete
// primitive and Boolean composite implements. Intersect is the only
// hot-path operation: implementations transform the ray into object
// space, solve in closed form, and transform the answer back.
type Object interface {
	Position() prim.Point3
	MoveTo(p prim.Point3)
	MoveBy(v prim.Vector3)
	SetRotation(yaw, pitch, roll prim.Radians)
	SetScale(sx, sy, sz prim.Scalar)
	ForwardTransform(p prim.Point3) prim.Point3
	ReverseTransform(p prim.Point3) prim.Point3
	WorldBounds() AABB
	Intersect(ray prim.Ray3) (*Hit, error)
	Normal(worldPoint prim.Point3) (prim.Vector3, error)
	Reflect(incoming prim.Ray3, normal prim.Vector3, point prim.Point3) prim.Ray3
	Refract(incoming prim.Ray3, normal prim.Vector3, point prim.Point3, nFrom, nTo prim.Scalar) prim.Ray3
	Map(worldPoint prim.Point3) (u, v prim.Scalar)
	Medium() *mediums.Medium
	Type() Kind
}

// selfHitEpsilon is the minimum positive t a closed-form solver must
// clear for a root to count as a genuine forward hit rather than the
// ray re-striking its own origin surface.
const selfHitEpsilon = 1e-6
