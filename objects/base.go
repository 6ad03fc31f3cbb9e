package objects

import (
	"math"

	"github.com/lumenray/raytrace/internal/prim"
	"github.com/lumenray/raytrace/mediums"
)

// reflectionEpsilon offsets a spawned ray's origin along the normal so
// it does not immediately re-intersect the surface it left, mirroring
// the teacher's fixed 1e-4 self-intersection offset.
const reflectionEpsilon = 1e-4

// base implements the placement bookkeeping and the reflection and
// refraction formulas shared by every concrete surface: these depend
// only on the ray, the normal, and the two refractive indices, never on
// which closed form produced the hit. Concrete surfaces embed base and
// add WorldBounds, Intersect, Normal, Map, and Type.
type base struct {
	Transform
	medium *mediums.Medium
	kind   Kind
}

func newBase(kind Kind, m *mediums.Medium) base {
	if m == nil {
		m = &mediums.Medium{}
	}
	return base{Transform: NewTransform(), medium: m, kind: kind}
}

// ForwardTransform exposes Transform.ForwardPoint under the Object
// interface's naming.
func (b base) ForwardTransform(p prim.Point3) prim.Point3 { return b.Transform.ForwardPoint(p) }

// ReverseTransform exposes Transform.ReversePoint under the Object
// interface's naming.
func (b base) ReverseTransform(p prim.Point3) prim.Point3 { return b.Transform.ReversePoint(p) }

func (b *base) Medium() *mediums.Medium { return b.medium }

func (b base) Type() Kind { return b.kind }

// Reflect mirrors the incoming ray's direction about normal, offsetting
// the new origin outward to avoid immediate self-intersection. Grounded
// on the teacher's traceRay reflection branch: reflectedDir = D -
// N*2*(D.N), origin offset by normal*1e-4.
func (b base) Reflect(incoming prim.Ray3, normal prim.Vector3, point prim.Point3) prim.Ray3 {
	d := incoming.Direction.MustNormalize()
	reflected := d.Sub(normal.Scale(2 * d.Dot(normal)))
	origin := point.Add(normal.Scale(reflectionEpsilon))
	return prim.NewRay3(origin, reflected)
}

// Refract applies Snell's law to bend the incoming ray from a medium of
// index nFrom into one of index nTo. Total internal reflection is
// signaled by returning the mirror reflection ray instead, per the
// spec's documented contract. Grounded on the teacher's refract/fresnel
// pair (raytracer.go), generalized to explicit nFrom/nTo rather than
// the teacher's air-is-always-1.0 assumption.
func (b base) Refract(incoming prim.Ray3, normal prim.Vector3, point prim.Point3, nFrom, nTo prim.Scalar) prim.Ray3 {
	d := incoming.Direction.MustNormalize()
	n := normal
	cosI := -n.Dot(d)
	if cosI < 0 {
		// Ray approaches from behind the outward normal; flip both so
		// the formula below always sees the normal on the incident side.
		n = n.Neg()
		cosI = -n.Dot(d)
	}
	ratio := nFrom / nTo
	sinT2 := ratio * ratio * (1 - cosI*cosI)
	if sinT2 > 1 {
		return b.Reflect(incoming, normal, point)
	}
	cosT := math.Sqrt(1 - sinT2)
	refracted := d.Scale(ratio).Add(n.Scale(ratio*cosI - cosT))
	origin := point.Sub(normal.Scale(reflectionEpsilon))
	return prim.NewRay3(origin, refracted)
}
