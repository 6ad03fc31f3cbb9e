package objects

import (
	"sort"

	"github.com/lumenray/raytrace/internal/prim"
	"github.com/lumenray/raytrace/mediums"
)

// OverlapMode selects which of the four Boolean combinations an Overlap
// evaluates over its two operands.
type OverlapMode int

const (
	OverlapInclusive  OverlapMode = iota // A ∩ B
	OverlapAdditive                      // A ∪ B
	OverlapSubtractive                   // A − B
	OverlapExclusive                     // A △ B
)

// Overlap composes two Objects under a Boolean mode; it is itself an
// Object, so overlaps nest. A and B are non-owning references, matching
// the scene's "objects are referenced, never copied" lifecycle.
type Overlap struct {
	base
	Mode OverlapMode
	A, B Object
}

func kindForMode(mode OverlapMode) Kind {
	switch mode {
	case OverlapInclusive:
		return KindOverlapInclusive
	case OverlapAdditive:
		return KindOverlapAdditive
	case OverlapSubtractive:
		return KindOverlapSubtractive
	default:
		return KindOverlapExclusive
	}
}

// NewOverlap combines a and b under mode. The composite inherits its
// own placement; a and b keep whatever placement they already had when
// they were built, matching how the spec describes overlap operands as
// fully-formed surfaces in their own right.
func NewOverlap(mode OverlapMode, a, b Object, m *mediums.Medium) *Overlap {
	return &Overlap{base: newBase(kindForMode(mode), m), Mode: mode, A: a, B: b}
}

func (o *Overlap) WorldBounds() AABB { return o.A.WorldBounds().Union(o.B.WorldBounds()) }

// Normal and Map always delegate to A: a world point alone does not
// identify which operand's surface it lies on. Intersect reports
// Object: o (so the tracer looks up the composite's own Medium) and
// carries the hit operand's normal in the returned Hit.
func (o *Overlap) Normal(worldPoint prim.Point3) (prim.Vector3, error) {
	return o.A.Normal(worldPoint)
}

func (o *Overlap) Map(worldPoint prim.Point3) (u, v prim.Scalar) {
	return o.A.Map(worldPoint)
}

func (o *Overlap) Intersect(ray prim.Ray3) (*Hit, error) {
	switch o.Mode {
	case OverlapSubtractive:
		return o.intersectSubtractive(ray)
	default:
		return o.intersectGeneric(ray)
	}
}

// solidContainer is implemented by every closed-volume primitive so the
// Boolean composer can test "is this world point inside the solid",
// needed to seed the inside/outside state a ray starts in. Open
// surfaces (plane, square, ring, triangle, mesh) have no interior and
// are conservatively never "inside" anything.
type solidContainer interface {
	containsPoint(p prim.Point3) bool
}

func containsPoint(obj Object, p prim.Point3) bool {
	if sc, ok := obj.(solidContainer); ok {
		return sc.containsPoint(p)
	}
	return false
}

func (o *Overlap) containsPoint(p prim.Point3) bool {
	inA := containsPoint(o.A, p)
	inB := containsPoint(o.B, p)
	return combineInside(o.Mode, inA, inB)
}

func combineInside(mode OverlapMode, inA, inB bool) bool {
	switch mode {
	case OverlapInclusive:
		return inA && inB
	case OverlapAdditive:
		return inA || inB
	case OverlapSubtractive:
		return inA && !inB
	case OverlapExclusive:
		return inA != inB
	}
	return false
}

type boundaryEvent struct {
	t      prim.Scalar
	fromA  bool
	normal prim.Vector3
	point  prim.Point3
}

// maxEventsPerOperand bounds how many boundary crossings this package
// will march through per operand along one ray; four covers every
// closed form here (a torus's quartic can yield at most four real
// roots, the deepest case in the package).
const maxEventsPerOperand = 4

func (o *Overlap) events(ray prim.Ray3) []boundaryEvent {
	var evs []boundaryEvent
	for _, h := range hitsAlong(o.A, ray, maxEventsPerOperand) {
		evs = append(evs, boundaryEvent{t: h.T, fromA: true, normal: h.Normal, point: h.Point})
	}
	for _, h := range hitsAlong(o.B, ray, maxEventsPerOperand) {
		evs = append(evs, boundaryEvent{t: h.T, fromA: false, normal: h.Normal, point: h.Point})
	}
	sort.Slice(evs, func(i, j int) bool { return evs[i].t < evs[j].t })
	return evs
}

// intersectGeneric walks the sorted boundary crossings of both operands,
// tracking each operand's inside/outside state starting from its true
// state at the ray's origin, and reports the first crossing where the
// combined state turns true. This is exact for Inclusive, Additive, and
// Exclusive; Subtractive uses its own literal procedure instead (see
// intersectSubtractive and DESIGN.md).
func (o *Overlap) intersectGeneric(ray prim.Ray3) (*Hit, error) {
	insideA := containsPoint(o.A, ray.Origin)
	insideB := containsPoint(o.B, ray.Origin)
	state := combineInside(o.Mode, insideA, insideB)

	for _, ev := range o.events(ray) {
		if ev.fromA {
			insideA = !insideA
		} else {
			insideB = !insideB
		}
		newState := combineInside(o.Mode, insideA, insideB)
		if newState && !state {
			return &Hit{Object: o, T: ev.t, Point: ev.point, Normal: ev.normal}, nil
		}
		state = newState
	}
	return nil, nil
}

// intersectSubtractive follows the spec's literal A−B procedure: take
// A's nearest entry; if B covers that point, the ray is still inside
// the subtracted cavity, so resume the search for A's own boundary from
// just past where the ray leaves B, and report that surface unmodified.
func (o *Overlap) intersectSubtractive(ray prim.Ray3) (*Hit, error) {
	aHit, err := o.A.Intersect(ray)
	if err != nil || aHit == nil {
		return nil, err
	}
	if !containsPoint(o.B, aHit.Point) {
		return &Hit{Object: o, T: aHit.T, Point: aHit.Point, Normal: aHit.Normal}, nil
	}

	bExit, err := advancePast(o.B, ray, aHit.T)
	if err != nil || bExit == nil {
		return nil, err
	}
	resumed := advanceRay(ray, bExit.T)
	aNext, err := o.A.Intersect(resumed)
	if err != nil || aNext == nil {
		return nil, err
	}
	t := reparam(ray, aNext.Point)
	return &Hit{Object: o, T: t, Point: aNext.Point, Normal: aNext.Normal}, nil
}

func reparam(ray prim.Ray3, p prim.Point3) prim.Scalar {
	v := p.Sub(ray.Origin)
	denom := ray.Direction.Dot(ray.Direction)
	if denom == 0 {
		return 0
	}
	return v.Dot(ray.Direction) / denom
}

func advanceRay(ray prim.Ray3, t prim.Scalar) prim.Ray3 {
	dir := ray.Direction.MustNormalize()
	origin := ray.Solve(t).Add(dir.Scale(selfHitEpsilon * 10))
	return prim.NewRay3(origin, ray.Direction)
}

// advancePast intersects obj against ray resumed from just beyond
// afterT, reporting the hit's parameter against the original ray.
func advancePast(obj Object, ray prim.Ray3, afterT prim.Scalar) (*Hit, error) {
	sub := advanceRay(ray, afterT)
	h, err := obj.Intersect(sub)
	if err != nil || h == nil {
		return h, err
	}
	return &Hit{Object: h.Object, T: reparam(ray, h.Point), Point: h.Point, Normal: h.Normal}, nil
}

// hitsAlong marches forward along ray collecting up to max successive
// boundary crossings of obj, each reparametrized against the original
// ray's t.
func hitsAlong(obj Object, ray prim.Ray3, max int) []Hit {
	var hits []Hit
	cur := ray
	for i := 0; i < max; i++ {
		h, err := obj.Intersect(cur)
		if err != nil || h == nil {
			break
		}
		hits = append(hits, Hit{Object: h.Object, T: reparam(ray, h.Point), Point: h.Point, Normal: h.Normal})
		cur = advanceRay(cur, h.T)
	}
	return hits
}
