// Package raytrace implements the scene container and the recursive
// trace evaluator (spec.md §4.10): given a world ray and an enclosing
// medium, it produces a radiance value by computing local illumination
// and combining it with reflected and refracted child rays. Render
// drives this evaluator over every pixel of a camera.Camera's image in
// parallel row-tiles, per spec.md §5.
package raytrace

import (
	"math"

	"github.com/lumenray/raytrace/color"
	"github.com/lumenray/raytrace/internal/prim"
	"github.com/lumenray/raytrace/lights"
	"github.com/lumenray/raytrace/mediums"
	"github.com/lumenray/raytrace/objects"
)

// Background maps a ray that hit nothing to a color, the hook spec.md
// §2's data-flow diagram calls "background(world_ray)". A constant
// background is the common case; ConstantBackground builds one.
type Background func(ray prim.Ray3) color.Color

// ConstantBackground returns a Background that ignores the ray and
// always reports c, the degenerate case used by every deterministic
// rendering scenario in spec.md §8.
func ConstantBackground(c color.Color) Background {
	return func(prim.Ray3) color.Color { return c }
}

// GradientBackground blends from top to bottom of the image by the
// ray direction's Y component, grounded on the teacher's Render
// (raytracer.go): `t := 0.5*(dir.Y+1); lerp(bgStart, bgEnd, t)`.
func GradientBackground(bottom, top color.Color) Background {
	return func(ray prim.Ray3) color.Color {
		dir := ray.Direction.MustNormalize()
		t := 0.5 * (dir.Y + 1.0)
		return bottom.Lerp(top, t)
	}
}

// boundedObject pairs a finite-bounds object with its precomputed
// world AABB, so the nearest-hit search can reject a miss without
// calling the object's own closed-form Intersect.
type boundedObject struct {
	obj   objects.Object
	bound objects.AABB
}

// Scene owns references to every object and light in a render, plus
// the medium that fills the space between them (spec.md §3: "the
// trace evaluator ... a default enclosing medium"). It never mutates
// the objects or lights it holds; callers configure transforms and
// materials before handing them to NewScene, per the data model's
// lifecycle note.
type Scene struct {
	Objects    []objects.Object
	Lights     []lights.Light
	Background Background
	Medium     mediums.Medium
	Config     Config

	finite    []boundedObject
	infinite  []objects.Object
	bounds    objects.AABB
	hasFinite bool
}

// NewScene partitions objs into finite- and infinite-bounds groups
// (spec.md §4.10 "Bounding the search") and fills in default Config
// values. Objects and lights are referenced, not copied; the caller
// retains ownership.
func NewScene(objs []objects.Object, lts []lights.Light, background Background, medium mediums.Medium, cfg Config) *Scene {
	if background == nil {
		background = ConstantBackground(color.Black)
	}
	s := &Scene{
		Objects:    objs,
		Lights:     lts,
		Background: background,
		Medium:     medium,
		Config:     cfg.withDefaults(),
	}
	s.partition()
	return s
}

func isInfiniteBox(b objects.AABB) bool {
	return math.IsInf(b.Min.X, -1) || math.IsInf(b.Max.X, 1) ||
		math.IsInf(b.Min.Y, -1) || math.IsInf(b.Max.Y, 1) ||
		math.IsInf(b.Min.Z, -1) || math.IsInf(b.Max.Z, 1)
}

func (s *Scene) partition() {
	s.finite = s.finite[:0]
	s.infinite = s.infinite[:0]
	for _, o := range s.Objects {
		b := o.WorldBounds()
		if isInfiniteBox(b) {
			s.infinite = append(s.infinite, o)
			continue
		}
		s.finite = append(s.finite, boundedObject{obj: o, bound: b})
		if !s.hasFinite {
			s.bounds = b
			s.hasFinite = true
		} else {
			s.bounds = s.bounds.Union(b)
		}
	}
}

// rayHitsAABB is the textbook slab test: for each axis, compute the
// entry/exit t of the ray against that pair of bounding planes and
// intersect the three intervals. An exactly-zero direction component
// is handled by checking that the origin lies inside that slab; a
// near-zero one gives very large t values that the interval
// intersection absorbs.
func rayHitsAABB(ray prim.Ray3, box objects.AABB) bool {
	tmin, tmax := math.Inf(-1), math.Inf(1)

	axis := func(origin, dir, lo, hi float64) bool {
		if dir == 0 {
			return origin >= lo && origin <= hi
		}
		t0 := (lo - origin) / dir
		t1 := (hi - origin) / dir
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tmin {
			tmin = t0
		}
		if t1 < tmax {
			tmax = t1
		}
		return tmin <= tmax
	}

	if !axis(ray.Origin.X, ray.Direction.X, box.Min.X, box.Max.X) {
		return false
	}
	if !axis(ray.Origin.Y, ray.Direction.Y, box.Min.Y, box.Max.Y) {
		return false
	}
	if !axis(ray.Origin.Z, ray.Direction.Z, box.Min.Z, box.Max.Z) {
		return false
	}
	return tmax >= 0
}

// selfHitDistSq is the squared-distance self-hit guard from spec.md
// §4.10 step 2: a candidate hit at or below this distance from the
// ray's own origin is treated as a self-intersection artifact, not a
// real forward hit.
const selfHitDistSq = prim.Epsilon * prim.Epsilon

// nearestHit walks the finite objects (pruned by their AABB) and the
// infinite objects (always tested), returning the closest forward hit
// strictly past the self-hit guard. Ties pick the first object in
// Scene.Objects order, which the finite/infinite split preserves
// within each group but not across them; spec.md does not specify tie
// behavior across that split and no rendering scenario depends on it.
func (s *Scene) nearestHit(ray prim.Ray3, stats *Stats) *objects.Hit {
	var best *objects.Hit
	consider := func(o objects.Object) {
		hit, err := o.Intersect(ray)
		if err != nil {
			stats.addDegenerate(1)
			return
		}
		if hit == nil {
			return
		}
		if hit.Point.Sub(ray.Origin).Dot(hit.Point.Sub(ray.Origin)) <= selfHitDistSq {
			return
		}
		if best == nil || hit.T < best.T {
			best = hit
		}
	}

	for _, fo := range s.finite {
		if !rayHitsAABB(ray, fo.bound) {
			continue
		}
		consider(fo.obj)
	}
	for _, o := range s.infinite {
		consider(o)
	}
	return best
}
