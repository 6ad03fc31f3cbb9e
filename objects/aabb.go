package objects

import (
	"math"

	"github.com/lumenray/raytrace/internal/prim"
)

// AABB is a world-space axis-aligned bounding box. Min/Max components
// may be infinite for open surfaces (planes, unbounded quadrics), per
// the Object invariant that world bounds must contain every point
// intersect can return, even when that set is unbounded.
type AABB struct {
	Min, Max prim.Point3
}

// InfiniteAABB bounds everything; used by surfaces with at least one
// open axis.
func InfiniteAABB() AABB {
	inf := math.Inf(1)
	return AABB{Min: prim.P3(-inf, -inf, -inf), Max: prim.P3(inf, inf, inf)}
}

// Union returns the smallest box containing both a and b.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		Min: prim.P3(math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y), math.Min(b.Min.Z, o.Min.Z)),
		Max: prim.P3(math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y), math.Max(b.Max.Z, o.Max.Z)),
	}
}

// Contains reports whether p lies within the box, inclusive of the
// boundary.
func (b AABB) Contains(p prim.Point3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

func boxFromHalfExtents(center prim.Point3, hx, hy, hz prim.Scalar) AABB {
	return AABB{
		Min: prim.P3(center.X-hx, center.Y-hy, center.Z-hz),
		Max: prim.P3(center.X+hx, center.Y+hy, center.Z+hz),
	}
}

// transformAABB maps a finite object-space box into world space by
// transforming its eight corners and taking the axis-aligned envelope;
// an infinite local box (any open axis) maps to InfiniteAABB directly,
// since rotating an unbounded axis is still unbounded.
func transformAABB(t Transform, local AABB) AABB {
	if math.IsInf(local.Min.X, -1) || math.IsInf(local.Max.X, 1) ||
		math.IsInf(local.Min.Y, -1) || math.IsInf(local.Max.Y, 1) ||
		math.IsInf(local.Min.Z, -1) || math.IsInf(local.Max.Z, 1) {
		return InfiniteAABB()
	}
	corners := [8]prim.Point3{
		prim.P3(local.Min.X, local.Min.Y, local.Min.Z),
		prim.P3(local.Min.X, local.Min.Y, local.Max.Z),
		prim.P3(local.Min.X, local.Max.Y, local.Min.Z),
		prim.P3(local.Min.X, local.Max.Y, local.Max.Z),
		prim.P3(local.Max.X, local.Min.Y, local.Min.Z),
		prim.P3(local.Max.X, local.Min.Y, local.Max.Z),
		prim.P3(local.Max.X, local.Max.Y, local.Min.Z),
		prim.P3(local.Max.X, local.Max.Y, local.Max.Z),
	}
	world := t.ForwardPoint(corners[0])
	out := AABB{Min: world, Max: world}
	for _, c := range corners[1:] {
		w := t.ForwardPoint(c)
		out = out.Union(AABB{Min: w, Max: w})
	}
	return out
}
