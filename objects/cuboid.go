package objects

import (
	"fmt"
	"math"

	"github.com/lumenray/raytrace/internal/prim"
	"github.com/lumenray/raytrace/mediums"
	"github.com/lumenray/raytrace/rterr"
)

// Cuboid is an axis-aligned box in object space, centered at the
// origin with per-axis half-extents, intersected via the slab method
// over the three pairs of bounding planes.
type Cuboid struct {
	base
	HalfX, HalfY, HalfZ prim.Scalar
}

func NewCuboid(halfX, halfY, halfZ prim.Scalar, m *mediums.Medium) (*Cuboid, error) {
	if halfX <= 0 || halfY <= 0 || halfZ <= 0 {
		return nil, fmt.Errorf("%w: cuboid half-extents must be positive, got (%v,%v,%v)", rterr.ErrDomainError, halfX, halfY, halfZ)
	}
	return &Cuboid{base: newBase(KindCuboid, m), HalfX: halfX, HalfY: halfY, HalfZ: halfZ}, nil
}

func (c *Cuboid) WorldBounds() AABB {
	local := boxFromHalfExtents(prim.Origin3, c.HalfX, c.HalfY, c.HalfZ)
	return transformAABB(c.Transform, local)
}

type slabFace int

const (
	faceNone slabFace = iota
	faceNegX
	facePosX
	faceNegY
	facePosY
	faceNegZ
	facePosZ
)

func (c *Cuboid) Intersect(ray prim.Ray3) (*Hit, error) {
	local := c.ReverseRay(ray)
	tMin, tMax := math.Inf(-1), math.Inf(1)
	enterFace, exitFace := faceNone, faceNone

	type axis struct {
		origin, dir, half prim.Scalar
		neg, pos          slabFace
	}
	axes := [3]axis{
		{local.Origin.X, local.Direction.X, c.HalfX, faceNegX, facePosX},
		{local.Origin.Y, local.Direction.Y, c.HalfY, faceNegY, facePosY},
		{local.Origin.Z, local.Direction.Z, c.HalfZ, faceNegZ, facePosZ},
	}
	for _, a := range axes {
		if prim.NearlyZero(a.dir) {
			if a.origin < -a.half || a.origin > a.half {
				return nil, nil
			}
			continue
		}
		t0 := (-a.half - a.origin) / a.dir
		face0, face1 := a.neg, a.pos
		t1 := (a.half - a.origin) / a.dir
		if t0 > t1 {
			t0, t1 = t1, t0
			face0, face1 = face1, face0
		}
		if t0 > tMin {
			tMin = t0
			enterFace = face0
		}
		if t1 < tMax {
			tMax = t1
			exitFace = face1
		}
		if tMin > tMax {
			return nil, nil
		}
	}

	t := tMin
	face := enterFace
	if t <= selfHitEpsilon {
		t = tMax
		face = exitFace
		if t <= selfHitEpsilon {
			return nil, nil
		}
	}

	objectPoint := local.Solve(t)
	normalObj := faceNormal(face)
	worldPoint := c.ForwardTransform(objectPoint)
	worldNormal := c.ForwardNormal(normalObj)
	return &Hit{Object: c, T: t, Point: worldPoint, Normal: worldNormal}, nil
}

func faceNormal(f slabFace) prim.Vector3 {
	switch f {
	case faceNegX:
		return prim.V3(-1, 0, 0)
	case facePosX:
		return prim.V3(1, 0, 0)
	case faceNegY:
		return prim.V3(0, -1, 0)
	case facePosY:
		return prim.V3(0, 1, 0)
	case faceNegZ:
		return prim.V3(0, 0, -1)
	case facePosZ:
		return prim.V3(0, 0, 1)
	default:
		return prim.V3(0, 0, 1)
	}
}

func (c *Cuboid) Normal(worldPoint prim.Point3) (prim.Vector3, error) {
	local := c.ReverseTransform(worldPoint)
	best := faceNegX
	bestDist := math.Inf(1)
	candidates := []struct {
		face slabFace
		dist prim.Scalar
	}{
		{faceNegX, math.Abs(local.X + c.HalfX)},
		{facePosX, math.Abs(local.X - c.HalfX)},
		{faceNegY, math.Abs(local.Y + c.HalfY)},
		{facePosY, math.Abs(local.Y - c.HalfY)},
		{faceNegZ, math.Abs(local.Z + c.HalfZ)},
		{facePosZ, math.Abs(local.Z - c.HalfZ)},
	}
	for _, cand := range candidates {
		if cand.dist < bestDist {
			bestDist = cand.dist
			best = cand.face
		}
	}
	return c.ForwardNormal(faceNormal(best)), nil
}

func (c *Cuboid) Map(worldPoint prim.Point3) (u, v prim.Scalar) {
	local := c.ReverseTransform(worldPoint)
	return planarUV((local.X+c.HalfX)/(2*c.HalfX), (local.Y+c.HalfY)/(2*c.HalfY))
}

// containsPoint implements solidContainer for the Boolean composer's
// inside/outside seeding.
func (c *Cuboid) containsPoint(p prim.Point3) bool {
	local := c.ReverseTransform(p)
	return local.X >= -c.HalfX-selfHitEpsilon && local.X <= c.HalfX+selfHitEpsilon &&
		local.Y >= -c.HalfY-selfHitEpsilon && local.Y <= c.HalfY+selfHitEpsilon &&
		local.Z >= -c.HalfZ-selfHitEpsilon && local.Z <= c.HalfZ+selfHitEpsilon
}
