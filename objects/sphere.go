package objects

import (
	"fmt"

	"github.com/lumenray/raytrace/internal/prim"
	"github.com/lumenray/raytrace/mediums"
	"github.com/lumenray/raytrace/rterr"
)

// Sphere is centered at the object-space origin with object-space
// radius Radius; the inherited Transform's scale applies on top of
// that, so an ellipsoid of revolution is just a non-uniformly scaled
// Sphere sharing this same closed form.
type Sphere struct {
	base
	Radius prim.Scalar
}

// NewSphere builds a sphere of the given object-space radius and
// medium, placed at the identity transform.
func NewSphere(radius prim.Scalar, m *mediums.Medium) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: sphere radius must be positive, got %v", rterr.ErrDomainError, radius)
	}
	return &Sphere{base: newBase(KindSphere, m), Radius: radius}, nil
}

func (s *Sphere) WorldBounds() AABB {
	local := boxFromHalfExtents(prim.Origin3, s.Radius, s.Radius, s.Radius)
	return transformAABB(s.Transform, local)
}

// Intersect transforms the world ray into object space, runs the
// quadratic sphere test from the intersection algebra, and reports the
// nearest root with a positive, non-self-hit t. Grounded on the
// teacher's Sphere.Intersect (raytracer.go): the same quadratic
// ray-sphere test, generalized to an arbitrary object-space radius and
// an explicit world/object transform pair.
func (s *Sphere) Intersect(ray prim.Ray3) (*Hit, error) {
	local := s.ReverseRay(ray)
	sphere, err := prim.NewSphere3(prim.Origin3, s.Radius)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", rterr.ErrGeometryDegenerate, err)
	}
	res := prim.IntersectLineSphere(local.AsLine(), sphere)

	var candidates []prim.Scalar
	switch res.Kind {
	case prim.KindPoint:
		if t, ok := local.AsLine().SolveFor(res.Point); ok {
			candidates = append(candidates, t)
		}
	case prim.KindPoints:
		for _, p := range res.Points {
			if t, ok := local.AsLine().SolveFor(p); ok {
				candidates = append(candidates, t)
			}
		}
	default:
		return nil, nil
	}

	bestT, ok := nearestForwardT(candidates)
	if !ok {
		return nil, nil
	}

	objectPoint := local.Solve(bestT)
	normalObj, err := sphere.NormalAt(objectPoint)
	if err != nil {
		return nil, nil
	}

	worldPoint := s.ForwardTransform(objectPoint)
	worldNormal := s.ForwardNormal(normalObj)
	return &Hit{Object: s, T: bestT, Point: worldPoint, Normal: worldNormal}, nil
}

func (s *Sphere) Normal(worldPoint prim.Point3) (prim.Vector3, error) {
	sphere := prim.Sphere3{Center: prim.Origin3, Radius: s.Radius}
	objectPoint := s.ReverseTransform(worldPoint)
	n, err := sphere.NormalAt(objectPoint)
	if err != nil {
		return prim.Vector3{}, err
	}
	return s.ForwardNormal(n), nil
}

// Map returns the spherical (longitude, latitude) parameterization of a
// world-space surface point, normalized to [0,1]x[0,1].
func (s *Sphere) Map(worldPoint prim.Point3) (u, v prim.Scalar) {
	p := s.ReverseTransform(worldPoint).Sub(prim.Origin3)
	return sphericalUV(p)
}

// containsPoint implements solidContainer for the Boolean composer's
// inside/outside seeding.
func (s *Sphere) containsPoint(p prim.Point3) bool {
	local := s.ReverseTransform(p).Sub(prim.Origin3)
	return local.Dot(local) <= s.Radius*s.Radius+selfHitEpsilon
}

// nearestForwardT picks the smallest candidate strictly greater than
// selfHitEpsilon, the shared "valid forward hit" rule every closed-form
// surface in this package applies to its root set.
func nearestForwardT(candidates []prim.Scalar) (prim.Scalar, bool) {
	best := prim.Scalar(0)
	found := false
	for _, t := range candidates {
		if t <= selfHitEpsilon {
			continue
		}
		if !found || t < best {
			best = t
			found = true
		}
	}
	return best, found
}
