package prim

// Sphere3 stores a center and a positive radius. StrictSurfaceCheck
// controls whether NormalAt flags (by returning an error) points whose
// distance to the center differs from the radius by more than
// Epsilon*radius. StrictSurfaceCheck defaults to false (lenient),
// matching the original implementation's behavior: NormalAt then
// returns the normalized direction from the center for any point,
// without logging or returning an error.
type Sphere3 struct {
	Center             Point3
	Radius             Scalar
	StrictSurfaceCheck bool
}

func NewSphere3(center Point3, radius Scalar) (Sphere3, error) {
	if radius <= 0 {
		return Sphere3{}, errDomainf("sphere radius must be positive, got %v", radius)
	}
	return Sphere3{Center: center, Radius: radius}, nil
}

// Contains reports whether p lies within the closed ball.
func (s Sphere3) Contains(p Point3) bool {
	return s.Center.Distance(p) <= s.Radius+Epsilon
}

// OnSurface reports whether p lies on the sphere's surface within
// Epsilon*radius.
func (s Sphere3) OnSurface(p Point3) bool {
	d := s.Center.Distance(p)
	tol := Epsilon * s.Radius
	if tol < Epsilon {
		tol = Epsilon
	}
	return d >= s.Radius-tol && d <= s.Radius+tol
}

// NormalAt returns the outward unit normal at p, which is assumed to lie
// on the surface. If StrictSurfaceCheck is set and p is off-surface, an
// error wrapping rterr.ErrDomainError is returned instead of a null
// vector.
func (s Sphere3) NormalAt(p Point3) (Vector3, error) {
	if s.StrictSurfaceCheck && !s.OnSurface(p) {
		return Vector3{}, errDomainf("NormalAt: point %v is not on sphere surface", p)
	}
	d := p.Sub(s.Center)
	n, err := d.Normalize()
	if err != nil {
		// Lenient mode: point coincides with the center, return the null
		// vector rather than propagating the error.
		return Vector3{}, nil
	}
	return n, nil
}
