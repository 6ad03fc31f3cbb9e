package prim

// Plane is the coefficient form a*x + b*y + c*z + d = 0, together with a
// cached outward-facing unit normal.
type Plane struct {
	A, B, C, D Scalar
	normal     Vector3
}

// NewPlaneFromCoefficients builds a plane directly from its coefficient
// quadruple, normalizing the cached normal.
func NewPlaneFromCoefficients(a, b, c, d Scalar) (Plane, error) {
	n := Vector3{a, b, c}
	unit, err := n.Normalize()
	if err != nil {
		return Plane{}, errDegeneratef("plane has zero normal")
	}
	// Renormalize d along with the normal so A,B,C,D stay consistent.
	scale := unit.Magnitude() / n.Magnitude()
	return Plane{A: a * scale, B: b * scale, C: c * scale, D: d * scale, normal: unit}, nil
}

// NewPlaneFromNormalAndPoint builds a plane from a (not necessarily
// unit) normal and a point the plane passes through.
func NewPlaneFromNormalAndPoint(normal Vector3, point Point3) (Plane, error) {
	unit, err := normal.Normalize()
	if err != nil {
		return Plane{}, errDegeneratef("plane has zero normal")
	}
	d := -unit.Dot(point.ToVector3())
	return Plane{A: unit.X, B: unit.Y, C: unit.Z, D: d, normal: unit}, nil
}

// Normal returns the cached unit normal.
func (p Plane) Normal() Vector3 { return p.normal }

// Distance returns the signed Euclidean distance from pt to the plane.
func (p Plane) Distance(pt Point3) Scalar {
	return p.A*pt.X + p.B*pt.Y + p.C*pt.Z + p.D
}

// Contains reports whether line l lies entirely in the plane, tested by
// checking both l.Solve(0) and l.Solve(1) have zero signed distance.
func (p Plane) Contains(l Line3) bool {
	return NearlyZero(p.Distance(l.Solve(0))) && NearlyZero(p.Distance(l.Solve(1)))
}

// ContainsPoint reports whether pt lies on the plane within tolerance.
func (p Plane) ContainsPoint(pt Point3) bool {
	return NearlyZero(p.Distance(pt))
}
