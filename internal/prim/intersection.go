package prim

// IntersectionKind tags the variant carried by an IntersectionResult.
type IntersectionKind int

const (
	// KindNone carries no payload: the geometric objects do not meet.
	KindNone IntersectionKind = iota
	// KindPoint carries exactly one point.
	KindPoint
	// KindPoints carries a small ordered list of points (typically two,
	// for sphere-line or quadric-line intersections).
	KindPoints
	// KindLine carries a line (two coincident lines, or two planes that
	// meet along a line).
	KindLine
	// KindPlane carries a plane (two coincident planes).
	KindPlane
)

// IntersectionResult is the tagged union returned by the intersection
// algebra; exactly one of the payload fields is meaningful, selected by
// Kind.
type IntersectionResult struct {
	Kind   IntersectionKind
	Point  Point3
	Points []Point3
	Line   Line3
	Plane  Plane
}

func NoneResult() IntersectionResult { return IntersectionResult{Kind: KindNone} }

func PointResult(p Point3) IntersectionResult {
	return IntersectionResult{Kind: KindPoint, Point: p}
}

func PointsResult(pts ...Point3) IntersectionResult {
	return IntersectionResult{Kind: KindPoints, Points: pts}
}

func LineResult(l Line3) IntersectionResult {
	return IntersectionResult{Kind: KindLine, Line: l}
}

func PlaneResult(p Plane) IntersectionResult {
	return IntersectionResult{Kind: KindPlane, Plane: p}
}

// IntersectLineLine returns the coarsest variant consistent with the
// geometric answer: coincident lines yield Line, lines sharing only a
// point yield Point, parallel-non-coincident yield None, skew yield
// None.
func IntersectLineLine(a, b Line3) IntersectionResult {
	if a.Direction.Parallel(b.Direction) {
		if a.Equals(b) {
			return LineResult(a)
		}
		return NoneResult()
	}
	// Skew or intersecting: solve for parameters s,t minimizing distance,
	// then check the closest points coincide.
	w0 := a.Position.Sub(b.Position)
	da, db := a.Direction, b.Direction
	aDotA := da.Dot(da)
	aDotB := da.Dot(db)
	bDotB := db.Dot(db)
	aDotW := da.Dot(w0)
	bDotW := db.Dot(w0)

	denom := aDotA*bDotB - aDotB*aDotB
	if NearlyZero(denom) {
		return NoneResult()
	}
	s := (aDotB*bDotW - bDotB*aDotW) / denom
	t := (aDotA*bDotW - aDotB*aDotW) / denom

	pa := a.Solve(s)
	pb := b.Solve(t)
	if pa.NearlyEquals(pb) {
		return PointResult(pa)
	}
	return NoneResult()
}

// IntersectLinePlane returns the point where l crosses p, or None if the
// line is parallel to the plane, or Line if the line lies in the plane.
func IntersectLinePlane(l Line3, p Plane) IntersectionResult {
	normal := p.Normal()
	denom := normal.Dot(l.Direction)
	if NearlyZero(denom) {
		if p.ContainsPoint(l.Position) {
			return LineResult(l)
		}
		return NoneResult()
	}
	t := -(normal.Dot(l.Position.ToVector3()) + p.D) / denom
	return PointResult(l.Solve(t))
}

// IntersectPlanePlane returns Plane for coincident planes, else a Line
// formed from the cross of the normals and a point found from solving
// the stacked coefficient system for a particular solution.
func IntersectPlanePlane(a, b Plane) IntersectionResult {
	na, nb := a.Normal(), b.Normal()
	dir := na.Cross(nb)
	if dir.IsNearlyZero() {
		// Parallel planes: coincident iff a's point satisfies b's equation.
		// Pick any point on a (project the origin onto a) and test it.
		pointOnA := Origin3.Add(na.Scale(-a.D))
		if NearlyZero(b.Distance(pointOnA)) {
			return PlaneResult(a)
		}
		return NoneResult()
	}
	// Solve the 2x3 system [na; nb] * x = [-a.D; -b.D] for a particular
	// point on the intersection line. Drop the coordinate where dir has
	// its largest magnitude component to keep the 2x2 subsystem
	// well-conditioned.
	point, ok := solveTwoPlanePoint(a, b, dir)
	if !ok {
		return NoneResult()
	}
	unitDir, err := dir.Normalize()
	if err != nil {
		return NoneResult()
	}
	return LineResult(NewLine3(point, unitDir))
}

func solveTwoPlanePoint(a, b Plane, dir Vector3) (Point3, bool) {
	absX, absY, absZ := abs(dir.X), abs(dir.Y), abs(dir.Z)
	switch {
	case absZ >= absX && absZ >= absY:
		// Set z = 0, solve for x, y.
		det := a.A*b.B - b.A*a.B
		if NearlyZero(det) {
			return Point3{}, false
		}
		x := (-a.D*b.B - (-b.D)*a.B) / det
		y := (a.A*(-b.D) - b.A*(-a.D)) / det
		return Point3{X: x, Y: y, Z: 0}, true
	case absY >= absX:
		// Set y = 0, solve for x, z.
		det := a.A*b.C - b.A*a.C
		if NearlyZero(det) {
			return Point3{}, false
		}
		x := (-a.D*b.C - (-b.D)*a.C) / det
		z := (a.A*(-b.D) - b.A*(-a.D)) / det
		return Point3{X: x, Y: 0, Z: z}, true
	default:
		// Set x = 0, solve for y, z.
		det := a.B*b.C - b.B*a.C
		if NearlyZero(det) {
			return Point3{}, false
		}
		y := (-a.D*b.C - (-b.D)*a.C) / det
		z := (a.B*(-b.D) - b.B*(-a.D)) / det
		return Point3{X: 0, Y: y, Z: z}, true
	}
}

func abs(x Scalar) Scalar {
	if x < 0 {
		return -x
	}
	return x
}

// IntersectLineSphere substitutes the parametric line into
// ||p - center||^2 = r^2 and solves the resulting quadratic for t. Two
// real roots yield Points; a double root yields Point; no real roots
// yield None.
func IntersectLineSphere(l Line3, s Sphere3) IntersectionResult {
	oc := l.Position.Sub(s.Center)
	a := l.Direction.Dot(l.Direction)
	b := 2 * l.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	t0, t1 := SolveQuadratic(a, b, c)
	if isNaNScalar(t0) {
		return NoneResult()
	}
	if NearlyEqual(t0, t1) {
		return PointResult(l.Solve(t0))
	}
	return PointsResult(l.Solve(t0), l.Solve(t1))
}

func isNaNScalar(x Scalar) bool { return x != x }
