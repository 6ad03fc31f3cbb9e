package prim

import "testing"

func TestIntersectLineSpherePointsHit(t *testing.T) {
	sphere, err := NewSphere3(Origin3, 1)
	if err != nil {
		t.Fatalf("NewSphere3: %v", err)
	}
	// The line from (3,0,0) along -X crosses a unit sphere at the origin
	// at two points, (1,0,0) and (-1,0,0).
	l := NewLine3(P3(3, 0, 0), V3(-1, 0, 0))
	res := IntersectLineSphere(l, sphere)
	if res.Kind != KindPoints {
		t.Fatalf("IntersectLineSphere Kind = %v, want KindPoints", res.Kind)
	}
	foundNear := false
	for _, p := range res.Points {
		if p.NearlyEquals(P3(1, 0, 0)) {
			foundNear = true
		}
	}
	if !foundNear {
		t.Errorf("IntersectLineSphere points = %v, want one of them to be (1,0,0)", res.Points)
	}
}

func TestIntersectLinePlane(t *testing.T) {
	// Plane 2x + 3y + 4z + 1 = 0 intersected with line through (0,3,5)
	// direction (-1,1,4) gives point (30/17, 3-30/17, 5-120/17).
	plane, err := NewPlaneFromCoefficients(2, 3, 4, 1)
	if err != nil {
		t.Fatalf("NewPlaneFromCoefficients: %v", err)
	}
	l := NewLine3(P3(0, 3, 5), V3(-1, 1, 4))
	res := IntersectLinePlane(l, plane)
	if res.Kind != KindPoint {
		t.Fatalf("IntersectLinePlane Kind = %v, want KindPoint", res.Kind)
	}
	want := P3(30.0/17, 3-30.0/17, 5-120.0/17)
	if !res.Point.NearlyEquals(want) {
		t.Errorf("IntersectLinePlane() = %v, want %v", res.Point, want)
	}
}

func TestIntersectLineLineParallelDistinct(t *testing.T) {
	a := NewLine3(Origin3, V3(1, 0, 0))
	b := NewLine3(P3(0, 1, 0), V3(1, 0, 0))
	res := IntersectLineLine(a, b)
	if res.Kind != KindNone {
		t.Errorf("IntersectLineLine() Kind = %v, want KindNone", res.Kind)
	}
}

func TestIntersectLineLineCoincident(t *testing.T) {
	a := NewLine3(Origin3, V3(1, 0, 0))
	b := NewLine3(P3(2, 0, 0), V3(-3, 0, 0))
	res := IntersectLineLine(a, b)
	if res.Kind != KindLine {
		t.Errorf("IntersectLineLine() Kind = %v, want KindLine", res.Kind)
	}
}

func TestIntersectPlanePlaneCoincident(t *testing.T) {
	a, _ := NewPlaneFromCoefficients(1, 0, 0, -1)
	b, _ := NewPlaneFromCoefficients(2, 0, 0, -2)
	res := IntersectPlanePlane(a, b)
	if res.Kind != KindPlane {
		t.Errorf("IntersectPlanePlane() Kind = %v, want KindPlane", res.Kind)
	}
}

func TestIntersectPlanePlaneLine(t *testing.T) {
	a, _ := NewPlaneFromCoefficients(1, 0, 0, 0) // x = 0
	b, _ := NewPlaneFromCoefficients(0, 1, 0, 0) // y = 0
	res := IntersectPlanePlane(a, b)
	if res.Kind != KindLine {
		t.Fatalf("IntersectPlanePlane() Kind = %v, want KindLine", res.Kind)
	}
	if !res.Line.Direction.Parallel(Z3) {
		t.Errorf("IntersectPlanePlane() line direction = %v, want parallel to Z", res.Line.Direction)
	}
}
