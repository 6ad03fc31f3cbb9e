package prim

import (
	"math"
	"testing"
)

func TestSolveQuadraticTwoRoots(t *testing.T) {
	// x^2 - 3x + 2 = 0 -> roots 1, 2
	r0, r1 := SolveQuadratic(1, -3, 2)
	if !NearlyEqual(r0, 1) || !NearlyEqual(r1, 2) {
		t.Errorf("SolveQuadratic(1,-3,2) = (%v, %v), want (1, 2)", r0, r1)
	}
}

func TestSolveQuadraticNoRealRoots(t *testing.T) {
	r0, r1 := SolveQuadratic(1, 0, 1)
	if !math.IsNaN(r0) || !math.IsNaN(r1) {
		t.Errorf("SolveQuadratic(1,0,1) = (%v, %v), want NaN roots", r0, r1)
	}
}

func TestSolveCubicKnownRoot(t *testing.T) {
	// (x-1)(x-2)(x-3) = x^3 - 6x^2 + 11x - 6
	r0, r1, r2 := SolveCubic(-6, 11, -6)
	roots := []Scalar{r0, r1, r2}
	for _, want := range []Scalar{1, 2, 3} {
		found := false
		for _, r := range roots {
			if !math.IsNaN(r) && NearlyEqual(r, want) {
				found = true
			}
		}
		if !found {
			t.Errorf("SolveCubic(-6,11,-6) missing expected root %v, got %v", want, roots)
		}
	}
}

func TestSolveQuarticBiquadratic(t *testing.T) {
	// x^4 - 5x^2 + 4 = 0 -> roots +-1, +-2
	r0, r1, r2, r3 := SolveQuartic(1, 0, -5, 0, 4)
	roots := []Scalar{r0, r1, r2, r3}
	for _, want := range []Scalar{1, -1, 2, -2} {
		found := false
		for _, r := range roots {
			if !math.IsNaN(r) && NearlyEqual(r, want) {
				found = true
			}
		}
		if !found {
			t.Errorf("SolveQuartic(1,0,-5,0,4) missing expected root %v, got %v", want, roots)
		}
	}
}
