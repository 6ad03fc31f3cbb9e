package prim

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approxOpts = cmpopts.EquateApprox(1e-7, 0.0)

func TestNormalizeSimple(t *testing.T) {
	tests := []struct {
		v    Vector3
		want Vector3
	}{
		{v: Vector3{X: 2, Y: 0, Z: 0}, want: Vector3{X: 1, Y: 0, Z: 0}},
		{v: Vector3{X: 0, Y: -12, Z: 5}, want: Vector3{X: 0, Y: -12.0 / 13, Z: 5.0 / 13}},
		{v: Vector3{X: 3, Y: 4, Z: 0}, want: Vector3{X: 3.0 / 5.0, Y: 4.0 / 5.0, Z: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			got, err := tt.v.Normalize()
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if diff := cmp.Diff(got, tt.want, approxOpts); diff != "" {
				t.Errorf("Normalize() mismatch (-got +want):\n%s", diff)
			}
		})
	}
}

func TestNormalizeZeroIsError(t *testing.T) {
	if _, err := (Vector3{}).Normalize(); err == nil {
		t.Errorf("Normalize() on zero vector: want error, got nil")
	}
}

func TestCrossBasis(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Vector3
		want    Vector3
	}{
		{"X cross Y", X3, Y3, Z3},
		{"Y cross Z", Y3, Z3, X3},
		{"Z cross X", Z3, X3, Y3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Cross(tt.b)
			if diff := cmp.Diff(got, tt.want, approxOpts); diff != "" {
				t.Errorf("Cross() mismatch (-got +want):\n%s", diff)
			}
		})
	}
}

func TestDotOrthogonal(t *testing.T) {
	if !X3.Orthogonal(Y3) {
		t.Errorf("X3 and Y3 should be orthogonal")
	}
	if V3(1, 1, 0).Orthogonal(Y3) {
		t.Errorf("(1,1,0) and Y3 should not be orthogonal")
	}
}

func TestRodriguesHalfTurn(t *testing.T) {
	got := Rodrigues(Z3, V3(1, 0, 1), math.Pi)
	want := V3(-1, 0, 1)
	if diff := cmp.Diff(got, want, approxOpts); diff != "" {
		t.Errorf("Rodrigues() mismatch (-got +want):\n%s", diff)
	}
}

func TestTripleCyclic(t *testing.T) {
	u, v, w := V3(1, 2, 3), V3(-1, 0, 2), V3(4, 1, -2)
	t1 := Triple(u, v, w)
	t2 := Triple(v, w, u)
	t3 := Triple(w, u, v)
	if diff := cmp.Diff(t1, t2, approxOpts); diff != "" {
		t.Errorf("Triple(u,v,w) vs Triple(v,w,u) mismatch:\n%s", diff)
	}
	if diff := cmp.Diff(t1, t3, approxOpts); diff != "" {
		t.Errorf("Triple(u,v,w) vs Triple(w,u,v) mismatch:\n%s", diff)
	}
}

func TestPointMinusPointIsVector(t *testing.T) {
	a, b := P3(3, 4, 5), P3(1, 1, 1)
	got := a.Sub(b)
	want := V3(2, 3, 4)
	if diff := cmp.Diff(got, want, approxOpts); diff != "" {
		t.Errorf("Point.Sub() mismatch (-got +want):\n%s", diff)
	}
}
