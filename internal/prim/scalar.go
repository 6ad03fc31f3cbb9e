// Package prim implements primitives for 3D graphics: the fixed-dimension
// point and vector types, lines, rays, planes, spheres, the intersection
// algebra over them, and the small-root solvers the geometry layer needs.
package prim

import "math"

// Scalar is the underlying real type used throughout the geometry layer.
// The spec calls it P; double precision is used throughout.
type Scalar = float64

// Epsilon is the tolerance used for near-equality and "is this a zero
// pivot" checks across the geometry and matrix layers.
const Epsilon Scalar = 1e-9

// NearlyEqual reports whether a and b differ by no more than Epsilon,
// scaled by the larger operand's magnitude.
func NearlyEqual(a, b Scalar) bool {
	diff := math.Abs(a - b)
	if diff <= Epsilon {
		return true
	}
	scale := math.Max(1.0, math.Max(math.Abs(a), math.Abs(b)))
	return diff <= Epsilon*scale
}

// NearlyZero reports whether x is within Epsilon of zero. This is
// distinct from an exact-zero compare: prim keeps both because some
// invariants (e.g. "this vector is exactly the null vector") must use
// exact comparison while numerical tests must tolerate roundoff.
func NearlyZero(x Scalar) bool {
	return math.Abs(x) <= Epsilon
}

// Radians is a strong type for an angle measured in radians.
type Radians Scalar

// Degrees is a strong type for an angle measured in degrees.
type Degrees Scalar

// ToRadians converts an angle in degrees to radians.
func (d Degrees) ToRadians() Radians {
	return Radians(Scalar(d) * math.Pi / 180.0)
}

// ToDegrees converts an angle in radians to degrees.
func (r Radians) ToDegrees() Degrees {
	return Degrees(Scalar(r) * 180.0 / math.Pi)
}
