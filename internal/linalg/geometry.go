package linalg

import (
	"fmt"
	"math"

	"github.com/lumenray/raytrace/internal/prim"
	"github.com/lumenray/raytrace/rterr"
)

// MulVector3 applies a 3x3 matrix to a displacement vector.
func MulVector3(m Matrix, v prim.Vector3) (prim.Vector3, error) {
	if m.rows != 3 || m.cols != 3 {
		return prim.Vector3{}, fmt.Errorf("%w: MulVector3 requires a 3x3 matrix, got %dx%d", rterr.ErrDimensionMismatch, m.rows, m.cols)
	}
	x := mustAt(m, 0, 0)*v.X + mustAt(m, 0, 1)*v.Y + mustAt(m, 0, 2)*v.Z
	y := mustAt(m, 1, 0)*v.X + mustAt(m, 1, 1)*v.Y + mustAt(m, 1, 2)*v.Z
	z := mustAt(m, 2, 0)*v.X + mustAt(m, 2, 1)*v.Y + mustAt(m, 2, 2)*v.Z
	return prim.Vector3{X: x, Y: y, Z: z}, nil
}

// MulPoint3 applies a 3x3 matrix to a location; for an affine 4x4
// transform use MulPoint4 with a homogenized point instead.
func MulPoint3(m Matrix, p prim.Point3) (prim.Point3, error) {
	v, err := MulVector3(m, p.ToVector3())
	if err != nil {
		return prim.Point3{}, err
	}
	return v.AsPoint3(), nil
}

// MulPoint4 applies a 4x4 homogeneous transform to a homogenized point.
func MulPoint4(m Matrix, p prim.Point4) (prim.Point4, error) {
	if m.rows != 4 || m.cols != 4 {
		return prim.Point4{}, fmt.Errorf("%w: MulPoint4 requires a 4x4 matrix, got %dx%d", rterr.ErrDimensionMismatch, m.rows, m.cols)
	}
	x := mustAt(m, 0, 0)*p.X + mustAt(m, 0, 1)*p.Y + mustAt(m, 0, 2)*p.Z + mustAt(m, 0, 3)*p.W
	y := mustAt(m, 1, 0)*p.X + mustAt(m, 1, 1)*p.Y + mustAt(m, 1, 2)*p.Z + mustAt(m, 1, 3)*p.W
	z := mustAt(m, 2, 0)*p.X + mustAt(m, 2, 1)*p.Y + mustAt(m, 2, 2)*p.Z + mustAt(m, 2, 3)*p.W
	w := mustAt(m, 3, 0)*p.X + mustAt(m, 3, 1)*p.Y + mustAt(m, 3, 2)*p.Z + mustAt(m, 3, 3)*p.W
	return prim.Point4{X: x, Y: y, Z: z, W: w}, nil
}

// RotationMatrix3 builds the 3x3 orthonormal yaw-pitch-roll rotation
// matrix used by objects.Object's transform (yaw about Y, pitch about
// X, roll about Z, applied roll then pitch then yaw).
func RotationMatrix3(yaw, pitch, roll prim.Radians) Matrix {
	cy, sy := cosSin(yaw)
	cp, sp := cosSin(pitch)
	cr, sr := cosSin(roll)

	rz, _ := FromRows([][]Scalar{
		{cr, -sr, 0},
		{sr, cr, 0},
		{0, 0, 1},
	})
	rx, _ := FromRows([][]Scalar{
		{1, 0, 0},
		{0, cp, -sp},
		{0, sp, cp},
	})
	ry, _ := FromRows([][]Scalar{
		{cy, 0, sy},
		{0, 1, 0},
		{-sy, 0, cy},
	})
	yawPitch, _ := Mul(ry, rx)
	out, _ := Mul(yawPitch, rz)
	return out
}

func cosSin(a prim.Radians) (Scalar, Scalar) {
	return math.Cos(float64(a)), math.Sin(float64(a))
}
