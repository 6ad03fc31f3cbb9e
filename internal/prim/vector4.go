package prim

import "math"

// Vector4 and Point4 round out the D in {2,3,4} family: D=4 is used for
// homogeneous-coordinate results of the matrix-transform boundary.
type Vector4 struct {
	X, Y, Z, W Scalar
}

type Point4 struct {
	X, Y, Z, W Scalar
}

func V4(x, y, z, w Scalar) Vector4 { return Vector4{X: x, Y: y, Z: z, W: w} }
func P4(x, y, z, w Scalar) Point4  { return Point4{X: x, Y: y, Z: z, W: w} }

func (v Vector4) Add(o Vector4) Vector4 {
	return Vector4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}
func (v Vector4) Sub(o Vector4) Vector4 {
	return Vector4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}
func (v Vector4) Scale(s Scalar) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}
func (v Vector4) Dot(o Vector4) Scalar {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}
func (v Vector4) Magnitude() Scalar {
	return math.Sqrt(v.Dot(v))
}

// Homogenize lifts a 3D point to 4D by appending 1.
func (p Point3) Homogenize() Point4 { return Point4{p.X, p.Y, p.Z, 1} }

// Dehomogenize projects a 4D point back to 3D by dividing through W.
func (p Point4) Dehomogenize() Point3 {
	if p.W == 0 || p.W == 1 {
		return Point3{p.X, p.Y, p.Z}
	}
	inv := 1.0 / p.W
	return Point3{p.X * inv, p.Y * inv, p.Z * inv}
}

func (p Point4) Add(v Vector4) Point4 {
	return Point4{p.X + v.X, p.Y + v.Y, p.Z + v.Z, p.W + v.W}
}
func (p Point4) Sub(o Point4) Vector4 {
	return Vector4{p.X - o.X, p.Y - o.Y, p.Z - o.Z, p.W - o.W}
}
