package prim

import "math"

// Vector2 is a 2D displacement, used for texture-space math and the
// camera's image-plane coordinates.
type Vector2 struct {
	X, Y Scalar
}

// Point2 is a 2D location.
type Point2 struct {
	X, Y Scalar
}

func V2(x, y Scalar) Vector2 { return Vector2{X: x, Y: y} }
func P2(x, y Scalar) Point2  { return Point2{X: x, Y: y} }

func (v Vector2) Add(o Vector2) Vector2  { return Vector2{v.X + o.X, v.Y + o.Y} }
func (v Vector2) Sub(o Vector2) Vector2  { return Vector2{v.X - o.X, v.Y - o.Y} }
func (v Vector2) Neg() Vector2           { return Vector2{-v.X, -v.Y} }
func (v Vector2) Scale(s Scalar) Vector2 { return Vector2{v.X * s, v.Y * s} }
func (v Vector2) Dot(o Vector2) Scalar   { return v.X*o.X + v.Y*o.Y }

// Magnitude uses math.Hypot to avoid intermediate overflow, per spec.
func (v Vector2) Magnitude() Scalar { return math.Hypot(v.X, v.Y) }

func (v Vector2) Normalize() (Vector2, error) {
	m := v.Magnitude()
	if m == 0 {
		return Vector2{}, errDomainf("Normalize: zero magnitude vector")
	}
	return v.Scale(1.0 / m), nil
}

func (v Vector2) IsZero() bool { return v.X == 0.0 && v.Y == 0.0 }

// Homogenize lifts a 2D point to 3D by appending 1, for matrix-transform
// boundaries that operate in homogeneous coordinates.
func (p Point2) Homogenize() Point3 { return Point3{p.X, p.Y, 1} }

func (p Point2) Add(v Vector2) Point2 { return Point2{p.X + v.X, p.Y + v.Y} }
func (p Point2) Sub(o Point2) Vector2 { return Vector2{p.X - o.X, p.Y - o.Y} }
