package objects

import (
	"math"

	"github.com/lumenray/raytrace/internal/prim"
)

// sphericalUV maps a vector from a sphere's center to (u, v) in
// [0,1]x[0,1] using longitude/latitude, the natural parameterization
// spec.md §4.6 names for the sphere surface.
func sphericalUV(p prim.Vector3) (u, v prim.Scalar) {
	r := p.Magnitude()
	if r == 0 {
		return 0, 0.5
	}
	lat := math.Acos(clampUnit(p.Y / r))
	lon := math.Atan2(p.Z, p.X)
	u = (lon + math.Pi) / (2 * math.Pi)
	v = lat / math.Pi
	return u, v
}

// planarUV maps the object-space x/y plane directly to (u, v), the
// natural parameterization for plane, square, and cuboid faces.
func planarUV(x, y prim.Scalar) (u, v prim.Scalar) { return x, y }

func clampUnit(x prim.Scalar) prim.Scalar {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}
