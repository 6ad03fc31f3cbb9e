package mediums

import (
	"math"

	"github.com/lumenray/raytrace/color"
	"github.com/lumenray/raytrace/internal/prim"
)

// Palette is an ordered list of colors indexed by the texture
// functions below. Contours2 needs at least 8 entries; the rest need at
// least 2 (Checkerboard2 reads entries up to pal[7], modulo len(pal)).
type Palette []color.Color

// Texture3 maps an object-space surface point to a color, the
// function signature mediums.Medium.DiffuseFn and friends are built
// from.
type Texture3 func(p prim.Point3) color.Color

// Texture2 is the image-space analogue of Texture3, used for
// procedural textures defined directly over a unit square (the teacher
// corpus's "happy face" test pattern).
type Texture2 func(p prim.Point2) color.Color

func wrap(v float64) float64 {
	return math.Mod(v, 1.0)
}

func isNonNegative(v float64) bool { return v >= 0 }

// Checkerboard2 tiles a checker pattern over the unit square. Each sign
// combination of the wrapped (u, v) uses its own pair of palette
// entries: pal[0]/pal[1] when both are non-negative, and pal[3]/pal[2],
// pal[7]/pal[6], pal[4]/pal[5] otherwise, each indexed modulo len(pal).
func Checkerboard2(pal Palette) Texture2 {
	return func(p prim.Point2) color.Color {
		return checkerboard2(p, pal)
	}
}

func checkerboard2(p prim.Point2, pal Palette) color.Color {
	const h = 0.5
	u := wrap(p.X)
	v := wrap(p.Y)
	uPos := isNonNegative(u)
	vPos := isNonNegative(v)

	switch {
	case uPos && vPos:
		if (u < h && v < h) || (u >= h && v >= h) {
			return pal[0]
		}
		return pal[1]
	case !uPos && vPos:
		if (u > -h && v < h) || (u <= -h && v >= h) {
			return pal[3%len(pal)]
		}
		return pal[2%len(pal)]
	case uPos && !vPos:
		if (u < h && v > -h) || (u >= h && v <= -h) {
			return pal[7%len(pal)]
		}
		return pal[6%len(pal)]
	default:
		if (u > -h && v > -h) || (u <= -h && v <= -h) {
			return pal[4%len(pal)]
		}
		return pal[5%len(pal)]
	}
}

// Checkerboard3 tiles a 2-color checker volume over object space: the
// cube containing p gets pal[0] or pal[1] depending on the parity of
// its integer-floored (x, y, z) cell index, so adjacent cells along
// any axis always differ.
func Checkerboard3(pal Palette) Texture3 {
	return func(p prim.Point3) color.Color {
		parity := cellParity(p.X) ^ cellParity(p.Y) ^ cellParity(p.Z)
		if parity == 0 {
			return pal[0]
		}
		return pal[1]
	}
}

// cellParity returns 0 or 1 depending on whether floor(v) is even or
// odd, correctly handling negative v via math.Floor.
func cellParity(v float64) int {
	cell := int64(math.Floor(v))
	if cell%2 == 0 {
		return 0
	}
	return 1
}

// Diagonal2 bands the unit square by the fractional-part sum u+v.
func Diagonal2(pal Palette) Texture2 {
	return func(p prim.Point2) color.Color {
		u := wrap(p.X)
		v := wrap(p.Y)
		return bandPick(u+v, pal)
	}
}

// Diagonal3 bands object space by the fractional-part sum u+v+w.
func Diagonal3(pal Palette) Texture3 {
	return func(p prim.Point3) color.Color {
		u := wrap(p.X)
		v := wrap(p.Y)
		w := wrap(p.Z)
		return bandPick(u+v+w, pal)
	}
}

func bandPick(sum float64, pal Palette) color.Color {
	band := int(math.Floor(sum/0.5)) & 1
	if band == 0 {
		return pal[0]
	}
	return pal[1]
}

// Dots2 paints a cell-centered disk of radius 0.3 in the unit square.
func Dots2(pal Palette) Texture2 {
	return func(p prim.Point2) color.Color {
		u := math.Abs(wrap(p.X))
		v := math.Abs(wrap(p.Y))
		return dotsPick(math.Hypot(0.5-u, 0.5-v), pal)
	}
}

// Dots3 paints a cell-centered sphere of radius 0.3 in object space.
func Dots3(pal Palette) Texture3 {
	return func(p prim.Point3) color.Color {
		u := math.Abs(wrap(p.X))
		v := math.Abs(wrap(p.Y))
		w := math.Abs(wrap(p.Z))
		rx, ry, rz := 0.5-u, 0.5-v, 0.5-w
		return dotsPick(math.Sqrt(rx*rx+ry*ry+rz*rz), pal)
	}
}

func dotsPick(r float64, pal Palette) color.Color {
	if r < 0.3 {
		return pal[1]
	}
	return pal[0]
}

const gridLineWidth = 1.0 / 32.0

// Grid2 draws a border strip of relative width 1/32 around each unit
// cell.
func Grid2(pal Palette) Texture2 {
	return func(p prim.Point2) color.Color {
		u := math.Abs(wrap(p.X))
		v := math.Abs(wrap(p.Y))
		a := 1.0 - gridLineWidth
		if gridLineWidth < u && u <= a && gridLineWidth < v && v <= a {
			return pal[1]
		}
		return pal[0]
	}
}

// Grid3 is the object-space analogue of Grid2.
func Grid3(pal Palette) Texture3 {
	return func(p prim.Point3) color.Color {
		u := math.Abs(wrap(p.X))
		v := math.Abs(wrap(p.Y))
		w := math.Abs(wrap(p.Z))
		a := 1.0 - gridLineWidth
		if gridLineWidth < u && u <= a && gridLineWidth < v && v <= a && gridLineWidth < w && w <= a {
			return pal[1]
		}
		return pal[0]
	}
}

// HappyFace2 draws a deterministic smiley figure over the unit square,
// used by tests as a recognizable, non-symmetric pattern.
func HappyFace2(pal Palette) Texture2 {
	return func(p prim.Point2) color.Color {
		return happyFace(prim.P2(math.Abs(wrap(p.X)), math.Abs(wrap(p.Y))), pal)
	}
}

// HappyFace3 is the object-space analogue of HappyFace2, reading u/v
// from x/y and ignoring z.
func HappyFace3(pal Palette) Texture3 {
	return func(p prim.Point3) color.Color {
		return happyFace(prim.P2(math.Abs(wrap(p.X)), math.Abs(wrap(p.Y))), pal)
	}
}

const (
	eyeRadius   = 1.0 / 9.0
	mouthRadius = 2.0 / 9.0
)

func happyFace(uv prim.Point2, pal Palette) color.Color {
	leftEye := prim.P2(3.0/9.0, 3.0/9.0)
	rightEye := prim.P2(6.0/9.0, 3.0/9.0)
	mouthCenter := prim.P2(0.5, 0.5)

	if uv.Sub(leftEye).Magnitude() < eyeRadius {
		return pal[0]
	}
	if uv.Sub(rightEye).Magnitude() < eyeRadius {
		return pal[0]
	}
	if d := uv.Sub(mouthCenter); d.Magnitude() < mouthRadius {
		mouthDir := prim.V2(0, -1)
		if mouthDir.Dot(d) < 0 {
			return pal[0]
		}
	}
	return pal[1]
}

// Contours2 colors by the ratio of the distances to two fixed foci,
// (0.25, 0.5) and (0.75, 0.5): a ratio in [0.75, 1) gets pal[7], each
// 0.125-wide step below that gets the next lower entry down to pal[1]
// for [0, 0.125), and a ratio of 1 or more gets pal[0]. Used as a
// deterministic figure-drawing test pattern.
func Contours2(pal Palette) Texture2 {
	a := prim.P2(0.25, 0.5)
	b := prim.P2(0.75, 0.5)
	const delta = 0.125
	bands := []float64{0.875, 0.750, 0.625, 0.5, 0.375, 0.25, 0.125}
	return func(p prim.Point2) color.Color {
		uv := prim.P2(math.Abs(wrap(p.X)), math.Abs(wrap(p.Y)))
		d1 := uv.Sub(a).Magnitude()
		d2 := uv.Sub(b).Magnitude()
		if d2 == 0 {
			return pal[0]
		}
		ratio := d1 / d2
		for i, center := range bands {
			if center-delta <= ratio && ratio < center+delta {
				return pal[7-i]
			}
		}
		return pal[0]
	}
}
