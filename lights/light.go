// Package lights implements the tracer's light sources: point,
// directional, spot, and area, each exposing the three-method contract
// the trace evaluator drives shadow rays and shading through.
package lights

import (
	"math"

	"github.com/lumenray/raytrace/color"
	"github.com/lumenray/raytrace/internal/prim"
)

// Light is the interface the trace evaluator drives for direct
// illumination. The ray returned by Incident has direction length
// equal to the distance to the light sample, so comparing a shadow
// ray's nearest-hit distance to that length tests occlusion-past-the-
// light.
type Light interface {
	NumberOfSamples() int
	Incident(p prim.Point3, sample int) prim.Ray3
	ColorAt(p prim.Point3) color.Color
}

// Point is a "speck" light with inverse-square falloff from a stored
// power.
type Point struct {
	Position prim.Point3
	PowerVal color.Color
}

func (l Point) NumberOfSamples() int { return 1 }

func (l Point) Incident(p prim.Point3, _ int) prim.Ray3 {
	return prim.NewRay3(p, l.Position.Sub(p))
}

func (l Point) ColorAt(p prim.Point3) color.Color {
	d := l.Position.Distance(p)
	if d == 0 {
		return l.PowerVal
	}
	return l.PowerVal.Scale(1.0 / (d * d))
}

// Directional is a "beam" light: a fixed world direction, infinite
// distance, constant radiance.
type Directional struct {
	Direction prim.Vector3 // direction the light travels, surface-to-source is its negation
	ColorVal  color.Color
}

const directionalDistance = 1e6

func (l Directional) NumberOfSamples() int { return 1 }

func (l Directional) Incident(p prim.Point3, _ int) prim.Ray3 {
	toSource := l.Direction.Neg().MustNormalize()
	return prim.NewRay3(p, toSource.Scale(directionalDistance))
}

func (l Directional) ColorAt(_ prim.Point3) color.Color {
	return l.ColorVal
}

// Spot is a positional light windowed by a cone around Direction:
// Incident aims from the surface point at Position, so unlike
// Directional its incident direction varies with the point. ColorAt is
// black at or outside ConeHalfAngle; inside the cone it scales ColorVal
// by (cos(angle)-cos(ConeHalfAngle))/(1-cos(ConeHalfAngle)) times an
// inverse-square distance falloff.
type Spot struct {
	Position      prim.Point3
	Direction     prim.Vector3 // cone axis, pointing away from the light
	ConeHalfAngle prim.Radians
	ColorVal      color.Color
}

func (l Spot) NumberOfSamples() int { return 1 }

func (l Spot) Incident(p prim.Point3, _ int) prim.Ray3 {
	return prim.NewRay3(p, l.Position.Sub(p))
}

func (l Spot) ColorAt(p prim.Point3) color.Color {
	toSurface, err := l.Position.Sub(p).Neg().Normalize()
	if err != nil {
		return l.ColorVal
	}
	axis, err := l.Direction.Normalize()
	if err != nil {
		return l.ColorVal
	}
	cosAngle := axis.Dot(toSurface)
	cosHalf := math.Cos(float64(l.ConeHalfAngle))
	if cosAngle <= cosHalf {
		return color.Black
	}
	window := (cosAngle - cosHalf) / (1 - cosHalf)
	d := l.Position.Distance(p)
	falloff := 1.0
	if d != 0 {
		falloff = 1.0 / (d * d)
	}
	return l.ColorVal.Scale(window * falloff)
}

// Area is a rectangular light sampled by a deterministic jitter
// pattern indexed by the sample number, for soft-shadow approximation
// without a random number generator in the hot path.
type Area struct {
	Center   prim.Point3
	Edge1    prim.Vector3
	Edge2    prim.Vector3
	ColorVal color.Color
	Samples  int
}

func (l Area) NumberOfSamples() int {
	if l.Samples < 1 {
		return 1
	}
	return l.Samples
}

// samplePoint returns a deterministic jittered point on the light's
// rectangle for sample index i, using a low-discrepancy stratified
// grid rather than a random source.
func (l Area) samplePoint(i int) prim.Point3 {
	n := l.NumberOfSamples()
	side := int(math.Ceil(math.Sqrt(float64(n))))
	row := i / side
	col := i % side
	u := (float64(col) + 0.5) / float64(side)
	v := (float64(row) + 0.5) / float64(side)
	offset := l.Edge1.Scale(u - 0.5).Add(l.Edge2.Scale(v - 0.5))
	return l.Center.Add(offset)
}

func (l Area) Incident(p prim.Point3, sample int) prim.Ray3 {
	target := l.samplePoint(sample)
	return prim.NewRay3(p, target.Sub(p))
}

func (l Area) ColorAt(p prim.Point3) color.Color {
	d := l.Center.Distance(p)
	if d == 0 {
		return l.ColorVal
	}
	return l.ColorVal.Scale(1.0 / (d * d))
}
