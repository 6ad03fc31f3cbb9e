package mediums

import (
	"math"
	"sync"

	"github.com/lumenray/raytrace/color"
	"github.com/lumenray/raytrace/internal/prim"
)

// noiseParams is the process-wide tuning block for PseudoRandomNoise:
// a gain and three direction vectors (one per channel), derived from a
// radius and three angles. It initializes itself on first use and is
// immutable for the remainder of the process, matching the corpus's
// "lifecycle: init-on-first-use then frozen for the render" contract.
type noiseParams struct {
	gain             float64
	vecR, vecG, vecB prim.Vector2
}

var (
	noiseOnce  sync.Once
	noiseState noiseParams
)

func defaultNoiseParams() noiseParams {
	const (
		gain   = 1.0
		radius = 1.0
		thetaR = math.Pi * 1.0 // tau*0.5
		thetaG = math.Pi * 0.4 // tau*0.2
		thetaB = math.Pi * 1.6 // tau*0.8
	)
	return noiseParams{
		gain: gain,
		vecR: prim.V2(radius*math.Cos(thetaR), radius*math.Sin(thetaR)),
		vecG: prim.V2(radius*math.Cos(thetaG), radius*math.Sin(thetaG)),
		vecB: prim.V2(radius*math.Cos(thetaB), radius*math.Sin(thetaB)),
	}
}

func currentNoiseParams() noiseParams {
	noiseOnce.Do(func() {
		noiseState = defaultNoiseParams()
	})
	return noiseState
}

// ConfigureNoise overrides the pseudo-random-noise tuning block before
// the first render; calls after the block has initialized (via a prior
// PseudoRandomNoise invocation) are no-ops, matching the "immutable for
// the duration of a render" lifecycle.
func ConfigureNoise(gain, radius, thetaR, thetaG, thetaB float64) {
	noiseOnce.Do(func() {
		noiseState = noiseParams{
			gain: gain,
			vecR: prim.V2(radius*math.Cos(thetaR), radius*math.Sin(thetaR)),
			vecG: prim.V2(radius*math.Cos(thetaG), radius*math.Sin(thetaG)),
			vecB: prim.V2(radius*math.Cos(thetaB), radius*math.Sin(thetaB)),
		}
	})
}

// randomAlong is a deterministic, smooth-ish hash of a 2D vector along
// a direction vector, modeled on the original's dot-product-then-sin
// pseudo-random generator.
func randomAlong(v prim.Vector2, dir prim.Vector2, gain float64) float64 {
	dot := v.Dot(dir) * gain
	return math.Sin(dot*12.9898) * 43758.5453
}

func fractional(v float64) float64 {
	_, frac := math.Modf(v)
	return frac
}

// PseudoRandomNoise2 returns a Texture2 producing deterministic
// per-point noise from the three tuned direction vectors: one pseudo-
// random scalar per channel, taken as the fractional part of a
// direction-hashed value.
func PseudoRandomNoise2() Texture2 {
	return func(p prim.Point2) color.Color {
		params := currentNoiseParams()
		v := prim.V2(p.X, p.Y)
		r := fractional(randomAlong(v, params.vecR, params.gain))
		g := fractional(randomAlong(v, params.vecG, params.gain))
		b := fractional(randomAlong(v, params.vecB, params.gain))
		return color.New(math.Abs(r), math.Abs(g), math.Abs(b))
	}
}

// PseudoRandomNoise3 is the object-space analogue of
// PseudoRandomNoise2, reading u/v from x/y and ignoring z.
func PseudoRandomNoise3() Texture3 {
	tex := PseudoRandomNoise2()
	return func(p prim.Point3) color.Color {
		return tex(prim.P2(p.X, p.Y))
	}
}
