// Package mediums implements per-surface shading parameters: a bundle
// of callables describing emission, reflectance, and transparency, and
// a library of texture-mapping functions that turn a surface
// coordinate into a palette color.
package mediums

import (
	"math"

	"github.com/lumenray/raytrace/color"
	"github.com/lumenray/raytrace/internal/prim"
)

// Medium bundles the per-surface-point callables an Object reports to
// the trace evaluator. A nil callable falls back to its documented
// default in the accessor methods below, so a Medium literal that only
// sets a couple of fields is still usable (matching the corpus's
// preference for zero-value-friendly structs).
type Medium struct {
	EmissiveFn        func(p prim.Point3) color.Color
	AmbientFn         func(p prim.Point3) color.Color
	DiffuseFn         func(p prim.Point3) color.Color
	SpecularFn        func(p prim.Point3, cosTheta float64, incident color.Color) color.Color
	Smoothness        float64 // 0 = matte, 1 = mirror
	RefractiveIndex   float64 // >= 1
	AbsorbanceFn      func(distance float64, c color.Color) color.Color
	RadiosityFn       func(p prim.Point3, nOutside, thetaIncident, thetaTransmitted float64) (emissivity, reflectivity, transparency float64)
	// BouncedFn tints a recursively-traced mirror reflection before it
	// is blended with direct illumination (spec.md §4.10 step 9.2's
	// M.bounced). The default tints by the surface's own diffuse color,
	// so a colored metal reads as a colored mirror rather than a
	// perfectly neutral one.
	BouncedFn func(p prim.Point3, traced color.Color) color.Color
}

// Emissive returns the medium's emitted color at p.
func (m Medium) Emissive(p prim.Point3) color.Color {
	if m.EmissiveFn == nil {
		return color.Black
	}
	return m.EmissiveFn(p)
}

// Ambient returns the medium's ambient response at p.
func (m Medium) Ambient(p prim.Point3) color.Color {
	if m.AmbientFn == nil {
		return color.Black
	}
	return m.AmbientFn(p)
}

// Diffuse returns the medium's diffuse albedo at p.
func (m Medium) Diffuse(p prim.Point3) color.Color {
	if m.DiffuseFn == nil {
		return color.Gray(0.8)
	}
	return m.DiffuseFn(p)
}

// Specular returns the medium's specular contribution at p given the
// cosine between the reflection vector and the view vector, and the
// light's incident radiance.
func (m Medium) Specular(p prim.Point3, cosTheta float64, incident color.Color) color.Color {
	if m.SpecularFn == nil {
		if cosTheta <= 0 {
			return color.Black
		}
		return incident.Scale(math.Pow(cosTheta, 32))
	}
	return m.SpecularFn(p, cosTheta, incident)
}

// Absorbance attenuates c after traveling distance through the medium.
// The default is non-absorbing (Beer's law with coefficient zero).
func (m Medium) Absorbance(distance float64, c color.Color) color.Color {
	if m.AbsorbanceFn == nil {
		return c
	}
	return m.AbsorbanceFn(distance, c)
}

// Radiosity returns normalized (emissivity, reflectivity,
// transparency) weights for the local illumination mix. The default
// derives reflectivity/transparency from the medium's Smoothness and
// refractive index via Schlick's approximation of Fresnel reflectance,
// with zero self-emission.
func (m Medium) Radiosity(p prim.Point3, nOutside, thetaIncident, thetaTransmitted float64) (emissivity, reflectivity, transparency float64) {
	if m.RadiosityFn != nil {
		return m.RadiosityFn(p, nOutside, thetaIncident, thetaTransmitted)
	}
	r0 := (nOutside - m.RefractiveIndex) / (nOutside + m.RefractiveIndex)
	r0 *= r0
	cosTheta := math.Cos(thetaIncident)
	schlick := r0 + (1-r0)*math.Pow(1-cosTheta, 5)
	reflectivity = m.Smoothness + (1-m.Smoothness)*schlick
	transparency = 1 - reflectivity
	return 0, reflectivity, transparency
}

// Bounced tints a recursively-traced reflection before it is blended
// into the surface's outgoing radiance. The default multiplies by the
// surface's diffuse color, matching how a colored metal's reflection
// picks up the metal's tint.
func (m Medium) Bounced(p prim.Point3, traced color.Color) color.Color {
	if m.BouncedFn == nil {
		return m.Diffuse(p).Mul(traced)
	}
	return m.BouncedFn(p, traced)
}

// BeerAbsorbance builds an AbsorbanceFn implementing Beer-Lambert
// attenuation toward tint at the given coefficient per unit distance.
func BeerAbsorbance(tint color.Color, coefficient float64) func(float64, color.Color) color.Color {
	return func(distance float64, c color.Color) color.Color {
		k := math.Exp(-coefficient * distance)
		return color.Blend(c, tint, k)
	}
}
