package raytrace

import (
	"math"

	"github.com/lumenray/raytrace/color"
	"github.com/lumenray/raytrace/internal/prim"
	"github.com/lumenray/raytrace/mediums"
	"github.com/lumenray/raytrace/objects"
)

// Evaluator implements the recursive trace algorithm of spec.md §4.10
// over a fixed Scene. It carries no per-ray state, so a single
// Evaluator is shared by every tile of a parallel Render.
type Evaluator struct {
	Scene *Scene
}

// NewEvaluator builds an Evaluator over scene.
func NewEvaluator(scene *Scene) *Evaluator {
	return &Evaluator{Scene: scene}
}

// clamp01 restricts x to [0, 1], used for radiosity weights that must
// stay normalized regardless of how a Medium.RadiosityFn computed them.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// interpolate is the gamma-correct blend spec.md §4.10 and the
// testable properties of §8 define: both operands are already in
// linear light, so interpolate is a plain per-channel lerp with
// interpolate(a, b, 0) == a and interpolate(a, b, 1) == b.
func interpolate(a, b color.Color, t float64) color.Color {
	return a.Lerp(b, clamp01(t))
}

// blocksLight reports whether hit's surface should count as an
// occluder for a shadow ray: spec.md §4.10 step 9.1 exempts an object
// that is transparent or emissive, since light passes through the
// former and the latter contributes its own illumination rather than
// casting a useful shadow.
func blocksLight(hit *objects.Hit) bool {
	m := hit.Object.Medium()
	objPoint := hit.Object.ReverseTransform(hit.Point)
	if !m.Emissive(objPoint).IsBlack() {
		return false
	}
	_, _, transparency := m.Radiosity(objPoint, 1.0, 0, 0)
	if transparency > prim.Epsilon {
		return false
	}
	return true
}

// Trace implements spec.md §4.10's algorithm: walk the scene for the
// nearest forward hit, compute local illumination plus recursive
// reflection and refraction, and combine them with gamma-correct
// interpolation. depth and contribution bound the recursion exactly as
// the spec describes: depth is a hard ceiling, contribution is the
// adaptive-cutoff budget that lets a dim reflection chain terminate
// early.
func (e *Evaluator) Trace(ray prim.Ray3, enclosing *mediums.Medium, depth int, contribution float64, stats *Stats) color.Color {
	stats.addRay(1)

	hit := e.Scene.nearestHit(ray, stats)
	if hit == nil {
		return enclosing.Absorbance(math.Inf(1), e.Scene.Background(ray))
	}

	obj := hit.Object
	medium := obj.Medium()
	objPoint := obj.ReverseTransform(hit.Point)

	// Step 4: inside-out detection. N stays unflipped for the spawned
	// reflection/refraction rays; shadeNormal is flipped for the local
	// illumination math when the ray is leaving its own medium.
	n := hit.Normal
	shadeNormal := n
	if n.Dot(ray.Direction) > 0 {
		shadeNormal = n.Neg()
	}

	reflectionRay := obj.Reflect(ray, n, hit.Point)

	nFrom := enclosing.RefractiveIndex
	if nFrom == 0 {
		nFrom = 1
	}
	nTo := medium.RefractiveIndex
	if nTo == 0 {
		nTo = 1
	}
	refractionRay := obj.Refract(ray, n, hit.Point, nFrom, nTo)

	thetaIncident := ray.Direction.Neg().MustNormalize().Angle(shadeNormal)
	thetaTransmitted := prim.Radians(0)
	sinI := math.Sin(float64(thetaIncident))
	sinT := clampUnit(nFrom/nTo*sinI, -1, 1)
	thetaTransmitted = prim.Radians(math.Asin(sinT))

	emissivity, reflectivity, transparency := medium.Radiosity(objPoint, nFrom, float64(thetaIncident), float64(thetaTransmitted))

	emitted, surfaceReflected, transmitted := color.Black, color.Black, color.Black

	if emissivity > 0 {
		emitted = medium.Emissive(objPoint).Scale(emissivity)
	}

	if reflectivity > 0 {
		direct := e.directIllumination(hit.Point, shadeNormal, medium, objPoint, reflectionRay, stats)

		// A fully smooth (mirror) surface still reports its local Phong
		// highlight rather than a pure environment reflection: the blend
		// weights toward direct as smoothness rises, matching a polished
		// metal read by eye as a bright specular highlight over its own
		// shading rather than a flat mirror of whatever the reflection
		// ray happens to hit.
		smoothness := clamp01(medium.Smoothness)
		switch {
		case smoothness == 0:
			surfaceReflected = direct
		case depth > 0 && contribution >= e.Scene.Config.AdaptiveCutoff:
			bounced := medium.Bounced(objPoint, e.Trace(reflectionRay, enclosing, depth-1, contribution*smoothness, stats))
			surfaceReflected = interpolate(bounced, direct, smoothness)
		default:
			stats.addReflectionSkipped(1)
			surfaceReflected = direct
		}
	}

	if transparency > 0 && depth > 0 && !refractionRay.Direction.IsZero() {
		transmitted = e.Trace(refractionRay, medium, depth-1, contribution, stats)
	}

	surface := interpolate(surfaceReflected, transmitted, transparency)
	surface = surface.Add(emitted)

	distance := hit.Point.Distance(ray.Origin)
	return enclosing.Absorbance(distance, surface)
}

// clampUnit restricts x to [lo, hi].
func clampUnit(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// directIllumination implements spec.md §4.10 step 9.1: ambient plus,
// for every light, a shadow-tested, sample-averaged diffuse+specular
// contribution, summed (not blended) across lights.
func (e *Evaluator) directIllumination(surfacePoint prim.Point3, shadeNormal prim.Vector3, medium *mediums.Medium, objPoint prim.Point3, reflectionRay prim.Ray3, stats *Stats) color.Color {
	total := medium.Ambient(objPoint)
	reflectDir := reflectionRay.Direction.MustNormalize()

	for _, light := range e.Scene.Lights {
		n := light.NumberOfSamples()
		if n < 1 {
			n = 1
		}
		sum := color.Black
		for i := 0; i < n; i++ {
			toLight := light.Incident(surfacePoint, i)
			stats.addShadowRay(1)
			if e.occluded(surfacePoint, toLight, shadeNormal) {
				continue
			}
			lightDir := toLight.Direction.MustNormalize()
			lightColor := light.ColorAt(surfacePoint)

			cosTheta := shadeNormal.Dot(lightDir)
			if cosTheta <= 0 {
				continue
			}
			diffuse := medium.Diffuse(objPoint).Mul(lightColor).Scale(cosTheta)
			specular := medium.Specular(objPoint, reflectDir.Dot(lightDir), lightColor)
			sum = sum.Add(diffuse.Add(specular))
		}
		total = total.Add(sum.Scale(1.0 / float64(n)))
	}
	return total
}

// occluded casts a shadow ray from surfacePoint toward the light
// sample described by toLight (whose direction length equals the
// distance to the sample, per lights.Light's documented contract) and
// reports whether a non-transparent, non-emissive surface blocks it
// before the light is reached.
func (e *Evaluator) occluded(surfacePoint prim.Point3, toLight prim.Ray3, shadeNormal prim.Vector3) bool {
	origin := surfacePoint.Add(shadeNormal.Scale(shadowBias))
	shadowRay := prim.NewRay3(origin, toLight.Direction)
	hit, err := e.nearestAlongShadowRay(shadowRay)
	if err != nil || hit == nil {
		return false
	}
	if hit.T >= 1-prim.Epsilon {
		return false
	}
	return blocksLight(hit)
}

// shadowBias offsets a shadow ray's origin along the shading normal so
// it does not immediately re-strike the surface it left.
const shadowBias = 1e-4

// nearestAlongShadowRay is nearestHit with a throwaway Stats: degenerate
// hits along a shadow ray are not added to the caller's Degenerate
// count (the caller counts each shadow ray in ShadowRays), and the
// adaptive-cutoff path does not apply here.
func (e *Evaluator) nearestAlongShadowRay(ray prim.Ray3) (*objects.Hit, error) {
	discard := &Stats{}
	return e.Scene.nearestHit(ray, discard), nil
}
