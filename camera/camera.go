// Package camera implements the pinhole projection: a focal point plus
// an orthonormal look-at basis maps normalized image-plane coordinates
// in [-1,1]x[-aspect,aspect] to world-space rays. The Camera also owns
// the output image and the adaptive-antialiasing mask buffer, mirroring
// how the teacher's Render owns its image.RGBA directly rather than
// threading it through as a separate parameter.
package camera

import (
	"fmt"
	"math"

	"github.com/lumenray/raytrace/color"
	"github.com/lumenray/raytrace/internal/imgio"
	"github.com/lumenray/raytrace/internal/prim"
	"github.com/lumenray/raytrace/rterr"
)

// Camera is a pinhole model: Position is the focal point, FovRadians is
// the full horizontal field of view. The look-at basis (forward, right,
// up) is computed once at construction, matching the teacher's habit of
// deriving the viewport geometry once in Render rather than per pixel.
type Camera struct {
	Position   prim.Point3
	FovRadians prim.Radians

	forward, right, up prim.Vector3

	WidthPx, HeightPx int
	aspect            prim.Scalar

	// Image is the rendered output, one color per pixel.
	Image *imgio.Image
	// Mask holds one grey value per pixel: SetPixel writes 1 and
	// MarkResolved writes the pixel's antialiasing contrast. The
	// renderer writes it but does not read it back when deciding which
	// pixels to supersample.
	Mask *imgio.Image
}

// New builds a Camera at position looking toward lookAt, with up used
// to disambiguate roll, a horizontal field of view in degrees, and the
// given output resolution. Grounded on the teacher's Render
// (raytracer.go): the same fov-to-viewport derivation
// (viewportWidth = 2/tan(fov/2), viewportHeight = viewportWidth*aspect),
// generalized from a fixed eye-at-(0,0,-1)-looking-down-+Z to an
// arbitrary position and orientation.
func New(position, lookAt prim.Point3, up prim.Vector3, fovDegrees prim.Scalar, widthPx, heightPx int) (*Camera, error) {
	if widthPx <= 0 || heightPx <= 0 {
		return nil, fmt.Errorf("%w: camera resolution must be positive, got %dx%d", rterr.ErrDomainError, widthPx, heightPx)
	}
	if fovDegrees <= 0 || fovDegrees >= 180 {
		return nil, fmt.Errorf("%w: camera fov must be in (0,180) degrees, got %v", rterr.ErrDomainError, fovDegrees)
	}

	forward, err := lookAt.Sub(position).Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: camera position and lookAt coincide", rterr.ErrGeometryDegenerate)
	}
	right, err := up.Cross(forward).Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: camera up vector is parallel to its view direction", rterr.ErrGeometryDegenerate)
	}
	trueUp := forward.Cross(right).MustNormalize()

	img, err := imgio.New(widthPx, heightPx, imgio.RGBf)
	if err != nil {
		return nil, err
	}
	mask, err := imgio.New(widthPx, heightPx, imgio.GREY8)
	if err != nil {
		return nil, err
	}

	return &Camera{
		Position:   position,
		FovRadians: prim.Radians(fovDegrees * math.Pi / 180),
		forward:    forward,
		right:      right,
		up:         trueUp,
		WidthPx:    widthPx,
		HeightPx:   heightPx,
		aspect:     prim.Scalar(heightPx) / prim.Scalar(widthPx),
		Image:      img,
		Mask:       mask,
	}, nil
}

// Aspect is the image's height/width ratio, matching the image-plane
// coordinate range [-1,1]x[-aspect,aspect].
func (c *Camera) Aspect() prim.Scalar { return c.aspect }

// ImagePoint maps an integer pixel coordinate, plus a [0,1) jitter used
// by adaptive antialiasing's resampling offsets, to an image-plane point
// in [-1,1]x[-aspect,aspect]. Pixel (0,0) is the top-left, matching
// imgio.Image's row-major, y-down convention.
func (c *Camera) ImagePoint(px, py int, jitterX, jitterY prim.Scalar) (u, v prim.Scalar) {
	u = 2*(prim.Scalar(px)+jitterX)/prim.Scalar(c.WidthPx) - 1
	v = c.aspect * (1 - 2*(prim.Scalar(py)+jitterY)/prim.Scalar(c.HeightPx))
	return u, v
}

// Cast builds the world-space ray from the focal point through the
// image-plane point (u, v), per spec.md §4.9's
// cast(image_point) -> world_ray.
func (c *Camera) Cast(u, v prim.Scalar) prim.Ray3 {
	halfWidth := math.Tan(float64(c.FovRadians) / 2)
	dir := c.forward.
		Add(c.right.Scale(u * halfWidth)).
		Add(c.up.Scale(v * halfWidth))
	return prim.NewRay3(c.Position, dir.MustNormalize())
}

// SetPixel writes px into both the output image and records py's
// coordinate as resolved in the mask at full confidence (255); the
// trace evaluator calls this once per final (post-antialiasing) sample.
func (c *Camera) SetPixel(px, py int, col color.Color) error {
	if err := c.Image.Set(px, py, col); err != nil {
		return err
	}
	return c.Mask.Set(px, py, color.Gray(1))
}

// MarkResolved records, in the mask buffer, the antialiasing contrast
// value a pixel showed, as a grey level, for diagnostics. Stats does
// not read the mask; Stats.Supersampled is counted by the renderer.
func (c *Camera) MarkResolved(px, py int, contrast prim.Scalar) error {
	return c.Mask.Set(px, py, color.Gray(contrast))
}
