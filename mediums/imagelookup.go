package mediums

import (
	"io"

	"github.com/lumenray/raytrace/color"
	"github.com/lumenray/raytrace/internal/imgio"
	"github.com/lumenray/raytrace/internal/prim"
)

// ImageLookup decodes a reference texture (any format internal/imgio
// can read: PPM/PGM/PFM natively, PNG/JPEG via the standard library,
// BMP/TIFF via golang.org/x/image) and returns a Texture2 that bilinearly samples it, treating
// the surface coordinate's fractional part as a wrapping UV. This is a
// supplemented feature beyond spec.md's core texture list, since a
// realistic tracer pipeline needs a way to paint decoded reference art
// onto a surface, not only procedural patterns.
func ImageLookup(r io.Reader) (Texture2, error) {
	img, err := imgio.LoadReference(r)
	if err != nil {
		return nil, err
	}
	return func(p prim.Point2) color.Color {
		return img.Sample(p.X, p.Y)
	}, nil
}

// ImageLookup3 is the object-space analogue of ImageLookup, reading
// u/v from x/y and ignoring z (a planar projection, the simplest
// mapping an Object's Map hook can supply before handing off to this
// texture).
func ImageLookup3(r io.Reader) (Texture3, error) {
	tex, err := ImageLookup(r)
	if err != nil {
		return nil, err
	}
	return func(p prim.Point3) color.Color {
		return tex(prim.P2(p.X, p.Y))
	}, nil
}
