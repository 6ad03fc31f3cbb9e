package imgio

import (
	"fmt"
	stdimage "image"
	stdcolor "image/color"

	"github.com/lumenray/raytrace/color"
	"github.com/lumenray/raytrace/rterr"
)

// Image is a row-major raster of linear-light colors, tagged with the
// Format it was decoded from or will be encoded to. Internally every
// pixel is stored as a color.Color regardless of Format; encoders
// quantize and readers decode at the format's native precision on
// Save/Load.
type Image struct {
	Width, Height int
	Format        Format
	pixels        []color.Color
}

// New allocates a black width x height image tagged with the given
// format.
func New(width, height int, format Format) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d height=%d must both be positive", rterr.ErrDimensionMismatch, width, height)
	}
	return &Image{
		Width:  width,
		Height: height,
		Format: format,
		pixels: make([]color.Color, width*height),
	}, nil
}

func (img *Image) offset(x, y int) (int, error) {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d image", rterr.ErrOutOfBounds, x, y, img.Width, img.Height)
	}
	return y*img.Width + x, nil
}

// At returns the linear-light color at (x, y).
func (img *Image) At(x, y int) (color.Color, error) {
	i, err := img.offset(x, y)
	if err != nil {
		return color.Color{}, err
	}
	return img.pixels[i], nil
}

// Set assigns the linear-light color at (x, y).
func (img *Image) Set(x, y int, c color.Color) error {
	i, err := img.offset(x, y)
	if err != nil {
		return err
	}
	img.pixels[i] = c
	return nil
}

// AtClamped returns At(x, y) with coordinates clamped into bounds,
// used by texture lookups that sample outside [0, 1) UVs.
func (img *Image) AtClamped(x, y int) color.Color {
	if x < 0 {
		x = 0
	}
	if x >= img.Width {
		x = img.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= img.Height {
		y = img.Height - 1
	}
	c, _ := img.At(x, y)
	return c
}

// Sample bilinearly interpolates the image at normalized UV
// coordinates (u, v in [0, 1]), wrapping both axes, used by
// mediums.ImageLookup.
func (img *Image) Sample(u, v float64) color.Color {
	u -= float64(int(u))
	if u < 0 {
		u++
	}
	v -= float64(int(v))
	if v < 0 {
		v++
	}
	fx := u * float64(img.Width)
	fy := v * float64(img.Height)
	x0 := int(fx) % img.Width
	y0 := int(fy) % img.Height
	x1 := (x0 + 1) % img.Width
	y1 := (y0 + 1) % img.Height
	tx := fx - float64(int(fx))
	ty := fy - float64(int(fy))

	c00, _ := img.At(x0, y0)
	c10, _ := img.At(x1, y0)
	c01, _ := img.At(x0, y1)
	c11, _ := img.At(x1, y1)
	top := c00.Lerp(c10, tx)
	bottom := c01.Lerp(c11, tx)
	return top.Lerp(bottom, ty)
}

// StandardImage converts img into a standard library image.Image via
// the teacher's RGBA-implements-image.Color convention (see
// color.Color.RGBA), for bridging to image/png in cmd/example.
func (img *Image) StandardImage() stdimage.Image {
	out := stdimage.NewRGBA(stdimage.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c, _ := img.At(x, y)
			r, g, b := c.Bytes()
			out.Set(x, y, stdcolor.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return out
}
