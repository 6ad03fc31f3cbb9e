// Package imgio implements the tracer's pixel-format-tagged image
// container plus readers/writers for the raster formats the render
// pipeline and its texture lookups touch: PPM, PGM, PFM, TGA, a minimal
// EXR writer, and (via the standard library) PNG as the cheapest bridge
// to image.Image for cmd/example.
package imgio

import "fmt"

// Format tags the channel layout and sample type of an Image's raw
// buffer, matching spec.md §6's pixel-format enumeration.
type Format int

const (
	RGB8 Format = iota
	BGR8
	RGBA8
	ABGR8
	BGRA8
	GREY8
	Y8
	Y16
	Y32
	YF
	IYU2
	RGBf
	RGBh
	RGBAf
	RGBId
	RGBP
)

func (f Format) String() string {
	switch f {
	case RGB8:
		return "RGB8"
	case BGR8:
		return "BGR8"
	case RGBA8:
		return "RGBA8"
	case ABGR8:
		return "ABGR8"
	case BGRA8:
		return "BGRA8"
	case GREY8:
		return "GREY8"
	case Y8:
		return "Y8"
	case Y16:
		return "Y16"
	case Y32:
		return "Y32"
	case YF:
		return "YF"
	case IYU2:
		return "IYU2"
	case RGBf:
		return "RGBf"
	case RGBh:
		return "RGBh"
	case RGBAf:
		return "RGBAf"
	case RGBId:
		return "RGBId"
	case RGBP:
		return "RGBP"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Channels returns the number of samples per pixel for f.
func (f Format) Channels() int {
	switch f {
	case RGB8, BGR8, RGBf, RGBh, IYU2:
		return 3
	case RGBA8, ABGR8, BGRA8, RGBAf, RGBId:
		return 4
	case GREY8, Y8, Y16, Y32, YF:
		return 1
	case RGBP:
		return 3
	default:
		return 0
	}
}

// BytesPerChannel returns the on-disk sample width for f, in bytes; 0
// for variable-width or packed formats (IYU2, RGBP).
func (f Format) BytesPerChannel() int {
	switch f {
	case RGB8, BGR8, RGBA8, ABGR8, BGRA8, GREY8, Y8:
		return 1
	case Y16, RGBh:
		return 2
	case Y32, YF, RGBf, RGBAf, RGBId:
		return 4
	default:
		return 0
	}
}

// HDR reports whether f stores floating-point (as opposed to
// fixed-point integer) samples.
func (f Format) HDR() bool {
	switch f {
	case YF, RGBf, RGBh, RGBAf, RGBId:
		return true
	default:
		return false
	}
}
