package imgio

import (
	"fmt"
	"image/png"
	"io"

	"github.com/lumenray/raytrace/rterr"
)

// SavePNG encodes img as PNG via the standard library; PNG is not one
// of spec.md's named pixel formats but is the cheapest bridge from
// Image to image.Image for cmd/example.
func SavePNG(w io.Writer, img *Image) error {
	if err := png.Encode(w, img.StandardImage()); err != nil {
		return fmt.Errorf("%w: encoding PNG: %v", rterr.ErrFileError, err)
	}
	return nil
}
