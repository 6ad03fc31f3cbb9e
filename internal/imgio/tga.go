package imgio

import (
	"fmt"
	"io"

	"github.com/lumenray/raytrace/rterr"
)

// SaveTGA writes img as an uncompressed 24-bit BGR TGA, the format's
// native channel order.
func SaveTGA(w io.Writer, img *Image) error {
	if img.Width > 0xffff || img.Height > 0xffff {
		return fmt.Errorf("%w: TGA dimensions must fit in 16 bits, got %dx%d", rterr.ErrDimensionMismatch, img.Width, img.Height)
	}
	header := make([]byte, 18)
	header[2] = 2 // uncompressed true-color
	header[12] = byte(img.Width & 0xff)
	header[13] = byte(img.Width >> 8)
	header[14] = byte(img.Height & 0xff)
	header[15] = byte(img.Height >> 8)
	header[16] = 24 // bits per pixel
	header[17] = 0x20 // top-left origin
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w: writing TGA header: %v", rterr.ErrFileError, err)
	}
	row := make([]byte, img.Width*3)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c, _ := img.At(x, y)
			r, g, b := c.Bytes()
			row[x*3+0] = b
			row[x*3+1] = g
			row[x*3+2] = r
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("%w: writing TGA row: %v", rterr.ErrFileError, err)
		}
	}
	return nil
}
