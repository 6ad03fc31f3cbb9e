package imgio

import (
	"bufio"
	"fmt"
	stdimage "image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/lumenray/raytrace/color"
	"github.com/lumenray/raytrace/rterr"
)

// LoadReference decodes an arbitrary reference texture for
// mediums.ImageLookup. It tries the tracer's own PPM/PGM/PFM readers
// first, then falls back through PNG and JPEG (standard library) and
// BMP/TIFF (golang.org/x/image) by content sniffing.
func LoadReference(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(8)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: sniffing reference image: %v", rterr.ErrFileError, err)
	}

	switch {
	case len(head) >= 2 && head[0] == 'P' && head[1] == '6':
		return LoadPPM(br)
	case len(head) >= 2 && head[0] == 'P' && head[1] == '5':
		return LoadPGM(br)
	case len(head) >= 2 && head[0] == 'P' && (head[1] == 'F' || head[1] == 'f'):
		return LoadPFM(br)
	}

	img, format, decErr := stdimage.Decode(br)
	if decErr != nil {
		return nil, fmt.Errorf("%w: decoding reference image: %v", rterr.ErrFileError, decErr)
	}
	_ = format
	return fromStdImage(img), nil
}

func fromStdImage(src stdimage.Image) *Image {
	bounds := src.Bounds()
	out, _ := New(bounds.Dx(), bounds.Dy(), RGB8)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			c := color.FromBytes(uint8(r>>8), uint8(g>>8), uint8(b>>8))
			_ = out.Set(x-bounds.Min.X, y-bounds.Min.Y, c)
		}
	}
	return out
}

func init() {
	stdimage.RegisterFormat("png", "\x89PNG\r\n\x1a\n", png.Decode, png.DecodeConfig)
	stdimage.RegisterFormat("jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig)
	stdimage.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
	stdimage.RegisterFormat("tiff", "II*\x00", tiff.Decode, tiff.DecodeConfig)
	stdimage.RegisterFormat("tiff", "MM\x00*", tiff.Decode, tiff.DecodeConfig)
}
