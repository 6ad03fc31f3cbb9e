package imgio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/lumenray/raytrace/color"
	"github.com/lumenray/raytrace/rterr"
)

// SavePFM writes img as a little-endian color PFM, preserving
// out-of-[0,1] linear-light HDR values (no gamma encode, no clamp).
func SavePFM(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "PF\n%d %d\n-1.0\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("%w: writing PFM header: %v", rterr.ErrFileError, err)
	}
	buf := make([]byte, 4)
	// PFM scanlines are stored bottom-to-top.
	for y := img.Height - 1; y >= 0; y-- {
		for x := 0; x < img.Width; x++ {
			c, _ := img.At(x, y)
			for _, v := range []float64{c.R, c.G, c.B} {
				binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(v)))
				if _, err := bw.Write(buf); err != nil {
					return fmt.Errorf("%w: writing PFM sample: %v", rterr.ErrFileError, err)
				}
			}
		}
	}
	return bw.Flush()
}

// LoadPFM reads a little-endian color PFM into a new RGBf-tagged Image.
func LoadPFM(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)
	magic, err := readToken(br)
	if err != nil {
		return nil, err
	}
	if magic != "PF" && magic != "Pf" {
		return nil, fmt.Errorf("%w: unsupported PFM magic %q", rterr.ErrFileError, magic)
	}
	wtok, err := readToken(br)
	if err != nil {
		return nil, err
	}
	htok, err := readToken(br)
	if err != nil {
		return nil, err
	}
	if _, err := readToken(br); err != nil { // scale/endianness field, unused
		return nil, err
	}
	width, err := parsePositiveInt(wtok)
	if err != nil {
		return nil, err
	}
	height, err := parsePositiveInt(htok)
	if err != nil {
		return nil, err
	}
	img, err := New(width, height, RGBf)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 4)
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			var vals [3]float64
			for i := range vals {
				if _, err := io.ReadFull(br, buf); err != nil {
					return nil, fmt.Errorf("%w: reading PFM sample: %v", rterr.ErrFileError, err)
				}
				vals[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(buf)))
			}
			_ = img.Set(x, y, color.New(vals[0], vals[1], vals[2]))
		}
	}
	return img, nil
}
