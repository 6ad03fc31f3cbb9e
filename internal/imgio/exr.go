package imgio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/lumenray/raytrace/rterr"
)

// float16 converts a float32 into the IEEE 754 half-precision bit
// pattern, rounding toward zero on overflow rather than producing
// infinities, sufficient for the HDR intermediate path this writer
// targets.
func float16(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16((bits >> 16) & 0x8000)
	exp := int32((bits>>23)&0xff) - 127 + 15
	mant := bits & 0x7fffff
	switch {
	case exp <= 0:
		return sign
	case exp >= 0x1f:
		return sign | 0x7bff // largest finite half
	default:
		return sign | uint16(exp<<10) | uint16(mant>>13)
	}
}

// SaveEXR writes a minimal single-part, uncompressed, half-float RGB
// OpenEXR file. This is not a general-purpose EXR encoder: it supports
// exactly the scanline/no-compression/half-RGB case the render
// pipeline's HDR intermediate path needs; tiled layouts, multipart
// files, and the documented compression codecs are out of scope.
func SaveEXR(w io.Writer, img *Image) error {
	var buf []byte
	buf = append(buf, 0x76, 0x2f, 0x31, 0x01) // magic
	buf = append(buf, 2, 0, 0, 0)             // version 2, no flags

	writeAttr := func(name, typ string, value []byte) {
		buf = append(buf, []byte(name)...)
		buf = append(buf, 0)
		buf = append(buf, []byte(typ)...)
		buf = append(buf, 0)
		size := make([]byte, 4)
		binary.LittleEndian.PutUint32(size, uint32(len(value)))
		buf = append(buf, size...)
		buf = append(buf, value...)
	}

	channels := []byte{}
	for _, name := range []string{"B", "G", "R"} {
		channels = append(channels, []byte(name)...)
		channels = append(channels, 0)
		chType := make([]byte, 16)
		binary.LittleEndian.PutUint32(chType[0:4], 1) // HALF
		binary.LittleEndian.PutUint32(chType[8:12], 1) // xSampling
		binary.LittleEndian.PutUint32(chType[12:16], 1) // ySampling
		channels = append(channels, chType...)
	}
	channels = append(channels, 0) // terminator
	writeAttr("channels", "chlist", channels)

	writeAttr("compression", "compression", []byte{0}) // NO_COMPRESSION

	dataWindow := make([]byte, 16)
	binary.LittleEndian.PutUint32(dataWindow[0:4], 0)
	binary.LittleEndian.PutUint32(dataWindow[4:8], 0)
	binary.LittleEndian.PutUint32(dataWindow[8:12], uint32(img.Width-1))
	binary.LittleEndian.PutUint32(dataWindow[12:16], uint32(img.Height-1))
	writeAttr("dataWindow", "box2i", dataWindow)
	writeAttr("displayWindow", "box2i", dataWindow)

	writeAttr("lineOrder", "lineOrder", []byte{0}) // INCREASING_Y
	pixelAspect := make([]byte, 4)
	binary.LittleEndian.PutUint32(pixelAspect, math.Float32bits(1.0))
	writeAttr("pixelAspectRatio", "float", pixelAspect)

	screenWindowCenter := make([]byte, 8)
	writeAttr("screenWindowCenter", "v2f", screenWindowCenter)
	screenWindowWidth := make([]byte, 4)
	binary.LittleEndian.PutUint32(screenWindowWidth, math.Float32bits(1.0))
	writeAttr("screenWindowWidth", "float", screenWindowWidth)

	buf = append(buf, 0) // header terminator

	bytesPerRow := img.Width * 3 * 2
	offsetTableStart := len(buf) + img.Height*8
	offsets := make([]uint64, img.Height)
	var scanlines []byte
	for y := 0; y < img.Height; y++ {
		offsets[y] = uint64(offsetTableStart + len(scanlines))
		lineBuf := make([]byte, 4+4+bytesPerRow)
		binary.LittleEndian.PutUint32(lineBuf[0:4], uint32(y))
		binary.LittleEndian.PutUint32(lineBuf[4:8], uint32(bytesPerRow))
		off := 8
		for _, extract := range []func(c [3]float64) float64{
			func(c [3]float64) float64 { return c[2] }, // B
			func(c [3]float64) float64 { return c[1] }, // G
			func(c [3]float64) float64 { return c[0] }, // R
		} {
			for x := 0; x < img.Width; x++ {
				c, _ := img.At(x, y)
				v := extract([3]float64{c.R, c.G, c.B})
				binary.LittleEndian.PutUint16(lineBuf[off:off+2], float16(float32(v)))
				off += 2
			}
		}
		scanlines = append(scanlines, lineBuf...)
	}

	offsetTable := make([]byte, img.Height*8)
	for i, o := range offsets {
		binary.LittleEndian.PutUint64(offsetTable[i*8:i*8+8], o)
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("%w: writing EXR header: %v", rterr.ErrFileError, err)
	}
	if _, err := w.Write(offsetTable); err != nil {
		return fmt.Errorf("%w: writing EXR offset table: %v", rterr.ErrFileError, err)
	}
	if _, err := w.Write(scanlines); err != nil {
		return fmt.Errorf("%w: writing EXR scanlines: %v", rterr.ErrFileError, err)
	}
	return nil
}
