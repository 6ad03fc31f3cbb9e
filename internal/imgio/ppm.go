package imgio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lumenray/raytrace/color"
	"github.com/lumenray/raytrace/rterr"
)

// SavePPM writes img as a binary (P6) PPM, 8-bit gamma-encoded RGB.
func SavePPM(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("%w: writing PPM header: %v", rterr.ErrFileError, err)
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c, _ := img.At(x, y)
			r, g, b := c.Bytes()
			if _, err := bw.Write([]byte{r, g, b}); err != nil {
				return fmt.Errorf("%w: writing PPM pixel: %v", rterr.ErrFileError, err)
			}
		}
	}
	return bw.Flush()
}

// LoadPPM reads a binary (P6) PPM into a new RGB8-tagged Image.
func LoadPPM(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)
	magic, err := readToken(br)
	if err != nil {
		return nil, err
	}
	if magic != "P6" {
		return nil, fmt.Errorf("%w: unsupported PPM magic %q", rterr.ErrFileError, magic)
	}
	width, height, maxval, err := readPNMHeader(br)
	if err != nil {
		return nil, err
	}
	img, err := New(width, height, RGB8)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if _, err := io.ReadFull(br, buf); err != nil {
				return nil, fmt.Errorf("%w: reading PPM pixel: %v", rterr.ErrFileError, err)
			}
			c := color.FromBytes(scaleByte(buf[0], maxval), scaleByte(buf[1], maxval), scaleByte(buf[2], maxval))
			_ = img.Set(x, y, c)
		}
	}
	return img, nil
}

func scaleByte(v byte, maxval int) byte {
	if maxval == 255 {
		return v
	}
	return byte(int(v) * 255 / maxval)
}

// SavePGM writes img as a binary (P5) PGM, 8-bit gamma-encoded
// luminance.
func SavePGM(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P5\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("%w: writing PGM header: %v", rterr.ErrFileError, err)
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c, _ := img.At(x, y)
			v := uint8(clampTo255(c.ToGamma().Luminance()))
			if _, err := bw.Write([]byte{v}); err != nil {
				return fmt.Errorf("%w: writing PGM pixel: %v", rterr.ErrFileError, err)
			}
		}
	}
	return bw.Flush()
}

func clampTo255(v float64) float64 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v * 255.0
}

// LoadPGM reads a binary (P5) PGM into a new GREY8-tagged Image.
func LoadPGM(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)
	magic, err := readToken(br)
	if err != nil {
		return nil, err
	}
	if magic != "P5" {
		return nil, fmt.Errorf("%w: unsupported PGM magic %q", rterr.ErrFileError, magic)
	}
	width, height, maxval, err := readPNMHeader(br)
	if err != nil {
		return nil, err
	}
	img, err := New(width, height, GREY8)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 1)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if _, err := io.ReadFull(br, buf); err != nil {
				return nil, fmt.Errorf("%w: reading PGM pixel: %v", rterr.ErrFileError, err)
			}
			v := scaleByte(buf[0], maxval)
			_ = img.Set(x, y, color.FromBytes(v, v, v))
		}
	}
	return img, nil
}

func readToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			return "", fmt.Errorf("%w: reading PNM token: %v", rterr.ErrFileError, err)
		}
		if b == '#' {
			if _, err := br.ReadString('\n'); err != nil {
				return "", fmt.Errorf("%w: reading PNM comment: %v", rterr.ErrFileError, err)
			}
			continue
		}
		if isSpace(b) {
			if len(tok) == 0 {
				continue
			}
			return string(tok), nil
		}
		tok = append(tok, b)
	}
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }

func readPNMHeader(br *bufio.Reader) (width, height, maxval int, err error) {
	wtok, err := readToken(br)
	if err != nil {
		return 0, 0, 0, err
	}
	htok, err := readToken(br)
	if err != nil {
		return 0, 0, 0, err
	}
	mtok, err := readToken(br)
	if err != nil {
		return 0, 0, 0, err
	}
	width, err = parsePositiveInt(wtok)
	if err != nil {
		return 0, 0, 0, err
	}
	height, err = parsePositiveInt(htok)
	if err != nil {
		return 0, 0, 0, err
	}
	maxval, err = parsePositiveInt(mtok)
	if err != nil {
		return 0, 0, 0, err
	}
	return width, height, maxval, nil
}

func parsePositiveInt(s string) (int, error) {
	v := 0
	if s == "" {
		return 0, fmt.Errorf("%w: empty PNM header field", rterr.ErrFileError)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: invalid PNM header field %q", rterr.ErrFileError, s)
		}
		v = v*10 + int(r-'0')
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: non-positive PNM header field %q", rterr.ErrFileError, s)
	}
	return v, nil
}
