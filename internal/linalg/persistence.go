package linalg

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/lumenray/raytrace/rterr"
)

// Dump writes the matrix in the on-disk form described in spec.md §6:
// rows:uint64, cols:uint64, followed by rows*cols elements in row-major
// order, native (little) endian.
func (m Matrix) Dump(w io.Writer) error {
	header := make([]byte, 16)
	binary.LittleEndian.PutUint64(header[0:8], uint64(m.rows))
	binary.LittleEndian.PutUint64(header[8:16], uint64(m.cols))
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w: writing matrix header: %v", rterr.ErrFileError, err)
	}
	buf := make([]byte, 8)
	for r := 0; r < m.rows; r++ {
		row, _ := m.Row(r)
		for _, v := range row {
			binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
			if _, err := w.Write(buf); err != nil {
				return fmt.Errorf("%w: writing matrix element: %v", rterr.ErrFileError, err)
			}
		}
	}
	return nil
}

// Load reads a matrix previously written by Dump.
func Load(r io.Reader) (Matrix, error) {
	header := make([]byte, 16)
	if _, err := io.ReadFull(r, header); err != nil {
		return Matrix{}, fmt.Errorf("%w: reading matrix header: %v", rterr.ErrFileError, err)
	}
	rows := int(binary.LittleEndian.Uint64(header[0:8]))
	cols := int(binary.LittleEndian.Uint64(header[8:16]))
	m, err := Zeros(rows, cols)
	if err != nil {
		return Matrix{}, fmt.Errorf("%w: %v", rterr.ErrFileError, err)
	}
	buf := make([]byte, 8)
	for rr := 0; rr < rows; rr++ {
		for cc := 0; cc < cols; cc++ {
			if _, err := io.ReadFull(r, buf); err != nil {
				return Matrix{}, fmt.Errorf("%w: reading matrix element: %v", rterr.ErrFileError, err)
			}
			m.set(rr, cc, math.Float64frombits(binary.LittleEndian.Uint64(buf)))
		}
	}
	return m, nil
}
