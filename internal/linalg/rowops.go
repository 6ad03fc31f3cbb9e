package linalg

import "fmt"
import "github.com/lumenray/raytrace/rterr"

// Swap exchanges logical rows i and j in O(1) by exchanging their
// permutation handles rather than copying row data.
func (m *Matrix) Swap(i, j int) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.rows {
		return fmt.Errorf("%w: swap(%d,%d) outside %d rows", rterr.ErrOutOfBounds, i, j, m.rows)
	}
	m.rowIndex[i], m.rowIndex[j] = m.rowIndex[j], m.rowIndex[i]
	return nil
}

// ScaleRow multiplies logical row i by a, in O(cols).
func (m *Matrix) ScaleRow(i int, a Scalar) error {
	if i < 0 || i >= m.rows {
		return fmt.Errorf("%w: row %d outside %d rows", rterr.ErrOutOfBounds, i, m.rows)
	}
	base := m.index(i, 0)
	for c := 0; c < m.cols; c++ {
		m.data[base+c] *= a
	}
	return nil
}

// AddRow performs A[dst,:] += a*A[src,:], in O(cols).
func (m *Matrix) AddRow(dst, src int, a Scalar) error {
	if dst < 0 || dst >= m.rows || src < 0 || src >= m.rows {
		return fmt.Errorf("%w: addRow(%d,%d) outside %d rows", rterr.ErrOutOfBounds, dst, src, m.rows)
	}
	dstBase := m.index(dst, 0)
	srcBase := m.index(src, 0)
	for c := 0; c < m.cols; c++ {
		m.data[dstBase+c] += a * m.data[srcBase+c]
	}
	return nil
}

// SubRow performs A[dst,:] -= a*A[src,:].
func (m *Matrix) SubRow(dst, src int, a Scalar) error {
	return m.AddRow(dst, src, -a)
}
