// Package linalg implements a dense, arbitrary-rank, real-valued matrix
// engine: row-echelon reduction, PLU decomposition, inverse, determinant,
// null-space, and rank, with a row-index permutation layered over a
// contiguous element buffer so that pivoting swaps are O(1) at the
// logical-row level (see SPEC_FULL.md, section 3).
package linalg

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/lumenray/raytrace/internal/prim"
	"github.com/lumenray/raytrace/rterr"
)

// Scalar is the real element type, matching prim.Scalar.
type Scalar = prim.Scalar

// Epsilon is the tolerance used for pivot and "is this zero" checks.
const Epsilon Scalar = 1e-9

// Matrix is a dense, real-valued, rows x cols matrix. Dimensions are
// immutable after construction; copies are deep. Row operations resolve
// through rowIndex so a logical Swap is a constant-time index exchange.
type Matrix struct {
	rows, cols int
	data       []Scalar
	rowIndex   []int
}

func validDims(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: rows=%d cols=%d must both be >= 1", rterr.ErrDimensionMismatch, rows, cols)
	}
	return nil
}

func newMatrix(rows, cols int) Matrix {
	idx := make([]int, rows)
	for i := range idx {
		idx[i] = i
	}
	return Matrix{rows: rows, cols: cols, data: make([]Scalar, rows*cols), rowIndex: idx}
}

// Zeros returns a rows x cols matrix of zeros.
func Zeros(rows, cols int) (Matrix, error) {
	if err := validDims(rows, cols); err != nil {
		return Matrix{}, err
	}
	return newMatrix(rows, cols), nil
}

// Ones returns a rows x cols matrix of ones.
func Ones(rows, cols int) (Matrix, error) {
	m, err := Zeros(rows, cols)
	if err != nil {
		return Matrix{}, err
	}
	for i := range m.data {
		m.data[i] = 1
	}
	return m, nil
}

// Identity returns a rows x cols matrix with ones on the main diagonal.
func Identity(rows, cols int) (Matrix, error) {
	m, err := Zeros(rows, cols)
	if err != nil {
		return Matrix{}, err
	}
	for i := 0; i < rows && i < cols; i++ {
		m.set(i, i, 1)
	}
	return m, nil
}

// FromRows builds a matrix from a slice of equal-length rows.
func FromRows(rows [][]Scalar) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, fmt.Errorf("%w: no rows given", rterr.ErrDimensionMismatch)
	}
	cols := len(rows[0])
	if err := validDims(len(rows), cols); err != nil {
		return Matrix{}, err
	}
	m := newMatrix(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return Matrix{}, fmt.Errorf("%w: row %d has %d columns, want %d", rterr.ErrDimensionMismatch, r, len(row), cols)
		}
		for c, v := range row {
			m.set(r, c, v)
		}
	}
	return m, nil
}

// Random returns a rows x cols matrix of uniform random values in
// [lo, hi], rounded to precisionDigits decimal digits.
func Random(rows, cols int, lo, hi Scalar, precisionDigits int) (Matrix, error) {
	m, err := Zeros(rows, cols)
	if err != nil {
		return Matrix{}, err
	}
	scale := 1.0
	for i := 0; i < precisionDigits; i++ {
		scale *= 10
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := lo + rand.Float64()*(hi-lo)
			v = roundTo(v, scale)
			m.set(r, c, v)
		}
	}
	return m, nil
}

func roundTo(v, scale Scalar) Scalar {
	if scale <= 1 {
		return v
	}
	if v >= 0 {
		return Scalar(int64(v*scale+0.5)) / scale
	}
	return Scalar(int64(v*scale-0.5)) / scale
}

// Rows returns the number of logical rows.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// physicalRow resolves a logical row through the permutation.
func (m Matrix) physicalRow(r int) int { return m.rowIndex[r] }

func (m Matrix) index(r, c int) int { return m.physicalRow(r)*m.cols + c }

func (m Matrix) checkBounds(r, c int) error {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d matrix", rterr.ErrOutOfBounds, r, c, m.rows, m.cols)
	}
	return nil
}

// At returns the 0-based (r,c) element.
func (m Matrix) At(r, c int) (Scalar, error) {
	if err := m.checkBounds(r, c); err != nil {
		return 0, err
	}
	return m.data[m.index(r, c)], nil
}

// set is the unchecked internal setter used by constructors.
func (m *Matrix) set(r, c int, v Scalar) { m.data[m.index(r, c)] = v }

// Set assigns the 0-based (r,c) element.
func (m *Matrix) Set(r, c int, v Scalar) error {
	if err := m.checkBounds(r, c); err != nil {
		return err
	}
	m.set(r, c, v)
	return nil
}

// AtPos is the 1-based accessor, for direct transcription from
// linear-algebra texts.
func (m Matrix) AtPos(r, c int) (Scalar, error) { return m.At(r-1, c-1) }

// SetPos is the 1-based setter.
func (m *Matrix) SetPos(r, c int, v Scalar) error { return m.Set(r-1, c-1, v) }

// Copy returns a deep copy with a canonicalized (identity) row
// permutation.
func (m Matrix) Copy() Matrix {
	out := newMatrix(m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.set(r, c, m.data[m.index(r, c)])
		}
	}
	return out
}

// Row returns a copy of logical row r as a slice.
func (m Matrix) Row(r int) ([]Scalar, error) {
	if r < 0 || r >= m.rows {
		return nil, fmt.Errorf("%w: row %d outside %d rows", rterr.ErrOutOfBounds, r, m.rows)
	}
	out := make([]Scalar, m.cols)
	base := m.index(r, 0)
	copy(out, m.data[base:base+m.cols])
	return out, nil
}

// Submatrix returns the rows x cols block starting at (r0, c0).
func (m Matrix) Submatrix(r0, c0, rows, cols int) (Matrix, error) {
	if err := m.checkBounds(r0, c0); err != nil {
		return Matrix{}, err
	}
	if err := m.checkBounds(r0+rows-1, c0+cols-1); err != nil {
		return Matrix{}, err
	}
	out := newMatrix(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v, _ := m.At(r0+r, c0+c)
			out.set(r, c, v)
		}
	}
	return out, nil
}

// CopyInto writes m's elements into dst starting at (startRow, startCol),
// supplementing the original matrix::assignInto helper (see SPEC_FULL.md,
// "Supplemented features").
func (m Matrix) CopyInto(dst *Matrix, startRow, startCol int) error {
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			v, _ := m.At(r, c)
			if err := dst.Set(startRow+r, startCol+c, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m Matrix) String() string {
	var b strings.Builder
	for r := 0; r < m.rows; r++ {
		row, _ := m.Row(r)
		for c, v := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%.6g", v)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// sameDims reports whether a and b have identical shape.
func sameDims(a, b Matrix) bool { return a.rows == b.rows && a.cols == b.cols }

// Add returns a + b element-wise.
func Add(a, b Matrix) (Matrix, error) {
	if !sameDims(a, b) {
		return Matrix{}, fmt.Errorf("%w: %dx%d + %dx%d", rterr.ErrDimensionMismatch, a.rows, a.cols, b.rows, b.cols)
	}
	out := newMatrix(a.rows, a.cols)
	for r := 0; r < a.rows; r++ {
		for c := 0; c < a.cols; c++ {
			av, _ := a.At(r, c)
			bv, _ := b.At(r, c)
			out.set(r, c, av+bv)
		}
	}
	return out, nil
}

// Sub returns a - b element-wise.
func Sub(a, b Matrix) (Matrix, error) {
	if !sameDims(a, b) {
		return Matrix{}, fmt.Errorf("%w: %dx%d - %dx%d", rterr.ErrDimensionMismatch, a.rows, a.cols, b.rows, b.cols)
	}
	out := newMatrix(a.rows, a.cols)
	for r := 0; r < a.rows; r++ {
		for c := 0; c < a.cols; c++ {
			av, _ := a.At(r, c)
			bv, _ := b.At(r, c)
			out.set(r, c, av-bv)
		}
	}
	return out, nil
}

// Scale returns a with every element multiplied by s.
func Scale(a Matrix, s Scalar) Matrix {
	out := newMatrix(a.rows, a.cols)
	for r := 0; r < a.rows; r++ {
		for c := 0; c < a.cols; c++ {
			v, _ := a.At(r, c)
			out.set(r, c, v*s)
		}
	}
	return out
}

// Mul returns the matrix product a*b.
func Mul(a, b Matrix) (Matrix, error) {
	if a.cols != b.rows {
		return Matrix{}, fmt.Errorf("%w: %dx%d * %dx%d", rterr.ErrDimensionMismatch, a.rows, a.cols, b.rows, b.cols)
	}
	out := newMatrix(a.rows, b.cols)
	for r := 0; r < a.rows; r++ {
		for c := 0; c < b.cols; c++ {
			var sum Scalar
			for k := 0; k < a.cols; k++ {
				av, _ := a.At(r, k)
				bv, _ := b.At(k, c)
				sum += av * bv
			}
			out.set(r, c, sum)
		}
	}
	return out, nil
}

// Transpose returns a^T.
func Transpose(a Matrix) Matrix {
	out := newMatrix(a.cols, a.rows)
	for r := 0; r < a.rows; r++ {
		for c := 0; c < a.cols; c++ {
			v, _ := a.At(r, c)
			out.set(c, r, v)
		}
	}
	return out
}

// Equal reports whether a and b are element-wise equal within Epsilon.
func Equal(a, b Matrix) bool {
	if !sameDims(a, b) {
		return false
	}
	for r := 0; r < a.rows; r++ {
		for c := 0; c < a.cols; c++ {
			av, _ := a.At(r, c)
			bv, _ := b.At(r, c)
			if !prim.NearlyEqual(av, bv) {
				return false
			}
		}
	}
	return true
}
