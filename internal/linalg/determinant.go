package linalg

import (
	"fmt"

	"github.com/lumenray/raytrace/rterr"
)

// Det computes the determinant, using fast closed forms for N in
// {1,2,3} (Sarrus' rule for 3) and cofactor expansion along row 0 for
// N >= 4. Only defined for square matrices.
func (m Matrix) Det() (Scalar, error) {
	if m.rows != m.cols {
		return 0, fmt.Errorf("%w: determinant requires a square matrix, got %dx%d", rterr.ErrNonSquare, m.rows, m.cols)
	}
	switch m.rows {
	case 1:
		return mustAt(m, 0, 0), nil
	case 2:
		a, b := mustAt(m, 0, 0), mustAt(m, 0, 1)
		c, d := mustAt(m, 1, 0), mustAt(m, 1, 1)
		return a*d - b*c, nil
	case 3:
		a, b, c := mustAt(m, 0, 0), mustAt(m, 0, 1), mustAt(m, 0, 2)
		d, e, f := mustAt(m, 1, 0), mustAt(m, 1, 1), mustAt(m, 1, 2)
		g, h, i := mustAt(m, 2, 0), mustAt(m, 2, 1), mustAt(m, 2, 2)
		return a*e*i + b*f*g + c*d*h - c*e*g - b*d*i - a*f*h, nil
	default:
		var det Scalar
		sign := Scalar(1)
		for c := 0; c < m.cols; c++ {
			minor, err := m.Minor(0, c)
			if err != nil {
				return 0, err
			}
			minorDet, err := minor.Det()
			if err != nil {
				return 0, err
			}
			det += sign * mustAt(m, 0, c) * minorDet
			sign = -sign
		}
		return det, nil
	}
}

// Minor returns the (rows-1)x(cols-1) submatrix formed by deleting row r
// and column c.
func (m Matrix) Minor(r, c int) (Matrix, error) {
	if err := m.checkBounds(r, c); err != nil {
		return Matrix{}, err
	}
	out := newMatrix(m.rows-1, m.cols-1)
	outR := 0
	for rr := 0; rr < m.rows; rr++ {
		if rr == r {
			continue
		}
		outC := 0
		for cc := 0; cc < m.cols; cc++ {
			if cc == c {
				continue
			}
			out.set(outR, outC, mustAt(m, rr, cc))
			outC++
		}
		outR++
	}
	return out, nil
}

// Cofactor returns the (r,c) cofactor: (-1)^(r+c) * Det(Minor(r,c)).
func (m Matrix) Cofactor(r, c int) (Scalar, error) {
	minor, err := m.Minor(r, c)
	if err != nil {
		return 0, err
	}
	det, err := minor.Det()
	if err != nil {
		return 0, err
	}
	if (r+c)%2 != 0 {
		det = -det
	}
	return det, nil
}

// Trace returns the sum of the main diagonal of a square matrix.
func (m Matrix) Trace() (Scalar, error) {
	if m.rows != m.cols {
		return 0, fmt.Errorf("%w: trace requires a square matrix, got %dx%d", rterr.ErrNonSquare, m.rows, m.cols)
	}
	var sum Scalar
	for i := 0; i < m.rows; i++ {
		sum += mustAt(m, i, i)
	}
	return sum, nil
}
