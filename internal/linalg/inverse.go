package linalg

import (
	"fmt"

	"github.com/lumenray/raytrace/rterr"
)

// Inverse computes the matrix inverse: the reciprocal for N=1, the
// closed form for N=2, and (1/det)*adjugate for N>=3. Fails with
// rterr.ErrSingular when |det| <= Epsilon.
func (m Matrix) Inverse() (Matrix, error) {
	if m.rows != m.cols {
		return Matrix{}, fmt.Errorf("%w: inverse requires a square matrix, got %dx%d", rterr.ErrNonSquare, m.rows, m.cols)
	}
	det, err := m.Det()
	if err != nil {
		return Matrix{}, err
	}
	if absScalar(det) <= Epsilon {
		return Matrix{}, fmt.Errorf("%w: |det|=%g <= epsilon", rterr.ErrSingular, absScalar(det))
	}

	switch m.rows {
	case 1:
		out, _ := Zeros(1, 1)
		out.Set(0, 0, 1/det)
		return out, nil
	case 2:
		a, b := mustAt(m, 0, 0), mustAt(m, 0, 1)
		c, d := mustAt(m, 1, 0), mustAt(m, 1, 1)
		out, _ := Zeros(2, 2)
		out.Set(0, 0, d/det)
		out.Set(0, 1, -b/det)
		out.Set(1, 0, -c/det)
		out.Set(1, 1, a/det)
		return out, nil
	default:
		adj, err := m.Adjugate()
		if err != nil {
			return Matrix{}, err
		}
		return Scale(adj, 1/det), nil
	}
}

// Adjugate returns the classical adjugate (transpose of the cofactor
// matrix): adjugate[i][j] = cofactor(j, i).
func (m Matrix) Adjugate() (Matrix, error) {
	if m.rows != m.cols {
		return Matrix{}, fmt.Errorf("%w: adjugate requires a square matrix, got %dx%d", rterr.ErrNonSquare, m.rows, m.cols)
	}
	out := newMatrix(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			cof, err := m.Cofactor(j, i)
			if err != nil {
				return Matrix{}, err
			}
			out.set(i, j, cof)
		}
	}
	return out, nil
}
