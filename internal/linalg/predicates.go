package linalg

import "github.com/lumenray/raytrace/internal/prim"

// Singular reports whether a square matrix has |det| <= Epsilon. For a
// non-square matrix it reports whether the matrix has less than full
// row/column rank.
func (m Matrix) Singular() bool {
	if m.rows != m.cols {
		return m.Rank() < min(m.rows, m.cols) //nolint:predeclared
	}
	det, err := m.Det()
	if err != nil {
		return true
	}
	return absScalar(det) <= Epsilon
}

// Orthogonal reports whether A^T*A = A*A^T = I.
func (m Matrix) Orthogonal() bool {
	if m.rows != m.cols {
		return false
	}
	t := Transpose(m)
	ident, _ := Identity(m.rows, m.rows)
	ta, err1 := Mul(t, m)
	at, err2 := Mul(m, t)
	if err1 != nil || err2 != nil {
		return false
	}
	return Equal(ta, ident) && Equal(at, ident)
}

// Symmetric reports whether A = A^T.
func (m Matrix) Symmetric() bool {
	if m.rows != m.cols {
		return false
	}
	return Equal(m, Transpose(m))
}

// SkewSymmetric reports whether A = -A^T.
func (m Matrix) SkewSymmetric() bool {
	if m.rows != m.cols {
		return false
	}
	return Equal(m, Scale(Transpose(m), -1))
}

// Diagonal reports whether every off-diagonal element is zero.
func (m Matrix) Diagonal() bool {
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if r != c && !prim.NearlyZero(mustAt(m, r, c)) {
				return false
			}
		}
	}
	return true
}

// UpperTriangular reports whether every element below the main diagonal
// is zero.
func (m Matrix) UpperTriangular() bool {
	for r := 0; r < m.rows; r++ {
		for c := 0; c < r && c < m.cols; c++ {
			if !prim.NearlyZero(mustAt(m, r, c)) {
				return false
			}
		}
	}
	return true
}

// LowerTriangular reports whether every element above the main diagonal
// is zero.
func (m Matrix) LowerTriangular() bool {
	for r := 0; r < m.rows; r++ {
		for c := r + 1; c < m.cols; c++ {
			if !prim.NearlyZero(mustAt(m, r, c)) {
				return false
			}
		}
	}
	return true
}

// HasEigenvalue reports whether lambda is an eigenvalue of a square
// matrix, tested via det(A - lambda*I) ~ 0.
func (m Matrix) HasEigenvalue(lambda Scalar) (bool, error) {
	if m.rows != m.cols {
		return false, errNonSquareForEigen(m)
	}
	ident, _ := Identity(m.rows, m.rows)
	shifted, err := Sub(m, Scale(ident, lambda))
	if err != nil {
		return false, err
	}
	det, err := shifted.Det()
	if err != nil {
		return false, err
	}
	return absScalar(det) <= Epsilon, nil
}

// Eigenvalues2x2 returns the two roots of lambda^2 - tr(A)*lambda +
// det(A) for a 2x2 matrix. Non-real eigenvalues are reported as NaN (see
// prim.SolveQuadratic).
func (m Matrix) Eigenvalues2x2() (l0, l1 Scalar, err error) {
	if m.rows != 2 || m.cols != 2 {
		return 0, 0, errNonSquareForEigen(m)
	}
	tr, _ := m.Trace()
	det, _ := m.Det()
	l0, l1 = prim.SolveQuadratic(1, -tr, det)
	return l0, l1, nil
}

