package linalg

import (
	"fmt"

	"github.com/lumenray/raytrace/rterr"
)

// PLU computes a permutation P, unit-lower-triangular L, and
// upper-triangular U such that P*A = L*U, using partial pivoting on the
// largest-magnitude entry in the working column. Only defined for square
// matrices; returns rterr.ErrNonSquare otherwise. A zero pivot (singular
// matrix) does not fail the decomposition: the corresponding column of U
// is simply left without elimination below it.
func (m Matrix) PLU() (P, L, U Matrix, err error) {
	n := m.rows
	if m.rows != m.cols {
		return Matrix{}, Matrix{}, Matrix{}, fmt.Errorf("%w: PLU requires a square matrix, got %dx%d", rterr.ErrNonSquare, m.rows, m.cols)
	}
	U = m.Copy()
	L, _ = Identity(n, n)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for k := 0; k < n; k++ {
		best := k
		bestMag := absScalar(mustAt(U, k, k))
		for r := k + 1; r < n; r++ {
			mag := absScalar(mustAt(U, r, k))
			if mag > bestMag {
				best, bestMag = r, mag
			}
		}
		if best != k {
			U.Swap(k, best)
			perm[k], perm[best] = perm[best], perm[k]
			for c := 0; c < k; c++ {
				lk := mustAt(L, k, c)
				lb := mustAt(L, best, c)
				L.Set(k, c, lb)
				L.Set(best, c, lk)
			}
		}
		pivot := mustAt(U, k, k)
		if absScalar(pivot) <= Epsilon {
			continue
		}
		for r := k + 1; r < n; r++ {
			factor := mustAt(U, r, k) / pivot
			if factor != 0 {
				L.Set(r, k, factor)
				U.AddRow(r, k, -factor)
			}
		}
	}

	P, _ = Zeros(n, n)
	for i, j := range perm {
		P.Set(i, j, 1)
	}
	return P, L, U, nil
}
