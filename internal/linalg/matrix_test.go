package linalg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInverse2x2(t *testing.T) {
	// The 2x2 matrix [[1,2],[3,4]] has determinant -2 and inverse
	// [[-2,1],[1.5,-0.5]].
	a, err := FromRows([][]Scalar{{1, 2}, {3, 4}})
	require.NoError(t, err)

	det, err := a.Det()
	require.NoError(t, err)
	assert.InDelta(t, -2.0, det, 1e-9)

	inv, err := a.Inverse()
	require.NoError(t, err)
	want, _ := FromRows([][]Scalar{{-2, 1}, {1.5, -0.5}})
	assert.True(t, Equal(inv, want), "Inverse() = %v, want %v", inv, want)
}

func TestInverseRoundTrip(t *testing.T) {
	a, err := FromRows([][]Scalar{
		{4, 7, 2},
		{3, 5, 1},
		{2, 1, 9},
	})
	require.NoError(t, err)

	inv, err := a.Inverse()
	require.NoError(t, err)

	product, err := Mul(a, inv)
	require.NoError(t, err)
	ident, _ := Identity(3, 3)
	assert.True(t, Equal(product, ident), "A*Ainv = %v, want I", product)

	product2, err := Mul(inv, a)
	require.NoError(t, err)
	assert.True(t, Equal(product2, ident), "Ainv*A = %v, want I", product2)
}

func TestTransposeInvolution(t *testing.T) {
	a, _ := FromRows([][]Scalar{{1, 2, 3}, {4, 5, 6}})
	assert.True(t, Equal(Transpose(Transpose(a)), a))
}

func TestTransposeOfProduct(t *testing.T) {
	a, _ := FromRows([][]Scalar{{1, 2}, {3, 4}})
	b, _ := FromRows([][]Scalar{{5, 6}, {7, 8}})
	ab, err := Mul(a, b)
	require.NoError(t, err)
	lhs := Transpose(ab)

	bt := Transpose(b)
	at := Transpose(a)
	rhs, err := Mul(bt, at)
	require.NoError(t, err)

	assert.True(t, Equal(lhs, rhs))
}

func TestDeterminantOfProduct(t *testing.T) {
	a, _ := FromRows([][]Scalar{{2, 0}, {1, 3}})
	b, _ := FromRows([][]Scalar{{1, 4}, {2, 1}})
	ab, err := Mul(a, b)
	require.NoError(t, err)

	detA, _ := a.Det()
	detB, _ := b.Det()
	detAB, _ := ab.Det()

	assert.InDelta(t, detA*detB, detAB, 1e-9)
}

func TestPLUReconstructsA(t *testing.T) {
	a, _ := FromRows([][]Scalar{
		{2, 1, 1},
		{4, 3, 3},
		{8, 7, 9},
	})
	p, l, u, err := a.PLU()
	require.NoError(t, err)
	assert.True(t, l.LowerTriangular())
	assert.True(t, u.UpperTriangular())

	lu, err := Mul(l, u)
	require.NoError(t, err)
	pa, err := Mul(p, a)
	require.NoError(t, err)
	assert.True(t, Equal(pa, lu), "P*A = %v, L*U = %v", pa, lu)
}

func TestPLUNonSquareFails(t *testing.T) {
	a, _ := FromRows([][]Scalar{{1, 2, 3}, {4, 5, 6}})
	_, _, _, err := a.PLU()
	assert.Error(t, err)
}

func TestRankOfSingularMatrix(t *testing.T) {
	a, _ := FromRows([][]Scalar{
		{1, 2, 3},
		{2, 4, 6},
		{1, 1, 1},
	})
	assert.Equal(t, 2, a.Rank())
	assert.True(t, a.Singular())
}

func TestNullSpaceSatisfiesAx0(t *testing.T) {
	a, _ := FromRows([][]Scalar{
		{1, 2, 3},
		{2, 4, 6},
	})
	ns := a.NullSpace()
	require.Equal(t, 3, ns.Rows())
	require.GreaterOrEqual(t, ns.Cols(), 1)

	for c := 0; c < ns.Cols(); c++ {
		col, err := ns.Submatrix(0, c, ns.Rows(), 1)
		require.NoError(t, err)
		product, err := Mul(a, col)
		require.NoError(t, err)
		for r := 0; r < product.Rows(); r++ {
			v, _ := product.At(r, 0)
			assert.InDelta(t, 0.0, v, 1e-6)
		}
	}
}

func TestSwapIsLogicalOnly(t *testing.T) {
	m, _ := FromRows([][]Scalar{{1, 2}, {3, 4}})
	require.NoError(t, m.Swap(0, 1))
	row0, _ := m.Row(0)
	row1, _ := m.Row(1)
	assert.Equal(t, []Scalar{3, 4}, row0)
	assert.Equal(t, []Scalar{1, 2}, row1)
	assert.Equal(t, []Scalar{1, 2, 3, 4}, m.data)
}

func TestPersistenceRoundTrip(t *testing.T) {
	m, _ := FromRows([][]Scalar{{1.5, -2.25}, {3, 4.125}})
	var buf bytes.Buffer
	require.NoError(t, m.Dump(&buf))

	loaded, err := Load(&buf)
	require.NoError(t, err)
	assert.True(t, Equal(m, loaded))
}

func TestOrthogonalIdentity(t *testing.T) {
	ident, _ := Identity(3, 3)
	assert.True(t, ident.Orthogonal())
}

func TestEigenvalues2x2(t *testing.T) {
	// [[2,0],[0,3]] has eigenvalues 2 and 3.
	m, _ := FromRows([][]Scalar{{2, 0}, {0, 3}})
	l0, l1, err := m.Eigenvalues2x2()
	require.NoError(t, err)
	got := map[Scalar]bool{l0: true, l1: true}
	assert.True(t, got[2] || approxContains(l0, l1, 2))
	assert.True(t, got[3] || approxContains(l0, l1, 3))
}

func approxContains(l0, l1, want Scalar) bool {
	const eps = 1e-6
	diff := l0 - want
	if diff < 0 {
		diff = -diff
	}
	if diff < eps {
		return true
	}
	diff = l1 - want
	if diff < 0 {
		diff = -diff
	}
	return diff < eps
}
