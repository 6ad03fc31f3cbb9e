package linalg

import (
	"fmt"

	"github.com/lumenray/raytrace/rterr"
)

func errNonSquareForEigen(m Matrix) error {
	return fmt.Errorf("%w: eigenvalues require a square matrix, got %dx%d", rterr.ErrNonSquare, m.rows, m.cols)
}
