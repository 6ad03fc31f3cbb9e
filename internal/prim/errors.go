package prim

import (
	"fmt"

	"github.com/lumenray/raytrace/rterr"
)

func errDomainf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", rterr.ErrDomainError, fmt.Sprintf(format, args...))
}

func errDegeneratef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", rterr.ErrGeometryDegenerate, fmt.Sprintf(format, args...))
}
