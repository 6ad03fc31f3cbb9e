// Package rterr defines the error taxonomy shared by every layer of the
// ray tracer: the matrix engine, the geometry layer, the surface library
// and the trace evaluator all report failures as one of these sentinels
// wrapped with context, so callers can use errors.Is against a stable set
// of values instead of string matching.
package rterr

import "errors"

var (
	// ErrDimensionMismatch flags matrix/vector operands of incompatible shape.
	ErrDimensionMismatch = errors.New("rterr: dimension mismatch")

	// ErrOutOfBounds flags an index outside the valid row, column, or channel range.
	ErrOutOfBounds = errors.New("rterr: index out of bounds")

	// ErrSingular flags an inverse attempted on a matrix with |det| <= epsilon.
	ErrSingular = errors.New("rterr: matrix is singular")

	// ErrNonSquare flags PLU or trace requested on a non-square matrix.
	ErrNonSquare = errors.New("rterr: matrix is not square")

	// ErrDomainError flags sqrt of a negative, an out-of-range acos argument,
	// a zero sphere radius, or a zero magnitude passed to Normalize.
	ErrDomainError = errors.New("rterr: value outside function domain")

	// ErrGeometryDegenerate flags a zero-area triangle, a zero-normal plane,
	// or a quadric with a fully singular coefficient matrix.
	ErrGeometryDegenerate = errors.New("rterr: degenerate geometry")

	// ErrFileError flags an image or matrix file that could not be opened,
	// read, written, or parsed.
	ErrFileError = errors.New("rterr: file error")

	// ErrConfigError flags a scene configuration that cannot be built:
	// a YAML parse error, an unknown object or light type, or an object
	// constructor that rejects its parameters. No check of a medium's
	// emissivity + reflectivity + transparency sum returns it.
	ErrConfigError = errors.New("rterr: invalid configuration")
)
