package core

import "github.com/pkg/errors"

// Error kinds for contract violations. All of these are recoverable by the
// caller; the engine never terminates the process.
var (
	// ErrInvalidDimension reports a grid constructed with a non-positive
	// width or height. Construction fails without allocating.
	ErrInvalidDimension = errors.New("grid dimension must be positive")

	// ErrInvalidState reports a write of a cell value outside the grid's
	// legal state domain. The grid is left unchanged.
	ErrInvalidState = errors.New("cell state outside legal domain")

	// ErrDimensionMismatch reports a step invoked with a current/scratch
	// pair of differing dimensions. No cell is written.
	ErrDimensionMismatch = errors.New("grid dimensions do not match")
)
