package grid

import "errors"

var (
	// ErrInvalidSize indicates a requested grid dimension was <= 0.
	ErrInvalidSize = errors.New("grid: width and height must be positive")
	// ErrNonRectangular indicates FromRows was given rows of differing length.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfRange indicates a coordinate or window falls outside the grid
	// and the relevant axis is not configured to wrap.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
	// ErrNotSquare indicates a D4 transform was requested on a non-square grid.
	ErrNotSquare = errors.New("grid: transform requires a square grid")
	// ErrUnknownSymmetry indicates an unrecognized d4.Symmetry value.
	ErrUnknownSymmetry = errors.New("grid: unknown symmetry")
)
