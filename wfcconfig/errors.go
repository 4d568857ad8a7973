package wfcconfig

import "errors"

var (
	// ErrUnknownWrapping indicates a wrapping field held a value other
	// than "none", "horizontal" ("h", "x"), "vertical" ("v", "y"), or
	// "both".
	ErrUnknownWrapping = errors.New("wfcconfig: unknown wrapping mode")
	// ErrUnknownSymmetry indicates a symmetries list held a value this
	// package does not recognize.
	ErrUnknownSymmetry = errors.New("wfcconfig: unknown symmetry name")
	// ErrInvalidColor indicates a bitmap cell was not a "#rrggbb" string.
	ErrInvalidColor = errors.New("wfcconfig: invalid color literal")
	// ErrEmptyBitmap indicates a tile document had no bitmap rows.
	ErrEmptyBitmap = errors.New("wfcconfig: tile bitmap has no rows")
	// ErrNonRectangularBitmap indicates a tile bitmap's rows differed in
	// length.
	ErrNonRectangularBitmap = errors.New("wfcconfig: tile bitmap rows must share the same length")
)
