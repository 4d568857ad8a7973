package overlapping

import "errors"

var (
	// ErrInvalidPatternSize indicates Options.PatternSize < 2.
	ErrInvalidPatternSize = errors.New("overlapping: pattern size must be at least 2")
	// ErrInvalidStride indicates Options.Stride has a component < 1.
	ErrInvalidStride = errors.New("overlapping: stride components must be at least 1")
	// ErrInvalidOutputSize indicates Options.OutputWidth/Height are not
	// positive, or do not divide exactly given the configured stride and
	// output wrapping (spec.md section 4.3, "Wave size").
	ErrInvalidOutputSize = errors.New("overlapping: output size is not valid for the configured stride and wrapping")
	// ErrEmptyExemplar indicates the exemplar grid is smaller than the
	// configured pattern size on some non-wrapping axis, so no window
	// could ever be extracted.
	ErrEmptyExemplar = errors.New("overlapping: exemplar is smaller than the pattern size")
	// ErrNoPatternsExtracted indicates pattern extraction produced zero
	// candidate windows (spec.md section 7, configuration error kind 1).
	ErrNoPatternsExtracted = errors.New("overlapping: no patterns could be extracted from the exemplar")
)
