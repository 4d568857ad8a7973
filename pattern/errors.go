package pattern

import "errors"

var (
	// ErrEmptyCatalog indicates Build was called on a Builder with no
	// registered entries.
	ErrEmptyCatalog = errors.New("pattern: catalog has no patterns")
	// ErrZeroTotalFrequency indicates the accumulated counts summed to
	// zero or less, so frequencies cannot be normalized.
	ErrZeroTotalFrequency = errors.New("pattern: total frequency is not positive")
)
