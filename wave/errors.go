package wave

import "errors"

var (
	// ErrContradiction indicates a cell reached zero allowed patterns
	// during propagation or directly after a forced collapse. It is a
	// first-class, expected outcome of Next, not a bug: callers retry
	// with a fresh seed.
	ErrContradiction = errors.New("wave: contradiction")
	// ErrEmptyCompatibility indicates a pattern has no compatible
	// neighbor on some side, a construction-time bug in the model
	// adapter rather than a run-time condition.
	ErrEmptyCompatibility = errors.New("wave: pattern has empty compatibility on some side")
	// ErrAsymmetricCompatibility indicates C[i][d] and C[j][opposite(d)]
	// disagree, violating the compatibility table's symmetry invariant.
	ErrAsymmetricCompatibility = errors.New("wave: compatibility table is not symmetric")
	// ErrInvalidWaveSize indicates a non-positive wave width or height.
	ErrInvalidWaveSize = errors.New("wave: width and height must be positive")
	// ErrNoPatterns indicates a catalog with zero patterns was handed to
	// a wave; the model adapter should have rejected this earlier.
	ErrNoPatterns = errors.New("wave: catalog has no patterns")
	// ErrTooLarge indicates W*H*N would overflow the int32 support
	// counter budget documented in spec.md's resource policy.
	ErrTooLarge = errors.New("wave: grid too large for the configured pattern count")
	// ErrNotFinished indicates ProbeAll/ProbeSub was called before
	// the wave reached the Finished state.
	ErrNotFinished = errors.New("wave: not finished")
)
