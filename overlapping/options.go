package overlapping

import (
	"fmt"

	"github.com/hollow-tiles/wfc/d4"
	"github.com/hollow-tiles/wfc/grid"
)

// Options configures an Overlapping model, per spec.md section 6's
// options table, grounded on OverlappingModelOptions in
// original_source/src/OverlappingModel.h.
type Options struct {
	// PatternSize is the side length S of extracted windows. Default 3.
	PatternSize int
	// StrideX, StrideY is the sampling stride between adjacent wave
	// cells in exemplar pixels. Default (1, 1).
	StrideX, StrideY int
	// InputWrapping selects which axes of the exemplar wrap when
	// extracting windows.
	InputWrapping grid.WrapMode
	// OutputWrapping selects which axes of the output grid wrap during
	// propagation.
	OutputWrapping grid.WrapMode
	// Symmetries is the set of D4 images of each window added to the
	// catalog in addition to the identity, which is always added.
	Symmetries d4.Set
	// EqualFrequencies, if true, clamps every distinct pattern's count
	// to 1 regardless of how many times it was observed in the exemplar.
	EqualFrequencies bool
	// OutputWidth, OutputHeight are the pixel dimensions of the decoded
	// output. Must be valid given PatternSize, stride and wrapping; see
	// Validate and SetOutputSizeAtLeast.
	OutputWidth, OutputHeight int
	// MasterSeed seeds the model's master RNG (spec.md section 5).
	// Default fixed, matching OverlappingModelOptions's seed(123).
	MasterSeed uint64
}

// DefaultOptions returns the option defaults from
// OverlappingModelOptions's constructor: pattern size 3, stride (1,1),
// no wrapping, no symmetries, output 32x32, seed 123.
func DefaultOptions() Options {
	return Options{
		PatternSize:    3,
		StrideX:        1,
		StrideY:        1,
		InputWrapping:  grid.WrapNone,
		OutputWrapping: grid.WrapNone,
		Symmetries:     d4.None,
		OutputWidth:    32,
		OutputHeight:   32,
		MasterSeed:     123,
	}
}

// waveSizeUnstrided mirrors OverlappingModelOptions::waveSizeUnstrided.
func (o Options) waveSizeUnstrided() (width, height int) {
	width = o.OutputWidth
	if !o.OutputWrapping.HasX() {
		width = o.OutputWidth - o.PatternSize + o.StrideX
	}
	height = o.OutputHeight
	if !o.OutputWrapping.HasY() {
		height = o.OutputHeight - o.PatternSize + o.StrideY
	}
	return width, height
}

// WaveSize returns the wave's cell-grid dimensions, per spec.md section
// 4.3's formula: (Wout-S+sx)/sx unwrapped, Wout/sx wrapped (and
// symmetrically for height).
func (o Options) WaveSize() (width, height int) {
	uw, uh := o.waveSizeUnstrided()
	return uw / o.StrideX, uh / o.StrideY
}

// Validate reports a configuration error per spec.md section 7, kind 1,
// before any wave is built: a pattern size below 2, a non-positive
// stride component or output dimension; or an output size that does not divide exactly into whole
// wave cells given the configured stride and wrapping (mirroring
// OverlappingModelOptions::isValid).
func (o Options) Validate() error {
	if o.PatternSize < 2 {
		return ErrInvalidPatternSize
	}
	if o.StrideX < 1 || o.StrideY < 1 {
		return ErrInvalidStride
	}
	if o.OutputWidth <= 0 || o.OutputHeight <= 0 {
		return ErrInvalidOutputSize
	}
	uw, uh := o.waveSizeUnstrided()
	if uw <= 0 || uh <= 0 {
		return fmt.Errorf("%w: output too small for pattern size %d", ErrInvalidOutputSize, o.PatternSize)
	}
	if uw%o.StrideX != 0 || uh%o.StrideY != 0 {
		return fmt.Errorf("%w: %dx%d does not divide evenly under stride (%d,%d)", ErrInvalidOutputSize, o.OutputWidth, o.OutputHeight, o.StrideX, o.StrideY)
	}
	return nil
}

func ceilToMultiple(v, m int) int {
	return (v-1)/m*m + m
}

// SetOutputSizeAtLeast rounds a requested output size up to the nearest
// size valid for the configured stride and wrapping, mirroring
// OverlappingModelOptions::setOutputSizeAtLeast. Named explicitly in
// spec.md section 4.3.
func (o *Options) SetOutputSizeAtLeast(width, height int) {
	// Wrapped axes are valid at any multiple of the stride; unwrapped axes
	// at PatternSize plus any multiple of the stride.
	round := func(v, stride int, wrapped bool) int {
		if wrapped {
			return ceilToMultiple(v, stride)
		}
		if v <= o.PatternSize {
			return o.PatternSize
		}
		return o.PatternSize + ceilToMultiple(v-o.PatternSize, stride)
	}
	o.OutputWidth = round(width, o.StrideX, o.OutputWrapping.HasX())
	o.OutputHeight = round(height, o.StrideY, o.OutputWrapping.HasY())
}
