package tiled

import "github.com/hollow-tiles/wfc/grid"

// Options configures a Tiled model, per spec.md section 6's options
// table, grounded on TiledModelOptions in
// original_source/src/TiledModel.h.
type Options struct {
	// OutputWidth, OutputHeight are the wave's cell-grid dimensions; the
	// decoded output is these times the tile size.
	OutputWidth, OutputHeight int
	// OutputWrapping selects which axes of the output grid wrap during
	// propagation.
	OutputWrapping grid.WrapMode
	// MasterSeed seeds the model's master RNG (spec.md section 5).
	MasterSeed uint64
}

// DefaultOptions returns the option defaults from TiledModelOptions's
// constructor: output 32x32 wave cells, no wrapping, seed 123.
func DefaultOptions() Options {
	return Options{
		OutputWidth:    32,
		OutputHeight:   32,
		OutputWrapping: grid.WrapNone,
		MasterSeed:     123,
	}
}

// WaveSize returns the wave's cell-grid dimensions: for Tiled this is
// simply the configured output size, per spec.md section 4.4's decode
// formula (Wwave*T, Hwave*T) — there is no stride to divide out.
func (o Options) WaveSize() (width, height int) {
	return o.OutputWidth, o.OutputHeight
}

// Validate reports a configuration error per spec.md section 7, kind 1,
// before any wave is built.
func (o Options) Validate() error {
	if o.OutputWidth <= 0 || o.OutputHeight <= 0 {
		return ErrInvalidOutputSize
	}
	return nil
}
