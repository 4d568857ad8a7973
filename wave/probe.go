package wave

import "github.com/hollow-tiles/wfc/grid"

// ProbeAll decodes every cell of a Finished wave into a grid of pattern
// IDs, for model adapters to turn into cell payloads. It mirrors
// Wave::probeAll in original_source/src/Wave.h's C++ implementation.
// Both model adapters' Decode start from it; it also serves callers who
// want the raw pattern assignment, e.g. for testing invariant 8.
func (w *Wave) ProbeAll() (*grid.Grid[PatternID], error) {
	if !w.IsFinished() {
		return nil, ErrNotFinished
	}
	g, err := grid.New[PatternID](w.width, w.height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < w.height; y++ {
		for x := 0; x < w.width; x++ {
			g.Set(x, y, w.Probe(x, y))
		}
	}
	return g, nil
}

// ProbeSub decodes the width×height sub-rectangle of a Finished wave
// whose top-left corner is (originX, originY), mirroring Wave::probeSub.
// Useful for progressive/partial rendering callers even though full
// animation is a non-goal of this module.
func (w *Wave) ProbeSub(originX, originY, width, height int) (*grid.Grid[PatternID], error) {
	if !w.IsFinished() {
		return nil, ErrNotFinished
	}
	g, err := grid.New[PatternID](width, height)
	if err != nil {
		return nil, err
	}
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			x, y := originX+dx, originY+dy
			if !w.wrap.HasX() && (x < 0 || x >= w.width) {
				return nil, ErrInvalidWaveSize
			}
			if !w.wrap.HasY() && (y < 0 || y >= w.height) {
				return nil, ErrInvalidWaveSize
			}
			x = ((x % w.width) + w.width) % w.width
			y = ((y % w.height) + w.height) % w.height
			g.Set(dx, dy, w.Probe(x, y))
		}
	}
	return g, nil
}
