package overlapping

import (
	"github.com/hollow-tiles/wfc/grid"
	"github.com/hollow-tiles/wfc/wave"
)

// Decode turns a Finished wave into the output grid: every wave cell
// contributes its committed pattern's top-left sx×sy block, and — on
// non-wrapping axes — the rightmost/bottommost S-stride ring is filled
// in from the last row/column of committed patterns so the full S×S
// footprint each pattern implies is recovered at the output's edges.
// Mirrors OverlappingModel::decodeOutput.
func (m *Model) Decode(w *wave.Wave) (*grid.Grid[Cell], error) {
	ids, err := w.ProbeAll()
	if err != nil {
		return nil, err
	}
	waveW, waveH := ids.Width(), ids.Height()
	sx, sy := m.opts.StrideX, m.opts.StrideY
	size := m.opts.PatternSize

	out, err := grid.New[Cell](m.opts.OutputWidth, m.opts.OutputHeight)
	if err != nil {
		return nil, err
	}

	windowAt := func(x, y int) window {
		return m.catalog.Payload(ids.At(x, y))
	}

	for x := 0; x < waveW; x++ {
		for y := 0; y < waveH; y++ {
			win := windowAt(x, y)
			for xx := 0; xx < sx; xx++ {
				for yy := 0; yy < sy; yy++ {
					out.Set(x*sx+xx, y*sy+yy, win.At(xx, yy))
				}
			}
		}
	}

	if !m.opts.OutputWrapping.HasX() {
		for dx := sx; dx < size; dx++ {
			for y := 0; y < waveH; y++ {
				win := windowAt(waveW-1, y)
				for yy := 0; yy < sy; yy++ {
					out.Set(waveW*sx+dx-sx, y*sy+yy, win.At(dx, yy))
				}
			}
		}
	}

	if !m.opts.OutputWrapping.HasY() {
		for x := 0; x < waveW; x++ {
			win := windowAt(x, waveH-1)
			for dy := sy; dy < size; dy++ {
				for xx := 0; xx < sx; xx++ {
					out.Set(x*sx+xx, waveH*sy+dy-sy, win.At(xx, dy))
				}
			}
		}
	}

	if m.opts.OutputWrapping == wave.WrapNone {
		win := windowAt(waveW-1, waveH-1)
		for dx := sx; dx < size; dx++ {
			for dy := sy; dy < size; dy++ {
				out.Set(waveW*sx+dx-sx, waveH*sy+dy-sy, win.At(dx, dy))
			}
		}
	}

	return out, nil
}
