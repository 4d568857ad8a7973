package tiled

import (
	"github.com/hollow-tiles/wfc/grid"
	"github.com/hollow-tiles/wfc/wave"
)

// Decode turns a Finished wave into the output grid: each wave cell
// expands to a tileSize×tileSize block copied from its committed
// pattern's image, per spec.md section 4.4 ("Decode"). Mirrors
// TiledModel::decodeOutput.
func (m *Model) Decode(w *wave.Wave) (*grid.Grid[Cell], error) {
	ids, err := w.ProbeAll()
	if err != nil {
		return nil, err
	}
	waveW, waveH := ids.Width(), ids.Height()
	t := m.tileSize

	out, err := grid.New[Cell](waveW*t, waveH*t)
	if err != nil {
		return nil, err
	}

	for x := 0; x < waveW; x++ {
		for y := 0; y < waveH; y++ {
			img := m.catalog.Payload(ids.At(x, y))
			for xx := 0; xx < t; xx++ {
				for yy := 0; yy < t; yy++ {
					out.Set(x*t+xx, y*t+yy, img.At(xx, yy))
				}
			}
		}
	}
	return out, nil
}
