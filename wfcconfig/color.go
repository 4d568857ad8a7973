package wfcconfig

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/hollow-tiles/wfc/grid"
)

// parseHexColor parses a "#rrggbb" literal into its three byte
// components.
func parseHexColor(s string) (r, g, b byte, err error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return raw[0], raw[1], raw[2], nil
}

// buildBitmap parses a rectangular grid of "#rrggbb" literals into
// *grid.Grid[T], via newCell which constructs a cell from its RGB bytes.
// Used for both overlapping's exemplar and tiled's per-tile bitmaps, so
// it is generic over the adapter-specific Cell type.
func buildBitmap[T any](rows [][]string, newCell func(r, g, b byte) T) (*grid.Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyBitmap
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrNonRectangularBitmap
		}
	}
	g, err := grid.New[T](width, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x, lit := range row {
			r, gc, b, err := parseHexColor(lit)
			if err != nil {
				return nil, err
			}
			g.Set(x, y, newCell(r, gc, b))
		}
	}
	return g, nil
}
