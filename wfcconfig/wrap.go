package wfcconfig

import (
	"fmt"
	"strings"

	"github.com/hollow-tiles/wfc/grid"
)

// parseWrapping parses "none", "horizontal", "vertical", or "both"
// (case-insensitive), defaulting to grid.WrapNone for an empty string.
func parseWrapping(s string) (grid.WrapMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return grid.WrapNone, nil
	case "horizontal", "h", "x":
		return grid.WrapX, nil
	case "vertical", "v", "y":
		return grid.WrapY, nil
	case "both":
		return grid.WrapBoth, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownWrapping, s)
	}
}
