package wfcconfig

import (
	"fmt"
	"strings"

	"github.com/hollow-tiles/wfc/d4"
)

var symmetryNames = map[string]d4.Symmetry{
	"rotate90":  d4.Rotation90,
	"rotate180": d4.Rotation180,
	"rotate270": d4.Rotation270,
	"flip_h":    d4.FlipHorizontal,
	"flip_v":    d4.FlipVertical,
	"flip_diag": d4.FlipDiagonal,
	"flip_anti": d4.FlipAntiDiagonal,
}

// parseSymmetrySet parses a list of symmetry names (see symmetryNames)
// into a d4.Set, used by overlapping's `symmetries` option and tiled's
// `allowed_symmetries` restriction.
func parseSymmetrySet(names []string) (d4.Set, error) {
	var set d4.Set
	for _, name := range names {
		s, ok := symmetryNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownSymmetry, name)
		}
		set = set.With(s)
	}
	return set, nil
}

// parseTileSymmetryLetter parses a tile's own symmetry closure given as
// a single Wang-tile convention letter (X, I, T, /, L, P), via
// d4.FromChar, or as an explicit list of symmetry names if letter is
// empty and names is non-empty.
func parseTileSymmetryLetter(letter string, names []string) (d4.Set, error) {
	letter = strings.TrimSpace(letter)
	if letter != "" {
		return d4.FromChar(letter[0]), nil
	}
	if len(names) > 0 {
		return parseSymmetrySet(names)
	}
	return d4.None, nil
}
