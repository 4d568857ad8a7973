package tiled

import (
	"github.com/hollow-tiles/wfc/d4"
	"github.com/hollow-tiles/wfc/direction"
)

// isReflection reports whether s is one of the four reflections (as
// opposed to the identity or a pure rotation). A reflection reverses
// the reading direction of every side it touches; a rotation only
// relocates sides without reversing how they're read.
func isReflection(s d4.Symmetry) bool {
	switch s {
	case d4.FlipHorizontal, d4.FlipVertical, d4.FlipDiagonal, d4.FlipAntiDiagonal:
		return true
	default:
		return false
	}
}

// sideLabel returns the connectivity label a tile presents on side d
// once transformed by sym, read mirrored if mirrored is true. It maps d
// back to the original (untransformed) side via d4.Mapping, then
// chooses the descriptor's Native or Reversed label: a reflection and
// an externally-requested mirrored read cancel out (spec.md section
// 4.4: "A mirroring symmetry swaps which of the two applies"), so the
// Reversed label is used exactly when isReflection(sym) != mirrored.
func sideLabel(conn Connectivity, d direction.Direction, sym d4.Symmetry, mirrored bool) int {
	origSide := d4.Mapping(sym).Get(d)
	label := conn.Get(origSide)
	if isReflection(sym) != mirrored {
		return label.Reversed
	}
	return label.Native
}
