// Package d4 implements the dihedral group of order 8 — the symmetries of
// a square: the identity, three rotations, and four reflections. Both
// model adapters use it to enumerate the distinct "images" a pattern or
// tile produces under a requested subset of symmetries, and to carry
// side labels across a transform.
//
// The core solver (package wave) never imports this package; it consumes
// only plain pattern identifiers and a precomputed compatibility table.
// d4 is consumed by the model adapters (overlapping, tiled), by grid's
// Transform helper, and by wfcconfig's symmetry-name parsing.
package d4

import "github.com/hollow-tiles/wfc/direction"

// Symmetry identifies one of the eight transforms of the square.
type Symmetry uint8

const (
	Identity Symmetry = iota
	Rotation90
	Rotation180
	Rotation270
	FlipHorizontal // flip about the horizontal axis
	FlipVertical   // flip about the vertical axis
	FlipDiagonal   // flip about the main diagonal
	FlipAntiDiagonal
)

// String implements fmt.Stringer.
func (s Symmetry) String() string {
	switch s {
	case Identity:
		return "Identity"
	case Rotation90:
		return "Rotation90"
	case Rotation180:
		return "Rotation180"
	case Rotation270:
		return "Rotation270"
	case FlipHorizontal:
		return "FlipHorizontal"
	case FlipVertical:
		return "FlipVertical"
	case FlipDiagonal:
		return "FlipDiagonal"
	case FlipAntiDiagonal:
		return "FlipAntiDiagonal"
	default:
		return "Symmetry(?)"
	}
}

// Values returns the seven non-identity symmetries, matching
// D4SymmetryHelper::values() in the original implementation (identity is
// handled separately since it never needs to be "added").
func Values() []Symmetry {
	return []Symmetry{
		Rotation90, Rotation180, Rotation270,
		FlipHorizontal, FlipVertical, FlipDiagonal, FlipAntiDiagonal,
	}
}

// Set is a bitmask over Symmetry, used to describe a subset of the group
// (e.g. the symmetries a tile already has, or the ones a caller asked an
// overlapping model to generate).
type Set uint8

func flag(s Symmetry) Set {
	if s == Identity {
		return 0
	}
	return 1 << (uint8(s) - 1)
}

const (
	None Set = 0

	SetRotation90  = Set(1) << (uint8(Rotation90) - 1)
	SetRotation180 = Set(1) << (uint8(Rotation180) - 1)
	SetRotation270 = Set(1) << (uint8(Rotation270) - 1)
	SetFlipH       = Set(1) << (uint8(FlipHorizontal) - 1)
	SetFlipV       = Set(1) << (uint8(FlipVertical) - 1)
	SetFlipDiag    = Set(1) << (uint8(FlipDiagonal) - 1)
	SetFlipAnti    = Set(1) << (uint8(FlipAntiDiagonal) - 1)

	AllRotations = SetRotation90 | SetRotation180 | SetRotation270
	AllFlips     = SetFlipH | SetFlipV | SetFlipDiag | SetFlipAnti
	All          = AllRotations | AllFlips
)

// Contains reports whether s is a member of the set.
func (set Set) Contains(s Symmetry) bool {
	if s == Identity {
		return true
	}
	return set&flag(s) != 0
}

// With returns set with s added.
func (set Set) With(s Symmetry) Set {
	return set | flag(s)
}

// FromChar parses one of the Wang-tile convention letters used by many WFC
// tile sets to describe a tile's own symmetry ('X' full, 'I' two-fold,
// 'T' mirror, '/' both diagonal mirrors, 'L' anti-diagonal mirror, 'P'
// none, so all images are distinct). Unrecognized characters return None.
func FromChar(c byte) Set {
	switch c {
	case 'X':
		return All
	case 'I':
		return SetRotation180 | SetFlipH | SetFlipV
	case 'T':
		return SetFlipV
	case '/':
		return SetRotation180 | SetFlipDiag | SetFlipAnti
	case 'L':
		return SetFlipAnti
	default:
		return None
	}
}

// compositions[s1][s2] = s1 ∘ s2, i.e. the symmetry obtained by applying
// s2 first and then s1. Transcribed from D4SymmetryHelper::compose's
// multiplication table.
var compositions = [8][8]Symmetry{
	{Identity, Rotation90, Rotation180, Rotation270, FlipHorizontal, FlipVertical, FlipDiagonal, FlipAntiDiagonal},
	{Rotation90, Rotation180, Rotation270, Identity, FlipAntiDiagonal, FlipDiagonal, FlipHorizontal, FlipVertical},
	{Rotation180, Rotation270, Identity, Rotation90, FlipVertical, FlipHorizontal, FlipAntiDiagonal, FlipDiagonal},
	{Rotation270, Identity, Rotation90, Rotation180, FlipDiagonal, FlipAntiDiagonal, FlipVertical, FlipHorizontal},
	{FlipHorizontal, FlipDiagonal, FlipVertical, FlipAntiDiagonal, Identity, Rotation180, Rotation90, Rotation270},
	{FlipVertical, FlipAntiDiagonal, FlipHorizontal, FlipDiagonal, Rotation180, Identity, Rotation270, Rotation90},
	{FlipDiagonal, FlipVertical, FlipAntiDiagonal, FlipHorizontal, Rotation270, Rotation90, Identity, Rotation180},
	{FlipAntiDiagonal, FlipHorizontal, FlipDiagonal, FlipVertical, Rotation90, Rotation270, Rotation180, Identity},
}

// Compose returns s1 ∘ s2 — apply s2, then s1.
func Compose(s1, s2 Symmetry) Symmetry {
	return compositions[s1][s2]
}

// mappings[s] gives, for a square transformed by s, which original side
// ends up in each resulting direction: mappings[s].Get(d) is the
// original side whose content lands at d after the transform. Verified
// directly against grid.Transform's own pixel remap (e.g. Rotation90's
// New(x,0) = Old(size-1,x), so Old's East edge lands at New's North —
// mappings[Rotation90].North must be East, not West). Rotation90 and
// Rotation270 are each other's inverse and are not involutions like the
// other five non-identity elements, so their rows are distinct; every
// other row is its own inverse and was already correct.
var mappings = [8]direction.ByDirection[direction.Direction]{
	{North: direction.North, East: direction.East, South: direction.South, West: direction.West},
	{North: direction.East, East: direction.South, South: direction.West, West: direction.North},
	{North: direction.South, East: direction.West, South: direction.North, West: direction.East},
	{North: direction.West, East: direction.North, South: direction.East, West: direction.South},
	{North: direction.South, East: direction.East, South: direction.North, West: direction.West},
	{North: direction.North, East: direction.West, South: direction.South, West: direction.East},
	{North: direction.West, East: direction.South, South: direction.East, West: direction.North},
	{North: direction.East, East: direction.North, South: direction.West, West: direction.South},
}

// Mapping returns, for a square transformed by s, which original side
// lands in each resulting direction: Mapping(s).Get(d) is the side that
// becomes d after the transform.
func Mapping(s Symmetry) direction.ByDirection[direction.Direction] {
	return mappings[s]
}

// biclosure computes the closure of ss1 ∪ ss2 restricted to compositions
// that mix a symmetry from each set, matching
// D4SymmetryHelper::biclosure.
func biclosure(ss1, ss2 Set) Set {
	ss := ss1 | ss2
	for {
		next := ss
		for _, s1 := range Values() {
			if !ss1.Contains(s1) {
				continue
			}
			for _, s2 := range Values() {
				if ss2.Contains(s2) {
					next = next.With(Compose(s1, s2))
					next = next.With(Compose(s2, s1))
				}
			}
		}
		if next == ss {
			return next
		}
		ss = next
	}
}

// Closure returns every symmetry reachable by composing members of ss
// with each other, i.e. the subgroup generated by ss.
func Closure(ss Set) Set {
	return biclosure(ss, ss)
}

// IsClosed reports whether ss already equals its own closure.
func IsClosed(ss Set) bool {
	return Closure(ss) == ss
}

// Missing returns the symmetries that must be applied to something with
// symmetry group ss to produce every distinct image of it — equivalently,
// the smallest m such that closure(ss ∪ m) covers all eight symmetries'
// worth of distinct images. A tile with full symmetry (ss == All) needs
// nothing extra (Missing returns None); a tile with no symmetry needs all
// seven.
func Missing(ss Set) Set {
	closed := Closure(ss)
	covered := closed

	var missing Set
	for _, s := range Values() {
		if !covered.Contains(s) {
			missing = missing.With(s)
			covered = covered | biclosure(closed, missing)
		}
	}
	return missing
}
