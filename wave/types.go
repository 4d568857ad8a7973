// Package wave implements the constraint solver at the center of this
// module: a per-cell bitmap of still-allowed patterns (the "wave"),
// coupled to a propagator that maintains arc-consistency, an
// entropy-ordered selection queue, and a weighted sampler. It is
// deliberately ignorant of where patterns and their compatibility table
// come from — that is the job of the model adapters (overlapping,
// tiled), which each embed a *Runner and supply only wave size, output
// wrapping, and a decoder.
package wave

import (
	"github.com/hollow-tiles/wfc/direction"
	"github.com/hollow-tiles/wfc/grid"
	"github.com/hollow-tiles/wfc/pattern"
)

// PatternID identifies a pattern within the catalog a Wave was built
// from. It is pattern.ID under the hood; the alias exists so callers
// working only with this package never need to import pattern directly.
type PatternID = pattern.ID

// WrapMode selects which axes of the wave are toroidal. It is grid.WrapMode
// under the hood so a single wrap value can be passed to both the grid
// that decodes an output and the wave that propagates over it.
type WrapMode = grid.WrapMode

const (
	WrapNone = grid.WrapNone
	WrapX    = grid.WrapX
	WrapY    = grid.WrapY
	WrapBoth = grid.WrapBoth
)

// Status is the outcome of one observe/propagate step or of a full run.
type Status uint8

const (
	// Unfinished indicates the wave has at least one undecided cell and
	// no contradiction has been recorded.
	Unfinished Status = iota
	// Finished indicates every cell has been decided (count <= 1
	// everywhere) with no contradiction.
	Finished
	// Contradiction indicates some cell reached count == 0.
	Contradiction
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Unfinished:
		return "Unfinished"
	case Finished:
		return "Finished"
	case Contradiction:
		return "Contradiction"
	default:
		return "Status(?)"
	}
}

// Compatibility is the compatibility table C[i][d]: for each pattern and
// each cardinal direction, the sorted set of pattern IDs that may
// legally lie immediately d-adjacent. It is built once per model by a
// model adapter and shared, read-only, by every wave constructed from
// it.
type Compatibility struct {
	n    int
	rows [][4][]PatternID
}

// NewCompatibilityBuilder returns a builder for an n-pattern compatibility
// table.
func NewCompatibilityBuilder(n int) *CompatibilityBuilder {
	return &CompatibilityBuilder{
		n:    n,
		sets: make([][4]map[PatternID]struct{}, n),
	}
}

// CompatibilityBuilder accumulates (i, d, j) adjacency facts and, on
// Build, enforces and materializes the symmetry invariant
// j ∈ C[i][d] ⇔ i ∈ C[j][opposite(d)] as sorted slices.
type CompatibilityBuilder struct {
	n    int
	sets [][4]map[PatternID]struct{}
}

// Allow records that j may lie immediately d-adjacent to i (and,
// symmetrically, that i may lie opposite(d)-adjacent to j).
func (b *CompatibilityBuilder) Allow(i PatternID, d direction.Direction, j PatternID) {
	b.insert(i, d, j)
	b.insert(j, direction.Opposite(d), i)
}

func (b *CompatibilityBuilder) insert(i PatternID, d direction.Direction, j PatternID) {
	if b.sets[i][d] == nil {
		b.sets[i][d] = make(map[PatternID]struct{})
	}
	b.sets[i][d][j] = struct{}{}
}

// Build materializes the accumulated facts into an immutable
// Compatibility, returning ErrEmptyCompatibility if any pattern has no
// permitted neighbor on some side.
func (b *CompatibilityBuilder) Build() (*Compatibility, error) {
	c := &Compatibility{n: b.n, rows: make([][4][]PatternID, b.n)}
	for i := 0; i < b.n; i++ {
		for _, d := range direction.Values() {
			set := b.sets[i][d]
			if len(set) == 0 {
				return nil, ErrEmptyCompatibility
			}
			ids := make([]PatternID, 0, len(set))
			for j := range set {
				ids = append(ids, j)
			}
			sorted := pattern.SortedIDs(intsFrom(ids))
			c.rows[i][d] = toPatternIDs(sorted)
		}
	}
	return c, nil
}

// Size returns the number of patterns the table was built for.
func (c *Compatibility) Size() int { return c.n }

// Allowed returns the sorted set of pattern IDs compatible with i in
// direction d. The returned slice must not be mutated by the caller.
func (c *Compatibility) Allowed(i PatternID, d direction.Direction) []PatternID {
	return c.rows[i][d]
}

// VerifySymmetric checks j ∈ C[i][d] ⇔ i ∈ C[j][opposite(d)] for every
// pair, returning ErrAsymmetricCompatibility on the first violation.
// This package's tests call it; Build already guarantees it for
// compatibility constructed solely through Allow, so production code
// need not call it, but a hand-assembled table (e.g. loaded from a
// config file) should.
func (c *Compatibility) VerifySymmetric() error {
	for i := 0; i < c.n; i++ {
		for _, d := range direction.Values() {
			for _, j := range c.rows[i][d] {
				if !contains(c.rows[j][direction.Opposite(d)], PatternID(i)) {
					return ErrAsymmetricCompatibility
				}
			}
		}
	}
	return nil
}

func contains(ids []PatternID, target PatternID) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}

func intsFrom(ids []PatternID) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}

func toPatternIDs(ids []int) []PatternID {
	out := make([]PatternID, len(ids))
	for i, id := range ids {
		out[i] = PatternID(id)
	}
	return out
}
