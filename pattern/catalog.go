// Package pattern holds the immutable, indexed collection of distinct
// local patterns a model adapter extracts, together with each pattern's
// normalized frequency and precomputed p*log(p). Both are read-only for
// the lifetime of every wave built from the catalog; see wave.Wave's
// "Ownership" note.
package pattern

import (
	"math"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// ID identifies a pattern within a Catalog. IDs are dense: a catalog of
// N patterns uses IDs 0..N-1.
type ID int

// Catalog is the immutable table built once per model and shared,
// read-only, by every wave constructed from it.
type Catalog[P any] struct {
	payloads []P
	p        []float64
	plogp    []float64
}

// Size returns the number of distinct patterns.
func (c *Catalog[P]) Size() int { return len(c.payloads) }

// Payload returns the decoding payload for id.
func (c *Catalog[P]) Payload(id ID) P { return c.payloads[id] }

// P returns the normalized frequency of id, p[id] in spec terms.
func (c *Catalog[P]) P(id ID) float64 { return c.p[id] }

// PLogP returns the precomputed p[id]*ln(p[id]) (a non-positive number).
func (c *Catalog[P]) PLogP(id ID) float64 { return c.plogp[id] }

// entry is one not-yet-normalized candidate pattern gathered during
// catalog construction: a payload, the raw bytes used to key equality
// (so P need not itself be comparable or hashable), and an accumulated
// count.
type entry[P any] struct {
	payload P
	key     []byte
	count   float64
}

// Builder accumulates candidate patterns by content equality and
// produces a normalized Catalog. Patterns are deduplicated by their key
// bytes: the builder hashes each key with xxhash to find its bucket and
// falls back to a byte-for-byte comparison to resolve collisions, so
// construction stays cheap even for exemplars that produce many
// thousands of candidate windows (overlapping models with large
// exemplars, or symmetry-expanded tile sets).
//
// Grounded on NormalizedHistogram's std::map<SquareArray2<CellType>, float>
// accumulation in the original implementation, adapted to avoid paying
// for a tree-ordered comparison on every insert.
type Builder[P any] struct {
	buckets map[uint64][]int
	entries []entry[P]
	order   []int // insertion order of first-seen entries, for determinism
}

// NewBuilder returns an empty Builder.
func NewBuilder[P any]() *Builder[P] {
	return &Builder[P]{buckets: make(map[uint64][]int)}
}

// Add registers one occurrence (or equalFrequencies'd occurrence, per the
// caller's choice of weight) of payload, identified by key. If an equal
// key was already added, its count accumulates weight instead of
// creating a new entry. Returns the pattern's provisional index, stable
// across the life of the builder but only meaningful once Build is
// called.
func (b *Builder[P]) Add(payload P, key []byte, weight float64) int {
	h := xxhash.Sum64(key)
	for _, idx := range b.buckets[h] {
		if bytesEqual(b.entries[idx].key, key) {
			b.entries[idx].count += weight
			return idx
		}
	}
	idx := len(b.entries)
	b.entries = append(b.entries, entry[P]{payload: payload, key: append([]byte(nil), key...), count: weight})
	b.buckets[h] = append(b.buckets[h], idx)
	b.order = append(b.order, idx)
	return idx
}

// SetCount overrides the accumulated count for the pattern at the given
// index (used to implement equal-frequencies mode, where every distinct
// pattern's count is clamped to 1 regardless of how many times it was
// observed).
func (b *Builder[P]) SetCount(idx int, count float64) {
	b.entries[idx].count = count
}

// Len reports how many distinct entries have been registered so far.
func (b *Builder[P]) Len() int { return len(b.entries) }

// Build normalizes accumulated counts into frequencies and precomputes
// plogp, in first-seen order (matching the original's iteration order
// over a std::map, which — for content-addressed keys — callers never
// actually depended on being sorted; what they depend on is determinism,
// which first-seen order also gives).
func (b *Builder[P]) Build() (*Catalog[P], error) {
	if len(b.entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	total := 0.0
	for _, idx := range b.order {
		total += b.entries[idx].count
	}
	if total <= 0 {
		return nil, ErrZeroTotalFrequency
	}

	n := len(b.order)
	c := &Catalog[P]{
		payloads: make([]P, n),
		p:        make([]float64, n),
		plogp:    make([]float64, n),
	}
	for i, idx := range b.order {
		e := b.entries[idx]
		freq := e.count / total
		c.payloads[i] = e.payload
		c.p[i] = freq
		c.plogp[i] = freq * math.Log(freq)
	}
	return c, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// sortedCopy is a small helper for callers that need a stable, sorted
// view of a set of pattern IDs for a compatibility-table row (see
// spec.md's design note on storing C[i][d] as a sorted vector for
// cache-friendly scans).
func sortedCopy(ids []int) []int {
	out := append([]int(nil), ids...)
	sort.Ints(out)
	return out
}

// SortedIDs exposes sortedCopy for callers outside this package that
// build compatibility rows incrementally (wave.CompatibilityBuilder).
func SortedIDs(ids []int) []int { return sortedCopy(ids) }
