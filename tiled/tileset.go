// Package tiled implements the Tiled model adapter: an explicit tile
// set with labeled sides feeds the shared constraint solver (package
// wave) instead of patterns learned from an exemplar image. Grounded on
// original_source/src/Tile.h and TiledModel.h.
package tiled

import (
	"fmt"

	"github.com/hollow-tiles/wfc/d4"
	"github.com/hollow-tiles/wfc/direction"
	"github.com/hollow-tiles/wfc/grid"
)

// TileID identifies a tile within a TileSet. IDs are dense: a set of N
// tiles uses IDs 0..N-1, assigned in Add order.
type TileID int

// SideLabel is a connectivity descriptor for one side of a tile: the
// integer tag read when the side is approached in its native
// orientation, and the tag read when approached reversed. A mirroring
// D4 symmetry swaps which of the two a given oriented pattern presents
// on a given side (spec.md section 4.4, "Side labels").
type SideLabel struct {
	Native, Reversed int
}

// Connectivity holds one SideLabel per cardinal direction of a tile's
// base bitmap, before any symmetry is applied.
type Connectivity = direction.ByDirection[SideLabel]

// Tile is one entry of a TileSet: a base T×T bitmap, its connectivity
// descriptor, its own D4 symmetry closure (which images are redundant),
// a sampling weight, and an optional restriction on which of its
// missing symmetries are actually instantiated as distinct patterns.
type Tile struct {
	id           TileID
	base         *grid.Grid[Cell]
	connectivity Connectivity
	symmetry     d4.Set
	weight       float64
	restrict     *d4.Set
}

// ID returns the tile's identifier within its TileSet.
func (t *Tile) ID() TileID { return t.id }

// Weight returns the tile's sampling weight.
func (t *Tile) Weight() float64 { return t.weight }

// distinctImage pairs one rendered image with the symmetry that
// produced it, identity always included first.
type distinctImage struct {
	img *grid.Grid[Cell]
	sym d4.Symmetry
}

// forEachDistinct renders the tile's base bitmap under the identity
// plus every symmetry in its missing-symmetries set (optionally
// narrowed by restrict), matching Tile::forEachDistinct in
// original_source/src/Tile.h.
func (t *Tile) forEachDistinct() ([]distinctImage, error) {
	out := []distinctImage{{img: t.base, sym: d4.Identity}}
	missing := d4.Missing(t.symmetry)
	for _, s := range d4.Values() {
		if !missing.Contains(s) {
			continue
		}
		if t.restrict != nil && !t.restrict.Contains(s) {
			continue
		}
		img, err := t.base.Transform(s)
		if err != nil {
			return nil, err
		}
		out = append(out, distinctImage{img: img, sym: s})
	}
	return out, nil
}

type incompatKey struct {
	a, b  TileID
	label int
}

func canonicalIncompat(a, b TileID, label int) incompatKey {
	if a > b {
		a, b = b, a
	}
	return incompatKey{a: a, b: b, label: label}
}

// TileSet is the mutable construction surface for a tiled model's
// input: spec.md section 6's `add`, `declare_incompatible`, `subset`.
type TileSet struct {
	tiles        []*Tile
	incompatible map[incompatKey]struct{}
}

// NewTileSet returns an empty TileSet.
func NewTileSet() *TileSet {
	return &TileSet{incompatible: make(map[incompatKey]struct{})}
}

// Add registers a tile and returns its TileID. symmetry describes the
// tile's own D4 symmetry closure (e.g. d4.FromChar('X') for a fully
// symmetric tile); allowedSymmetries, if non-empty, restricts which of
// the tile's missing symmetries are actually instantiated as distinct
// patterns — spec.md section 6's "optional restriction on which D4
// images are used".
func (ts *TileSet) Add(base *grid.Grid[Cell], connectivity Connectivity, symmetry d4.Set, weight float64, allowedSymmetries ...d4.Set) (TileID, error) {
	if base.Width() != base.Height() {
		return 0, ErrBaseNotSquare
	}
	if weight <= 0 {
		return 0, ErrInvalidWeight
	}
	id := TileID(len(ts.tiles))
	t := &Tile{id: id, base: base, connectivity: connectivity, symmetry: symmetry, weight: weight}
	if len(allowedSymmetries) > 0 {
		r := allowedSymmetries[0]
		t.restrict = &r
	}
	ts.tiles = append(ts.tiles, t)
	return id, nil
}

// DeclareIncompatible rules out an otherwise label-compatible abutment
// between tileA and tileB along the given side label, per spec.md
// section 4.4 ("explicit incompatibilities ... e.g., disallowing two
// different 'via' tiles from meeting along a shared track label").
func (ts *TileSet) DeclareIncompatible(tileA, tileB TileID, label int) error {
	if int(tileA) < 0 || int(tileA) >= len(ts.tiles) {
		return fmt.Errorf("%w: %d", ErrUnknownTile, tileA)
	}
	if int(tileB) < 0 || int(tileB) >= len(ts.tiles) {
		return fmt.Errorf("%w: %d", ErrUnknownTile, tileB)
	}
	ts.incompatible[canonicalIncompat(tileA, tileB, label)] = struct{}{}
	return nil
}

// AreCompatible reports whether tileA and tileB are allowed to abut
// along the given side label — true unless explicitly ruled out by
// DeclareIncompatible.
func (ts *TileSet) AreCompatible(tileA, tileB TileID, label int) bool {
	_, incompatible := ts.incompatible[canonicalIncompat(tileA, tileB, label)]
	return !incompatible
}

// Tiles returns the set's tiles in ID order. The returned slice must
// not be mutated by the caller.
func (ts *TileSet) Tiles() []*Tile { return ts.tiles }

// Len returns the number of tiles in the set.
func (ts *TileSet) Len() int { return len(ts.tiles) }

// Subset returns a new TileSet containing only the tiles in ids (in the
// given order, renumbered from 0), along with a map from old TileID to
// new TileID, and carries over any DeclareIncompatible entries between
// tiles that both survive into the subset. Spec.md section 6's optional
// `subset(tile_id_set) -> (sub_tile_set, id_map)`.
func (ts *TileSet) Subset(ids []TileID) (*TileSet, map[TileID]TileID, error) {
	out := NewTileSet()
	idMap := make(map[TileID]TileID, len(ids))
	for _, old := range ids {
		if int(old) < 0 || int(old) >= len(ts.tiles) {
			return nil, nil, fmt.Errorf("%w: %d", ErrUnknownTile, old)
		}
		t := ts.tiles[old]
		var restrictArgs []d4.Set
		if t.restrict != nil {
			restrictArgs = []d4.Set{*t.restrict}
		}
		newID, err := out.Add(t.base, t.connectivity, t.symmetry, t.weight, restrictArgs...)
		if err != nil {
			return nil, nil, err
		}
		idMap[old] = newID
	}
	for key := range ts.incompatible {
		newA, okA := idMap[key.a]
		newB, okB := idMap[key.b]
		if okA && okB {
			if err := out.DeclareIncompatible(newA, newB, key.label); err != nil {
				return nil, nil, err
			}
		}
	}
	return out, idMap, nil
}
