package tiled

import (
	"fmt"

	"github.com/hollow-tiles/wfc/d4"
	"github.com/hollow-tiles/wfc/direction"
	"github.com/hollow-tiles/wfc/grid"
	"github.com/hollow-tiles/wfc/pattern"
	"github.com/hollow-tiles/wfc/wave"
)

// tileImage is the pattern payload this model's catalog holds: one
// rendered, oriented image of a tile's base bitmap, matching
// Array2<CellType> in Tile.h — a pattern there is a whole tile image,
// not a single cell.
type tileImage = *grid.Grid[Cell]

// patternMeta records which tile and orientation produced a given
// pattern index, needed by computeCompatibilities to evaluate side
// labels; it is not retained on Model beyond construction.
type patternMeta struct {
	tile *Tile
	sym  d4.Symmetry
}

// Model is the Tiled model adapter: it flattens an explicit TileSet's
// distinct tile orientations into a pattern catalog, builds the
// side-label compatibility table (spec.md section 4.4), and decodes a
// solved wave into an output grid of T×T tile blocks. It embeds a
// *wave.Runner for the shared Next/NextParallel run loop, per
// SPEC_FULL.md section 6.
type Model struct {
	*wave.Runner[tileImage, Cell]
	opts     Options
	catalog  *pattern.Catalog[tileImage]
	tileSize int
}

// New builds a Tiled model from tiles under opts: every tile's distinct
// D4 images become one pattern each (no cross-tile deduplication — see
// flattenPatterns), the side-label/incompatibility rules become the
// compatibility table, and the configuration is validated per spec.md
// section 7, kind 1, before any wave is built.
func New(tiles *TileSet, opts Options) (*Model, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if tiles.Len() == 0 {
		return nil, ErrNoTiles
	}

	tileSize := tiles.Tiles()[0].base.Width()
	for _, t := range tiles.Tiles() {
		if t.base.Width() != tileSize || t.base.Height() != tileSize {
			return nil, ErrInconsistentTileSize
		}
	}

	catalog, metas, err := flattenPatterns(tiles)
	if err != nil {
		return nil, err
	}
	compat, err := computeCompatibilities(tiles, metas)
	if err != nil {
		return nil, err
	}

	m := &Model{opts: opts, catalog: catalog, tileSize: tileSize}
	m.Runner = wave.NewRunner[tileImage, Cell](catalog, compat, opts.MasterSeed, m)
	return m, nil
}

// WaveSize implements the decoder contract wave.Runner needs.
func (m *Model) WaveSize() (width, height int) { return m.opts.WaveSize() }

// OutputWrapping implements the decoder contract wave.Runner needs.
func (m *Model) OutputWrapping() wave.WrapMode { return m.opts.OutputWrapping }

// flattenPatterns renders every tile's distinct images into the pattern
// catalog, in tile order, mirroring TiledModel::flattenPatterns. Unlike
// overlapping's catalog construction, patterns are not deduplicated
// across (or within) tiles by content: each (tile, symmetry) pair gets
// its own pattern index, so compatibility built on the tile/orientation
// metadata in lockstep. The underlying pattern.Builder dedup mechanism
// is sidestepped by keying every entry uniquely.
func flattenPatterns(tiles *TileSet) (*pattern.Catalog[tileImage], []patternMeta, error) {
	b := pattern.NewBuilder[tileImage]()
	var metas []patternMeta
	for _, t := range tiles.Tiles() {
		images, err := t.forEachDistinct()
		if err != nil {
			return nil, nil, err
		}
		for _, di := range images {
			key := fmt.Appendf(nil, "tile:%d:sym:%d", t.ID(), di.sym)
			b.Add(di.img, key, t.Weight())
			metas = append(metas, patternMeta{tile: t, sym: di.sym})
		}
	}
	cat, err := b.Build()
	if err != nil {
		return nil, nil, err
	}
	return cat, metas, nil
}

// computeCompatibilities builds C[i][d] for every ordered pattern pair
// and cardinal direction using the side-label rule of spec.md section
// 4.4, mirroring TiledModel::computeCompatibilities /
// areSidesCompatibile.
func computeCompatibilities(tiles *TileSet, metas []patternMeta) (*wave.Compatibility, error) {
	n := len(metas)
	b := wave.NewCompatibilityBuilder(n)
	for i := 0; i < n; i++ {
		mi := metas[i]
		for j := 0; j < n; j++ {
			mj := metas[j]
			for _, d := range direction.Values() {
				if sidesCompatible(tiles, mi, mj, d) {
					b.Allow(pattern.ID(i), d, pattern.ID(j))
				}
			}
		}
	}
	return b.Build()
}

// sidesCompatible implements spec.md section 4.4's two-part rule: equal
// side labels read back-to-back, and no explicit incompatibility
// registered for that label.
func sidesCompatible(tiles *TileSet, a, b patternMeta, d direction.Direction) bool {
	labelA := sideLabel(a.tile.connectivity, d, a.sym, false)
	labelB := sideLabel(b.tile.connectivity, direction.Opposite(d), b.sym, true)
	if labelA != labelB {
		return false
	}
	return tiles.AreCompatible(a.tile.ID(), b.tile.ID(), labelA)
}
