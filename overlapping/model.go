package overlapping

import (
	"github.com/hollow-tiles/wfc/d4"
	"github.com/hollow-tiles/wfc/direction"
	"github.com/hollow-tiles/wfc/grid"
	"github.com/hollow-tiles/wfc/pattern"
	"github.com/hollow-tiles/wfc/wave"
)

// window is the pattern payload this model's catalog holds: one S×S
// sample of the exemplar (or a D4 image of one), matching Array2<CellType>
// in OverlappingModel.h — a pattern there is a whole window, not a
// single cell.
type window = *grid.Grid[Cell]

// Model is the Overlapping model adapter: it learns a pattern catalog
// and compatibility table from an exemplar grid (spec.md section 4.3)
// and decodes a solved wave back into an output grid of Cell. It embeds
// a *wave.Runner for the shared Next/NextParallel run loop, per
// SPEC_FULL.md section 6.
type Model struct {
	*wave.Runner[window, Cell]
	opts    Options
	catalog *pattern.Catalog[window]
}

// New builds an Overlapping model from input under opts: extracts S×S
// windows (and their requested D4 images) into a pattern catalog, builds
// the stride-aware compatibility table, and validates the configuration
// per spec.md section 7, kind 1, before any wave is ever constructed.
func New(input *grid.Grid[Cell], opts Options) (*Model, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if input.Width() < opts.PatternSize && !opts.InputWrapping.HasX() {
		return nil, ErrEmptyExemplar
	}
	if input.Height() < opts.PatternSize && !opts.InputWrapping.HasY() {
		return nil, ErrEmptyExemplar
	}

	catalog, err := gatherPatterns(input, opts)
	if err != nil {
		return nil, err
	}
	compat, err := computeCompatibilities(catalog, opts)
	if err != nil {
		return nil, err
	}

	m := &Model{opts: opts, catalog: catalog}
	m.Runner = wave.NewRunner[window, Cell](catalog, compat, opts.MasterSeed, m)
	return m, nil
}

// WaveSize implements the decoder contract wave.Runner needs.
func (m *Model) WaveSize() (width, height int) { return m.opts.WaveSize() }

// OutputWrapping implements the decoder contract wave.Runner needs.
func (m *Model) OutputWrapping() wave.WrapMode { return m.opts.OutputWrapping }

// gatherPatterns extracts every S×S window of input (under the
// configured input wrapping), applies every requested D4 symmetry
// (identity is always included), and accumulates the results into a
// pattern catalog, deduplicated by cell equality. Mirrors
// OverlappingModel::gatherPatterns.
func gatherPatterns(input *grid.Grid[Cell], opts Options) (*pattern.Catalog[window], error) {
	size := opts.PatternSize
	xend := input.Width() - size + 1
	if opts.InputWrapping.HasX() {
		xend = input.Width()
	}
	yend := input.Height() - size + 1
	if opts.InputWrapping.HasY() {
		yend = input.Height()
	}
	if xend <= 0 || yend <= 0 {
		return nil, ErrEmptyExemplar
	}

	b := pattern.NewBuilder[window]()

	for x := 0; x < xend; x++ {
		for y := 0; y < yend; y++ {
			w, err := input.SquareWindowAt(grid.Coord{X: x, Y: y}, size, opts.InputWrapping)
			if err != nil {
				return nil, err
			}
			for _, img := range distinctImages(w, opts.Symmetries) {
				idx := b.Add(img, windowKey(img), 1)
				if opts.EqualFrequencies {
					b.SetCount(idx, 1)
				}
			}
		}
	}
	if b.Len() == 0 {
		return nil, ErrNoPatternsExtracted
	}
	return b.Build()
}

// distinctImages returns window plus its image under every symmetry in
// syms, always including the identity image first.
func distinctImages(w window, syms d4.Set) []window {
	out := []window{w}
	for _, s := range d4.Values() {
		if !syms.Contains(s) {
			continue
		}
		img, err := w.Transform(s)
		if err != nil {
			continue
		}
		out = append(out, img)
	}
	return out
}

// windowKey returns a content-addressable key for a square window, the
// row-major concatenation of every cell's Bytes(), used by
// pattern.Builder to dedup by equality.
func windowKey(w window) []byte {
	key := make([]byte, 0, w.Width()*w.Height()*3)
	w.ForEach(func(x, y int, c Cell) {
		key = append(key, c.Bytes()...)
	})
	return key
}

// computeCompatibilities builds C[i][d] for every ordered pattern pair
// and cardinal direction: j is compatible with i in direction d iff the
// two windows agree on their overlap once j's window is translated by
// stride·offset(d) relative to i's — the standard overlapping-WFC
// adjacency rule (spec.md section 4.3), mirroring
// OverlappingModel::computeCompatibilities and overlapEqualWhenOffset.
func computeCompatibilities(catalog *pattern.Catalog[window], opts Options) (*wave.Compatibility, error) {
	n := catalog.Size()
	b := wave.NewCompatibilityBuilder(n)
	for i := 0; i < n; i++ {
		wi := catalog.Payload(pattern.ID(i))
		for _, d := range direction.Values() {
			dx, dy := d.DX()*opts.StrideX, d.DY()*opts.StrideY
			for j := 0; j < n; j++ {
				wj := catalog.Payload(pattern.ID(j))
				if overlapEqualWhenOffset(wi, wj, dx, dy) {
					b.Allow(pattern.ID(i), d, pattern.ID(j))
				}
			}
		}
	}
	return b.Build()
}

// overlapEqualWhenOffset reports whether a and b agree on the region
// where they overlap once b is translated by (dx, dy) relative to a —
// i.e. for every cell of b that lands inside a's bounds under that
// translation, a and the translated b hold equal values.
func overlapEqualWhenOffset(a, b window, dx, dy int) bool {
	size := a.Width()
	xlo, xhi := max(0, dx), size+min(0, dx)
	ylo, yhi := max(0, dy), size+min(0, dy)
	if xlo >= xhi || ylo >= yhi {
		return true
	}
	for x := xlo; x < xhi; x++ {
		for y := ylo; y < yhi; y++ {
			if !a.At(x, y).Equal(b.At(x-dx, y-dy)) {
				return false
			}
		}
	}
	return true
}
