// Package grid provides the generic 2D array container used to hold
// exemplar images, tile bitmaps, and decoded output: a thin, row-major
// rectangular buffer with bounds-checked access, D4 transforms, and
// wrap-aware sub-window extraction. It is deliberately unopinionated
// about what it stores — the solver (package wave) and the model
// adapters instantiate it over whatever cell type they need.
package grid

import (
	"fmt"

	"github.com/hollow-tiles/wfc/d4"
)

// Coord addresses a single cell by its column (X) and row (Y).
type Coord struct {
	X, Y int
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// WrapMode selects which axes of a grid are treated as toroidal
// (wrapping) versus bounded, mirroring WrappingMode in the original
// implementation.
type WrapMode uint8

const (
	WrapNone WrapMode = 0
	WrapX    WrapMode = 1 << 0
	WrapY    WrapMode = 1 << 1
	WrapBoth          = WrapX | WrapY
)

// HasX reports whether the X axis wraps.
func (w WrapMode) HasX() bool { return w&WrapX != 0 }

// HasY reports whether the Y axis wraps.
func (w WrapMode) HasY() bool { return w&WrapY != 0 }

// Grid is a rectangular, row-major buffer of cells of type T.
// Grid[x][y] is stored at cells[y*width+x]; G.At(x, y) is the accessor.
type Grid[T any] struct {
	width, height int
	cells         []T
}

// New allocates a width×height grid with every cell set to the zero value
// of T. Both dimensions must be positive.
func New[T any](width, height int) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	return &Grid[T]{width: width, height: height, cells: make([]T, width*height)}, nil
}

// NewFilled allocates a width×height grid with every cell set to v.
func NewFilled[T any](width, height int, v T) (*Grid[T], error) {
	g, err := New[T](width, height)
	if err != nil {
		return nil, err
	}
	for i := range g.cells {
		g.cells[i] = v
	}
	return g, nil
}

// FromRows builds a grid from row-major input, rows[y][x]. All rows must
// share the same length.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidSize
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}
	g, err := New[T](width, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		copy(g.cells[y*width:(y+1)*width], row)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// InBounds reports whether (x, y) is a valid cell coordinate.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid[T]) index(x, y int) int { return y*g.width + x }

// At returns the value at (x, y). Panics if out of bounds, matching
// slice-indexing semantics elsewhere in Go; callers that accept
// externally-derived coordinates should check InBounds first.
func (g *Grid[T]) At(x, y int) T {
	return g.cells[g.index(x, y)]
}

// Set stores v at (x, y).
func (g *Grid[T]) Set(x, y int, v T) {
	g.cells[g.index(x, y)] = v
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Clone returns an independent deep copy.
func (g *Grid[T]) Clone() *Grid[T] {
	out := &Grid[T]{width: g.width, height: g.height, cells: make([]T, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// ForEach calls f for every cell in row-major order.
func (g *Grid[T]) ForEach(f func(x, y int, v T)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			f(x, y, g.cells[g.index(x, y)])
		}
	}
}

// wrapAxis maps a possibly out-of-range coordinate back into [0, n) when
// wrapping is enabled for that axis, or reports it as out of range.
func wrapAxis(v, n int, wrap bool) (int, bool) {
	if v >= 0 && v < n {
		return v, true
	}
	if !wrap {
		return 0, false
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v, true
}

// SquareWindowAt extracts the size×size square whose top-left corner is
// origin, wrapping out-of-range coordinates on the axes wrap selects and
// rejecting them with ErrOutOfRange on the others. Used by the
// overlapping model to gather candidate patterns.
func (g *Grid[T]) SquareWindowAt(origin Coord, size int, wrap WrapMode) (*Grid[T], error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	out, err := New[T](size, size)
	if err != nil {
		return nil, err
	}
	for dy := 0; dy < size; dy++ {
		sy, ok := wrapAxis(origin.Y+dy, g.height, wrap.HasY())
		if !ok {
			return nil, fmt.Errorf("%w: window at %v size %d exceeds height", ErrOutOfRange, origin, size)
		}
		for dx := 0; dx < size; dx++ {
			sx, ok := wrapAxis(origin.X+dx, g.width, wrap.HasX())
			if !ok {
				return nil, fmt.Errorf("%w: window at %v size %d exceeds width", ErrOutOfRange, origin, size)
			}
			out.Set(dx, dy, g.At(sx, sy))
		}
	}
	return out, nil
}

// transformed applies the coordinate remap f (x, y, size) -> (x', y') used
// by every D4 transform below, matching SquareArray2::transformed in the
// original implementation. g must be square.
func (g *Grid[T]) transformed(f func(x, y, size int) (int, int)) (*Grid[T], error) {
	if g.width != g.height {
		return nil, ErrNotSquare
	}
	size := g.width
	out, err := New[T](size, size)
	if err != nil {
		return nil, err
	}
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			tx, ty := f(x, y, size)
			out.Set(x, y, g.At(tx, ty))
		}
	}
	return out, nil
}

// Transform applies the given D4 symmetry to a square grid and returns
// the resulting image. The mapping from symmetry to pixel permutation
// matches the rotated90/rotated180/.../flippedAboutAntiDiagonal family in
// the original SquareArray2.
func (g *Grid[T]) Transform(s d4.Symmetry) (*Grid[T], error) {
	switch s {
	case d4.Identity:
		return g.Clone(), nil
	case d4.Rotation90:
		return g.transformed(func(x, y, size int) (int, int) { return size - y - 1, x })
	case d4.Rotation180:
		return g.transformed(func(x, y, size int) (int, int) { return size - x - 1, size - y - 1 })
	case d4.Rotation270:
		return g.transformed(func(x, y, size int) (int, int) { return y, size - x - 1 })
	case d4.FlipHorizontal:
		return g.transformed(func(x, y, size int) (int, int) { return x, size - y - 1 })
	case d4.FlipVertical:
		return g.transformed(func(x, y, size int) (int, int) { return size - x - 1, y })
	case d4.FlipDiagonal:
		return g.transformed(func(x, y, size int) (int, int) { return y, x })
	case d4.FlipAntiDiagonal:
		return g.transformed(func(x, y, size int) (int, int) { return size - y - 1, size - x - 1 })
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownSymmetry, s)
	}
}

// Equal reports whether g and other have the same dimensions and cells,
// given an equality predicate for T (T need not be comparable — cell
// types built from slices, like packed images, are not).
func (g *Grid[T]) Equal(other *Grid[T], eq func(a, b T) bool) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if !eq(g.cells[i], other.cells[i]) {
			return false
		}
	}
	return true
}
