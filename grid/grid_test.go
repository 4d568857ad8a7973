package grid

import (
	"testing"

	"github.com/hollow-tiles/wfc/d4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eqInt(a, b int) bool { return a == b }

func TestFromRowsAndAt(t *testing.T) {
	g, err := FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 1, g.At(0, 0))
	assert.Equal(t, 6, g.At(2, 1))
}

func TestFromRowsRejectsNonRectangular(t *testing.T) {
	_, err := FromRows([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrNonRectangular)
}

func TestNewRejectsNonPositiveSize(t *testing.T) {
	_, err := New[int](0, 5)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := New[int](2, 2)
	require.NoError(t, err)
	clone := g.Clone()
	clone.Set(0, 0, 9)
	assert.Equal(t, 0, g.At(0, 0))
	assert.Equal(t, 9, clone.At(0, 0))
}

func TestSquareWindowAtNoWrap(t *testing.T) {
	g, err := FromRows([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)

	win, err := g.SquareWindowAt(Coord{X: 1, Y: 1}, 2, WrapNone)
	require.NoError(t, err)
	assert.Equal(t, 5, win.At(0, 0))
	assert.Equal(t, 6, win.At(1, 0))
	assert.Equal(t, 8, win.At(0, 1))
	assert.Equal(t, 9, win.At(1, 1))
}

func TestSquareWindowAtOutOfRangeWithoutWrap(t *testing.T) {
	g, err := New[int](3, 3)
	require.NoError(t, err)
	_, err = g.SquareWindowAt(Coord{X: 2, Y: 2}, 2, WrapNone)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSquareWindowAtWraps(t *testing.T) {
	g, err := FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	win, err := g.SquareWindowAt(Coord{X: 1, Y: 1}, 2, WrapBoth)
	require.NoError(t, err)
	// top-left of the window is (1,1)=4, wrapping right/down back to (0,*)/(*, 0).
	assert.Equal(t, 4, win.At(0, 0))
	assert.Equal(t, 3, win.At(1, 0))
	assert.Equal(t, 2, win.At(0, 1))
	assert.Equal(t, 1, win.At(1, 1))
}

func TestTransformRotation90TwiceIsRotation180(t *testing.T) {
	g, err := FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	once, err := g.Transform(d4.Rotation90)
	require.NoError(t, err)
	twice, err := once.Transform(d4.Rotation90)
	require.NoError(t, err)

	direct, err := g.Transform(d4.Rotation180)
	require.NoError(t, err)

	assert.True(t, twice.Equal(direct, eqInt))
}

func TestTransformRejectsNonSquare(t *testing.T) {
	g, err := New[int](3, 2)
	require.NoError(t, err)
	_, err = g.Transform(d4.Rotation90)
	assert.ErrorIs(t, err, ErrNotSquare)
}

func TestTransformFlipIsSelfInverse(t *testing.T) {
	g, err := FromRows([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)

	for _, s := range []d4.Symmetry{d4.FlipHorizontal, d4.FlipVertical, d4.FlipDiagonal, d4.FlipAntiDiagonal} {
		once, err := g.Transform(s)
		require.NoError(t, err)
		twice, err := once.Transform(s)
		require.NoError(t, err)
		assert.True(t, g.Equal(twice, eqInt), "symmetry %v should be self-inverse", s)
	}
}

func TestEqualDetectsDimensionMismatch(t *testing.T) {
	a, err := New[int](2, 2)
	require.NoError(t, err)
	b, err := New[int](2, 3)
	require.NoError(t, err)
	assert.False(t, a.Equal(b, eqInt))
}
