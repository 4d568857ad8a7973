package overlapping

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollow-tiles/wfc/grid"
	"github.com/hollow-tiles/wfc/wave"
)

func uniformExemplar(t *testing.T, size int, c Cell) *grid.Grid[Cell] {
	t.Helper()
	g, err := grid.NewFilled[Cell](size, size, c)
	require.NoError(t, err)
	return g
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.PatternSize = 1
	_, err := New(uniformExemplar(t, 3, Cell{R: 1}), opts)
	assert.ErrorIs(t, err, ErrInvalidPatternSize)
}

func TestNewRejectsExemplarSmallerThanPattern(t *testing.T) {
	opts := DefaultOptions()
	opts.PatternSize = 4
	opts.OutputWidth, opts.OutputHeight = 8, 8
	_, err := New(uniformExemplar(t, 3, Cell{R: 1}), opts)
	assert.ErrorIs(t, err, ErrEmptyExemplar)
}

func TestNextOnUniformExemplarProducesUniformOutput(t *testing.T) {
	red := Cell{R: 200, G: 10, B: 10}
	exemplar := uniformExemplar(t, 4, red)

	opts := DefaultOptions()
	opts.PatternSize = 2
	opts.InputWrapping = grid.WrapBoth
	opts.OutputWrapping = grid.WrapBoth
	opts.OutputWidth, opts.OutputHeight = 6, 6

	m, err := New(exemplar, opts)
	require.NoError(t, err)

	out, err := m.Next(nil)
	require.NoError(t, err)
	assert.Equal(t, 6, out.Width())
	assert.Equal(t, 6, out.Height())
	out.ForEach(func(x, y int, c Cell) {
		assert.Equal(t, red, c)
	})
}

func TestNextWithExplicitSeedIsDeterministic(t *testing.T) {
	exemplar, err := grid.FromRows([][]Cell{
		{{R: 1}, {R: 2}, {R: 1}},
		{{R: 2}, {R: 1}, {R: 2}},
		{{R: 1}, {R: 2}, {R: 1}},
	})
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.PatternSize = 2
	opts.InputWrapping = grid.WrapBoth
	opts.OutputWrapping = grid.WrapBoth
	opts.OutputWidth, opts.OutputHeight = 6, 6

	m1, err := New(exemplar, opts)
	require.NoError(t, err)
	m2, err := New(exemplar, opts)
	require.NoError(t, err)

	// A given seed may or may not hit a contradiction depending on the
	// exemplar; determinism means two runs from the same seed agree on
	// which outcome that is, and on the exact output when they succeed.
	seed := uint64(7)
	out1, err1 := m1.Next(&seed)
	out2, err2 := m2.Next(&seed)

	require.Equal(t, err1 == nil, err2 == nil)
	if err1 == nil {
		assert.True(t, out1.Equal(out2, Cell.Equal))
	} else {
		assert.ErrorIs(t, err1, wave.ErrContradiction)
		assert.ErrorIs(t, err2, wave.ErrContradiction)
	}
}

func TestNextParallelReturnsKIndependentOutputs(t *testing.T) {
	blue := Cell{R: 10, G: 10, B: 200}
	exemplar := uniformExemplar(t, 4, blue)

	opts := DefaultOptions()
	opts.PatternSize = 2
	opts.InputWrapping = grid.WrapBoth
	opts.OutputWrapping = grid.WrapBoth
	opts.OutputWidth, opts.OutputHeight = 6, 6

	m, err := New(exemplar, opts)
	require.NoError(t, err)

	outs, err := m.NextParallel(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, outs, 4)
	for _, out := range outs {
		out.ForEach(func(x, y int, c Cell) {
			assert.Equal(t, blue, c)
		})
	}
}
