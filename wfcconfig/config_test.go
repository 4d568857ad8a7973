package wfcconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollow-tiles/wfc/d4"
	"github.com/hollow-tiles/wfc/grid"
)

func TestParseWrapping(t *testing.T) {
	cases := map[string]grid.WrapMode{
		"":           grid.WrapNone,
		"none":       grid.WrapNone,
		"horizontal": grid.WrapX,
		"vertical":   grid.WrapY,
		"both":       grid.WrapBoth,
	}
	for in, want := range cases {
		got, err := parseWrapping(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := parseWrapping("diagonal")
	assert.ErrorIs(t, err, ErrUnknownWrapping)
}

func TestParseSymmetrySet(t *testing.T) {
	set, err := parseSymmetrySet([]string{"rotate90", "flip_h"})
	require.NoError(t, err)
	assert.True(t, set.Contains(d4.Rotation90))
	assert.True(t, set.Contains(d4.FlipHorizontal))
	assert.False(t, set.Contains(d4.Rotation180))

	_, err = parseSymmetrySet([]string{"nonsense"})
	assert.ErrorIs(t, err, ErrUnknownSymmetry)
}

func TestParseTileSymmetryLetterPrefersLetter(t *testing.T) {
	set, err := parseTileSymmetryLetter("X", []string{"rotate90"})
	require.NoError(t, err)
	assert.Equal(t, d4.All, set)
}

func TestParseTileSymmetryLetterFallsBackToNames(t *testing.T) {
	set, err := parseTileSymmetryLetter("", []string{"rotate180"})
	require.NoError(t, err)
	assert.True(t, set.Contains(d4.Rotation180))
}

func TestParseHexColor(t *testing.T) {
	r, g, b, err := parseHexColor("#ff0080")
	require.NoError(t, err)
	assert.Equal(t, byte(0xff), r)
	assert.Equal(t, byte(0x00), g)
	assert.Equal(t, byte(0x80), b)

	_, _, _, err = parseHexColor("not-a-color")
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestBuildBitmapRejectsNonRectangular(t *testing.T) {
	_, err := buildBitmap([][]string{{"#000000", "#000000"}, {"#000000"}}, func(r, g, b byte) [3]byte {
		return [3]byte{r, g, b}
	})
	assert.ErrorIs(t, err, ErrNonRectangularBitmap)
}

func TestParseOverlappingAppliesDefaultsAndOverrides(t *testing.T) {
	doc := []byte(`
exemplar:
  - ["#ff0000", "#00ff00"]
  - ["#0000ff", "#ff0000"]
pattern_size: 2
input_wrapping: both
output_wrapping: both
output_size: [4, 4]
seed: 99
`)
	exemplar, opts, err := ParseOverlapping(doc)
	require.NoError(t, err)
	assert.Equal(t, 2, exemplar.Width())
	assert.Equal(t, 2, exemplar.Height())
	assert.Equal(t, 2, opts.PatternSize)
	assert.Equal(t, 1, opts.StrideX) // not set in the document, default preserved
	assert.Equal(t, grid.WrapBoth, opts.InputWrapping)
	assert.Equal(t, grid.WrapBoth, opts.OutputWrapping)
	assert.Equal(t, 4, opts.OutputWidth)
	assert.Equal(t, 4, opts.OutputHeight)
	assert.Equal(t, uint64(99), opts.MasterSeed)
}

func TestParseTiledBuildsTileSetAndIncompatibilities(t *testing.T) {
	doc := []byte(`
tiles:
  - bitmap:
      - ["#ff0000", "#ff0000"]
      - ["#ff0000", "#ff0000"]
    north: 0
    east: {native: 1, reversed: 2}
    south: 0
    west: 0
    symmetry: L
    weight: 2
  - bitmap:
      - ["#00ff00", "#00ff00"]
      - ["#00ff00", "#00ff00"]
    north: 0
    east: 0
    south: 0
    west: {native: 2, reversed: 1}
    symmetry: L
incompatible:
  - tile_a: 0
    tile_b: 1
    label: 0
output_size: [3, 3]
output_wrapping: none
`)
	ts, opts, err := ParseTiled(doc)
	require.NoError(t, err)
	require.Equal(t, 2, ts.Len())
	assert.False(t, ts.AreCompatible(0, 1, 0))
	assert.True(t, ts.AreCompatible(0, 1, 1))
	assert.Equal(t, 3, opts.OutputWidth)
	assert.Equal(t, 3, opts.OutputHeight)
	assert.Equal(t, grid.WrapNone, opts.OutputWrapping)
}
