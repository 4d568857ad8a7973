package tiled

import "errors"

var (
	// ErrNoTiles indicates New was called with an empty TileSet.
	ErrNoTiles = errors.New("tiled: tile set has no tiles")
	// ErrBaseNotSquare indicates a tile's base bitmap is not square.
	ErrBaseNotSquare = errors.New("tiled: tile base bitmap must be square")
	// ErrInvalidWeight indicates a tile was added with weight <= 0.
	ErrInvalidWeight = errors.New("tiled: tile weight must be positive")
	// ErrInconsistentTileSize indicates not every tile in the set shares
	// the same base bitmap side length; the decoded output has a single
	// tile size, so every tile must agree.
	ErrInconsistentTileSize = errors.New("tiled: all tiles must share the same bitmap size")
	// ErrUnknownTile indicates a TileID not present in the set was
	// referenced by DeclareIncompatible or Subset.
	ErrUnknownTile = errors.New("tiled: unknown tile id")
	// ErrInvalidOutputSize indicates Options.OutputWidth/Height are not
	// positive.
	ErrInvalidOutputSize = errors.New("tiled: output size must be positive")
)
