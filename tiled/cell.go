package tiled

// Cell is the tile-bitmap and output cell value this package decodes
// into. Matches overlapping.Cell's commitment to spec.md section 6's
// reference use case ("24-bit RGB from PNG") without the two model
// adapters importing one another — each owns its own concrete cell type,
// the way the package map keeps tiled and overlapping independent.
type Cell struct {
	R, G, B uint8
}

// Bytes returns a content-addressable key for Cell.
func (c Cell) Bytes() []byte {
	return []byte{c.R, c.G, c.B}
}

// Equal reports whether c and other have the same color.
func (c Cell) Equal(other Cell) bool {
	return c == other
}
