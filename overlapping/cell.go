package overlapping

// Cell is the exemplar and output cell value this package decodes into.
// spec.md section 6 documents cell value as implementation-defined with
// "the reference use case ... 24-bit RGB from PNG" — that reference case
// is what this package commits to, the same way the teacher's core
// package commits to a concrete Vertex/Edge representation rather than
// staying generic over cell payloads all the way down.
type Cell struct {
	R, G, B uint8
}

// Bytes returns a content-addressable key for Cell, used by
// pattern.Builder to dedup extracted windows by equality without
// requiring Cell to be (or contain) a Go map key type.
func (c Cell) Bytes() []byte {
	return []byte{c.R, c.G, c.B}
}

// Equal reports whether c and other have the same color.
func (c Cell) Equal(other Cell) bool {
	return c == other
}
