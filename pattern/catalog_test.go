package pattern

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRejectsEmpty(t *testing.T) {
	b := NewBuilder[int]()
	_, err := b.Build()
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestAddDedupsByKeyNotByInsertionOrder(t *testing.T) {
	b := NewBuilder[string]()
	i1 := b.Add("a", []byte{1, 2, 3}, 1)
	i2 := b.Add("a-again", []byte{1, 2, 3}, 1)
	i3 := b.Add("b", []byte{4, 5, 6}, 1)

	assert.Equal(t, i1, i2, "equal keys should map to the same entry")
	assert.NotEqual(t, i1, i3)
	assert.Equal(t, 2, b.Len())
}

func TestBuildNormalizesFrequencies(t *testing.T) {
	b := NewBuilder[string]()
	b.Add("a", []byte{1}, 3)
	b.Add("b", []byte{2}, 1)

	cat, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 2, cat.Size())

	assert.InDelta(t, 0.75, cat.P(0), 1e-9)
	assert.InDelta(t, 0.25, cat.P(1), 1e-9)

	sum := 0.0
	for i := 0; i < cat.Size(); i++ {
		sum += cat.P(ID(i))
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestBuildComputesPLogP(t *testing.T) {
	b := NewBuilder[string]()
	b.Add("a", []byte{1}, 1)
	b.Add("b", []byte{2}, 1)

	cat, err := b.Build()
	require.NoError(t, err)

	for i := 0; i < cat.Size(); i++ {
		p := cat.P(ID(i))
		want := p * math.Log(p)
		assert.InDelta(t, want, cat.PLogP(ID(i)), 1e-12)
	}
}

func TestSetCountOverridesAccumulation(t *testing.T) {
	b := NewBuilder[string]()
	idx := b.Add("a", []byte{1}, 5)
	b.Add("a", []byte{1}, 5)
	b.SetCount(idx, 1)
	b.Add("b", []byte{2}, 1)

	cat, err := b.Build()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, cat.P(0), 1e-9)
	assert.InDelta(t, 0.5, cat.P(1), 1e-9)
}

func TestSortedIDsDoesNotMutateInput(t *testing.T) {
	ids := []int{3, 1, 2}
	sorted := SortedIDs(ids)
	assert.Equal(t, []int{1, 2, 3}, sorted)
	assert.Equal(t, []int{3, 1, 2}, ids, "input slice must not be mutated")
}
