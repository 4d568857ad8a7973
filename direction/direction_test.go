package direction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range Values() {
		require.Equal(t, d, Opposite(Opposite(d)))
	}
}

func TestOppositePairs(t *testing.T) {
	assert.Equal(t, South, Opposite(North))
	assert.Equal(t, West, Opposite(East))
	assert.Equal(t, North, Opposite(South))
	assert.Equal(t, East, Opposite(West))
}

func TestRotationRoundTrip(t *testing.T) {
	for _, d := range Values() {
		assert.Equal(t, d, RotatedCounterClockwise(RotatedClockwise(d)))
		assert.Equal(t, d, RotatedClockwise(RotatedClockwise(RotatedClockwise(RotatedClockwise(d)))))
	}
}

func TestOffsetsAreUnitAndDistinct(t *testing.T) {
	seen := map[[2]int]Direction{}
	for _, d := range Values() {
		off := [2]int{d.DX(), d.DY()}
		require.Equal(t, 1, abs(off[0])+abs(off[1]), "direction %v should be a unit step", d)
		if other, ok := seen[off]; ok {
			t.Fatalf("direction %v and %v share offset %v", d, other, off)
		}
		seen[off] = d
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestByDirectionGetSet(t *testing.T) {
	var b ByDirection[int]
	for _, d := range Values() {
		b.Set(d, int(d)+1)
	}
	for _, d := range Values() {
		assert.Equal(t, int(d)+1, b.Get(d))
	}
}

func TestByDirectionMap(t *testing.T) {
	b := ByDirection[int]{North: 1, East: 2, South: 3, West: 4}
	doubled := Map(b, func(_ Direction, v int) int { return v * 2 })
	assert.Equal(t, ByDirection[int]{North: 2, East: 4, South: 6, West: 8}, doubled)
}

func TestStringer(t *testing.T) {
	assert.Equal(t, "North", North.String())
	assert.Equal(t, "West", West.String())
}
