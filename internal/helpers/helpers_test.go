package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	a := make([]int, 0, 5)
	b := append(a[:0], 1, 2, 3, 4)
	c := append(a[:0], 4, 5, 6)

	assert.Equal(t, []int{}, a)
	assert.Equal(t, []int{4, 5, 6, 4}, b)
	assert.Equal(t, []int{4, 5, 6}, c)
}

func TestOptional(t *testing.T) {
	o := Some(3)
	assert.True(t, o.HasValue())
	assert.Equal(t, 3, o.Value())

	e := Empty[string]()
	assert.True(t, e.IsEmpty())
	assert.Equal(t, "fallback", e.ValueOr("fallback"))
}

func TestSliceHelpers(t *testing.T) {
	evens := FilterSlice([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{2, 4}, evens)

	doubled := MapSlice(evens, func(i int) int { return i * 2 })
	assert.Equal(t, []int{4, 8}, doubled)

	found := FindInSlice(doubled, func(i int) bool { return i > 5 })
	assert.Equal(t, 8, found.Value())

	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
}

func TestFlipArray(t *testing.T) {
	array := [8][8]int{}
	array[0][3] = 7
	array[6][1] = -2

	flipped := FlipArray(array)
	assert.Equal(t, 7, flipped[7][3])
	assert.Equal(t, -2, flipped[1][1])
	assert.Equal(t, array, FlipArray(flipped))
}
