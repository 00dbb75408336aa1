package xslice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortByKey(t *testing.T) {
	in := []int{5, 1, 3}
	SortByKey(in, func(v int) float64 { return float64(v) })
	assert.Equal(t, []int{1, 3, 5}, in)
}

func TestSortByKeyDesc(t *testing.T) {
	in := []int{5, 1, 3}
	SortByKeyDesc(in, func(v int) float64 { return float64(v) })
	assert.Equal(t, []int{5, 3, 1}, in)
}

func TestUnorderedDelete(t *testing.T) {
	in := []int{1, 2, 3, 4}
	in = UnorderedDelete(in, 1)
	assert.Len(t, in, 3)
	assert.NotContains(t, in, 2)
}

func TestUnique(t *testing.T) {
	in := []int{1, 1, 2, 3, 2}
	out := Unique(in, func(v int) int { return v })
	assert.Equal(t, []int{1, 2, 3}, out)
}

func TestClosestIndex(t *testing.T) {
	in := []int{10, 1, 5}
	idx := ClosestIndex(in, func(v int) float64 { return float64(v) })
	assert.Equal(t, 1, idx)
}

func TestClosestIndexEmpty(t *testing.T) {
	var in []int
	assert.Equal(t, -1, ClosestIndex(in, func(v int) float64 { return float64(v) }))
}

func TestReverse(t *testing.T) {
	in := []int{1, 2, 3}
	Reverse(in)
	assert.Equal(t, []int{3, 2, 1}, in)
}
