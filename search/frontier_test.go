package search

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/grid"
)

// TestFrontier_PopOrder verifies priority ordering with the deterministic
// (row, col) tie-break.
func TestFrontier_PopOrder(t *testing.T) {
	f := newFrontier(8)
	f.push(1.0, grid.Coordinate{Row: 2, Col: 0})
	f.push(1.0, grid.Coordinate{Row: 0, Col: 5})
	f.push(0.5, grid.Coordinate{Row: 3, Col: 3})
	f.push(1.0, grid.Coordinate{Row: 0, Col: 2})

	want := []entry{
		{priority: 0.5, coord: grid.Coordinate{Row: 3, Col: 3}},
		{priority: 1.0, coord: grid.Coordinate{Row: 0, Col: 2}},
		{priority: 1.0, coord: grid.Coordinate{Row: 0, Col: 5}},
		{priority: 1.0, coord: grid.Coordinate{Row: 2, Col: 0}},
	}
	for i, w := range want {
		got := f.pop()
		assert.Equal(t, w, got, "pop #%d", i)
	}
	assert.Equal(t, 0, f.len())
}

// TestFrontier_KeepsStaleDuplicates verifies the lazy-deletion scheme: a
// coordinate may sit in the heap at several priorities, and every entry is
// eventually popped.
func TestFrontier_KeepsStaleDuplicates(t *testing.T) {
	c := grid.Coordinate{Row: 1, Col: 1}
	f := newFrontier(4)
	f.push(3.0, c)
	f.push(1.0, c)
	f.push(2.0, c)

	require.Equal(t, 3, f.len(), "duplicates must not collapse")
	assert.Equal(t, 1.0, f.pop().priority)
	assert.Equal(t, 2.0, f.pop().priority)
	assert.Equal(t, 3.0, f.pop().priority)
}

// TestFrontier_Sample verifies the sample is bounded, ascending, and leaves
// the heap untouched.
func TestFrontier_Sample(t *testing.T) {
	f := newFrontier(64)
	// Push 60 entries with descending priorities so heap order and push
	// order disagree.
	for i := 0; i < 60; i++ {
		f.push(float64(60-i), grid.Coordinate{Row: i / 8, Col: i % 8})
	}

	got := f.sample(50)
	require.Len(t, got, 50)
	assert.True(t, sort.Float64sAreSorted(got), "sample must ascend")
	assert.Equal(t, 1.0, got[0])
	assert.Equal(t, 50.0, got[49])

	// Sampling must not mutate frontier state.
	assert.Equal(t, 60, f.len())
	assert.Equal(t, 1.0, f.pop().priority)
}

// TestFrontier_SampleSmall covers the under-limit and empty cases.
func TestFrontier_SampleSmall(t *testing.T) {
	f := newFrontier(4)
	assert.Nil(t, f.sample(50), "empty frontier samples nil")

	f.push(2.5, grid.Coordinate{Row: 0, Col: 1})
	f.push(0.5, grid.Coordinate{Row: 1, Col: 0})
	assert.Equal(t, []float64{0.5, 2.5}, f.sample(50))
}
