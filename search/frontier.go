package search

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/pathtrace/grid"
)

// entry pairs a frontier priority with its coordinate.
type entry struct {
	priority float64
	coord    grid.Coordinate
}

// entryHeap is a min-heap of entries ordered by priority ascending, ties
// broken by coordinate row-major order. The tie-break is deliberate: it
// makes pop order a pure function of contents, independent of insertion
// history.
//
// The frontier follows the lazy-decrease-key strategy: relaxation pushes a
// fresh entry and never removes the superseded one, so the heap may hold
// several entries for the same coordinate at different priorities. Stale
// entries are harmless because bestCost is always updated before they are
// eventually popped.
type entryHeap []entry

// Len returns the number of entries in the heap.
func (h entryHeap) Len() int { return len(h) }

// Less orders by priority, then row, then column.
func (h entryHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].coord.Less(h[j].coord)
}

// Swap swaps two entries.
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds x onto the heap. Called by heap.Push; x must be an entry.
func (h *entryHeap) Push(x any) { *h = append(*h, x.(entry)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// frontier wraps the heap behind push/pop/sample verbs.
type frontier struct {
	h entryHeap
}

func newFrontier(capacity int) *frontier {
	f := &frontier{h: make(entryHeap, 0, capacity)}
	heap.Init(&f.h)

	return f
}

// len returns the number of entries, stale ones included.
func (f *frontier) len() int { return len(f.h) }

// push inserts an entry. O(log n).
func (f *frontier) push(priority float64, c grid.Coordinate) {
	heap.Push(&f.h, entry{priority: priority, coord: c})
}

// pop removes and returns the lowest-priority entry. O(log n).
// Callers must check len() first.
func (f *frontier) pop() entry {
	return heap.Pop(&f.h).(entry)
}

// sample returns up to n of the lowest priorities, sorted ascending,
// without mutating the heap. Exposed per step purely for observability of
// the frontier's shape (a flat slope means a broad search, a steep slope a
// focused one). O(k log k) for k entries.
func (f *frontier) sample(n int) []float64 {
	if len(f.h) == 0 {
		return nil
	}
	priorities := make([]float64, len(f.h))
	for i, e := range f.h {
		priorities[i] = e.priority
	}
	sort.Float64s(priorities)
	if len(priorities) > n {
		priorities = priorities[:n]
	}

	return priorities
}
