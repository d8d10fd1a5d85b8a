package search_test

import (
	"testing"

	"github.com/katalvlaran/pathtrace/grid"
	"github.com/katalvlaran/pathtrace/search"
)

// benchGrid builds the shared 100×100 benchmark map: 30% walls, fixed seed,
// corner-to-corner endpoints.
func benchGrid(b *testing.B) *grid.Grid {
	b.Helper()
	g, err := grid.New(100, 0.3,
		grid.Coordinate{Row: 0, Col: 0},
		grid.Coordinate{Row: 99, Col: 99},
		grid.WithSeed(42))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	return g
}

// drain runs one engine to its terminal step.
func drain(b *testing.B, e *search.Engine) {
	b.Helper()
	for {
		step, err := e.Advance()
		if err != nil {
			b.Fatalf("Advance failed: %v", err)
		}
		if step.Done {
			return
		}
	}
}

// BenchmarkUniformRun measures a full uniform-cost run, snapshot copies
// included (they dominate: one O(N²) copy per expansion).
func BenchmarkUniformRun(b *testing.B) {
	g := benchGrid(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, err := search.New(g, search.Uniform)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		drain(b, e)
	}
}

// BenchmarkWeightedRun measures a full weighted run on the same map.
func BenchmarkWeightedRun(b *testing.B) {
	g := benchGrid(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, err := search.New(g, search.Weighted)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		drain(b, e)
	}
}
