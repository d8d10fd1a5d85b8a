package grid_test

import (
	"testing"

	"github.com/katalvlaran/pathtrace/grid"
)

// BenchmarkNew measures construction of a 1000×1000 grid at 30% density
// with a fixed seed.
// Complexity: O(N²)
func BenchmarkNew(b *testing.B) {
	const n = 1000
	start := grid.Coordinate{Row: 0, Col: 0}
	goal := grid.Coordinate{Row: n - 1, Col: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := grid.New(n, 0.3, start, goal, grid.WithSeed(42))
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkReachable measures flood fill across a 1000×1000 grid at 30%
// density (worst case scans every open cell).
// Complexity: O(N²·4)
func BenchmarkReachable(b *testing.B) {
	const n = 1000
	start := grid.Coordinate{Row: 0, Col: 0}
	goal := grid.Coordinate{Row: n - 1, Col: n - 1}
	g, err := grid.New(n, 0.3, start, goal, grid.WithSeed(42))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Reachable(start, goal)
	}
}
