package grid

import (
	"fmt"
	"math/rand"
)

// neighborOffsets lists orthogonal steps in the fixed traversal order:
// right, down, left, up. The order decides which equal-cost paths a search
// discovers first and must never change.
var neighborOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Grid is an immutable N×N occupancy model. Cells are open or blocked;
// start and goal are guaranteed open for the grid's lifetime. A Grid is
// safe for concurrent readers once constructed.
type Grid struct {
	size    int
	blocked [][]bool
	start   Coordinate
	goal    Coordinate
}

// New constructs a Grid of the given size. Each cell is blocked
// independently with probability density, drawn from a deterministic seeded
// RNG; start and goal are forced open afterwards, whatever the dice said.
//
// Returns ErrNonPositiveSize if size ≤ 0, ErrBadDensity if density lies
// outside [0,1], ErrCoordOutOfBounds if start or goal lies outside the grid.
//
// Complexity: O(N²) time and memory.
func New(size int, density float64, start, goal Coordinate, opts ...Option) (*Grid, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate dimensions and parameters, fail fast.
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositiveSize, size)
	}
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("%w: got %g", ErrBadDensity, density)
	}

	g := &Grid{
		size:  size,
		start: start,
		goal:  goal,
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrCoordOutOfBounds, start)
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrCoordOutOfBounds, goal)
	}

	// 3) Resolve the RNG: injected one wins, otherwise a fresh seeded stream.
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	// 4) Populate occupancy i.i.d. per cell.
	g.blocked = make([][]bool, size)
	for r := 0; r < size; r++ {
		row := make([]bool, size)
		for c := 0; c < size; c++ {
			row[c] = rng.Float64() < density
		}
		g.blocked[r] = row
	}

	// 5) Start and goal are always open, even on density 1.
	g.blocked[start.Row][start.Col] = false
	g.blocked[goal.Row][goal.Col] = false

	return g, nil
}

// FromCells constructs a Grid from an explicit N×N occupancy matrix, where
// true marks a blocked cell. The input is deep-copied to keep the grid
// immutable; start and goal are forced open regardless of the input.
//
// Returns ErrNonSquare if cells is empty or any row length differs from the
// row count, ErrCoordOutOfBounds if start or goal lies outside the matrix.
//
// Complexity: O(N²) time and memory.
func FromCells(cells [][]bool, start, goal Coordinate) (*Grid, error) {
	size := len(cells)
	if size == 0 {
		return nil, ErrNonSquare
	}
	for _, row := range cells {
		if len(row) != size {
			return nil, fmt.Errorf("%w: %d rows, row of length %d", ErrNonSquare, size, len(row))
		}
	}

	g := &Grid{
		size:  size,
		start: start,
		goal:  goal,
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrCoordOutOfBounds, start)
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrCoordOutOfBounds, goal)
	}

	g.blocked = make([][]bool, size)
	for r := 0; r < size; r++ {
		row := make([]bool, size)
		copy(row, cells[r])
		g.blocked[r] = row
	}
	g.blocked[start.Row][start.Col] = false
	g.blocked[goal.Row][goal.Col] = false

	return g, nil
}

// Size returns N, the edge length of the grid.
func (g *Grid) Size() int { return g.size }

// Start returns the distinguished start cell.
func (g *Grid) Start() Coordinate { return g.start }

// Goal returns the distinguished goal cell.
func (g *Grid) Goal() Coordinate { return g.goal }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// Blocked reports whether c is occupied by an obstacle. Out-of-bounds
// coordinates report blocked, so callers may probe without a bounds check.
// Complexity: O(1).
func (g *Grid) Blocked(c Coordinate) bool {
	if !g.InBounds(c) {
		return true
	}

	return g.blocked[c.Row][c.Col]
}

// Neighbors returns the in-bounds, open orthogonal neighbors of c in the
// fixed order right, down, left, up. Pure function of c and the fixed
// occupancy; no side effects.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coordinate) []Coordinate {
	out := make([]Coordinate, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coordinate{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) && !g.blocked[n.Row][n.Col] {
			out = append(out, n)
		}
	}

	return out
}

// OpenCells returns the number of open cells in the grid.
// Complexity: O(N²).
func (g *Grid) OpenCells() int {
	count := 0
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if !g.blocked[r][c] {
				count++
			}
		}
	}

	return count
}

// index maps c to a row-major index: row*Size + col.
// Complexity: O(1).
func (g *Grid) index(c Coordinate) int {
	return c.Row*g.size + c.Col
}
