// Package grid models a fixed N×N occupancy grid: every cell is either
// open or blocked, with two distinguished always-open cells (start, goal).
//
// What:
//
//   - Grid wraps an N×N boolean occupancy matrix, immutable once built.
//   - New fills cells i.i.d. blocked with a given density from a
//     deterministic seeded RNG, then forces start and goal open.
//   - FromCells builds the same model from an explicit matrix (fixtures,
//     hand-crafted maps).
//   - Neighbors returns the open orthogonal neighbors of a cell in a fixed
//     order (right, down, left, up) — the order is part of the contract,
//     because it decides which equal-cost paths a search discovers first.
//   - Reachable answers connectivity questions via flood fill over open cells.
//
// Why:
//
//   - Search benchmarking: identical seeds reproduce identical maps.
//   - Visualization drivers: a read-only map safely shared by several
//     engines advancing side by side.
//   - Test oracles: flood fill verifies reachability independently of any
//     priority-driven search.
//
// Complexity:
//
//   - New:        O(N²) time and memory.
//   - Neighbors:  O(1) (at most four candidates).
//   - Reachable:  O(N²) time, O(N²) memory.
//
// Options:
//
//   - WithSeed(s): deterministic obstacle placement; seed 0 selects a fixed
//     default seed, so zero-config grids are still reproducible.
//   - WithRand(r): inject a prepared *rand.Rand (tests, derived streams).
//
// Errors:
//
//   - ErrNonPositiveSize: size ≤ 0.
//   - ErrBadDensity: obstacle density outside [0,1].
//   - ErrCoordOutOfBounds: start or goal outside the grid.
//   - ErrNonSquare: explicit cell matrix empty or not N×N.
package grid
