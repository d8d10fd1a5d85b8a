// Package pathtrace is an observable grid-search playground: build an
// occupancy grid, point a search engine at it, and watch the frontier
// evolve one expansion at a time.
//
// 🚀 What is pathtrace?
//
//	A small, deterministic library that brings together:
//		• grid/   — immutable N×N occupancy grids with random obstacles,
//		            fixed neighbor ordering and flood-fill reachability
//		• search/ — a stepwise search engine running uniform-cost (Dijkstra)
//		            or weighted-heuristic (A*) exploration, exposed as a
//		            pull-based sequence of grid snapshots
//
// ✨ Why choose pathtrace?
//
//   - Step-by-step – every Advance performs exactly one expansion and hands
//     back a snapshot; pacing is entirely the caller's concern
//   - Reproducible – fixed neighbor order, deterministic tie-breaks and
//     seeded grids make every run replayable bit for bit
//   - Pure Go – no cgo, no hidden deps, no background goroutines
//
// Quick ASCII example, uniform mode on a 5×5 open grid:
//
//	S · · · ·        S ▪ ▪ · ·
//	· · · · ·   ⇒    ▪ ▪ ░ · ·
//	· · · · ·        ▪ ░ · · ·
//	· · · · G        ░ · · · G
//
//	(▪ visited, ░ frontier after a few Advance calls)
//
// Dive into the grid and search package docs for the full contract,
// including the lazy-deletion frontier and the snapshot sequence rules.
package pathtrace
