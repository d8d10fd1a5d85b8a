// Package search runs priority-driven exploration of an occupancy grid and
// exposes it as an incremental, observable process rather than a one-shot
// function call.
//
// What:
//
//   - Engine owns one read-only grid.Grid and runs either uniform-cost
//     search (exact Dijkstra over unit edges) or weighted heuristic search
//     (A* with a Manhattan estimate, default weight 1.5).
//   - Advance performs exactly one frontier expansion (or one backtrack
//     step of path reconstruction) per call and returns a Step: a deep
//     cell-state snapshot plus a sample of the lowest frontier priorities.
//   - The sequence closes with a single Done marker; advancing past it
//     yields ErrAlreadyCompleted.
//
// Why:
//
//   - Visualization: drivers render snapshots at their own pace; the engine
//     never runs ahead of its consumer.
//   - Teaching and debugging: frontier shape, relaxation order and stale
//     entries become visible one expansion at a time.
//   - Algorithm comparison: two engines over the same grid (one per mode)
//     can be advanced interleaved with no shared mutable state.
//
// Frontier semantics (deliberate, observable behavior):
//
//   - Lazy decrease-key: relaxation pushes a fresh entry and never removes
//     the superseded one; correctness rests on the cost map, not on heap
//     contents.
//   - No closed set: every pop of a non-start cell is marked and counted,
//     so ExpandedCount includes stale re-expansions and can exceed
//     DistinctVisited. Do not "fix" this; it is part of the contract.
//   - Ties break by coordinate (row, then column), making pop order a pure
//     function of frontier contents.
//   - The default heuristic weight 1.5 is intentionally inadmissible: the
//     weighted mode converges faster at the price of optimality.
//
// Complexity:
//
//   - One Advance: O(F log F) for F frontier entries (sample + pop + up to
//     four pushes).
//   - Whole run: O(N² log N²) time, O(N²) memory, for an N×N grid.
//
// Errors:
//
//   - ErrNilGrid: New received a nil grid.
//   - ErrUnknownMode: New received a mode other than Uniform or Weighted.
//   - ErrBadWeight: WithHeuristicWeight received a non-positive weight.
//   - ErrAlreadyCompleted: Advance called after the terminal Done step.
//
// A run with no path to the goal is NOT an error: the frontier drains, no
// cell is ever marked StatePath, and Done arrives normally. Callers decide
// reachability by inspecting the snapshot (or grid.Reachable), not by
// catching an error.
package search
