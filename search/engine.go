package search

import (
	"github.com/katalvlaran/pathtrace/grid"
)

// phase tracks where a run currently stands in its step sequence.
type phase int

const (
	// phaseExpanding pops and relaxes frontier entries.
	phaseExpanding phase = iota
	// phaseReconstructing walks the parent chain goal→start.
	phaseReconstructing
	// phaseDone means the terminal Done step has been returned.
	phaseDone
)

// Engine executes one search run over a read-only Grid and exposes it as a
// pull-based sequence of Steps. The engine performs no work between Advance
// calls: each call executes exactly one expansion (or one backtrack step of
// path reconstruction) and suspends. An Engine is single-use and not
// goroutine-safe; run several engines over the same Grid to compare modes.
type Engine struct {
	g      *grid.Grid
	mode   Mode
	weight float64

	// Per-run state, owned exclusively by this engine.
	frontier *frontier
	bestCost map[grid.Coordinate]int
	parent   map[grid.Coordinate]grid.Coordinate
	cells    [][]CellState

	expanded int // pops of non-start cells, stale re-pops included
	distinct int // cells marked visited for the first time

	phase  phase
	cursor grid.Coordinate // current cell of the reconstruction walk
}

// New constructs an Engine over g for one run in the given mode.
// Returns ErrNilGrid, ErrUnknownMode, or ErrBadWeight on invalid input.
//
// The grid is shared read-only; New never mutates it.
func New(g *grid.Grid, mode Mode, opts ...Option) (*Engine, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate inputs, fail fast.
	if g == nil {
		return nil, ErrNilGrid
	}
	if mode != Uniform && mode != Weighted {
		return nil, ErrUnknownMode
	}

	size := g.Size()
	e := &Engine{
		g:        g,
		mode:     mode,
		weight:   cfg.HeuristicWeight,
		frontier: newFrontier(size),
		bestCost: make(map[grid.Coordinate]int, size*size),
		parent:   make(map[grid.Coordinate]grid.Coordinate, size*size),
		cells:    make([][]CellState, size),
	}

	// 3) Mirror occupancy into the cell-state grid.
	for r := 0; r < size; r++ {
		row := make([]CellState, size)
		for c := 0; c < size; c++ {
			if g.Blocked(grid.Coordinate{Row: r, Col: c}) {
				row[c] = StateWall
			}
		}
		e.cells[r] = row
	}

	// 4) Seed the run: frontier holds (0, start), start costs zero and has
	//    no parent.
	e.bestCost[g.Start()] = 0
	e.frontier.push(0, g.Start())

	return e, nil
}

// Mode returns the engine's search mode.
func (e *Engine) Mode() Mode { return e.mode }

// HeuristicWeight returns the configured Manhattan multiplier. It is
// meaningful in Weighted mode only.
func (e *Engine) HeuristicWeight() float64 { return e.weight }

// ExpandedCount returns the number of pop operations performed, excluding
// pops of the start cell. Stale re-pops of an already-visited coordinate
// are counted too, so the value can exceed DistinctVisited. This mirrors
// the exploration counter a driver would display live.
func (e *Engine) ExpandedCount() int { return e.expanded }

// DistinctVisited returns the number of distinct cells marked visited.
// Diagnostic companion to ExpandedCount; the two differ exactly by the
// number of stale re-expansions.
func (e *Engine) DistinctVisited() int { return e.distinct }

// CellStates returns a deep copy of the current cell-state mirror. Valid
// at any point of the run, including after Done.
func (e *Engine) CellStates() [][]CellState { return e.snapshot() }

// Path returns the reconstructed start→goal path, or nil if the goal has
// no recorded parent chain (unreachable, or the run has not relaxed it
// yet). Intended for use after the terminal step.
func (e *Engine) Path() []grid.Coordinate {
	goal := e.g.Goal()
	if _, ok := e.bestCost[goal]; !ok {
		return nil
	}
	// Walk backwards, then reverse in place.
	path := []grid.Coordinate{goal}
	for cur := goal; cur != e.g.Start(); {
		prev, ok := e.parent[cur]
		if !ok {
			return nil
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Advance executes exactly one step of the run and returns its Step.
//
// During expansion each call samples the frontier, pops the lowest entry,
// marks and counts it, relaxes its neighbors, and returns a snapshot.
// Popping the goal switches to path reconstruction within the same call
// (the goal pop itself emits no expansion snapshot). During reconstruction
// each call marks one path cell and returns a snapshot. The sequence closes
// with a single Step{Done: true}; any Advance after that returns
// ErrAlreadyCompleted.
//
// Frontier exhaustion before the goal is popped is a normal terminal
// outcome, not an error: Done arrives with no path-marked cells.
func (e *Engine) Advance() (Step, error) {
	switch e.phase {
	case phaseDone:
		return Step{}, ErrAlreadyCompleted
	case phaseReconstructing:
		return e.backtrack(), nil
	default:
	}

	// Expansion phase. An empty frontier means no path exists.
	if e.frontier.len() == 0 {
		return e.settle(), nil
	}

	// 1) Sample the frontier before touching it; the sample rides along
	//    with this step's snapshot.
	sample := e.frontier.sample(FrontierSampleLimit)

	// 2) Pop the single lowest-priority entry.
	current := e.frontier.pop().coord

	// 3) Goal reached: expansion is over, move on to reconstruction.
	if current == e.g.Goal() {
		return e.settle(), nil
	}

	// 4) Mark and count every non-start pop, stale or not. No closed-set
	//    short-circuit happens here: a coordinate popped via a superseded
	//    frontier entry is re-marked and re-counted.
	if current != e.g.Start() {
		if e.cells[current.Row][current.Col] != StateVisited {
			e.distinct++
		}
		e.cells[current.Row][current.Col] = StateVisited
		e.expanded++
	}

	// 5) Relax all open neighbors of current.
	e.relax(current)

	// 6) Produce the snapshot for this expansion.
	return Step{Cells: e.snapshot(), FrontierSample: sample}, nil
}

// relax attempts to improve the cost of each neighbor of current. On strict
// improvement it records cost and parent and pushes a fresh frontier entry;
// superseded entries stay in the heap (lazy decrease-key).
func (e *Engine) relax(current grid.Coordinate) {
	goal := e.g.Goal()
	newCost := e.bestCost[current] + 1 // unit edge weight
	for _, n := range e.g.Neighbors(current) {
		old, known := e.bestCost[n]
		if known && newCost >= old {
			continue
		}

		e.bestCost[n] = newCost
		e.parent[n] = current

		priority := float64(newCost)
		if e.mode == Weighted {
			priority += e.weight * float64(n.Manhattan(goal))
		}
		e.frontier.push(priority, n)

		// The goal is never painted as frontier, and a visited mark is
		// never downgraded back to frontier.
		if n != goal && e.cells[n.Row][n.Col] != StateVisited {
			e.cells[n.Row][n.Col] = StateFrontier
		}
	}
}

// settle ends the expansion phase: it either starts the reconstruction
// walk (returning its first step) or, with no parent chain to the goal,
// returns the terminal step directly.
func (e *Engine) settle() Step {
	if _, ok := e.bestCost[e.g.Goal()]; ok {
		e.cursor = e.g.Goal()
		e.phase = phaseReconstructing

		return e.backtrack()
	}

	return e.finish()
}

// backtrack performs one step of the reconstruction walk: it marks the
// cursor cell as path and moves the cursor one parent link toward start.
// Reaching start marks it and closes the sequence with the terminal step.
func (e *Engine) backtrack() Step {
	e.cells[e.cursor.Row][e.cursor.Col] = StatePath
	if e.cursor == e.g.Start() {
		return e.finish()
	}
	e.cursor = e.parent[e.cursor]

	return Step{Cells: e.snapshot()}
}

// finish flips the run into its terminal state and returns the Done marker.
func (e *Engine) finish() Step {
	e.phase = phaseDone

	return Step{Done: true}
}

// snapshot deep-copies the cell-state mirror.
func (e *Engine) snapshot() [][]CellState {
	out := make([][]CellState, len(e.cells))
	for r, row := range e.cells {
		cp := make([]CellState, len(row))
		copy(cp, row)
		out[r] = cp
	}

	return out
}
