// Package search defines core types, configuration options, and sentinel
// errors for the stepwise grid-search engine of
// github.com/katalvlaran/pathtrace.
package search

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to New.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownMode indicates a Mode other than Uniform or Weighted.
	ErrUnknownMode = errors.New("search: unknown search mode")

	// ErrBadWeight indicates a non-positive heuristic weight was supplied.
	ErrBadWeight = errors.New("search: heuristic weight must be positive")

	// ErrAlreadyCompleted indicates Advance was called after the terminal
	// Done step was already returned. Recover locally: stop advancing.
	ErrAlreadyCompleted = errors.New("search: run already completed")
)

// Mode selects the search strategy.
type Mode int

const (
	// Uniform is uniform-cost search (exact Dijkstra over unit edges):
	// the heuristic contributes nothing to the priority.
	Uniform Mode = iota

	// Weighted is heuristic search (A*) with priority
	// g + weight·manhattan(n, goal). With the default weight 1.5 the
	// heuristic is deliberately inadmissible: it trades shortest-path
	// guarantees for faster convergence toward the goal.
	Weighted
)

// String returns the mode name, or "unknown(n)" for invalid values.
func (m Mode) String() string {
	switch m {
	case Uniform:
		return "uniform"
	case Weighted:
		return "weighted"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// DefaultHeuristicWeight is the Manhattan multiplier applied in Weighted
// mode when no WithHeuristicWeight option is given.
const DefaultHeuristicWeight = 1.5

// FrontierSampleLimit bounds the per-step frontier priority sample: each
// Step carries at most this many of the lowest priorities, ascending.
const FrontierSampleLimit = 50

// CellState mirrors occupancy plus search progress for one cell. It is
// exactly what Step snapshots carry.
type CellState uint8

const (
	// StateEmpty marks an open cell the search has not touched.
	StateEmpty CellState = iota
	// StateWall marks a blocked cell.
	StateWall
	// StateFrontier marks a discovered cell awaiting expansion.
	StateFrontier
	// StateVisited marks an expanded cell.
	StateVisited
	// StatePath marks a cell on the reconstructed start→goal path.
	StatePath
)

// String returns a short name for the cell state.
func (s CellState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateWall:
		return "wall"
	case StateFrontier:
		return "frontier"
	case StateVisited:
		return "visited"
	case StatePath:
		return "path"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// Step is one element of the engine's observable sequence.
//
// Cells          – deep copy of the cell-state mirror after this step;
//                  nil on the terminal step.
// FrontierSample – up to FrontierSampleLimit lowest frontier priorities,
//                  ascending, taken before the pop of this step; empty
//                  during path reconstruction.
// Done           – true exactly once, on the terminal marker closing the
//                  sequence (path found or not).
type Step struct {
	Cells          [][]CellState
	FrontierSample []float64
	Done           bool
}

// Options configures engine behavior.
type Options struct {
	// HeuristicWeight multiplies the Manhattan estimate in Weighted mode.
	HeuristicWeight float64

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// DefaultOptions returns an Options with HeuristicWeight set to
// DefaultHeuristicWeight.
func DefaultOptions() Options {
	return Options{
		HeuristicWeight: DefaultHeuristicWeight,
		err:             nil,
	}
}

// WithHeuristicWeight overrides the heuristic weight for Weighted mode.
// Weights in (0,1] make the heuristic admissible again; the default 1.5 is
// deliberately not. Non-positive weights surface as ErrBadWeight from New.
func WithHeuristicWeight(w float64) Option {
	return func(o *Options) {
		if w <= 0 {
			o.err = fmt.Errorf("%w: got %g", ErrBadWeight, w)

			return
		}
		o.HeuristicWeight = w
	}
}
