// Package grid defines core types, options, and sentinel errors for the
// occupancy-grid component of github.com/katalvlaran/pathtrace.
package grid

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for grid construction.
var (
	// ErrNonPositiveSize indicates the requested grid size is zero or negative.
	ErrNonPositiveSize = errors.New("grid: size must be positive")

	// ErrBadDensity indicates the obstacle density lies outside [0,1].
	ErrBadDensity = errors.New("grid: obstacle density must be within [0,1]")

	// ErrCoordOutOfBounds indicates start or goal lies outside the grid.
	ErrCoordOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrNonSquare indicates an explicit cell matrix is empty or not N×N.
	ErrNonSquare = errors.New("grid: cells must form a non-empty square matrix")
)

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// Coordinate addresses a single cell as (Row, Col), 0 ≤ each < N.
// It is a comparable value type and is used as a map key throughout.
type Coordinate struct {
	Row, Col int
}

// Less reports whether c orders before other in row-major order
// (row first, then column). Used for deterministic tie-breaking.
func (c Coordinate) Less(other Coordinate) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}

	return c.Col < other.Col
}

// Manhattan returns the Manhattan distance |Δrow| + |Δcol| between c and other.
func (c Coordinate) Manhattan(other Coordinate) int {
	dr := c.Row - other.Row
	if dr < 0 {
		dr = -dr
	}
	dc := c.Col - other.Col
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// String renders the coordinate as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Options holds tunable parameters for grid construction.
//
// Seed – seed for the obstacle RNG; 0 selects defaultSeed.
// Rand – optional prepared RNG; takes precedence over Seed when non-nil.
type Options struct {
	Seed int64
	Rand *rand.Rand
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// DefaultOptions returns an Options with the fixed default seed and no
// injected RNG. Use this as a starting point for overrides.
func DefaultOptions() Options {
	return Options{
		Seed: defaultSeed,
		Rand: nil,
	}
}

// WithSeed sets the obstacle RNG seed. Seed 0 keeps the fixed default seed,
// so construction stays reproducible even with zero configuration.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		if seed != 0 {
			o.Seed = seed
		}
	}
}

// WithRand injects a prepared RNG for obstacle placement, overriding any
// seed. The grid consumes the RNG during New only; callers may reuse it
// afterwards. A nil RNG is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}
