package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Infinity is the distance of a cell the search never reached.
const Infinity = math.MaxInt

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrOutOfBounds indicates that start or finish lies outside the grid.
	ErrOutOfBounds = errors.New("dijkstra: endpoint out of bounds")

	// ErrWallEndpoint indicates that start or finish is a wall cell.
	ErrWallEndpoint = errors.New("dijkstra: endpoint is a wall")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of Search.
//
// FullExpansion – keep expanding after the finish is finalized, until the
//
//	frontier is exhausted. Default false (stop at the finish).
//
// MaxDistance   – stop once the closest frontier cell is farther than this.
//
//	Must be ≥ 0. Default is Infinity (no cap).
type Options struct {
	FullExpansion bool
	MaxDistance   int
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithFullExpansion keeps the search running past the finish cell so every
// reachable cell gets a distance and a backlink.
func WithFullExpansion() Option {
	return func(o *Options) {
		o.FullExpansion = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not finalized.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct with early exit at the finish and
// no distance cap.
func DefaultOptions() Options {
	return Options{
		FullExpansion: false,
		MaxDistance:   Infinity,
	}
}

// Result is the outcome of one search run.
//
// Visited lists cells in the exact order they were finalized (popped from
// the frontier). Start is always first; Finish is last when Found is true
// and full expansion was not requested.
type Result struct {
	Visited []grid.Coord
	Found   bool

	g             *grid.Grid
	start, finish grid.Coord
	dist          []int
	prev          []int
}

// Start returns the coordinate the search started from.
func (r *Result) Start() grid.Coord { return r.start }

// Finish returns the target coordinate of the search.
func (r *Result) Finish() grid.Coord { return r.finish }

// Grid returns the snapshot that was searched.
func (r *Result) Grid() *grid.Grid { return r.g }

// Distance returns the shortest distance from start to c, or Infinity if c
// was never reached or lies outside the grid. Only finalized (visited) cells
// are guaranteed to carry their true shortest distance; frontier cells carry
// their best tentative distance.
func (r *Result) Distance(c grid.Coord) int {
	if !r.g.InBounds(c) {
		return Infinity
	}
	return r.dist[r.g.Index(c)]
}

// Previous returns the backlink of c: the neighbor it was reached from on the
// shortest known path. ok is false for the start cell and for unreached cells.
func (r *Result) Previous(c grid.Coord) (prev grid.Coord, ok bool) {
	if !r.g.InBounds(c) {
		return grid.Coord{}, false
	}
	p := r.prev[r.g.Index(c)]
	if p < 0 {
		return grid.Coord{}, false
	}
	return r.g.Coordinate(p), true
}
