package grid

import "fmt"

// Default board configuration.
const (
	DefaultHeight = 10
	DefaultWidth  = 10

	// MinSize and MaxSize bound both height and width unless WithBounds overrides them.
	MinSize = 5
	MaxSize = 20
)

var (
	// DefaultStart is the start cell of the default board.
	DefaultStart = Coord{Row: 2, Col: 2}
	// DefaultFinish is the finish cell of the default board.
	DefaultFinish = Coord{Row: 7, Col: 7}
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Coord addresses one cell by row and column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Cell is one grid position. It carries only board state; search state
// (distance, visited, backlink) lives with the search run.
type Cell struct {
	Coord
	IsStart  bool `json:"isStart"`
	IsFinish bool `json:"isFinish"`
	IsWall   bool `json:"isWall"`
}

// Bounds is the inclusive range allowed for both height and width.
type Bounds struct {
	Min, Max int
}

// Contains reports whether n lies in [Min, Max].
func (b Bounds) Contains(n int) bool {
	return n >= b.Min && n <= b.Max
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Bounds limits height and width.
	Bounds Bounds
}

// Option represents a functional option for configuring a Grid.
type Option func(*Options)

// WithConnectivity selects the neighbor model.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithBounds overrides the allowed height/width range.
// Panics if min < 1 or max < min.
func WithBounds(min, max int) Option {
	return func(o *Options) {
		if min < 1 || max < min {
			panic(fmt.Sprintf("grid: bad bounds [%d,%d]", min, max))
		}
		o.Bounds = Bounds{Min: min, Max: max}
	}
}

// DefaultOptions returns Options with Conn4 and bounds [MinSize, MaxSize].
func DefaultOptions() Options {
	return Options{
		Conn:   Conn4,
		Bounds: Bounds{Min: MinSize, Max: MaxSize},
	}
}

// Grid is an immutable snapshot of the board.
// cells holds Height×Width cells in row-major order.
type Grid struct {
	height, width int
	start, finish Coord
	conn          Connectivity
	bounds        Bounds
	cells         []Cell
	offsets       [][2]int
}
