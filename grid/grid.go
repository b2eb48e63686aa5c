package grid

import "fmt"

// New constructs a height×width grid with every cell open and the given
// start and finish cells marked.
// Returns an error wrapping ErrConfig if height or width falls outside the
// configured bounds, if start == finish, or if either lies out of bounds.
// Algorithmic complexity: O(H×W) time and memory.
func New(height, width int, start, finish Coord, opts ...Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.Bounds.Contains(height) || !cfg.Bounds.Contains(width) {
		return nil, fmt.Errorf("%w: size %dx%d outside [%d,%d]",
			ErrConfig, height, width, cfg.Bounds.Min, cfg.Bounds.Max)
	}
	if !inBounds(start, height, width) {
		return nil, fmt.Errorf("%w: start %v outside %dx%d", ErrConfig, start, height, width)
	}
	if !inBounds(finish, height, width) {
		return nil, fmt.Errorf("%w: finish %v outside %dx%d", ErrConfig, finish, height, width)
	}
	if start == finish {
		return nil, fmt.Errorf("%w: start and finish share cell %v", ErrConfig, start)
	}

	cells := make([]Cell, height*width)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			at := Coord{Row: r, Col: c}
			cells[r*width+c] = Cell{
				Coord:    at,
				IsStart:  at == start,
				IsFinish: at == finish,
			}
		}
	}

	// Precompute neighbor offsets (dRow, dCol) based on connectivity.
	var offsets [][2]int
	if cfg.Conn == Conn8 {
		offsets = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	} else {
		offsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	}

	return &Grid{
		height:  height,
		width:   width,
		start:   start,
		finish:  finish,
		conn:    cfg.Conn,
		bounds:  cfg.Bounds,
		cells:   cells,
		offsets: offsets,
	}, nil
}

// Default returns the 10×10 board with start (2,2) and finish (7,7).
func Default() *Grid {
	g, err := New(DefaultHeight, DefaultWidth, DefaultStart, DefaultFinish)
	if err != nil {
		panic(err) // constants are valid
	}
	return g
}

func inBounds(c Coord, height, width int) bool {
	return c.Row >= 0 && c.Row < height && c.Col >= 0 && c.Col < width
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Len returns the number of cells, Height×Width.
func (g *Grid) Len() int { return len(g.cells) }

// Start returns the start cell coordinate.
func (g *Grid) Start() Coord { return g.start }

// Finish returns the finish cell coordinate.
func (g *Grid) Finish() Coord { return g.finish }

// Conn returns the neighbor model.
func (g *Grid) Conn() Connectivity { return g.conn }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return inBounds(c, g.height, g.width)
}

// Index maps c to its row-major index: Row*Width + Col.
// The result is meaningless for out-of-bounds coordinates.
func (g *Grid) Index(c Coord) int {
	return c.Row*g.width + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.width, Col: idx % g.width}
}

// Cell returns the cell at c and whether c is in bounds.
func (g *Grid) Cell(c Coord) (Cell, bool) {
	if !g.InBounds(c) {
		return Cell{}, false
	}
	return g.cells[g.Index(c)], true
}

// At returns the cell at a row-major index. It panics if idx is out of range.
func (g *Grid) At(idx int) Cell {
	return g.cells[idx]
}

// IsWall reports whether c is an in-bounds wall.
func (g *Grid) IsWall(c Coord) bool {
	cell, ok := g.Cell(c)
	return ok && cell.IsWall
}

// Rows returns a copy of the cells as a slice of rows, for renderers.
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.height)
	for r := range rows {
		rows[r] = make([]Cell, g.width)
		copy(rows[r], g.cells[r*g.width:(r+1)*g.width])
	}
	return rows
}

// Walls returns the wall coordinates in row-major order.
func (g *Grid) Walls() []Coord {
	var walls []Coord
	for _, cell := range g.cells {
		if cell.IsWall {
			walls = append(walls, cell.Coord)
		}
	}
	return walls
}

// NeighborOffsets returns the precomputed (dRow, dCol) offsets for the grid's connectivity.
func (g *Grid) NeighborOffsets() [][2]int {
	return g.offsets
}

// Neighbors returns the in-bounds cells adjacent to c, walls included,
// in N, E, S, W order (diagonals interleaved under Conn8).
// Returns nil when c itself is out of bounds.
func (g *Grid) Neighbors(c Coord) []Cell {
	if !g.InBounds(c) {
		return nil
	}
	out := make([]Cell, 0, len(g.offsets))
	for _, d := range g.offsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if !g.InBounds(n) {
			continue
		}
		out = append(out, g.cells[g.Index(n)])
	}
	return out
}

// ToggleWall returns a new snapshot with the wall at c flipped.
// Editing the start or finish returns g unchanged with ErrInvalidOperation;
// an out-of-bounds c returns g unchanged with ErrOutOfBounds.
// Neither error is fatal: g stays valid either way.
func (g *Grid) ToggleWall(c Coord) (*Grid, error) {
	if err := g.checkEditable(c); err != nil {
		return g, err
	}
	next := g.clone()
	idx := g.Index(c)
	next.cells[idx].IsWall = !next.cells[idx].IsWall
	return next, nil
}

// SetWalls returns a new snapshot with every listed cell turned into a wall.
// The edit is all-or-nothing: if any coordinate is rejected, g is returned
// unchanged together with the first error.
func (g *Grid) SetWalls(cs ...Coord) (*Grid, error) {
	for _, c := range cs {
		if err := g.checkEditable(c); err != nil {
			return g, err
		}
	}
	next := g.clone()
	for _, c := range cs {
		next.cells[g.Index(c)].IsWall = true
	}
	return next, nil
}

func (g *Grid) checkEditable(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v outside %dx%d", ErrOutOfBounds, c, g.height, g.width)
	}
	if c == g.start || c == g.finish {
		return fmt.Errorf("%w: %v", ErrInvalidOperation, c)
	}
	return nil
}

// clone copies the cell arena; offsets are shared since they never change.
func (g *Grid) clone() *Grid {
	next := *g
	next.cells = make([]Cell, len(g.cells))
	copy(next.cells, g.cells)
	return &next
}

// Clamp moves c into [0,height)×[0,width). Collaborators use it to keep
// configured start/finish cells valid before resizing.
func Clamp(c Coord, height, width int) Coord {
	return Coord{Row: clampInt(c.Row, 0, height-1), Col: clampInt(c.Col, 0, width-1)}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
