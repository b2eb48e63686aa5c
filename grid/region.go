package grid

// Region returns every non-wall cell connected to c under the grid's
// connectivity, in BFS discovery order starting with c itself.
// Returns nil when c is out of bounds or is a wall.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for seen flags and output.
func (g *Grid) Region(c Coord) []Coord {
	if !g.InBounds(c) || g.cells[g.Index(c)].IsWall {
		return nil
	}
	seen := make([]bool, len(g.cells))
	i0 := g.Index(c)
	seen[i0] = true
	queue := []int{i0}

	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		for _, d := range g.offsets {
			v := Coord{Row: u.Row + d[0], Col: u.Col + d[1]}
			if !g.InBounds(v) {
				continue
			}
			vi := g.Index(v)
			if seen[vi] || g.cells[vi].IsWall {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}

	region := make([]Coord, len(queue))
	for i, idx := range queue {
		region[i] = g.Coordinate(idx)
	}
	return region
}

// Connected reports whether a and b lie in the same open region.
func (g *Grid) Connected(a, b Coord) bool {
	if !g.InBounds(b) {
		return false
	}
	for _, c := range g.Region(a) {
		if c == b {
			return true
		}
	}
	return false
}
