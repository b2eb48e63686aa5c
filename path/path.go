package path

import "github.com/katalvlaran/gridpath/grid"

// Backlinks exposes the predecessor of each reached cell.
type Backlinks interface {
	// Previous returns the cell c was reached from; ok is false for the
	// search origin and for cells the search never reached.
	Previous(c grid.Coord) (prev grid.Coord, ok bool)
}

// Reconstruct returns the cells from start to finish inclusive by following
// links backward from finish.
//
// It returns [start] when start == finish, and nil when finish was never
// reached or the walk does not end at start (a cycle or a foreign origin in
// links).
func Reconstruct(links Backlinks, start, finish grid.Coord) []grid.Coord {
	if start == finish {
		return []grid.Coord{start}
	}
	if _, ok := links.Previous(finish); !ok {
		return nil
	}

	// build reversed path
	seen := map[grid.Coord]bool{finish: true}
	p := []grid.Coord{finish}
	for cur := finish; cur != start; {
		prev, ok := links.Previous(cur)
		if !ok || seen[prev] {
			return nil
		}
		seen[prev] = true
		p = append(p, prev)
		cur = prev
	}

	// reverse to get start → finish
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// Edges returns the number of steps in p: len(p)-1, or 0 for an empty path.
func Edges(p []grid.Coord) int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}
