// Package dijkstra implements uniform-cost search on a grid.Grid.
//
// Notes on implementation choices:
//
//   - Walls are filtered at relaxation time, so they never enter the heap.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries when popped.
//   - Heap order is (dist, index); because index is row-major, this fixes the
//     tie-break to grid scan order.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Search computes shortest distances from start over the open cells of g,
// recording the finalization order.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and finish must lie inside g (ErrOutOfBounds).
//  3. neither start nor finish may be a wall (ErrWallEndpoint).
//
// Algorithm:
//  1. dist[start] = 0, every other cell Infinity.
//  2. Pop the frontier cell with minimum (dist, index); skip stale entries.
//  3. Mark it visited and append it to Visited.
//  4. If it is the finish (and FullExpansion is off), stop.
//  5. Relax each in-bounds, open, unvisited neighbor with weight 1.
//
// Complexity:
//
//   - Time:  O(V log V)
//   - Space: O(V)
func Search(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.InBounds(finish) {
		return nil, fmt.Errorf("%w: finish %v", ErrOutOfBounds, finish)
	}
	if g.IsWall(start) {
		return nil, fmt.Errorf("%w: start %v", ErrWallEndpoint, start)
	}
	if g.IsWall(finish) {
		return nil, fmt.Errorf("%w: finish %v", ErrWallEndpoint, finish)
	}

	// 3) Prepare per-run state keyed by cell index.
	n := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		finish:  g.Index(finish),
		dist:    make([]int, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(cellPQ, 0, n),
	}

	// 4) Initialize and run.
	r.init(g.Index(start))
	r.process()

	return &Result{
		Visited: r.order,
		Found:   r.found,
		g:       g,
		start:   start,
		finish:  finish,
		dist:    r.dist,
		prev:    r.prev,
	}, nil
}

// runner holds the mutable state for a single search run.
type runner struct {
	g       *grid.Grid   // searched snapshot; read-only
	options Options      // early exit and distance cap
	finish  int          // index of the finish cell
	dist    []int        // index → best distance from start
	prev    []int        // index → predecessor index, -1 if none
	visited []bool       // index → distance finalized
	pq      cellPQ       // min-heap of (dist, index)
	order   []grid.Coord // finalization order
	found   bool         // finish was finalized
}

// init sets every distance to Infinity and every backlink to -1, then seeds
// the heap with the start cell at distance 0.
func (r *runner) init(start int) {
	for i := range r.dist {
		r.dist[i] = Infinity
		r.prev[i] = -1
	}
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, cellItem{idx: start, dist: 0})
}

// process is the core loop. It terminates when the heap is empty (every
// reachable cell finalized, or the rest is Infinity), when the frontier
// minimum exceeds MaxDistance, or when the finish is finalized.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(cellItem)
		u := item.idx

		// Skip stale heap entries.
		if r.visited[u] || item.dist != r.dist[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.visited[u] = true
		r.order = append(r.order, r.g.Coordinate(u))

		if u == r.finish {
			r.found = true
			if !r.options.FullExpansion {
				return
			}
		}

		r.relax(u)
	}
}

// relax offers dist[u]+1 to every in-bounds, open, unvisited neighbor of u.
// Only strictly shorter candidates update dist/prev, so the first finalized
// predecessor in scan order keeps the backlink on ties.
func (r *runner) relax(u int) {
	cu := r.g.Coordinate(u)
	nd := r.dist[u] + 1
	for _, d := range r.g.NeighborOffsets() {
		cv := grid.Coord{Row: cu.Row + d[0], Col: cu.Col + d[1]}
		if !r.g.InBounds(cv) {
			continue
		}
		v := r.g.Index(cv)
		if r.visited[v] || r.g.At(v).IsWall {
			continue
		}
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, cellItem{idx: v, dist: nd})
	}
}

// cellItem is a frontier entry: a cell index and its tentative distance.
type cellItem struct {
	idx  int
	dist int
}

// cellPQ is a min-heap of cellItem ordered by dist, then idx.
type cellPQ []cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less orders by distance; equal distances fall back to row-major index.
func (pq cellPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *cellPQ) Push(x any) { *pq = append(*pq, x.(cellItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *cellPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
