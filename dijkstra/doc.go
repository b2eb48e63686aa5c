// Package dijkstra runs uniform-cost shortest-path search (Dijkstra's
// algorithm with unit edge weights) over a grid.Grid, recording the order in
// which cells are finalized so the search can be replayed.
//
// Overview:
//
//   - Every step between a cell and an open neighbor costs 1; walls are never
//     entered, never queued and never appear in the visitation order.
//   - The frontier is a min-heap keyed by (distance, row-major index), so ties
//     on distance always break toward the lower row, then the lower column.
//     Two searches over equal grids produce identical visitation orders.
//   - Search stops as soon as the finish cell is finalized, unless
//     WithFullExpansion is given.
//
// Search state:
//
//   - All per-run state (distance, visited flag, backlink) lives in slices keyed
//     by cell index inside the Result. The Grid is never written to, so a grid
//     can be searched repeatedly without a reset, and concurrent readers of the
//     same snapshot are safe.
//
// Performance and complexity:
//
//   - Time:  O(V log V) with V = H×W; each cell has at most 4 (or 8) edges.
//   - Space: O(V) for distance, backlink and visited slices plus the heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:        the grid pointer is nil.
//   - ErrOutOfBounds:    start or finish lies outside the grid.
//   - ErrWallEndpoint:   start or finish is a wall.
//   - ErrBadMaxDistance: WithMaxDistance received a negative value (panics).
//
// An unreachable finish is not an error: Result.Found is false,
// Result.Distance(finish) is Infinity and Result.Previous(finish) reports false.
//
// API reference:
//
//	func Search(
//	    g *grid.Grid,
//	    start, finish grid.Coord,
//	    opts ...Option,
//	) (*Result, error)
//
// Thread safety:
//
//   - Search allocates its own state and only reads g; any number of searches
//     may run concurrently over the same snapshot.
package dijkstra
