// Package grid models a rectangular board of cells as an immutable graph
// for shortest-path search.
//
// What:
//
//   - Grid owns a row-major arena of Cells; a cell's index is row*Width + col.
//   - Exactly one Start and one Finish cell, distinct and never walls.
//   - Walls are cells excluded from traversal.
//   - Every edit (ToggleWall, SetWalls) returns a new snapshot; earlier
//     snapshots stay valid, so a renderer never observes a torn state.
//
// Why:
//
//   - Search engines keep their own distance/backlink state keyed by cell index,
//     so a Grid can be searched any number of times without a reset.
//   - Cheap copy-on-write snapshots (boards are at most MaxSize×MaxSize).
//
// Complexity:
//
//   - New, ToggleWall, SetWalls: O(H×W) time and memory (one arena copy).
//   - Neighbors, Cell, InBounds: O(1).
//   - Region:                    O(H×W×d), d = 4 or 8.
//
// Options:
//
//   - WithConnectivity(Conn4|Conn8): neighbor model; Conn4 is the default.
//   - WithBounds(min, max): allowed height/width range; default [MinSize, MaxSize].
//
// Errors:
//
//   - ErrConfig: bad dimensions or start/finish placement; the grid is not built.
//   - ErrInvalidOperation: wall edit aimed at start or finish; the edit is a no-op.
//   - ErrOutOfBounds: coordinate outside the grid; the edit is a no-op.
package grid
