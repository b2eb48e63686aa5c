// Package gridpath is an interactive grid pathfinding engine: edit walls on
// a small board, run Dijkstra from start to finish, and replay the search
// cell by cell before the shortest path is traced.
//
// 🚀 What is gridpath?
//
//	A small, dependency-light engine that brings together:
//		• Grid model: immutable board snapshots with copy-on-write wall edits
//		• Search: uniform-cost Dijkstra with a deterministic row-major tie-break
//		• Path reconstruction: walk backlinks from finish to start
//		• Animation: a virtual-time event list, cancellable per run
//		• Session: the board, reset/resize and the in-flight run under one lock
//
// ✨ Why choose gridpath?
//
//   - Deterministic: equal boards always produce identical replays
//   - Snapshot-safe: searches never write to the grid they read
//   - One timeline drives both the terminal and the websocket front ends
//
// Everything is organized under these subpackages:
//
//	grid/             Coord, Cell, Grid; neighbors, regions, ASCII parse/print
//	dijkstra/         Search and its Result (visit order, distances, backlinks)
//	path/             Reconstruct a start→finish path from backlinks
//	animation/        Schedule, Timeline, Player and Play
//	session/          the stateful board behind both front ends
//	cmd/pathfinder/   terminal front end (tcell)
//	cmd/pathfinderd/  websocket server
//
// Quick ASCII example (S start, F finish, # wall):
//
//	S.#..
//	..#..
//	....F
//
// searches around the wall in 6 steps.
//
//	go run github.com/katalvlaran/gridpath/cmd/pathfinder
package gridpath
