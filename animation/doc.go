// Package animation turns a search run into a time-ordered list of visual
// events for a renderer.
//
// What:
//
//   - Schedule is pure: it maps the visitation order and the shortest path to
//     Events carrying a cell, a State tag and a virtual timestamp.
//   - Visited events come first, VisitStep apart. Path events start at
//     Timeline.VisitEnd, strictly after the last visited event, PathStep apart.
//   - Start and finish cells never get events; they keep their own look.
//   - Every event carries the run identifier it belongs to. Consumers drop
//     events whose run is no longer current (see package session).
//
// Driving time:
//
//   - Player advances a virtual clock and hands back the events that became
//     due, so tests and renderers control time explicitly.
//   - Play maps virtual units onto wall-clock time and emits events until the
//     timeline ends or its context is cancelled.
//
// Options:
//
//   - WithVisitStep(n): gap between visited events; default 10.
//   - WithPathStep(n):  gap between path events; default 50.
package animation
