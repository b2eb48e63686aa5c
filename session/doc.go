// Package session is the glue between an interactive grid editor, the search
// engine and a renderer. It owns the current grid snapshot and at most one
// in-flight run.
//
// Guarantees:
//
//   - Run refuses to start while a previous run's animation is still in
//     flight (ErrBusy) until Complete is called for it.
//   - Reset and Resize replace the grid and invalidate the in-flight run;
//     Accept then rejects every event tagged with the old run identifier,
//     so stale visuals never land on the new grid.
//   - Resize clamps the configured start and finish into the new bounds
//     before building the grid.
//
// A Session is safe for concurrent use.
package session
