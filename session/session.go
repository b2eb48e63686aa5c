package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/animation"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/path"
)

// Run is one completed search together with its replay schedule.
type Run struct {
	ID       uuid.UUID
	Grid     *grid.Grid // snapshot that was searched
	Result   *dijkstra.Result
	Path     []grid.Coord // empty when the finish is unreachable
	Timeline *animation.Timeline
}

// Reachable reports whether a path from start to finish exists.
func (r *Run) Reachable() bool { return len(r.Path) > 0 }

// Session holds the current grid and the in-flight run identifier.
type Session struct {
	mu      sync.Mutex
	cfg     Config
	g       *grid.Grid
	current uuid.UUID // uuid.Nil when no run is current
	busy    bool
	log     *logrus.Logger
	newID   func() uuid.UUID
}

// New builds a session and its first grid from cfg.
// Returns an error wrapping grid.ErrConfig if cfg describes an invalid board
// or non-positive animation steps.
func New(cfg Config, opts ...Option) (*Session, error) {
	if cfg.VisitStep <= 0 || cfg.PathStep <= 0 {
		return nil, fmt.Errorf("%w: animation steps %d/%d must be positive",
			grid.ErrConfig, cfg.VisitStep, cfg.PathStep)
	}
	s := &Session{cfg: cfg, newID: uuid.New}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logrus.New()
		s.log.SetLevel(logrus.WarnLevel)
	}

	g, err := grid.New(cfg.Height, cfg.Width, cfg.Start, cfg.Finish, grid.WithConnectivity(cfg.Conn))
	if err != nil {
		return nil, err
	}
	s.g = g
	return s, nil
}

// Grid returns the current snapshot.
func (s *Session) Grid() *grid.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g
}

// Config returns the configuration, with Height and Width tracking the
// latest successful Resize.
func (s *Session) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Current returns the identifier of the current run and whether its
// animation is still in flight. The identifier is uuid.Nil when there is none.
func (s *Session) Current() (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.busy
}

// Busy reports whether a run's animation is in flight.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// ToggleWall flips the wall at c. Edits aimed at the start or finish, or
// outside the grid, leave the grid unchanged and return the grid package's
// error (grid.ErrInvalidOperation, grid.ErrOutOfBounds).
func (s *Session) ToggleWall(c grid.Coord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, err := s.g.ToggleWall(c)
	if err != nil {
		s.log.WithFields(logrus.Fields{"cell": c.String()}).WithError(err).Debug("wall edit rejected")
		return err
	}
	s.g = g
	return nil
}

// SetWalls turns every listed cell into a wall in one edit, or none of them.
func (s *Session) SetWalls(cs ...grid.Coord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, err := s.g.SetWalls(cs...)
	if err != nil {
		s.log.WithFields(logrus.Fields{"cells": len(cs)}).WithError(err).Debug("wall edit rejected")
		return err
	}
	s.g = g
	return nil
}

// Reset discards all walls and any in-flight run, keeping the current size.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.rebuild(s.cfg.Height, s.cfg.Width); err != nil {
		// The current size was validated when it was set.
		panic(err)
	}
	s.invalidate("reset")
}

// Resize replaces the grid with a fresh height×width board and invalidates
// any in-flight run. The configured start and finish are clamped into the
// new bounds; if clamping lands them on one cell, the finish moves to the
// corner farthest from the start. On error the session is unchanged.
func (s *Session) Resize(height, width int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.rebuild(height, width); err != nil {
		s.log.WithFields(logrus.Fields{"height": height, "width": width}).WithError(err).Warn("resize rejected")
		return err
	}
	s.cfg.Height, s.cfg.Width = height, width
	s.invalidate("resize")
	return nil
}

// rebuild constructs a fresh grid; callers hold mu.
func (s *Session) rebuild(height, width int) error {
	opts := []grid.Option{grid.WithConnectivity(s.cfg.Conn)}
	start := grid.Clamp(s.cfg.Start, height, width)
	finish := grid.Clamp(s.cfg.Finish, height, width)
	if start == finish {
		finish = farthestCorner(start, height, width)
	}
	g, err := grid.New(height, width, start, finish, opts...)
	if err != nil {
		return err
	}
	s.g = g
	return nil
}

func farthestCorner(from grid.Coord, height, width int) grid.Coord {
	corners := []grid.Coord{
		{Row: 0, Col: 0},
		{Row: 0, Col: width - 1},
		{Row: height - 1, Col: 0},
		{Row: height - 1, Col: width - 1},
	}
	best, bestDist := corners[0], -1
	for _, c := range corners {
		if d := absInt(c.Row-from.Row) + absInt(c.Col-from.Col); d > bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// invalidate forgets the current run; callers hold mu.
func (s *Session) invalidate(reason string) {
	entry := s.log.WithFields(logrus.Fields{
		"reason": reason,
		"height": s.g.Height(),
		"width":  s.g.Width(),
	})
	if s.current != uuid.Nil {
		entry = entry.WithField("run", s.current.String())
	}
	s.current = uuid.Nil
	s.busy = false
	entry.Info("grid replaced")
}

// Run searches the current snapshot, reconstructs the path and schedules the
// replay under a fresh run identifier. It returns ErrBusy while the previous
// run is in flight.
func (s *Session) Run() (*Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		s.log.WithField("run", s.current.String()).Debug("run refused")
		return nil, ErrBusy
	}

	g := s.g
	res, err := dijkstra.Search(g, g.Start(), g.Finish())
	if err != nil {
		// The session never walls its endpoints, so this is a programming error.
		return nil, fmt.Errorf("session: search failed: %w", err)
	}
	p := path.Reconstruct(res, g.Start(), g.Finish())

	id := s.newID()
	tl := animation.Schedule(id, g.Start(), g.Finish(), res.Visited, p,
		animation.WithVisitStep(s.cfg.VisitStep),
		animation.WithPathStep(s.cfg.PathStep))

	s.current = id
	s.busy = true
	s.log.WithFields(logrus.Fields{
		"run":       id.String(),
		"visited":   len(res.Visited),
		"path":      len(p),
		"reachable": len(p) > 0,
		"end":       tl.End,
	}).Info("search run scheduled")

	return &Run{ID: id, Grid: g, Result: res, Path: p, Timeline: tl}, nil
}

// Complete marks run id as fully replayed, allowing the next Run.
// It reports false if id is not the in-flight run (already completed or invalidated).
func (s *Session) Complete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.busy || id != s.current {
		return false
	}
	s.busy = false
	s.log.WithField("run", id.String()).Debug("run completed")
	return true
}

// Accept reports whether e belongs to the current run. Renderers drop
// events for which it returns false.
func (s *Session) Accept(e animation.Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != uuid.Nil && e.Run == s.current
}
