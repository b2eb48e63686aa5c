package session

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/animation"
	"github.com/katalvlaran/gridpath/grid"
)

// Config describes the board a session builds on creation, reset and resize.
type Config struct {
	Height, Width int
	Start, Finish grid.Coord
	Conn          grid.Connectivity
	// VisitStep and PathStep are the animation spacing in virtual time units.
	VisitStep, PathStep int64
}

// DefaultConfig returns the 10×10 board with start (2,2), finish (7,7),
// 4-connectivity and the default animation spacing.
func DefaultConfig() Config {
	return Config{
		Height:    grid.DefaultHeight,
		Width:     grid.DefaultWidth,
		Start:     grid.DefaultStart,
		Finish:    grid.DefaultFinish,
		Conn:      grid.Conn4,
		VisitStep: animation.DefaultVisitStep,
		PathStep:  animation.DefaultPathStep,
	}
}

// Option represents a functional option for configuring a Session.
type Option func(*Session)

// WithLogger sets the logger; the default discards output below Warn.
func WithLogger(l *logrus.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// WithIDSource replaces uuid.New as the source of run identifiers.
func WithIDSource(next func() uuid.UUID) Option {
	return func(s *Session) {
		s.newID = next
	}
}
