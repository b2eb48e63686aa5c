package animation

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/grid"
)

// Default spacing, in virtual time units.
const (
	DefaultVisitStep int64 = 10
	DefaultPathStep  int64 = 50
)

// ErrBadStep indicates a non-positive step passed to WithVisitStep or WithPathStep.
var ErrBadStep = errors.New("animation: step must be positive")

// ErrUnknownState indicates an unrecognised state tag while decoding.
var ErrUnknownState = errors.New("animation: unknown state")

// State is the semantic tag of an event.
type State int

const (
	// Visited marks a cell finalized by the search.
	Visited State = iota
	// OnShortestPath marks a cell on the reconstructed path.
	OnShortestPath
)

// String returns "visited" or "on-shortest-path".
func (s State) String() string {
	switch s {
	case Visited:
		return "visited"
	case OnShortestPath:
		return "on-shortest-path"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	if s != Visited && s != OnShortestPath {
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(b []byte) error {
	switch string(b) {
	case "visited":
		*s = Visited
	case "on-shortest-path":
		*s = OnShortestPath
	default:
		return fmt.Errorf("%w: %q", ErrUnknownState, b)
	}
	return nil
}

// Event is one timed visual change.
type Event struct {
	Run   uuid.UUID  `json:"run"`
	Cell  grid.Coord `json:"cell"`
	State State      `json:"state"`
	At    int64      `json:"at"`
}

// Timeline is the scheduled output of one run. Events are sorted by At;
// every Visited event precedes every OnShortestPath event.
type Timeline struct {
	Run    uuid.UUID
	Events []Event
	// VisitEnd is the time the path phase begins; it is later than every
	// Visited event.
	VisitEnd int64
	// End is the time of the last event, or VisitEnd when there is none after it.
	End int64

	split int // index of the first path event in Events
}

// Visited returns the visited-cell events.
func (tl *Timeline) Visited() []Event { return tl.Events[:tl.split] }

// Path returns the shortest-path events.
func (tl *Timeline) Path() []Event { return tl.Events[tl.split:] }

// Options configures Schedule.
type Options struct {
	VisitStep int64
	PathStep  int64
}

// Option represents a functional option for configuring Schedule.
type Option func(*Options)

// WithVisitStep sets the gap between consecutive visited events.
// Panics with ErrBadStep if step ≤ 0.
func WithVisitStep(step int64) Option {
	return func(o *Options) {
		if step <= 0 {
			panic(ErrBadStep.Error())
		}
		o.VisitStep = step
	}
}

// WithPathStep sets the gap between consecutive path events.
// Panics with ErrBadStep if step ≤ 0.
func WithPathStep(step int64) Option {
	return func(o *Options) {
		if step <= 0 {
			panic(ErrBadStep.Error())
		}
		o.PathStep = step
	}
}

// DefaultOptions returns VisitStep 10 and PathStep 50.
func DefaultOptions() Options {
	return Options{VisitStep: DefaultVisitStep, PathStep: DefaultPathStep}
}
