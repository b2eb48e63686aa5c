package animation

import (
	"context"
	"time"
)

// Player replays a Timeline against a virtual clock that only moves when
// told to. The clock starts at 0.
type Player struct {
	tl   *Timeline
	now  int64
	next int
}

// NewPlayer returns a Player positioned at time 0 with nothing emitted.
func NewPlayer(tl *Timeline) *Player {
	return &Player{tl: tl}
}

// Now returns the current virtual time.
func (p *Player) Now() int64 { return p.now }

// Done reports whether every event has been emitted.
func (p *Player) Done() bool { return p.next >= len(p.tl.Events) }

// Remaining returns the number of events not yet emitted.
func (p *Player) Remaining() int { return len(p.tl.Events) - p.next }

// Advance moves the clock forward by dt (negative dt counts as 0) and
// returns the events that became due, including those at exactly the new time.
func (p *Player) Advance(dt int64) []Event {
	if dt < 0 {
		dt = 0
	}
	return p.Seek(p.now + dt)
}

// Seek moves the clock to t and returns the events that became due.
// The clock never runs backward; seeking to an earlier time returns nil.
func (p *Player) Seek(t int64) []Event {
	if t > p.now {
		p.now = t
	}
	start := p.next
	for p.next < len(p.tl.Events) && p.tl.Events[p.next].At <= p.now {
		p.next++
	}
	if start == p.next {
		return nil
	}
	return p.tl.Events[start:p.next]
}

// Play emits the timeline's events in order, mapping one virtual time unit
// to unit of wall-clock time measured from the call. A non-positive unit
// emits everything immediately. Play returns ctx.Err() if ctx is cancelled
// before the last event, and nil otherwise.
func Play(ctx context.Context, tl *Timeline, unit time.Duration, emit func(Event)) error {
	begin := time.Now()
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for _, e := range tl.Events {
		wait := time.Duration(0)
		if unit > 0 {
			wait = time.Until(begin.Add(time.Duration(e.At) * unit))
		}
		if wait > 0 {
			timer.Reset(wait)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		emit(e)
	}
	return nil
}
