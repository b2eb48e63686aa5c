package animation

import (
	"sort"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/grid"
)

// Schedule assigns virtual timestamps to a run's visitation order and path.
//
//   - visited[i] is due at i×VisitStep.
//   - The path phase begins at VisitEnd = len(visited)×VisitStep;
//     p[j] is due at VisitEnd + j×PathStep.
//   - start and finish are skipped in both sequences, but keep their slot so
//     the spacing of the other cells does not shift.
//
// Schedule performs no rendering and keeps no state.
// Complexity: O(len(visited) + len(p)).
func Schedule(run uuid.UUID, start, finish grid.Coord, visited, p []grid.Coord, opts ...Option) *Timeline {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	events := make([]Event, 0, len(visited)+len(p))
	for i, c := range visited {
		if c == start || c == finish {
			continue
		}
		events = append(events, Event{Run: run, Cell: c, State: Visited, At: int64(i) * cfg.VisitStep})
	}
	split := len(events)

	visitEnd := int64(len(visited)) * cfg.VisitStep
	end := visitEnd
	for j, c := range p {
		if c == start || c == finish {
			continue
		}
		at := visitEnd + int64(j)*cfg.PathStep
		events = append(events, Event{Run: run, Cell: c, State: OnShortestPath, At: at})
		end = at
	}

	return &Timeline{
		Run:      run,
		Events:   events,
		VisitEnd: visitEnd,
		End:      end,
		split:    split,
	}
}

// Due returns the events with from < At ≤ to, in order.
func (tl *Timeline) Due(from, to int64) []Event {
	lo := sort.Search(len(tl.Events), func(i int) bool { return tl.Events[i].At > from })
	hi := sort.Search(len(tl.Events), func(i int) bool { return tl.Events[i].At > to })
	if lo >= hi {
		return nil
	}
	return tl.Events[lo:hi]
}
