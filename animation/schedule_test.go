package animation_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/animation"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/path"
)

var runID = uuid.MustParse("6f1c2d9e-0000-4000-8000-000000000001")

func c(r, col int) grid.Coord { return grid.Coord{Row: r, Col: col} }

// defaultTimeline schedules the 10×10, (2,2)→(7,7), no-walls scenario.
func defaultTimeline(t *testing.T) (*animation.Timeline, *dijkstra.Result, []grid.Coord) {
	t.Helper()
	g := grid.Default()
	res, err := dijkstra.Search(g, g.Start(), g.Finish())
	require.NoError(t, err)
	p := path.Reconstruct(res, g.Start(), g.Finish())
	return animation.Schedule(runID, g.Start(), g.Finish(), res.Visited, p), res, p
}

func TestSchedule_DefaultScenario(t *testing.T) {
	tl, res, p := defaultTimeline(t)

	require.Equal(t, 10, path.Edges(p))
	visited := tl.Visited()
	onPath := tl.Path()
	require.Len(t, visited, len(res.Visited)-2, "start and finish get no visited event")
	require.Len(t, onPath, 9, "path cells between start and finish")

	lastVisited := visited[len(visited)-1].At
	assert.Greater(t, onPath[0].At, lastVisited, "first path event after last visited event")
	assert.Greater(t, tl.VisitEnd, lastVisited)
	assert.Equal(t, onPath[len(onPath)-1].At, tl.End)

	for _, e := range tl.Events {
		assert.Equal(t, runID, e.Run)
		assert.NotEqual(t, grid.DefaultStart, e.Cell)
		assert.NotEqual(t, grid.DefaultFinish, e.Cell)
	}
	for i := 1; i < len(tl.Events); i++ {
		assert.LessOrEqual(t, tl.Events[i-1].At, tl.Events[i].At, "events sorted by time")
	}
}

func TestSchedule_Spacing(t *testing.T) {
	start, finish := c(0, 0), c(0, 3)
	visited := []grid.Coord{start, c(0, 1), c(1, 0), c(0, 2), finish}
	p := []grid.Coord{start, c(0, 1), c(0, 2), finish}

	tl := animation.Schedule(runID, start, finish, visited, p)
	want := []animation.Event{
		{Run: runID, Cell: c(0, 1), State: animation.Visited, At: 10},
		{Run: runID, Cell: c(1, 0), State: animation.Visited, At: 20},
		{Run: runID, Cell: c(0, 2), State: animation.Visited, At: 30},
		{Run: runID, Cell: c(0, 1), State: animation.OnShortestPath, At: 100},
		{Run: runID, Cell: c(0, 2), State: animation.OnShortestPath, At: 150},
	}
	assert.Equal(t, want, tl.Events)
	assert.Equal(t, int64(50), tl.VisitEnd)
	assert.Equal(t, int64(150), tl.End)
}

func TestSchedule_CustomSteps(t *testing.T) {
	start, finish := c(0, 0), c(0, 2)
	tl := animation.Schedule(runID, start, finish,
		[]grid.Coord{start, c(0, 1), finish},
		[]grid.Coord{start, c(0, 1), finish},
		animation.WithVisitStep(3), animation.WithPathStep(7))
	require.Len(t, tl.Events, 2)
	assert.Equal(t, int64(3), tl.Events[0].At)
	assert.Equal(t, int64(9+7), tl.Events[1].At)

	assert.PanicsWithValue(t, animation.ErrBadStep.Error(), func() { animation.WithVisitStep(0) })
	assert.PanicsWithValue(t, animation.ErrBadStep.Error(), func() { animation.WithPathStep(-5) })
}

func TestSchedule_NoPath(t *testing.T) {
	start, finish := c(0, 0), c(4, 4)
	visited := []grid.Coord{start, c(0, 1), c(1, 0)}
	tl := animation.Schedule(runID, start, finish, visited, nil)
	assert.Len(t, tl.Visited(), 2)
	assert.Empty(t, tl.Path())
	assert.Equal(t, tl.VisitEnd, tl.End)
}

func TestTimeline_Due(t *testing.T) {
	tl, _, _ := defaultTimeline(t)
	all := tl.Due(-1, tl.End)
	assert.Equal(t, tl.Events, all)
	assert.Nil(t, tl.Due(tl.End, tl.End+1000))

	first := tl.Due(0, 10)
	require.Len(t, first, 1)
	assert.Equal(t, int64(10), first[0].At)
}

func TestState_Text(t *testing.T) {
	assert.Equal(t, "visited", animation.Visited.String())
	assert.Equal(t, "on-shortest-path", animation.OnShortestPath.String())

	b, err := json.Marshal(animation.Event{Run: runID, Cell: c(1, 2), State: animation.OnShortestPath, At: 60})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"run":"6f1c2d9e-0000-4000-8000-000000000001","cell":{"row":1,"col":2},"state":"on-shortest-path","at":60}`,
		string(b))

	var back animation.Event
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, animation.OnShortestPath, back.State)

	var s animation.State
	require.ErrorIs(t, s.UnmarshalText([]byte("wall")), animation.ErrUnknownState)
	_, err = animation.State(9).MarshalText()
	require.ErrorIs(t, err, animation.ErrUnknownState)
}

//----------------------------------------------------------------------------//
// Player and Play
//----------------------------------------------------------------------------//

func TestPlayer_VirtualClock(t *testing.T) {
	tl, _, _ := defaultTimeline(t)
	pl := animation.NewPlayer(tl)

	assert.Empty(t, pl.Advance(5))
	got := pl.Advance(5)
	require.Len(t, got, 1)
	assert.Equal(t, int64(10), pl.Now())

	assert.Nil(t, pl.Seek(0), "clock never runs backward")
	assert.Equal(t, int64(10), pl.Now())

	rest := pl.Seek(tl.VisitEnd)
	for _, e := range rest {
		assert.Equal(t, animation.Visited, e.State)
	}
	assert.Equal(t, len(tl.Path()), pl.Remaining())
	assert.False(t, pl.Done())

	pl.Advance(tl.End)
	assert.True(t, pl.Done())
	assert.Nil(t, pl.Advance(-3))
}

func TestPlay_Immediate(t *testing.T) {
	tl, _, _ := defaultTimeline(t)
	var got []animation.Event
	err := animation.Play(context.Background(), tl, 0, func(e animation.Event) { got = append(got, e) })
	require.NoError(t, err)
	assert.Equal(t, tl.Events, got)
}

func TestPlay_RealTimeOrder(t *testing.T) {
	tl, _, _ := defaultTimeline(t)
	var got []animation.Event
	err := animation.Play(context.Background(), tl, time.Microsecond, func(e animation.Event) { got = append(got, e) })
	require.NoError(t, err)
	assert.Equal(t, tl.Events, got)
}

func TestPlay_Cancelled(t *testing.T) {
	tl, _, _ := defaultTimeline(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	emitted := 0
	err := animation.Play(ctx, tl, time.Second, func(animation.Event) { emitted++ })
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, emitted)
}
