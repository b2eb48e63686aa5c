package session_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/animation"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/session"
)

// sequentialIDs returns deterministic run identifiers 1, 2, 3, ...
func sequentialIDs() func() uuid.UUID {
	n := 0
	return func() uuid.UUID {
		n++
		return uuid.MustParse(fmt.Sprintf("00000000-0000-4000-8000-%012d", n))
	}
}

func newSession(t *testing.T, cfg session.Config) (*session.Session, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	s, err := session.New(cfg, session.WithLogger(logger), session.WithIDSource(sequentialIDs()))
	require.NoError(t, err)
	return s, hook
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := session.DefaultConfig()
	cfg.Height = 3
	_, err := session.New(cfg)
	require.ErrorIs(t, err, grid.ErrConfig)

	cfg = session.DefaultConfig()
	cfg.PathStep = 0
	_, err = session.New(cfg)
	require.ErrorIs(t, err, grid.ErrConfig)
}

func TestRun_DefaultScenario(t *testing.T) {
	s, hook := newSession(t, session.DefaultConfig())

	run, err := s.Run()
	require.NoError(t, err)
	assert.True(t, run.Reachable())
	assert.Len(t, run.Path, 11)
	assert.Equal(t, run.ID, run.Timeline.Run)
	assert.Greater(t, run.Timeline.Path()[0].At, run.Timeline.Visited()[len(run.Timeline.Visited())-1].At)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "search run scheduled", last.Message)
	assert.Equal(t, run.ID.String(), last.Data["run"])
	assert.Equal(t, true, last.Data["reachable"])
}

func TestRun_Busy(t *testing.T) {
	s, _ := newSession(t, session.DefaultConfig())

	first, err := s.Run()
	require.NoError(t, err)
	assert.True(t, s.Busy())

	_, err = s.Run()
	require.ErrorIs(t, err, session.ErrBusy)

	assert.False(t, s.Complete(uuid.New()), "foreign id does not end the run")
	assert.True(t, s.Complete(first.ID))
	assert.False(t, s.Complete(first.ID), "already completed")

	second, err := s.Run()
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRun_Unreachable(t *testing.T) {
	s, _ := newSession(t, session.DefaultConfig())
	var row []grid.Coord
	for c := 0; c < 10; c++ {
		row = append(row, grid.Coord{Row: 5, Col: c})
	}
	require.NoError(t, s.SetWalls(row...))

	run, err := s.Run()
	require.NoError(t, err)
	assert.False(t, run.Reachable())
	assert.Empty(t, run.Timeline.Path())
	assert.Len(t, run.Result.Visited, 50)
}

func TestRun_RepeatableWithoutReset(t *testing.T) {
	s, _ := newSession(t, session.DefaultConfig())
	require.NoError(t, s.ToggleWall(grid.Coord{Row: 4, Col: 4}))

	a, err := s.Run()
	require.NoError(t, err)
	require.True(t, s.Complete(a.ID))
	b, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, a.Result.Visited, b.Result.Visited)
	assert.Equal(t, a.Path, b.Path)
}

func TestToggleWall_Rejected(t *testing.T) {
	s, hook := newSession(t, session.DefaultConfig())
	before := s.Grid()

	err := s.ToggleWall(grid.DefaultStart)
	require.ErrorIs(t, err, grid.ErrInvalidOperation)
	assert.Same(t, before, s.Grid())
	assert.Equal(t, "wall edit rejected", hook.LastEntry().Message)

	require.ErrorIs(t, s.ToggleWall(grid.Coord{Row: 10, Col: 0}), grid.ErrOutOfBounds)
	require.ErrorIs(t, s.SetWalls(grid.Coord{Row: 1, Col: 1}, grid.DefaultFinish), grid.ErrInvalidOperation)
	assert.Same(t, before, s.Grid())
}

func TestReset_InvalidatesRun(t *testing.T) {
	s, _ := newSession(t, session.DefaultConfig())
	require.NoError(t, s.ToggleWall(grid.Coord{Row: 0, Col: 0}))

	run, err := s.Run()
	require.NoError(t, err)
	pending := run.Timeline.Events[0]
	assert.True(t, s.Accept(pending))

	s.Reset()
	assert.False(t, s.Accept(pending), "stale event after reset")
	assert.False(t, s.Busy())
	assert.Empty(t, s.Grid().Walls())
	assert.False(t, s.Complete(run.ID))

	id, busy := s.Current()
	assert.Equal(t, uuid.Nil, id)
	assert.False(t, busy)

	next, err := s.Run()
	require.NoError(t, err, "reset frees the guard")
	assert.True(t, s.Accept(next.Timeline.Events[0]))
	assert.False(t, s.Accept(pending))
}

func TestResize_ClampsEndpoints(t *testing.T) {
	s, _ := newSession(t, session.DefaultConfig())
	run, err := s.Run()
	require.NoError(t, err)

	require.NoError(t, s.Resize(5, 5))
	g := s.Grid()
	assert.Equal(t, 5, g.Height())
	assert.Equal(t, grid.Coord{Row: 2, Col: 2}, g.Start())
	assert.Equal(t, grid.Coord{Row: 4, Col: 4}, g.Finish())
	assert.False(t, s.Accept(run.Timeline.Events[0]))
	assert.Equal(t, 5, s.Config().Width)

	// Growing back restores the configured endpoints.
	require.NoError(t, s.Resize(10, 10))
	assert.Equal(t, grid.DefaultFinish, s.Grid().Finish())
}

func TestResize_CollapsedEndpoints(t *testing.T) {
	cfg := session.DefaultConfig()
	cfg.Start = grid.Coord{Row: 8, Col: 8}
	cfg.Finish = grid.Coord{Row: 9, Col: 9}
	s, _ := newSession(t, cfg)

	require.NoError(t, s.Resize(5, 5))
	g := s.Grid()
	assert.Equal(t, grid.Coord{Row: 4, Col: 4}, g.Start())
	assert.Equal(t, grid.Coord{Row: 0, Col: 0}, g.Finish())
}

func TestResize_Rejected(t *testing.T) {
	s, hook := newSession(t, session.DefaultConfig())
	before := s.Grid()
	run, err := s.Run()
	require.NoError(t, err)

	require.ErrorIs(t, s.Resize(4, 30), grid.ErrConfig)
	assert.Same(t, before, s.Grid())
	assert.True(t, s.Busy(), "failed resize keeps the run in flight")
	assert.True(t, s.Accept(run.Timeline.Events[0]))
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestDefaultLoggerIsQuiet(t *testing.T) {
	s, err := session.New(session.DefaultConfig())
	require.NoError(t, err)
	_, err = s.Run()
	require.NoError(t, err)
}

func TestAccept_ForeignEvent(t *testing.T) {
	s, _ := newSession(t, session.DefaultConfig())
	e := animation.Event{Run: uuid.New(), State: animation.Visited}
	assert.False(t, s.Accept(e), "no run yet")

	_, err := s.Run()
	require.NoError(t, err)
	assert.False(t, s.Accept(e))
}

func TestLogging_TextFormatter(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	s, err := session.New(session.DefaultConfig(), session.WithLogger(logger))
	require.NoError(t, err)
	s.Reset()
	assert.Contains(t, buf.String(), `msg="grid replaced"`)
	assert.Contains(t, buf.String(), "reason=reset")
}
