package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/animation"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/path"
	"github.com/katalvlaran/gridpath/session"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

type action int

const (
	actNone action = iota
	actUp
	actDown
	actLeft
	actRight
	actToggle
	actRun
	actReset
	actGrow
	actShrink
	actQuit
)

// ui owns the screen and the replay of the current run. All fields are
// touched only from the loop goroutine.
type ui struct {
	screen tcell.Screen
	sess   *session.Session
	log    *logrus.Logger
	tick   time.Duration // wall-clock length of one virtual time unit

	cursor  grid.Coord
	overlay map[grid.Coord]animation.State
	run     *session.Run
	player  *animation.Player
	started time.Time
	status  string
}

func newUI(screen tcell.Screen, sess *session.Session, log *logrus.Logger, tick time.Duration) *ui {
	return &ui{
		screen:  screen,
		sess:    sess,
		log:     log,
		tick:    tick,
		cursor:  sess.Grid().Start(),
		overlay: make(map[grid.Coord]animation.State),
		status:  "ready",
	}
}

func (u *ui) loop() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	u.draw()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !u.do(keymap(ev), time.Now()) {
					return
				}
			case *tcell.EventResize:
				u.screen.Sync()
			}
			u.draw()

		case now := <-ticker.C:
			if u.player != nil {
				u.step(now)
				u.draw()
			}
		}
	}
}

func keymap(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyUp:
		return actUp
	case tcell.KeyDown:
		return actDown
	case tcell.KeyLeft:
		return actLeft
	case tcell.KeyRight:
		return actRight
	case tcell.KeyEnter:
		return actRun
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return actUp
		case 'j':
			return actDown
		case 'h':
			return actLeft
		case 'l':
			return actRight
		case ' ':
			return actToggle
		case 'r':
			return actReset
		case '+', '=':
			return actGrow
		case '-':
			return actShrink
		case 'q':
			return actQuit
		}
	}
	return actNone
}

// do applies a and reports whether the loop should continue.
func (u *ui) do(a action, now time.Time) bool {
	g := u.sess.Grid()
	switch a {
	case actUp:
		u.moveCursor(-1, 0, g)
	case actDown:
		u.moveCursor(1, 0, g)
	case actLeft:
		u.moveCursor(0, -1, g)
	case actRight:
		u.moveCursor(0, 1, g)
	case actToggle:
		if err := u.sess.ToggleWall(u.cursor); err != nil {
			u.status = err.Error()
		} else {
			u.status = fmt.Sprintf("toggled %v", u.cursor)
		}
	case actRun:
		u.startRun(now)
	case actReset:
		u.stopReplay()
		u.sess.Reset()
		u.status = "reset"
	case actGrow, actShrink:
		d := 1
		if a == actShrink {
			d = -1
		}
		u.resize(g.Height()+d, g.Width()+d)
	case actQuit:
		return false
	}
	return true
}

func (u *ui) moveCursor(dr, dc int, g *grid.Grid) {
	u.cursor = grid.Clamp(grid.Coord{Row: u.cursor.Row + dr, Col: u.cursor.Col + dc}, g.Height(), g.Width())
}

func (u *ui) resize(height, width int) {
	if err := u.sess.Resize(height, width); err != nil {
		u.status = err.Error()
		return
	}
	u.stopReplay()
	u.cursor = grid.Clamp(u.cursor, height, width)
	u.status = fmt.Sprintf("resized to %dx%d", height, width)
	u.screen.Clear()
}

func (u *ui) startRun(now time.Time) {
	run, err := u.sess.Run()
	if err != nil {
		u.status = err.Error()
		return
	}
	clear(u.overlay)
	u.run = run
	u.player = animation.NewPlayer(run.Timeline)
	u.started = now
	u.status = "searching"
	u.step(now)
}

// stopReplay drops the replay; the session has already forgotten the run.
func (u *ui) stopReplay() {
	u.run = nil
	u.player = nil
	clear(u.overlay)
}

// step applies every event due at now.
func (u *ui) step(now time.Time) {
	if u.player == nil {
		return
	}
	t := u.run.Timeline.End
	if u.tick > 0 {
		t = int64(now.Sub(u.started) / u.tick)
	}
	for _, e := range u.player.Seek(t) {
		if u.sess.Accept(e) {
			u.overlay[e.Cell] = e.State
		}
	}
	if !u.player.Done() {
		return
	}

	u.sess.Complete(u.run.ID)
	if u.run.Reachable() {
		u.status = fmt.Sprintf("visited %d cells, path length %d", len(u.run.Result.Visited), path.Edges(u.run.Path))
	} else {
		u.status = fmt.Sprintf("no path: visited %d cells", len(u.run.Result.Visited))
	}
	u.log.WithField("run", u.run.ID.String()).Debug("replay finished")
	u.player = nil
}
