package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/animation"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/path"
	"github.com/katalvlaran/gridpath/session"
)

type application struct {
	log      *logrus.Logger
	board    session.Config
	tick     time.Duration
	upgrader websocket.Upgrader
}

func newApplication(log *logrus.Logger, board session.Config, tick time.Duration) *application {
	return &application{
		log:   log,
		board: board,
		tick:  tick,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (app *application) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", app.wsConnect)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// client is one websocket connection with its own board. Only the reader
// goroutine touches cancelReplay; all writes go through out.
type client struct {
	app          *application
	sess         *session.Session
	log          *logrus.Entry
	out          chan any
	cancelReplay context.CancelFunc
}

func (app *application) wsConnect(w http.ResponseWriter, r *http.Request) {
	sess, err := session.New(app.board, session.WithLogger(app.log))
	if err != nil {
		app.log.WithError(err).Error("unable to create session")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	conn, err := app.upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.log.WithError(err).Error("unable to upgrade")
		return
	}

	cl := &client{
		app:          app,
		sess:         sess,
		log:          app.log.WithField("remote", r.RemoteAddr),
		out:          make(chan any, 64),
		cancelReplay: func() {},
	}
	cl.log.Info("client connected")

	eg, ctx := errgroup.WithContext(r.Context())
	eg.Go(func() error { return cl.writeLoop(ctx, conn) })
	eg.Go(func() error {
		defer cl.cancelReplay()
		return cl.readLoop(ctx, conn)
	})
	if err := eg.Wait(); err != nil && !errors.Is(err, errClientClosed) && !errors.Is(err, context.Canceled) {
		cl.log.WithError(err).Warn("connection closed")
		return
	}
	cl.log.Info("client disconnected")
}

var errClientClosed = errors.New("client closed connection")

func (cl *client) readLoop(ctx context.Context, conn *websocket.Conn) error {
	cl.send(ctx, newGridMessage(cl.sess.Grid()))
	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return errClientClosed
			}
			return fmt.Errorf("read: %w", err)
		}
		if mt != websocket.TextMessage {
			continue
		}
		var cmd command
		if err := json.Unmarshal(message, &cmd); err != nil {
			cl.send(ctx, errorMessage{Type: "error", Error: "malformed command"})
			continue
		}
		cl.log.WithField("op", cmd.Op).Debug("command received")
		if err := cl.execute(ctx, cmd); err != nil {
			cl.send(ctx, errorMessage{Type: "error", Error: err.Error()})
		}
	}
}

func (cl *client) execute(ctx context.Context, cmd command) error {
	switch cmd.Op {
	case opGrid:
	case opToggle:
		if err := cl.sess.ToggleWall(grid.Coord{Row: cmd.Row, Col: cmd.Col}); err != nil {
			return err
		}
	case opReset:
		cl.cancelReplay()
		cl.sess.Reset()
	case opResize:
		cl.cancelReplay()
		if err := cl.sess.Resize(cmd.Height, cmd.Width); err != nil {
			return err
		}
	case opRun:
		return cl.startReplay(ctx)
	default:
		return fmt.Errorf("unknown op %q", cmd.Op)
	}
	cl.send(ctx, newGridMessage(cl.sess.Grid()))
	return nil
}

// startReplay runs a search and streams its timeline in the background.
// Reset, resize and disconnect cancel the stream.
func (cl *client) startReplay(ctx context.Context) error {
	run, err := cl.sess.Run()
	if err != nil {
		return err
	}
	replayCtx, cancel := context.WithCancel(ctx)
	cl.cancelReplay = cancel

	go func() {
		defer cancel()
		err := animation.Play(replayCtx, run.Timeline, cl.app.tick, func(e animation.Event) {
			if cl.sess.Accept(e) {
				cl.send(replayCtx, eventMessage{Type: "event", Event: e})
			}
		})
		if err != nil {
			cl.log.WithField("run", run.ID.String()).Debug("replay cancelled")
			return
		}
		cl.sess.Complete(run.ID)
		cl.send(replayCtx, doneMessage{
			Type:      "done",
			Run:       run.ID,
			Reachable: run.Reachable(),
			Visited:   len(run.Result.Visited),
			Length:    path.Edges(run.Path),
		})
	}()
	return nil
}

// send queues v for the writer, giving up when ctx ends.
func (cl *client) send(ctx context.Context, v any) {
	select {
	case cl.out <- v:
	case <-ctx.Done():
	}
}

// writeLoop is the only writer on conn. Closing conn on exit unblocks readLoop.
func (cl *client) writeLoop(ctx context.Context, conn *websocket.Conn) error {
	defer conn.Close()
	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return ctx.Err()
		case v := <-cl.out:
			if err := conn.WriteJSON(v); err != nil {
				return fmt.Errorf("write: %w", err)
			}
		}
	}
}
