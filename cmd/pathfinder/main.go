// Command pathfinder is the terminal front end: edit walls on the board,
// run the search and watch it replay.
//
// Keys: arrows or hjkl move the cursor, space toggles a wall, enter runs,
// r resets, + and - resize, q or Esc quits.
package main

import (
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to read config")
	}
	// The terminal belongs to the screen, so logs go to PATHFINDER_LOG_FILE or nowhere.
	logger, closer, err := cfg.Logger(io.Discard)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open log")
	}
	defer closer.Close()

	sess, err := session.New(cfg.Session(), session.WithLogger(logger))
	if err != nil {
		logrus.WithError(err).Fatal("invalid board configuration")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logrus.WithError(err).Fatal("failed to create screen")
	}
	if err := screen.Init(); err != nil {
		logrus.WithError(err).Fatal("failed to initialize screen")
	}

	u := newUI(screen, sess, logger, cfg.Tick)
	u.loop()
	screen.Fini()
	logger.Info("pathfinder exited")
}
