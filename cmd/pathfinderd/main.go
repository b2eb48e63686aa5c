// Command pathfinderd serves the pathfinder board over a websocket. Each
// connection gets its own board; search runs are streamed back event by event
// in timeline order.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to read config")
	}
	logger, closer, err := cfg.Logger(os.Stderr)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open log")
	}
	defer closer.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := newApplication(logger, cfg.Session(), cfg.Tick)
	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: app.ServeMux(),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)

	go func() {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to listen and serve: %w", err)
		}
		close(errCh)
	}()

	logger.WithFields(logrus.Fields{
		"addr":   cfg.Addr,
		"height": cfg.Height,
		"width":  cfg.Width,
		"tick":   cfg.Tick.String(),
	}).Info("pathfinderd online")

	select {
	case <-ctx.Done():
	case err := <-errCh:
		logger.WithError(err).Error("failed to start")
		os.Exit(1)
	}

	sCtx, sCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer sCancel()

	if err := server.Shutdown(sCtx); err != nil {
		logger.WithError(err).Warn("shutdown")
	}
	logger.Info("pathfinderd stopped")
}
