// Package config reads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/katalvlaran/gridpath/animation"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/session"
)

// Environment variable names.
const (
	EnvHeight      = "PATHFINDER_HEIGHT"
	EnvWidth       = "PATHFINDER_WIDTH"
	EnvStart       = "PATHFINDER_START"
	EnvFinish      = "PATHFINDER_FINISH"
	EnvVisitStep   = "PATHFINDER_VISIT_STEP"
	EnvPathStep    = "PATHFINDER_PATH_STEP"
	EnvTick        = "PATHFINDER_TICK"
	EnvAddr        = "PATHFINDER_ADDR"
	EnvDevelopment = "PATHFINDER_DEVELOPMENT"
	EnvLogFile     = "PATHFINDER_LOG_FILE"
)

// Config holds the application's configuration values.
type Config struct {
	Height, Width int        // board size
	Start, Finish grid.Coord // endpoints; clamped by the session on resize
	VisitStep     int64      // virtual units between visited events
	PathStep      int64      // virtual units between path events
	Tick          time.Duration
	Addr          string // listen address for pathfinderd
	Development   bool   // debug logging
	LogFile       string // log destination; empty means the caller's default
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		Height:    grid.DefaultHeight,
		Width:     grid.DefaultWidth,
		Start:     grid.DefaultStart,
		Finish:    grid.DefaultFinish,
		VisitStep: animation.DefaultVisitStep,
		PathStep:  animation.DefaultPathStep,
		Tick:      time.Millisecond,
		Addr:      ":8080",
	}
}

// Load reads the given .env files (".env" when none are named) into the
// process environment without overriding variables already set, then parses
// the configuration. Missing .env files are not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: loading env file: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv parses the configuration through lookup, starting from Default.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var err error

	if cfg.Height, err = intVar(lookup, EnvHeight, cfg.Height); err != nil {
		return Config{}, err
	}
	if cfg.Width, err = intVar(lookup, EnvWidth, cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Start, err = coordVar(lookup, EnvStart, cfg.Start); err != nil {
		return Config{}, err
	}
	if cfg.Finish, err = coordVar(lookup, EnvFinish, cfg.Finish); err != nil {
		return Config{}, err
	}
	if cfg.VisitStep, err = int64Var(lookup, EnvVisitStep, cfg.VisitStep); err != nil {
		return Config{}, err
	}
	if cfg.PathStep, err = int64Var(lookup, EnvPathStep, cfg.PathStep); err != nil {
		return Config{}, err
	}
	if v, ok := lookup(EnvTick); ok {
		if cfg.Tick, err = time.ParseDuration(v); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvTick, err)
		}
	}
	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup(EnvDevelopment); ok {
		cfg.Development = v != "" && v != "0" && !strings.EqualFold(v, "false")
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	return cfg, nil
}

func intVar(lookup func(string) (string, bool), key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return n, nil
}

func int64Var(lookup func(string) (string, bool), key string, def int64) (int64, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return n, nil
}

// coordVar parses "row,col".
func coordVar(lookup func(string) (string, bool), key string, def grid.Coord) (grid.Coord, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	r, c, found := strings.Cut(v, ",")
	if !found {
		return grid.Coord{}, fmt.Errorf("config: %s must look like row,col; got %q", key, v)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("config: %s row: %w", key, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("config: %s col: %w", key, err)
	}
	return grid.Coord{Row: row, Col: col}, nil
}

// Session converts the board and animation settings into a session.Config.
func (c Config) Session() session.Config {
	sc := session.DefaultConfig()
	sc.Height, sc.Width = c.Height, c.Width
	sc.Start, sc.Finish = c.Start, c.Finish
	sc.VisitStep, sc.PathStep = c.VisitStep, c.PathStep
	return sc
}

// Log file rotation limits.
const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
	logMaxAgeDays = 28
)

// Logger builds a logrus logger: debug level in development, info otherwise.
// Output goes to a size-rotated LogFile when set, else to fallback. The
// returned closer is always safe to call.
func (c Config) Logger(fallback io.Writer) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	level := logrus.InfoLevel
	if c.Development {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	if c.LogFile == "" {
		logger.SetOutput(fallback)
		logger.SetFormatter(&logrus.TextFormatter{ForceColors: c.Development})
		return logger, io.NopCloser(nil), nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   c.LogFile,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
		Level:      level,
		Formatter:  &logrus.TextFormatter{DisableColors: true, FullTimestamp: true},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("config: opening log file: %w", err)
	}
	logger.SetOutput(io.Discard)
	logger.AddHook(hook)
	return logger, io.NopCloser(nil), nil
}
