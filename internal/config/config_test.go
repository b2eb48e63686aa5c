package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/config"
)

func lookupMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := config.FromEnv(lookupMap(nil))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, grid.DefaultStart, cfg.Start)
	assert.Equal(t, int64(10), cfg.VisitStep)
	assert.Equal(t, int64(50), cfg.PathStep)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := config.FromEnv(lookupMap(map[string]string{
		config.EnvHeight:      "12",
		config.EnvWidth:       " 15 ",
		config.EnvStart:       "0, 1",
		config.EnvFinish:      "11,14",
		config.EnvVisitStep:   "5",
		config.EnvPathStep:    "25",
		config.EnvTick:        "2ms",
		config.EnvAddr:        "127.0.0.1:9000",
		config.EnvDevelopment: "1",
		config.EnvLogFile:     "/tmp/pathfinder.log",
	}))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Height)
	assert.Equal(t, 15, cfg.Width)
	assert.Equal(t, grid.Coord{Row: 0, Col: 1}, cfg.Start)
	assert.Equal(t, grid.Coord{Row: 11, Col: 14}, cfg.Finish)
	assert.Equal(t, 2*time.Millisecond, cfg.Tick)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.True(t, cfg.Development)

	sc := cfg.Session()
	assert.Equal(t, 12, sc.Height)
	assert.Equal(t, int64(25), sc.PathStep)
	assert.Equal(t, grid.Conn4, sc.Conn)
}

func TestFromEnv_Development(t *testing.T) {
	for v, want := range map[string]bool{"": false, "0": false, "false": false, "FALSE": false, "yes": true, "1": true} {
		cfg, err := config.FromEnv(lookupMap(map[string]string{config.EnvDevelopment: v}))
		require.NoError(t, err)
		assert.Equal(t, want, cfg.Development, "value %q", v)
	}
}

func TestFromEnv_Errors(t *testing.T) {
	cases := map[string]map[string]string{
		"Height":   {config.EnvHeight: "ten"},
		"Step":     {config.EnvVisitStep: "1.5"},
		"StartSep": {config.EnvStart: "2;2"},
		"StartRow": {config.EnvStart: "x,2"},
		"Finish":   {config.EnvFinish: "7,y"},
		"Tick":     {config.EnvTick: "fast"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.FromEnv(lookupMap(env))
			require.Error(t, err)
			for k := range env {
				assert.Contains(t, err.Error(), k)
			}
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(file, []byte("PATHFINDER_WIDTH=7\nPATHFINDER_PATH_STEP=40\n"), 0o600))

	// Variables already in the environment win over the file.
	t.Setenv(config.EnvPathStep, "30")
	t.Setenv(config.EnvWidth, "")
	require.NoError(t, os.Unsetenv(config.EnvWidth))

	cfg, err := config.Load(file)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Width)
	assert.Equal(t, int64(30), cfg.PathStep)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := config.Config{Development: true}.Logger(&buf)
	require.NoError(t, err)
	defer closer.Close()
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	logger.Debug("hello")
	assert.Contains(t, buf.String(), "hello")

	file := filepath.Join(t.TempDir(), "out.log")
	logger, closer, err = config.Config{LogFile: file}.Logger(&buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	logger.Info("to file")
	require.NoError(t, closer.Close())
	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(b), "to file")
}
