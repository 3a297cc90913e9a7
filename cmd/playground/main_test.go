package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hubastard/playground/engine/config"
	"github.com/hubastard/playground/engine/core"
	mock_core "github.com/hubastard/playground/engine/core/mocks"
	"github.com/hubastard/playground/engine/gfx/recorder"
)

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)
	level := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(level) })
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "version")
	assert.Contains(t, out, "playground dev")
	assert.Contains(t, out, "commit")
}

func TestConfigSchemaCommand(t *testing.T) {
	out := execute(t, "config", "schema")

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Playground Configuration", doc["title"])
}

func TestFlagsOverrideConfig(t *testing.T) {
	isolate(t)
	cmd := newRootCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--width", "640", "--log-level", "debug"}))

	mgr, err := config.NewManager("", zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, bindFlags(cmd, mgr.Viper()))
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height, "unset flags keep the default")
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestAppStartsOnMenuAndAppliesReloads(t *testing.T) {
	isolate(t)
	ctrl := gomock.NewController(t)
	win := mock_core.NewMockWindow(ctrl)
	rec := recorder.New()
	e := core.NewEngine(win, rec, core.Config{ClearColor: [4]float32{0, 0, 0, 1}}, zerolog.Nop())

	mgr, err := config.NewManager("", zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	app := NewApp(mgr, zerolog.Nop())

	require.NoError(t, app.OnStart(e))
	assert.Equal(t, MenuView, e.Views.Current())

	next := config.DefaultConfig()
	next.Window.ClearColor = "#ff0000"
	next.Logging.Level = "warn"
	next.Demo.MoveSpeed = 1
	app.apply(e, next)

	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	assert.Equal(t, float32(1), app.demo.move.Speed)

	win.EXPECT().PollEvents()
	win.EXPECT().SwapBuffers()
	e.Step()
	assert.Equal(t, [4]float32{1, 0, 0, 1}, rec.ClearColor)

	e.Views.Clear()
	app.OnShutdown(e)
	assert.Zero(t, rec.Live())
}
