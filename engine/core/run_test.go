package core_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hubastard/playground/engine/core"
	mock_core "github.com/hubastard/playground/engine/core/mocks"
	"github.com/hubastard/playground/engine/event"
	"github.com/hubastard/playground/engine/input"
)

type stubView struct {
	opened, closed int
	frames         []time.Duration
}

func (v *stubView) Open()  { v.opened++ }
func (v *stubView) Close() { v.closed++ }
func (v *stubView) Render(delta time.Duration) bool {
	v.frames = append(v.frames, delta)
	return false
}

var testConfig = core.Config{Title: "test", Width: 640, Height: 360, ClearColor: [4]float32{0.1, 0.2, 0.3, 1}}

func TestDispatchResizeUpdatesRendererAndBus(t *testing.T) {
	ctrl := gomock.NewController(t)
	win := mock_core.NewMockWindow(ctrl)
	rend := mock_core.NewMockRenderer(ctrl)

	win.EXPECT().Size().Return(640, 360)
	win.EXPECT().FramebufferSize().Return(1280, 720)
	rend.EXPECT().Resize(640, 360, float32(2))

	e := core.NewEngine(win, rend, testConfig, zerolog.Nop())
	var got []input.Resize
	event.Listen(e.Bus, input.OnResize, t, func(r input.Resize) { got = append(got, r) })

	e.Dispatch(core.EventResize{W: 640, H: 360})

	assert.Equal(t, []input.Resize{{Width: 640, Height: 360}}, got)
	w, h := e.Size()
	assert.Equal(t, 640, w)
	assert.Equal(t, 360, h)
	assert.Equal(t, float32(2), e.PixelRatio())
	assert.True(t, e.Scheduler.Pending())
}

func TestDispatchIgnoresMinimisedResize(t *testing.T) {
	ctrl := gomock.NewController(t)
	win := mock_core.NewMockWindow(ctrl)
	rend := mock_core.NewMockRenderer(ctrl)

	win.EXPECT().Size().Return(0, 0)
	win.EXPECT().FramebufferSize().Return(0, 0)

	e := core.NewEngine(win, rend, testConfig, zerolog.Nop())
	e.Dispatch(core.EventResize{})

	assert.Equal(t, float32(1), e.PixelRatio())
}

func TestDispatchFeedsDevices(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := core.NewEngine(mock_core.NewMockWindow(ctrl), mock_core.NewMockRenderer(ctrl), testConfig, zerolog.Nop())

	var keys []input.KeyChange
	event.Listen(e.Bus, input.OnKey, t, func(c input.KeyChange) { keys = append(keys, c) })

	e.Dispatch(core.EventKey{Key: input.KeyUp, Down: true})
	assert.True(t, e.Input.Keyboard.IsDown(input.KeyUp))
	e.Dispatch(core.EventKey{Key: input.KeyUp})
	assert.False(t, e.Input.Keyboard.IsDown(input.KeyUp))
	assert.Equal(t, []input.KeyChange{{input.KeyUp: true}, {input.KeyUp: false}}, keys)

	e.Dispatch(core.EventMouseMove{X: 10, Y: 20})
	e.Dispatch(core.EventMouseButton{Button: input.MouseLeft, Down: true})
	assert.Equal(t, float32(10), e.Input.Mouse.Position().X)
	assert.Equal(t, float32(20), e.Input.Mouse.Position().Y)
	assert.True(t, e.Input.Mouse.IsDown(input.MouseLeft))

	e.Dispatch(core.EventTouch{ID: 1, X: 5, Y: 5, Phase: core.TouchBegin})
	assert.Equal(t, 1, e.Input.Touch.Active())
	e.Dispatch(core.EventTouch{ID: 1, X: 6, Y: 6, Phase: core.TouchEnd})
	assert.Zero(t, e.Input.Touch.Active())

	assert.True(t, e.Scheduler.Pending())
}

func TestStepRendersPendingFrameThenWaits(t *testing.T) {
	ctrl := gomock.NewController(t)
	win := mock_core.NewMockWindow(ctrl)
	rend := mock_core.NewMockRenderer(ctrl)
	e := core.NewEngine(win, rend, testConfig, zerolog.Nop())

	v := &stubView{}
	e.Views.MustRegister("main", v)
	require.NoError(t, e.Views.Set("main"))

	gomock.InOrder(
		win.EXPECT().PollEvents(),
		rend.EXPECT().Clear(float32(0.1), float32(0.2), float32(0.3), float32(1)),
		win.EXPECT().SwapBuffers(),
		win.EXPECT().WaitEvents(),
	)

	e.Scheduler.RequestFrame()
	e.Step()
	e.Step()

	assert.Len(t, v.frames, 1)
	assert.Equal(t, uint64(1), e.Scheduler.Frames())
	assert.Equal(t, uint64(1), e.FrameTimes.Summary().Frames)
}

func TestTasksWakeTheWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	win := mock_core.NewMockWindow(ctrl)
	e := core.NewEngine(win, mock_core.NewMockRenderer(ctrl), testConfig, zerolog.Nop())

	win.EXPECT().PostEmptyEvent().Times(2)
	ran := 0
	e.Tasks.Post("reload", func() { ran++ })
	e.Tasks.Post("reload", func() { ran++ })

	win.EXPECT().WaitEvents()
	e.Step()

	assert.Equal(t, 1, ran)
}

func TestRunLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	win := mock_core.NewMockWindow(ctrl)
	rend := mock_core.NewMockRenderer(ctrl)
	app := mock_core.NewMockApp(ctrl)
	v := &stubView{}

	win.EXPECT().SetEventCallback(gomock.Any())
	win.EXPECT().Size().Return(640, 360)
	win.EXPECT().FramebufferSize().Return(640, 360)
	rend.EXPECT().Resize(640, 360, float32(1))
	app.EXPECT().OnStart(gomock.Any()).DoAndReturn(func(e *core.Engine) error {
		e.Views.MustRegister("main", v)
		return e.Views.Set("main")
	})
	gomock.InOrder(
		win.EXPECT().ShouldClose().Return(false),
		win.EXPECT().PollEvents(),
		rend.EXPECT().Clear(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()),
		win.EXPECT().SwapBuffers(),
		win.EXPECT().ShouldClose().Return(true),
		app.EXPECT().OnShutdown(gomock.Any()),
		rend.EXPECT().Shutdown(),
		win.EXPECT().Destroy(),
	)

	err := core.Run(app, testConfig,
		func(core.Config) (core.Window, error) { return win, nil },
		func(core.Window, core.Config) (core.Renderer, error) { return rend, nil },
		zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, 1, v.opened)
	assert.Equal(t, 1, v.closed)
	assert.Len(t, v.frames, 1)
}

func TestRunStartFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	win := mock_core.NewMockWindow(ctrl)
	rend := mock_core.NewMockRenderer(ctrl)
	app := mock_core.NewMockApp(ctrl)
	boom := errors.New("boom")

	win.EXPECT().SetEventCallback(gomock.Any())
	win.EXPECT().Size().Return(640, 360)
	win.EXPECT().FramebufferSize().Return(640, 360)
	rend.EXPECT().Resize(640, 360, float32(1))
	app.EXPECT().OnStart(gomock.Any()).Return(boom)
	rend.EXPECT().Shutdown()
	win.EXPECT().Destroy()

	err := core.Run(app, testConfig,
		func(core.Config) (core.Window, error) { return win, nil },
		func(core.Window, core.Config) (core.Renderer, error) { return rend, nil },
		zerolog.Nop())

	assert.ErrorIs(t, err, boom)
}

func TestRunWindowFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	app := mock_core.NewMockApp(ctrl)
	boom := errors.New("no display")

	err := core.Run(app, testConfig,
		func(core.Config) (core.Window, error) { return nil, boom },
		func(core.Window, core.Config) (core.Renderer, error) { t.Fatal("renderer built without window"); return nil, nil },
		zerolog.Nop())

	assert.ErrorIs(t, err, boom)
}

func TestResolveQuadOptions(t *testing.T) {
	o := core.ResolveQuadOptions()
	assert.Equal(t, float32(1), o.Alpha)
	assert.False(t, o.Rotated())

	o = core.ResolveQuadOptions(core.WithAlpha(float32(math.NaN())), core.WithRotation(0, 0, 1.5))
	assert.Equal(t, float32(1), o.Alpha)
	assert.True(t, o.Rotated())
	assert.Equal(t, float32(1.5), o.RotationAngle())

	o = core.ResolveQuadOptions(core.WithAlpha(0.25))
	assert.Equal(t, float32(0.25), o.Alpha)
}
