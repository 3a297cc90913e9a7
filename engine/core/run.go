package core

import (
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/hubastard/playground/engine/event"
	"github.com/hubastard/playground/engine/input"
	"github.com/hubastard/playground/engine/mainloop"
	"github.com/hubastard/playground/engine/profiler"
	"github.com/hubastard/playground/engine/sched"
	"github.com/hubastard/playground/engine/view"
)

// frameWindow is how many recent frames the exit report summarises.
const frameWindow = 600

// NewEngine wires the services around an open window and renderer. Run calls
// it; tests can drive the returned engine with Dispatch and Step.
func NewEngine(win Window, rend Renderer, cfg Config, log zerolog.Logger) *Engine {
	bus := event.NewBus()
	e := &Engine{
		Window:     win,
		Renderer:   rend,
		Bus:        bus,
		Input:      input.NewDevices(bus),
		Views:      view.NewRegistry(log.With().Str("component", "views").Logger()),
		Tasks:      mainloop.NewQueue(win.PostEmptyEvent),
		Log:        log,
		FrameTimes: profiler.NewFrameTimes(frameWindow),
		clear:      cfg.ClearColor,
		ratio:      1,
		start:      time.Now(),
	}
	e.Scheduler = sched.New(nil, e.frame, log.With().Str("component", "sched").Logger())
	return e
}

// Run wires the platform window + renderer and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error), log zerolog.Logger) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("open window: %w", err)
	}
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}
	defer rend.Shutdown()

	eng := NewEngine(win, rend, cfg, log)
	win.SetEventCallback(eng.Dispatch)
	eng.resize()

	if err := app.OnStart(eng); err != nil {
		return fmt.Errorf("start app: %w", err)
	}
	eng.Scheduler.RequestFrame()

	for !win.ShouldClose() {
		eng.Step()
	}

	eng.Views.Clear()
	app.OnShutdown(eng)
	eng.Tasks.Stop()
	log.Info().
		Object("frames", eng.FrameTimes.Summary()).
		Object("runtime", profiler.ReadRuntime()).
		Dur("uptime", eng.Uptime()).
		Msg("engine exit")
	return nil
}

// Step runs one loop iteration. It only blocks for events when no frame is
// pending, so an idle app sleeps until input or posted work arrives.
func (e *Engine) Step() {
	if e.Scheduler.Pending() {
		e.Window.PollEvents()
	} else {
		e.Window.WaitEvents()
	}
	e.Tasks.Drain()
	e.Scheduler.Tick()
}

// Dispatch turns a platform event into device state and bus traffic, then
// asks for a frame so views can react.
func (e *Engine) Dispatch(ev Event) {
	switch ev := ev.(type) {
	case EventCloseRequested:
		e.Log.Debug().Msg("close requested")
	case EventResize:
		e.resize()
	case EventKey:
		if ev.Down {
			e.Input.Keyboard.Press(ev.Key)
		} else {
			e.Input.Keyboard.Release(ev.Key)
		}
	case EventMouseMove:
		e.Input.Mouse.MoveTo(ev.X, ev.Y)
	case EventMouseButton:
		if ev.Down {
			e.Input.Mouse.Press(ev.Button)
		} else {
			e.Input.Mouse.Release(ev.Button)
		}
	case EventTouch:
		switch ev.Phase {
		case TouchBegin:
			e.Input.Touch.Start(ev.ID, ev.X, ev.Y)
		case TouchMove:
			e.Input.Touch.Move(ev.ID, ev.X, ev.Y)
		case TouchEnd:
			e.Input.Touch.End(ev.ID, ev.X, ev.Y)
		}
	}
	e.Scheduler.RequestFrame()
}

func (e *Engine) resize() {
	w, h := e.Window.Size()
	fw, fh := e.Window.FramebufferSize()
	if w < 1 || h < 1 || fw < 1 || fh < 1 {
		return // minimised
	}
	e.width, e.height = w, h
	e.ratio = float32(fw) / float32(w)
	e.Renderer.Resize(w, h, e.ratio)
	event.Fire(e.Bus, input.OnResize, input.Resize{Width: w, Height: h})
	e.Log.Debug().Int("width", w).Int("height", h).Float32("ratio", e.ratio).Msg("resized")
}

func (e *Engine) frame(delta time.Duration) bool {
	start := time.Now()
	defer func() { e.FrameTimes.Add(time.Since(start)) }()

	c := e.clear
	e.Renderer.Clear(c[0], c[1], c[2], c[3])
	more := e.Views.Render(delta)
	e.Window.SwapBuffers()
	return more
}
