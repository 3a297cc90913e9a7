//go:generate mockgen -source=app.go -destination=mocks/mock_core.go

package core

import (
	"image"
	"image/color"
	"time"

	"github.com/rs/zerolog"

	"github.com/hubastard/playground/engine/event"
	"github.com/hubastard/playground/engine/geom"
	"github.com/hubastard/playground/engine/input"
	"github.com/hubastard/playground/engine/mainloop"
	"github.com/hubastard/playground/engine/profiler"
	"github.com/hubastard/playground/engine/sched"
	"github.com/hubastard/playground/engine/view"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine) error // called once after window/renderer init; registers and opens views
	OnShutdown(e *Engine)    // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window     Window
	Renderer   Renderer
	Bus        *event.Bus
	Input      *input.Devices
	Scheduler  *sched.Scheduler
	Views      *view.Registry
	Tasks      *mainloop.Queue
	Log        zerolog.Logger
	// FrameTimes holds how long recent frames took to draw and present.
	FrameTimes *profiler.FrameTimes

	clear         [4]float32
	width, height int
	ratio         float32
	start         time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Size is the window size in screen units, the space views lay out in.
func (e *Engine) Size() (int, int) { return e.width, e.height }

// PixelRatio is framebuffer pixels per window unit.
func (e *Engine) PixelRatio() float32 { return e.ratio }

// SetClearColor changes the background and redraws.
func (e *Engine) SetClearColor(c [4]float32) {
	e.clear = c
	e.Scheduler.RequestFrame()
}

// Window abstraction.
type Window interface {
	PollEvents()
	WaitEvents()     // blocks until an event arrives
	PostEmptyEvent() // wakes WaitEvents from any goroutine
	SwapBuffers()
	ShouldClose() bool
	Size() (int, int)
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
	Destroy()
}

// Texture is a GPU image owned by whoever created it.
type Texture interface {
	Size() (int, int)
}

// Renderer draws textured quads in window units with the origin bottom-left.
type Renderer interface {
	// Resize sets the projection to w×h units over a framebuffer ratio times larger.
	Resize(w, h int, ratio float32)
	Clear(r, g, b, a float32)
	RenderQuad(tex Texture, b geom.Bounds, opts ...QuadOption)
	CreateFlatTexture(c color.NRGBA) (Texture, error)
	InitializeTexture(img image.Image) (Texture, error)
	DeleteTexture(tex Texture)
	Shutdown()
}

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor [4]float32 // RGBA
}
