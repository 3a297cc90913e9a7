package main

import (
	"image/color"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/hubastard/playground/engine/core"
	"github.com/hubastard/playground/engine/event"
	"github.com/hubastard/playground/engine/geom"
	"github.com/hubastard/playground/engine/input"
	"github.com/hubastard/playground/engine/scene"
)

// rect is one spinning square. Rate is in radians per millisecond.
type rect struct {
	texture core.Texture
	bounds  geom.Bounds
	start   time.Duration
	rate    float64
}

// Demo scatters translucent spinning squares. The newest one follows the
// cursor and the arrow keys.
type Demo struct {
	renderer core.Renderer
	input    *input.Devices
	views    navigator
	size     func() (int, int)
	rng      *rand.Rand
	move     scene.MoveController
	log      zerolog.Logger

	rects   []*rect
	current *rect
	total   time.Duration
	running bool
	open    bool
}

func NewDemo(r core.Renderer, in *input.Devices, views navigator, size func() (int, int), moveSpeed float32, rng *rand.Rand, log zerolog.Logger) *Demo {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Demo{
		renderer: r,
		input:    in,
		views:    views,
		size:     size,
		rng:      rng,
		move:     scene.MoveController{Speed: moveSpeed},
		log:      log,
	}
}

// SetMoveSpeed changes the keyboard speed in window units per millisecond.
func (d *Demo) SetMoveSpeed(speed float32) { d.move.Speed = speed }

func (d *Demo) Open() {
	if d.open {
		return
	}
	d.open = true
	d.running = true
	d.total = 0

	w, h := d.size()
	d.current = d.newRect(float32(w)/2, float32(h)/2)
	if d.current != nil {
		d.rects = append(d.rects, d.current)
	}

	bus := d.input.Bus
	event.Listen(bus, input.OnMouseButton, d, d.mouseButton)
	event.Listen(bus, input.OnMouseMove, d, d.mouseMove)
	event.Listen(bus, input.OnKey, d, d.keyEvent)
	event.Listen(bus, input.OnTouch, d, d.touch)
}

// Close detaches from input and deletes every rect texture.
func (d *Demo) Close() {
	if !d.open {
		return
	}
	d.open = false

	bus := d.input.Bus
	event.Unlisten(bus, input.OnMouseButton, d)
	event.Unlisten(bus, input.OnMouseMove, d)
	event.Unlisten(bus, input.OnKey, d)
	event.Unlisten(bus, input.OnTouch, d)

	for _, r := range d.rects {
		d.renderer.DeleteTexture(r.texture)
	}
	d.log.Debug().Int("rects", len(d.rects)).Msg("demo closed")
	d.rects = nil
	d.current = nil
}

// Render keeps asking for frames while the demo runs. A paused demo draws
// one frozen frame per request.
func (d *Demo) Render(delta time.Duration) bool {
	if d.running {
		d.total += delta
		if d.current != nil {
			dx, dy := d.move.Step(d.input.Keyboard, delta)
			d.current.bounds.X += dx
			d.current.bounds.Y += dy
		}
	}

	for _, r := range d.rects {
		angle := float64(d.total-r.start) / float64(time.Millisecond) * r.rate
		d.renderer.RenderQuad(r.texture, r.bounds, core.WithRotation(0, 0, float32(angle)))
	}
	return d.running
}

// Rects returns the live rect count.
func (d *Demo) Rects() int { return len(d.rects) }

// Current returns the bounds of the rect being steered.
func (d *Demo) Current() (geom.Bounds, bool) {
	if d.current == nil {
		return geom.Bounds{}, false
	}
	return d.current.bounds, true
}

func (d *Demo) Running() bool { return d.running }

// newRect creates a random square centred on (x, y). A texture failure is
// logged and yields nil.
func (d *Demo) newRect(x, y float32) *rect {
	c := color.NRGBA{
		R: uint8(100 + d.rng.IntN(156)),
		G: uint8(100 + d.rng.IntN(156)),
		B: uint8(100 + d.rng.IntN(156)),
		A: uint8(100 + d.rng.IntN(100)),
	}
	tex, err := d.renderer.CreateFlatTexture(c)
	if err != nil {
		d.log.Error().Err(err).Msg("rect texture")
		return nil
	}
	side := float32(10 + d.rng.Float64()*100)
	return &rect{
		texture: tex,
		bounds:  geom.Rect(x, y, side, side),
		start:   d.total,
		rate:    0.002 + d.rng.Float64()*0.005,
	}
}

// addRect drops a new square where the current one is and starts steering it.
func (d *Demo) addRect() {
	var x, y float32
	if d.current != nil {
		x, y = d.current.bounds.X, d.current.bounds.Y
	} else {
		w, h := d.size()
		x, y = float32(w)/2, float32(h)/2
	}
	r := d.newRect(x, y)
	if r == nil {
		return
	}
	d.rects = append(d.rects, r)
	d.current = r
}

func (d *Demo) mouseButton(change input.ButtonChange) {
	if !d.running {
		return
	}
	if change[input.MouseLeft] {
		d.addRect()
	}
}

func (d *Demo) mouseMove(input.MoveDelta) {
	if !d.running || d.current == nil {
		return
	}
	p := d.input.Mouse.Position()
	d.current.bounds.X, d.current.bounds.Y = p.X, p.Y
}

func (d *Demo) keyEvent(change input.KeyChange) {
	if !d.running && !change[input.KeyP] {
		return
	}
	switch {
	case change[input.KeySpace] || change[input.KeyEnter]:
		d.addRect()
	case change[input.KeyEscape]:
		if err := d.views.Set(MenuView); err != nil {
			d.log.Error().Err(err).Msg("back to menu")
		}
	case change[input.KeyP]:
		d.running = !d.running
		d.log.Debug().Bool("running", d.running).Msg("demo pause toggled")
	}
}

// touch adds a rect for each lifted finger and moves it under the finger.
func (d *Demo) touch(change input.TouchChange) {
	if !d.running {
		return
	}
	ids := make([]int, 0, len(change))
	for id, p := range change {
		if p.Ended {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	for _, id := range ids {
		p := change[id]
		d.addRect()
		if d.current != nil {
			d.current.bounds.X, d.current.bounds.Y = p.X, p.Y
		}
	}
}
