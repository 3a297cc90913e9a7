package ui

import (
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hubastard/playground/engine/event"
	"github.com/hubastard/playground/engine/geom"
	"github.com/hubastard/playground/engine/gfx/recorder"
	"github.com/hubastard/playground/engine/input"
)

func newTestContext(t *testing.T) (*Context, *recorder.Renderer) {
	t.Helper()
	rec := recorder.New()
	return NewContext(rec, input.NewDevices(event.NewBus()), zerolog.Nop(), 1), rec
}

// item is a minimal Focusable.
type item struct {
	name      string
	bounds    geom.Bounds
	rendered  int
	destroyed int
}

func (it *item) Bounds() geom.Bounds  { return it.bounds }
func (it *item) Render(time.Duration) { it.rendered++ }
func (it *item) Destroy()             { it.destroyed++ }
func (it *item) String() string       { return it.name }

// at places a small item at angle degrees (clockwise from up) and distance d
// from the origin.
func at(name string, degrees, d float64) *item {
	rad := degrees * math.Pi / 180
	return &item{name: name, bounds: geom.Rect(float32(d*math.Sin(rad)), float32(d*math.Cos(rad)), 10, 10)}
}
