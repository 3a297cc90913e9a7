package ui

import (
	"time"

	"github.com/hubastard/playground/engine/geom"
)

// SelectorDuration is how long the highlight takes to glide to a new target.
const SelectorDuration = 300 * time.Millisecond

// Selector is the highlight drawn under the focused item.
type Selector struct {
	ctx        *Context
	bounds     geom.Bounds
	start, end geom.Bounds
	elapsed    time.Duration
	animating  bool
	texFailed  bool
}

// NewSelector starts idle at initial, or at the zero rect when none is given.
func NewSelector(ctx *Context, initial ...geom.Bounds) *Selector {
	var b geom.Bounds
	if len(initial) > 0 {
		b = initial[0]
	}
	return &Selector{ctx: ctx, bounds: b, start: b, end: b}
}

// Place moves the selector to b immediately and stops any animation.
func (s *Selector) Place(b geom.Bounds) {
	s.bounds, s.start, s.end = b, b, b
	s.elapsed = 0
	s.animating = false
}

// Animate glides from the current bounds to b.
func (s *Selector) Animate(b geom.Bounds) {
	s.start = s.bounds
	s.end = b
	s.elapsed = 0
	s.animating = true
}

// Update advances the animation and reports whether it needs another frame.
// Once the duration is reached the selector lands exactly on its target.
func (s *Selector) Update(delta time.Duration) bool {
	if !s.animating {
		return false
	}
	if delta > 0 {
		s.elapsed += delta
	}
	t := float32(s.elapsed) / float32(SelectorDuration)
	if t >= 1 {
		s.bounds = s.end
		s.start = s.end
		s.animating = false
		return false
	}
	s.bounds = geom.Lerp(s.start, s.end, t)
	return true
}

// Render updates, then draws the highlight at the current bounds.
func (s *Selector) Render(delta time.Duration) bool {
	more := s.Update(delta)
	tex, err := s.ctx.SelectorTexture()
	if err != nil {
		if !s.texFailed {
			s.ctx.Log.Error().Err(err).Msg("selector not drawn")
			s.texFailed = true
		}
		return more
	}
	s.texFailed = false
	s.ctx.Renderer.RenderQuad(tex, s.bounds)
	return more
}

func (s *Selector) Bounds() geom.Bounds { return s.bounds }
func (s *Selector) Animating() bool     { return s.animating }
