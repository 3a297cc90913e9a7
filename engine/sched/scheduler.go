// Package sched coalesces render requests into at most one pending frame.
package sched

import (
	"time"

	"github.com/rs/zerolog"
)

// RenderFunc draws one frame and reports whether it wants another one.
type RenderFunc func(delta time.Duration) bool

type Scheduler struct {
	now     func() time.Time
	render  RenderFunc
	log     zerolog.Logger
	pending   bool
	rendering bool
	last      time.Time
	frames    uint64
}

// New builds a scheduler. A nil now uses time.Now.
func New(now func() time.Time, render RenderFunc, log zerolog.Logger) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{now: now, render: render, log: log, last: now()}
}

// RequestFrame schedules a frame unless one is already pending. The time of
// the request becomes the start of the next frame's delta. Requests made while
// a frame renders measure from the start of that frame.
func (s *Scheduler) RequestFrame() {
	if s.pending {
		return
	}
	if !s.rendering {
		s.last = s.now()
	}
	s.pending = true
}

func (s *Scheduler) Pending() bool { return s.pending }

// Frames counts the frames run so far.
func (s *Scheduler) Frames() uint64 { return s.frames }

// Tick runs the pending frame, if any, and reports whether it ran. When the
// render reports more work the next frame is requested here.
func (s *Scheduler) Tick() bool {
	if !s.pending {
		return false
	}
	prev := s.last
	s.last = s.now()
	delta := s.last.Sub(prev)
	s.pending = false
	s.frames++

	s.rendering = true
	more := s.render(delta)
	if more {
		s.RequestFrame()
	}
	s.rendering = false
	s.log.Trace().Dur("delta", delta).Bool("more", more).Uint64("frame", s.frames).Msg("frame")
	return true
}
