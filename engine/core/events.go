package core

import "github.com/hubastard/playground/engine/input"

// Event model: everything the platform layer reports.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

// EventResize carries the new window size in screen units.
type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  input.Key
	Down bool
	Mods input.Mod
}

func (EventKey) isEvent() {}

// EventMouseMove positions are window units, origin bottom-left.
type EventMouseMove struct{ X, Y float32 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button input.MouseButton
	Down   bool
}

func (EventMouseButton) isEvent() {}

type TouchPhase int

const (
	TouchBegin TouchPhase = iota
	TouchMove
	TouchEnd
)

type EventTouch struct {
	ID    int
	X, Y  float32
	Phase TouchPhase
}

func (EventTouch) isEvent() {}
