package input

import "github.com/hubastard/playground/engine/event"

// KeyChange holds only the keys whose state changed.
type KeyChange map[Key]bool

// ButtonChange holds only the mouse buttons whose state changed.
type ButtonChange map[MouseButton]bool

// MoveDelta is the cursor movement since the previous move event.
type MoveDelta struct {
	X, Y float32
}

type TouchPoint struct {
	X, Y  float32
	Ended bool
}

// TouchChange maps touch identifiers to their new state.
type TouchChange map[int]TouchPoint

// Resize carries the new window size in window units.
type Resize struct {
	Width, Height int
}

// Topics published by the devices in this package.
var (
	OnKey         = event.NewTopic[KeyChange]("keyEvent")
	OnMouseButton = event.NewTopic[ButtonChange]("mouseButton")
	OnMouseMove   = event.NewTopic[MoveDelta]("mouseMove")
	OnTouch       = event.NewTopic[TouchChange]("touch")
	OnTouchMove   = event.NewTopic[TouchChange]("touchMove")
	OnResize      = event.NewTopic[Resize]("resize")
)
