// Package input tracks keyboard, mouse and touch state and publishes every
// change on an event.Bus.
package input

import (
	"github.com/hubastard/playground/engine/event"
	"github.com/hubastard/playground/engine/geom"
)

// Devices bundles the input sources sharing one bus.
type Devices struct {
	Bus      *event.Bus
	Keyboard *Keyboard
	Mouse    *Mouse
	Touch    *TouchScreen
}

func NewDevices(bus *event.Bus) *Devices {
	return &Devices{
		Bus:      bus,
		Keyboard: &Keyboard{bus: bus, down: make(map[Key]bool)},
		Mouse:    &Mouse{bus: bus, buttons: make(map[MouseButton]bool)},
		Touch:    &TouchScreen{bus: bus, touches: make(map[int]TouchPoint)},
	}
}

type Keyboard struct {
	bus  *event.Bus
	down map[Key]bool
}

// Press marks k as held and publishes the change. Repeats publish again.
func (kb *Keyboard) Press(k Key) {
	kb.down[k] = true
	event.Fire(kb.bus, OnKey, KeyChange{k: true})
}

func (kb *Keyboard) Release(k Key) {
	delete(kb.down, k)
	event.Fire(kb.bus, OnKey, KeyChange{k: false})
}

func (kb *Keyboard) IsDown(k Key) bool { return kb.down[k] }

// State returns a copy of the held keys.
func (kb *Keyboard) State() map[Key]bool {
	out := make(map[Key]bool, len(kb.down))
	for k, v := range kb.down {
		out[k] = v
	}
	return out
}

// Mouse positions use window units with the origin at the bottom-left.
type Mouse struct {
	bus     *event.Bus
	x, y    float32
	buttons map[MouseButton]bool
}

func (m *Mouse) Press(b MouseButton) {
	m.buttons[b] = true
	event.Fire(m.bus, OnMouseButton, ButtonChange{b: true})
}

func (m *Mouse) Release(b MouseButton) {
	m.buttons[b] = false
	event.Fire(m.bus, OnMouseButton, ButtonChange{b: false})
}

// MoveTo sets the cursor position and publishes the delta.
func (m *Mouse) MoveTo(x, y float32) {
	d := MoveDelta{X: x - m.x, Y: y - m.y}
	m.x, m.y = x, y
	event.Fire(m.bus, OnMouseMove, d)
}

func (m *Mouse) Position() geom.Point      { return geom.Point{X: m.x, Y: m.y} }
func (m *Mouse) IsDown(b MouseButton) bool { return m.buttons[b] }

type TouchScreen struct {
	bus     *event.Bus
	touches map[int]TouchPoint
}

func (ts *TouchScreen) Start(id int, x, y float32) {
	p := TouchPoint{X: x, Y: y}
	ts.touches[id] = p
	event.Fire(ts.bus, OnTouch, TouchChange{id: p})
}

// Move updates a live touch. Unknown ids are ignored.
func (ts *TouchScreen) Move(id int, x, y float32) {
	if _, ok := ts.touches[id]; !ok {
		return
	}
	p := TouchPoint{X: x, Y: y}
	ts.touches[id] = p
	event.Fire(ts.bus, OnTouchMove, TouchChange{id: p})
}

func (ts *TouchScreen) End(id int, x, y float32) {
	delete(ts.touches, id)
	event.Fire(ts.bus, OnTouch, TouchChange{id: {X: x, Y: y, Ended: true}})
}

// Active returns the number of touches currently held.
func (ts *TouchScreen) Active() int { return len(ts.touches) }
