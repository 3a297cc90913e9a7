package scene

import (
	"time"

	"github.com/hubastard/playground/engine/input"
)

// KeyState is the part of a keyboard a controller reads.
type KeyState interface {
	IsDown(k input.Key) bool
}

// MoveController: arrows or WASD move, at Speed units per millisecond.
type MoveController struct {
	Speed float32
}

// Step returns the displacement for the keys held over delta.
func (mc MoveController) Step(keys KeyState, delta time.Duration) (dx, dy float32) {
	distance := mc.Speed * float32(delta) / float32(time.Millisecond)

	if keys.IsDown(input.KeyUp) || keys.IsDown(input.KeyW) {
		dy += distance
	}
	if keys.IsDown(input.KeyLeft) || keys.IsDown(input.KeyA) {
		dx -= distance
	}
	if keys.IsDown(input.KeyDown) || keys.IsDown(input.KeyS) {
		dy -= distance
	}
	if keys.IsDown(input.KeyRight) || keys.IsDown(input.KeyD) {
		dx += distance
	}
	return dx, dy
}
