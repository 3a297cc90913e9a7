package ui

import (
	"time"

	"github.com/hubastard/playground/engine/geom"
)

// Focusable is anything a NavList can select and activate. Lists compare
// items by identity, so implementations should be pointers.
type Focusable interface {
	Bounds() geom.Bounds
	Render(delta time.Duration)
	Destroy()
}
