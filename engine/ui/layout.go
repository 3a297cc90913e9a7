package ui

import "github.com/hubastard/playground/engine/geom"

type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Stack lays out equally sized boxes along an axis. The first box is centred
// on Origin; each next one is Step units further, rightward for Horizontal
// and downward for Vertical.
type Stack struct {
	Axis          Axis
	Origin        geom.Point
	Width, Height float32
	Step          float32
}

// Place returns the bounds of n boxes in stack order.
func (s Stack) Place(n int) []geom.Bounds {
	out := make([]geom.Bounds, 0, n)
	x, y := s.Origin.X, s.Origin.Y
	for i := 0; i < n; i++ {
		out = append(out, geom.Rect(x, y, s.Width, s.Height))
		if s.Axis == Horizontal {
			x += s.Step
		} else {
			y -= s.Step
		}
	}
	return out
}
