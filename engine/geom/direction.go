package geom

import "math"

// Direction is a compass heading expressed as an angle (0 = up, clockwise).
type Direction float32

const (
	Up    Direction = 0
	Right Direction = math.Pi * 0.5
	Down  Direction = math.Pi
	Left  Direction = math.Pi * 1.5
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}
