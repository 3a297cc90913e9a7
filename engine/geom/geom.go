// Package geom holds the point, bounds and angle math used for focus navigation.
//
// Bounds are center-origin: X,Y is the middle of the rectangle. Angles are in
// radians with 0 pointing up and increasing clockwise.
package geom

import "math"

type Point struct {
	X, Y float32
}

// Bounds is a center-origin rectangle with a depth.
type Bounds struct {
	X, Y, Z       float32
	Width, Height float32
}

// Rect builds bounds at (x, y) on the z=0 plane.
func Rect(x, y, w, h float32) Bounds {
	return Bounds{X: x, Y: y, Width: w, Height: h}
}

// Center returns the middle of b.
func Center(b Bounds) Point { return Point{X: b.X, Y: b.Y} }

// Distance is the euclidean distance between two points.
func Distance(from, to Point) float32 {
	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)
	return float32(math.Sqrt(dx*dx + dy*dy))
}

// AngleTo returns the direction of to as seen from from, in [0, 2π).
func AngleTo(from, to Point) float32 {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if dy == 0 {
		switch {
		case dx < 0:
			return float32(Left)
		case dx > 0:
			return float32(Right)
		default:
			return float32(Up)
		}
	}
	angle := math.Atan2(float64(dx), float64(dy))
	if dx < 0 {
		angle += 2 * math.Pi
	}
	return float32(angle)
}

// DefaultTolerance is the half-width of the cone used by IsAngleNear.
const DefaultTolerance = float32(math.Pi / 4)

// IsAngleNear reports whether two angles are closer than tolerance, going
// either way around the circle. Equal angles are always near, even with a zero
// tolerance. A NaN tolerance means DefaultTolerance.
func IsAngleNear(from, to, tolerance float32) bool {
	if tolerance != tolerance {
		tolerance = DefaultTolerance
	}
	if from == to {
		return true
	}
	diff := float32(math.Abs(float64(from - to)))
	return diff < tolerance || float32(2*math.Pi)-diff < tolerance
}

// PointInBounds reports whether p lies strictly inside b. Edges are outside.
func PointInBounds(p Point, b Bounds) bool {
	startX := b.X - b.Width/2
	startY := b.Y - b.Height/2
	endX := startX + b.Width
	endY := startY + b.Height
	return startX < p.X && startY < p.Y && endX > p.X && endY > p.Y
}

// Lerp interpolates every field of a towards b by t.
func Lerp(a, b Bounds, t float32) Bounds {
	return Bounds{
		X:      (b.X-a.X)*t + a.X,
		Y:      (b.Y-a.Y)*t + a.Y,
		Z:      (b.Z-a.Z)*t + a.Z,
		Width:  (b.Width-a.Width)*t + a.Width,
		Height: (b.Height-a.Height)*t + a.Height,
	}
}
