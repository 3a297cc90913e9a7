package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func TestIsAngleNear(t *testing.T) {
	tests := []struct {
		name      string
		from, to  float32
		tolerance float32
		want      bool
	}{
		{"same angle", 1.2, 1.2, DefaultTolerance, true},
		{"same angle zero tolerance", 2.5, 2.5, 0, true},
		{"opposite", 0, math.Pi, DefaultTolerance, false},
		{"wraparound", 0.01, 2*math.Pi - 0.01, DefaultTolerance, true},
		{"wraparound reversed", 2*math.Pi - 0.01, 0.01, DefaultTolerance, true},
		{"just inside", 0, float32(math.Pi/4) - 0.01, DefaultTolerance, true},
		{"nan tolerance uses default", 0, 0.5, float32(math.NaN()), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAngleNear(tt.from, tt.to, tt.tolerance))
		})
	}
}

func TestAngleTo(t *testing.T) {
	origin := Point{}
	tests := []struct {
		name string
		to   Point
		want Direction
	}{
		{"up", Point{0, 5}, Up},
		{"right", Point{5, 0}, Right},
		{"down", Point{0, -5}, Down},
		{"left", Point{-5, 0}, Left},
		{"same point", Point{}, Up},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, float32(tt.want), AngleTo(origin, tt.to), eps)
		})
	}
}

func TestAngleToStaysInRange(t *testing.T) {
	from := Point{10, 10}
	for _, to := range []Point{{11, 20}, {20, 9}, {9, 0}, {0, 11}, {-3, 4}} {
		a := AngleTo(from, to)
		assert.GreaterOrEqual(t, a, float32(0))
		assert.Less(t, a, float32(2*math.Pi))
	}
	// up-left quadrant lands just under a full turn
	assert.InDelta(t, 7*math.Pi/4, AngleTo(Point{}, Point{-1, 1}), eps)
}

func TestPointInBounds(t *testing.T) {
	b := Rect(0, 0, 20, 20)
	assert.True(t, PointInBounds(Point{5, 5}, b))
	assert.False(t, PointInBounds(Point{10, 0}, b), "right edge is excluded")
	assert.False(t, PointInBounds(Point{0, -10}, b), "bottom edge is excluded")
	assert.False(t, PointInBounds(Point{30, 0}, b))
	assert.True(t, PointInBounds(Point{-9.9, 9.9}, b))
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5, Distance(Point{0, 0}, Point{3, 4}), eps)
	assert.InDelta(t, 0, Distance(Point{7, 7}, Point{7, 7}), eps)
}

func TestCenterIsOrigin(t *testing.T) {
	b := Bounds{X: 40, Y: 60, Z: 1, Width: 240, Height: 80}
	assert.Equal(t, Point{40, 60}, Center(b))
}

func TestLerp(t *testing.T) {
	a := Bounds{X: 0, Y: 0, Z: 0, Width: 10, Height: 10}
	b := Bounds{X: 100, Y: -50, Z: 1, Width: 30, Height: 20}

	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))

	mid := Lerp(a, b, 0.5)
	assert.InDelta(t, 50, mid.X, eps)
	assert.InDelta(t, -25, mid.Y, eps)
	assert.InDelta(t, 0.5, mid.Z, eps)
	assert.InDelta(t, 20, mid.Width, eps)
	assert.InDelta(t, 15, mid.Height, eps)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "right", Right.String())
	assert.Equal(t, "down", Down.String())
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "unknown", Direction(1).String())
}
