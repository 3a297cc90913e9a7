// Package scene holds the 2D projection and transforms shared by renderers,
// plus small controllers that move things around it.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/hubastard/playground/engine/core"
	"github.com/hubastard/playground/engine/geom"
)

// Camera is an orthographic projection over a window measured in screen
// units, with the origin at the bottom-left corner.
type Camera struct {
	Width, Height float32
	Near, Far     float32
	proj          mgl32.Mat4
	dirty         bool
}

func NewCamera(width, height float32) *Camera {
	c := &Camera{Width: width, Height: height, Near: 0, Far: 1}
	c.Recalculate()
	return c
}

func (c *Camera) SetViewport(width, height float32) {
	c.Width, c.Height = width, height
	c.dirty = true
}

func (c *Camera) Projection() mgl32.Mat4 {
	if c.dirty {
		c.Recalculate()
	}
	return c.proj
}

func (c *Camera) Recalculate() {
	c.proj = mgl32.Ortho(0, c.Width, 0, c.Height, c.Near, c.Far)
	c.dirty = false
}

// ModelView places a unit-centred quad at b and applies the optional rotation
// about the normalised rotation vector by its largest component.
func ModelView(b geom.Bounds, opts core.QuadOptions) mgl32.Mat4 {
	m := mgl32.Translate3D(b.X, b.Y, b.Z)
	if !opts.Rotated() {
		return m
	}
	axis := mgl32.Vec3(opts.Rotation)
	if axis.Len() == 0 {
		return m
	}
	return m.Mul4(mgl32.HomogRotate3D(opts.RotationAngle(), axis.Normalize()))
}

// QuadTexCoords pairs with QuadCoords; v=0 is the top row of the image.
var QuadTexCoords = [12]float32{
	0, 1,
	0, 0,
	1, 1,

	0, 0,
	1, 1,
	1, 0,
}

var quadCenter = [18]float32{
	-1, -1, 0,
	-1, 1, 0,
	1, -1, 0,

	-1, 1, 0,
	1, -1, 0,
	1, 1, 0,
}

// QuadCoords returns two triangles covering a width×height rectangle centred
// on the origin.
func QuadCoords(width, height float32) [18]float32 {
	q := quadCenter
	w, h := width*0.5, height*0.5
	for i := 0; i < len(q); i += 3 {
		q[i] *= w
		q[i+1] *= h
	}
	return q
}
