package core

// QuadOptions are the optional parts of a quad draw.
type QuadOptions struct {
	// Rotation is an axis whose largest component is the angle in radians.
	Rotation [3]float32
	Alpha    float32
}

type QuadOption func(*QuadOptions)

// WithRotation rotates the quad about its centre.
func WithRotation(x, y, z float32) QuadOption {
	return func(o *QuadOptions) { o.Rotation = [3]float32{x, y, z} }
}

func WithAlpha(a float32) QuadOption {
	return func(o *QuadOptions) { o.Alpha = a }
}

// ResolveQuadOptions applies opts over the defaults. A NaN alpha becomes 1.
func ResolveQuadOptions(opts ...QuadOption) QuadOptions {
	o := QuadOptions{Alpha: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Alpha != o.Alpha {
		o.Alpha = 1
	}
	return o
}

// Rotated reports whether any rotation was asked for.
func (o QuadOptions) Rotated() bool {
	return o.Rotation != [3]float32{}
}

// RotationAngle is the largest rotation component, used as the angle about
// the normalised rotation axis.
func (o QuadOptions) RotationAngle() float32 {
	angle := o.Rotation[0]
	for _, v := range o.Rotation[1:] {
		if v > angle {
			angle = v
		}
	}
	return angle
}
