package component

import "github.com/jakecoffman/cp"

// Transform is relative to the parent, or to the world for roots.
type Transform struct {
	Position cp.Vector
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()

// GlobalTransform is the world-space transform, written by the transform pass.
type GlobalTransform struct {
	Position cp.Vector
	Rotation float64
}

var GlobalTransformComponent = NewComponent[GlobalTransform]()

// Heading is the unit vector the rotation points along.
func (t GlobalTransform) Heading() cp.Vector {
	return cp.ForAngle(t.Rotation)
}

type Velocity struct {
	Linear  cp.Vector
	Angular float64
}

var VelocityComponent = NewComponent[Velocity]()

// GlobalVelocity is the observed world-space velocity of the last tick.
type GlobalVelocity struct {
	Linear cp.Vector

	last  cp.Vector
	valid bool
}

var GlobalVelocityComponent = NewComponent[GlobalVelocity]()

// Observe records a new world position and derives Linear from the previous one.
func (v *GlobalVelocity) Observe(pos cp.Vector, dt float64) {
	if v.valid && dt > 0 {
		v.Linear = pos.Sub(v.last).Mult(1 / dt)
	}
	v.last = pos
	v.valid = true
}
