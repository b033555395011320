// Package collision holds the bounding volumes used by the broad-phase and
// their pairwise intersection tests. It knows nothing about entities.
package collision

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

var ErrInvalidShape = errors.New("collision: invalid shape")

// Volume is a bounding volume in either local or world space.
// Implemented by Rect, Circle and Ring only.
type Volume interface {
	// Translated returns a copy moved by offset.
	Translated(offset cp.Vector) Volume
	// Bounds returns the axis-aligned box enclosing the volume.
	Bounds() cp.BB

	volume()
}

// Rect is an axis-aligned box.
type Rect struct {
	Center     cp.Vector
	HalfExtent cp.Vector
}

// NewRect builds a rect centred on the origin from its full width and height.
func NewRect(width, height float64) (Rect, error) {
	if width < 0 || height < 0 {
		return Rect{}, fmt.Errorf("%w: rect %gx%g", ErrInvalidShape, width, height)
	}
	return Rect{HalfExtent: cp.Vector{X: width / 2, Y: height / 2}}, nil
}

func (r Rect) Translated(offset cp.Vector) Volume {
	r.Center = r.Center.Add(offset)
	return r
}

func (r Rect) Bounds() cp.BB {
	return cp.NewBBForExtents(r.Center, r.HalfExtent.X, r.HalfExtent.Y)
}

// Min returns the lower-left corner.
func (r Rect) Min() cp.Vector {
	return r.Center.Sub(r.HalfExtent)
}

// Max returns the upper-right corner.
func (r Rect) Max() cp.Vector {
	return r.Center.Add(r.HalfExtent)
}

// Corners returns the four corners counter-clockwise from Min.
func (r Rect) Corners() [4]cp.Vector {
	lo, hi := r.Min(), r.Max()
	return [4]cp.Vector{
		lo,
		{X: hi.X, Y: lo.Y},
		hi,
		{X: lo.X, Y: hi.Y},
	}
}

// ContainsPoint is inclusive of the boundary.
func (r Rect) ContainsPoint(p cp.Vector) bool {
	lo, hi := r.Min(), r.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// ClosestPoint clamps p into the rect.
func (r Rect) ClosestPoint(p cp.Vector) cp.Vector {
	lo, hi := r.Min(), r.Max()
	return cp.Vector{X: clamp(p.X, lo.X, hi.X), Y: clamp(p.Y, lo.Y, hi.Y)}
}

func (Rect) volume() {}

// Circle is a bounding circle.
type Circle struct {
	Center cp.Vector
	Radius float64
}

func NewCircle(radius float64) (Circle, error) {
	if radius < 0 {
		return Circle{}, fmt.Errorf("%w: circle radius %g", ErrInvalidShape, radius)
	}
	return Circle{Radius: radius}, nil
}

func (c Circle) Translated(offset cp.Vector) Volume {
	c.Center = c.Center.Add(offset)
	return c
}

func (c Circle) Bounds() cp.BB {
	return cp.NewBBForCircle(c.Center, c.Radius)
}

// ContainsPoint is inclusive of the boundary.
func (c Circle) ContainsPoint(p cp.Vector) bool {
	return c.Center.DistanceSq(p) <= c.Radius*c.Radius
}

func (Circle) volume() {}

// Ring is an annulus. Both circles share a centre when built with NewRing.
//
// A ring has no ContainsPoint: containment of a point in the band is not
// needed by any consumer yet.
type Ring struct {
	Inner Circle
	Outer Circle
}

func NewRing(inner, outer float64) (Ring, error) {
	if inner < 0 || outer < inner {
		return Ring{}, fmt.Errorf("%w: ring %g..%g", ErrInvalidShape, inner, outer)
	}
	return Ring{
		Inner: Circle{Radius: inner},
		Outer: Circle{Radius: outer},
	}, nil
}

// Translated moves both circles to the inner circle's centre plus offset.
func (r Ring) Translated(offset cp.Vector) Volume {
	center := r.Inner.Center.Add(offset)
	r.Inner.Center = center
	r.Outer.Center = center
	return r
}

func (r Ring) Bounds() cp.BB {
	return r.Outer.Bounds()
}

// Thickness is the width of the band.
func (r Ring) Thickness() float64 {
	return r.Outer.Radius - r.Inner.Radius
}

func (Ring) volume() {}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
