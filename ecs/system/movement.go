package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/spacecombat/ecs"
	"github.com/milk9111/spacecombat/ecs/component"
	"github.com/milk9111/spacecombat/ecs/entity"
	"github.com/milk9111/spacecombat/prefabs"
)

// MovementSystem integrates Velocity into Transform, clamping both speeds to
// the configured limits first.
type MovementSystem struct {
	maxLinear  float64
	maxAngular float64
}

func NewMovementSystem(settings prefabs.Settings) *MovementSystem {
	return &MovementSystem{
		maxLinear:  settings.VelocityMax,
		maxAngular: settings.AngularVelocityMax,
	}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.Delta()
	for _, e := range ecs.Query(w, ecs.With(component.VelocityComponent, component.TransformComponent)) {
		v, _ := ecs.Get(w, e, component.VelocityComponent)
		if s.maxLinear > 0 {
			v.Linear = v.Linear.Clamp(s.maxLinear)
		}
		if s.maxAngular > 0 {
			v.Angular = math.Max(-s.maxAngular, math.Min(s.maxAngular, v.Angular))
		}

		t, _ := ecs.Get(w, e, component.TransformComponent)
		t.Position = t.Position.Add(v.Linear.Mult(dt))
		t.Rotation = math.Remainder(t.Rotation+v.Angular*dt, 2*math.Pi)
	}
}

// GravitySystem pulls ships toward planets with an inverse-square force.
type GravitySystem struct {
	g float64
}

func NewGravitySystem(settings prefabs.Settings) *GravitySystem {
	return &GravitySystem{g: settings.GravityConst}
}

type gravityWell struct {
	pos    cp.Vector
	mass   float64
	radius float64
}

func (s *GravitySystem) Update(w *ecs.World) {
	if w == nil || s.g == 0 {
		return
	}

	var wells []gravityWell
	for _, e := range ecs.Query(w, ecs.With(component.PlanetComponent, component.GlobalTransformComponent)) {
		p, _ := ecs.Get(w, e, component.PlanetComponent)
		gt, _ := ecs.Get(w, e, component.GlobalTransformComponent)
		wells = append(wells, gravityWell{pos: gt.Position, mass: p.Mass, radius: entity.PlanetRadius(p.Mass)})
	}
	if len(wells) == 0 {
		return
	}

	dt := w.Delta()
	for _, e := range ecs.Query(w, ecs.With(component.ShipComponent, component.VelocityComponent, component.GlobalTransformComponent)) {
		gt, _ := ecs.Get(w, e, component.GlobalTransformComponent)
		v, _ := ecs.Get(w, e, component.VelocityComponent)
		for _, well := range wells {
			v.Linear = v.Linear.Add(s.pull(gt.Position, well).Mult(dt))
		}
	}
}

// pull is the acceleration toward well. Inside the planet radius the
// distance is held at the radius.
func (s *GravitySystem) pull(pos cp.Vector, well gravityWell) cp.Vector {
	delta := well.pos.Sub(pos)
	d := math.Max(delta.Length(), well.radius)
	if d == 0 {
		return cp.Vector{}
	}
	return delta.Normalize().Mult(s.g * well.mass / (d * d))
}
