package system

import (
	"github.com/milk9111/spacecombat/ecs"
	"github.com/milk9111/spacecombat/ecs/component"
)

// EngineSystem steps every engine mounted on a ship and applies its thrust to
// the ship's Velocity. Main engines push along the heading; thrusters turn.
// A damaged engine delivers thrust in proportion to its remaining health.
type EngineSystem struct{}

func NewEngineSystem() *EngineSystem {
	return &EngineSystem{}
}

func (s *EngineSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.Delta()
	for _, ship := range ecs.Query(w, ecs.With(component.ShipComponent, component.VelocityComponent, component.GlobalTransformComponent)) {
		gt, _ := ecs.Get(w, ship, component.GlobalTransformComponent)
		v, _ := ecs.Get(w, ship, component.VelocityComponent)
		heading := gt.Heading()

		for _, child := range ecs.Children(w, ship) {
			eng, ok := ecs.Get(w, child, component.EngineComponent)
			if !ok {
				continue
			}
			hp := float32(1)
			if h, ok := ecs.Get(w, child, component.HealthComponent); ok {
				hp = h.Percent()
			}
			thrust := eng.Step(dt, hp)
			switch eng.Type {
			case component.EngineMain:
				v.Linear = v.Linear.Add(heading.Mult(thrust * dt))
			case component.EngineThruster:
				v.Angular += thrust * dt
			}
		}
	}
}

// shipEngines returns ship's engine children of type t.
func shipEngines(w *ecs.World, ship ecs.Entity, t component.EngineType) []*component.Engine {
	var out []*component.Engine
	for _, child := range ecs.Children(w, ship) {
		if eng, ok := ecs.Get(w, child, component.EngineComponent); ok && eng.Type == t {
			out = append(out, eng)
		}
	}
	return out
}
