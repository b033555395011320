package system

import (
	"github.com/milk9111/spacecombat/ecs"
	"github.com/milk9111/spacecombat/ecs/component"
	"github.com/milk9111/spacecombat/ecs/entity"
)

// TransformSystem writes GlobalTransform for every entity with a Transform,
// parents before children, and updates the observed GlobalVelocity.
type TransformSystem struct{}

func NewTransformSystem() *TransformSystem {
	return &TransformSystem{}
}

func (s *TransformSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.Delta()
	for _, e := range ecs.Query(w, ecs.With(component.TransformComponent)) {
		if parent, ok := ecs.Parent(w, e); ok && ecs.Has(w, parent, component.TransformComponent) {
			continue
		}
		s.propagate(w, e, dt)
	}
}

func (s *TransformSystem) propagate(w *ecs.World, e ecs.Entity, dt float64) {
	g, ok := entity.GlobalOf(w, e)
	if !ok {
		return
	}
	_ = ecs.Add(w, e, component.GlobalTransformComponent, &g)

	if v, ok := ecs.Get(w, e, component.GlobalVelocityComponent); ok {
		v.Observe(g.Position, dt)
	} else {
		var gv component.GlobalVelocity
		gv.Observe(g.Position, dt)
		_ = ecs.Add(w, e, component.GlobalVelocityComponent, &gv)
	}

	for _, child := range ecs.Children(w, e) {
		s.propagate(w, child, dt)
	}
}
