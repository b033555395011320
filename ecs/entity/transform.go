package entity

import (
	"github.com/milk9111/spacecombat/ecs"
	"github.com/milk9111/spacecombat/ecs/component"
)

// SetTransform sets the local transform and brings GlobalTransform up to date
// so the entity collides on the tick it appears.
func SetTransform(w *ecs.World, e ecs.Entity, t component.Transform) {
	if err := ecs.Add(w, e, component.TransformComponent, &t); err != nil {
		return
	}
	refreshGlobal(w, e)
}

// GlobalOf composes e's local transform with its parent's global one.
func GlobalOf(w *ecs.World, e ecs.Entity) (component.GlobalTransform, bool) {
	local, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return component.GlobalTransform{}, false
	}
	parent, ok := ecs.Parent(w, e)
	if !ok {
		return component.GlobalTransform{Position: local.Position, Rotation: local.Rotation}, true
	}
	pg, ok := ecs.Get(w, parent, component.GlobalTransformComponent)
	if !ok {
		return component.GlobalTransform{Position: local.Position, Rotation: local.Rotation}, true
	}
	return component.GlobalTransform{
		Position: pg.Position.Add(local.Position.Rotate(pg.Heading())),
		Rotation: pg.Rotation + local.Rotation,
	}, true
}

func refreshGlobal(w *ecs.World, e ecs.Entity) {
	g, ok := GlobalOf(w, e)
	if !ok {
		return
	}
	_ = ecs.Add(w, e, component.GlobalTransformComponent, &g)
}
