package system

import (
	"github.com/milk9111/spacecombat/collision"
	"github.com/milk9111/spacecombat/ecs"
	"github.com/milk9111/spacecombat/ecs/component"
)

// CollisionSystem tests every unordered pair of colliders each tick and
// publishes one event per overlapping, layer-compatible pair. It reads shapes
// and positions only.
type CollisionSystem struct {
	bodies []collisionBody
}

type collisionBody struct {
	entity   ecs.Entity
	collider component.Collider
	world    collision.Volume
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	s.bodies = s.bodies[:0]
	for _, e := range ecs.Query(w, ecs.With(component.ColliderComponent, component.GlobalTransformComponent)) {
		col, _ := ecs.Get(w, e, component.ColliderComponent)
		gt, _ := ecs.Get(w, e, component.GlobalTransformComponent)
		if col == nil || gt == nil || col.Volume == nil {
			continue
		}
		s.bodies = append(s.bodies, collisionBody{
			entity:   e,
			collider: *col,
			world:    col.World(gt.Position),
		})
	}

	for i := 0; i < len(s.bodies); i++ {
		a := &s.bodies[i]
		for j := i + 1; j < len(s.bodies); j++ {
			b := &s.bodies[j]
			if !a.collider.CanCollideWith(b.collider) {
				continue
			}
			if collision.Intersects(a.world, b.world) {
				ecs.PublishCollision(w, a.entity, b.entity)
			}
		}
	}
}
