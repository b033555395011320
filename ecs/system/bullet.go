package system

import (
	"github.com/milk9111/spacecombat/ecs"
	"github.com/milk9111/spacecombat/ecs/component"
)

// BulletSystem consumes bullets that collided this tick. A bullet never hits
// its shooter or the shooter's direct children. Among the remaining
// counterparts the first one with Health takes the damage; a bullet that only
// touched things without Health is despawned without dealing any.
type BulletSystem struct{}

func NewBulletSystem() *BulletSystem {
	return &BulletSystem{}
}

func (s *BulletSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	events := ecs.Collisions(w)
	if len(events) == 0 {
		return
	}

	for _, b := range ecs.Query(w, ecs.With(component.BulletComponent)) {
		others := ecs.CollidedWith(events, b)
		if len(others) == 0 {
			continue
		}
		if ecs.HasCollidedWithComponent(w, events, b, component.BulletComponent) {
			ecs.Despawn(w, b)
			continue
		}
		bullet, _ := ecs.Get(w, b, component.BulletComponent)
		target, found := s.pickTarget(w, *bullet, others)
		if !found {
			continue
		}
		ecs.Despawn(w, b)
		if ecs.Has(w, target, component.HealthComponent) {
			applyDamage(w, target, bullet.Data.Damage)
		}
	}
}

func (s *BulletSystem) pickTarget(w *ecs.World, bullet component.Bullet, others []ecs.Entity) (ecs.Entity, bool) {
	fallback, haveFallback := ecs.Null, false
	for _, other := range others {
		if other == bullet.Shooter || ecs.IsChildOf(w, other, bullet.Shooter) {
			continue
		}
		if ecs.Has(w, other, component.HealthComponent) {
			return other, true
		}
		if !haveFallback {
			fallback, haveFallback = other, true
		}
	}
	return fallback, haveFallback
}

// applyDamage queues amount on e, stacking with damage already queued this tick.
func applyDamage(w *ecs.World, e ecs.Entity, amount float32) {
	if d, ok := ecs.Get(w, e, component.DamageComponent); ok {
		d.Amount += amount
		return
	}
	_ = ecs.Add(w, e, component.DamageComponent, &component.Damage{Amount: amount})
}
