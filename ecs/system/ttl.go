package system

import (
	"github.com/milk9111/spacecombat/ecs"
	"github.com/milk9111/spacecombat/ecs/component"
)

// LifetimeSystem counts down Lifetime components and despawns entities whose
// time has run out.
type LifetimeSystem struct{}

func NewLifetimeSystem() *LifetimeSystem {
	return &LifetimeSystem{}
}

func (s *LifetimeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.Delta()
	ecs.ForEach(w, component.LifetimeComponent, func(e ecs.Entity, ttl *component.Lifetime) {
		if ttl == nil {
			return
		}
		ttl.Remaining -= dt
		if ttl.Remaining <= 0 {
			ecs.Despawn(w, e)
		}
	})
}

// GunSystem cools guns down between shots.
type GunSystem struct{}

func NewGunSystem() *GunSystem {
	return &GunSystem{}
}

func (s *GunSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.Delta()
	ecs.ForEach(w, component.GunComponent, func(_ ecs.Entity, g *component.Gun) {
		if g.Cooldown > 0 {
			g.Cooldown -= dt
		}
	})
}
