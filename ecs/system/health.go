package system

import (
	"github.com/milk9111/spacecombat/ecs"
	"github.com/milk9111/spacecombat/ecs/component"
	"github.com/milk9111/spacecombat/ecs/entity"
)

// HealthSystem applies pending Damage and refreshes PropagateHealth.
// Each Damage is removed after one pass. A Killed entity drops its Damage
// without losing more health.
type HealthSystem struct{}

func NewHealthSystem() *HealthSystem {
	return &HealthSystem{}
}

func (s *HealthSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, e := range ecs.Query(w, ecs.With(component.DamageComponent, component.HealthComponent)) {
		dmg, _ := ecs.Get(w, e, component.DamageComponent)
		amount := dmg.Amount
		if !ecs.Has(w, e, component.KilledComponent) {
			h, _ := ecs.Get(w, e, component.HealthComponent)
			if h.Damage(amount) {
				_ = ecs.Add(w, e, component.KilledComponent, &component.Killed{})
			}
		}
		ecs.Remove(w, e, component.DamageComponent)
	}

	for _, e := range ecs.Query(w, ecs.With(component.PropagateHealthComponent)) {
		entity.RecomputePropagateHealth(w, e)
	}
}

// KilledSystem despawns killed roots. A ship whose children are all dead is
// killed first; killed ship components stay attached as wrecks.
type KilledSystem struct{}

func NewKilledSystem() *KilledSystem {
	return &KilledSystem{}
}

func (s *KilledSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, e := range ecs.Query(w, ecs.With(component.PropagateHealthComponent).Without(component.KilledComponent)) {
		agg, _ := ecs.Get(w, e, component.PropagateHealthComponent)
		if agg.Max > 0 && agg.Current <= 0 {
			_ = ecs.Add(w, e, component.KilledComponent, &component.Killed{})
		}
	}

	for _, e := range ecs.Query(w, ecs.With(component.KilledComponent)) {
		if _, ok := ecs.Parent(w, e); ok {
			continue
		}
		ecs.Despawn(w, e)
	}
}
