package entity

import (
	"github.com/milk9111/spacecombat/ecs"
	"github.com/milk9111/spacecombat/ecs/component"
	"github.com/milk9111/spacecombat/prefabs"
)

// ShipSpawn describes one ship to assemble.
type ShipSpawn struct {
	Blueprint string
	Type      component.ShipType
	Transform component.Transform
	Velocity  component.Velocity
	// Script names an AI hook script; empty spawns an uncontrolled ship.
	Script          string
	HealthThreshold float32
}

// SpawnShip assembles a ship blueprint and runs the ship attach hooks.
func SpawnShip(w *ecs.World, tables *prefabs.Tables, s ShipSpawn) (ecs.Entity, bool) {
	e, ok := AssembleEntity(w, tables, prefabs.BlueprintShip, s.Blueprint, WithTransformVelocity{
		Transform: s.Transform,
		Velocity:  s.Velocity,
	})
	if !ok {
		return ecs.Null, false
	}
	ship := component.Ship{Type: s.Type}
	_ = ecs.Add(w, e, component.ShipComponent, &ship)
	AttachPropagateHealth(w, e)
	MakeSonarDetectable(w, e)
	if s.Script != "" {
		ai := component.AIBehavior{Script: s.Script, HealthThreshold: s.HealthThreshold}
		_ = ecs.Add(w, e, component.AIBehaviorComponent, &ai)
	}
	return e, true
}

// AttachPropagateHealth adds the aggregate to parent and fills it at once.
func AttachPropagateHealth(w *ecs.World, parent ecs.Entity) {
	if err := ecs.Add(w, parent, component.PropagateHealthComponent, &component.PropagateHealth{}); err != nil {
		return
	}
	RecomputePropagateHealth(w, parent)
}

// RecomputePropagateHealth sums Health over parent's direct children.
func RecomputePropagateHealth(w *ecs.World, parent ecs.Entity) bool {
	agg, ok := ecs.Get(w, parent, component.PropagateHealthComponent)
	if !ok {
		return false
	}
	var sum component.PropagateHealth
	for _, child := range ecs.Children(w, parent) {
		if h, ok := ecs.Get(w, child, component.HealthComponent); ok {
			sum.Max += h.Max
			sum.Current += h.Current
		}
	}
	*agg = sum
	return true
}

// MakeSonarDetectable hides e and its direct children until a pulse finds them.
func MakeSonarDetectable(w *ecs.World, e ecs.Entity) {
	targets := append([]ecs.Entity{e}, ecs.Children(w, e)...)
	for _, t := range targets {
		if !ecs.IsAlive(w, t) {
			continue
		}
		_ = ecs.Add(w, t, component.SonarDetectableComponent, &component.SonarDetectable{})
		hidden := component.VisibilityHidden
		_ = ecs.Add(w, t, component.VisibilityComponent, &hidden)
	}
}

// SetVisibility sets e and its direct children to v.
func SetVisibility(w *ecs.World, e ecs.Entity, v component.Visibility) {
	targets := append([]ecs.Entity{e}, ecs.Children(w, e)...)
	for _, t := range targets {
		vis := v
		_ = ecs.Add(w, t, component.VisibilityComponent, &vis)
	}
}
