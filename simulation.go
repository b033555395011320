package main

import (
	"log"

	"github.com/milk9111/spacecombat/ecs"
	"github.com/milk9111/spacecombat/ecs/component"
	"github.com/milk9111/spacecombat/ecs/entity"
	"github.com/milk9111/spacecombat/ecs/system"
	"github.com/milk9111/spacecombat/prefabs"
)

// Simulation is the world plus the systems that need outside handles.
type Simulation struct {
	World *ecs.World
	AI    *system.AISystem

	settings prefabs.Settings
}

func NewSimulation(settings prefabs.Settings) *Simulation {
	w := ecs.NewWorld()
	ai := system.NewAISystem()

	w.AddSystem(ecs.StageMain, ai)
	w.AddSystem(ecs.StageMain, system.NewGunSystem())
	w.AddSystem(ecs.StageMain, system.NewEngineSystem())
	w.AddSystem(ecs.StageMain, system.NewGravitySystem(settings))
	w.AddSystem(ecs.StageMain, system.NewSonarPulseSystem())
	w.AddSystem(ecs.StageMain, system.NewCollisionSystem())
	w.AddSystem(ecs.StageMain, system.NewBulletSystem())
	w.AddSystem(ecs.StageMain, system.NewSonarDetectionSystem())
	w.AddSystem(ecs.StageMain, system.NewHealthSystem())
	w.AddSystem(ecs.StageMain, system.NewLifetimeSystem())

	w.AddSystem(ecs.StageBody, system.NewMovementSystem(settings))

	w.AddSystem(ecs.StageLate, system.NewKilledSystem())
	w.AddSystem(ecs.StageLate, system.NewTransformSystem())

	return &Simulation{World: w, AI: ai, settings: settings}
}

// Step advances one fixed tick.
func (s *Simulation) Step() {
	s.World.Update(1 / float64(s.settings.TickRate))
}

// SpawnScenario places the configured ships and planets. Ships whose
// blueprint does not resolve are skipped.
func (s *Simulation) SpawnScenario(tables *prefabs.Tables) int {
	spawned := 0
	for _, p := range s.settings.Scenario.Planets {
		entity.SpawnPlanet(s.World, p.Position.Vector(), p.Mass)
		spawned++
	}
	for _, spec := range s.settings.Scenario.Ships {
		typ, err := component.ParseShipType(spec.ShipType)
		if err != nil {
			log.Printf("scenario: ship %q: %v", spec.Blueprint, err)
			continue
		}
		_, ok := entity.SpawnShip(s.World, tables, entity.ShipSpawn{
			Blueprint:       spec.Blueprint,
			Type:            typ,
			Transform:       component.Transform{Position: spec.Position.Vector(), Rotation: spec.Rotation},
			Velocity:        component.Velocity{Linear: spec.Velocity.Vector()},
			Script:          spec.AI,
			HealthThreshold: spec.HealthThreshold,
		})
		if !ok {
			log.Printf("scenario: ship %q did not spawn", spec.Blueprint)
			continue
		}
		spawned++
	}
	return spawned
}

// Ships counts live ships.
func (s *Simulation) Ships() int {
	return len(ecs.Query(s.World, ecs.With(component.ShipComponent)))
}
