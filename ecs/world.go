package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// Stage groups systems. Stages run in ascending order each tick.
type Stage int

const (
	// StageMain holds gameplay: AI, engines, guns, collision and its consumers.
	StageMain Stage = iota
	// StageBody integrates velocities into transforms.
	StageBody
	// StageLate propagates transforms and despawns the dead.
	StageLate

	stageCount
)

// World owns entities, components, the one-level hierarchy index and the
// per-tick collision buffer.
type World struct {
	store  donburi.World
	stages [stageCount]*Scheduler

	parents  map[Entity]Entity
	children map[Entity][]Entity

	collisions CollisionEvents
	despawn    []Entity

	dt   float64
	tick uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	w := &World{
		store:    donburi.NewWorld(),
		parents:  map[Entity]Entity{},
		children: map[Entity][]Entity{},
	}
	for i := range w.stages {
		w.stages[i] = NewScheduler()
	}
	return w
}

// Store exposes the backing donburi world for feature packages such as events.
func (w *World) Store() donburi.World {
	if w == nil {
		return nil
	}
	return w.store
}

// AddSystem appends a system to a stage.
func (w *World) AddSystem(stage Stage, s System) {
	if w == nil || s == nil || stage < 0 || stage >= stageCount {
		return
	}
	w.stages[stage].Add(s)
}

// Update runs one tick of dt seconds. Queued despawns are applied after every
// system; the collision buffer is cleared once all stages have run.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	w.dt = dt
	w.tick++
	for _, s := range w.stages {
		s.run(w)
	}
	events.ProcessAllEvents(w.store)
	w.FlushDespawns()
	w.collisions.flush()
}

// Delta is the duration of the running tick in seconds.
func (w *World) Delta() float64 {
	if w == nil {
		return 0
	}
	return w.dt
}

// Tick counts completed and running updates.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// FlushDespawns destroys every entity queued by Despawn.
func (w *World) FlushDespawns() {
	if w == nil || len(w.despawn) == 0 {
		return
	}
	queued := w.despawn
	w.despawn = nil
	for _, e := range queued {
		DestroyEntity(w, e)
	}
}

func (w *World) entry(e Entity) (*donburi.Entry, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	return w.store.Entry(e), true
}
