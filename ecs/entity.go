package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

type Entity = donburi.Entity

// Null never refers to a live entity.
var Null Entity

// entityTag marks every entity made by CreateEntity. donburi entities need at
// least one component; event queues and other feature entities lack it.
var entityTag = donburi.NewTag()

func CreateEntity(w *World) Entity {
	if w == nil {
		return Null
	}
	return w.store.Create(entityTag)
}

// DestroyEntity removes e and its whole subtree immediately. Prefer Despawn
// from inside a system.
func DestroyEntity(w *World, e Entity) bool {
	if !IsAlive(w, e) {
		return false
	}
	for _, child := range w.children[e] {
		DestroyEntity(w, child)
	}
	w.detach(e)
	delete(w.children, e)
	w.store.Remove(e)
	return true
}

// Despawn queues e for destruction after the running system returns.
func Despawn(w *World, e Entity) {
	if !IsAlive(w, e) {
		return
	}
	w.despawn = append(w.despawn, e)
}

func IsAlive(w *World, e Entity) bool {
	return w != nil && e != Null && w.store.Valid(e)
}

// Entities returns every live entity made by CreateEntity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	var out []Entity
	query.NewQuery(filter.Contains(entityTag)).Each(w.store, func(entry *donburi.Entry) {
		out = append(out, entry.Entity())
	})
	return out
}
