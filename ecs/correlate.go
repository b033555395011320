package ecs

import "github.com/milk9111/spacecombat/ecs/component"

// CollidedWith returns the counterparts of e in events, in emission order.
func CollidedWith(events []CollisionEvent, e Entity) []Entity {
	var out []Entity
	for _, ev := range events {
		if other, ok := ev.Other(e); ok {
			out = append(out, other)
		}
	}
	return out
}

// CollidedWithComponent returns the kind component of the first counterpart
// of e in events that carries one.
func CollidedWithComponent[T any](w *World, events []CollisionEvent, e Entity, kind component.ComponentHandle[T]) (*T, bool) {
	_, v, ok := CollidedWithEntity(w, events, e, kind)
	return v, ok
}

// CollidedWithEntity is CollidedWithComponent that also returns the counterpart.
func CollidedWithEntity[T any](w *World, events []CollisionEvent, e Entity, kind component.ComponentHandle[T]) (Entity, *T, bool) {
	for _, ev := range events {
		other, ok := ev.Other(e)
		if !ok {
			continue
		}
		if v, ok := Get(w, other, kind); ok {
			return other, v, true
		}
	}
	return Null, nil, false
}

// HasCollidedWithComponent reports whether any counterpart of e carries kind.
// It accepts tags and any other kind without a typed lookup.
func HasCollidedWithComponent(w *World, events []CollisionEvent, e Entity, kind component.Kind) bool {
	for _, ev := range events {
		if other, ok := ev.Other(e); ok && HasKind(w, other, kind) {
			return true
		}
	}
	return false
}
