package ecs

import (
	"github.com/milk9111/spacecombat/ecs/component"
	"github.com/yohamta/donburi"
)

// Add attaches value to e, replacing any existing value of the same kind.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	kind := handle.Kind()
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	entry, ok := w.entry(e)
	if !ok {
		return component.ErrEntityNotAlive
	}
	if entry.HasComponent(kind.Type()) {
		kind.Type().SetValue(entry, *value)
		return nil
	}
	donburi.Add(entry, kind.Type(), value)
	return nil
}

// Get returns a pointer into storage. It is invalidated by any later Add or
// Remove on the same entity.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	kind := handle.Kind()
	if !kind.Valid() {
		return nil, false
	}
	entry, ok := w.entry(e)
	if !ok || !entry.HasComponent(kind.Type()) {
		return nil, false
	}
	return kind.Type().Get(entry), true
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return HasKind(w, e, handle)
}

// HasKind checks presence through the untyped view, for tags and callers
// that do not know T.
func HasKind(w *World, e Entity, kind component.Kind) bool {
	if kind == nil {
		return false
	}
	entry, ok := w.entry(e)
	return ok && kind.In(entry)
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	kind := handle.Kind()
	if !kind.Valid() {
		return false
	}
	entry, ok := w.entry(e)
	if !ok || !entry.HasComponent(kind.Type()) {
		return false
	}
	entry.RemoveComponent(kind.Type())
	return true
}
