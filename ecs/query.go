package ecs

import (
	"github.com/milk9111/spacecombat/ecs/component"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// Filter selects entities by component presence.
type Filter struct {
	with    []component.Kind
	without []component.Kind
}

func With(kinds ...component.Kind) Filter {
	return Filter{with: kinds}
}

func (f Filter) Without(kinds ...component.Kind) Filter {
	f.without = append(append([]component.Kind(nil), f.without...), kinds...)
	return f
}

func (f Filter) layout() filter.LayoutFilter {
	parts := make([]filter.LayoutFilter, 0, len(f.with)+len(f.without)+1)
	parts = append(parts, filter.Contains())
	for _, k := range f.with {
		parts = append(parts, k.Filter())
	}
	for _, k := range f.without {
		parts = append(parts, filter.Not(k.Filter()))
	}
	return filter.And(parts...)
}

// Query snapshots the matching entities so callers may add, remove or
// despawn while walking the result.
func Query(w *World, f Filter) []Entity {
	if w == nil {
		return nil
	}
	var out []Entity
	query.NewQuery(f.layout()).Each(w.store, func(entry *donburi.Entry) {
		out = append(out, entry.Entity())
	})
	return out
}

// ForEach calls fn for every entity holding kind.
func ForEach[T any](w *World, kind component.ComponentHandle[T], fn func(Entity, *T)) {
	if w == nil || fn == nil || !kind.Valid() {
		return
	}
	for _, e := range Query(w, With(kind)) {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}
