package component

import (
	"errors"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// Kind is the untyped view of a component kind, used to build queries and to
// check presence without knowing T.
type Kind interface {
	Filter() filter.LayoutFilter
	In(entry *donburi.Entry) bool
}

type ComponentKind[T any] struct {
	ct *donburi.ComponentType[T]
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{ct: donburi.NewComponentType[T]()}
}

// Type exposes the backing donburi component type.
func (k ComponentKind[T]) Type() *donburi.ComponentType[T] {
	return k.ct
}

func (k ComponentKind[T]) Valid() bool {
	return k.ct != nil
}

func (k ComponentKind[T]) Filter() filter.LayoutFilter {
	return filter.Contains(k.ct)
}

func (k ComponentKind[T]) In(entry *donburi.Entry) bool {
	return entry != nil && k.ct != nil && entry.HasComponent(k.ct)
}

type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}

func (h ComponentHandle[T]) Valid() bool {
	return h.kind.Valid()
}

func (h ComponentHandle[T]) Filter() filter.LayoutFilter {
	return h.kind.Filter()
}

func (h ComponentHandle[T]) In(entry *donburi.Entry) bool {
	return h.kind.In(entry)
}
