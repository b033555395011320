package entity

import (
	"log"

	"github.com/milk9111/spacecombat/ecs"
	"github.com/milk9111/spacecombat/ecs/component"
	"github.com/milk9111/spacecombat/prefabs"
)

// Extras are caller-supplied components applied to an assembled parent.
type Extras interface {
	Apply(w *ecs.World, e ecs.Entity)
}

// Normal adds nothing.
type Normal struct{}

func (Normal) Apply(*ecs.World, ecs.Entity) {}

// WithTransform places the parent.
type WithTransform struct {
	Transform component.Transform
}

func (x WithTransform) Apply(w *ecs.World, e ecs.Entity) {
	SetTransform(w, e, x.Transform)
}

// WithTransformVelocity places the parent and sets it moving.
type WithTransformVelocity struct {
	Transform component.Transform
	Velocity  component.Velocity
}

func (x WithTransformVelocity) Apply(w *ecs.World, e ecs.Entity) {
	SetTransform(w, e, x.Transform)
	v := x.Velocity
	_ = ecs.Add(w, e, component.VelocityComponent, &v)
}

// AssembleEntity builds the blueprint key/name into a parent entity with one
// child per child reference. The order is: direct components, module merges,
// children, then the parent's Name and extras. A later write of the same
// component replaces the earlier one. A blueprint miss spawns nothing; a
// missing module or child is skipped.
func AssembleEntity(w *ecs.World, tables *prefabs.Tables, key, name string, extras Extras) (ecs.Entity, bool) {
	if w == nil || tables == nil {
		return ecs.Null, false
	}
	entry, ok := tables.Blueprints.Resolve(key, name)
	if !ok {
		return ecs.Null, false
	}

	e := ecs.CreateEntity(w)
	_ = AddComponents(w, e, entry.Components)
	for _, ref := range entry.Modules {
		InsertFromData(w, e, tables.Data, ref)
	}

	for _, ref := range entry.Children {
		child := ecs.CreateEntity(w)
		if !InsertFromData(w, child, tables.Data, ref) {
			ecs.DestroyEntity(w, child)
			continue
		}
		ecs.AddChild(w, e, child)
		SetTransform(w, child, component.Transform{})
	}

	n := component.Name(entry.EntryName())
	_ = ecs.Add(w, e, component.NameComponent, &n)
	if extras == nil {
		extras = Normal{}
	}
	extras.Apply(w, e)
	for _, child := range ecs.Children(w, e) {
		refreshGlobal(w, child)
	}
	return e, true
}

// InsertFromData merges a data entry's components and Name into e.
func InsertFromData(w *ecs.World, e ecs.Entity, data *prefabs.Registry[prefabs.DataEntry], ref prefabs.TableRef) bool {
	if data == nil {
		return false
	}
	entry, ok := data.Resolve(ref.Table, ref.Entry)
	if !ok {
		log.Printf("entity: %v: skipping %s", e, ref)
		return false
	}
	_ = AddComponents(w, e, entry.Components)
	n := component.Name(entry.EntryName())
	_ = ecs.Add(w, e, component.NameComponent, &n)
	return true
}
