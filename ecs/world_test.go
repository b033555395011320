package ecs

import (
	"testing"

	"github.com/milk9111/spacecombat/ecs/component"
)

func TestCreateEntityOnFreshWorld(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	if !IsAlive(w, e) {
		t.Fatalf("CreateEntity returned a dead entity")
	}
	if got := Entities(w); len(got) != 1 || got[0] != e {
		t.Fatalf("Entities = %v, want [%v]", got, e)
	}
	h := component.NewHealth(10)
	if err := Add(w, e, component.HealthComponent, &h); err != nil {
		t.Fatalf("Add on fresh entity: %v", err)
	}
	if CreateEntity(nil) != Null {
		t.Fatalf("CreateEntity(nil) should return Null")
	}
}

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for dead entity")
				}
			}
		})
	}
}

func TestAddGetRemove(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	if err := Add(w, e, component.HealthComponent, nil); err == nil {
		t.Fatalf("expected error for nil component")
	}
	h := component.NewHealth(50)
	if err := Add(w, e, component.HealthComponent, &h); err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, ok := Get(w, e, component.HealthComponent)
	if !ok || got.Current != 50 || got.Max != 50 {
		t.Fatalf("Get = %+v, %v", got, ok)
	}

	got.Current = 20
	again, _ := Get(w, e, component.HealthComponent)
	if again.Current != 20 {
		t.Fatalf("mutation through pointer lost: %v", again.Current)
	}

	replaced := component.Health{Max: 10, Current: 5}
	if err := Add(w, e, component.HealthComponent, &replaced); err != nil {
		t.Fatalf("Add replace: %v", err)
	}
	again, _ = Get(w, e, component.HealthComponent)
	if again.Max != 10 || again.Current != 5 {
		t.Fatalf("replace = %+v", again)
	}

	if !Remove(w, e, component.HealthComponent) {
		t.Fatalf("Remove should report true")
	}
	if Has(w, e, component.HealthComponent) {
		t.Fatalf("component still present after Remove")
	}
	if Remove(w, e, component.HealthComponent) {
		t.Fatalf("second Remove should report false")
	}

	DestroyEntity(w, e)
	if err := Add(w, e, component.HealthComponent, &h); err != component.ErrEntityNotAlive {
		t.Fatalf("Add on dead entity = %v, want ErrEntityNotAlive", err)
	}
}

func TestQueryWithout(t *testing.T) {
	w := NewWorld()
	alive := CreateEntity(w)
	dead := CreateEntity(w)
	bare := CreateEntity(w)
	h := component.NewHealth(1)
	_ = Add(w, alive, component.HealthComponent, &h)
	_ = Add(w, dead, component.HealthComponent, &h)
	_ = Add(w, dead, component.KilledComponent, &component.Killed{})

	got := toSet(Query(w, With(component.HealthComponent).Without(component.KilledComponent)))
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if _, ok := got[alive]; !ok {
		t.Fatalf("expected %v in result", alive)
	}
	if _, ok := got[bare]; ok {
		t.Fatalf("entity without health matched")
	}

	count := 0
	ForEach(w, component.HealthComponent, func(e Entity, h *component.Health) {
		count++
		_ = Add(w, e, component.DamageComponent, &component.Damage{Amount: 1})
	})
	if count != 2 {
		t.Fatalf("ForEach visited %d, want 2", count)
	}
	if !Has(w, alive, component.DamageComponent) || !Has(w, dead, component.DamageComponent) {
		t.Fatalf("Add during ForEach lost")
	}
}

func TestHierarchy(t *testing.T) {
	w := NewWorld()
	parent := CreateEntity(w)
	a := CreateEntity(w)
	b := CreateEntity(w)
	grandchild := CreateEntity(w)

	if !AddChild(w, parent, a) || !AddChild(w, parent, b) || !AddChild(w, a, grandchild) {
		t.Fatalf("AddChild failed")
	}
	if AddChild(w, parent, parent) {
		t.Fatalf("self parenting should fail")
	}
	if kids := Children(w, parent); len(kids) != 2 || kids[0] != a || kids[1] != b {
		t.Fatalf("children = %v, want [%v %v]", kids, a, b)
	}
	if !IsChildOf(w, a, parent) || IsChildOf(w, grandchild, parent) {
		t.Fatalf("IsChildOf must only look one level up")
	}
	if Root(w, grandchild) != parent {
		t.Fatalf("Root(grandchild) = %v, want %v", Root(w, grandchild), parent)
	}

	Despawn(w, a)
	if !IsAlive(w, a) {
		t.Fatalf("Despawn must be deferred")
	}
	w.FlushDespawns()
	if IsAlive(w, a) || IsAlive(w, grandchild) {
		t.Fatalf("despawn should remove the subtree")
	}
	if kids := Children(w, parent); len(kids) != 1 || kids[0] != b {
		t.Fatalf("children after despawn = %v, want [%v]", kids, b)
	}

	if AddChild(w, b, grandchild) {
		t.Fatalf("dead entity re-attached")
	}
	other := CreateEntity(w)
	if !AddChild(w, other, b) {
		t.Fatalf("re-parenting a live child failed")
	}
	if IsChildOf(w, b, parent) || !IsChildOf(w, b, other) {
		t.Fatalf("b should have moved under its new parent")
	}
	if kids := Children(w, parent); len(kids) != 0 {
		t.Fatalf("old parent still lists %v", kids)
	}
}

type recordSystem struct {
	name string
	log  *[]string
	fn   func(w *World)
}

func (s recordSystem) Update(w *World) {
	*s.log = append(*s.log, s.name)
	if s.fn != nil {
		s.fn(w)
	}
}

func TestWorldUpdateOrderAndFlush(t *testing.T) {
	w := NewWorld()
	var log []string
	victim := CreateEntity(w)

	w.AddSystem(StageLate, recordSystem{name: "late", log: &log})
	w.AddSystem(StageMain, recordSystem{name: "main", log: &log, fn: func(w *World) {
		PublishCollision(w, victim, victim)
		Despawn(w, victim)
	}})
	w.AddSystem(StageBody, recordSystem{name: "body", log: &log, fn: func(w *World) {
		if IsAlive(w, victim) {
			t.Errorf("despawn not flushed between systems")
		}
		if len(Collisions(w)) != 1 {
			t.Errorf("collisions should survive until the end of the tick")
		}
	}})

	w.Update(0.5)
	if got := len(log); got != 3 || log[0] != "main" || log[1] != "body" || log[2] != "late" {
		t.Fatalf("order = %v", log)
	}
	if len(Collisions(w)) != 0 {
		t.Fatalf("collision buffer not cleared after tick")
	}
	if w.Delta() != 0.5 || w.Tick() != 1 {
		t.Fatalf("delta/tick = %v/%v", w.Delta(), w.Tick())
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}
