package system

import (
	"image/color"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/spacecombat/collision"
	"github.com/milk9111/spacecombat/ecs"
	"github.com/milk9111/spacecombat/ecs/component"
	"github.com/milk9111/spacecombat/ecs/entity"
	"github.com/milk9111/spacecombat/prefabs"
	"github.com/yohamta/donburi"
)

type systemFunc func(w *ecs.World)

func (f systemFunc) Update(w *ecs.World) { f(w) }

func spawnBody(t *testing.T, w *ecs.World, pos cp.Vector, v collision.Volume, layer collision.Layer) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	col := collision.NewCollider(v, layer)
	if err := ecs.Add(w, e, component.ColliderComponent, &col); err != nil {
		t.Fatalf("add collider: %v", err)
	}
	entity.SetTransform(w, e, component.Transform{Position: pos})
	return e
}

func mustCircle(t *testing.T, r float64) collision.Circle {
	t.Helper()
	c, err := collision.NewCircle(r)
	if err != nil {
		t.Fatalf("NewCircle(%v): %v", r, err)
	}
	return c
}

func mustRect(t *testing.T, w, h float64) collision.Rect {
	t.Helper()
	r, err := collision.NewRect(w, h)
	if err != nil {
		t.Fatalf("NewRect(%v, %v): %v", w, h, err)
	}
	return r
}

func hasPair(events []ecs.CollisionEvent, a, b ecs.Entity) bool {
	for _, ev := range events {
		if (ev.A == a && ev.B == b) || (ev.A == b && ev.B == a) {
			return true
		}
	}
	return false
}

func TestCollisionSystem(t *testing.T) {
	w := ecs.NewWorld()

	ship := spawnBody(t, w, cp.Vector{}, mustCircle(t, 10), collision.LayerShip)
	hull := spawnBody(t, w, cp.Vector{}, mustCircle(t, 7), collision.LayerShipComponent)
	bullet := spawnBody(t, w, cp.Vector{X: 9}, mustRect(t, 2, 2), collision.LayerBullet)
	farBullet := spawnBody(t, w, cp.Vector{X: 50}, mustRect(t, 2, 2), collision.LayerBullet)
	planet := spawnBody(t, w, cp.Vector{X: 5}, mustCircle(t, 3), collision.LayerPlanet)

	NewCollisionSystem().Update(w)
	events := ecs.Collisions(w)

	cases := []struct {
		name string
		a, b ecs.Entity
		want bool
	}{
		{"ship and bullet", ship, bullet, true},
		{"hull and bullet", hull, bullet, false},
		{"ship and planet", ship, planet, true},
		{"ship and hull ignore each other", ship, hull, false},
		{"bullet and planet ignore each other", bullet, planet, false},
		{"far bullet misses", ship, farBullet, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := hasPair(events, tc.a, tc.b); got != tc.want {
				t.Fatalf("pair(%v, %v) = %v, want %v; events %v", tc.a, tc.b, got, tc.want, events)
			}
		})
	}

	for _, ev := range events {
		if ev.A == ev.B {
			t.Fatalf("self collision %v", ev)
		}
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
}

func TestHealthSystem(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.HealthComponent, &component.Health{Max: 50, Current: 50})
	s := NewHealthSystem()

	_ = ecs.Add(w, e, component.DamageComponent, &component.Damage{Amount: 20})
	s.Update(w)
	h, _ := ecs.Get(w, e, component.HealthComponent)
	if h.Current != 30 {
		t.Fatalf("current = %v, want 30", h.Current)
	}
	if ecs.Has(w, e, component.DamageComponent) {
		t.Fatalf("damage should be consumed")
	}
	if ecs.Has(w, e, component.KilledComponent) {
		t.Fatalf("not dead yet")
	}

	_ = ecs.Add(w, e, component.DamageComponent, &component.Damage{Amount: 60})
	s.Update(w)
	h, _ = ecs.Get(w, e, component.HealthComponent)
	if h.Current != 0 || !ecs.Has(w, e, component.KilledComponent) {
		t.Fatalf("after lethal hit health = %+v killed = %v", h, ecs.Has(w, e, component.KilledComponent))
	}

	_ = ecs.Add(w, e, component.DamageComponent, &component.Damage{Amount: 5})
	s.Update(w)
	h, _ = ecs.Get(w, e, component.HealthComponent)
	if h.Current != 0 {
		t.Fatalf("killed entity took damage: %+v", h)
	}
	if ecs.Has(w, e, component.DamageComponent) {
		t.Fatalf("damage on a killed entity should still be removed")
	}
}

func TestHealthSystemPropagates(t *testing.T) {
	w := ecs.NewWorld()
	parent := ecs.CreateEntity(w)
	a := ecs.CreateEntity(w)
	b := ecs.CreateEntity(w)
	ecs.AddChild(w, parent, a)
	ecs.AddChild(w, parent, b)
	_ = ecs.Add(w, a, component.HealthComponent, &component.Health{Max: 50, Current: 50})
	_ = ecs.Add(w, b, component.HealthComponent, &component.Health{Max: 30, Current: 30})
	entity.AttachPropagateHealth(w, parent)

	_ = ecs.Add(w, b, component.DamageComponent, &component.Damage{Amount: 20})
	NewHealthSystem().Update(w)

	agg, _ := ecs.Get(w, parent, component.PropagateHealthComponent)
	if agg.Max != 80 || agg.Current != 60 {
		t.Fatalf("aggregate = %+v, want 80/60", agg)
	}
}

type bulletScene struct {
	w       *ecs.World
	shooter ecs.Entity
	hull    ecs.Entity
	target  ecs.Entity
	rock    ecs.Entity
}

func newBulletScene() bulletScene {
	w := ecs.NewWorld()
	s := bulletScene{w: w}
	s.shooter = ecs.CreateEntity(w)
	s.hull = ecs.CreateEntity(w)
	ecs.AddChild(w, s.shooter, s.hull)
	_ = ecs.Add(w, s.hull, component.HealthComponent, &component.Health{Max: 10, Current: 10})
	s.target = ecs.CreateEntity(w)
	_ = ecs.Add(w, s.target, component.HealthComponent, &component.Health{Max: 10, Current: 10})
	s.rock = ecs.CreateEntity(w)
	return s
}

func (s bulletScene) fire(damage float32) ecs.Entity {
	b := ecs.CreateEntity(s.w)
	_ = ecs.Add(s.w, b, component.BulletComponent, &component.Bullet{
		Data:    component.BulletData{Damage: damage},
		Shooter: s.shooter,
	})
	return b
}

func damageOn(w *ecs.World, e ecs.Entity) float32 {
	d, ok := ecs.Get(w, e, component.DamageComponent)
	if !ok {
		return 0
	}
	return d.Amount
}

func TestBulletSystem(t *testing.T) {
	cases := []struct {
		name       string
		hits       func(s bulletScene, b ecs.Entity)
		wantAlive  bool
		wantTarget float32
	}{
		{
			name:      "shooter is ignored",
			hits:      func(s bulletScene, b ecs.Entity) { ecs.PublishCollision(s.w, s.shooter, b) },
			wantAlive: true,
		},
		{
			name:      "shooter child is ignored",
			hits:      func(s bulletScene, b ecs.Entity) { ecs.PublishCollision(s.w, b, s.hull) },
			wantAlive: true,
		},
		{
			name:       "target takes damage",
			hits:       func(s bulletScene, b ecs.Entity) { ecs.PublishCollision(s.w, b, s.target) },
			wantTarget: 4,
		},
		{
			name: "target with health wins over earlier hit",
			hits: func(s bulletScene, b ecs.Entity) {
				ecs.PublishCollision(s.w, s.shooter, b)
				ecs.PublishCollision(s.w, s.rock, b)
				ecs.PublishCollision(s.w, b, s.target)
			},
			wantTarget: 4,
		},
		{
			name: "no health despawns without damage",
			hits: func(s bulletScene, b ecs.Entity) {
				ecs.PublishCollision(s.w, b, s.rock)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newBulletScene()
			b := s.fire(4)
			tc.hits(s, b)

			NewBulletSystem().Update(s.w)
			s.w.FlushDespawns()

			if got := ecs.IsAlive(s.w, b); got != tc.wantAlive {
				t.Fatalf("bullet alive = %v, want %v", got, tc.wantAlive)
			}
			if got := damageOn(s.w, s.target); got != tc.wantTarget {
				t.Fatalf("target damage = %v, want %v", got, tc.wantTarget)
			}
			if damageOn(s.w, s.hull) != 0 || damageOn(s.w, s.shooter) != 0 {
				t.Fatalf("shooter side took damage")
			}
			if ecs.Has(s.w, s.rock, component.DamageComponent) {
				t.Fatalf("rock without health got damage")
			}
		})
	}
}

func TestBulletSystemStacksDamage(t *testing.T) {
	s := newBulletScene()
	b1 := s.fire(3)
	b2 := s.fire(5)
	ecs.PublishCollision(s.w, b1, s.target)
	ecs.PublishCollision(s.w, s.target, b2)

	NewBulletSystem().Update(s.w)
	s.w.FlushDespawns()

	if got := damageOn(s.w, s.target); got != 8 {
		t.Fatalf("stacked damage = %v, want 8", got)
	}
	if ecs.IsAlive(s.w, b1) || ecs.IsAlive(s.w, b2) {
		t.Fatalf("both bullets should be consumed")
	}
}

func TestBulletSystemBulletPair(t *testing.T) {
	s := newBulletScene()
	b1 := s.fire(3)
	b2 := s.fire(5)
	ecs.PublishCollision(s.w, b1, b2)
	ecs.PublishCollision(s.w, b1, s.target)

	NewBulletSystem().Update(s.w)
	s.w.FlushDespawns()

	if ecs.IsAlive(s.w, b1) || ecs.IsAlive(s.w, b2) {
		t.Fatalf("colliding bullets should both despawn")
	}
	if got := damageOn(s.w, s.target); got != 0 {
		t.Fatalf("a bullet consumed by another bullet still dealt %v", got)
	}
}

func TestSonarPulseSystem(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(ecs.StageMain, NewSonarPulseSystem())

	owner := ecs.CreateEntity(w)
	entity.SetTransform(w, owner, component.Transform{})
	sonar := component.NewSonar(component.PulseData{Thickness: 5, Speed: 100, Range: 20})
	_ = ecs.Add(w, owner, component.SonarComponent, &sonar)

	p, ok := entity.EmitPulse(w, owner)
	if !ok {
		t.Fatalf("EmitPulse failed")
	}

	w.Update(0.1)
	col, ok := ecs.Get(w, p, component.ColliderComponent)
	if !ok {
		t.Fatalf("pulse lost its collider")
	}
	ring, ok := col.Volume.(collision.Ring)
	if !ok {
		t.Fatalf("pulse volume = %T, want Ring", col.Volume)
	}
	if math.Abs(ring.Inner.Radius-10) > 1e-9 || math.Abs(ring.Outer.Radius-15) > 1e-9 {
		t.Fatalf("ring = %+v, want 10..15", ring)
	}
	if col.Layer != collision.LayerSonarPulse {
		t.Fatalf("layer changed to %v", col.Layer)
	}
	g, _ := ecs.Get(w, p, component.GraphicComponent)
	if g == nil || g.Shape != collision.Volume(ring) {
		t.Fatalf("graphic not updated: %+v", g)
	}

	w.Update(0.1)
	if ecs.IsAlive(w, p) {
		t.Fatalf("pulse past its range should despawn")
	}
	if entity.PulseInFlight(w, owner) {
		t.Fatalf("no pulse should remain")
	}
}

func TestSonarDetectionSystem(t *testing.T) {
	w := ecs.NewWorld()
	touching := false

	originator := ecs.CreateEntity(w)
	sonar := component.NewSonar(component.PulseData{Thickness: 5, Speed: 10, Range: 100})
	_ = ecs.Add(w, originator, component.SonarComponent, &sonar)
	entity.SetTransform(w, originator, component.Transform{})

	pulse := ecs.CreateEntity(w)
	_ = ecs.Add(w, pulse, component.SonarPulseComponent, &component.SonarPulse{Originator: originator, Data: sonar.Pulse})

	target := ecs.CreateEntity(w)
	child := ecs.CreateEntity(w)
	ecs.AddChild(w, target, child)
	entity.SetTransform(w, target, component.Transform{Position: cp.Vector{X: 7, Y: 3}, Rotation: 1})
	entity.MakeSonarDetectable(w, target)

	w.AddSystem(ecs.StageMain, systemFunc(func(w *ecs.World) {
		if touching {
			ecs.PublishCollision(w, pulse, target)
		}
	}))
	w.AddSystem(ecs.StageMain, NewSonarDetectionSystem())

	var seen []DetectionKind
	DetectionEventType.Subscribe(w.Store(), func(_ donburi.World, ev DetectionEvent) {
		seen = append(seen, ev.Kind)
	})

	visibility := func(e ecs.Entity) component.Visibility {
		v, _ := ecs.Get(w, e, component.VisibilityComponent)
		if v == nil {
			return component.VisibilityInherited
		}
		return *v
	}

	steps := []struct {
		name     string
		touching bool
		events   []DetectionKind
		want     component.Visibility
		detected bool
	}{
		{"untouched stays hidden", false, nil, component.VisibilityHidden, false},
		{"first touch", true, []DetectionKind{FirstDetected, Detected}, component.VisibilityVisible, true},
		{"held touch", true, []DetectionKind{Detected}, component.VisibilityVisible, true},
		{"touch lost", false, []DetectionKind{LastDetected}, component.VisibilityHidden, false},
		{"still lost", false, nil, component.VisibilityHidden, false},
	}
	for _, step := range steps {
		touching = step.touching
		seen = nil
		w.Update(1.0 / 60)

		if len(seen) != len(step.events) {
			t.Fatalf("%s: events = %v, want %v", step.name, seen, step.events)
		}
		for i := range seen {
			if seen[i] != step.events[i] {
				t.Fatalf("%s: events = %v, want %v", step.name, seen, step.events)
			}
		}
		if got := visibility(target); got != step.want {
			t.Fatalf("%s: target visibility = %v, want %v", step.name, got, step.want)
		}
		if got := visibility(child); got != step.want {
			t.Fatalf("%s: child visibility = %v, want %v", step.name, got, step.want)
		}
		d, _ := ecs.Get(w, target, component.SonarDetectableComponent)
		if d.Detected != step.detected {
			t.Fatalf("%s: detected = %v, want %v", step.name, d.Detected, step.detected)
		}
	}

	s, _ := ecs.Get(w, originator, component.SonarComponent)
	snap, ok := s.Detected[target]
	if !ok {
		t.Fatalf("originator has no snapshot of the target")
	}
	if snap.Position != (cp.Vector{X: 7, Y: 3}) || snap.Rotation != 1 || snap.Tick != 3 {
		t.Fatalf("snapshot = %+v, want last touch at tick 3", snap)
	}
}

func TestKilledSystem(t *testing.T) {
	w := ecs.NewWorld()

	ship := ecs.CreateEntity(w)
	alive := ecs.CreateEntity(w)
	dead := ecs.CreateEntity(w)
	ecs.AddChild(w, ship, alive)
	ecs.AddChild(w, ship, dead)
	_ = ecs.Add(w, alive, component.HealthComponent, &component.Health{Max: 10, Current: 5})
	_ = ecs.Add(w, dead, component.HealthComponent, &component.Health{Max: 10, Current: 0})
	_ = ecs.Add(w, dead, component.KilledComponent, &component.Killed{})
	entity.AttachPropagateHealth(w, ship)

	planet := ecs.CreateEntity(w)
	_ = ecs.Add(w, planet, component.KilledComponent, &component.Killed{})

	s := NewKilledSystem()
	s.Update(w)
	w.FlushDespawns()

	if !ecs.IsAlive(w, dead) {
		t.Fatalf("a killed component of a live ship stays as a wreck")
	}
	if ecs.IsAlive(w, planet) {
		t.Fatalf("killed root should despawn")
	}
	if !ecs.IsAlive(w, ship) {
		t.Fatalf("ship with a live component should survive")
	}

	h, _ := ecs.Get(w, alive, component.HealthComponent)
	h.Current = 0
	entity.RecomputePropagateHealth(w, ship)
	s.Update(w)
	w.FlushDespawns()

	if ecs.IsAlive(w, ship) || ecs.IsAlive(w, alive) || ecs.IsAlive(w, dead) {
		t.Fatalf("ship and its components should despawn once all are dead")
	}
}

func TestLifetimeSystem(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(ecs.StageMain, NewLifetimeSystem())

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.LifetimeComponent, &component.Lifetime{Remaining: 0.15})

	w.Update(0.1)
	if !ecs.IsAlive(w, e) {
		t.Fatalf("despawned early")
	}
	w.Update(0.1)
	if ecs.IsAlive(w, e) {
		t.Fatalf("expected despawn once lifetime ran out")
	}
}

func TestMovementAndGravity(t *testing.T) {
	settings := prefabs.Settings{GravityConst: 10, VelocityMax: 10, AngularVelocityMax: 1}
	w := ecs.NewWorld()
	w.AddSystem(ecs.StageBody, NewMovementSystem(settings))
	w.AddSystem(ecs.StageLate, NewTransformSystem())

	e := ecs.CreateEntity(w)
	entity.SetTransform(w, e, component.Transform{})
	_ = ecs.Add(w, e, component.VelocityComponent, &component.Velocity{Linear: cp.Vector{X: 100}, Angular: 5})

	w.Update(0.5)
	gt, _ := ecs.Get(w, e, component.GlobalTransformComponent)
	if gt.Position.Distance(cp.Vector{X: 5}) > 1e-9 {
		t.Fatalf("position = %+v, want (5, 0) after clamping", gt.Position)
	}
	if math.Abs(gt.Rotation-0.5) > 1e-9 {
		t.Fatalf("rotation = %v, want 0.5", gt.Rotation)
	}

	g := ecs.NewWorld()
	g.AddSystem(ecs.StageMain, NewGravitySystem(settings))
	ship := ecs.CreateEntity(g)
	_ = ecs.Add(g, ship, component.ShipComponent, &component.Ship{})
	_ = ecs.Add(g, ship, component.VelocityComponent, &component.Velocity{})
	entity.SetTransform(g, ship, component.Transform{})
	entity.SpawnPlanet(g, cp.Vector{X: 100}, 100)

	g.Update(1)
	v, _ := ecs.Get(g, ship, component.VelocityComponent)
	if math.Abs(v.Linear.X-0.1) > 1e-9 || math.Abs(v.Linear.Y) > 1e-9 {
		t.Fatalf("velocity = %+v, want (0.1, 0)", v.Linear)
	}
}

func spawnEngineShip(t *testing.T, w *ecs.World, engineHealth float32) (ecs.Entity, ecs.Entity) {
	t.Helper()
	ship := ecs.CreateEntity(w)
	_ = ecs.Add(w, ship, component.ShipComponent, &component.Ship{})
	_ = ecs.Add(w, ship, component.VelocityComponent, &component.Velocity{})
	entity.SetTransform(w, ship, component.Transform{})

	eng := ecs.CreateEntity(w)
	ecs.AddChild(w, ship, eng)
	engine := component.NewEngine(component.EngineMain, 10, 100, 0.5)
	_ = ecs.Add(w, eng, component.EngineComponent, &engine)
	_ = ecs.Add(w, eng, component.HealthComponent, &component.Health{Max: 100, Current: engineHealth})
	entity.SetTransform(w, eng, component.Transform{})
	entity.AttachPropagateHealth(w, ship)
	return ship, eng
}

func TestEngineSystem(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(ecs.StageMain, NewEngineSystem())
	ship, eng := spawnEngineShip(t, w, 50)

	e, _ := ecs.Get(w, eng, component.EngineComponent)
	e.FullThrottle()

	w.Update(0.1)
	e, _ = ecs.Get(w, eng, component.EngineComponent)
	if math.Abs(e.CurrentThrust-5) > 1e-9 {
		t.Fatalf("thrust = %v, want 5 at half health", e.CurrentThrust)
	}
	v, _ := ecs.Get(w, ship, component.VelocityComponent)
	if math.Abs(v.Linear.X-0.5) > 1e-9 {
		t.Fatalf("velocity = %+v, want (0.5, 0)", v.Linear)
	}
}

func TestAISystemFlee(t *testing.T) {
	cases := []struct {
		name         string
		engineHealth float32
		wantFleeing  bool
		wantDesired  float64
	}{
		{"critical ship flees", 10, true, 10},
		{"healthy ship cruises", 100, false, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			ship, eng := spawnEngineShip(t, w, tc.engineHealth)
			_ = ecs.Add(w, ship, component.AIBehaviorComponent, &component.AIBehavior{Script: "flee", HealthThreshold: 0.5})

			NewAISystem().Update(w)

			b, _ := ecs.Get(w, ship, component.AIBehaviorComponent)
			if b.Fleeing != tc.wantFleeing {
				t.Fatalf("fleeing = %v, want %v", b.Fleeing, tc.wantFleeing)
			}
			e, _ := ecs.Get(w, eng, component.EngineComponent)
			if e.DesiredThrust != tc.wantDesired {
				t.Fatalf("desired = %v, want %v", e.DesiredThrust, tc.wantDesired)
			}
		})
	}
}

func TestAISystemPulseOnce(t *testing.T) {
	w := ecs.NewWorld()
	ship, _ := spawnEngineShip(t, w, 100)
	sonar := component.NewSonar(component.PulseData{Thickness: 5, Speed: 10, Range: 100})
	_ = ecs.Add(w, ship, component.SonarComponent, &sonar)
	_ = ecs.Add(w, ship, component.AIBehaviorComponent, &component.AIBehavior{Script: "scripts/patrol.tengo"})

	ai := NewAISystem()
	ai.Update(w)
	ai.Update(w)

	pulses := ecs.Query(w, ecs.With(component.SonarPulseComponent))
	if len(pulses) != 1 {
		t.Fatalf("pulses = %d, want 1 in flight", len(pulses))
	}
}

func TestAISystemMissingScript(t *testing.T) {
	w := ecs.NewWorld()
	ship, eng := spawnEngineShip(t, w, 100)
	_ = ecs.Add(w, ship, component.AIBehaviorComponent, &component.AIBehavior{Script: "does_not_exist"})

	ai := NewAISystem()
	ai.Update(w)
	ai.Update(w)

	e, _ := ecs.Get(w, eng, component.EngineComponent)
	if e.DesiredThrust != 0 {
		t.Fatalf("missing script should leave engines alone, desired = %v", e.DesiredThrust)
	}
	ai.Invalidate("does_not_exist.tengo")
	if ai.failed["does_not_exist"] {
		t.Fatalf("Invalidate should clear the failure")
	}
}

func TestVisible(t *testing.T) {
	w := ecs.NewWorld()
	parent := ecs.CreateEntity(w)
	child := ecs.CreateEntity(w)
	loose := ecs.CreateEntity(w)
	if !ecs.AddChild(w, parent, child) {
		t.Fatal("AddChild failed")
	}

	if !Visible(w, loose) {
		t.Fatal("entity without Visibility should be visible")
	}

	inherited := component.VisibilityInherited
	_ = ecs.Add(w, child, component.VisibilityComponent, &inherited)
	hidden := component.VisibilityHidden
	_ = ecs.Add(w, parent, component.VisibilityComponent, &hidden)
	if Visible(w, child) {
		t.Fatal("inherited child of hidden parent should be hidden")
	}

	entity.SetVisibility(w, parent, component.VisibilityVisible)
	if !Visible(w, parent) || !Visible(w, child) {
		t.Fatal("SetVisibility should reveal parent and child")
	}

	own := component.VisibilityHidden
	_ = ecs.Add(w, child, component.VisibilityComponent, &own)
	if Visible(w, child) {
		t.Fatal("child's own Hidden should win over visible parent")
	}
}

func TestFadedStaysPremultiplied(t *testing.T) {
	cases := []color.RGBA{
		{R: 255, G: 255, B: 255, A: 255},
		{R: 200, G: 10, B: 90, A: 200},
		{R: 0, G: 0, B: 0, A: 0},
	}
	for _, c := range cases {
		got := faded(c)
		if got.R > got.A || got.G > got.A || got.B > got.A {
			t.Fatalf("faded(%v) = %v has a channel above alpha", c, got)
		}
		if got.A != c.A/4 {
			t.Fatalf("faded(%v).A = %d, want %d", c, got.A, c.A/4)
		}
	}
}
