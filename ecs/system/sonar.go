package system

import (
	"log"

	"github.com/milk9111/spacecombat/collision"
	"github.com/milk9111/spacecombat/ecs"
	"github.com/milk9111/spacecombat/ecs/component"
	"github.com/milk9111/spacecombat/ecs/entity"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SonarPulseSystem grows every pulse ring and despawns pulses past their range.
type SonarPulseSystem struct{}

func NewSonarPulseSystem() *SonarPulseSystem {
	return &SonarPulseSystem{}
}

func (s *SonarPulseSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.Delta()
	for _, e := range ecs.Query(w, ecs.With(component.SonarPulseComponent)) {
		p, _ := ecs.Get(w, e, component.SonarPulseComponent)
		p.Elapsed += dt
		inner, outer := p.Radii()
		if outer > p.Data.Range {
			ecs.Despawn(w, e)
			continue
		}

		ring, err := collision.NewRing(inner, outer)
		if err != nil {
			log.Printf("sonar: entity=%d bad ring: %v", e, err)
			ecs.Despawn(w, e)
			continue
		}
		col := collision.NewCollider(ring, collision.LayerSonarPulse)
		if old, ok := ecs.Get(w, e, component.ColliderComponent); ok {
			col = old.WithVolume(ring)
		}
		_ = ecs.Add(w, e, component.ColliderComponent, &col)
		if g, ok := ecs.Get(w, e, component.GraphicComponent); ok {
			g.Shape = ring
		}
	}
}

type DetectionKind uint8

const (
	// Detected fires every tick a pulse touches the target.
	Detected DetectionKind = iota
	// FirstDetected fires when a target goes from unseen to seen.
	FirstDetected
	// LastDetected fires when a target stops being touched by any pulse.
	LastDetected
)

func (k DetectionKind) String() string {
	switch k {
	case FirstDetected:
		return "first_detected"
	case LastDetected:
		return "last_detected"
	}
	return "detected"
}

type DetectionEvent struct {
	Kind   DetectionKind
	Target ecs.Entity
	// Pulse is the touching pulse; zero for LastDetected.
	Pulse component.SonarPulse
}

var DetectionEventType = events.NewEventType[DetectionEvent]()

// SonarDetectionSystem turns pulse collisions into detection transitions.
// Detected snapshots the target into the originator's Sonar; FirstDetected
// reveals the target and LastDetected hides it again.
type SonarDetectionSystem struct {
	subscribed map[*ecs.World]bool
}

func NewSonarDetectionSystem() *SonarDetectionSystem {
	return &SonarDetectionSystem{subscribed: map[*ecs.World]bool{}}
}

func (s *SonarDetectionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	s.subscribe(w)

	collisions := ecs.Collisions(w)
	store := w.Store()
	for _, e := range ecs.Query(w, ecs.With(component.SonarDetectableComponent)) {
		pulse, touched := ecs.CollidedWithComponent(w, collisions, e, component.SonarPulseComponent)
		d, _ := ecs.Get(w, e, component.SonarDetectableComponent)

		switch {
		case touched && !d.Detected:
			DetectionEventType.Publish(store, DetectionEvent{Kind: FirstDetected, Target: e, Pulse: *pulse})
			DetectionEventType.Publish(store, DetectionEvent{Kind: Detected, Target: e, Pulse: *pulse})
		case touched:
			DetectionEventType.Publish(store, DetectionEvent{Kind: Detected, Target: e, Pulse: *pulse})
		case d.Detected:
			DetectionEventType.Publish(store, DetectionEvent{Kind: LastDetected, Target: e})
		}
		d.Detected = touched
	}

	DetectionEventType.ProcessEvents(store)
}

func (s *SonarDetectionSystem) subscribe(w *ecs.World) {
	if s.subscribed[w] {
		return
	}
	s.subscribed[w] = true
	DetectionEventType.Subscribe(w.Store(), func(_ donburi.World, ev DetectionEvent) {
		switch ev.Kind {
		case Detected:
			recordDetection(w, ev)
		case FirstDetected:
			entity.SetVisibility(w, ev.Target, component.VisibilityVisible)
		case LastDetected:
			entity.SetVisibility(w, ev.Target, component.VisibilityHidden)
		}
	})
}

func recordDetection(w *ecs.World, ev DetectionEvent) {
	sonar, ok := ecs.Get(w, ev.Pulse.Originator, component.SonarComponent)
	if !ok {
		return
	}
	gt, ok := ecs.Get(w, ev.Target, component.GlobalTransformComponent)
	if !ok {
		return
	}
	snap := component.Snapshot{Position: gt.Position, Rotation: gt.Rotation, Tick: w.Tick()}
	if v, ok := ecs.Get(w, ev.Target, component.GlobalVelocityComponent); ok {
		snap.Velocity = v.Linear
	}
	if sonar.Detected == nil {
		sonar.Detected = map[ecs.Entity]component.Snapshot{}
	}
	sonar.Detected[ev.Target] = snap
}
