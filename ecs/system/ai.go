package system

import (
	"log"
	"strings"
	"sync"

	"github.com/milk9111/spacecombat/ecs"
	"github.com/milk9111/spacecombat/ecs/component"
	"github.com/milk9111/spacecombat/ecs/entity"
)

// AISystem runs each ship's hook script once per tick. Scripts are compiled
// once per name and shared between ships; Invalidate drops a compiled script
// so the next tick picks up an edited copy.
type AISystem struct {
	mu          sync.Mutex
	scriptCache map[string]*aiScriptRuntime
	failed      map[string]bool
}

func NewAISystem() *AISystem {
	return &AISystem{
		scriptCache: map[string]*aiScriptRuntime{},
		failed:      map[string]bool{},
	}
}

// Invalidate forgets the compiled copy of a script. Safe to call from the
// file watcher goroutine.
func (s *AISystem) Invalidate(name string) {
	key := scriptKey(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.scriptCache, key)
	delete(s.failed, key)
}

func (s *AISystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, ship := range ecs.Query(w, ecs.With(component.AIBehaviorComponent, component.ShipComponent).Without(component.KilledComponent)) {
		b, _ := ecs.Get(w, ship, component.AIBehaviorComponent)
		behavior := *b

		rt := s.runtime(behavior.Script)
		if rt == nil {
			continue
		}

		var intent shipIntent
		if err := rt.run(buildShipScriptEngine(w, ship, behavior, &intent)); err != nil {
			log.Printf("ai: entity=%d script %s error: %v", ship, behavior.Script, err)
			continue
		}
		s.apply(w, ship, intent)
	}
}

func (s *AISystem) runtime(name string) *aiScriptRuntime {
	key := scriptKey(name)
	s.mu.Lock()
	defer s.mu.Unlock()

	if rt, ok := s.scriptCache[key]; ok {
		return rt
	}
	if s.failed[key] {
		return nil
	}
	rt, err := loadScriptRuntime(name)
	if err != nil {
		log.Printf("ai: load script %s: %v", name, err)
		s.failed[key] = true
		return nil
	}
	s.scriptCache[key] = rt
	return rt
}

func (s *AISystem) apply(w *ecs.World, ship ecs.Entity, intent shipIntent) {
	if intent.flee {
		for _, eng := range shipEngines(w, ship, component.EngineMain) {
			eng.FullThrottle()
		}
		for _, eng := range shipEngines(w, ship, component.EngineThruster) {
			eng.NoThrottle()
		}
	} else {
		if intent.throttle != nil {
			for _, eng := range shipEngines(w, ship, component.EngineMain) {
				eng.SetDesiredThrust(*intent.throttle * eng.MaxThrust)
			}
		}
		if intent.turn != nil {
			for _, eng := range shipEngines(w, ship, component.EngineThruster) {
				eng.SetDesiredThrust(*intent.turn * eng.MaxThrust)
			}
		}
	}

	if b, ok := ecs.Get(w, ship, component.AIBehaviorComponent); ok {
		b.Fleeing = intent.flee
	}

	if intent.fire && !intent.flee {
		for _, child := range ecs.Children(w, ship) {
			if ecs.Has(w, child, component.GunComponent) {
				entity.FireGun(w, child)
			}
		}
	}

	if intent.pulse && !entity.PulseInFlight(w, ship) {
		entity.EmitPulse(w, ship)
	}
}

// scriptKey normalises "flee", "flee.tengo" and "scripts/flee.tengo" to one key.
func scriptKey(name string) string {
	s := strings.TrimSpace(name)
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSuffix(s, ".tengo")
}
