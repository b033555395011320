package system

import (
	"fmt"
	"math"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/spacecombat/ecs"
	"github.com/milk9111/spacecombat/ecs/component"
	"github.com/milk9111/spacecombat/prefabs"
)

// noShipDistance is what nearest_ship_distance reports when alone.
const noShipDistance = 1e9

type aiScriptRuntime struct {
	scriptPath string
	compiled   *tengo.Compiled
}

// shipIntent collects what a script asked for during one run. It is applied
// after the script returns so hooks never mutate the world mid-run.
type shipIntent struct {
	flee     bool
	fire     bool
	pulse    bool
	throttle *float64
	turn     *float64
}

func loadScriptRuntime(name string) (*aiScriptRuntime, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("empty script name")
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	_ = script.Add("ship", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	return &aiScriptRuntime{scriptPath: name, compiled: compiled}, nil
}

// CompileScript loads and compiles a hook script without running it.
func CompileScript(name string) error {
	_, err := loadScriptRuntime(name)
	return err
}

func (rt *aiScriptRuntime) run(engine *tengo.ImmutableMap) error {
	if rt == nil || rt.compiled == nil {
		return fmt.Errorf("nil script runtime")
	}
	if err := rt.compiled.Set("ship", engine); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func buildShipScriptEngine(w *ecs.World, ship ecs.Entity, behavior component.AIBehavior, intent *shipIntent) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["has_child_health"] = &tengo.UserFunction{Name: "has_child_health", Value: func(args ...tengo.Object) (tengo.Object, error) {
		for _, child := range ecs.Children(w, ship) {
			if ecs.Has(w, child, component.HealthComponent) {
				return tengo.TrueValue, nil
			}
		}
		return tengo.FalseValue, nil
	}}

	values["health_percent"] = &tengo.UserFunction{Name: "health_percent", Value: func(args ...tengo.Object) (tengo.Object, error) {
		agg, ok := ecs.Get(w, ship, component.PropagateHealthComponent)
		if !ok {
			return &tengo.Float{Value: 0}, nil
		}
		return &tengo.Float{Value: float64(agg.Percent())}, nil
	}}

	values["threshold"] = &tengo.UserFunction{Name: "threshold", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: float64(behavior.HealthThreshold)}, nil
	}}

	values["fleeing"] = &tengo.UserFunction{Name: "fleeing", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if behavior.Fleeing {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["nearest_ship_distance"] = &tengo.UserFunction{Name: "nearest_ship_distance", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: nearestShipDistance(w, ship)}, nil
	}}

	values["flee"] = &tengo.UserFunction{Name: "flee", Value: func(args ...tengo.Object) (tengo.Object, error) {
		intent.flee = true
		return tengo.TrueValue, nil
	}}

	values["fire"] = &tengo.UserFunction{Name: "fire", Value: func(args ...tengo.Object) (tengo.Object, error) {
		intent.fire = true
		return tengo.TrueValue, nil
	}}

	values["pulse"] = &tengo.UserFunction{Name: "pulse", Value: func(args ...tengo.Object) (tengo.Object, error) {
		intent.pulse = true
		return tengo.TrueValue, nil
	}}

	values["throttle"] = &tengo.UserFunction{Name: "throttle", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		f, ok := objectAsFloat(args[0])
		if !ok {
			return tengo.FalseValue, nil
		}
		intent.throttle = &f
		return tengo.TrueValue, nil
	}}

	values["turn"] = &tengo.UserFunction{Name: "turn", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		f, ok := objectAsFloat(args[0])
		if !ok {
			return tengo.FalseValue, nil
		}
		intent.turn = &f
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func nearestShipDistance(w *ecs.World, ship ecs.Entity) float64 {
	self, ok := ecs.Get(w, ship, component.GlobalTransformComponent)
	if !ok {
		return noShipDistance
	}
	best := noShipDistance
	for _, other := range ecs.Query(w, ecs.With(component.ShipComponent, component.GlobalTransformComponent)) {
		if other == ship {
			continue
		}
		gt, _ := ecs.Get(w, other, component.GlobalTransformComponent)
		best = math.Min(best, self.Position.Distance(gt.Position))
	}
	return best
}

func objectAsFloat(obj tengo.Object) (float64, bool) {
	if obj == nil {
		return 0, false
	}
	switch v := obj.(type) {
	case *tengo.Float:
		return v.Value, true
	case *tengo.Int:
		return float64(v.Value), true
	default:
		return tengo.ToFloat64(obj)
	}
}
