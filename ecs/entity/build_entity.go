package entity

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/milk9111/spacecombat/collision"
	"github.com/milk9111/spacecombat/ecs"
	"github.com/milk9111/spacecombat/ecs/component"
	"github.com/milk9111/spacecombat/prefabs"
	"golang.org/x/image/colornames"
)

type componentBuildFn func(w *ecs.World, e ecs.Entity, data prefabs.ComponentData) error

var componentRegistry = map[prefabs.ComponentDataKind]componentBuildFn{
	prefabs.ComponentEngine:   addEngine,
	prefabs.ComponentHealth:   addHealth,
	prefabs.ComponentGun:      addGun,
	prefabs.ComponentGraphic:  addGraphic,
	prefabs.ComponentCollider: addCollider,
	prefabs.ComponentSonar:    addSonar,
}

// AddComponents attaches each declarative component to e in list order. A
// component that fails to convert is logged and skipped; the failures are
// returned joined.
func AddComponents(w *ecs.World, e ecs.Entity, components []prefabs.ComponentData) error {
	var errs []error
	for _, data := range components {
		builder, ok := componentRegistry[data.Kind]
		if !ok {
			errs = append(errs, &prefabs.FieldError{Component: data.Kind, Err: prefabs.ErrUnknownComponent})
			log.Printf("entity: %v: skipping component %q: unknown", e, data.Kind)
			continue
		}
		if err := builder(w, e, data); err != nil {
			errs = append(errs, err)
			log.Printf("entity: %v: skipping component %q: %v", e, data.Kind, err)
		}
	}
	return errors.Join(errs...)
}

func addEngine(w *ecs.World, e ecs.Entity, data prefabs.ComponentData) error {
	raw, err := prefabs.DecodeComponentData[prefabs.EngineRaw](data)
	if err != nil {
		return err
	}
	if raw.EngineType == nil {
		return prefabs.FieldNotFound(data.Kind, "engine_type")
	}
	if raw.MaxThrust == nil {
		return prefabs.FieldNotFound(data.Kind, "max_thrust")
	}
	if raw.MaxAcceleration == nil {
		return prefabs.FieldNotFound(data.Kind, "max_acceleration")
	}
	typ, err := component.ParseEngineType(*raw.EngineType)
	if err != nil {
		return prefabs.ConversionFailed(data.Kind, "engine_type", err)
	}
	engine := component.NewEngine(typ, *raw.MaxThrust, *raw.MaxAcceleration, raw.ReversePercent)
	return ecs.Add(w, e, component.EngineComponent, &engine)
}

func addHealth(w *ecs.World, e ecs.Entity, data prefabs.ComponentData) error {
	raw, err := prefabs.DecodeComponentData[prefabs.HealthRaw](data)
	if err != nil {
		return err
	}
	if raw.Max == nil {
		return prefabs.FieldNotFound(data.Kind, "max")
	}
	if *raw.Max <= 0 {
		return prefabs.ConversionFailed(data.Kind, "max", fmt.Errorf("must be positive, got %g", *raw.Max))
	}
	health := component.NewHealth(*raw.Max)
	return ecs.Add(w, e, component.HealthComponent, &health)
}

func addGun(w *ecs.World, e ecs.Entity, data prefabs.ComponentData) error {
	raw, err := prefabs.DecodeComponentData[prefabs.GunRaw](data)
	if err != nil {
		return err
	}
	b := raw.BulletData
	switch {
	case b == nil:
		return prefabs.FieldNotFound(data.Kind, "bullet_data")
	case b.BulletType == "":
		return prefabs.FieldNotFound(data.Kind, "bullet_data.bullet_type")
	case b.Speed == nil:
		return prefabs.FieldNotFound(data.Kind, "bullet_data.speed")
	case b.Damage == nil:
		return prefabs.FieldNotFound(data.Kind, "bullet_data.damage")
	}
	typ, err := component.ParseBulletType(b.BulletType)
	if err != nil {
		return prefabs.ConversionFailed(data.Kind, "bullet_data.bullet_type", err)
	}
	gun := component.Gun{
		Bullet:   component.BulletData{Type: typ, Speed: *b.Speed, Damage: *b.Damage},
		FireRate: raw.GunData.FireRate,
	}
	return ecs.Add(w, e, component.GunComponent, &gun)
}

func addGraphic(w *ecs.World, e ecs.Entity, data prefabs.ComponentData) error {
	spec, err := prefabs.DecodeComponentData[prefabs.GraphicSpec](data)
	if err != nil {
		return err
	}
	shape, err := spec.Shape.Volume()
	if err != nil {
		return prefabs.ConversionFailed(data.Kind, "shape", err)
	}
	c, err := parseColor(spec.Color)
	if err != nil {
		return prefabs.ConversionFailed(data.Kind, "color", err)
	}
	graphic := component.Graphic{Shape: shape, Color: c}
	return ecs.Add(w, e, component.GraphicComponent, &graphic)
}

func addCollider(w *ecs.World, e ecs.Entity, data prefabs.ComponentData) error {
	raw, err := prefabs.DecodeComponentData[prefabs.ColliderRaw](data)
	if err != nil {
		return err
	}
	if raw.Layer == "" {
		return prefabs.FieldNotFound(data.Kind, "layer")
	}
	shape, err := raw.Shape.Volume()
	if err != nil {
		return prefabs.ConversionFailed(data.Kind, "shape", err)
	}
	layer, err := collision.ParseLayer(raw.Layer)
	if err != nil {
		return prefabs.ConversionFailed(data.Kind, "layer", err)
	}
	collider := collision.NewCollider(shape, layer)
	return ecs.Add(w, e, component.ColliderComponent, &collider)
}

func addSonar(w *ecs.World, e ecs.Entity, data prefabs.ComponentData) error {
	raw, err := prefabs.DecodeComponentData[prefabs.SonarRaw](data)
	if err != nil {
		return err
	}
	switch {
	case raw.Thickness == nil:
		return prefabs.FieldNotFound(data.Kind, "thickness")
	case raw.Speed == nil:
		return prefabs.FieldNotFound(data.Kind, "speed")
	case raw.Range == nil:
		return prefabs.FieldNotFound(data.Kind, "range")
	}
	sonar := component.NewSonar(component.PulseData{
		Thickness: *raw.Thickness,
		Speed:     *raw.Speed,
		Range:     *raw.Range,
	})
	return ecs.Add(w, e, component.SonarComponent, &sonar)
}

func parseColor(name string) (color.RGBA, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return colornames.White, nil
	}
	c, ok := colornames.Map[key]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}
