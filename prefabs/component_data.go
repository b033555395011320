package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/spacecombat/collision"
	"gopkg.in/yaml.v3"
)

var (
	ErrFieldNotFound    = errors.New("prefabs: field not found")
	ErrConversionFailed = errors.New("prefabs: conversion failed")
	ErrUnknownComponent = errors.New("prefabs: unknown component")
)

// FieldError reports a declarative field that could not become part of a
// live component. Only the offending component is skipped.
type FieldError struct {
	Component ComponentDataKind
	Field     string
	Err       error
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("%s.%s: %v", e.Component, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func FieldNotFound(kind ComponentDataKind, field string) *FieldError {
	return &FieldError{Component: kind, Field: field, Err: ErrFieldNotFound}
}

func ConversionFailed(kind ComponentDataKind, field string, err error) *FieldError {
	return &FieldError{Component: kind, Field: field, Err: fmt.Errorf("%w: %v", ErrConversionFailed, err)}
}

// ComponentDataKind names a ComponentData variant.
type ComponentDataKind string

const (
	ComponentEngine   ComponentDataKind = "engine"
	ComponentHealth   ComponentDataKind = "health"
	ComponentGun      ComponentDataKind = "gun"
	ComponentGraphic  ComponentDataKind = "graphic"
	ComponentCollider ComponentDataKind = "collider"
	ComponentSonar    ComponentDataKind = "sonar"
)

// ComponentDataKinds lists the closed set of variants in attach order.
func ComponentDataKinds() []ComponentDataKind {
	return []ComponentDataKind{
		ComponentEngine,
		ComponentHealth,
		ComponentGun,
		ComponentGraphic,
		ComponentCollider,
		ComponentSonar,
	}
}

// ComponentData is one declarative component: a single-key mapping whose key
// picks the variant and whose value is decoded lazily, so a malformed
// component fails alone instead of failing the whole table.
type ComponentData struct {
	Kind ComponentDataKind
	node *yaml.Node
}

func (c *ComponentData) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return fmt.Errorf("prefabs: line %d: component must be a single-key mapping", value.Line)
	}
	c.Kind = ComponentDataKind(value.Content[0].Value)
	c.node = value.Content[1]
	return nil
}

// NewComponentData builds a variant from an in-memory raw value.
func NewComponentData(kind ComponentDataKind, raw any) (ComponentData, error) {
	var node yaml.Node
	if err := node.Encode(raw); err != nil {
		return ComponentData{}, fmt.Errorf("prefabs: encode %s: %w", kind, err)
	}
	return ComponentData{Kind: kind, node: &node}, nil
}

// Known reports whether Kind is one of ComponentDataKinds.
func (c ComponentData) Known() bool {
	for _, k := range ComponentDataKinds() {
		if k == c.Kind {
			return true
		}
	}
	return false
}

// DecodeComponentData decodes the variant body into its raw form.
func DecodeComponentData[T any](c ComponentData) (T, error) {
	var out T
	if c.node == nil {
		return out, FieldNotFound(c.Kind, "")
	}
	if err := c.node.Decode(&out); err != nil {
		return out, ConversionFailed(c.Kind, "", err)
	}
	return out, nil
}

type EngineRaw struct {
	EngineType      *string  `yaml:"engine_type"`
	ReversePercent  float64  `yaml:"reverse_percent"`
	MaxThrust       *float64 `yaml:"max_thrust"`
	MaxAcceleration *float64 `yaml:"max_acceleration"`
}

type HealthRaw struct {
	Max *float32 `yaml:"max"`
}

type GunDataSpec struct {
	FireRate float64 `yaml:"fire_rate"`
}

type BulletDataSpec struct {
	BulletType string   `yaml:"bullet_type"`
	Speed      *float64 `yaml:"speed"`
	Damage     *float32 `yaml:"damage"`
}

type GunRaw struct {
	GunData    GunDataSpec     `yaml:"gun_data"`
	BulletData *BulletDataSpec `yaml:"bullet_data"`
}

// GraphicSpec needs no constructor and decodes straight into its final shape.
type GraphicSpec struct {
	Shape ShapeSpec `yaml:"shape"`
	Color string    `yaml:"color"`
}

type ColliderRaw struct {
	Shape ShapeSpec `yaml:"shape"`
	Layer string    `yaml:"layer"`
}

type SonarRaw struct {
	Thickness *float64 `yaml:"thickness"`
	Speed     *float64 `yaml:"speed"`
	Range     *float64 `yaml:"range"`
}

type RectangleSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type CircleSpec struct {
	Radius float64 `yaml:"radius"`
}

type RingSpec struct {
	Inner float64 `yaml:"inner"`
	Outer float64 `yaml:"outer"`
}

// ShapeSpec is a primitive; exactly one field is set.
type ShapeSpec struct {
	Rectangle *RectangleSpec `yaml:"rectangle,omitempty"`
	Circle    *CircleSpec    `yaml:"circle,omitempty"`
	Ring      *RingSpec      `yaml:"ring,omitempty"`
}

// Volume converts the primitive into a local-space bounding volume.
func (s ShapeSpec) Volume() (collision.Volume, error) {
	set := 0
	var v collision.Volume
	var err error
	if s.Rectangle != nil {
		set++
		v, err = collision.NewRect(s.Rectangle.Width, s.Rectangle.Height)
	}
	if s.Circle != nil {
		set++
		v, err = collision.NewCircle(s.Circle.Radius)
	}
	if s.Ring != nil {
		set++
		v, err = collision.NewRing(s.Ring.Inner, s.Ring.Outer)
	}
	switch {
	case set == 0:
		return nil, errors.New("no primitive set")
	case set > 1:
		return nil, errors.New("more than one primitive set")
	case err != nil:
		return nil, err
	}
	return v, nil
}
