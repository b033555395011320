package component

import (
	"fmt"
	"math"
	"strings"
)

type EngineType uint8

const (
	// EngineMain pushes the ship along its heading.
	EngineMain EngineType = iota
	// EngineThruster turns the ship.
	EngineThruster
)

func ParseEngineType(s string) (EngineType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "main":
		return EngineMain, nil
	case "thruster":
		return EngineThruster, nil
	}
	return 0, fmt.Errorf("unknown engine type %q", s)
}

func (t EngineType) String() string {
	if t == EngineThruster {
		return "thruster"
	}
	return "main"
}

type Engine struct {
	Type EngineType
	// ReversePercent is the share of MaxThrust available backwards, 0..1.
	ReversePercent  float64
	MaxThrust       float64
	CurrentThrust   float64
	MaxAcceleration float64
	DesiredThrust   float64
}

var EngineComponent = NewComponent[Engine]()

func NewEngine(t EngineType, maxThrust, maxAcceleration, reversePercent float64) Engine {
	return Engine{
		Type:            t,
		ReversePercent:  math.Max(0, math.Min(1, reversePercent)),
		MaxThrust:       math.Max(0, maxThrust),
		MaxAcceleration: math.Max(0, maxAcceleration),
	}
}

// MinThrust is the most negative thrust the engine can produce.
func (e Engine) MinThrust() float64 {
	return -e.MaxThrust * e.ReversePercent
}

func (e *Engine) SetDesiredThrust(thrust float64) {
	e.DesiredThrust = math.Max(e.MinThrust(), math.Min(e.MaxThrust, thrust))
}

func (e *Engine) AddDesiredThrust(delta float64) {
	e.SetDesiredThrust(e.DesiredThrust + delta)
}

func (e *Engine) FullThrottle() { e.DesiredThrust = e.MaxThrust }
func (e *Engine) MinThrottle()  { e.DesiredThrust = e.MinThrust() }
func (e *Engine) NoThrottle()   { e.DesiredThrust = 0 }
func (e *Engine) HoldThrottle() { e.DesiredThrust = e.CurrentThrust }

// Step moves CurrentThrust toward DesiredThrust. A damaged engine both
// accelerates slower and tops out lower, in proportion to healthPercent.
func (e *Engine) Step(dt float64, healthPercent float32) float64 {
	hp := math.Max(0, math.Min(1, float64(healthPercent)))
	diff := e.DesiredThrust - e.CurrentThrust
	step := math.Min(math.Abs(diff), e.MaxAcceleration*hp*dt)
	if diff < 0 {
		step = -step
	}
	limit := e.MaxThrust * hp
	e.CurrentThrust = math.Max(e.MinThrust()*hp, math.Min(limit, e.CurrentThrust+step))
	return e.CurrentThrust
}
