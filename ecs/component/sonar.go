package component

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

type PulseData struct {
	Thickness float64
	Speed     float64
	Range     float64
}

// Snapshot is what a pulse saw of an entity.
type Snapshot struct {
	Position cp.Vector
	Rotation float64
	Velocity cp.Vector
	Tick     uint64
}

type Sonar struct {
	Pulse    PulseData
	Detected map[donburi.Entity]Snapshot
}

var SonarComponent = NewComponent[Sonar]()

func NewSonar(p PulseData) Sonar {
	return Sonar{Pulse: p, Detected: map[donburi.Entity]Snapshot{}}
}

// SonarPulse is the expanding ring emitted by a Sonar.
type SonarPulse struct {
	Originator donburi.Entity
	Elapsed    float64
	Data       PulseData
}

var SonarPulseComponent = NewComponent[SonarPulse]()

// Radii returns the inner and outer radius for the current Elapsed.
func (p SonarPulse) Radii() (inner, outer float64) {
	inner = p.Elapsed * p.Data.Speed
	return inner, inner + p.Data.Thickness
}

// SonarDetectable tracks whether a pulse touched the entity last tick.
type SonarDetectable struct {
	Detected bool
}

var SonarDetectableComponent = NewComponent[SonarDetectable]()
