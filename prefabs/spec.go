package prefabs

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v VecSpec) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// Settings are the global simulation knobs plus the opening scenario.
type Settings struct {
	TickRate           int          `yaml:"tick_rate"`
	GravityConst       float64      `yaml:"gravity_const"`
	VelocityMax        float64      `yaml:"velocity_max"`
	AngularVelocityMax float64      `yaml:"angular_velocity_max"`
	Scenario           ScenarioSpec `yaml:"scenario"`
}

type ScenarioSpec struct {
	Ships   []ShipSpawnSpec   `yaml:"ships"`
	Planets []PlanetSpawnSpec `yaml:"planets"`
}

type ShipSpawnSpec struct {
	Blueprint       string  `yaml:"blueprint"`
	ShipType        string  `yaml:"ship_type"`
	Position        VecSpec `yaml:"position"`
	Rotation        float64 `yaml:"rotation"`
	Velocity        VecSpec `yaml:"velocity"`
	AI              string  `yaml:"ai"`
	HealthThreshold float32 `yaml:"health_threshold"`
}

type PlanetSpawnSpec struct {
	Position VecSpec `yaml:"position"`
	Mass     float64 `yaml:"mass"`
}

func DefaultSettings() Settings {
	return Settings{
		TickRate:           60,
		GravityConst:       10,
		VelocityMax:        200,
		AngularVelocityMax: 20,
	}
}

// LoadSettings reads a settings file and fills unset knobs with defaults.
func LoadSettings(filename string) (Settings, error) {
	spec, err := LoadSpec[Settings](filename)
	if err != nil {
		return DefaultSettings(), err
	}
	def := DefaultSettings()
	if spec.TickRate <= 0 {
		spec.TickRate = def.TickRate
	}
	if spec.VelocityMax <= 0 {
		spec.VelocityMax = def.VelocityMax
	}
	if spec.AngularVelocityMax <= 0 {
		spec.AngularVelocityMax = def.AngularVelocityMax
	}
	return spec, nil
}
