package entity

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/spacecombat/collision"
	"github.com/milk9111/spacecombat/ecs"
	"github.com/milk9111/spacecombat/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	bulletSize     = 2.0
	bulletLifetime = 5.0

	planetHealth = 1000
)

// FireGun spawns one bullet from gun if its cooldown has elapsed. The bullet
// flies along the owning ship's heading and records the ship as its shooter.
func FireGun(w *ecs.World, gun ecs.Entity) (ecs.Entity, bool) {
	g, ok := ecs.Get(w, gun, component.GunComponent)
	if !ok || !g.Ready() {
		return ecs.Null, false
	}
	origin, ok := ecs.Get(w, gun, component.GlobalTransformComponent)
	if !ok {
		return ecs.Null, false
	}
	g.Trigger()
	data := g.Bullet
	pos := origin.Position

	shooter := ecs.Root(w, gun)
	heading := origin.Heading()
	if sg, ok := ecs.Get(w, shooter, component.GlobalTransformComponent); ok {
		heading = sg.Heading()
	}

	b := ecs.CreateEntity(w)
	bullet := component.Bullet{Data: data, Shooter: shooter}
	_ = ecs.Add(w, b, component.BulletComponent, &bullet)

	shape, _ := collision.NewRect(bulletSize, bulletSize)
	collider := collision.NewCollider(shape, collision.LayerBullet)
	_ = ecs.Add(w, b, component.ColliderComponent, &collider)

	c := colornames.Red
	if data.Type == component.BulletMissile {
		c = colornames.Yellow
	}
	_ = ecs.Add(w, b, component.GraphicComponent, &component.Graphic{Shape: shape, Color: c})
	_ = ecs.Add(w, b, component.LifetimeComponent, &component.Lifetime{Remaining: bulletLifetime})
	_ = ecs.Add(w, b, component.VelocityComponent, &component.Velocity{Linear: heading.Mult(data.Speed)})
	SetTransform(w, b, component.Transform{Position: pos, Rotation: math.Atan2(heading.Y, heading.X)})
	return b, true
}

// EmitPulse starts a sonar pulse at the originator's current position.
func EmitPulse(w *ecs.World, originator ecs.Entity) (ecs.Entity, bool) {
	sonar, ok := ecs.Get(w, originator, component.SonarComponent)
	if !ok {
		return ecs.Null, false
	}
	data := sonar.Pulse
	origin, ok := ecs.Get(w, originator, component.GlobalTransformComponent)
	if !ok {
		return ecs.Null, false
	}
	pos := origin.Position

	p := ecs.CreateEntity(w)
	_ = ecs.Add(w, p, component.SonarPulseComponent, &component.SonarPulse{Originator: originator, Data: data})

	ring, err := collision.NewRing(0, math.Max(0, data.Thickness))
	if err != nil {
		ecs.DestroyEntity(w, p)
		return ecs.Null, false
	}
	collider := collision.NewCollider(ring, collision.LayerSonarPulse)
	_ = ecs.Add(w, p, component.ColliderComponent, &collider)
	_ = ecs.Add(w, p, component.GraphicComponent, &component.Graphic{Shape: ring, Color: colornames.Cyan})
	SetTransform(w, p, component.Transform{Position: pos})
	return p, true
}

// PulseInFlight reports whether originator has a live pulse.
func PulseInFlight(w *ecs.World, originator ecs.Entity) bool {
	found := false
	ecs.ForEach(w, component.SonarPulseComponent, func(_ ecs.Entity, p *component.SonarPulse) {
		if p.Originator == originator {
			found = true
		}
	})
	return found
}

// PlanetRadius is the collider radius of a planet of the given mass.
func PlanetRadius(mass float64) float64 {
	return math.Trunc(mass/100) + 1
}

func SpawnPlanet(w *ecs.World, pos cp.Vector, mass float64) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.PlanetComponent, &component.Planet{Mass: mass})

	circle, _ := collision.NewCircle(PlanetRadius(math.Max(0, mass)))
	collider := collision.NewCollider(circle, collision.LayerPlanet)
	_ = ecs.Add(w, e, component.ColliderComponent, &collider)
	_ = ecs.Add(w, e, component.GraphicComponent, &component.Graphic{Shape: circle, Color: colornames.Sandybrown})

	health := component.NewHealth(planetHealth)
	_ = ecs.Add(w, e, component.HealthComponent, &health)
	n := component.Name("planet")
	_ = ecs.Add(w, e, component.NameComponent, &n)
	SetTransform(w, e, component.Transform{Position: pos})
	return e
}
