package component

import (
	"fmt"
	"strings"

	"github.com/yohamta/donburi"
)

type BulletType uint8

const (
	BulletLaser BulletType = iota
	BulletMissile
)

func ParseBulletType(s string) (BulletType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "laser":
		return BulletLaser, nil
	case "missile":
		return BulletMissile, nil
	}
	return 0, fmt.Errorf("unknown bullet type %q", s)
}

type BulletData struct {
	Type   BulletType
	Speed  float64
	Damage float32
}

// Bullet is a live projectile. Shooter is the ship that fired it.
type Bullet struct {
	Data    BulletData
	Shooter donburi.Entity
}

var BulletComponent = NewComponent[Bullet]()

// Gun fires Bullet at up to FireRate shots per second.
type Gun struct {
	Bullet   BulletData
	FireRate float64
	Cooldown float64
}

var GunComponent = NewComponent[Gun]()

// Ready reports whether the cooldown has elapsed.
func (g Gun) Ready() bool {
	return g.Cooldown <= 0
}

// Trigger starts the cooldown for one shot.
func (g *Gun) Trigger() {
	if g.FireRate > 0 {
		g.Cooldown = 1 / g.FireRate
	}
}
