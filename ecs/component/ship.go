package component

import (
	"fmt"
	"strings"
)

type ShipType uint8

const (
	ShipInterceptor ShipType = iota
	ShipGunship
	ShipMissileBoat
)

func ParseShipType(s string) (ShipType, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", "")) {
	case "interceptor":
		return ShipInterceptor, nil
	case "gunship":
		return ShipGunship, nil
	case "missileboat":
		return ShipMissileBoat, nil
	}
	return 0, fmt.Errorf("unknown ship type %q", s)
}

type Ship struct {
	Type ShipType
}

var ShipComponent = NewComponent[Ship]()

type Planet struct {
	Mass float64
}

var PlanetComponent = NewComponent[Planet]()
