package collision

import (
	"fmt"
	"strings"
)

// Layer is the collision category of a collider.
type Layer uint8

const (
	LayerShip Layer = iota
	LayerShipComponent
	LayerBullet
	LayerSonarPulse
	LayerPlanet
)

var layerNames = [...]string{
	LayerShip:          "ship",
	LayerShipComponent: "ship_component",
	LayerBullet:        "bullet",
	LayerSonarPulse:    "sonar_pulse",
	LayerPlanet:        "planet",
}

var compatibleLayers = [...][]Layer{
	LayerShip:          {LayerBullet, LayerSonarPulse, LayerPlanet},
	LayerShipComponent: {LayerBullet},
	LayerBullet:        {LayerShip, LayerShipComponent},
	LayerSonarPulse:    {LayerShip},
	LayerPlanet:        {LayerShip},
}

// Layers lists every layer in declaration order.
func Layers() []Layer {
	return []Layer{LayerShip, LayerShipComponent, LayerBullet, LayerSonarPulse, LayerPlanet}
}

func (l Layer) Valid() bool {
	return int(l) < len(layerNames)
}

func (l Layer) String() string {
	if !l.Valid() {
		return fmt.Sprintf("layer(%d)", uint8(l))
	}
	return layerNames[l]
}

// Bit is the category bit of the layer.
func (l Layer) Bit() uint32 {
	return 1 << uint32(l)
}

// Compatible returns the layers this layer accepts collisions from.
func (l Layer) Compatible() []Layer {
	if !l.Valid() {
		return nil
	}
	return append([]Layer(nil), compatibleLayers[l]...)
}

// Mask returns the bitmask form of Compatible.
func (l Layer) Mask() uint32 {
	if !l.Valid() {
		return 0
	}
	var mask uint32
	for _, other := range compatibleLayers[l] {
		mask |= other.Bit()
	}
	return mask
}

// ParseLayer accepts the snake_case name or the CamelCase form used by older
// tables ("ShipComponent").
func ParseLayer(name string) (Layer, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "-", "_")
	for i, n := range layerNames {
		if key == n || key == strings.ReplaceAll(n, "_", "") {
			return Layer(i), nil
		}
	}
	return 0, fmt.Errorf("collision: unknown layer %q", name)
}
