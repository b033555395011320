package component

import (
	"image/color"

	"github.com/milk9111/spacecombat/collision"
)

// Graphic is the outline a renderer draws for the entity.
type Graphic struct {
	Shape collision.Volume
	Color color.RGBA
}

var GraphicComponent = NewComponent[Graphic]()
