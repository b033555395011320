package collision

import "github.com/jakecoffman/cp"

// Collider pairs a local-space volume with its layer. Category and Mask are
// derived from Layer by NewCollider and kept on the value so pair filtering
// is two bit tests.
type Collider struct {
	Volume   Volume
	Layer    Layer
	Category uint32
	Mask     uint32
}

func NewCollider(v Volume, layer Layer) Collider {
	return Collider{
		Volume:   v,
		Layer:    layer,
		Category: layer.Bit(),
		Mask:     layer.Mask(),
	}
}

// CanCollideWith requires both colliders to accept each other's layer.
func (c Collider) CanCollideWith(other Collider) bool {
	return c.Mask&other.Category != 0 && other.Mask&c.Category != 0
}

// WithVolume returns a copy carrying v. Layer data is kept.
func (c Collider) WithVolume(v Volume) Collider {
	c.Volume = v
	return c
}

// World returns the volume moved to the given world translation.
func (c Collider) World(translation cp.Vector) Volume {
	if c.Volume == nil {
		return nil
	}
	return c.Volume.Translated(translation)
}
