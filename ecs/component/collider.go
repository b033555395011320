package component

import "github.com/milk9111/spacecombat/collision"

type Collider = collision.Collider

var ColliderComponent = NewComponent[Collider]()
