package component

// AIBehavior runs a tengo hook script once per tick for its ship.
type AIBehavior struct {
	Script string
	// HealthThreshold is the PropagateHealth percent below which the ship counts as critical.
	HealthThreshold float32
	Fleeing         bool
}

var AIBehaviorComponent = NewComponent[AIBehavior]()
