package component

// Health is the damageable pool of an entity that takes hits directly.
type Health struct {
	Max     float32
	Current float32
}

var HealthComponent = NewComponent[Health]()

func NewHealth(max float32) Health {
	return Health{Max: max, Current: max}
}

// Damage subtracts amount and reports whether the hit was lethal. Current
// never drops below zero.
func (h *Health) Damage(amount float32) bool {
	if h.Current <= amount {
		h.Current = 0
		return true
	}
	h.Current -= amount
	return false
}

// Percent is Current/Max, or zero for an empty pool.
func (h Health) Percent() float32 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

// Damage is a pending hit, applied and removed on the next health pass.
type Damage struct {
	Amount float32
}

var DamageComponent = NewComponent[Damage]()

// Killed marks an entity whose health reached zero. It is never removed.
type Killed struct{}

var KilledComponent = NewComponent[Killed]()

// PropagateHealth mirrors the summed Health of the direct children.
type PropagateHealth struct {
	Max     float32
	Current float32
}

var PropagateHealthComponent = NewComponent[PropagateHealth]()

func (p PropagateHealth) Percent() float32 {
	if p.Max <= 0 {
		return 0
	}
	return p.Current / p.Max
}
