package ecs

// CollisionEvent records an unordered pair that overlapped this tick.
type CollisionEvent struct {
	A Entity
	B Entity
}

// Other returns the counterpart of e, if e is part of the event.
func (ev CollisionEvent) Other(e Entity) (Entity, bool) {
	switch e {
	case ev.A:
		return ev.B, true
	case ev.B:
		return ev.A, true
	}
	return Null, false
}

// CollisionEvents buffers this tick's collisions in emission order.
type CollisionEvents struct {
	items []CollisionEvent
}

func (q *CollisionEvents) Push(evt CollisionEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Events returns the buffered events. The slice stays valid after the buffer
// is flushed.
func (q *CollisionEvents) Events() []CollisionEvent {
	if q == nil {
		return nil
	}
	return q.items
}

func (q *CollisionEvents) flush() {
	if q == nil {
		return
	}
	q.items = nil
}

// PublishCollision appends a collision to this tick's buffer.
func PublishCollision(w *World, a, b Entity) {
	if w == nil {
		return
	}
	w.collisions.Push(CollisionEvent{A: a, B: b})
}

// Collisions returns this tick's collisions.
func Collisions(w *World) []CollisionEvent {
	if w == nil {
		return nil
	}
	return w.collisions.Events()
}
