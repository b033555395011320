package ecs

// AddChild makes child a direct child of parent, moving it from any previous
// parent. Children keep insertion order.
func AddChild(w *World, parent, child Entity) bool {
	if !IsAlive(w, parent) || !IsAlive(w, child) || parent == child {
		return false
	}
	if p, ok := w.parents[child]; ok && p == parent {
		return true
	}
	w.detach(child)
	w.parents[child] = parent
	w.children[parent] = append(w.children[parent], child)
	return true
}

// Parent returns the direct parent of e.
func Parent(w *World, e Entity) (Entity, bool) {
	if w == nil {
		return Null, false
	}
	p, ok := w.parents[e]
	return p, ok
}

// Children returns a copy of e's direct children.
func Children(w *World, e Entity) []Entity {
	if w == nil {
		return nil
	}
	return append([]Entity(nil), w.children[e]...)
}

// IsChildOf reports whether e is a direct child of parent.
func IsChildOf(w *World, e, parent Entity) bool {
	p, ok := Parent(w, e)
	return ok && p == parent
}

// Root walks up to the top of e's hierarchy.
func Root(w *World, e Entity) Entity {
	for {
		p, ok := Parent(w, e)
		if !ok {
			return e
		}
		e = p
	}
}

func (w *World) detach(child Entity) {
	parent, ok := w.parents[child]
	if !ok {
		return
	}
	delete(w.parents, child)
	siblings := w.children[parent]
	for i, c := range siblings {
		if c == child {
			w.children[parent] = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
	if len(w.children[parent]) == 0 {
		delete(w.children, parent)
	}
}
