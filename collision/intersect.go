package collision

// Intersects reports whether two world-space volumes overlap. Touching
// boundaries count as overlapping. The result does not depend on argument
// order.
func Intersects(a, b Volume) bool {
	switch a := a.(type) {
	case Rect:
		switch b := b.(type) {
		case Rect:
			return rectRect(a, b)
		case Circle:
			return rectCircle(a, b)
		case Ring:
			return ringRect(b, a)
		}
	case Circle:
		switch b := b.(type) {
		case Rect:
			return rectCircle(b, a)
		case Circle:
			return circleCircle(a, b)
		case Ring:
			return ringCircle(b, a)
		}
	case Ring:
		switch b := b.(type) {
		case Rect:
			return ringRect(a, b)
		case Circle:
			return ringCircle(a, b)
		case Ring:
			return ringRing(a, b)
		}
	}
	return false
}

func rectRect(a, b Rect) bool {
	return a.Bounds().Intersects(b.Bounds())
}

func rectCircle(r Rect, c Circle) bool {
	closest := r.ClosestPoint(c.Center)
	return closest.DistanceSq(c.Center) <= c.Radius*c.Radius
}

func circleCircle(a, b Circle) bool {
	sum := a.Radius + b.Radius
	return a.Center.DistanceSq(b.Center) <= sum*sum
}

// ringRing treats two rings as overlapping when the outer discs touch and the
// holes do not. Offset rings whose bands cross while the holes also overlap
// report false.
func ringRing(a, b Ring) bool {
	return circleCircle(a.Outer, b.Outer) && !circleCircle(a.Inner, b.Inner)
}

// ringCircle is false when the circle sits entirely inside the hole.
func ringCircle(r Ring, c Circle) bool {
	if !circleCircle(r.Outer, c) {
		return false
	}
	return r.Inner.Center.Distance(c.Center)+c.Radius > r.Inner.Radius
}

// ringRect is false when every corner of the rect sits inside the hole.
func ringRect(r Ring, rect Rect) bool {
	if !rectCircle(rect, r.Outer) {
		return false
	}
	for _, corner := range rect.Corners() {
		if !r.Inner.ContainsPoint(corner) {
			return true
		}
	}
	return false
}
