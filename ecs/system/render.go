package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/spacecombat/collision"
	"github.com/milk9111/spacecombat/ecs"
	"github.com/milk9111/spacecombat/ecs/component"
)

const outlineWidth = 1.5

// RenderSystem draws each visible Graphic as an outline at its world position.
// With ShowHidden set, hidden entities are drawn faded instead of skipped.
type RenderSystem struct {
	ShowHidden bool
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	entities := ecs.Query(w, ecs.With(component.GraphicComponent, component.GlobalTransformComponent))
	sort.SliceStable(entities, func(i, j int) bool {
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		visible := Visible(w, e)
		if !visible && !r.ShowHidden {
			continue
		}
		g, _ := ecs.Get(w, e, component.GraphicComponent)
		gt, _ := ecs.Get(w, e, component.GlobalTransformComponent)
		if g.Shape == nil {
			continue
		}
		c := g.Color
		if !visible {
			c = faded(c)
		}
		drawOutline(screen, g.Shape.Translated(gt.Position), c)
	}
}

// Visible resolves Inherited visibility through the parent. Entities with no
// Visibility at all are visible.
func Visible(w *ecs.World, e ecs.Entity) bool {
	for {
		v, ok := ecs.Get(w, e, component.VisibilityComponent)
		if ok && *v != component.VisibilityInherited {
			return *v == component.VisibilityVisible
		}
		parent, ok := ecs.Parent(w, e)
		if !ok {
			return true
		}
		e = parent
	}
}

// faded quarters a premultiplied colour so R, G and B stay within A.
func faded(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 4, G: c.G / 4, B: c.B / 4, A: c.A / 4}
}

func drawOutline(screen *ebiten.Image, v collision.Volume, c color.RGBA) {
	switch s := v.(type) {
	case collision.Circle:
		vector.StrokeCircle(screen, float32(s.Center.X), float32(s.Center.Y), float32(s.Radius), outlineWidth, c, true)
	case collision.Ring:
		if s.Inner.Radius > 0 {
			vector.StrokeCircle(screen, float32(s.Inner.Center.X), float32(s.Inner.Center.Y), float32(s.Inner.Radius), outlineWidth, c, true)
		}
		vector.StrokeCircle(screen, float32(s.Outer.Center.X), float32(s.Outer.Center.Y), float32(s.Outer.Radius), outlineWidth, c, true)
	case collision.Rect:
		lo := s.Min()
		vector.StrokeRect(screen, float32(lo.X), float32(lo.Y), float32(2*s.HalfExtent.X), float32(2*s.HalfExtent.Y), outlineWidth, c, true)
	}
}
