package render

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// DrawSystem draws every entity with a transform and either an animation or a
// static sprite, centered on the camera.
type DrawSystem struct{}

func NewDrawSystem() *DrawSystem {
	return &DrawSystem{}
}

type drawable struct {
	e     ecs.Entity
	layer int
}

func (r *DrawSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}

	camX, camY, zoom := 0.0, 0.0, 1.0
	if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		if t, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
			camX, camY = t.X, t.Y
		}
		if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok && cam.Zoom > 0 {
			zoom = cam.Zoom
		}
	}

	var items []drawable
	ecs.ForEach(w, component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Transform) {
		if !ecs.Has(w, e, component.AnimationComponent.Kind()) && !ecs.Has(w, e, component.SpriteComponent.Kind()) {
			return
		}
		layer := 0
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			layer = l.Index
		}
		items = append(items, drawable{e: e, layer: layer})
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	for _, it := range items {
		t, _ := ecs.Get(w, it.e, component.TransformComponent.Kind())
		img := frameImage(w, it.e)
		if img == nil {
			continue
		}

		size := img.Bounds().Size()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(size.X)/2, -float64(size.Y)/2)

		sx, sy := t.ScaleX, t.ScaleY
		if sx == 0 {
			sx = 1
		}
		if sy == 0 {
			sy = 1
		}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Scale(zoom, zoom)
		// World +Y is up, screen +Y is down.
		op.GeoM.Translate((t.X-camX)*zoom+common.BaseWidth/2, -(t.Y-camY)*zoom+common.BaseHeight/2)

		screen.DrawImage(img, op)
	}
}

func frameImage(w *ecs.World, e ecs.Entity) *ebiten.Image {
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		sheet, layout, frame := anim.Frame()
		img := GetImage(sheet)
		if img == nil {
			return nil
		}
		sub, ok := img.SubImage(layout.FrameRect(frame)).(*ebiten.Image)
		if !ok {
			return nil
		}
		return sub
	}
	if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		return GetImage(s.Image)
	}
	return nil
}
