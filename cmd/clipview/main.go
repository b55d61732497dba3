package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/topdown/clock"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/ecs/entity"
	"github.com/milk9111/topdown/ecs/render"
	"github.com/milk9111/topdown/ecs/system"
	"github.com/milk9111/topdown/prefabs"
)

const viewSize = 512

// clipViewer plays every clip of a prefab's table, one at a time.
type clipViewer struct {
	table *component.ClipTable
	keys  []component.ClipKey
	index int
	state component.AnimationRuntimeState
	step  clock.Source
	scale float64
}

func (v *clipViewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		v.index = (v.index + 1) % len(v.keys)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		v.index = (v.index + len(v.keys) - 1) % len(v.keys)
	}

	key := v.keys[v.index]
	next, _, err := system.StepAnimation(v.table, v.state, key.Activity, key.Facing, v.step.Elapsed())
	if err != nil {
		return err
	}
	v.state = next
	return nil
}

func (v *clipViewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x28, 0xff})

	s := v.state
	sheet := render.GetImage(s.Sheet)
	if sheet != nil {
		frame := sheet.SubImage(s.Layout.FrameRect(s.Frame)).(*ebiten.Image)
		fw, fh := float64(s.Layout.FrameW)*v.scale, float64(s.Layout.FrameH)*v.scale
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(v.scale, v.scale)
		op.GeoM.Translate((viewSize-fw)/2, (viewSize-fh)/2)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(frame, op)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  [%d/%d]\n%s frames %d-%d @%dfps\nframe %d\n<-/-> to switch",
		v.keys[v.index], v.index+1, len(v.keys), s.Sheet, s.Clip.FirstFrame, s.Clip.LastFrame, s.Clip.FPS, s.Frame))
}

func (v *clipViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func allKeys() []component.ClipKey {
	var keys []component.ClipKey
	for _, a := range []component.ActivityState{component.ActivityIdle, component.ActivityMoving} {
		for _, f := range []component.FacingDirection{component.FacingDown, component.FacingUp, component.FacingLeft, component.FacingRight} {
			keys = append(keys, component.ClipKey{Activity: a, Facing: f})
		}
	}
	return keys
}

func main() {
	prefab := flag.String("prefab", entity.PlayerPrefab, "prefab whose animation clips to preview")
	scale := flag.Float64("scale", 4, "draw scale")
	flag.Parse()

	spec, err := prefabs.LoadEntityBuildSpec(*prefab)
	if err != nil {
		log.Fatalf("clipview: %v", err)
	}
	anim, err := prefabs.DecodeComponentSpec[prefabs.AnimationComponentSpec](spec.Components["animation"])
	if err != nil {
		log.Fatalf("clipview: decode animation: %v", err)
	}
	table, err := entity.NewClipTableFromSpec(anim, render.LoadSheet)
	if err != nil {
		log.Fatalf("clipview: %s: %v", *prefab, err)
	}

	keys := allKeys()
	first, err := table.Lookup(keys[0].Activity, keys[0].Facing)
	if err != nil {
		log.Fatalf("clipview: %v", err)
	}

	v := &clipViewer{
		table: table,
		keys:  keys,
		state: component.StartClip(first),
		step:  clock.FromTPS(ebiten.DefaultTPS),
		scale: *scale,
	}

	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("clip viewer: " + *prefab)
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
