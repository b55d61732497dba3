package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

type animationSpec = prefabs.AnimationComponentSpec

// prefabSheets serves the sheets declared in a prefab as the clip table's
// asset provider.
type prefabSheets struct {
	sheets map[component.ActivityState]prefabs.SheetSpec
	load   SheetLoader
}

func (p prefabSheets) Sheet(activity component.ActivityState) (component.SheetHandle, component.AtlasLayout, error) {
	spec, ok := p.sheets[activity]
	if !ok {
		return "", component.AtlasLayout{}, fmt.Errorf("no sheet for %s", activity)
	}
	layout := component.AtlasLayout{FrameW: spec.FrameW, FrameH: spec.FrameH, Cols: spec.Cols, Rows: spec.Rows}
	if layout.FrameW <= 0 || layout.FrameH <= 0 || layout.FrameCount() == 0 {
		return "", component.AtlasLayout{}, fmt.Errorf("sheet %q: empty layout %+v", spec.Image, layout)
	}
	if p.load == nil {
		return component.SheetHandle(spec.Image), layout, nil
	}

	handle, size, err := p.load(spec.Image)
	if err != nil {
		return "", component.AtlasLayout{}, err
	}
	if layout.FrameW*layout.Cols > size.X || layout.FrameH*layout.Rows > size.Y {
		return "", component.AtlasLayout{}, fmt.Errorf("sheet %q is %v, layout needs %dx%d", spec.Image, size, layout.FrameW*layout.Cols, layout.FrameH*layout.Rows)
	}
	return handle, layout, nil
}

// NewClipTableFromSpec builds the clip table declared by an animation spec.
func NewClipTableFromSpec(spec prefabs.AnimationComponentSpec, load SheetLoader) (*component.ClipTable, error) {
	if len(spec.Clips) == 0 {
		return nil, errors.New("animation defines no clips")
	}

	sheets := prefabSheets{sheets: make(map[component.ActivityState]prefabs.SheetSpec, len(spec.Sheets)), load: load}
	for name, sheet := range spec.Sheets {
		activity, err := component.ParseActivityState(name)
		if err != nil {
			return nil, fmt.Errorf("sheets: %w", err)
		}
		sheets.sheets[activity] = sheet
	}

	clips := make(map[component.ClipKey]component.AnimationClip, 8)
	for activityName, byFacing := range spec.Clips {
		activity, err := component.ParseActivityState(activityName)
		if err != nil {
			return nil, fmt.Errorf("clips: %w", err)
		}
		for facingName, c := range byFacing {
			facing, err := component.ParseFacingDirection(facingName)
			if err != nil {
				return nil, fmt.Errorf("clips: %s: %w", activityName, err)
			}
			clips[component.ClipKey{Activity: activity, Facing: facing}] = component.AnimationClip{
				FirstFrame: c.First,
				LastFrame:  c.Last,
				FPS:        c.FPS,
			}
		}
	}

	return component.NewClipTable(clips, sheets)
}

func addAnimation(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}

	table, err := NewClipTableFromSpec(spec, ctx.LoadSheet)
	if err != nil {
		return err
	}

	loc := component.Locomotion{}
	if l, ok := ecs.Get(w, e, component.LocomotionComponent.Kind()); ok {
		loc = *l
	}
	anim, err := component.NewAnimation(table, loc)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.AnimationComponent.Kind(), &anim)
}
