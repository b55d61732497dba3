package system

import (
	"fmt"
	"time"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// StepAnimation resolves the clip for (activity, facing) and compares it with
// the clip already playing. Two logical states that resolve to the same
// frames on the same sheet are not a change. On a change the returned state
// starts the new clip from its first frame and no time is consumed this step;
// otherwise the current clip is ticked by dt.
func StepAnimation(table *component.ClipTable, state component.AnimationRuntimeState, activity component.ActivityState, facing component.FacingDirection, dt time.Duration) (component.AnimationRuntimeState, bool, error) {
	want, err := table.Lookup(activity, facing)
	if err != nil {
		return state, false, err
	}
	if !want.SameClip(state.Binding()) {
		return component.StartClip(want), true, nil
	}
	return state.Tick(dt), false, nil
}

// AnimationSystem runs after MovementSystem and keeps each entity's sprite in
// step with its locomotion state.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World, dt time.Duration) error {
	if w == nil {
		return nil
	}

	var failed error
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.LocomotionComponent.Kind(), func(e ecs.Entity, anim *component.Animation, loc *component.Locomotion) {
		if failed != nil {
			return
		}

		next, swapped, err := StepAnimation(anim.Table, anim.State, loc.Activity, loc.Facing, dt)
		if err != nil {
			failed = fmt.Errorf("animation system: entity %s (%s/%s): %w", e, loc.Activity, loc.Facing, err)
			return
		}

		anim.State = next
		if swapped {
			w.Events().Push(ecs.Event{Type: ecs.EventClipSwapped, Data: ecs.ClipSwap{
				Entity: e,
				Sheet:  next.Sheet,
				First:  next.Clip.FirstFrame,
			}})
		}
	})
	return failed
}
