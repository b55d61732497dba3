package entity

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

// SheetLoader makes an image available to the renderer and returns its
// handle and pixel size. Headless frontends pass nil; sheets are then keyed by
// path and their size is not checked.
type SheetLoader func(path string) (component.SheetHandle, image.Point, error)

type buildContext struct {
	PrefabPath string
	LoadSheet  SheetLoader
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":   addPlayerTag,
	"camera_tag":   addCameraTag,
	"prop_tag":     addPropTag,
	"state_scoped": addStateScoped,
	"transform":    addTransform,
	"movement":     addMovement,
	"locomotion":   addLocomotion,
	"input":        addInput,
	"sprite":       addSprite,
	"render_layer": addRenderLayer,
	"camera":       addCamera,
	"animation":    addAnimation,
}

// animation reads locomotion to pick its first clip, so it comes later.
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"prop_tag",
	"state_scoped",
	"transform",
	"movement",
	"locomotion",
	"input",
	"sprite",
	"render_layer",
	"camera",
	"animation",
}

// BuildEntity creates an entity from a prefab. Any configuration defect
// destroys the half-built entity and returns an error; nothing partial is
// left in the world.
func BuildEntity(w *ecs.World, prefabPath string, load SheetLoader) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return buildFromSpec(w, prefabPath, spec, load)
}

func buildFromSpec(w *ecs.World, prefabPath string, spec prefabs.EntityBuildSpec, load SheetLoader) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	var unknown []string
	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return 0, fmt.Errorf("build entity: %q: no builder for components %v", prefabPath, unknown)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, LoadSheet: load}

	for _, name := range componentBuildOrder {
		raw, ok := spec.Components[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addPropTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PropTagComponent.Kind(), &component.PropTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type stateScopedSpec = prefabs.StateScopedComponentSpec

func addStateScoped(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[stateScopedSpec](raw)
	if err != nil {
		return fmt.Errorf("decode state_scoped spec: %w", err)
	}
	var state component.GameState
	switch spec.State {
	case "playing", "":
		state = component.GameStatePlaying
	case "menu":
		state = component.GameStateMenu
	default:
		return fmt.Errorf("unknown game state %q", spec.State)
	}
	return ecs.Add(w, e, component.StateScopedComponent.Kind(), &component.StateScoped{State: state})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.Scale != 0 {
		spec.ScaleX, spec.ScaleY = spec.Scale, spec.Scale
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type movementSpec = prefabs.MovementComponentSpec

const defaultMoveSpeed = 700

func addMovement(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[movementSpec](raw)
	if err != nil {
		return fmt.Errorf("decode movement spec: %w", err)
	}
	speed := float64(defaultMoveSpeed)
	if spec.Speed != nil {
		speed = *spec.Speed
	}
	mv, err := component.NewMovement(speed)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.MovementComponent.Kind(), &mv)
}

type locomotionSpec = prefabs.LocomotionComponentSpec

func addLocomotion(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[locomotionSpec](raw)
	if err != nil {
		return fmt.Errorf("decode locomotion spec: %w", err)
	}
	loc := component.Locomotion{Facing: component.FacingDown, Activity: component.ActivityIdle}
	if spec.Facing != "" {
		if loc.Facing, err = component.ParseFacingDirection(spec.Facing); err != nil {
			return err
		}
	}
	if spec.Activity != "" {
		if loc.Activity, err = component.ParseActivityState(spec.Activity); err != nil {
			return err
		}
	}
	return ecs.Add(w, e, component.LocomotionComponent.Kind(), &loc)
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	if spec.Image == "" {
		return errors.New("sprite needs an image")
	}

	handle := component.SheetHandle(spec.Image)
	if ctx.LoadSheet != nil {
		if handle, _, err = ctx.LoadSheet(spec.Image); err != nil {
			return fmt.Errorf("load image %q: %w", spec.Image, err)
		}
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: handle})
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render_layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Zoom == 0 {
		spec.Zoom = 1
	}
	if spec.Smoothness == 0 {
		spec.Smoothness = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		TargetName: spec.TargetName,
		Zoom:       spec.Zoom,
		Smoothness: spec.Smoothness,
	})
}
