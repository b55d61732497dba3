package system

import (
	"log"
	"time"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

type CameraSystem struct {
	debug   bool
	missing string
}

func NewCameraSystem(debug bool) *CameraSystem {
	return &CameraSystem{debug: debug}
}

// Update moves the camera toward its target. Either end may be absent during
// a state change; the step is then skipped.
func (cs *CameraSystem) Update(w *ecs.World, _ time.Duration) error {
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		cs.warn("no camera found")
		return nil
	}
	cam, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		cs.warn("camera has no transform")
		return nil
	}

	target, ok := findTarget(w, cam.TargetName)
	if !ok {
		cs.warn("no camera target " + cam.TargetName + " found")
		return nil
	}
	targetTransform, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		cs.warn("camera target has no transform")
		return nil
	}
	cs.missing = ""

	smooth := cam.Smoothness
	if smooth <= 0 || smooth > 1 {
		smooth = 1
	}
	camTransform.X = common.Lerp(camTransform.X, targetTransform.X, smooth)
	camTransform.Y = common.Lerp(camTransform.Y, targetTransform.Y, smooth)
	return nil
}

// warn logs once per absence streak, and only in debug mode.
func (cs *CameraSystem) warn(msg string) {
	if cs.missing == msg {
		return
	}
	cs.missing = msg
	if cs.debug {
		log.Printf("camera system: %s", msg)
	}
}

func findTarget(w *ecs.World, name string) (ecs.Entity, bool) {
	switch name {
	case "", "player":
		return ecs.First(w, component.PlayerTagComponent.Kind())
	}
	return 0, false
}
