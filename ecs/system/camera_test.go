package system

import (
	"testing"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

func TestCameraFollowsPlayer(t *testing.T) {
	tests := []struct {
		name       string
		smoothness float64
		wantX      float64
	}{
		{"snap", 1, 40},
		{"half", 0.5, 20},
		{"unset_snaps", 0, 40},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			player := ecs.CreateEntity(w)
			mustAdd(t, ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
			mustAdd(t, ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: 40, Y: -8}))

			cam := ecs.CreateEntity(w)
			mustAdd(t, ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{TargetName: "player", Smoothness: tc.smoothness}))
			mustAdd(t, ecs.Add(w, cam, component.TransformComponent.Kind(), &component.Transform{}))

			if err := NewCameraSystem(false).Update(w, 0); err != nil {
				t.Fatalf("update: %v", err)
			}
			tr, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
			if tr.X != tc.wantX {
				t.Fatalf("expected x=%v, got %v", tc.wantX, tr.X)
			}
		})
	}
}

func TestCameraWithoutPlayerIsNoop(t *testing.T) {
	w := ecs.NewWorld()
	cam := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{}))
	mustAdd(t, ecs.Add(w, cam, component.TransformComponent.Kind(), &component.Transform{X: 3, Y: 4}))

	sys := NewCameraSystem(false)
	for i := 0; i < 3; i++ {
		if err := sys.Update(w, 0); err != nil {
			t.Fatalf("update: %v", err)
		}
	}
	tr, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
	if tr.X != 3 || tr.Y != 4 {
		t.Fatalf("camera moved without a target: %+v", tr)
	}

	if err := NewCameraSystem(false).Update(ecs.NewWorld(), 0); err != nil {
		t.Fatalf("empty world: %v", err)
	}
}
