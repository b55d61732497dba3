package system

import (
	"testing"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

func TestDespawnScopedRemovesOnlyThatState(t *testing.T) {
	w := ecs.NewWorld()
	player := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, player, component.StateScopedComponent.Kind(), &component.StateScoped{State: component.GameStatePlaying}))
	mustAdd(t, ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{}))

	menu := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, menu, component.StateScopedComponent.Kind(), &component.StateScoped{State: component.GameStateMenu}))

	camera := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{}))

	if n := DespawnScoped(w, component.GameStatePlaying); n != 1 {
		t.Fatalf("expected 1 despawned, got %d", n)
	}
	if ecs.IsAlive(w, player) {
		t.Fatalf("player should be gone")
	}
	if ecs.Has(w, player, component.TransformComponent.Kind()) {
		t.Fatalf("player components should be gone")
	}
	if !ecs.IsAlive(w, menu) || !ecs.IsAlive(w, camera) {
		t.Fatalf("unscoped entities must survive")
	}
	if n := DespawnScoped(w, component.GameStatePlaying); n != 0 {
		t.Fatalf("expected nothing left, got %d", n)
	}
}
