package system

import (
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// DespawnScoped destroys every entity scoped to state and reports how many
// were removed. All of an entity's components go with it.
func DespawnScoped(w *ecs.World, state component.GameState) int {
	var doomed []ecs.Entity
	ecs.ForEach(w, component.StateScopedComponent.Kind(), func(e ecs.Entity, scope *component.StateScoped) {
		if scope.State == state {
			doomed = append(doomed, e)
		}
	})
	for _, e := range doomed {
		ecs.DestroyEntity(w, e)
	}
	return len(doomed)
}
