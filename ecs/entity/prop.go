package entity

import "github.com/milk9111/topdown/ecs"

// NewTree spawns the decorative tree. It is scoped to the Playing state.
func NewTree(w *ecs.World, load SheetLoader) (ecs.Entity, error) {
	return BuildEntity(w, "tree.yaml", load)
}
