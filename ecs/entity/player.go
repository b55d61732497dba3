package entity

import (
	"fmt"

	"github.com/milk9111/topdown/ecs"
)

const PlayerPrefab = "player.yaml"

func NewPlayer(w *ecs.World, load SheetLoader) (ecs.Entity, error) {
	return BuildEntity(w, PlayerPrefab, load)
}

func NewPlayerAt(w *ecs.World, load SheetLoader, x, y float64) (ecs.Entity, error) {
	entity, err := BuildEntity(w, PlayerPrefab, load)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, entity, x, y); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return entity, nil
}
