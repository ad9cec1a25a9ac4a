package entity

import (
	"fmt"

	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
	"github.com/milk9111/raindrop/levels"
)

// NewLevel installs lvl as the spawn backlog singleton.
func NewLevel(w *ecs.World, lvl *levels.Level) (ecs.Entity, error) {
	if lvl == nil {
		return 0, fmt.Errorf("level: nil level")
	}
	e := ecs.CreateEntity(w)
	backlog := lvl.Backlog()
	if err := ecs.Add(w, e, component.LevelComponent.Kind(), &backlog); err != nil {
		return 0, fmt.Errorf("level: add level: %w", err)
	}
	if err := ecs.Add(w, e, component.GameplayTagComponent.Kind(), &component.GameplayTag{}); err != nil {
		return 0, fmt.Errorf("level: add gameplay tag: %w", err)
	}
	return e, nil
}
