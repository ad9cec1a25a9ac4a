package entity

import (
	"fmt"

	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
)

func NewGameFlow(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GameFlowComponent.Kind(), &component.GameFlow{State: component.StateTitle}); err != nil {
		return 0, fmt.Errorf("game flow: add flow: %w", err)
	}
	return e, nil
}
