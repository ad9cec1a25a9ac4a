package entity

import (
	"fmt"

	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
)

const (
	healthBarWidth  = 100
	healthBarMargin = 10
)

// NewHealthBar attaches a hidden bar above owner, sized from its collider.
func NewHealthBar(w *ecs.World, owner ecs.Entity) (ecs.Entity, error) {
	offset := float64(healthBarMargin)
	if phys, ok := ecs.Get(w, owner, component.PhysicsBodyComponent.Kind()); ok {
		if phys.Height > 0 {
			offset += phys.Height / 2
		} else {
			offset += phys.Radius
		}
	}
	bar := ecs.CreateEntity(w)
	if err := ecs.Add(w, bar, component.HealthBarComponent.Kind(), &component.HealthBar{
		Fill:    1,
		Hidden:  true,
		Width:   healthBarWidth,
		OffsetY: offset,
	}); err != nil {
		return 0, fmt.Errorf("health bar: add bar: %w", err)
	}
	if err := ecs.Add(w, bar, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(owner)}); err != nil {
		ecs.DestroyEntity(w, bar)
		return 0, fmt.Errorf("health bar: add parent: %w", err)
	}
	return bar, nil
}
