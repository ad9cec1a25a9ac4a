package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
	"github.com/milk9111/raindrop/prefabs"
)

// body adds the components every gameplay collidable needs.
func body(w *ecs.World, e ecs.Entity, pos cp.Vector, layer uint32, phys component.PhysicsBody, look component.Appearance) error {
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}
	l := component.LayerFor(layer)
	if err := ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &l); err != nil {
		return fmt.Errorf("add collision layer: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &phys); err != nil {
		return fmt.Errorf("add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.AppearanceComponent.Kind(), &look); err != nil {
		return fmt.Errorf("add appearance: %w", err)
	}
	if err := ecs.Add(w, e, component.GameplayTagComponent.Kind(), &component.GameplayTag{}); err != nil {
		return fmt.Errorf("add gameplay tag: %w", err)
	}
	return nil
}

func appearance(spec prefabs.AppearanceSpec, radius float64, glyph rune) component.Appearance {
	return component.Appearance{
		Color:  spec.RGBA(),
		Glyph:  spec.Rune(glyph),
		Radius: radius,
		Layer:  spec.Layer,
	}
}

// fail destroys a half-built entity and wraps err with the builder name.
func fail(w *ecs.World, e ecs.Entity, what string, err error) (ecs.Entity, error) {
	ecs.DestroyEntity(w, e)
	return 0, fmt.Errorf("%s: %w", what, err)
}
