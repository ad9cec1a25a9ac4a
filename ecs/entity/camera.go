package entity

import (
	"fmt"

	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
	"github.com/milk9111/raindrop/prefabs"
)

func NewCamera(w *ecs.World, spec prefabs.GameSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Width:       spec.ScreenWidth,
		Height:      spec.ScreenHeight,
		ScrollSpeed: spec.ScrollSpeed,
		Multiplier:  1,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	return camera, nil
}
