package entity

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
	"github.com/milk9111/raindrop/prefabs"
)

func NewBoss(w *ecs.World, spec prefabs.BossSpec, pos cp.Vector) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	phys := component.PhysicsBody{Width: spec.Size, Height: spec.Size}
	if err := body(w, e, pos, component.LayerEnemy, phys, appearance(spec.Appearance, spec.Size/2, 'B')); err != nil {
		return fail(w, e, "boss", err)
	}
	if err := ecs.Add(w, e, component.BossComponent.Kind(), &component.Boss{
		Phase:           component.BossIdle,
		Size:            spec.Size,
		Padding:         spec.Padding,
		BulletRadius:    spec.BulletRadius,
		BulletSpeed:     spec.BulletSpeed,
		AttackInterval:  spec.AttackInterval,
		AttackBudget:    spec.AttackBudget,
		ItemCount:       spec.ItemCount,
		ItemRadius:      spec.ItemRadius,
		SegmentDuration: spec.SegmentDuration,
		TurnDuration:    spec.TurnDuration,
		RotateDelay:     spec.RotateDelay,
		RotateDuration:  spec.RotateDuration,
	}); err != nil {
		return fail(w, e, "boss: add boss", err)
	}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: spec.Health, Max: spec.Health}); err != nil {
		return fail(w, e, "boss: add health", err)
	}
	return e, nil
}
