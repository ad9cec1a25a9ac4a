package entity

import (
	"slices"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
	"github.com/milk9111/raindrop/prefabs"
)

// NewEnemy spawns an enemy at start. waypoints are in consumption order: the
// last element is the first target.
func NewEnemy(w *ecs.World, spec prefabs.EnemySpec, start cp.Vector, waypoints []cp.Vector) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	phys := component.PhysicsBody{Radius: spec.Size / 2}
	if err := body(w, e, start, component.LayerEnemy, phys, appearance(spec.Appearance, spec.Size/2, 'E')); err != nil {
		return fail(w, e, "enemy", err)
	}
	if err := ecs.Add(w, e, component.EnemyControllerComponent.Kind(), &component.EnemyController{
		State:     component.EnemyMoving,
		Waypoints: slices.Clone(waypoints),
		Speed:     spec.Speed,
		Ring: component.RingConfig{
			Num:          spec.Ring.Num,
			Interval:     spec.Ring.Interval,
			Radius:       spec.Ring.Radius,
			BulletRadius: spec.Ring.BulletRadius,
			Spin:         spec.Ring.Spin,
		},
	}); err != nil {
		return fail(w, e, "enemy: add controller", err)
	}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: spec.Health, Max: spec.Health}); err != nil {
		return fail(w, e, "enemy: add health", err)
	}
	return e, nil
}
