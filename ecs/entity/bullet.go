package entity

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
	"github.com/milk9111/raindrop/prefabs"
)

// BulletOptions describes a bullet to spawn. A zero Velocity makes a still
// bullet that only moves once something gives it one.
type BulletOptions struct {
	Faction    component.Faction
	Pos        cp.Vector
	Velocity   cp.Vector
	Moving     bool
	Radius     float64
	Gravity    float64
	Spin       float64
	Appearance prefabs.AppearanceSpec
}

func NewBullet(w *ecs.World, opts BulletOptions) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	layer := component.LayerEnemyBullet
	if opts.Faction == component.FactionPlayer {
		layer = component.LayerPlayerBullet
	}
	phys := component.PhysicsBody{Radius: opts.Radius}
	if err := body(w, e, opts.Pos, layer, phys, appearance(opts.Appearance, opts.Radius, '*')); err != nil {
		return fail(w, e, "bullet", err)
	}
	if err := ecs.Add(w, e, component.BulletComponent.Kind(), &component.Bullet{
		Faction: opts.Faction,
		Radius:  opts.Radius,
		Gravity: opts.Gravity,
	}); err != nil {
		return fail(w, e, "bullet: add bullet", err)
	}
	if opts.Moving {
		if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{X: opts.Velocity.X, Y: opts.Velocity.Y}); err != nil {
			return fail(w, e, "bullet: add velocity", err)
		}
	}
	if opts.Spin != 0 {
		if err := ecs.Add(w, e, component.SpinComponent.Kind(), &component.Spin{Speed: opts.Spin}); err != nil {
			return fail(w, e, "bullet: add spin", err)
		}
	}
	return e, nil
}
