package entity

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
	"github.com/milk9111/raindrop/prefabs"
)

// playerColliderScale shrinks the hit circle inside the drawn drop.
const playerColliderScale = 0.8

func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, pos cp.Vector) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	phys := component.PhysicsBody{Radius: spec.Radius * playerColliderScale}
	if err := body(w, e, pos, component.LayerPlayer, phys, appearance(spec.Appearance, spec.Radius, 'O')); err != nil {
		return fail(w, e, "player", err)
	}
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return fail(w, e, "player: add tag", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Radius:       spec.Radius,
		StartRadius:  spec.Radius,
		MaxArea:      spec.MaxArea,
		MinRadius:    spec.MinRadius,
		HitArea:      spec.HitArea,
		ItemArea:     spec.ItemArea,
		AttackArea:   spec.AttackArea,
		VolleyRadius: spec.VolleyRadius,
		BulletsPer50: spec.BulletsPer50,
		BulletSpeed:  spec.BulletSpeed,
		BulletRadius: spec.BulletRadius,
	}); err != nil {
		return fail(w, e, "player: add player", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{CursorX: pos.X, CursorY: pos.Y}); err != nil {
		return fail(w, e, "player: add input", err)
	}
	return e, nil
}

// PlayerColliderRadius is the hit radius for a drawn radius.
func PlayerColliderRadius(radius float64) float64 {
	return radius * playerColliderScale
}
