package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
	"github.com/milk9111/raindrop/ecs/entity"
	"github.com/milk9111/raindrop/prefabs"
)

// PlayerAttackSystem fires a volley on the attack edge. The volley size is
// linear in radius; the cost is a fixed area.
type PlayerAttackSystem struct {
	bullet  prefabs.AppearanceSpec
	gravity float64
}

func NewPlayerAttackSystem(player prefabs.PlayerSpec, game prefabs.GameSpec) *PlayerAttackSystem {
	return &PlayerAttackSystem{bullet: player.Bullet, gravity: game.BulletGravity}
}

func (s *PlayerAttackSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, player *component.Player, input *component.Input, tf *component.Transform) {
		if !input.Attack || player.Dead {
			return
		}
		input.Attack = false
		if player.RadiusAfter(-player.AttackArea) < player.MinRadius {
			return
		}
		n := VolleySize(player)
		player.Increase(-player.AttackArea)
		ecs.PlaySound(w, SoundAttack)

		rng := w.Rand()
		origin := tf.Pos()
		for i := 0; i < n; i++ {
			r := rng.Float64() * player.VolleyRadius
			theta := rng.Float64() * 2 * math.Pi
			offset := cp.ForAngle(theta).Mult(r)
			_, _ = entity.NewBullet(w, entity.BulletOptions{
				Faction:    component.FactionPlayer,
				Pos:        origin.Add(offset),
				Velocity:   offset.Mult(player.BulletSpeed),
				Moving:     true,
				Radius:     player.BulletRadius,
				Gravity:    s.gravity,
				Appearance: s.bullet,
			})
		}
	})
}

// VolleySize is int(radius/50 * BulletsPer50), computed before the attack
// cost is paid.
func VolleySize(player *component.Player) int {
	return int(player.Radius / 50 * float64(player.BulletsPer50))
}

// PlayerDeathSystem raises PlayerDied once when the radius first drops below
// the minimum and removes the player.
type PlayerDeathSystem struct{}

func NewPlayerDeathSystem() *PlayerDeathSystem {
	return &PlayerDeathSystem{}
}

func (s *PlayerDeathSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, player *component.Player) {
		if player.Dead || player.Radius >= player.MinRadius {
			return
		}
		player.Dead = true
		ecs.Emit(w, ecs.EventPlayerDied, e)
		ecs.PlaySound(w, SoundDie)
		ecs.DestroyRecursive(w, e)
		log.Printf("player: died")
	})
}

// PlayerRadiusSystem keeps the collider and drawn size in step with the
// radius, and refills the player when the boss dies.
type PlayerRadiusSystem struct {
	bossDied ecs.EventReader
}

func NewPlayerRadiusSystem() *PlayerRadiusSystem {
	return &PlayerRadiusSystem{}
}

func (s *PlayerRadiusSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	restore := len(ecs.ReadEvents(w, &s.bossDied, ecs.EventBossDied)) > 0
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, player *component.Player) {
		if restore && !player.Dead {
			player.Radius = player.StartRadius
		}
		if phys, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			phys.Radius = entity.PlayerColliderRadius(player.Radius)
		}
		if look, ok := ecs.Get(w, e, component.AppearanceComponent.Kind()); ok {
			look.Radius = player.Radius
		}
	})
}
