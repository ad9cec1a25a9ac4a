package system

import (
	"log"
	"math"

	"github.com/milk9111/raindrop/common"
	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
	"github.com/milk9111/raindrop/ecs/entity"
	"github.com/milk9111/raindrop/prefabs"
)

// touchingBullets returns the live bullets of faction found in contacts.
func touchingBullets(w *ecs.World, contacts *component.Contacts, faction component.Faction) []ecs.Entity {
	if contacts == nil {
		return nil
	}
	var out []ecs.Entity
	for _, raw := range contacts.With {
		e := ecs.Entity(raw)
		if !ecs.IsAlive(w, e) {
			continue
		}
		b, ok := ecs.Get(w, e, component.BulletComponent.Kind())
		if !ok || b.Faction != faction {
			continue
		}
		out = append(out, e)
	}
	return out
}

// EnemyDamageSystem applies player bullets to regular enemies.
type EnemyDamageSystem struct {
	enemy prefabs.EnemySpec
	item  prefabs.ItemSpec
}

func NewEnemyDamageSystem(enemy prefabs.EnemySpec, item prefabs.ItemSpec) *EnemyDamageSystem {
	return &EnemyDamageSystem{enemy: enemy, item: item}
}

func (s *EnemyDamageSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach3(w, component.EnemyControllerComponent.Kind(), component.HealthComponent.Kind(), component.ContactsComponent.Kind(), func(e ecs.Entity, _ *component.EnemyController, health *component.Health, contacts *component.Contacts) {
		for _, bullet := range touchingBullets(w, contacts, component.FactionPlayer) {
			if health.Current <= 0 {
				return
			}
			ecs.DestroyEntity(w, bullet)
			if !health.Damage(s.enemy.Damage) {
				continue
			}
			tf, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			pos := tf.Pos()
			ecs.DestroyRecursive(w, e)
			ecs.Emit(w, ecs.EventEnemyDied, e)
			entity.ScatterItemsSquare(w, s.item, w.Rand(), pos, s.enemy.DeathItems, s.enemy.DeathSpread)
			log.Printf("damage: enemy %v died at %v", e, pos)
			return
		}
	})
}

// BossAccepts reports whether a boss rotated by angle takes player bullets.
// The boss is open while angle/π < 0.5 or > 1.5, angle taken in [0, 2π).
func BossAccepts(angle float64) bool {
	a := common.NormalizeAngle(angle) / math.Pi
	return a < 0.5 || a > 1.5
}

// BossDamageSystem applies player bullets to the boss through the rotation
// window. Rejected bullets are left alone.
type BossDamageSystem struct {
	damage int
}

func NewBossDamageSystem(boss prefabs.BossSpec) *BossDamageSystem {
	return &BossDamageSystem{damage: boss.Damage}
}

func (s *BossDamageSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach4(w, component.BossComponent.Kind(), component.HealthComponent.Kind(), component.ContactsComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, boss *component.Boss, health *component.Health, contacts *component.Contacts, tf *component.Transform) {
		if boss.Died || !BossAccepts(tf.Rotation) {
			return
		}
		for _, bullet := range touchingBullets(w, contacts, component.FactionPlayer) {
			ecs.DestroyEntity(w, bullet)
			ecs.PlaySound(w, SoundBossHit)
			if !health.Damage(s.damage) {
				continue
			}
			boss.Died = true
			ecs.DestroyRecursive(w, e)
			ecs.Emit(w, ecs.EventBossDied, e)
			log.Printf("damage: boss %v died", e)
			return
		}
	})
}

// PlayerDamageSystem costs the player HitArea per touching enemy bullet.
type PlayerDamageSystem struct{}

func NewPlayerDamageSystem() *PlayerDamageSystem {
	return &PlayerDamageSystem{}
}

func (s *PlayerDamageSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.ContactsComponent.Kind(), func(_ ecs.Entity, player *component.Player, contacts *component.Contacts) {
		hits := touchingBullets(w, contacts, component.FactionEnemy)
		for _, bullet := range hits {
			ecs.DestroyRecursive(w, bullet)
		}
		if len(hits) > 0 {
			player.Increase(-float64(len(hits)) * player.HitArea)
		}
	})
}

// ItemPickupSystem grants ItemArea per touching item and removes it.
type ItemPickupSystem struct{}

func NewItemPickupSystem() *ItemPickupSystem {
	return &ItemPickupSystem{}
}

func (s *ItemPickupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.ContactsComponent.Kind(), func(_ ecs.Entity, player *component.Player, contacts *component.Contacts) {
		for _, raw := range contacts.With {
			item := ecs.Entity(raw)
			if !ecs.Has(w, item, component.ItemComponent.Kind()) {
				continue
			}
			player.Increase(player.ItemArea)
			ecs.DestroyRecursive(w, item)
		}
	})
}
