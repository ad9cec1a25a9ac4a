package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
	"github.com/milk9111/raindrop/ecs/entity"
	"github.com/milk9111/raindrop/prefabs"
)

// LineUpBulletsSystem advances bullet rings. Each timer tick places one still
// bullet at (-sin a, cos a)*Radius around the owner; the tick after the ring
// is full releases every bullet along its offset.
type LineUpBulletsSystem struct {
	bullet prefabs.AppearanceSpec
}

func NewLineUpBulletsSystem(enemy prefabs.EnemySpec) *LineUpBulletsSystem {
	return &LineUpBulletsSystem{bullet: enemy.Bullet}
}

func (s *LineUpBulletsSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach2(w, component.LineUpBulletsComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, ring *component.LineUpBullets, tf *component.Transform) {
		if ring.Done || !ring.Timer.Tick(dt) {
			return
		}
		if len(ring.Bullets) >= ring.Num {
			for _, held := range ring.Bullets {
				b := ecs.Entity(held.Bullet)
				if !ecs.IsAlive(w, b) {
					continue
				}
				_ = ecs.Add(w, b, component.VelocityComponent.Kind(), &component.Velocity{X: held.Offset.X, Y: held.Offset.Y})
			}
			ring.Done = true
			return
		}

		offset := cp.Vector{X: -math.Sin(ring.Angle), Y: math.Cos(ring.Angle)}.Mult(ring.Radius)
		b, err := entity.NewBullet(w, entity.BulletOptions{
			Faction:    component.FactionEnemy,
			Pos:        tf.Pos().Add(offset),
			Radius:     ring.BulletRadius,
			Spin:       ring.Spin,
			Appearance: s.bullet,
		})
		if err != nil {
			return
		}
		ring.Bullets = append(ring.Bullets, component.LinedUpBullet{Bullet: uint64(b), Offset: offset})
		ring.Angle += 2 * math.Pi / float64(ring.Num)
		ecs.PlaySound(w, SoundRing)
	})
}
