package system

import (
	"log"

	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
)

// ScrollSystem advances the camera. Once a boss exists scrolling is gated:
// it pauses when the boss has fully entered the bottom of the view and
// ScrollDone is raised once for the level.
type ScrollSystem struct{}

func NewScrollSystem() *ScrollSystem {
	return &ScrollSystem{}
}

func (s *ScrollSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	camEnt, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEnt, component.CameraComponent.Kind())

	levelEnt, ok := ecs.First(w, component.LevelComponent.Kind())
	if !ok {
		return
	}
	level, _ := ecs.Get(w, levelEnt, component.LevelComponent.Kind())

	if bossEnt := ecs.Entity(level.BossEntity); level.BossEntity != 0 && ecs.IsAlive(w, bossEnt) {
		boss, okB := ecs.Get(w, bossEnt, component.BossComponent.Kind())
		tf, okT := ecs.Get(w, bossEnt, component.TransformComponent.Kind())
		if okB && okT && tf.Y >= cam.Y-cam.Height/2+boss.Size/2+boss.Padding {
			cam.Paused = true
			if !level.ScrollDone {
				level.ScrollDone = true
				ecs.Emit(w, ecs.EventScrollDone, bossEnt)
				log.Printf("scroll: done at y=%.1f", cam.Y)
			}
			return
		}
	}

	cam.Paused = false
	mult := cam.Multiplier
	if mult == 0 {
		mult = 1
	}
	cam.Y -= cam.ScrollSpeed * mult * w.Delta()
}
