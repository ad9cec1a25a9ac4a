package system

import (
	"log"

	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
	"github.com/milk9111/raindrop/ecs/entity"
	"github.com/milk9111/raindrop/prefabs"
)

// LevelSpawnSystem materializes backlog entries as the camera reaches them.
type LevelSpawnSystem struct {
	enemy prefabs.EnemySpec
	boss  prefabs.BossSpec
}

func NewLevelSpawnSystem(enemy prefabs.EnemySpec, boss prefabs.BossSpec) *LevelSpawnSystem {
	return &LevelSpawnSystem{enemy: enemy, boss: boss}
}

func (s *LevelSpawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
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

	remaining := level.Enemies[:0]
	for _, entry := range level.Enemies {
		if !EnemyTriggered(cam, entry) {
			remaining = append(remaining, entry)
			continue
		}
		e, err := entity.NewEnemy(w, s.enemy, entry.Start, entry.Waypoints)
		if err != nil {
			log.Printf("level: spawn enemy: %v", err)
			continue
		}
		log.Printf("level: spawned enemy %v at %v", e, entry.Start)
	}
	clear(level.Enemies[len(remaining):])
	level.Enemies = remaining

	if level.Boss != nil && BossTriggered(cam, s.boss.Size, level.Boss.Y) {
		pos := *level.Boss
		level.Boss = nil
		e, err := entity.NewBoss(w, s.boss, pos)
		if err != nil {
			log.Printf("level: spawn boss: %v", err)
			return
		}
		level.BossEntity = uint64(e)
		log.Printf("level: spawned boss %v at %v", e, pos)
	}
}

// EnemyTriggered reports whether the entry's next waypoint is within one
// screen height below the camera.
func EnemyTriggered(cam *component.Camera, entry component.LevelEnemy) bool {
	if len(entry.Waypoints) == 0 {
		return true
	}
	next := entry.Waypoints[len(entry.Waypoints)-1]
	return next.Y >= cam.Y-cam.Height
}

// BossTriggered reports whether the boss's top edge has reached the bottom of
// the view.
func BossTriggered(cam *component.Camera, size, bossY float64) bool {
	return cam.Y-cam.Height/2-size/2 <= bossY
}
