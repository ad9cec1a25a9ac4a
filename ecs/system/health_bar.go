package system

import (
	"log"

	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
	"github.com/milk9111/raindrop/ecs/entity"
)

// HealthBarSystem attaches a bar to every Health owner and keeps its fill in
// step. Bars stay hidden until the owner is first hurt.
type HealthBarSystem struct{}

func NewHealthBarSystem() *HealthBarSystem {
	return &HealthBarSystem{}
}

func (s *HealthBarSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.HealthComponent.Kind(), func(e ecs.Entity, health *component.Health) {
		bar := ecs.Entity(health.Bar)
		if health.Bar == 0 || !ecs.IsAlive(w, bar) {
			created, err := entity.NewHealthBar(w, e)
			if err != nil {
				log.Printf("health: attach bar to %v: %v", e, err)
				return
			}
			health.Bar = uint64(created)
			bar = created
		}
		hb, ok := ecs.Get(w, bar, component.HealthBarComponent.Kind())
		if !ok {
			return
		}
		hb.Fill = health.Percent()
		hb.Hidden = hb.Fill >= 1
	})
}
