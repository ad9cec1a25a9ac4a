package system

import (
	"log"

	"github.com/milk9111/raindrop/common"
	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
	"github.com/milk9111/raindrop/prefabs"
)

// GameFlowSystem drives the title / main / game over cycle. Starting a run is
// requested here and carried out by the session, which owns level loading.
type GameFlowSystem struct {
	game    prefabs.GameSpec
	input   *InputSystem
	contact *ContactSystem

	playerDied ecs.EventReader
	bossDied   ecs.EventReader
}

func NewGameFlowSystem(game prefabs.GameSpec, input *InputSystem, contact *ContactSystem) *GameFlowSystem {
	return &GameFlowSystem{game: game, input: input, contact: contact}
}

func (s *GameFlowSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	flowEnt, ok := ecs.First(w, component.GameFlowComponent.Kind())
	if !ok {
		return
	}
	flow, _ := ecs.Get(w, flowEnt, component.GameFlowComponent.Kind())
	camEnt, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEnt, component.CameraComponent.Kind())
	dt := w.Delta()

	playerDied := len(ecs.ReadEvents(w, &s.playerDied, ecs.EventPlayerDied)) > 0
	bossDied := len(ecs.ReadEvents(w, &s.bossDied, ecs.EventBossDied)) > 0

	switch flow.State {
	case component.StateTitle:
		cam.Y -= s.game.TitleDrift * dt
		if s.input != nil && s.input.Attack {
			flow.StartRequested = true
		}
	case component.StateMain:
		switch {
		case bossDied:
			s.victory(w, flow, cam)
		case playerDied:
			flow.State = component.StateGameOver
			flow.Timer = common.NewTimer(s.game.DeathDelay, false)
			log.Printf("flow: game over")
		}
	case component.StateGameOver:
		if flow.Victory {
			s.flyOff(w, flow, cam, dt)
		}
		if flow.Timer.Tick(dt) {
			s.endRun(w, flow, cam)
		}
	}
}

func (s *GameFlowSystem) victory(w *ecs.World, flow *component.GameFlow, cam *component.Camera) {
	for _, e := range ecs.Query(w, component.BulletComponent.Kind()) {
		if b, ok := ecs.Get(w, e, component.BulletComponent.Kind()); ok && b.Faction == component.FactionEnemy {
			ecs.DestroyRecursive(w, e)
		}
	}
	cam.Multiplier = s.game.VictoryMultiplier
	flow.State = component.StateGameOver
	flow.Victory = true
	flow.Disposition = 0
	flow.Timer = common.NewTimer(s.game.VictoryDelay, false)
	log.Printf("flow: victory")
}

// flyOff moves the player ahead of the camera by Disposition², so it
// accelerates away.
func (s *GameFlowSystem) flyOff(w *ecs.World, flow *component.GameFlow, cam *component.Camera, dt float64) {
	flow.Disposition += s.game.VictoryFlySpeed * dt
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Player, tf *component.Transform) {
		tf.X = cam.X
		tf.Y = cam.Y - flow.Disposition*flow.Disposition
	})
}

func (s *GameFlowSystem) endRun(w *ecs.World, flow *component.GameFlow, cam *component.Camera) {
	SweepGameplay(w)
	s.contact.Reset()
	cam.Y = 0
	cam.Paused = false
	cam.Multiplier = 1
	flow.State = component.StateTitle
	flow.Victory = false
	flow.Disposition = 0
	log.Printf("flow: back to title after run %d", flow.Runs)
}

// SweepGameplay despawns everything a run created.
func SweepGameplay(w *ecs.World) int {
	n := 0
	for _, e := range ecs.Query(w, component.GameplayTagComponent.Kind()) {
		if ecs.DestroyRecursive(w, e) {
			n++
		}
	}
	return n
}
