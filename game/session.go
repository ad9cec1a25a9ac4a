// Package game wires the world, its systems and the tuning into one playable
// session that frontends step and draw.
package game

import (
	"fmt"
	"log"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
	"github.com/milk9111/raindrop/ecs/entity"
	"github.com/milk9111/raindrop/ecs/system"
	"github.com/milk9111/raindrop/levels"
	"github.com/milk9111/raindrop/prefabs"
)

// LevelLoader builds the level for a new run.
type LevelLoader func(consts levels.Constants) (*levels.Level, error)

// FileLevel loads the named level script on every call, so edits on disk are
// picked up by the next run.
func FileLevel(name string) LevelLoader {
	return func(consts levels.Constants) (*levels.Level, error) {
		return levels.Load(name, consts)
	}
}

// Options configure a Session.
type Options struct {
	Sound SoundPlayer
	Mute  bool
}

// SoundPlayer is re-exported so frontends need not import the system package.
type SoundPlayer = system.SoundPlayer

type Session struct {
	world  *ecs.World
	tuning *prefabs.Tuning
	loader LevelLoader
	opts   Options

	input     *system.StaticInput
	inputSys  *system.InputSystem
	contact   *system.ContactSystem
	audio     *system.AudioSystem
	scheduler *ecs.Scheduler

	camera ecs.Entity
	flow   ecs.Entity

	pendingTuning *prefabs.Tuning
}

func New(tuning *prefabs.Tuning, loader LevelLoader, opts Options) (*Session, error) {
	if tuning == nil {
		return nil, fmt.Errorf("game: nil tuning")
	}
	if loader == nil {
		loader = FileLevel(tuning.Game.Level)
	}
	s := &Session{
		world:  ecs.NewWorld(),
		tuning: tuning,
		loader: loader,
		opts:   opts,
		input:  &system.StaticInput{},
	}
	var err error
	if s.camera, err = entity.NewCamera(s.world, tuning.Game); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if s.flow, err = entity.NewGameFlow(s.world); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	s.build()
	return s, nil
}

// build assembles the systems in tick order.
func (s *Session) build() {
	t := s.tuning
	s.inputSys = system.NewInputSystem(s.input)
	s.contact = system.NewContactSystem()
	s.audio = system.NewAudioSystem(s.opts.Sound, s.opts.Mute)
	s.scheduler = ecs.NewScheduler(
		s.inputSys,
		system.NewScrollSystem(),
		system.NewLevelSpawnSystem(t.Enemy, t.Boss),
		system.NewBulletMotionSystem(),
		system.NewSpinSystem(),
		s.contact,
		system.NewItemPickupSystem(),
		system.NewPlayerDamageSystem(),
		system.NewEnemyDamageSystem(t.Enemy, t.Item),
		system.NewBossDamageSystem(t.Boss),
		system.NewPlayerAttackSystem(t.Player, t.Game),
		system.NewPlayerDeathSystem(),
		system.NewLineUpBulletsSystem(t.Enemy),
		system.NewEnemyMovementSystem(),
		system.NewEnemyAttackDoneSystem(),
		system.NewBossIdleSystem(),
		system.NewBossAttackSystem(t.Enemy, t.Item),
		system.NewTweenSystem(),
		system.NewBossTweenEndSystem(),
		system.NewBossPhaseSystem(t.Game),
		system.NewHealthBarSystem(),
		system.NewPlayerRadiusSystem(),
		system.NewBulletCleanupSystem(t.Game.CullDistance),
		system.NewGameFlowSystem(t.Game, s.inputSys, s.contact),
		s.audio,
	)
}

// Update advances the session by one tick of dt seconds.
func (s *Session) Update(dt float64, input system.InputState) {
	if s == nil {
		return
	}
	s.input.State = input
	s.world.SetDelta(dt)
	s.scheduler.Update(s.world)

	flow := s.Flow()
	if flow != nil && flow.StartRequested {
		flow.StartRequested = false
		if err := s.StartRun(); err != nil {
			log.Printf("game: start run: %v", err)
		}
	}
}

// Reload swaps in fresh tuning. It takes effect at the start of the next run
// so a run in progress keeps the values it started with.
func (s *Session) Reload(tuning *prefabs.Tuning) {
	if s == nil || tuning == nil {
		return
	}
	s.pendingTuning = tuning
	log.Printf("game: tuning reloaded, applies to next run")
}

// StartRun sweeps the previous run, spawns the player and installs the level.
func (s *Session) StartRun() error {
	if s.pendingTuning != nil {
		s.tuning = s.pendingTuning
		s.pendingTuning = nil
		s.build()
		if cam, ok := ecs.Get(s.world, s.camera, component.CameraComponent.Kind()); ok {
			cam.Width = s.tuning.Game.ScreenWidth
			cam.Height = s.tuning.Game.ScreenHeight
			cam.ScrollSpeed = s.tuning.Game.ScrollSpeed
		}
	}
	system.SweepGameplay(s.world)
	s.contact.Reset()

	cam, ok := ecs.Get(s.world, s.camera, component.CameraComponent.Kind())
	if !ok {
		return fmt.Errorf("game: camera missing")
	}
	lvl, err := s.loader(s.Constants())
	if err != nil {
		return err
	}
	cam.Y = 0
	cam.Paused = false
	cam.Multiplier = 1

	if _, err := entity.NewPlayer(s.world, s.tuning.Player, cp.Vector{X: cam.X, Y: cam.Y}); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if _, err := entity.NewLevel(s.world, lvl); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	flow := s.Flow()
	flow.State = component.StateMain
	flow.Victory = false
	flow.Disposition = 0
	flow.Runs++
	log.Printf("game: run %d started on level %s", flow.Runs, lvl.Name)
	return nil
}

// Constants are the values injected into level scripts.
func (s *Session) Constants() levels.Constants {
	return levels.Constants{
		ScreenWidth:  s.tuning.Game.ScreenWidth,
		ScreenHeight: s.tuning.Game.ScreenHeight,
		EnemySize:    s.tuning.Enemy.Size,
		BossSize:     s.tuning.Boss.Size,
	}
}

func (s *Session) World() *ecs.World {
	return s.world
}

func (s *Session) Tuning() *prefabs.Tuning {
	return s.tuning
}

func (s *Session) Camera() *component.Camera {
	cam, _ := ecs.Get(s.world, s.camera, component.CameraComponent.Kind())
	return cam
}

func (s *Session) Flow() *component.GameFlow {
	flow, _ := ecs.Get(s.world, s.flow, component.GameFlowComponent.Kind())
	return flow
}

// Player returns the live player, if any.
func (s *Session) Player() (*component.Player, bool) {
	e, ok := ecs.First(s.world, component.PlayerComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(s.world, e, component.PlayerComponent.Kind())
}

// SetMute toggles sound playback.
func (s *Session) SetMute(mute bool) {
	s.opts.Mute = mute
	s.audio.Mute = mute
}
