package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/raindrop/common"
	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
	"github.com/milk9111/raindrop/ecs/entity"
	"github.com/milk9111/raindrop/prefabs"
)

// BossPhaseSystem applies PhaseDone: the boss moves to NextBossPhase and the
// new phase's enter hook arms its state.
type BossPhaseSystem struct {
	screenW float64
	screenH float64
}

func NewBossPhaseSystem(game prefabs.GameSpec) *BossPhaseSystem {
	return &BossPhaseSystem{screenW: game.ScreenWidth, screenH: game.ScreenHeight}
}

func (s *BossPhaseSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach3(w, component.BossComponent.Kind(), component.PhaseDoneComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, boss *component.Boss, _ *component.PhaseDone, tf *component.Transform) {
		ecs.Remove(w, e, component.PhaseDoneComponent.Kind())
		prev := boss.Phase
		boss.Phase = component.NextBossPhase(prev)
		s.enter(w, e, boss, tf)
		log.Printf("boss: %s -> %s", prev, boss.Phase)
	})
}

func (s *BossPhaseSystem) enter(w *ecs.World, e ecs.Entity, boss *component.Boss, tf *component.Transform) {
	switch boss.Phase {
	case component.BossAttackBottom:
		armAttack(w, e, boss, cp.Vector{X: 0, Y: 1})
	case component.BossAttackTop:
		armAttack(w, e, boss, cp.Vector{X: 0, Y: -1})
	case component.BossMovingToTop:
		tween := MovingToTopTween(tf.Pos(), tf.Rotation, boss, s.screenW, s.screenH)
		_ = ecs.Add(w, e, component.TweenComponent.Kind(), &tween)
	case component.BossMovingToBottom:
		tween := MovingToBottomTween(tf.Pos(), boss, s.screenW, s.screenH)
		_ = ecs.Add(w, e, component.TweenComponent.Kind(), &tween)
	case component.BossRotating:
		tween := RotatingTween(boss)
		_ = ecs.Add(w, e, component.TweenComponent.Kind(), &tween)
	}
}

func armAttack(w *ecs.World, e ecs.Entity, boss *component.Boss, dir cp.Vector) {
	_ = ecs.Add(w, e, component.AttackStateComponent.Kind(), &component.AttackState{
		Direction: dir,
		Timer:     common.NewTimer(boss.AttackInterval, true),
		Budget:    boss.AttackBudget,
	})
}

// threeLegs builds the side-then-vertical-then-center position track.
func threeLegs(start cp.Vector, side, vertical float64, boss *component.Boss) component.TweenTrack {
	a := start.Add(cp.Vector{X: side})
	b := start.Add(cp.Vector{X: side, Y: vertical})
	c := start.Add(cp.Vector{Y: vertical})
	d := boss.SegmentDuration
	return component.TweenTrack{
		Property: component.TweenPosition,
		Segments: []component.TweenSegment{
			{From: start, To: a, Duration: d, Ease: common.EaseQuadraticInOut},
			{From: a, To: b, Duration: d, Ease: common.EaseQuadraticInOut},
			{From: b, To: c, Duration: d, Ease: common.EaseQuadraticInOut},
		},
		Notify: true,
	}
}

// MovingToTopTween moves the boss to the left margin, up to the top edge and
// back to center while turning half a circle.
func MovingToTopTween(start cp.Vector, rotation float64, boss *component.Boss, screenW, screenH float64) component.Tween {
	side := -screenW/2 + boss.Size/2 + boss.Padding
	vertical := screenH - boss.Size - boss.Padding*2
	turn := component.TweenTrack{
		Property: component.TweenRotation,
		Segments: []component.TweenSegment{{
			From:     cp.Vector{X: rotation},
			To:       cp.Vector{X: rotation + math.Pi},
			Duration: boss.TurnDuration,
			Ease:     common.EaseQuadraticInOut,
		}},
	}
	return component.Tween{Tracks: []component.TweenTrack{threeLegs(start, side, vertical, boss), turn}}
}

// MovingToBottomTween mirrors MovingToTopTween without the turn.
func MovingToBottomTween(start cp.Vector, boss *component.Boss, screenW, screenH float64) component.Tween {
	side := screenW/2 - boss.Size/2 - boss.Padding
	vertical := -screenH + boss.Size + boss.Padding*2
	return component.Tween{Tracks: []component.TweenTrack{threeLegs(start, side, vertical, boss)}}
}

// RotatingTween waits, then turns the boss from π back to 0.
func RotatingTween(boss *component.Boss) component.Tween {
	return component.Tween{Tracks: []component.TweenTrack{{
		Property: component.TweenRotation,
		Delay:    boss.RotateDelay,
		Segments: []component.TweenSegment{{
			From:     cp.Vector{X: math.Pi},
			To:       cp.Vector{X: 0},
			Duration: boss.RotateDuration,
			Ease:     common.EaseQuadraticInOut,
		}},
		Notify: true,
	}}}
}

// BossIdleSystem leaves Idle once scrolling has stopped at the boss.
type BossIdleSystem struct {
	scrollDone ecs.EventReader
}

func NewBossIdleSystem() *BossIdleSystem {
	return &BossIdleSystem{}
}

func (s *BossIdleSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	if len(ecs.ReadEvents(w, &s.scrollDone, ecs.EventScrollDone)) == 0 {
		return
	}
	ecs.ForEach(w, component.BossComponent.Kind(), func(e ecs.Entity, boss *component.Boss) {
		if boss.Phase != component.BossIdle {
			return
		}
		_ = ecs.Add(w, e, component.PhaseDoneComponent.Kind(), &component.PhaseDone{})
	})
}

// BossAttackSystem fires one bullet per timer tick, sweeping a half circle
// centered on the attack direction. When the budget is spent it scatters
// items and reports done.
type BossAttackSystem struct {
	bullet prefabs.AppearanceSpec
	item   prefabs.ItemSpec
}

func NewBossAttackSystem(enemy prefabs.EnemySpec, item prefabs.ItemSpec) *BossAttackSystem {
	return &BossAttackSystem{bullet: enemy.Bullet, item: item}
}

func (s *BossAttackSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach3(w, component.BossComponent.Kind(), component.AttackStateComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, boss *component.Boss, state *component.AttackState, tf *component.Transform) {
		if state.Fired < state.Budget && state.Timer.Tick(dt) {
			dir := AttackDirection(state.Direction, state.Fired, state.Budget)
			_, _ = entity.NewBullet(w, entity.BulletOptions{
				Faction:    component.FactionEnemy,
				Pos:        tf.Pos().Add(dir.Mult(boss.Size / 2 * 0.8)),
				Velocity:   dir.Mult(boss.BulletSpeed),
				Moving:     true,
				Radius:     boss.BulletRadius,
				Appearance: s.bullet,
			})
			state.Fired++
		}
		if state.Fired < state.Budget {
			return
		}
		entity.ScatterItems(w, s.item, w.Rand(), tf.Pos(), boss.ItemCount, boss.ItemRadius)
		ecs.Remove(w, e, component.AttackStateComponent.Kind())
		_ = ecs.Add(w, e, component.PhaseDoneComponent.Kind(), &component.PhaseDone{})
	})
}

// AttackDirection is the unit vector of shot k out of budget: the sweep
// starts a quarter turn counter-clockwise of dir and steps π/budget
// clockwise.
func AttackDirection(dir cp.Vector, k, budget int) cp.Vector {
	center := math.Atan2(dir.Y, dir.X)
	angle := center + math.Pi/2 - math.Pi/float64(budget)*float64(k)
	return cp.ForAngle(angle)
}

// TweenSystem samples every tween by elapsed time. A track flagged Notify
// raises TweenCompleted once when it ends.
type TweenSystem struct{}

func NewTweenSystem() *TweenSystem {
	return &TweenSystem{}
}

func (s *TweenSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach2(w, component.TweenComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, tween *component.Tween, tf *component.Transform) {
		tween.Elapsed += dt
		for i := range tween.Tracks {
			track := &tween.Tracks[i]
			if v, ok := track.Sample(tween.Elapsed); ok {
				switch track.Property {
				case component.TweenPosition:
					tf.SetPos(v)
				case component.TweenRotation:
					tf.Rotation = v.X
				}
			}
			if track.Notify && !track.Finished && tween.Elapsed >= track.Length() {
				track.Finished = true
				ecs.Emit(w, ecs.EventTweenCompleted, e)
			}
		}
	})
}

// BossTweenEndSystem turns the boss's tween completion into PhaseDone while it
// is in a tween-driven phase.
type BossTweenEndSystem struct {
	completed ecs.EventReader
}

func NewBossTweenEndSystem() *BossTweenEndSystem {
	return &BossTweenEndSystem{}
}

func (s *BossTweenEndSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, evt := range ecs.ReadEvents(w, &s.completed, ecs.EventTweenCompleted) {
		boss, ok := ecs.Get(w, evt.Entity, component.BossComponent.Kind())
		if !ok || !boss.Phase.Moving() {
			continue
		}
		ecs.Remove(w, evt.Entity, component.TweenComponent.Kind())
		_ = ecs.Add(w, evt.Entity, component.PhaseDoneComponent.Kind(), &component.PhaseDone{})
	}
}
