package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
	"github.com/milk9111/raindrop/ecs/entity"
)

func TestEnemyWalksWaypointsThenDespawns(t *testing.T) {
	tuning := loadTuning(t)
	w := newWorld(t, 0.05)

	// Travel order (300,0), (0,0), (-300,0), stored back to front.
	waypoints := []cp.Vector{{X: -300}, {X: 0}, {X: 300}}
	e, err := entity.NewEnemy(w, tuning.Enemy, cp.Vector{X: 400}, waypoints)
	if err != nil {
		t.Fatalf("NewEnemy: %v", err)
	}

	sched := ecs.NewScheduler(
		NewLineUpBulletsSystem(tuning.Enemy),
		NewEnemyMovementSystem(),
		NewEnemyAttackDoneSystem(),
	)

	var targets []cp.Vector
	var arrivals []cp.Vector
	lastLen := len(waypoints) + 1
	for i := 0; i < 5000 && ecs.IsAlive(w, e); i++ {
		ctrl, _ := ecs.Get(w, e, component.EnemyControllerComponent.Kind())
		if len(ctrl.Waypoints) > lastLen {
			t.Fatalf("waypoint list grew from %d to %d", lastLen, len(ctrl.Waypoints))
		}
		lastLen = len(ctrl.Waypoints)
		if next, ok := ctrl.Next(); ok && (len(targets) == 0 || targets[len(targets)-1] != next) {
			targets = append(targets, next)
		}
		wasMoving := ctrl.State == component.EnemyMoving

		sched.Update(w)

		if ctrl, ok := ecs.Get(w, e, component.EnemyControllerComponent.Kind()); ok && wasMoving && ctrl.State == component.EnemyAttacking {
			tf, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			arrivals = append(arrivals, tf.Pos())
		}
	}

	if ecs.IsAlive(w, e) {
		t.Fatalf("enemy still alive after walking its path")
	}
	want := []cp.Vector{{X: 300}, {X: 0}, {X: -300}}
	if len(targets) != len(want) {
		t.Fatalf("targets = %v, want %v", targets, want)
	}
	for i := range want {
		if !nearVec(targets[i], want[i]) {
			t.Fatalf("target %d = %v, want %v", i, targets[i], want[i])
		}
	}
	if len(arrivals) != 2 || !nearVec(arrivals[0], want[0]) || !nearVec(arrivals[1], want[1]) {
		t.Fatalf("attack positions = %v, want first two waypoints", arrivals)
	}
	if ecs.Has(w, e, component.LineUpBulletsComponent.Kind()) {
		t.Fatalf("ring survived its owner")
	}
}

func TestLineUpBulletsRing(t *testing.T) {
	tuning := loadTuning(t)
	w := newWorld(t, tuning.Enemy.Ring.Interval)

	e, err := entity.NewEnemy(w, tuning.Enemy, cp.Vector{X: 10, Y: 20}, []cp.Vector{{X: 0, Y: 0}, {X: 10, Y: 20}})
	if err != nil {
		t.Fatalf("NewEnemy: %v", err)
	}
	ctrl, _ := ecs.Get(w, e, component.EnemyControllerComponent.Kind())
	ctrl.State = component.EnemyAttacking
	ring := component.NewLineUpBullets(ctrl.Ring)
	if err := ecs.Add(w, e, component.LineUpBulletsComponent.Kind(), &ring); err != nil {
		t.Fatalf("add ring: %v", err)
	}

	lineUp := NewLineUpBulletsSystem(tuning.Enemy)
	done := NewEnemyAttackDoneSystem()
	num := tuning.Enemy.Ring.Num
	radius := tuning.Enemy.Ring.Radius

	for i := 0; i < num; i++ {
		lineUp.Update(w)
	}
	held, _ := ecs.Get(w, e, component.LineUpBulletsComponent.Kind())
	if len(held.Bullets) != num || held.Done {
		t.Fatalf("after %d ticks: %d bullets, done=%v", num, len(held.Bullets), held.Done)
	}
	for k, lb := range held.Bullets {
		a := 2 * math.Pi / float64(num) * float64(k)
		want := cp.Vector{X: -math.Sin(a), Y: math.Cos(a)}.Mult(radius)
		if !nearVec(lb.Offset, want) {
			t.Fatalf("bullet %d offset = %v, want %v", k, lb.Offset, want)
		}
		b := ecs.Entity(lb.Bullet)
		if ecs.Has(w, b, component.VelocityComponent.Kind()) {
			t.Fatalf("bullet %d moving before release", k)
		}
		tf, _ := ecs.Get(w, b, component.TransformComponent.Kind())
		if !nearVec(tf.Pos(), cp.Vector{X: 10, Y: 20}.Add(want)) {
			t.Fatalf("bullet %d at %v", k, tf.Pos())
		}
	}

	done.Update(w)
	if ctrl.State != component.EnemyAttacking {
		t.Fatalf("returned to moving before release")
	}

	lineUp.Update(w)
	if !held.Done {
		t.Fatalf("ring not done after release tick")
	}
	for k, lb := range held.Bullets {
		vel, ok := ecs.Get(w, ecs.Entity(lb.Bullet), component.VelocityComponent.Kind())
		if !ok || !nearVec(cp.Vector{X: vel.X, Y: vel.Y}, lb.Offset) {
			t.Fatalf("bullet %d velocity = %v, want %v", k, vel, lb.Offset)
		}
	}

	transitions := 0
	for i := 0; i < 3; i++ {
		before := ctrl.State
		done.Update(w)
		if before == component.EnemyAttacking && ctrl.State == component.EnemyMoving {
			transitions++
		}
	}
	if transitions != 1 {
		t.Fatalf("transitions to moving = %d, want 1", transitions)
	}
	if ecs.Has(w, e, component.LineUpBulletsComponent.Kind()) {
		t.Fatalf("ring not removed")
	}
	if n := len(ecs.Query(w, component.BulletComponent.Kind())); n != num {
		t.Fatalf("bullets in world = %d, want %d", n, num)
	}
}
