package system

import (
	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
)

// arrivalEpsilon is the distance under which an enemy counts as arrived.
const arrivalEpsilon = 0.1

// EnemyMovementSystem walks moving enemies toward their next waypoint. On
// arrival the waypoint is popped; an empty list despawns the enemy, otherwise
// it starts a ring attack.
type EnemyMovementSystem struct{}

func NewEnemyMovementSystem() *EnemyMovementSystem {
	return &EnemyMovementSystem{}
}

func (s *EnemyMovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach2(w, component.EnemyControllerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, ctrl *component.EnemyController, tf *component.Transform) {
		if ctrl.State != component.EnemyMoving {
			return
		}
		target, ok := ctrl.Next()
		if !ok {
			ecs.DestroyRecursive(w, e)
			return
		}

		pos := tf.Pos()
		diff := target.Sub(pos)
		step := ctrl.Speed * dt
		dist := diff.Length()
		if dist < arrivalEpsilon || dist <= step {
			tf.SetPos(target)
			ctrl.Waypoints = ctrl.Waypoints[:len(ctrl.Waypoints)-1]
			if len(ctrl.Waypoints) == 0 {
				ecs.DestroyRecursive(w, e)
				return
			}
			ctrl.State = component.EnemyAttacking
			ring := component.NewLineUpBullets(ctrl.Ring)
			_ = ecs.Add(w, e, component.LineUpBulletsComponent.Kind(), &ring)
			return
		}
		tf.SetPos(pos.Add(diff.Normalize().Mult(step)))
	})
}

// EnemyAttackDoneSystem returns an attacking enemy to Moving once its ring
// has been released, dropping the ring.
type EnemyAttackDoneSystem struct{}

func NewEnemyAttackDoneSystem() *EnemyAttackDoneSystem {
	return &EnemyAttackDoneSystem{}
}

func (s *EnemyAttackDoneSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.EnemyControllerComponent.Kind(), component.LineUpBulletsComponent.Kind(), func(e ecs.Entity, ctrl *component.EnemyController, ring *component.LineUpBullets) {
		if ctrl.State != component.EnemyAttacking || !ring.Done {
			return
		}
		ecs.Remove(w, e, component.LineUpBulletsComponent.Kind())
		ctrl.State = component.EnemyMoving
	})
}
