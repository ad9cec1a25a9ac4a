package system

import (
	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
)

// BulletMotionSystem integrates velocity for everything that has one.
// Bullets with Gravity also accelerate toward -Y.
type BulletMotionSystem struct{}

func NewBulletMotionSystem() *BulletMotionSystem {
	return &BulletMotionSystem{}
}

func (s *BulletMotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach2(w, component.VelocityComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, vel *component.Velocity, tf *component.Transform) {
		if b, ok := ecs.Get(w, e, component.BulletComponent.Kind()); ok && b.Gravity != 0 {
			vel.Y -= b.Gravity * dt
		}
		tf.X += vel.X * dt
		tf.Y += vel.Y * dt
	})
}

// SpinSystem rotates spinning entities.
type SpinSystem struct{}

func NewSpinSystem() *SpinSystem {
	return &SpinSystem{}
}

func (s *SpinSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach2(w, component.SpinComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, spin *component.Spin, tf *component.Transform) {
		tf.Rotation += spin.Speed * dt
	})
}

// BulletCleanupSystem despawns bullets that drift too far from the camera.
type BulletCleanupSystem struct {
	distance float64
}

func NewBulletCleanupSystem(distance float64) *BulletCleanupSystem {
	return &BulletCleanupSystem{distance: distance}
}

func (s *BulletCleanupSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	camEnt, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEnt, component.CameraComponent.Kind())
	ecs.ForEach2(w, component.BulletComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Bullet, tf *component.Transform) {
		dx := tf.X - cam.X
		dy := tf.Y - cam.Y
		if dx*dx+dy*dy > s.distance*s.distance {
			ecs.DestroyRecursive(w, e)
		}
	})
}
