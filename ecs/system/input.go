package system

import (
	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
)

// InputState is one tick of frontend input. Cursor coordinates are in screen
// space with the origin at the top-left corner.
type InputState struct {
	CursorX float64
	CursorY float64
	// AttackPressed is the "just pressed" edge.
	AttackPressed bool
}

// InputSource supplies the current tick's input.
type InputSource interface {
	Input() InputState
}

// StaticInput is an InputSource returning a fixed state, used by tests and by
// frontends that poll before each tick.
type StaticInput struct {
	State InputState
}

func (s *StaticInput) Input() InputState {
	if s == nil {
		return InputState{}
	}
	return s.State
}

// InputSystem converts the cursor into world space and stores it on the
// player, which follows it.
type InputSystem struct {
	source InputSource
	// Attack is the latest attack edge, also read by the game flow at the
	// title screen when no player exists.
	Attack bool
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil || i.source == nil {
		return
	}
	state := i.source.Input()
	i.Attack = state.AttackPressed

	camEnt, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEnt, component.CameraComponent.Kind())
	wx, wy := ScreenToWorld(cam, state.CursorX, state.CursorY)

	ecs.ForEach3(w, component.InputComponent.Kind(), component.TransformComponent.Kind(), component.PlayerComponent.Kind(), func(_ ecs.Entity, input *component.Input, tf *component.Transform, _ *component.Player) {
		input.CursorX = wx
		input.CursorY = wy
		input.Attack = state.AttackPressed
		tf.X = wx
		tf.Y = wy
	})
}

// ScreenToWorld maps a screen point to world space. World Y grows upward.
func ScreenToWorld(cam *component.Camera, sx, sy float64) (float64, float64) {
	return cam.X + sx - cam.Width/2, cam.Y + cam.Height/2 - sy
}

// WorldToScreen is the inverse of ScreenToWorld.
func WorldToScreen(cam *component.Camera, x, y float64) (float64, float64) {
	return x - cam.X + cam.Width/2, cam.Y + cam.Height/2 - y
}
