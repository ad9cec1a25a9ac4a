package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// GameplayTag marks everything spawned by a run so it can be swept when the
// run ends.
type GameplayTag struct{}

var GameplayTagComponent = NewComponent[GameplayTag]()

// Spin rotates an entity at a constant rate (radians per second).
type Spin struct {
	Speed float64
}

var SpinComponent = NewComponent[Spin]()
