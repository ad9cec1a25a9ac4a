package component

import "github.com/jakecoffman/cp"

type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

func (t *Transform) Pos() cp.Vector {
	return cp.Vector{X: t.X, Y: t.Y}
}

func (t *Transform) SetPos(v cp.Vector) {
	t.X = v.X
	t.Y = v.Y
}

var TransformComponent = NewComponent[Transform]()

// Velocity is in world units per second.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
