package component

// Camera is the scrolling view. Y decreases as the level advances.
type Camera struct {
	X      float64
	Y      float64
	Width  float64
	Height float64

	ScrollSpeed float64
	Multiplier  float64
	Paused      bool
}

var CameraComponent = NewComponent[Camera]()
