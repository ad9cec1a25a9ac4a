package component

// Input stores per-frame input state for the player.
type Input struct {
	CursorX float64
	CursorY float64
	// Attack is the "just pressed" edge, true for a single tick.
	Attack bool
}

var InputComponent = NewComponent[Input]()
