package component

// Parent links a child entity (health bar, attached effect) to its owner so a
// recursive despawn takes it along.
type Parent struct {
	Entity uint64
}

var ParentComponent = NewComponent[Parent]()
