package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data. A positive Width makes a box
// collider, otherwise a circle of Radius. Body and Shape are created lazily by
// the contact system.
type PhysicsBody struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Radius float64
	Width  float64
	Height float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// Contacts is the set of entities touching this one, rebuilt every tick.
type Contacts struct {
	With []uint64
}

var ContactsComponent = NewComponent[Contacts]()
