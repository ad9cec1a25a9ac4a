package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
)

// ContactSystem mirrors every collidable into a Chipmunk space as a
// kinematic sensor and rebuilds Contacts for the player and enemies each
// tick. Category and mask come from CollisionLayer, so only pairs the game
// reacts to are reported.
type ContactSystem struct {
	space  *cp.Space
	bodies map[ecs.Entity]*contactBody
	shapes map[*cp.Shape]ecs.Entity
}

type contactBody struct {
	body   *cp.Body
	shape  *cp.Shape
	radius float64
	width  float64
	height float64
	layer  component.CollisionLayer
}

func NewContactSystem() *ContactSystem {
	return &ContactSystem{
		space:  cp.NewSpace(),
		bodies: make(map[ecs.Entity]*contactBody),
		shapes: make(map[*cp.Shape]ecs.Entity),
	}
}

func (cs *ContactSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}
	if cs.space == nil {
		cs.space = cp.NewSpace()
	}

	cs.removeStale(w)
	cs.sync(w)
	cs.space.Step(w.Delta())
	cs.collect(w)
}

// Reset drops every mirrored body, used when the world is swept.
func (cs *ContactSystem) Reset() {
	if cs == nil {
		return
	}
	for e := range cs.bodies {
		cs.remove(e)
	}
}

func (cs *ContactSystem) removeStale(w *ecs.World) {
	for e := range cs.bodies {
		if !ecs.IsAlive(w, e) || !ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			cs.remove(e)
		}
	}
}

func (cs *ContactSystem) remove(e ecs.Entity) {
	info, ok := cs.bodies[e]
	if !ok {
		return
	}
	if info.shape != nil {
		cs.space.RemoveShape(info.shape)
		delete(cs.shapes, info.shape)
	}
	if info.body != nil {
		cs.space.RemoveBody(info.body)
	}
	delete(cs.bodies, e)
}

func (cs *ContactSystem) sync(w *ecs.World) {
	ecs.ForEach3(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), component.CollisionLayerComponent.Kind(), func(e ecs.Entity, phys *component.PhysicsBody, tf *component.Transform, layer *component.CollisionLayer) {
		info, ok := cs.bodies[e]
		if ok && (info.radius != phys.Radius || info.width != phys.Width || info.height != phys.Height || info.layer != *layer) {
			cs.remove(e)
			ok = false
		}
		if !ok {
			info = cs.create(e, phys, *layer)
		}
		info.body.SetPosition(tf.Pos())
		info.body.SetAngle(tf.Rotation)
		phys.Body = info.body
		phys.Shape = info.shape
	})
}

func (cs *ContactSystem) create(e ecs.Entity, phys *component.PhysicsBody, layer component.CollisionLayer) *contactBody {
	body := cp.NewKinematicBody()
	var shape *cp.Shape
	if phys.Width > 0 {
		shape = cp.NewBox(body, phys.Width, phys.Height, 0)
	} else {
		shape = cp.NewCircle(body, phys.Radius, cp.Vector{})
	}
	shape.SetSensor(true)
	shape.SetFilter(cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: uint(layer.Category),
		Mask:       uint(layer.Mask),
	})

	cs.space.AddBody(body)
	cs.space.AddShape(shape)

	info := &contactBody{
		body:   body,
		shape:  shape,
		radius: phys.Radius,
		width:  phys.Width,
		height: phys.Height,
		layer:  layer,
	}
	cs.bodies[e] = info
	cs.shapes[shape] = e
	return info
}

// collect rebuilds Contacts for contact receivers: the player and enemies.
func (cs *ContactSystem) collect(w *ecs.World) {
	for e, info := range cs.bodies {
		if info.layer.Category != component.LayerPlayer && info.layer.Category != component.LayerEnemy {
			continue
		}
		var with []uint64
		cs.space.ShapeQuery(info.shape, func(other *cp.Shape, _ *cp.ContactPointSet) {
			if target, ok := cs.shapes[other]; ok && target != e {
				with = append(with, uint64(target))
			}
		})
		contacts, ok := ecs.Get(w, e, component.ContactsComponent.Kind())
		if !ok {
			contacts = &component.Contacts{}
			if err := ecs.Add(w, e, component.ContactsComponent.Kind(), contacts); err != nil {
				continue
			}
		}
		contacts.With = with
	}
}
