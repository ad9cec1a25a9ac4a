package ecs

import (
	"math/rand/v2"

	"github.com/milk9111/raindrop/ecs/component"
)

// World owns entities, component stores, the event queue and the clock for
// the current tick.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue

	delta   float64
	elapsed float64
	rng     *rand.Rand
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]*SparseSet),
		rng:    rand.New(rand.NewPCG(1, 2)),
	}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity drops every component of e and marks it dead. It reports
// whether e was alive.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	return w.entities.destroy(e)
}

// DestroyRecursive destroys e and every entity parented to it, depth first.
func DestroyRecursive(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, child := range Children(w, e) {
		DestroyRecursive(w, child)
	}
	return DestroyEntity(w, e)
}

// Children returns the live entities whose Parent component points at e.
func Children(w *World, e Entity) []Entity {
	var out []Entity
	ForEach(w, component.ParentComponent.Kind(), func(child Entity, p *component.Parent) {
		if Entity(p.Entity) == e {
			out = append(out, child)
		}
	})
	return out
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// AddComponent stores value under the given kind id, replacing any previous value.
func (w *World) AddComponent(e Entity, id component.ComponentID, value any) error {
	if w == nil || id == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(id, true).Set(e, value)
	return nil
}

// RemoveComponent deletes the component of the given kind id.
func (w *World) RemoveComponent(e Entity, id component.ComponentID) bool {
	if w == nil {
		return false
	}
	return w.store(id, false).Remove(e)
}

// HasComponent reports whether e carries the kind id.
func (w *World) HasComponent(e Entity, id component.ComponentID) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(id, false).Has(e)
}

// GetComponent returns the raw stored value.
func (w *World) GetComponent(e Entity, id component.ComponentID) (any, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	v := w.store(id, false).Get(e)
	return v, v != nil
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetDelta records the duration of the tick about to run, in seconds.
func (w *World) SetDelta(dt float64) {
	if w == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	w.delta = dt
	w.elapsed += dt
}

// Delta returns the current tick's duration in seconds.
func (w *World) Delta() float64 {
	if w == nil {
		return 0
	}
	return w.delta
}

// Elapsed returns the sum of all tick durations.
func (w *World) Elapsed() float64 {
	if w == nil {
		return 0
	}
	return w.elapsed
}

// SetRand replaces the world's random source. Tests seed it for determinism.
func (w *World) SetRand(r *rand.Rand) {
	if w == nil || r == nil {
		return
	}
	w.rng = r
}

// Rand returns the world's random source.
func (w *World) Rand() *rand.Rand {
	if w.rng == nil {
		w.rng = rand.New(rand.NewPCG(1, 2))
	}
	return w.rng
}
