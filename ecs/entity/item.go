package entity

import (
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
	"github.com/milk9111/raindrop/prefabs"
)

func NewItem(w *ecs.World, spec prefabs.ItemSpec, pos cp.Vector) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	phys := component.PhysicsBody{Radius: spec.Radius}
	if err := body(w, e, pos, component.LayerItem, phys, appearance(spec.Appearance, spec.Radius, '+')); err != nil {
		return fail(w, e, "item", err)
	}
	if err := ecs.Add(w, e, component.ItemComponent.Kind(), &component.Item{Radius: spec.Radius}); err != nil {
		return fail(w, e, "item: add item", err)
	}
	return e, nil
}

// ScatterItems drops n items at uniform random angles around center, each at
// rand*radius from it.
func ScatterItems(w *ecs.World, spec prefabs.ItemSpec, rng *rand.Rand, center cp.Vector, n int, radius float64) []ecs.Entity {
	out := make([]ecs.Entity, 0, n)
	for i := 0; i < n; i++ {
		r := rng.Float64() * radius
		theta := rng.Float64() * 2 * math.Pi
		if e, err := NewItem(w, spec, center.Add(cp.ForAngle(theta).Mult(r))); err == nil {
			out = append(out, e)
		}
	}
	return out
}

// ScatterItemsSquare drops n items uniformly in a square of side spread
// centered on center.
func ScatterItemsSquare(w *ecs.World, spec prefabs.ItemSpec, rng *rand.Rand, center cp.Vector, n int, spread float64) []ecs.Entity {
	out := make([]ecs.Entity, 0, n)
	for i := 0; i < n; i++ {
		dev := cp.Vector{X: rng.Float64() - 0.5, Y: rng.Float64() - 0.5}.Mult(spread)
		if e, err := NewItem(w, spec, center.Add(dev)); err == nil {
			out = append(out, e)
		}
	}
	return out
}
