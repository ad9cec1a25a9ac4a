package system

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
	"github.com/milk9111/raindrop/ecs/entity"
	"github.com/milk9111/raindrop/prefabs"
)

func loadTuning(t *testing.T) *prefabs.Tuning {
	t.Helper()
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	return tuning
}

func newWorld(t *testing.T, dt float64) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	w.SetDelta(dt)
	w.SetRand(rand.New(rand.NewPCG(7, 11)))
	return w
}

func newCamera(t *testing.T, w *ecs.World, tuning *prefabs.Tuning) *component.Camera {
	t.Helper()
	e, err := entity.NewCamera(w, tuning.Game)
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	cam, _ := ecs.Get(w, e, component.CameraComponent.Kind())
	return cam
}

func setContacts(t *testing.T, w *ecs.World, e ecs.Entity, with ...ecs.Entity) {
	t.Helper()
	raw := make([]uint64, 0, len(with))
	for _, other := range with {
		raw = append(raw, uint64(other))
	}
	if err := ecs.Add(w, e, component.ContactsComponent.Kind(), &component.Contacts{With: raw}); err != nil {
		t.Fatalf("add contacts: %v", err)
	}
}

func newBullet(t *testing.T, w *ecs.World, faction component.Faction, pos cp.Vector) ecs.Entity {
	t.Helper()
	e, err := entity.NewBullet(w, entity.BulletOptions{Faction: faction, Pos: pos, Radius: 3})
	if err != nil {
		t.Fatalf("NewBullet: %v", err)
	}
	return e
}

func countEvents(w *ecs.World, r *ecs.EventReader, kind ecs.EventKind) int {
	return len(ecs.ReadEvents(w, r, kind))
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func nearVec(a, b cp.Vector) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}
