package levels

import (
	"testing"

	"github.com/jakecoffman/cp"
)

var testConstants = Constants{ScreenWidth: 800, ScreenHeight: 600, EnemySize: 80, BossSize: 100}

func TestLoadStage1(t *testing.T) {
	lvl, err := Load("stage1", testConstants)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(lvl.Enemies) != 7 {
		t.Fatalf("expected 7 enemies, got %d", len(lvl.Enemies))
	}
	if lvl.Boss == nil || *lvl.Boss != (cp.Vector{X: 0, Y: -1000}) {
		t.Fatalf("unexpected boss position %v", lvl.Boss)
	}
	first := lvl.Enemies[0]
	if first.Start != (cp.Vector{X: -440, Y: 0}) {
		t.Fatalf("unexpected first start %v", first.Start)
	}
	want := []cp.Vector{{X: -400.0 / 3, Y: 0}, {X: 400.0 / 3, Y: -100}, {X: 440, Y: 0}}
	for i, wp := range first.Waypoints {
		if wp.Distance(want[i]) > 1e-9 {
			t.Fatalf("waypoint %d: expected %v, got %v", i, want[i], wp)
		}
	}
	last := lvl.Enemies[6]
	if len(last.Waypoints) != 4 {
		t.Fatalf("expected diver to have 4 waypoints, got %d", len(last.Waypoints))
	}
}

func TestBacklogReversesWaypoints(t *testing.T) {
	lvl := &Level{
		Name: "t",
		Enemies: []Enemy{{
			Start:     cp.Vector{X: -500},
			Waypoints: []cp.Vector{{X: -300}, {X: 0}, {X: 300}},
		}},
	}
	backlog := lvl.Backlog()
	got := backlog.Enemies[0].Waypoints
	if got[len(got)-1] != (cp.Vector{X: -300}) {
		t.Fatalf("first travel target must be last in backlog, got %v", got)
	}
	if lvl.Enemies[0].Waypoints[0] != (cp.Vector{X: -300}) {
		t.Fatalf("Backlog must not mutate the level")
	}
	if backlog.Boss != nil {
		t.Fatalf("expected no boss")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", `enemies := [`},
		{"missing_enemies", `boss := [0, 0]`},
		{"bad_entry", `enemies := [1]`},
		{"empty_waypoints", `enemies := [{start: [0, 0], waypoints: []}]`},
		{"bad_vector", `enemies := [{start: [0], waypoints: [[0, 0]]}]`},
		{"bad_number", `enemies := [{start: ["a", 0], waypoints: [[0, 0]]}]`},
		{"bad_boss", `enemies := []
boss := "x"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.src), testConstants); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestParseUsesConstants(t *testing.T) {
	lvl, err := Parse([]byte(`enemies := [{start: [screen_width, screen_height], waypoints: [[enemy_size, boss_size]]}]`), testConstants)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if lvl.Enemies[0].Start != (cp.Vector{X: 800, Y: 600}) {
		t.Fatalf("unexpected start %v", lvl.Enemies[0].Start)
	}
	if lvl.Enemies[0].Waypoints[0] != (cp.Vector{X: 80, Y: 100}) {
		t.Fatalf("unexpected waypoint %v", lvl.Enemies[0].Waypoints[0])
	}
	if lvl.Boss != nil {
		t.Fatalf("expected no boss")
	}
}
