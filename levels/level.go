package levels

import (
	"fmt"
	"slices"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/raindrop/ecs/component"
)

// Constants are injected into level scripts as globals.
type Constants struct {
	ScreenWidth  float64
	ScreenHeight float64
	EnemySize    float64
	BossSize     float64
}

// Enemy is an authored enemy. Waypoints are in travel order.
type Enemy struct {
	Start     cp.Vector
	Waypoints []cp.Vector
}

type Level struct {
	Name    string
	Enemies []Enemy
	Boss    *cp.Vector
}

// Load compiles and runs the named level script. The script must define
// `enemies`, an array of {start: [x, y], waypoints: [[x, y], ...]}, and may
// define `boss` as [x, y].
func Load(name string, consts Constants) (*Level, error) {
	src, err := Source(name)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	lvl, err := Parse(src, consts)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	lvl.Name = name
	return lvl, nil
}

// Parse runs a level script from source.
func Parse(src []byte, consts Constants) (*Level, error) {
	script := tengo.NewScript(src)
	_ = script.Add("screen_width", consts.ScreenWidth)
	_ = script.Add("screen_height", consts.ScreenHeight)
	_ = script.Add("enemy_size", consts.EnemySize)
	_ = script.Add("boss_size", consts.BossSize)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}

	if !compiled.IsDefined("enemies") {
		return nil, fmt.Errorf("script does not define enemies")
	}
	lvl := &Level{}
	for i, raw := range compiled.Get("enemies").Array() {
		entry, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("enemies[%d]: expected map, got %T", i, raw)
		}
		start, err := toVector(entry["start"])
		if err != nil {
			return nil, fmt.Errorf("enemies[%d].start: %w", i, err)
		}
		list, ok := entry["waypoints"].([]any)
		if !ok || len(list) == 0 {
			return nil, fmt.Errorf("enemies[%d].waypoints: expected non-empty array", i)
		}
		enemy := Enemy{Start: start}
		for j, p := range list {
			v, err := toVector(p)
			if err != nil {
				return nil, fmt.Errorf("enemies[%d].waypoints[%d]: %w", i, j, err)
			}
			enemy.Waypoints = append(enemy.Waypoints, v)
		}
		lvl.Enemies = append(lvl.Enemies, enemy)
	}

	if compiled.IsDefined("boss") {
		if raw := compiled.Get("boss").Value(); raw != nil {
			v, err := toVector(raw)
			if err != nil {
				return nil, fmt.Errorf("boss: %w", err)
			}
			lvl.Boss = &v
		}
	}
	return lvl, nil
}

// Backlog converts the level to the spawn driver's component. Waypoints are
// reversed so the next target is the last element.
func (l *Level) Backlog() component.Level {
	out := component.Level{Name: l.Name}
	for _, e := range l.Enemies {
		wps := slices.Clone(e.Waypoints)
		slices.Reverse(wps)
		out.Enemies = append(out.Enemies, component.LevelEnemy{Start: e.Start, Waypoints: wps})
	}
	if l.Boss != nil {
		b := *l.Boss
		out.Boss = &b
	}
	return out
}

func toVector(raw any) (cp.Vector, error) {
	arr, ok := raw.([]any)
	if !ok || len(arr) != 2 {
		return cp.Vector{}, fmt.Errorf("expected [x, y], got %v", raw)
	}
	x, err := toFloat(arr[0])
	if err != nil {
		return cp.Vector{}, err
	}
	y, err := toFloat(arr[1])
	if err != nil {
		return cp.Vector{}, err
	}
	return cp.Vector{X: x, Y: y}, nil
}

func toFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	case int:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", raw)
	}
}
