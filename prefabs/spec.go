package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type GameSpec struct {
	ScreenWidth       float64 `yaml:"screen_width"`
	ScreenHeight      float64 `yaml:"screen_height"`
	TPS               int     `yaml:"tps"`
	ScrollSpeed       float64 `yaml:"scroll_speed"`
	VictoryMultiplier float64 `yaml:"victory_multiplier"`
	CullDistance      float64 `yaml:"cull_distance"`
	TitleDrift        float64 `yaml:"title_drift"`
	DeathDelay        float64 `yaml:"death_delay"`
	VictoryDelay      float64 `yaml:"victory_delay"`
	VictoryFlySpeed   float64 `yaml:"victory_fly_speed"`
	BulletGravity     float64 `yaml:"bullet_gravity"`
	Level             string  `yaml:"level"`
}

type PlayerSpec struct {
	Radius       float64        `yaml:"radius"`
	MaxArea      float64        `yaml:"max_area"`
	MinRadius    float64        `yaml:"min_radius"`
	HitArea      float64        `yaml:"hit_area"`
	ItemArea     float64        `yaml:"item_area"`
	AttackArea   float64        `yaml:"attack_area"`
	VolleyRadius float64        `yaml:"volley_radius"`
	BulletsPer50 int            `yaml:"bullets_per_50"`
	BulletSpeed  float64        `yaml:"bullet_speed"`
	BulletRadius float64        `yaml:"bullet_radius"`
	Appearance   AppearanceSpec `yaml:"appearance"`
	Bullet       AppearanceSpec `yaml:"bullet_appearance"`
}

type RingSpec struct {
	Num          int     `yaml:"num"`
	Interval     float64 `yaml:"interval"`
	Radius       float64 `yaml:"radius"`
	BulletRadius float64 `yaml:"bullet_radius"`
	Spin         float64 `yaml:"spin"`
}

type EnemySpec struct {
	Size        float64        `yaml:"size"`
	Speed       float64        `yaml:"speed"`
	Health      int            `yaml:"health"`
	Damage      int            `yaml:"damage"`
	Ring        RingSpec       `yaml:"ring"`
	DeathItems  int            `yaml:"death_items"`
	DeathSpread float64        `yaml:"death_spread"`
	Appearance  AppearanceSpec `yaml:"appearance"`
	Bullet      AppearanceSpec `yaml:"bullet_appearance"`
}

type BossSpec struct {
	Size            float64        `yaml:"size"`
	Padding         float64        `yaml:"padding"`
	Health          int            `yaml:"health"`
	Damage          int            `yaml:"damage"`
	BulletRadius    float64        `yaml:"bullet_radius"`
	BulletSpeed     float64        `yaml:"bullet_speed"`
	AttackInterval  float64        `yaml:"attack_interval"`
	AttackBudget    int            `yaml:"attack_budget"`
	ItemCount       int            `yaml:"item_count"`
	ItemRadius      float64        `yaml:"item_radius"`
	SegmentDuration float64        `yaml:"segment_duration"`
	TurnDuration    float64        `yaml:"turn_duration"`
	RotateDelay     float64        `yaml:"rotate_delay"`
	RotateDuration  float64        `yaml:"rotate_duration"`
	Appearance      AppearanceSpec `yaml:"appearance"`
}

type ItemSpec struct {
	Radius     float64        `yaml:"radius"`
	Appearance AppearanceSpec `yaml:"appearance"`
}

type AppearanceSpec struct {
	Color YAMLColor `yaml:"color"`
	Glyph string    `yaml:"glyph"`
	Layer int       `yaml:"layer"`
}

// Rune returns the first rune of Glyph, or fallback.
func (a AppearanceSpec) Rune(fallback rune) rune {
	for _, r := range a.Glyph {
		return r
	}
	return fallback
}

// RGBA returns the color, opaque white when unset.
func (a AppearanceSpec) RGBA() color.RGBA {
	if a.Color.Color == nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	r, g, b, al := a.Color.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(al >> 8)}
}

// Tuning is every prefab the game needs, loaded together.
type Tuning struct {
	Game   GameSpec
	Player PlayerSpec
	Enemy  EnemySpec
	Boss   BossSpec
	Item   ItemSpec
}

func LoadTuning() (*Tuning, error) {
	var t Tuning
	var err error
	if t.Game, err = LoadSpec[GameSpec]("game.yaml"); err != nil {
		return nil, err
	}
	if t.Player, err = LoadSpec[PlayerSpec]("player.yaml"); err != nil {
		return nil, err
	}
	if t.Enemy, err = LoadSpec[EnemySpec]("enemy.yaml"); err != nil {
		return nil, err
	}
	if t.Boss, err = LoadSpec[BossSpec]("boss.yaml"); err != nil {
		return nil, err
	}
	if t.Item, err = LoadSpec[ItemSpec]("item.yaml"); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate rejects values that would stall or divide by zero at runtime.
func (t *Tuning) Validate() error {
	switch {
	case t.Game.ScreenWidth <= 0 || t.Game.ScreenHeight <= 0:
		return fmt.Errorf("prefabs: game.yaml: screen size must be positive")
	case t.Player.MaxArea <= 0:
		return fmt.Errorf("prefabs: player.yaml: max_area must be positive")
	case t.Player.Radius*t.Player.Radius > t.Player.MaxArea:
		return fmt.Errorf("prefabs: player.yaml: radius %v exceeds max_area %v", t.Player.Radius, t.Player.MaxArea)
	case t.Enemy.Ring.Num <= 0 || t.Enemy.Ring.Interval <= 0:
		return fmt.Errorf("prefabs: enemy.yaml: ring num and interval must be positive")
	case t.Boss.AttackBudget <= 0 || t.Boss.AttackInterval <= 0:
		return fmt.Errorf("prefabs: boss.yaml: attack budget and interval must be positive")
	case t.Boss.SegmentDuration <= 0 || t.Boss.RotateDuration <= 0:
		return fmt.Errorf("prefabs: boss.yaml: tween durations must be positive")
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
