package component

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/raindrop/common"
)

type EnemyState int

const (
	EnemyMoving EnemyState = iota
	EnemyAttacking
)

func (s EnemyState) String() string {
	switch s {
	case EnemyMoving:
		return "moving"
	case EnemyAttacking:
		return "attacking"
	default:
		return "unknown"
	}
}

// EnemyController drives an enemy along Waypoints, consumed from the end:
// the last element is the next target.
type EnemyController struct {
	State     EnemyState
	Waypoints []cp.Vector
	Speed     float64

	Ring RingConfig
}

// Next returns the current target waypoint.
func (c *EnemyController) Next() (cp.Vector, bool) {
	if c == nil || len(c.Waypoints) == 0 {
		return cp.Vector{}, false
	}
	return c.Waypoints[len(c.Waypoints)-1], true
}

var EnemyControllerComponent = NewComponent[EnemyController]()

// RingConfig is the template for the LineUpBullets an enemy arms on arrival.
type RingConfig struct {
	Num          int
	Interval     float64
	Radius       float64
	BulletRadius float64
	Spin         float64
}

// LinedUpBullet pairs a held bullet with the offset it was placed at. The
// offset doubles as the release velocity.
type LinedUpBullet struct {
	Bullet uint64
	Offset cp.Vector
}

// LineUpBullets places Num still bullets around its owner one per timer tick,
// then releases them all at once.
type LineUpBullets struct {
	Num          int
	Timer        common.Timer
	Angle        float64
	Radius       float64
	BulletRadius float64
	Spin         float64
	Bullets      []LinedUpBullet
	Done         bool
}

func NewLineUpBullets(cfg RingConfig) LineUpBullets {
	return LineUpBullets{
		Num:          cfg.Num,
		Timer:        common.NewTimer(cfg.Interval, true),
		Radius:       cfg.Radius,
		BulletRadius: cfg.BulletRadius,
		Spin:         cfg.Spin,
	}
}

var LineUpBulletsComponent = NewComponent[LineUpBullets]()
