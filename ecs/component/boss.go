package component

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/raindrop/common"
)

// BossPhase is the boss controller's current mode. Idle is only ever the
// initial phase; after it the phases repeat in a fixed cycle.
type BossPhase int

const (
	BossIdle BossPhase = iota
	BossAttackBottom
	BossMovingToTop
	BossAttackTop
	BossMovingToBottom
	BossRotating
)

var bossPhaseNames = map[BossPhase]string{
	BossIdle:           "idle",
	BossAttackBottom:   "attack_bottom",
	BossMovingToTop:    "moving_to_top",
	BossAttackTop:      "attack_top",
	BossMovingToBottom: "moving_to_bottom",
	BossRotating:       "rotating",
}

func (p BossPhase) String() string {
	if name, ok := bossPhaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// NextBossPhase is the transition table applied when a phase reports done.
func NextBossPhase(p BossPhase) BossPhase {
	switch p {
	case BossIdle:
		return BossAttackBottom
	case BossAttackBottom:
		return BossMovingToTop
	case BossMovingToTop:
		return BossAttackTop
	case BossAttackTop:
		return BossMovingToBottom
	case BossMovingToBottom:
		return BossRotating
	case BossRotating:
		return BossAttackBottom
	default:
		return BossIdle
	}
}

// Moving reports whether the phase is driven by a tween.
func (p BossPhase) Moving() bool {
	return p == BossMovingToTop || p == BossMovingToBottom || p == BossRotating
}

type Boss struct {
	Phase BossPhase

	Size    float64
	Padding float64

	BulletRadius   float64
	BulletSpeed    float64
	AttackInterval float64
	AttackBudget   int
	ItemCount      int
	ItemRadius     float64

	SegmentDuration float64
	TurnDuration    float64
	RotateDelay     float64
	RotateDuration  float64

	Died bool
}

var BossComponent = NewComponent[Boss]()

// AttackState is armed on entry to an attack phase and removed when its
// budget runs out.
type AttackState struct {
	Direction cp.Vector
	Timer     common.Timer
	Fired     int
	Budget    int
}

var AttackStateComponent = NewComponent[AttackState]()

// PhaseDone is the generic completion signal a phase raises on its boss.
type PhaseDone struct{}

var PhaseDoneComponent = NewComponent[PhaseDone]()
