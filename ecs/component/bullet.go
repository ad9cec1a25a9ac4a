package component

type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

type Bullet struct {
	Faction Faction
	Radius  float64
	// Gravity pulls a moving bullet toward -Y, in units per second squared.
	Gravity float64
}

var BulletComponent = NewComponent[Bullet]()
