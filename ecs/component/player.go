package component

import "math"

// Player's radius is both its size and its life budget. Gains and losses are
// applied in area (radius squared) so equal amounts cost equal area at any
// size.
type Player struct {
	Radius float64

	StartRadius  float64
	MaxArea      float64
	MinRadius    float64
	HitArea      float64
	ItemArea     float64
	AttackArea   float64
	VolleyRadius float64
	// BulletsPer50 is the volley size at radius 50; it scales linearly with
	// radius.
	BulletsPer50 int
	BulletSpeed  float64
	BulletRadius float64

	Dead bool
}

// Increase adds area (negative to subtract) and returns the new radius,
// sqrt(clamp(r² + area, 0, MaxArea)).
func (p *Player) Increase(area float64) float64 {
	a := p.Radius*p.Radius + area
	if a < 0 {
		a = 0
	}
	if a > p.MaxArea {
		a = p.MaxArea
	}
	p.Radius = math.Sqrt(a)
	return p.Radius
}

// RadiusAfter previews Increase without applying it.
func (p *Player) RadiusAfter(area float64) float64 {
	probe := *p
	return probe.Increase(area)
}

var PlayerComponent = NewComponent[Player]()
