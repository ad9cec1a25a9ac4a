package component

type Health struct {
	Current int
	Max     int
	// Bar is the child HealthBar entity, zero until one is attached.
	Bar uint64
}

// Percent returns Current/Max in [0, 1].
func (h *Health) Percent() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	p := float64(h.Current) / float64(h.Max)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Damage subtracts amount and reports whether the owner just died.
func (h *Health) Damage(amount int) bool {
	if h == nil || h.Current <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current == 0
}

var HealthComponent = NewComponent[Health]()

// HealthBar is drawn above its parent. Fill tracks the owner's Percent and
// the bar stays hidden while the owner is unhurt.
type HealthBar struct {
	Fill    float64
	Hidden  bool
	Width   float64
	OffsetY float64
}

var HealthBarComponent = NewComponent[HealthBar]()
