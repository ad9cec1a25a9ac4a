package common

// Ease maps normalized time in [0, 1] to progress in [0, 1].
type Ease int

const (
	EaseLinear Ease = iota
	EaseQuadraticInOut
)

func (e Ease) Apply(t float64) float64 {
	t = Clamp(t, 0, 1)
	switch e {
	case EaseQuadraticInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		u := -2*t + 2
		return 1 - u*u/2
	default:
		return t
	}
}
