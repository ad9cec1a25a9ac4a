package component

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/raindrop/common"
)

type TweenProperty int

const (
	TweenPosition TweenProperty = iota
	TweenRotation
)

// TweenSegment interpolates From to To over Duration seconds. Rotation tracks
// read the angle from X.
type TweenSegment struct {
	From     cp.Vector
	To       cp.Vector
	Duration float64
	Ease     common.Ease
}

// TweenTrack plays its segments back to back after Delay. A track flagged
// Notify raises one completion event when its last segment ends.
type TweenTrack struct {
	Property TweenProperty
	Delay    float64
	Segments []TweenSegment
	Notify   bool

	Finished bool
}

// Length is the track's total playing time including the delay.
func (t *TweenTrack) Length() float64 {
	total := t.Delay
	for _, seg := range t.Segments {
		total += seg.Duration
	}
	return total
}

// Sample returns the track value at elapsed seconds and whether the track has
// started. Before the delay ends the track has no opinion.
func (t *TweenTrack) Sample(elapsed float64) (cp.Vector, bool) {
	if len(t.Segments) == 0 || elapsed < t.Delay {
		return cp.Vector{}, false
	}
	local := elapsed - t.Delay
	for _, seg := range t.Segments {
		if local < seg.Duration {
			f := seg.Ease.Apply(local / seg.Duration)
			return cp.Vector{
				X: common.Lerp(seg.From.X, seg.To.X, f),
				Y: common.Lerp(seg.From.Y, seg.To.Y, f),
			}, true
		}
		local -= seg.Duration
	}
	return t.Segments[len(t.Segments)-1].To, true
}

type Tween struct {
	Tracks  []TweenTrack
	Elapsed float64
}

var TweenComponent = NewComponent[Tween]()
