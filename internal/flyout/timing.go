package flyout

import (
	"time"

	"fyne.io/fyne/v2"
)

// Default flyout constants
const (
	DefaultCartAnchorX    float32 = 300
	DefaultVerticalBias   float32 = 50
	DefaultShrinkScale    float32 = 0.5
	DefaultShrinkDuration         = 600 * time.Millisecond
	DefaultFlyDuration            = 800 * time.Millisecond
)

// Timing holds the geometry and durations of one flyout cycle
type Timing struct {
	CartAnchorX  float32
	VerticalBias float32
	ShrinkScale  float32
	Shrink       time.Duration
	Fly          time.Duration
	Curve        fyne.AnimationCurve
}

// DefaultTiming returns the stock flyout timing with ease-in-out curves
func DefaultTiming() Timing {
	return Timing{
		CartAnchorX:  DefaultCartAnchorX,
		VerticalBias: DefaultVerticalBias,
		ShrinkScale:  DefaultShrinkScale,
		Shrink:       DefaultShrinkDuration,
		Fly:          DefaultFlyDuration,
		Curve:        fyne.AnimationEaseInOut,
	}
}

// Total returns the duration of a whole cycle
func (t Timing) Total() time.Duration {
	return t.Shrink + t.Fly
}

func (t Timing) progress(elapsed, total time.Duration) float32 {
	if total <= 0 {
		return 1
	}
	p := float32(elapsed) / float32(total)
	if p > 1 {
		p = 1
	}
	if t.Curve == nil {
		return p
	}
	return t.Curve(p)
}
