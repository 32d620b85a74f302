package ui

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/storefront/internal/flyout"
)

// FrameClock drives a coordinator from Fyne's animation ticks. It runs only
// while some slot is animating.
type FrameClock struct {
	coord *flyout.Coordinator
	anim  *fyne.Animation
	last  time.Time
	now   func() time.Time
}

// NewFrameClock creates a stopped clock for coord
func NewFrameClock(coord *flyout.Coordinator) *FrameClock {
	return &FrameClock{coord: coord, now: time.Now}
}

// Start begins ticking if the clock is not already running. Call it on the
// UI goroutine after triggering a flyout.
func (fc *FrameClock) Start() {
	if fc.anim != nil {
		return
	}
	fc.last = fc.now()
	fc.anim = fyne.NewAnimation(time.Second, func(float32) {
		fc.step(fc.now())
	})
	fc.anim.Curve = fyne.AnimationLinear
	fc.anim.RepeatCount = fyne.AnimationRepeatForever
	fc.anim.Start()
}

// Stop halts ticking
func (fc *FrameClock) Stop() {
	if fc.anim == nil {
		return
	}
	fc.anim.Stop()
	fc.anim = nil
}

// Running reports whether the clock is ticking
func (fc *FrameClock) Running() bool {
	return fc.anim != nil
}

func (fc *FrameClock) step(now time.Time) {
	dt := now.Sub(fc.last)
	fc.last = now
	fc.coord.Advance(dt)
	if fc.coord.Active() == 0 {
		fc.Stop()
	}
}
