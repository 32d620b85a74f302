package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/storefront/internal/locale"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
)

// String returns the gesture name
func (g GestureType) String() string {
	switch g {
	case GestureSwipeLeft:
		return "swipe-left"
	case GestureSwipeRight:
		return "swipe-right"
	case GestureSwipeUp:
		return "swipe-up"
	case GestureSwipeDown:
		return "swipe-down"
	default:
		return "none"
	}
}

// DefaultSwipeThreshold is the drag distance that counts as a swipe
const DefaultSwipeThreshold float32 = 50.0

// GestureHandler turns drag events into swipe gestures. It works for mouse
// drags on desktop and touch drags on mobile.
type GestureHandler struct {
	onGesture func(GestureType)

	// Accumulated drag since the last DragEnd
	dx, dy float32

	swipeThreshold float32
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:      onGesture,
		swipeThreshold: DefaultSwipeThreshold,
	}
}

// Dragged accumulates drag movement
func (gh *GestureHandler) Dragged(event *fyne.DragEvent) {
	gh.dx += event.Dragged.DX
	gh.dy += event.Dragged.DY
}

// DragEnd classifies the finished drag and triggers the callback for swipes
func (gh *GestureHandler) DragEnd() {
	gesture := ClassifySwipe(gh.dx, gh.dy, gh.swipeThreshold)
	gh.dx, gh.dy = 0, 0

	if gesture != GestureNone && gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// ClassifySwipe determines the direction of a drag of (dx, dy). Drags shorter
// than threshold are not swipes.
func ClassifySwipe(dx, dy, threshold float32) GestureType {
	if dx*dx+dy*dy < threshold*threshold {
		return GestureNone
	}

	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// SlideStep converts a horizontal swipe to a slider step. Swiping toward the
// leading edge shows the next image, so the mapping flips in right-to-left
// layouts.
func SlideStep(gesture GestureType, dir locale.Direction) int {
	var step int
	switch gesture {
	case GestureSwipeLeft:
		step = 1
	case GestureSwipeRight:
		step = -1
	default:
		return 0
	}
	if dir == locale.RightToLeft {
		step = -step
	}
	return step
}
