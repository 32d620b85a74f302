package ui

import (
	"image/color"
	"time"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconCart     = "🛒"
	IconClose    = "×"
	IconOffer    = "🏷"
	IconSettings = "⚙"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	BadgeOverflowText  = "99+"
	BadgeOverflowCount = 99
	SlideCounterFormat = "%d / %d"
)

// Brand colors
var (
	BrandColor      = color.NRGBA{R: 0xE7, G: 0x00, B: 0x28, A: 0xFF}
	BadgeTextColor  = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	CompareAtColor  = color.NRGBA{R: 0x8A, G: 0x8A, B: 0x8A, A: 0xFF}
	CardBorderColor = color.NRGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
)

// Layout sizing (header / grid / cards)
const (
	GridColumns = 2

	HeaderHeight float32 = 56
	BadgeSize    float32 = 18

	CardMinWidth       float32 = 160
	CardImageHeight    float32 = 200
	CardCornerRadius   float32 = 6
	SliderImageHeight  float32 = 360
	SliderDotSize      float32 = 8
	ProductDialogWidth float32 = 420

	// Distance from the bottom of the grid at which the next page is requested
	EndReachedThreshold float32 = 120

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48
)

// Window defaults
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 820
)

// Durations
const (
	DefaultFadeIn       = time.Second
	DefaultRestartDelay = 500 * time.Millisecond
	LoadTimeout         = 20 * time.Second
	MeasureTimeout      = 2 * time.Second
	NoticeAutoHide      = 2 * time.Second
)
