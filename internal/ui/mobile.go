package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides mobile-specific UI adjustments
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// GridColumns returns the number of product columns for the current device
func (m *MobileUI) GridColumns() int {
	if m.IsMobileDevice() && m.IsLandscape() {
		return GridColumns + 1
	}
	return GridColumns
}

// ButtonMinHeight returns the minimum height of tappable buttons
func (m *MobileUI) ButtonMinHeight() float32 {
	if m.IsMobileDevice() {
		return MobileButtonHeight
	}
	return MinTouchTargetSize
}

// GetMobileSpacing returns appropriate spacing for mobile devices
func (m *MobileUI) GetMobileSpacing() float32 {
	if m.IsMobileDevice() {
		return 16
	}
	return 8
}
