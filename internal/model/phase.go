package model

// SlotPhase represents where an animation slot is in its flyout cycle
type SlotPhase string

const (
	// SlotPhaseIdle means the slot rests at its baseline values
	SlotPhaseIdle SlotPhase = "Idle"

	// SlotPhaseAppear is the instantaneous stage that forces opacity to 1
	SlotPhaseAppear SlotPhase = "Appear"

	// SlotPhaseShrink scales the clone down in place
	SlotPhaseShrink SlotPhase = "Shrink"

	// SlotPhaseFly moves the clone towards the cart while fading it out
	SlotPhaseFly SlotPhase = "Fly"
)

// String returns the string representation of SlotPhase
func (p SlotPhase) String() string {
	return string(p)
}

// IsAnimating returns true if the slot is somewhere inside a flyout cycle
func (p SlotPhase) IsAnimating() bool {
	return p == SlotPhaseAppear || p == SlotPhaseShrink || p == SlotPhaseFly
}
