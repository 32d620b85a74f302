package flyout

import (
	"github.com/google/uuid"

	"github.com/ytget/storefront/internal/locale"
	"github.com/ytget/storefront/internal/model"
)

// Event is one add-to-cart tap handed to the coordinator
type Event struct {
	ID          uuid.UUID
	Item        model.CartLineItem
	SlotIndex   int
	Source      model.Rect
	Direction   locale.Direction
	ScreenWidth float32
}

// NewEvent builds an event with a fresh correlation id
func NewEvent(item model.CartLineItem, slotIndex int, source model.Rect, dir locale.Direction, screenWidth float32) Event {
	return Event{
		ID:          uuid.New(),
		Item:        item,
		SlotIndex:   slotIndex,
		Source:      source,
		Direction:   dir,
		ScreenWidth: screenWidth,
	}
}

// DirectionSign returns +1 or -1 for the event's layout direction
func (e Event) DirectionSign() float32 {
	return e.Direction.Sign()
}

// Frame is what the renderer draws for one animating slot
type Frame struct {
	EventID uuid.UUID
	Index   int
	Item    model.CartLineItem
	Origin  model.Rect
	Offset  model.Vec2
	Opacity float32
	Scale   float32
	Phase   model.SlotPhase
}

// Bounds returns the clone rectangle with scale and offset applied
func (f Frame) Bounds() model.Rect {
	return f.Origin.Scaled(f.Scale).Translated(f.Offset)
}
