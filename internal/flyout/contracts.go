package flyout

import (
	"context"

	"fyne.io/fyne/v2"
	"github.com/go-faster/errors"

	"github.com/ytget/storefront/internal/model"
)

// ErrStaleHandle is returned by a Probe when the object is gone or hidden
var ErrStaleHandle = errors.New("stale layout handle")

// ErrSlotOutOfRange describes a trigger whose slot was reallocated away
var ErrSlotOutOfRange = errors.New("slot index out of range")

// Handle identifies a rendered product cell
type Handle = fyne.CanvasObject

// Probe measures a rendered cell in start-edge relative screen coordinates:
// X grows away from the leading edge, so it is mirrored in right-to-left
// layouts.
type Probe interface {
	Measure(ctx context.Context, h Handle) (model.Rect, error)
}

// Renderer draws the transient clone of a slot. Render is called with the
// slot's current values on every tick while the slot animates; Clear is
// called once the slot returns to idle or is dropped by a resize.
type Renderer interface {
	Render(frame Frame)
	Clear(index int)
}

type nopRenderer struct{}

func (nopRenderer) Render(Frame) {}
func (nopRenderer) Clear(int) {}
