package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"github.com/go-faster/errors"

	"github.com/ytget/storefront/internal/flyout"
	"github.com/ytget/storefront/internal/locale"
	"github.com/ytget/storefront/internal/model"
)

// FyneProbe measures rendered objects on their window canvas. Rects are
// start-edge relative: in right-to-left layouts X is measured from the
// canvas's right edge.
type FyneProbe struct {
	direction func() locale.Direction
}

// NewFyneProbe creates a probe reading the layout direction from direction
func NewFyneProbe(direction func() locale.Direction) *FyneProbe {
	return &FyneProbe{direction: direction}
}

// Measure implements flyout.Probe. It must not be called on the UI goroutine.
func (p *FyneProbe) Measure(ctx context.Context, h flyout.Handle) (model.Rect, error) {
	if h == nil {
		return model.Rect{}, errors.Wrap(flyout.ErrStaleHandle, "nil handle")
	}
	if err := ctx.Err(); err != nil {
		return model.Rect{}, err
	}

	dir := locale.LeftToRight
	if p.direction != nil {
		dir = p.direction()
	}

	var (
		rect model.Rect
		err  error
	)
	fyne.DoAndWait(func() {
		rect, err = measureObject(h, dir)
	})
	return rect, err
}

func measureObject(h fyne.CanvasObject, dir locale.Direction) (model.Rect, error) {
	if !h.Visible() {
		return model.Rect{}, errors.Wrap(flyout.ErrStaleHandle, "hidden")
	}
	app := fyne.CurrentApp()
	if app == nil {
		return model.Rect{}, errors.Wrap(flyout.ErrStaleHandle, "no app")
	}
	c := app.Driver().CanvasForObject(h)
	if c == nil {
		return model.Rect{}, errors.Wrap(flyout.ErrStaleHandle, "not on a canvas")
	}
	size := h.Size()
	if size.IsZero() {
		return model.Rect{}, errors.Wrap(flyout.ErrStaleHandle, "not laid out")
	}

	pos := app.Driver().AbsolutePositionForObject(h)
	x := pos.X
	if dir == locale.RightToLeft {
		x = c.Size().Width - pos.X - size.Width
	}
	return model.Rect{X: x, Y: pos.Y, Width: size.Width, Height: size.Height}, nil
}
