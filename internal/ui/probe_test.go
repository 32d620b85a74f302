package ui

import (
	"context"
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/storefront/internal/flyout"
	"github.com/ytget/storefront/internal/locale"
)

func placedRect(t *testing.T) (fyne.Window, *canvas.Rectangle) {
	t.Helper()
	app := test.NewTempApp(t)

	rect := canvas.NewRectangle(color.Black)
	rect.Move(fyne.NewPos(10, 20))
	rect.Resize(fyne.NewSize(50, 30))

	w := app.NewWindow("probe")
	w.SetPadded(false)
	w.SetContent(container.NewWithoutLayout(rect))
	w.Resize(fyne.NewSize(200, 200))
	t.Cleanup(w.Close)
	return w, rect
}

func TestFyneProbe_MeasureLTR(t *testing.T) {
	_, rect := placedRect(t)
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(rect)

	probe := NewFyneProbe(func() locale.Direction { return locale.LeftToRight })
	got, err := probe.Measure(context.Background(), rect)
	require.NoError(t, err)

	assert.Equal(t, pos.X, got.X)
	assert.Equal(t, pos.Y, got.Y)
	assert.Equal(t, float32(50), got.Width)
	assert.Equal(t, float32(30), got.Height)
}

func TestFyneProbe_MeasureRTLIsStartRelative(t *testing.T) {
	w, rect := placedRect(t)
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(rect)
	width := w.Canvas().Size().Width

	probe := NewFyneProbe(func() locale.Direction { return locale.RightToLeft })
	got, err := probe.Measure(context.Background(), rect)
	require.NoError(t, err)

	assert.Equal(t, width-pos.X-50, got.X)
	assert.Equal(t, pos.Y, got.Y)

	origin := flyout.CloneOrigin(got, locale.RightToLeft, width)
	assert.Equal(t, pos.X, origin.X, "clone lands back on the physical position")
}

func TestFyneProbe_StaleHandles(t *testing.T) {
	_, rect := placedRect(t)
	probe := NewFyneProbe(nil)

	_, err := probe.Measure(context.Background(), nil)
	assert.ErrorIs(t, err, flyout.ErrStaleHandle)

	rect.Hide()
	_, err = probe.Measure(context.Background(), rect)
	assert.ErrorIs(t, err, flyout.ErrStaleHandle)
	rect.Show()

	unsized := canvas.NewRectangle(color.White)
	_, err = probe.Measure(context.Background(), unsized)
	assert.ErrorIs(t, err, flyout.ErrStaleHandle)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = probe.Measure(ctx, rect)
	assert.ErrorIs(t, err, context.Canceled)
}
