package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/storefront/internal/flyout"
	"github.com/ytget/storefront/internal/locale"
	"github.com/ytget/storefront/internal/model"
)

func testFrame(index int, id uuid.UUID) flyout.Frame {
	return flyout.Frame{
		EventID: id,
		Index:   index,
		Item:    model.CartLineItem{ID: "7", Name: "Scarf", Images: []string{"file:///tmp/storefront-test/7.jpg"}},
		Origin:  model.Rect{X: 100, Y: 400, Width: 150, Height: 200},
		Opacity: 1,
		Scale:   1,
		Phase:   model.SlotPhaseShrink,
	}
}

func TestCloneLayer_RenderPlacesClone(t *testing.T) {
	test.NewTempApp(t)
	l := NewCloneLayer()

	f := testFrame(2, uuid.New())
	f.Scale = 0.5
	f.Offset = model.Vec2{X: 200, Y: -450}
	f.Opacity = 0.25
	l.Render(f)

	img, ok := l.Clone(2)
	require.True(t, ok)
	b := f.Bounds()
	assert.Equal(t, b.X, img.Position().X)
	assert.Equal(t, b.Y, img.Position().Y)
	assert.Equal(t, b.Width, img.Size().Width)
	assert.Equal(t, b.Height, img.Size().Height)
	assert.InDelta(t, 0.75, img.Translucency, 1e-6)
}

func TestCloneLayer_OneClonePerSlot(t *testing.T) {
	test.NewTempApp(t)
	l := NewCloneLayer()

	l.Render(testFrame(0, uuid.New()))
	l.Render(testFrame(0, uuid.New()))
	l.Render(testFrame(1, uuid.New()))

	assert.Equal(t, 2, l.Len())
	assert.Len(t, l.container.Objects, 2)

	l.Clear(0)
	assert.Equal(t, 1, l.Len())
	_, ok := l.Clone(0)
	assert.False(t, ok)

	l.Clear(5)
	assert.Equal(t, 1, l.Len())
}

func TestCloneLayer_DrivenByCoordinator(t *testing.T) {
	test.NewTempApp(t)
	l := NewCloneLayer()
	coord := flyout.NewCoordinator(flyout.DefaultTiming(), l, nil)
	coord.Resize(4)

	ev := flyout.NewEvent(model.CartLineItem{ID: "1"}, 1, model.Rect{X: 10, Y: 300, Width: 100, Height: 100}, locale.LeftToRight, 400)
	require.True(t, coord.Trigger(ev))
	assert.Equal(t, 1, l.Len())

	coord.Advance(coord.Timing().Total())
	assert.Zero(t, l.Len())
}

func TestCloneLayer_RetriggerShowsNewestItem(t *testing.T) {
	test.NewTempApp(t)
	l := NewCloneLayer()

	l.Render(testFrame(0, uuid.New()))
	first, ok := l.Clone(0)
	require.True(t, ok)

	f := testFrame(0, uuid.New())
	f.Item.Images = []string{"file:///tmp/storefront-test/8.jpg"}
	l.Render(f)

	img, ok := l.Clone(0)
	require.True(t, ok)
	assert.Same(t, first, img)
	assert.Equal(t, "/tmp/storefront-test/8.jpg", img.File)
	assert.Len(t, l.container.Objects, 1)
}
