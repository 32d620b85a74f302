package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/google/uuid"

	"github.com/ytget/storefront/internal/flyout"
)

type clone struct {
	event uuid.UUID
	image *remoteImage
}

// CloneLayer is a transparent overlay that draws the flying product clones.
// It implements flyout.Renderer; all canvas work is marshalled onto the UI
// goroutine.
type CloneLayer struct {
	container *fyne.Container
	clones    map[int]*clone
}

// NewCloneLayer creates an empty overlay
func NewCloneLayer() *CloneLayer {
	return &CloneLayer{
		container: container.NewWithoutLayout(),
		clones:    make(map[int]*clone),
	}
}

// Object returns the overlay to stack over the window content
func (l *CloneLayer) Object() fyne.CanvasObject {
	return l.container
}

// Render implements flyout.Renderer
func (l *CloneLayer) Render(frame flyout.Frame) {
	fyne.Do(func() {
		l.render(frame)
	})
}

// Clear implements flyout.Renderer
func (l *CloneLayer) Clear(index int) {
	fyne.Do(func() {
		l.clear(index)
	})
}

// Len returns the number of clones on screen
func (l *CloneLayer) Len() int {
	return len(l.clones)
}

// Clone returns the image drawn for slot index
func (l *CloneLayer) Clone(index int) (*canvas.Image, bool) {
	c, ok := l.clones[index]
	if !ok {
		return nil, false
	}
	return c.image.Image(), true
}

func (l *CloneLayer) render(frame flyout.Frame) {
	c, ok := l.clones[frame.Index]
	if !ok {
		c = &clone{event: frame.EventID, image: newRemoteImage(frame.Item.Thumbnail())}
		l.clones[frame.Index] = c
		l.container.Add(c.image.Image())
	} else if c.event != frame.EventID {
		// Re-trigger on the same slot: same clone, newest item
		c.event = frame.EventID
		c.image.SetURL(frame.Item.Thumbnail())
	}

	b := frame.Bounds()
	img := c.image.Image()
	img.Move(fyne.NewPos(b.X, b.Y))
	img.Resize(fyne.NewSize(b.Width, b.Height))
	img.Translucency = float64(1 - frame.Opacity)
	img.Refresh()
}

func (l *CloneLayer) clear(index int) {
	c, ok := l.clones[index]
	if !ok {
		return
	}
	delete(l.clones, index)
	l.container.Remove(c.image.Image())
}
