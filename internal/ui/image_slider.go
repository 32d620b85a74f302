package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/storefront/internal/locale"
)

// ImageSlider shows one product image at a time. Swipes and the arrow
// buttons move between images; both follow the layout direction.
type ImageSlider struct {
	widget.BaseWidget

	urls  []string
	index int
	dir   locale.Direction

	image    *remoteImage
	counter  *widget.Label
	prevBtn  *widget.Button
	nextBtn  *widget.Button
	gestures *GestureHandler
}

// NewImageSlider creates a new slider over urls
func NewImageSlider(urls []string, dir locale.Direction) *ImageSlider {
	s := &ImageSlider{
		urls: append([]string(nil), urls...),
		dir:  dir,
	}
	s.ExtendBaseWidget(s)

	first := ""
	if len(s.urls) > 0 {
		first = s.urls[0]
	}
	s.image = newRemoteImage(first)
	sizedImage(s.image.Image(), SliderImageHeight)
	s.counter = widget.NewLabel("")
	s.counter.Alignment = fyne.TextAlignCenter

	backIcon, forwardIcon := theme.NavigateBackIcon(), theme.NavigateNextIcon()
	if dir == locale.RightToLeft {
		backIcon, forwardIcon = forwardIcon, backIcon
	}
	s.prevBtn = widget.NewButtonWithIcon("", backIcon, s.Previous)
	s.nextBtn = widget.NewButtonWithIcon("", forwardIcon, s.Next)
	s.prevBtn.Importance = widget.LowImportance
	s.nextBtn.Importance = widget.LowImportance

	s.gestures = NewGestureHandler(func(g GestureType) {
		s.step(SlideStep(g, s.dir))
	})

	s.update()
	return s
}

// Index returns the shown image index
func (s *ImageSlider) Index() int {
	return s.index
}

// Len returns the number of images
func (s *ImageSlider) Len() int {
	return len(s.urls)
}

// Next shows the next image, if any
func (s *ImageSlider) Next() {
	s.step(1)
}

// Previous shows the previous image, if any
func (s *ImageSlider) Previous() {
	s.step(-1)
}

// Dragged implements fyne.Draggable
func (s *ImageSlider) Dragged(event *fyne.DragEvent) {
	s.gestures.Dragged(event)
}

// DragEnd implements fyne.Draggable
func (s *ImageSlider) DragEnd() {
	s.gestures.DragEnd()
}

func (s *ImageSlider) step(delta int) {
	next := s.index + delta
	if delta == 0 || next < 0 || next >= len(s.urls) {
		return
	}
	s.index = next
	s.update()
}

func (s *ImageSlider) update() {
	if len(s.urls) > 0 {
		s.image.SetURL(s.urls[s.index])
		s.counter.SetText(fmt.Sprintf(SlideCounterFormat, s.index+1, len(s.urls)))
	} else {
		s.image.SetURL("")
		s.counter.SetText("")
	}

	if s.index > 0 {
		s.prevBtn.Enable()
	} else {
		s.prevBtn.Disable()
	}
	if s.index < len(s.urls)-1 {
		s.nextBtn.Enable()
	} else {
		s.nextBtn.Disable()
	}
	s.image.Image().Refresh()
}

// CreateRenderer creates the widget renderer
func (s *ImageSlider) CreateRenderer() fyne.WidgetRenderer {
	// Buttons sit on the physical sides, so RTL swaps them
	left, right := fyne.CanvasObject(s.prevBtn), fyne.CanvasObject(s.nextBtn)
	if s.dir == locale.RightToLeft {
		left, right = right, left
	}
	controls := container.NewBorder(nil, nil, left, right, s.counter)
	return widget.NewSimpleRenderer(container.NewBorder(nil, controls, nil, nil, s.image.Image()))
}
