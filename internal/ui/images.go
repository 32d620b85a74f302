package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
)

// remoteImage is a canvas image that can be re-pointed at another URL.
// Local files load in place; http(s) content is fetched off the UI goroutine.
// All methods must run on the UI goroutine.
type remoteImage struct {
	image   *canvas.Image
	url     string
	loaded  bool
	pending bool
}

// newRemoteImage creates an image that loads url. Empty or unparsable URLs
// show the broken image icon.
func newRemoteImage(url string) *remoteImage {
	img := canvas.NewImageFromResource(theme.BrokenImageIcon())
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth
	r := &remoteImage{image: img}
	r.SetURL(url)
	return r
}

// Image returns the canvas object to place in a layout
func (r *remoteImage) Image() *canvas.Image {
	return r.image
}

// URL returns the address shown or being fetched
func (r *remoteImage) URL() string {
	return r.url
}

// Loaded reports whether the image shows content rather than a placeholder
func (r *remoteImage) Loaded() bool {
	return r.loaded
}

// SetURL points the image at url. A fetch that completes after a newer
// SetURL is discarded.
func (r *remoteImage) SetURL(url string) {
	if url == r.url && (r.loaded || r.pending) {
		return
	}
	r.url = url

	uri, err := storage.ParseURI(url)
	switch {
	case url == "" || err != nil:
		r.show("", theme.BrokenImageIcon(), false)
	case uri.Scheme() == "file":
		r.show(uri.Path(), nil, true)
	case uri.Scheme() == "http" || uri.Scheme() == "https":
		r.show("", theme.FileImageIcon(), false)
		r.pending = true
		go r.fetch(url)
	default:
		r.show("", theme.BrokenImageIcon(), false)
	}
}

func (r *remoteImage) fetch(url string) {
	res, err := fyne.LoadResourceFromURLString(url)
	fyne.Do(func() {
		if r.url != url {
			return
		}
		if err != nil {
			r.show("", theme.BrokenImageIcon(), false)
			return
		}
		r.show("", res, true)
	})
}

func (r *remoteImage) show(file string, res fyne.Resource, loaded bool) {
	r.loaded = loaded
	r.pending = false
	r.image.File = file
	r.image.Resource = res
	r.image.Refresh()
}

// sizedImage returns img with a fixed minimum height
func sizedImage(img *canvas.Image, height float32) *canvas.Image {
	img.SetMinSize(fyne.NewSize(0, height))
	return img
}
