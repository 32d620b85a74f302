package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// AppIconFile is looked up in the working directory when the bundle carries no icon
const AppIconFile = "storefront.png"

// AppIcon resolves the window icon: the packaged metadata icon, then
// AppIconFile, then the theme's cart glyph.
func AppIcon(a fyne.App) fyne.Resource {
	if a != nil {
		if res := a.Metadata().Icon; res != nil {
			return res
		}
	}
	if res, err := fyne.LoadResourceFromPath(AppIconFile); err == nil {
		return res
	}
	return theme.ContentAddIcon()
}
