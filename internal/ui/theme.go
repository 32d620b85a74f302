package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// StoreTheme is the storefront's light theme with the brand color as primary
type StoreTheme struct{}

// NewStoreTheme creates a new storefront theme
func NewStoreTheme() fyne.Theme {
	return &StoreTheme{}
}

// Color returns theme colors
func (t *StoreTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return BrandColor
	case theme.ColorNameError:
		return color.NRGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameSuccess:
		return color.NRGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.NRGBA{R: 33, G: 33, B: 33, A: 255}
	case theme.ColorNameSeparator:
		return CardBorderColor
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *StoreTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *StoreTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *StoreTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 8
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 6 // pill-ish buttons
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
