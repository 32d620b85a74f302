package ui

// Package ui contains the Fyne user interface of the storefront.
// It renders the product grid and the header cart badge, draws flyout clones
// on an overlay, measures tapped cards for the flyout coordinator and drives
// it from Fyne's animation ticks. All UI strings are localized via Localization.
