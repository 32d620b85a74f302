package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/storefront/internal/locale"
	"github.com/ytget/storefront/internal/model"
)

// ProductCard is one cell of the product grid
type ProductCard struct {
	widget.BaseWidget

	product      model.Product
	index        int
	dir          locale.Direction
	localization *Localization

	// UI components
	background *canvas.Rectangle
	thumbnail  *canvas.Image
	titleLabel *widget.Label
	priceLabel *widget.Label
	compareAt  *canvas.Text
	offerLabel *widget.Label
	addBtn     *widget.Button
	addStrut   *canvas.Rectangle

	// Callbacks
	onAdd  func(index int, product model.Product, handle fyne.CanvasObject)
	onOpen func(product model.Product)
}

// NewProductCard creates a new card for the product at index
func NewProductCard(index int, product model.Product, dir locale.Direction, localization *Localization) *ProductCard {
	pc := &ProductCard{
		product:      product,
		index:        index,
		dir:          dir,
		localization: localization,
	}
	pc.ExtendBaseWidget(pc)
	pc.createUI()
	return pc
}

// SetCallbacks sets the action callbacks
func (pc *ProductCard) SetCallbacks(
	onAdd func(index int, product model.Product, handle fyne.CanvasObject),
	onOpen func(product model.Product),
) {
	pc.onAdd = onAdd
	pc.onOpen = onOpen
}

// Product returns the card's product
func (pc *ProductCard) Product() model.Product {
	return pc.product
}

// Index returns the card's position in the product list
func (pc *ProductCard) Index() int {
	return pc.index
}

// Thumbnail returns the image the flyout clone is measured from
func (pc *ProductCard) Thumbnail() fyne.CanvasObject {
	return pc.thumbnail
}

// AddButton returns the add-to-cart button
func (pc *ProductCard) AddButton() *widget.Button {
	return pc.addBtn
}

// SetButtonMinHeight keeps the add button at least h tall
func (pc *ProductCard) SetButtonMinHeight(h float32) {
	pc.addStrut.SetMinSize(fyne.NewSize(0, h))
}

// Tapped opens the product details
func (pc *ProductCard) Tapped(*fyne.PointEvent) {
	if pc.onOpen != nil {
		pc.onOpen(pc.product)
	}
}

// FadeIn animates the thumbnail from transparent to opaque
func (pc *ProductCard) FadeIn(d time.Duration) {
	if d <= 0 {
		return
	}
	pc.thumbnail.Translucency = 1
	anim := fyne.NewAnimation(d, func(p float32) {
		pc.thumbnail.Translucency = float64(1 - p)
		pc.thumbnail.Refresh()
	})
	anim.Curve = fyne.AnimationEaseOut
	anim.Start()
}

// createUI creates the UI components
func (pc *ProductCard) createUI() {
	p := &pc.product
	align := leadingAlignment(pc.dir)

	pc.background = canvas.NewRectangle(theme.Color(theme.ColorNameBackground))
	pc.background.StrokeColor = CardBorderColor
	pc.background.StrokeWidth = 1
	pc.background.CornerRadius = CardCornerRadius

	pc.thumbnail = sizedImage(newRemoteImage(p.Thumbnail()).Image(), CardImageHeight)

	pc.titleLabel = widget.NewLabel(p.DisplayTitle())
	pc.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	pc.titleLabel.Truncation = fyne.TextTruncateEllipsis
	pc.titleLabel.Alignment = align

	pc.priceLabel = widget.NewLabel(p.PriceText())
	pc.priceLabel.Alignment = align
	pc.priceLabel.Importance = widget.DangerImportance

	pc.compareAt = canvas.NewText(p.CompareAtText(), CompareAtColor)
	pc.compareAt.TextSize = theme.CaptionTextSize()
	pc.compareAt.Alignment = align
	if !p.HasDiscount() {
		pc.compareAt.Hide()
	}

	pc.offerLabel = widget.NewLabel(IconOffer + " " + p.OfferMessage)
	pc.offerLabel.Alignment = align
	pc.offerLabel.Wrapping = fyne.TextWrapWord
	if p.OfferMessage == "" {
		pc.offerLabel.Hide()
	}

	pc.addBtn = widget.NewButton(pc.localization.GetText(KeyAddToCart), func() {
		if pc.onAdd != nil {
			pc.onAdd(pc.index, pc.product, pc.thumbnail)
		}
	})
	pc.addBtn.Importance = widget.HighImportance
	pc.addStrut = canvas.NewRectangle(color.Transparent)
}

// CreateRenderer creates the widget renderer
func (pc *ProductCard) CreateRenderer() fyne.WidgetRenderer {
	body := container.NewVBox(
		pc.thumbnail,
		pc.titleLabel,
		pc.priceLabel,
		pc.compareAt,
		pc.offerLabel,
		container.NewStack(pc.addStrut, pc.addBtn),
	)
	return widget.NewSimpleRenderer(container.NewStack(pc.background, container.NewPadded(body)))
}

// MinSize keeps cards from collapsing in narrow windows
func (pc *ProductCard) MinSize() fyne.Size {
	size := pc.BaseWidget.MinSize()
	if size.Width < CardMinWidth {
		size.Width = CardMinWidth
	}
	return size
}

func leadingAlignment(dir locale.Direction) fyne.TextAlign {
	if dir == locale.RightToLeft {
		return fyne.TextAlignTrailing
	}
	return fyne.TextAlignLeading
}
