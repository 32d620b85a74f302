package ui

import (
	"context"
	"image/color"
	"log/slog"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/go-faster/errors"

	"github.com/ytget/storefront/internal/catalog"
	"github.com/ytget/storefront/internal/config"
	"github.com/ytget/storefront/internal/flyout"
	"github.com/ytget/storefront/internal/locale"
	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/shop"
)

// RootUI represents the home screen
type RootUI struct {
	window       fyne.Window
	ctrl         *shop.Controller
	settings     *config.Settings
	coord        *flyout.Coordinator
	clock        *FrameClock
	cloneLayer   *CloneLayer
	localization *Localization
	mobile       *MobileUI
	tuning       config.Tuning
	logger       *slog.Logger

	// Header
	languageBtn *widget.Button
	settingsBtn *widget.Button
	titleLabel  *widget.Label
	cartBtn     *widget.Button
	badge       *fyne.Container
	badgeText   *canvas.Text

	// Product grid
	grid   *fyne.Container
	scroll *container.Scroll
	cards  []*ProductCard

	// Footer and notifications
	loadMoreBtn *widget.Button
	spinner     *widget.ProgressBarInfinite
	statusLabel *widget.Label
	noticeLabel *widget.Label

	loading    bool
	restarting bool
}

// NewRootUI creates the home screen. It completes cfg with the probe, screen
// width and UI dispatch, creates the controller and starts loading the first
// page.
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, cfg shop.Config, tuning config.Tuning) *RootUI {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ui := &RootUI{
		window:       window,
		settings:     settings,
		coord:        cfg.Coordinator,
		clock:        NewFrameClock(cfg.Coordinator),
		cloneLayer:   NewCloneLayer(),
		localization: NewLocalization(),
		mobile:       NewMobileUI(app),
		tuning:       tuning,
		logger:       logger.With("component", "ui"),
	}

	cfg.Probe = NewFyneProbe(cfg.Locale.Applied)
	cfg.ScreenWidth = func() float32 { return window.Canvas().Size().Width }
	cfg.Post = ui.post
	ui.ctrl = shop.NewController(cfg)
	ui.ctrl.SetProductHandler(ui.showProduct)

	ui.localization.SetLanguage(cfg.Locale.Current())
	ui.coord.SetRenderer(ui.cloneLayer)
	cfg.Cart.SetChangeCallback(ui.onCartChanged)

	ui.setupUI()
	ui.updateBadge(ui.ctrl.CartCount())
	ui.loadMore()
	return ui
}

// Controller returns the home screen controller
func (ui *RootUI) Controller() *shop.Controller {
	return ui.ctrl
}

// Cards returns the product cards in list order
func (ui *RootUI) Cards() []*ProductCard {
	return ui.cards
}

// post runs fn on the UI goroutine and makes sure the frame clock is ticking
func (ui *RootUI) post(fn func()) {
	fyne.Do(func() {
		fn()
		if ui.coord.Active() > 0 {
			ui.clock.Start()
		}
	})
}

// setupUI creates and arranges all UI components for the applied direction
func (ui *RootUI) setupUI() {
	dir := ui.ctrl.Direction()
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	// Header: the toggle shows the language it switches to
	ui.languageBtn = widget.NewButton(ui.ctrl.Language().Toggle().Code(), ui.onToggleLanguage)
	ui.languageBtn.Importance = widget.LowImportance
	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance
	if ui.settings == nil {
		ui.settingsBtn.Hide()
	}

	ui.titleLabel = widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Alignment = fyne.TextAlignCenter

	ui.cartBtn = widget.NewButton(IconCart, nil)
	ui.cartBtn.Importance = widget.LowImportance

	circle := canvas.NewCircle(BrandColor)
	ui.badgeText = canvas.NewText("", BadgeTextColor)
	ui.badgeText.TextSize = BadgeSize * 0.6
	ui.badgeText.TextStyle = fyne.TextStyle{Bold: true}
	ui.badgeText.Alignment = fyne.TextAlignCenter
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(BadgeSize, BadgeSize))
	ui.badge = container.NewStack(spacer, circle, container.NewCenter(ui.badgeText))
	ui.badge.Hide()

	cartArea := container.NewHBox(ui.cartBtn, container.NewVBox(ui.badge))
	start, end := fyne.CanvasObject(container.NewHBox(ui.languageBtn, ui.settingsBtn)), fyne.CanvasObject(cartArea)
	if dir == locale.RightToLeft {
		start, end = end, start
	}
	header := container.NewBorder(nil, widget.NewSeparator(), start, end, ui.titleLabel)

	ui.noticeLabel = widget.NewLabel("")
	ui.noticeLabel.Alignment = fyne.TextAlignCenter
	ui.noticeLabel.Hide()

	// Grid
	ui.cards = nil
	ui.grid = container.NewGridWithColumns(ui.mobile.GridColumns())

	// Footer
	ui.loadMoreBtn = widget.NewButton(ui.localization.GetText(KeyLoadMore), ui.loadMore)
	ui.spinner = widget.NewProgressBarInfinite()
	ui.spinner.Hide()
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignCenter
	ui.statusLabel.Hide()
	footer := container.NewVBox(ui.spinner, ui.statusLabel, ui.loadMoreBtn)

	spacing := ui.mobile.GetMobileSpacing()
	grid := container.New(layout.NewCustomPaddedLayout(spacing, spacing, spacing, spacing), ui.grid)
	ui.scroll = container.NewVScroll(container.NewVBox(grid, footer))
	ui.scroll.OnScrolled = ui.onScrolled

	content := container.NewBorder(container.NewVBox(header, ui.noticeLabel), nil, nil, nil, ui.scroll)
	ui.window.SetContent(container.NewStack(content, ui.cloneLayer.Object()))
}

// appendCards adds cards for products starting at list index start
func (ui *RootUI) appendCards(products []model.Product, start int) {
	dir := ui.ctrl.Direction()
	for i, p := range products {
		card := NewProductCard(start+i, p, dir, ui.localization)
		card.SetCallbacks(ui.onAddToCart, ui.ctrl.OpenProduct)
		card.SetButtonMinHeight(ui.mobile.ButtonMinHeight())
		card.FadeIn(ui.tuning.FadeIn())
		ui.cards = append(ui.cards, card)
	}
	ui.arrangeGrid()
}

// arrangeGrid lays the cards out row by row in reading order
func (ui *RootUI) arrangeGrid() {
	cols := ui.mobile.GridColumns()
	objects := make([]fyne.CanvasObject, 0, len(ui.cards)+cols)
	for _, i := range GridOrder(len(ui.cards), cols, ui.ctrl.Direction()) {
		if i < 0 {
			objects = append(objects, layout.NewSpacer())
			continue
		}
		objects = append(objects, ui.cards[i])
	}
	ui.grid.Objects = objects
	ui.grid.Refresh()
}

// loadMore requests the next page in the background
func (ui *RootUI) loadMore() {
	if ui.loading || ui.restarting {
		return
	}
	ui.loading = true
	ui.spinner.Show()
	ui.loadMoreBtn.Disable()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), LoadTimeout)
		defer cancel()
		start := len(ui.ctrl.Products())
		added, err := ui.ctrl.LoadMore(ctx)

		fyne.Do(func() {
			ui.onPageLoaded(added, start, err)
		})
	}()
}

func (ui *RootUI) onPageLoaded(added []model.Product, start int, err error) {
	ui.loading = false
	ui.spinner.Hide()
	ui.statusLabel.Hide()

	switch {
	case errors.Is(err, catalog.ErrLoading), errors.Is(err, catalog.ErrSuperseded):
		return
	case errors.Is(err, catalog.ErrExhausted):
	case err != nil:
		ui.logger.Warn("page load failed", "error", err)
		ui.statusLabel.SetText(ui.localization.GetText(KeyLoadFailed))
		ui.statusLabel.Show()
		ui.loadMoreBtn.Enable()
		return
	default:
		ui.appendCards(added, start)
	}

	if ui.ctrl.HasMore() {
		ui.loadMoreBtn.Enable()
		ui.loadMoreBtn.Show()
	} else {
		ui.loadMoreBtn.Hide()
		ui.statusLabel.SetText(ui.localization.GetText(KeyNoMoreProducts))
		ui.statusLabel.Show()
	}
}

// onScrolled loads the next page when the grid end comes into view
func (ui *RootUI) onScrolled(offset fyne.Position) {
	if !ui.ctrl.HasMore() {
		return
	}
	if NearEnd(offset.Y, ui.scroll.Size().Height, ui.scroll.Content.MinSize().Height, EndReachedThreshold) {
		ui.loadMore()
	}
}

// onAddToCart commits a tapped card and starts its flyout
func (ui *RootUI) onAddToCart(index int, product model.Product, handle fyne.CanvasObject) {
	ctx, cancel := context.WithTimeout(context.Background(), MeasureTimeout)
	time.AfterFunc(MeasureTimeout, cancel)
	ui.ctrl.AddToCart(ctx, index, product, handle)
}

// onCartChanged runs after every cart mutation
func (ui *RootUI) onCartChanged(count int) {
	fyne.Do(func() {
		ui.updateBadge(count)
	})
}

// updateBadge shows the cart count, hiding the badge for an empty cart
func (ui *RootUI) updateBadge(count int) {
	if count <= 0 {
		ui.badge.Hide()
		return
	}
	ui.badgeText.Text = BadgeLabel(count)
	ui.badgeText.Refresh()
	ui.badge.Show()
}

// BadgeText returns the badge text and whether the badge is visible
func (ui *RootUI) BadgeText() (string, bool) {
	return ui.badgeText.Text, ui.badge.Visible()
}

// showProduct shows a product in a dialog with its image slider
func (ui *RootUI) showProduct(product model.Product) {
	dir := ui.ctrl.Direction()
	align := leadingAlignment(dir)

	slider := NewImageSlider(product.ImageList(), dir)

	title := widget.NewLabel(product.DisplayTitle())
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Wrapping = fyne.TextWrapWord
	title.Alignment = align

	price := widget.NewLabel(product.PriceText())
	price.Alignment = align
	price.Importance = widget.DangerImportance

	details := container.NewVBox(slider, title, price)
	if product.OfferMessage != "" {
		offer := widget.NewLabel(IconOffer + " " + product.OfferMessage)
		offer.Alignment = align
		offer.Wrapping = fyne.TextWrapWord
		details.Add(offer)
	}

	var d dialog.Dialog
	addBtn := widget.NewButton(ui.localization.GetText(KeyAddToCart), func() {
		ui.ctrl.AddToCart(context.Background(), -1, product, nil)
		ui.showNotice(ui.localization.GetText(KeyAddedToCart))
		d.Hide()
	})
	addBtn.Importance = widget.HighImportance
	details.Add(addBtn)

	d = dialog.NewCustom(product.DisplayTitle(), ui.localization.GetText(KeyClose), details, ui.window)
	d.Resize(fyne.NewSize(ProductDialogWidth, SliderImageHeight*1.6))
	d.Show()
}

// onToggleLanguage switches language and rebuilds the screen, waiting for
// the restart delay when the layout direction changes
func (ui *RootUI) onToggleLanguage() {
	if ui.restarting {
		return
	}
	ui.languageBtn.Disable()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), LoadTimeout)
		defer cancel()
		result := ui.ctrl.ToggleLanguage(ctx)

		fyne.Do(func() {
			ui.localization.SetLanguage(result.Language)
			if !result.RestartRequired {
				ui.rebuild()
				ui.showNotice(ui.localization.GetText(KeyLanguageChanged))
				return
			}
			ui.restarting = true
			ui.showNotice(ui.localization.GetText(KeyApplyingLayout))
			time.AfterFunc(ui.tuning.RestartDelay(), ui.restart)
		})
	}()
}

// restart reloads the catalog for the new direction and rebuilds the screen
func (ui *RootUI) restart() {
	ctx, cancel := context.WithTimeout(context.Background(), LoadTimeout)
	defer cancel()
	if err := ui.ctrl.Reload(ctx); err != nil {
		ui.logger.Warn("reload failed", "error", err)
	}

	fyne.Do(func() {
		ui.restarting = false
		ui.rebuild()
	})
}

// rebuild recreates the content from the controller's current products
func (ui *RootUI) rebuild() {
	ui.clock.Stop()
	ui.cloneLayer = NewCloneLayer()
	ui.coord.SetRenderer(ui.cloneLayer)

	ui.setupUI()
	ui.updateBadge(ui.ctrl.CartCount())
	ui.onPageLoaded(ui.ctrl.Products(), 0, nil)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.showNotice(ui.localization.GetText(KeySettingsSaved))
	})
}

// showNotice shows a short message under the header
func (ui *RootUI) showNotice(message string) {
	ui.noticeLabel.SetText(message)
	ui.noticeLabel.Show()
	time.AfterFunc(NoticeAutoHide, func() {
		fyne.Do(func() {
			if ui.noticeLabel.Text == message {
				ui.noticeLabel.Hide()
			}
		})
	})
}

// BadgeLabel formats the cart count for the header badge
func BadgeLabel(count int) string {
	if count > BadgeOverflowCount {
		return BadgeOverflowText
	}
	return strconv.Itoa(count)
}

// NearEnd reports whether a scroll offset is within threshold of the end
func NearEnd(offsetY, viewport, content, threshold float32) bool {
	return offsetY+viewport >= content-threshold
}

// GridOrder returns card indices in the order a row-major grid should hold
// them. Right-to-left rows are reversed and a short last row is pushed to
// the right edge; -1 marks an empty cell.
func GridOrder(n, cols int, dir locale.Direction) []int {
	if cols < 1 {
		cols = 1
	}
	order := make([]int, 0, n+cols)
	for rowStart := 0; rowStart < n; rowStart += cols {
		rowEnd := min(rowStart+cols, n)
		if dir != locale.RightToLeft {
			for i := rowStart; i < rowEnd; i++ {
				order = append(order, i)
			}
			continue
		}
		for pad := cols - (rowEnd - rowStart); pad > 0; pad-- {
			order = append(order, -1)
		}
		for i := rowEnd - 1; i >= rowStart; i-- {
			order = append(order, i)
		}
	}
	return order
}
