package shop

import (
	"context"
	"log/slog"
	"sync"

	"github.com/go-faster/errors"

	"github.com/ytget/storefront/internal/cart"
	"github.com/ytget/storefront/internal/catalog"
	"github.com/ytget/storefront/internal/flyout"
	"github.com/ytget/storefront/internal/locale"
	"github.com/ytget/storefront/internal/model"
)

// Config holds the controller's collaborators
type Config struct {
	Cart        *cart.Store
	Pager       *catalog.Pager
	Coordinator *flyout.Coordinator
	Locale      *locale.Manager
	// Probe measures tapped cards. Nil disables the flyout.
	Probe flyout.Probe
	// ScreenWidth returns the current window width.
	ScreenWidth func() float32
	// Post runs fn on the goroutine that owns the frame clock. Nil runs fn
	// directly.
	Post   func(fn func())
	Logger *slog.Logger
}

// Controller implements the home screen actions
type Controller struct {
	cart   *cart.Store
	pager  *catalog.Pager
	coord  *flyout.Coordinator
	locale *locale.Manager
	probe  flyout.Probe
	width  func() float32
	post   func(fn func())
	logger *slog.Logger

	mu     sync.Mutex
	onOpen func(model.Product)

	pending sync.WaitGroup
}

// NewController creates a new controller
func NewController(cfg Config) *Controller {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	post := cfg.Post
	if post == nil {
		post = func(fn func()) { fn() }
	}
	width := cfg.ScreenWidth
	if width == nil {
		width = func() float32 { return 0 }
	}
	return &Controller{
		cart:   cfg.Cart,
		pager:  cfg.Pager,
		coord:  cfg.Coordinator,
		locale: cfg.Locale,
		probe:  cfg.Probe,
		width:  width,
		post:   post,
		logger: logger.With("component", "shop"),
	}
}

// Products returns every product loaded so far
func (c *Controller) Products() []model.Product {
	return c.pager.Products()
}

// HasMore reports whether LoadMore may add products
func (c *Controller) HasMore() bool {
	return c.pager.HasMore()
}

// Language returns the selected language
func (c *Controller) Language() locale.Language {
	return c.locale.Current()
}

// Direction returns the direction the screen is laid out in
func (c *Controller) Direction() locale.Direction {
	return c.locale.Applied()
}

// CartCount returns the number of cart entries
func (c *Controller) CartCount() int {
	return c.cart.Count()
}

// LoadMore loads the next page and grows the slot pool to match the product
// list. It returns the newly added products.
func (c *Controller) LoadMore(ctx context.Context) ([]model.Product, error) {
	added, err := c.pager.NextPage(ctx)
	if err != nil {
		return nil, err
	}
	c.coord.Resize(c.pager.Len())
	return added, nil
}

// AddToCart commits product to the cart and, when the card at index can be
// measured, starts its flyout. The cart mutation never depends on the
// animation: measurement runs in the background and any failure only skips
// the flyout.
func (c *Controller) AddToCart(ctx context.Context, index int, product model.Product, handle flyout.Handle) model.CartLineItem {
	item := product.LineItem()
	c.cart.Add(item)

	if c.probe == nil || handle == nil {
		c.logger.Debug("flyout skipped", "slot", index, "item", item.ID, "reason", "no probe")
		return item
	}

	dir := c.locale.Applied()
	width := c.width()

	c.pending.Add(1)
	go func() {
		defer c.pending.Done()

		rect, err := c.probe.Measure(ctx, handle)
		if err != nil {
			c.logger.Debug("flyout skipped", "slot", index, "item", item.ID, "error", err)
			return
		}

		ev := flyout.NewEvent(item, index, rect, dir, width)
		c.post(func() {
			c.coord.Trigger(ev)
		})
	}()

	return item
}

// Wait blocks until background measurements started by AddToCart finish
func (c *Controller) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.pending.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SetProductHandler sets the function OpenProduct hands products to
func (c *Controller) SetProductHandler(fn func(model.Product)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onOpen = fn
}

// OpenProduct shows the details of product
func (c *Controller) OpenProduct(product model.Product) {
	c.mu.Lock()
	fn := c.onOpen
	c.mu.Unlock()

	c.logger.Info("product opened", "product", product.ID)
	if fn != nil {
		fn(product)
	}
}

// ToggleLanguage switches language. When no restart is required the
// product list is reloaded right away.
func (c *Controller) ToggleLanguage(ctx context.Context) locale.ToggleResult {
	result := c.locale.Toggle()
	if !result.RestartRequired {
		if err := c.Reload(ctx); err != nil {
			c.logger.Warn("reload after language switch failed", "error", err)
		}
	}
	return result
}

// Reload applies the selected language's direction, drops every loaded
// product and slot, and loads the first page again.
func (c *Controller) Reload(ctx context.Context) error {
	dir := c.locale.Apply()
	lang := c.locale.Current()

	c.pager.Reset(lang)
	c.coord.Resize(0)
	c.logger.Info("catalog reloaded", "language", lang, "direction", dir)

	if _, err := c.LoadMore(ctx); err != nil && !errors.Is(err, catalog.ErrExhausted) {
		return err
	}
	return nil
}
