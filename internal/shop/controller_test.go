package shop

import (
	"context"
	"fmt"
	"image/color"
	"strconv"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/storefront/internal/cart"
	"github.com/ytget/storefront/internal/catalog"
	"github.com/ytget/storefront/internal/flyout"
	"github.com/ytget/storefront/internal/locale"
	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/storage"
)

type fakeProbe struct {
	mu    sync.Mutex
	rects map[flyout.Handle]model.Rect
	gate  chan struct{}
}

func (p *fakeProbe) Measure(ctx context.Context, h flyout.Handle) (model.Rect, error) {
	if p.gate != nil {
		select {
		case <-p.gate:
		case <-ctx.Done():
			return model.Rect{}, ctx.Err()
		}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	r, ok := p.rects[h]
	if !ok {
		return model.Rect{}, flyout.ErrStaleHandle
	}
	return r, nil
}

type staticSource map[locale.Language][]model.Product

func (s staticSource) FetchProducts(_ context.Context, lang locale.Language) ([]model.Product, error) {
	return s[lang], nil
}

// heldSource blocks fetches for held until release is closed
type heldSource struct {
	staticSource
	held    locale.Language
	started chan struct{}
	release chan struct{}
}

func (s heldSource) FetchProducts(ctx context.Context, lang locale.Language) ([]model.Product, error) {
	if lang == s.held {
		close(s.started)
		select {
		case <-s.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.staticSource.FetchProducts(ctx, lang)
}

func catalogOf(n int, prefix string) []model.Product {
	out := make([]model.Product, n)
	for i := range out {
		out[i] = model.Product{
			ID:     int64(i + 1),
			Title:  fmt.Sprintf("%s %d", prefix, i+1),
			Images: map[string]string{"1": strconv.Itoa(i+1) + ".jpg"},
		}
	}
	return out
}

type fixture struct {
	ctrl  *Controller
	cart  *cart.Store
	coord *flyout.Coordinator
	probe *fakeProbe
	lang  *locale.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	kv := storage.NewMemory()
	store := cart.NewStore(kv, nil)
	require.NoError(t, store.Hydrate(context.Background()))

	lang := locale.NewManager(kv, nil)
	lang.Load()

	src := staticSource{
		locale.English: catalogOf(10, "Item"),
		locale.Arabic:  catalogOf(10, "منتج"),
	}
	coord := flyout.NewCoordinator(flyout.DefaultTiming(), nil, nil)
	probe := &fakeProbe{rects: map[flyout.Handle]model.Rect{}}

	ctrl := NewController(Config{
		Cart:        store,
		Pager:       catalog.NewPager(src, lang.Current(), 4, 16, nil),
		Coordinator: coord,
		Locale:      lang,
		Probe:       probe,
		ScreenWidth: func() float32 { return 400 },
	})
	return &fixture{ctrl: ctrl, cart: store, coord: coord, probe: probe, lang: lang}
}

func (f *fixture) wait(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, f.ctrl.Wait(ctx))
}

func newHandle() flyout.Handle {
	return canvas.NewRectangle(color.Black)
}

func TestController_LoadMoreResizesPool(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	added, err := f.ctrl.LoadMore(ctx)
	require.NoError(t, err)
	assert.Len(t, added, 4)
	assert.Equal(t, 4, f.coord.Len())

	_, err = f.ctrl.LoadMore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, f.coord.Len())

	_, err = f.ctrl.LoadMore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, f.coord.Len())
	assert.False(t, f.ctrl.HasMore())

	_, err = f.ctrl.LoadMore(ctx)
	assert.ErrorIs(t, err, catalog.ErrExhausted)
	assert.Equal(t, 10, f.coord.Len())
}

func TestController_AddToCartStartsFlyout(t *testing.T) {
	f := newFixture(t)
	_, err := f.ctrl.LoadMore(context.Background())
	require.NoError(t, err)

	h := newHandle()
	f.probe.rects[h] = model.Rect{X: 100, Y: 400, Width: 150, Height: 200}

	product := f.ctrl.Products()[2]
	item := f.ctrl.AddToCart(context.Background(), 2, product, h)
	f.wait(t)

	assert.Equal(t, "3", item.ID)
	assert.Equal(t, 1, f.ctrl.CartCount())

	s, ok := f.coord.Slot(2)
	require.True(t, ok)
	assert.Equal(t, model.SlotPhaseShrink, s.Phase)

	f.coord.Advance(f.coord.Timing().Total())
	s, _ = f.coord.Slot(2)
	assert.Equal(t, model.SlotPhaseIdle, s.Phase)
}

func TestController_StaleHandleStillCommits(t *testing.T) {
	f := newFixture(t)
	_, err := f.ctrl.LoadMore(context.Background())
	require.NoError(t, err)

	f.ctrl.AddToCart(context.Background(), 0, f.ctrl.Products()[0], newHandle())
	f.wait(t)

	assert.Equal(t, 1, f.ctrl.CartCount())
	assert.Zero(t, f.coord.Active())
}

func TestController_NilHandleStillCommits(t *testing.T) {
	f := newFixture(t)
	_, err := f.ctrl.LoadMore(context.Background())
	require.NoError(t, err)

	f.ctrl.AddToCart(context.Background(), 0, f.ctrl.Products()[0], nil)
	f.wait(t)

	assert.Equal(t, 1, f.ctrl.CartCount())
	assert.Zero(t, f.coord.Active())
}

func TestController_OutOfRangeStillCommits(t *testing.T) {
	f := newFixture(t)
	_, err := f.ctrl.LoadMore(context.Background())
	require.NoError(t, err)

	h := newHandle()
	f.probe.rects[h] = model.Rect{X: 10, Y: 10, Width: 50, Height: 50}

	f.ctrl.AddToCart(context.Background(), 7, catalogOf(8, "Item")[7], h)
	f.wait(t)

	assert.Equal(t, 1, f.ctrl.CartCount())
	assert.Zero(t, f.coord.Active())
}

func TestController_CommitDoesNotWaitForMeasure(t *testing.T) {
	f := newFixture(t)
	_, err := f.ctrl.LoadMore(context.Background())
	require.NoError(t, err)

	f.probe.gate = make(chan struct{})
	h := newHandle()
	f.probe.rects[h] = model.Rect{X: 10, Y: 10, Width: 50, Height: 50}

	f.ctrl.AddToCart(context.Background(), 1, f.ctrl.Products()[1], h)
	assert.Equal(t, 1, f.ctrl.CartCount(), "cart is updated before the measurement resolves")
	assert.Zero(t, f.coord.Active())

	close(f.probe.gate)
	f.wait(t)
	assert.Equal(t, 1, f.coord.Active())
}

func TestController_RapidTapsOnSameSlot(t *testing.T) {
	f := newFixture(t)
	_, err := f.ctrl.LoadMore(context.Background())
	require.NoError(t, err)

	h := newHandle()
	f.probe.rects[h] = model.Rect{X: 100, Y: 400, Width: 150, Height: 200}
	product := f.ctrl.Products()[0]

	f.ctrl.AddToCart(context.Background(), 0, product, h)
	f.wait(t)
	f.coord.Advance(700 * time.Millisecond)

	f.ctrl.AddToCart(context.Background(), 0, product, h)
	f.wait(t)

	assert.Equal(t, 2, f.ctrl.CartCount())
	assert.Equal(t, 1, f.coord.Active(), "one timeline per slot")
}

func TestController_CanceledMeasureSkipsFlyout(t *testing.T) {
	f := newFixture(t)
	_, err := f.ctrl.LoadMore(context.Background())
	require.NoError(t, err)

	f.probe.gate = make(chan struct{})
	h := newHandle()
	f.probe.rects[h] = model.Rect{X: 10, Y: 10, Width: 50, Height: 50}

	ctx, cancel := context.WithCancel(context.Background())
	f.ctrl.AddToCart(ctx, 0, f.ctrl.Products()[0], h)
	cancel()
	f.wait(t)

	assert.Equal(t, 1, f.ctrl.CartCount())
	assert.Zero(t, f.coord.Active())
}

func TestController_ToggleLanguageAndReload(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.ctrl.LoadMore(ctx)
	require.NoError(t, err)
	_, err = f.ctrl.LoadMore(ctx)
	require.NoError(t, err)

	result := f.ctrl.ToggleLanguage(ctx)
	assert.Equal(t, locale.Arabic, result.Language)
	assert.True(t, result.RestartRequired)
	assert.Equal(t, locale.LeftToRight, f.ctrl.Direction(), "direction changes only on reload")
	assert.Len(t, f.ctrl.Products(), 8)

	require.NoError(t, f.ctrl.Reload(ctx))
	assert.Equal(t, locale.RightToLeft, f.ctrl.Direction())
	require.Len(t, f.ctrl.Products(), 4)
	assert.Equal(t, "منتج 1", f.ctrl.Products()[0].Title)
	assert.Equal(t, 4, f.coord.Len())
}

func TestController_ReloadDuringFirstPageLoad(t *testing.T) {
	kv := storage.NewMemory()
	lang := locale.NewManager(kv, nil)
	lang.Load()
	src := heldSource{
		staticSource: staticSource{
			locale.English: catalogOf(10, "Item"),
			locale.Arabic:  catalogOf(10, "منتج"),
		},
		held:    locale.English,
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	coord := flyout.NewCoordinator(flyout.DefaultTiming(), nil, nil)
	ctrl := NewController(Config{
		Cart:        cart.NewStore(kv, nil),
		Pager:       catalog.NewPager(src, lang.Current(), 4, 16, nil),
		Coordinator: coord,
		Locale:      lang,
	})
	ctx := context.Background()

	stale := make(chan error, 1)
	go func() {
		_, err := ctrl.LoadMore(ctx)
		stale <- err
	}()
	<-src.started

	result := ctrl.ToggleLanguage(ctx)
	require.True(t, result.RestartRequired)
	require.NoError(t, ctrl.Reload(ctx))
	close(src.release)

	assert.ErrorIs(t, <-stale, catalog.ErrSuperseded)
	require.Len(t, ctrl.Products(), 4)
	assert.Equal(t, "منتج 1", ctrl.Products()[0].Title)
	assert.Equal(t, 4, coord.Len())
}

func TestController_OpenProduct(t *testing.T) {
	f := newFixture(t)

	f.ctrl.OpenProduct(model.Product{ID: 1})

	var opened model.Product
	f.ctrl.SetProductHandler(func(p model.Product) { opened = p })
	f.ctrl.OpenProduct(model.Product{ID: 9, Title: "Scarf"})
	assert.Equal(t, int64(9), opened.ID)
}
