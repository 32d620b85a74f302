// Command flyout-trace runs scripted add-to-cart taps through the cart store
// and flyout coordinator on a simulated frame clock and prints every frame.
//
//	flyout-trace -lang ar -taps 0,0@300,3@450 -frame 16ms
//
// Each tap is a slot index with an optional @millis start time.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2/canvas"
	"github.com/go-faster/errors"

	"github.com/ytget/storefront/internal/cart"
	"github.com/ytget/storefront/internal/catalog"
	"github.com/ytget/storefront/internal/config"
	"github.com/ytget/storefront/internal/flyout"
	"github.com/ytget/storefront/internal/locale"
	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/shop"
	"github.com/ytget/storefront/internal/storage"
)

type options struct {
	lang       string
	taps       string
	frame      time.Duration
	width      float32
	products   int
	tuningFile string
	jsonOut    bool
	logLevel   string
}

type tap struct {
	slot int
	at   time.Duration
}

func main() {
	var opts options
	var width float64
	flag.StringVar(&opts.lang, "lang", "en", "language code; ar lays out right-to-left")
	flag.StringVar(&opts.taps, "taps", "0", "comma separated slot[@millis] taps")
	flag.DurationVar(&opts.frame, "frame", 16*time.Millisecond, "simulated frame interval")
	flag.Float64Var(&width, "width", 400, "screen width")
	flag.IntVar(&opts.products, "products", 8, "number of products in the simulated catalog")
	flag.StringVar(&opts.tuningFile, "tuning", "", "optional tuning YAML file")
	flag.BoolVar(&opts.jsonOut, "json", false, "print frames as JSON lines")
	flag.StringVar(&opts.logLevel, "log", "warn", "log level")
	flag.Parse()
	opts.width = float32(width)

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "flyout-trace: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	logger := config.NewLogger(os.Stderr, opts.logLevel)

	taps, err := parseTaps(opts.taps)
	if err != nil {
		return err
	}
	if opts.frame <= 0 {
		return errors.New("frame interval must be positive")
	}
	tuning, err := config.LoadTuning(opts.tuningFile)
	if err != nil {
		return err
	}

	kv := storage.NewMemory()
	if err := kv.Save(locale.StorageKey, []byte(locale.Parse(opts.lang))); err != nil {
		return errors.Wrap(err, "seed language")
	}
	store := cart.NewStore(kv, logger)
	if err := store.Hydrate(ctx); err != nil {
		return errors.Wrap(err, "hydrate")
	}
	lang := locale.NewManager(kv, logger)
	lang.Load()

	products := syntheticCatalog(opts.products)
	pager := catalog.NewPager(staticSource(products), lang.Current(), tuning.Catalog.PageSize, tuning.Catalog.MaxItems, logger)

	clock := time.Duration(0)
	printer := &framePrinter{out: out, json: opts.jsonOut, clock: &clock}
	coord := flyout.NewCoordinator(tuning.FlyoutTiming(), printer, logger)

	probe := newGridProbe(opts.width)
	ctrl := shop.NewController(shop.Config{
		Cart:        store,
		Pager:       pager,
		Coordinator: coord,
		Locale:      lang,
		Probe:       probe,
		ScreenWidth: func() float32 { return opts.width },
		Logger:      logger,
	})

	for ctrl.HasMore() {
		if _, err := ctrl.LoadMore(ctx); err != nil {
			if errors.Is(err, catalog.ErrExhausted) {
				break
			}
			return err
		}
	}
	loaded := ctrl.Products()

	next := 0
	for next < len(taps) || coord.Active() > 0 {
		for next < len(taps) && taps[next].at <= clock {
			t := taps[next]
			next++
			if t.slot < 0 || t.slot >= len(loaded) {
				fmt.Fprintf(out, "t=%6dms tap slot=%d ignored: no product\n", clock.Milliseconds(), t.slot)
				continue
			}
			item := ctrl.AddToCart(ctx, t.slot, loaded[t.slot], probe.handle(t.slot))
			if err := ctrl.Wait(ctx); err != nil {
				return err
			}
			fmt.Fprintf(out, "t=%6dms tap slot=%d item=%s cart=%d\n", clock.Milliseconds(), t.slot, item.ID, store.Count())
		}
		clock += opts.frame
		coord.Advance(opts.frame)
	}

	if err := store.Flush(ctx); err != nil {
		return errors.Wrap(err, "flush cart")
	}
	stored, _, err := kv.Load(cart.StorageKey)
	if err != nil {
		return errors.Wrap(err, "read cart")
	}
	fmt.Fprintf(out, "done t=%dms cart=%d stored=%s\n", clock.Milliseconds(), store.Count(), stored)
	return nil
}

func parseTaps(list string) ([]tap, error) {
	var taps []tap
	var last time.Duration
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		slotText, atText, hasAt := strings.Cut(field, "@")
		slot, err := strconv.Atoi(slotText)
		if err != nil {
			return nil, errors.Wrapf(err, "tap %q", field)
		}
		at := last
		if hasAt {
			ms, err := strconv.Atoi(atText)
			if err != nil || ms < 0 {
				return nil, errors.Errorf("tap %q: bad time", field)
			}
			at = time.Duration(ms) * time.Millisecond
		}
		if at < last {
			return nil, errors.Errorf("tap %q: taps must be in time order", field)
		}
		last = at
		taps = append(taps, tap{slot: slot, at: at})
	}
	return taps, nil
}

type staticSource []model.Product

func (s staticSource) FetchProducts(context.Context, locale.Language) ([]model.Product, error) {
	return s, nil
}

func syntheticCatalog(n int) []model.Product {
	products := make([]model.Product, n)
	for i := range products {
		id := strconv.Itoa(i + 1)
		products[i] = model.Product{
			ID:     int64(i + 1),
			Title:  "Product " + id,
			Images: map[string]string{"1": "https://cdn.example/" + id + "-1.jpg"},
		}
	}
	return products
}

// gridProbe reports the rects of a two-column product grid below a header
type gridProbe struct {
	width   float32
	handles map[flyout.Handle]model.Rect
	bySlot  map[int]flyout.Handle
}

const (
	gridTop    float32 = 56
	cardHeight float32 = 320
)

func newGridProbe(width float32) *gridProbe {
	return &gridProbe{
		width:   width,
		handles: make(map[flyout.Handle]model.Rect),
		bySlot:  make(map[int]flyout.Handle),
	}
}

func (p *gridProbe) handle(slot int) flyout.Handle {
	if h, ok := p.bySlot[slot]; ok {
		return h
	}
	h := canvas.NewRectangle(color.Transparent)
	cardWidth := p.width / 2
	// Start-edge relative, so the first column is the leading one in both directions
	p.handles[h] = model.Rect{
		X:      float32(slot%2) * cardWidth,
		Y:      gridTop + float32(slot/2)*cardHeight,
		Width:  cardWidth,
		Height: cardHeight,
	}
	p.bySlot[slot] = h
	return h
}

func (p *gridProbe) Measure(_ context.Context, h flyout.Handle) (model.Rect, error) {
	r, ok := p.handles[h]
	if !ok {
		return model.Rect{}, flyout.ErrStaleHandle
	}
	return r, nil
}

type framePrinter struct {
	out   io.Writer
	json  bool
	clock *time.Duration
}

type frameLine struct {
	AtMillis int64   `json:"at_ms"`
	Slot     int     `json:"slot"`
	Item     string  `json:"item"`
	Phase    string  `json:"phase"`
	X        float32 `json:"x"`
	Y        float32 `json:"y"`
	Width    float32 `json:"width"`
	Height   float32 `json:"height"`
	Opacity  float32 `json:"opacity"`
	Scale    float32 `json:"scale"`
	Cleared  bool    `json:"cleared,omitempty"`
}

func (p *framePrinter) Render(f flyout.Frame) {
	b := f.Bounds()
	line := frameLine{
		AtMillis: p.clock.Milliseconds(),
		Slot:     f.Index,
		Item:     f.Item.ID,
		Phase:    f.Phase.String(),
		X:        b.X,
		Y:        b.Y,
		Width:    b.Width,
		Height:   b.Height,
		Opacity:  f.Opacity,
		Scale:    f.Scale,
	}
	p.write(line)
}

func (p *framePrinter) Clear(index int) {
	p.write(frameLine{AtMillis: p.clock.Milliseconds(), Slot: index, Phase: model.SlotPhaseIdle.String(), Cleared: true})
}

func (p *framePrinter) write(line frameLine) {
	if p.json {
		_ = json.NewEncoder(p.out).Encode(line)
		return
	}
	if line.Cleared {
		fmt.Fprintf(p.out, "t=%6dms slot=%d cleared\n", line.AtMillis, line.Slot)
		return
	}
	fmt.Fprintf(p.out, "t=%6dms slot=%d item=%s phase=%-6s x=%7.1f y=%7.1f w=%6.1f h=%6.1f opacity=%.3f scale=%.3f\n",
		line.AtMillis, line.Slot, line.Item, line.Phase, line.X, line.Y, line.Width, line.Height, line.Opacity, line.Scale)
}
