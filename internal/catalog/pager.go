package catalog

import (
	"context"
	"log/slog"
	"sync"

	"github.com/go-faster/errors"

	"github.com/ytget/storefront/internal/locale"
	"github.com/ytget/storefront/internal/model"
)

// Pager defaults
const (
	DefaultPageSize = 4
	DefaultMaxItems = 16
)

var (
	// ErrLoading is returned when a page load is already in flight
	ErrLoading = errors.New("page load in progress")
	// ErrExhausted is returned when no further pages exist
	ErrExhausted = errors.New("no more products")
	// ErrSuperseded is returned when Reset ran while the page was loading
	ErrSuperseded = errors.New("page load superseded by reset")
)

// Pager hands out a language's product list page by page
type Pager struct {
	mu       sync.Mutex
	source   Source
	pageSize int
	maxItems int
	logger   *slog.Logger

	lang       locale.Language
	cache      map[locale.Language][]model.Product
	shown      []model.Product
	page       int
	loading    bool
	generation int
}

// NewPager creates a new pager over source starting in lang. Non-positive
// sizes use the defaults.
func NewPager(source Source, lang locale.Language, pageSize, maxItems int, logger *slog.Logger) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	if maxItems < pageSize {
		maxItems = pageSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pager{
		source:   source,
		pageSize: pageSize,
		maxItems: maxItems,
		logger:   logger.With("component", "pager"),
		lang:     lang,
		cache:    make(map[locale.Language][]model.Product),
	}
}

// NextPage loads the next page and returns only the newly added products
func (p *Pager) NextPage(ctx context.Context) ([]model.Product, error) {
	p.mu.Lock()
	if p.loading {
		p.mu.Unlock()
		return nil, ErrLoading
	}
	if len(p.shown) >= p.maxItems {
		p.mu.Unlock()
		return nil, ErrExhausted
	}
	lang := p.lang
	gen := p.generation
	list, cached := p.cache[lang]
	p.loading = true
	p.mu.Unlock()

	if !cached {
		fetched, err := p.source.FetchProducts(ctx, lang)
		if err != nil {
			p.mu.Lock()
			if gen == p.generation {
				p.loading = false
			}
			p.mu.Unlock()
			return nil, errors.Wrapf(err, "load %s products", lang)
		}
		list = fetched
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache[lang] = list

	// Reset already released the loading flag for the next generation
	if gen != p.generation {
		return nil, ErrSuperseded
	}
	p.loading = false

	start := p.page * p.pageSize
	end := min(start+p.pageSize, len(list), p.maxItems)
	if start >= end {
		return nil, ErrExhausted
	}

	added := append([]model.Product(nil), list[start:end]...)
	p.shown = append(p.shown, added...)
	p.page++

	p.logger.Info("page loaded", "lang", lang, "page", p.page, "added", len(added), "total", len(p.shown))
	return added, nil
}

// Products returns every product shown so far
func (p *Pager) Products() []model.Product {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.Product(nil), p.shown...)
}

// Len returns the number of products shown so far
func (p *Pager) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.shown)
}

// Loading reports whether a page load is in flight
func (p *Pager) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// HasMore reports whether NextPage may add products
func (p *Pager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.shown) >= p.maxItems {
		return false
	}
	list, cached := p.cache[p.lang]
	if !cached {
		return true
	}
	return len(p.shown) < min(len(list), p.maxItems)
}

// Language returns the language pages are drawn from
func (p *Pager) Language() locale.Language {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lang
}

// Reset starts paging over from the first page in lang. Fetched lists stay
// cached. A load in flight is superseded and no longer blocks NextPage.
func (p *Pager) Reset(lang locale.Language) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lang = lang
	p.shown = nil
	p.page = 0
	p.loading = false
	p.generation++
}
