package model

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ThumbnailImageKey is the image key shown on product cards
const ThumbnailImageKey = "1"

// Product is a catalog entry as served by the product feed
type Product struct {
	ID                int64             `json:"id"`
	Title             string            `json:"title"`
	Images            map[string]string `json:"images"`
	Currency          string            `json:"currency"`
	PriceMin          decimal.Decimal   `json:"price_min"`
	CompareAtPriceMin decimal.Decimal   `json:"compare_at_price_min"`
	Tags              []string          `json:"tags"`
	OfferMessage      string            `json:"offer-message"`
}

// ImageList returns image URLs ordered by key. Numeric keys sort numerically
// and come before any non-numeric keys.
func (p *Product) ImageList() []string {
	if len(p.Images) == 0 {
		return []string{}
	}

	keys := make([]string, 0, len(p.Images))
	for k := range p.Images {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, errI := strconv.Atoi(keys[i])
		nj, errJ := strconv.Atoi(keys[j])
		switch {
		case errI == nil && errJ == nil:
			return ni < nj
		case errI == nil:
			return true
		case errJ == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})

	images := make([]string, 0, len(keys))
	for _, k := range keys {
		if p.Images[k] != "" {
			images = append(images, p.Images[k])
		}
	}
	return images
}

// Thumbnail returns the card image, falling back to the first ordered image
func (p *Product) Thumbnail() string {
	if img := p.Images[ThumbnailImageKey]; img != "" {
		return img
	}
	if images := p.ImageList(); len(images) > 0 {
		return images[0]
	}
	return ""
}

// DisplayTitle returns the title collapsed to a single line
func (p *Product) DisplayTitle() string {
	return strings.Join(strings.Fields(p.Title), " ")
}

// HasDiscount reports whether the compare-at price is above the current price
func (p *Product) HasDiscount() bool {
	return p.CompareAtPriceMin.GreaterThan(p.PriceMin)
}

// PriceText formats the current price with the product currency
func (p *Product) PriceText() string {
	return strings.TrimSpace(p.Currency + " " + p.PriceMin.StringFixed(2))
}

// CompareAtText formats the compare-at price, empty when there is no discount
func (p *Product) CompareAtText() string {
	if !p.HasDiscount() {
		return ""
	}
	return p.CompareAtPriceMin.StringFixed(2)
}

// LineItem converts the product to the value committed to the cart
func (p *Product) LineItem() CartLineItem {
	return CartLineItem{
		ID:     strconv.FormatInt(p.ID, 10),
		Name:   p.DisplayTitle(),
		Images: p.ImageList(),
	}
}
