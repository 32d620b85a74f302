package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/storefront/internal/locale"
)

const feedBody = `{
  "data": {
    "products": [
      {
        "id": 101,
        "title": "Linen Shirt",
        "images": {"1": "https://cdn.example/101-1.jpg", "2": "https://cdn.example/101-2.jpg"},
        "currency": "SAR",
        "price_min": "120.50",
        "compare_at_price_min": "150",
        "tags": ["new"],
        "offer-message": "Buy 2 get 1"
      },
      {"id": 102, "title": "Canvas Tote", "images": {"1": "https://cdn.example/102-1.jpg"}, "currency": "SAR", "price_min": 45}
    ]
  }
}`

func TestClient_FetchProducts(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedBody))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api", "", nil, nil)
	products, err := c.FetchProducts(context.Background(), locale.Arabic)
	require.NoError(t, err)

	assert.Equal(t, "/api/products", gotPath)
	assert.Equal(t, "lang=ar", gotQuery)
	require.Len(t, products, 2)

	first := products[0]
	assert.Equal(t, int64(101), first.ID)
	assert.Equal(t, "Linen Shirt", first.Title)
	assert.True(t, first.PriceMin.Equal(decimal.RequireFromString("120.50")))
	assert.Equal(t, "Buy 2 get 1", first.OfferMessage)
	assert.True(t, products[1].PriceMin.Equal(decimal.NewFromInt(45)))
}

func TestClient_FetchProducts_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status  int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{}`},
		{"not found", http.StatusNotFound, ``},
		{"bad json", http.StatusOK, `{"data":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, "", nil, nil).FetchProducts(context.Background(), locale.English)
			assert.Error(t, err)
		})
	}
}

func TestClient_FetchProducts_Canceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(feedBody))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, "", nil, nil).FetchProducts(ctx, locale.English)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_URL(t *testing.T) {
	tests := []struct {
		base, path string
		expected   string
	}{
		{"https://shop.example/api/", "products?lang=", "https://shop.example/api/products?lang=en"},
		{"https://shop.example/api", "/list?l=", "https://shop.example/api/list?l=en"},
		{"https://shop.example/", "", "https://shop.example/products?lang=en"},
	}

	for _, tt := range tests {
		got := NewClient(tt.base, tt.path, nil, nil).URL(locale.English)
		if got != tt.expected {
			t.Errorf("Expected URL %q, got %q", tt.expected, got)
		}
	}
}
