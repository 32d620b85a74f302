package catalog

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-faster/errors"

	"github.com/ytget/storefront/internal/locale"
	"github.com/ytget/storefront/internal/model"
)

// DefaultProductListPath is appended to the base URL, followed by the language code
const DefaultProductListPath = "products?lang="

const defaultRequestTimeout = 15 * time.Second

// maxBodySize bounds the product feed response
const maxBodySize = 8 << 20

// Source returns the full product list for a language
type Source interface {
	FetchProducts(ctx context.Context, lang locale.Language) ([]model.Product, error)
}

type productsEnvelope struct {
	Data struct {
		Products []model.Product `json:"products"`
	} `json:"data"`
}

// Client fetches products from the storefront HTTP feed
type Client struct {
	baseURL  string
	listPath string
	http     *http.Client
	logger   *slog.Logger
}

// NewClient creates a new feed client. A nil httpClient uses a client with a
// request timeout.
func NewClient(baseURL, listPath string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultRequestTimeout}
	}
	if listPath == "" {
		listPath = DefaultProductListPath
	}
	if logger == nil {
		logger = slog.Default()
	}
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		baseURL:  baseURL,
		listPath: strings.TrimPrefix(listPath, "/"),
		http:     httpClient,
		logger:   logger.With("component", "catalog"),
	}
}

// URL returns the request URL for lang
func (c *Client) URL(lang locale.Language) string {
	return c.baseURL + c.listPath + string(lang)
}

// FetchProducts implements Source
func (c *Client) FetchProducts(ctx context.Context, lang locale.Language) ([]model.Product, error) {
	url := c.URL(lang)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("get %s: unexpected status %s", url, resp.Status)
	}

	var env productsEnvelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&env); err != nil {
		return nil, errors.Wrap(err, "decode products")
	}

	c.logger.Debug("products fetched", "lang", lang, "count", len(env.Data.Products))
	return env.Data.Products, nil
}
