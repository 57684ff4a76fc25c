package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"threadline/internal/infrastructure/ratelimit"
	"threadline/pkg/logger"
)

// Product is a raw catalog entry as served by a merchant's public
// /products.json feed. Transient: decoded per request and discarded after
// normalization.
type Product struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Handle      string    `json:"handle"`
	BodyHTML    string    `json:"body_html"`
	Images      []Image   `json:"images"`
	Variants    []Variant `json:"variants"`
	Options     []Option  `json:"options"`
	Tags        []string  `json:"tags"`
	Vendor      string    `json:"vendor"`
	ProductType string    `json:"product_type"`
	PublishedAt string    `json:"published_at"`
}

type Image struct {
	ID     int64  `json:"id"`
	Src    string `json:"src"`
	Alt    string `json:"alt,omitempty"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Variant struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Price          string `json:"price"`
	CompareAtPrice string `json:"compare_at_price,omitempty"`
	Available      bool   `json:"available"`
	Option1        string `json:"option1,omitempty"`
	Option2        string `json:"option2,omitempty"`
	SKU            string `json:"sku"`
}

type Option struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type feedResponse struct {
	Products []Product `json:"products"`
}

// Client fetches public product feeds from merchant storefronts. Failures are
// absorbed: a third-party outage degrades to an empty product list, never to a
// broken first-party page.
type Client struct {
	httpClient *http.Client
	scheme     string
	cache      *feedCache
	limiter    *ratelimit.FetchLimiter
}

func NewClient(timeout, cacheTTL time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		scheme:     "https",
		cache:      newFeedCache(cacheTTL),
		limiter:    ratelimit.NewFetchLimiter(),
	}
}

// FetchProducts retrieves the merchant's product listing and returns only
// entries usable for display. The domain is a bare hostname, no scheme.
func (c *Client) FetchProducts(ctx context.Context, domain string) []Product {
	if products, fresh := c.cache.get(domain); fresh {
		return products
	}

	if allowed, wait := c.limiter.Allow(domain); !allowed {
		logger.Warn("Feed fetch for %s throttled, next token in %v", domain, wait)
		// serve the stale copy if we have one rather than hitting the merchant
		if products, _ := c.cache.get(domain); products != nil {
			return products
		}
		return nil
	}

	url := fmt.Sprintf("%s://%s/products.json", c.scheme, domain)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logger.Error("Error building feed request for %s: %v", domain, err)
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Error fetching products from %s: %v", domain, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Error("Failed to fetch products from %s: status %d", domain, resp.StatusCode)
		return nil
	}

	var feed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		logger.Error("Error decoding feed from %s: %v", domain, err)
		return nil
	}

	products := filterSellable(feed.Products)
	c.cache.set(domain, products)
	return products
}

// filterSellable drops entries with no variants or a first-variant price that
// does not parse to a value strictly greater than zero. The upstream feed
// includes draft items priced at zero that must never reach the storefront.
func filterSellable(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if len(p.Variants) == 0 {
			continue
		}
		price, err := strconv.ParseFloat(p.Variants[0].Price, 64)
		if err != nil || price <= 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}
