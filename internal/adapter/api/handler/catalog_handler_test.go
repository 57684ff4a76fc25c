package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadline/internal/domain/entity"
	"threadline/internal/registry"
	"threadline/internal/usecase"
)

// stubFeed serves a canned product list for any domain.
type stubFeed struct {
	products []entity.ProductDetail
}

func (s *stubFeed) FetchBrandProducts(ctx context.Context, domain string) []entity.ProductDetail {
	return s.products
}

func newCatalogHandlerEnv(feed usecase.FeedService) (*echo.Echo, *CatalogHandler) {
	reg := registry.New([]entity.Brand{
		{
			ID:      "bebe",
			Name:    "Bebe",
			Tagline: "Contemporary fashion",
			Source:  entity.SourceFeed, FeedDomain: "www.bebe.com",
			Active:   true,
			Trending: entity.TrendingConfig{Promoted: true, Priority: 1, Active: true},
			Categories: []entity.CategoryAssignment{
				{Category: "fashion", Featured: true, Priority: 1, Active: true},
			},
		},
	})
	return echo.New(), NewCatalogHandler(usecase.NewCatalogUseCase(reg, feed))
}

func catalogRequest(e *echo.Echo, h echo.HandlerFunc, target string, params ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(params) > 0 {
		names := make([]string, 0, len(params)/2)
		values := make([]string, 0, len(params)/2)
		for i := 0; i+1 < len(params); i += 2 {
			names = append(names, params[i])
			values = append(values, params[i+1])
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	_ = h(c)
	return rec
}

func TestListBrandProductsFromFeed(t *testing.T) {
	feed := &stubFeed{products: []entity.ProductDetail{
		{Product: entity.Product{ID: "100", Title: "Cowl Dress", Slug: "cowl-dress", Price: "$118.00"}},
	}}
	e, h := newCatalogHandlerEnv(feed)

	rec := catalogRequest(e, h.ListBrandProducts, "/api/catalog/brands/bebe/products", "id", "bebe")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success  bool                   `json:"success"`
		Products []entity.ProductDetail `json:"products"`
		Total    int                    `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 1, body.Total)
	require.Len(t, body.Products, 1)
	assert.Equal(t, "Cowl Dress", body.Products[0].Title)
}

func TestListBrandProductsFeedOutageIsEmptyNotError(t *testing.T) {
	e, h := newCatalogHandlerEnv(&stubFeed{products: nil})

	rec := catalogRequest(e, h.ListBrandProducts, "/api/catalog/brands/bebe/products", "id", "bebe")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":0`)
}

func TestGetBrandProductBySlug(t *testing.T) {
	feed := &stubFeed{products: []entity.ProductDetail{
		{Product: entity.Product{ID: "100", Title: "Cowl Dress", Slug: "cowl-dress"}},
	}}
	e, h := newCatalogHandlerEnv(feed)

	rec := catalogRequest(e, h.GetBrandProduct, "/api/catalog/brands/bebe/products/cowl-dress", "id", "bebe", "slug", "cowl-dress")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cowl Dress")

	rec = catalogRequest(e, h.GetBrandProduct, "/api/catalog/brands/bebe/products/missing", "id", "bebe", "slug", "missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetUnknownCatalogBrand(t *testing.T) {
	e, h := newCatalogHandlerEnv(&stubFeed{})

	rec := catalogRequest(e, h.GetBrand, "/api/catalog/brands/no-such-brand", "id", "no-such-brand")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Brand not found")
}

func TestListTrendingBrands(t *testing.T) {
	e, h := newCatalogHandlerEnv(&stubFeed{})

	rec := catalogRequest(e, h.ListTrendingBrands, "/api/catalog/trending")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)
	assert.Contains(t, rec.Body.String(), `"promotionStyles"`)
}

func TestGetCategoryPageEndpoint(t *testing.T) {
	e, h := newCatalogHandlerEnv(&stubFeed{})

	rec := catalogRequest(e, h.GetCategory, "/api/catalog/categories/fashion", "category", "fashion")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"featured"`)

	rec = catalogRequest(e, h.GetCategory, "/api/catalog/categories/electronics", "category", "electronics")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchBrandsEndpoint(t *testing.T) {
	e, h := newCatalogHandlerEnv(&stubFeed{})

	rec := catalogRequest(e, h.SearchBrands, "/api/catalog/search?q=bebe")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)

	rec = catalogRequest(e, h.SearchBrands, "/api/catalog/search")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Search query is required")
}
