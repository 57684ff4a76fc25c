package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSitemap(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewSitemapHandler("https://threadline.example.com")
	require.NoError(t, h.GetSitemap(c))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/xml")
	assert.Equal(t, "public, max-age=3600, s-maxage=3600", rec.Header().Get("Cache-Control"))

	body := rec.Body.String()
	assert.Contains(t, body, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, body, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)

	// Homepage, every category page, brand pages and product pages.
	assert.Contains(t, body, "<loc>https://threadline.example.com/</loc>")
	for _, category := range []string{"fashion", "watches", "fitness", "beauty"} {
		assert.Contains(t, body, "<loc>https://threadline.example.com/"+category+"</loc>")
	}
	assert.Contains(t, body, "<loc>https://threadline.example.com/brand/cncpts</loc>")
	assert.Contains(t, body, "https://threadline.example.com/product/cncpts/nike_pegasus_premium_anthracitepure_platinumashen_slate")

	assert.Contains(t, body, "<changefreq>daily</changefreq>")
	assert.Contains(t, body, "<priority>0.6</priority>")
}
